package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// WriterLogger prints each log line, prefixed by a timestamp and the level, to the wrapped writer.
type WriterLogger struct {
	w   io.Writer
	now func() time.Time
}

// NewWriterLogger returns a logger which writes to the given writer.
func NewWriterLogger(w io.Writer) WriterLogger {
	return WriterLogger{w: w, now: time.Now}
}

// Log writes a single line to the underlying writer; write errors are ignored.
func (l WriterLogger) Log(level Level, format string, args ...any) {
	now := time.Now
	if l.now != nil {
		now = l.now
	}

	fmt.Fprintf(l.w, "%s %s: %s\n", now().Format(time.RFC3339Nano), level, fmt.Sprintf(format, args...))
}

// StdoutLogger is the standard output logger for printing all logs into the commandline.
type StdoutLogger struct{}

// Log method for the StdoutLogger which adds prefix dependant on the level and prints message inputted to terminal.
func (s StdoutLogger) Log(level Level, format string, args ...any) {
	NewWriterLogger(os.Stdout).Log(level, format, args...)
}
