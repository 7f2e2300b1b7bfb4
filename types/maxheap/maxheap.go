// Package maxheap exposes a generic binary max-heap stored in a flat slice.
package maxheap

import (
	"errors"
	"fmt"

	"github.com/couchbase/tools-heap/log"
	"golang.org/x/exp/constraints"
)

// ErrEmptyHeap is the value (wrapped) that 'Pop' and 'Peek' panic with when called on an empty heap.
var ErrEmptyHeap = errors.New("heap is empty")

// MaxHeap is a binary max-heap, the greatest element is always available at the root.
//
// The tree is implicit, the children of the element at index 'i' live at '2i+1' and '2i+2'.
//
// NOTE: MaxHeap is not safe for concurrent use and needs to be wrapped in a lock to be shared safely between threads.
type MaxHeap[T any] struct {
	storage []T
	less    func(a, b T) bool
}

// NewMaxHeap creates an empty heap of naturally ordered values.
func NewMaxHeap[T constraints.Ordered]() *MaxHeap[T] {
	return NewMaxHeapFunc(ordered[T])
}

// NewMaxHeapWithCapacity creates an empty heap of naturally ordered values where the underlying capacity is set to
// the given value.
//
// NOTE: The capacity has the same behavior as a slices capacity meaning the heap may grow beyond it, the capacity is
// there for performance optimizations.
func NewMaxHeapWithCapacity[T constraints.Ordered](capacity int) *MaxHeap[T] {
	return &MaxHeap[T]{storage: make([]T, 0, capacity), less: ordered[T]}
}

// NewMaxHeapFromSlice builds a heap from the given values in linear time.
//
// NOTE: The heap takes ownership of 'xs' and reorders it in place, the caller must not use it after this call.
func NewMaxHeapFromSlice[T constraints.Ordered](xs []T) *MaxHeap[T] {
	return NewMaxHeapFromSliceFunc(xs, ordered[T])
}

// NewMaxHeapFunc creates an empty heap where elements are ordered by the given function, which must report whether
// 'a' orders strictly before 'b'.
func NewMaxHeapFunc[T any](less func(a, b T) bool) *MaxHeap[T] {
	return NewMaxHeapFromSliceFunc(nil, less)
}

// NewMaxHeapFromSliceFunc builds a heap from the given values, ordered by the given function, in linear time.
//
// NOTE: The heap takes ownership of 'xs' and reorders it in place, the caller must not use it after this call.
func NewMaxHeapFromSliceFunc[T any](xs []T, less func(a, b T) bool) *MaxHeap[T] {
	if less == nil {
		log.Panicf("maxheap: nil less function")
	}

	h := &MaxHeap[T]{storage: xs, less: less}
	h.heapify()

	return h
}

// Len returns the number of elements in the heap.
func (h *MaxHeap[T]) Len() int {
	return len(h.storage)
}

// Push adds v to the heap.
func (h *MaxHeap[T]) Push(v T) {
	h.storage = append(h.storage, v)
	h.siftUp(len(h.storage) - 1)
}

// Pop removes and returns the greatest element, panicking if the heap is empty.
//
// Where multiple elements compare equal, which of them is returned first is unspecified.
func (h *MaxHeap[T]) Pop() T {
	h.mustNotBeEmpty("pop")

	last := len(h.storage) - 1
	h.swap(0, last)

	var zero T

	v := h.storage[last]
	h.storage[last] = zero
	h.storage = h.storage[:last]

	h.siftDown(0)

	return v
}

// Peek returns the greatest element without removing it, panicking if the heap is empty.
func (h *MaxHeap[T]) Peek() T {
	h.mustNotBeEmpty("peek")

	return h.storage[0]
}

// Drain removes all elements from the heap, greatest first, running the given function on each one. In the event of
// an error, draining stops early, and returns the error.
func (h *MaxHeap[T]) Drain(fn func(v T) error) error {
	for h.Len() > 0 {
		if err := fn(h.Pop()); err != nil {
			return err
		}
	}

	return nil
}

// mustNotBeEmpty panics with an error wrapping 'ErrEmptyHeap' if there's nothing in the heap.
func (h *MaxHeap[T]) mustNotBeEmpty(op string) {
	if len(h.storage) != 0 {
		return
	}

	log.PanicErr(fmt.Errorf("%w: cannot %s", ErrEmptyHeap, op))
}

func ordered[T constraints.Ordered](a, b T) bool {
	return a < b
}
