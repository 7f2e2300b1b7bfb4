package pq

// Item encapsulates a payload and its priority.
type Item[T any] struct {
	Payload  T
	Priority int
}

// lowerPriority orders items by priority alone, the payload is never compared.
func lowerPriority[T any](a, b Item[T]) bool {
	return a.Priority < b.Priority
}
