package pq

import (
	"testing"

	"github.com/couchbase/tools-heap/types/maxheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriorityQueue(t *testing.T) {
	queue := NewPriorityQueue[int](42)
	require.NotNil(t, queue.inner)
	require.Zero(t, queue.Len())
}

func TestPriorityQueueEnqueueDequeueNoPriority(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	for i := 0; i < 5; i++ {
		queue.Enqueue(Item[int]{Payload: i})
	}

	require.Equal(t, 5, queue.Len())

	var (
		expected = map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 4: {}}
		actual   = make(map[int]struct{})
	)

	require.NoError(t, queue.Drain(func(item Item[int]) error { actual[item.Payload] = struct{}{}; return nil }))
	require.Equal(t, expected, actual)
}

func TestPriorityQueueEnqueueDequeueWithPriority(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	for i := 0; i < 5; i++ {
		queue.Enqueue(Item[int]{Payload: i, Priority: i})
	}

	require.Equal(t, 5, queue.Len())

	var (
		expected = []int{4, 3, 2, 1, 0}
		actual   = make([]int, 0, 5)
	)

	require.NoError(t, queue.Drain(func(item Item[int]) error { actual = append(actual, item.Payload); return nil }))
	require.Equal(t, expected, actual)
}

func TestPriorityQueueDrainNoItems(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	var run bool

	require.NoError(t, queue.Drain(func(item Item[int]) error { run = true; return nil }))
	require.False(t, run)
}

func TestPriorityQueueDrainWithError(t *testing.T) {
	queue := NewPriorityQueue[int](5)

	var run int

	err := queue.Drain(func(item Item[int]) error { run++; return assert.AnError })
	require.NoError(t, err)
	require.Zero(t, run)

	for i := 0; i < 5; i++ {
		queue.Enqueue(Item[int]{Payload: i})
	}

	err = queue.Drain(func(item Item[int]) error { run++; return assert.AnError })
	require.ErrorIs(t, err, assert.AnError)
	require.Equal(t, 1, run)
	require.Equal(t, 4, queue.Len())
}

func TestPriorityQueuePeek(t *testing.T) {
	queue := NewPriorityQueue[string](3)

	queue.Enqueue(Item[string]{Payload: "low", Priority: 1})
	queue.Enqueue(Item[string]{Payload: "high", Priority: 10})
	queue.Enqueue(Item[string]{Payload: "mid", Priority: 5})

	require.Equal(t, Item[string]{Payload: "high", Priority: 10}, queue.Peek())
	require.Equal(t, 3, queue.Len())

	require.Equal(t, "high", queue.Dequeue().Payload)
	require.Equal(t, "mid", queue.Peek().Payload)
}

func TestPriorityQueueDequeueEmpty(t *testing.T) {
	queue := NewPriorityQueue[int](1)

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.ErrorIs(t, err, maxheap.ErrEmptyHeap)
	}()

	queue.Dequeue()
}
