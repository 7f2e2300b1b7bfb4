package maxheap

// heapify restores the heap property over the whole of storage, bottom up.
//
// Elements at 'len/2' and beyond are leaves so are already valid heaps.
func (h *MaxHeap[T]) heapify() {
	for i := len(h.storage)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// siftUp moves the element at 'i' towards the root while it's strictly greater than its parent.
func (h *MaxHeap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.storage[p], h.storage[i]) {
			return
		}

		h.swap(p, i)
		i = p
	}
}

// siftDown moves the element at 'i' towards the leaves while one of its children is strictly greater. Both subtrees
// of 'i' must already be valid heaps.
//
// When both children are equal, the left one is preferred.
func (h *MaxHeap[T]) siftDown(i int) {
	n := len(h.storage)

	for {
		largest := i

		if l := left(i); l < n && h.less(h.storage[largest], h.storage[l]) {
			largest = l
		}

		if r := right(i); r < n && h.less(h.storage[largest], h.storage[r]) {
			largest = r
		}

		if largest == i {
			return
		}

		h.swap(i, largest)
		i = largest
	}
}

func (h *MaxHeap[T]) swap(i, j int) {
	h.storage[i], h.storage[j] = h.storage[j], h.storage[i]
}

func parent(i int) int {
	return (i - 1) / 2
}

func left(i int) int {
	return 2*i + 1
}

func right(i int) int {
	return 2*i + 2
}
