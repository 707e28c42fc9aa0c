package minheap

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by ExtractMin and Peek on an empty heap.
var ErrEmptyQueue = errors.New("minheap: queue is empty")

// entry pairs a value with the insertion stamp used to break ties.
type entry[T any] struct {
	value T
	seq   uint64
}

// store implements heap.Interface over entries, ordered by less then seq.
type store[T any] struct {
	items []entry[T]
	less  func(a, b T) bool
}

func (s *store[T]) Len() int { return len(s.items) }

func (s *store[T]) Less(i, j int) bool {
	a, b := s.items[i], s.items[j]
	if s.less(a.value, b.value) {
		return true
	}
	if s.less(b.value, a.value) {
		return false
	}

	return a.seq < b.seq
}

func (s *store[T]) Swap(i, j int) { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *store[T]) Push(x any) { s.items = append(s.items, x.(entry[T])) }

func (s *store[T]) Pop() any {
	old := s.items
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop the reference for the GC
	s.items = old[:n-1]

	return e
}

// MinHeap is a binary min-heap over T.
type MinHeap[T any] struct {
	s       store[T]
	nextSeq uint64
}

// New returns an empty heap ordered by less. It panics if less is nil.
func New[T any](less func(a, b T) bool) *MinHeap[T] {
	if less == nil {
		panic("minheap: New(nil less)")
	}

	return &MinHeap[T]{s: store[T]{less: less}}
}

// Len returns the number of queued elements.
func (h *MinHeap[T]) Len() int { return h.s.Len() }

// IsEmpty reports whether the heap holds no elements.
func (h *MinHeap[T]) IsEmpty() bool { return h.s.Len() == 0 }

// Insert adds item to the heap.
// Complexity: O(log n) amortized.
func (h *MinHeap[T]) Insert(item T) {
	heap.Push(&h.s, entry[T]{value: item, seq: h.nextSeq})
	h.nextSeq++
}

// ExtractMin removes and returns the smallest element.
// Returns ErrEmptyQueue if the heap is empty.
// Complexity: O(log n).
func (h *MinHeap[T]) ExtractMin() (T, error) {
	if h.s.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&h.s).(entry[T])

	return e.value, nil
}

// Peek returns the smallest element without removing it.
func (h *MinHeap[T]) Peek() (T, error) {
	if h.s.Len() == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return h.s.items[0].value, nil
}

// Meld moves every element of other into h and leaves other empty.
// Elements from other keep their relative order at ties and sort after
// the elements already in h that compare equal to them.
// Melding a heap into itself is a no-op.
// Complexity: O(n + m).
func (h *MinHeap[T]) Meld(other *MinHeap[T]) {
	if other == nil || other == h || other.s.Len() == 0 {
		return
	}

	// Restamp the incoming entries past h's counter so tie order stays total.
	base := h.nextSeq
	for _, e := range other.s.items {
		e.seq += base
		h.s.items = append(h.s.items, e)
	}
	h.nextSeq = base + other.nextSeq
	heap.Init(&h.s)

	other.s.items = nil
	other.nextSeq = 0
}

// Drain extracts every element in ascending order and leaves h empty.
func (h *MinHeap[T]) Drain() []T {
	out := make([]T, 0, h.s.Len())
	for h.s.Len() > 0 {
		out = append(out, heap.Pop(&h.s).(entry[T]).value)
	}

	return out
}
