// Package minheap provides a generic binary min-heap used as the boundary-arc
// priority queue of a partial tree.
//
// What & Why
//
//   - MinHeap[T] orders elements with a caller-supplied less function.
//   - Elements that compare equal come out in insertion order, so every run over
//     the same input pops the same sequence (deterministic MST output at ties).
//   - Meld folds one heap into another in O(n+m) by concatenating the backing
//     slices and re-heapifying, which is cheaper than m extract/insert pairs.
//
// Operations
//
//	Insert      O(log n) amortized
//	ExtractMin  O(log n), ErrEmptyQueue when empty
//	Peek        O(1),     ErrEmptyQueue when empty
//	Meld        O(n + m), drains the other heap
//
// MinHeap is not safe for concurrent use.
package minheap
