// Package treelist stores the partial trees of an in-progress MST run in a
// circular singly-linked list that the solver uses as its work queue.
//
// The list keeps a pointer to its rear node only; the front is rear.next.
//
//	Append            O(1)  new node becomes the rear
//	RemoveFront       O(1)  ErrEmptyList when empty
//	RemoveContaining  O(n)  scan from the front, comparing tree roots
//	All               O(n)  single non-mutating pass, front to rear
//
// RemoveContaining reports a miss with ok == false rather than an error: the
// solver treats "no tree has that root" as "already merged" and moves on.
package treelist
