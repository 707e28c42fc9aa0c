package core

import (
	"fmt"

	"github.com/katalvlaran/mstree/minheap"
)

// PartialTree is one component of the forest built by partial-tree merging:
// a representative root vertex and the min-priority queue of arcs leaving
// (or, lazily, inside) the component.
type PartialTree struct {
	root *Vertex
	arcs *minheap.MinHeap[*Arc]
	size int
}

// NewPartialTree builds the singleton tree for v. Its queue holds one arc
// v → n.Vertex per neighbor record of v.
// Complexity: O(deg(v) log deg(v)).
func NewPartialTree(v *Vertex) *PartialTree {
	t := &PartialTree{
		root: v,
		arcs: minheap.New(ArcLess),
		size: 1,
	}
	for _, n := range v.neighbors {
		t.arcs.Insert(n.ArcFrom(v))
	}

	return t
}

// Root returns the representative vertex of the tree.
func (t *PartialTree) Root() *Vertex { return t.root }

// Arcs returns the tree's boundary-arc queue. Callers extract from and insert
// into it directly.
func (t *PartialTree) Arcs() *minheap.MinHeap[*Arc] { return t.arcs }

// Size returns the number of vertices in the component.
func (t *PartialTree) Size() int { return t.size }

// Contains reports whether v currently belongs to this tree's component.
func (t *PartialTree) Contains(v *Vertex) bool { return Find(v) == t.root }

// Merge absorbs other into t: other's root is re-parented to t's root and
// other's queue is melded into t's. Afterwards other is empty and must not be
// used again. Now-internal arcs are left in the queue and filtered by the
// caller on extraction.
//
// Returns ErrInvalidMerge if other is nil, is t, or has already been absorbed.
// Complexity: O(|t.arcs| + |other.arcs|).
func (t *PartialTree) Merge(other *PartialTree) error {
	if other == nil || other == t || other.size == 0 {
		return ErrInvalidMerge
	}
	if Find(other.root) == t.root {
		return fmt.Errorf("%s already in %s: %w", other.root.ID, t.root.ID, ErrInvalidMerge)
	}

	other.root.parent = t.root
	t.arcs.Meld(other.arcs)
	t.size += other.size
	other.size = 0

	return nil
}

// String renders the tree as root, size and queued arc count.
func (t *PartialTree) String() string {
	return fmt.Sprintf("%s(size=%d arcs=%d)", t.root.ID, t.size, t.arcs.Len())
}

// Find returns the live representative of v's component, halving the path
// on the way up.
// Complexity: amortized O(log V).
func Find(v *Vertex) *Vertex {
	for v.parent != v {
		v.parent = v.parent.parent
		v = v.parent
	}

	return v
}
