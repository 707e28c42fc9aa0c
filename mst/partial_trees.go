package mst

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/treelist"
)

// Initialize resets g's components and returns a list holding one singleton
// PartialTree per vertex, in vertex insertion order.
// Complexity: O(V + E log Δ) where Δ is the maximum degree.
func Initialize(g *core.Graph) *treelist.List {
	g.ResetComponents()
	list := treelist.New()
	for _, v := range g.Vertices() {
		list.Append(core.NewPartialTree(v))
	}

	return list
}

// Execute runs partial-tree merging over list until one tree remains and
// returns the chosen arcs. The list is consumed.
//
// Steps, while more than one tree is live:
//  1. Remove the front tree Tx (root v1).
//  2. Pop Tx's lightest arc; discard it while its far end already resolves to v1.
//  3. Remove the tree Ty rooted at the far end's representative v2.
//     If no such tree is listed, v2 was already absorbed: drop the arc, go on.
//  4. Record the arc, merge Ty into Tx, append Tx at the rear.
//
// Returns ErrInvalidGraph for a nil list, and ErrDisconnected (which also
// matches minheap.ErrEmptyQueue) when a tree runs out of outgoing arcs.
func Execute(list *treelist.List) ([]*core.Arc, error) {
	if list == nil {
		return nil, ErrInvalidGraph
	}

	count := list.Size()
	arcs := make([]*core.Arc, 0, max(count-1, 0))
	for count > 1 {
		// 1. Next component in the rotation.
		tx, err := list.RemoveFront()
		if err != nil {
			return nil, fmt.Errorf("mst: %d trees expected: %w", count, err)
		}
		v1 := tx.Root()

		// 2. Lightest arc that still leaves Tx.
		a, v2, err := nextBoundaryArc(tx)
		if err != nil {
			return nil, fmt.Errorf("%w: component of %s: %w", ErrDisconnected, v1.ID, err)
		}

		// 3. Partner component.
		ty, ok := list.RemoveContaining(v2)
		if !ok {
			continue
		}

		// 4. Merge and requeue.
		arcs = append(arcs, a)
		if err := tx.Merge(ty); err != nil {
			return nil, err
		}
		list.Append(tx)
		count--
	}

	return arcs, nil
}

// nextBoundaryArc pops arcs from t's queue until one whose far endpoint lies
// outside t, and returns it with the representative of that endpoint.
func nextBoundaryArc(t *core.PartialTree) (*core.Arc, *core.Vertex, error) {
	root := t.Root()
	for {
		a, err := t.Arcs().ExtractMin()
		if err != nil {
			return nil, nil, err
		}
		if v2 := core.Find(a.To); v2 != root {
			return a, v2, nil
		}
		// Internal arc: both ends merged already.
	}
}

// PartialTrees computes the MST of g by partial-tree merging.
// A graph with zero or one vertex yields an empty, non-nil slice.
func PartialTrees(g *core.Graph) ([]*core.Arc, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}

	return Execute(Initialize(g))
}
