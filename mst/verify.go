package mst

import (
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

// Verify checks that arcs form a spanning tree of g: exactly |V|-1 arcs, all
// endpoints in g, no cycle. Weight optimality is not checked.
//
// Returns ErrInvalidGraph, ErrNotSpanning or ErrCycle.
// Complexity: O(V + A·α(V)).
func Verify(g *core.Graph, arcs []*core.Arc) error {
	if g == nil {
		return ErrInvalidGraph
	}
	n := g.VertexCount()
	if n == 0 {
		if len(arcs) != 0 {
			return fmt.Errorf("%d arcs on an empty graph: %w", len(arcs), ErrNotSpanning)
		}
		return nil
	}
	if len(arcs) != n-1 {
		return fmt.Errorf("%d arcs for %d vertices: %w", len(arcs), n, ErrNotSpanning)
	}

	ds := newDisjointSet(n)
	for _, a := range arcs {
		if !owns(g, a.From) || !owns(g, a.To) {
			return fmt.Errorf("arc %s is not in the graph: %w", a, ErrNotSpanning)
		}
		if !ds.union(a.From.Index, a.To.Index) {
			return fmt.Errorf("arc %s closes a cycle: %w", a, ErrCycle)
		}
	}

	// n-1 successful unions over n vertices leave a single set.
	return nil
}

func owns(g *core.Graph, v *core.Vertex) bool {
	if v == nil {
		return false
	}
	got, err := g.Vertex(v.ID)

	return err == nil && got == v
}
