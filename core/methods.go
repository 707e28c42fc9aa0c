// Package core: Graph construction and lookup.
//
// Vertices and arcs are kept in insertion order so every traversal the
// solvers perform is repeatable.

package core

import (
	"fmt"
	"math"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex returns the vertex for id, creating it if needed.
// Caller must hold g.mu for writing.
func (g *Graph) ensureVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id, Index: len(g.order)}
	v.parent = v
	g.vertices[id] = v
	g.order = append(g.order, v)

	return v
}

// AddArc adds an undirected arc from—to with the given weight and returns it.
// Missing endpoints are created. Both endpoints receive a neighbor record.
//
// Returns ErrEmptyVertexID, ErrNegativeWeight, ErrLoopNotAllowed, ErrMultiArcNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddArc(from, to string, weight float64) (*Arc, error) {
	// 1) Input validation.
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) {
		return nil, fmt.Errorf("%s-%s w=%g: %w", from, to, weight, ErrNegativeWeight)
	}
	if from == to && !g.allowLoops {
		return nil, fmt.Errorf("%s-%s: %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Parallel-arc constraint on the unordered pair.
	key := pairKey(from, to)
	if _, dup := g.pairs[key]; dup && !g.allowMulti {
		return nil, fmt.Errorf("%s-%s: %w", from, to, ErrMultiArcNotAllowed)
	}

	// 3) Materialize endpoints and the arc.
	u := g.ensureVertex(from)
	v := g.ensureVertex(to)
	a := &Arc{From: u, To: v, Weight: weight, Seq: g.nextSeq}
	g.nextSeq++
	g.arcs = append(g.arcs, a)
	g.pairs[key] = struct{}{}

	// 4) Mirror into both adjacency lists; a loop is recorded once.
	u.neighbors = append(u.neighbors, Neighbor{Vertex: v, Weight: weight, seq: a.Seq})
	if u != v {
		v.neighbors = append(v.neighbors, Neighbor{Vertex: u, Weight: weight, seq: a.Seq})
	}

	return a, nil
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}

	return [2]string{a, b}
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrVertexNotFound)
	}

	return v, nil
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Vertex, len(g.order))
	copy(out, g.order)

	return out
}

// VertexIDs returns all vertex IDs in insertion order.
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, len(g.order))
	for i, v := range g.order {
		ids[i] = v.ID
	}

	return ids
}

// Arcs returns every undirected arc once, in insertion order.
// Complexity: O(E).
func (g *Graph) Arcs() []*Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Arc, len(g.arcs))
	copy(out, g.arcs)

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// ArcCount returns |E|.
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.arcs)
}

// ResetComponents points every vertex's representative link back at itself,
// undoing the merges of a previous solver run.
// Complexity: O(V).
func (g *Graph) ResetComponents() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, v := range g.order {
		v.parent = v
	}
}

// TotalWeight sums the weights of arcs.
func TotalWeight(arcs []*Arc) float64 {
	var sum float64
	for _, a := range arcs {
		sum += a.Weight
	}

	return sum
}
