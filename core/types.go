package core

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an arc weight below zero (or NaN).
	ErrNegativeWeight = errors.New("core: arc weight must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiArcNotAllowed indicates a parallel arc was attempted when multi-arcs are disabled.
	ErrMultiArcNotAllowed = errors.New("core: multi-arcs not allowed")

	// ErrInvalidMerge indicates a PartialTree merge whose operands are not two live, distinct trees.
	ErrInvalidMerge = errors.New("core: invalid partial tree merge")
)

// Neighbor is one entry of a vertex's adjacency list: the far endpoint of an
// incident arc and that arc's weight.
type Neighbor struct {
	// Vertex is the far endpoint.
	Vertex *Vertex

	// Weight is the weight of the connecting arc.
	Weight float64

	// seq is the Seq of the arc this record was created from.
	seq uint64
}

// ArcFrom returns the arc v → n.Vertex this record describes, oriented away
// from v. It shares Weight and Seq with the arc added to the graph.
func (n Neighbor) ArcFrom(v *Vertex) *Arc {
	return &Arc{From: v, To: n.Vertex, Weight: n.Weight, Seq: n.seq}
}

// Vertex is a node of the graph.
//
// ID is unique within its Graph and Index is its insertion position.
// The representative link is owned by the Graph and only mutated through
// PartialTree.Merge and Graph.ResetComponents.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Index is the zero-based insertion position within the Graph.
	Index int

	neighbors []Neighbor
	parent    *Vertex
}

// Neighbors returns a copy of the vertex's neighbor records in insertion order.
func (v *Vertex) Neighbors() []Neighbor {
	out := make([]Neighbor, len(v.neighbors))
	copy(out, v.neighbors)

	return out
}

// Degree returns the number of neighbor records (a self-loop counts once).
func (v *Vertex) Degree() int { return len(v.neighbors) }

func (v *Vertex) String() string { return v.ID }

// Arc is a weighted connection between two vertices, stored oriented as
// From → To but semantically undirected.
type Arc struct {
	// From is the near endpoint.
	From *Vertex

	// To is the far endpoint.
	To *Vertex

	// Weight is the non-negative cost of the arc.
	Weight float64

	// Seq is the graph-wide insertion sequence of the undirected arc. Both
	// orientations of one arc share the same Seq.
	Seq uint64
}

// String renders the arc as {From To Weight}.
func (a *Arc) String() string {
	return fmt.Sprintf("{%s %s %s}", a.From.ID, a.To.ID, strconv.FormatFloat(a.Weight, 'g', -1, 64))
}

// Other returns the endpoint of a opposite to v, or nil if v is not an endpoint.
func (a *Arc) Other(v *Vertex) *Vertex {
	switch v {
	case a.From:
		return a.To
	case a.To:
		return a.From
	default:
		return nil
	}
}

// ArcLess orders arcs by ascending weight, then by insertion sequence.
// Complexity: O(1).
func ArcLess(a, b *Arc) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.Seq < b.Seq
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiArcs permits parallel arcs between the same vertices.
func WithMultiArcs() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory undirected, weighted graph.
//
// mu guards vertices, order, arcs and pairs during construction.
type Graph struct {
	mu sync.RWMutex

	allowMulti bool
	allowLoops bool

	vertices map[string]*Vertex
	order    []*Vertex
	arcs     []*Arc
	pairs    map[[2]string]struct{} // unordered endpoint pairs, for the multi-arc check
	nextSeq  uint64
}

// NewGraph creates an empty Graph. By default it rejects loops and parallel arcs.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		pairs:    make(map[[2]string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Multigraph reports whether parallel arcs are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }
