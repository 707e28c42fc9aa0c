// types.go: options, results and sentinel errors for MST computation.

package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstree/core"
)

// ErrInvalidGraph indicates a nil graph or partial-tree list.
var ErrInvalidGraph = errors.New("mst: graph is nil")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("mst: empty root vertex")

// ErrDisconnected indicates that the graph is not connected, so no spanning
// tree covering all vertices exists.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("mst: unknown method")

// ErrNotSpanning indicates that an arc set does not have |V|-1 arcs or does
// not reach every vertex.
var ErrNotSpanning = errors.New("mst: arcs do not span the graph")

// ErrCycle indicates that an arc set contains a cycle.
var ErrCycle = errors.New("mst: arcs contain a cycle")

// MethodPartialTrees selects partial-tree merging (the default).
const MethodPartialTrees = "partial-trees"

// MethodKruskal selects Kruskal's algorithm (sort all arcs and union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// Methods lists the supported method names.
func Methods() []string {
	return []string{MethodPartialTrees, MethodKruskal, MethodPrim}
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
//
// Fields:
//
//	Method string — one of MethodPartialTrees, MethodKruskal or MethodPrim.
//	Root   string — start vertex ID for Prim; empty means the first vertex. Ignored otherwise.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions set up for partial-tree merging.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPartialTrees,
		Root:   "",
	}
}

// Result is the outcome of Compute.
type Result struct {
	// Arcs of the spanning tree; order follows the solver.
	Arcs []*core.Arc

	// TotalWeight is the sum of Arcs' weights.
	TotalWeight float64

	// Method is the solver that produced Arcs.
	Method string
}

// Compute selects and runs the MST algorithm based on opts.
//
//	– MethodPartialTrees: PartialTrees(graph)
//	– MethodKruskal:      Kruskal(graph)
//	– MethodPrim:         Prim(graph, root), root defaulting to the first vertex
//	– otherwise:          ErrUnknownMethod
func Compute(graph *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}

	var (
		arcs []*core.Arc
		err  error
	)
	switch o.Method {
	case MethodPartialTrees:
		arcs, err = PartialTrees(graph)
	case MethodKruskal:
		arcs, err = Kruskal(graph)
	case MethodPrim:
		root := o.Root
		if root == "" {
			if ids := graph.VertexIDs(); len(ids) > 0 {
				root = ids[0]
			}
		}
		if root == "" {
			// Empty graph: nothing to span.
			arcs = []*core.Arc{}
			break
		}
		arcs, err = Prim(graph, root)
	default:
		return Result{}, fmt.Errorf("%q: %w", o.Method, ErrUnknownMethod)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{Arcs: arcs, TotalWeight: core.TotalWeight(arcs), Method: o.Method}, nil
}
