// Package mst computes Minimum Spanning Trees of an undirected, weighted
// *core.Graph. The primary solver is partial-tree merging; Kruskal and Prim
// are provided alongside it and serve as independent references.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of arcs in T is minimized.
//
//   - Partial-tree merging:
//     Every vertex starts as its own PartialTree whose min-heap holds the vertex's incident arcs.
//     The trees sit in a circular list (treelist.List) used as a work queue. Each round takes the
//     front tree, pops its lightest arc that still leaves the component, removes the tree on the
//     other side from the list, merges the two and appends the result at the rear. Arcs that became
//     internal through earlier merges are discarded lazily when they surface.
//
// Algorithms Provided
//
//   - PartialTrees(g *core.Graph) ([]*core.Arc, error)
//     Initialize + Execute. Time O(V² + E log E): every round scans the list once (O(V)) and every
//     arc is inserted, melded and extracted a bounded number of times.
//
//   - Kruskal(g *core.Graph) ([]*core.Arc, error)
//     Sort all arcs by weight, add those joining two disjoint sets. O(E log E + α(V)·E).
//
//   - Prim(g *core.Graph, root string) ([]*core.Arc, error)
//     Grow one tree from root with a min-heap of candidate arcs. O(E log V).
//
//   - Compute(g, opts...) (Result, error) dispatches on WithMethod and totals the weight.
//
//   - Verify(g, arcs) error checks that arcs form a spanning tree of g.
//
// Error Conditions
//
//	- ErrInvalidGraph  graph or list is nil.
//	- ErrEmptyRoot     Prim was given an empty root.
//	- ErrUnknownMethod Compute was given an unsupported method name.
//	- ErrDisconnected  the graph has more than one connected component. PartialTrees reports it
//	                   when a component's queue runs dry (errors.Is also matches
//	                   minheap.ErrEmptyQueue); no partial forest is returned.
//
// Determinism
//
//	Vertices and arcs are visited in insertion order and heaps break weight ties by insertion
//	sequence, so repeated runs on the same graph return the same arcs in the same order.
//	Runs on one graph must not overlap: PartialTrees mutates the vertices' representative links
//	(it resets them before starting).
package mst
