// Package mstree computes minimum spanning trees of weighted undirected
// graphs by repeatedly merging partial trees.
//
// Every vertex starts as a singleton partial tree that owns a min-heap of its
// incident arcs. The trees wait in a circular work queue; each round takes the
// front tree, pulls its lightest arc that leaves the tree, merges the tree on
// the other end into it and sends the result to the back of the queue. When a
// single tree remains, the arcs recorded along the way form the MST.
//
// Layout:
//
//	core/       — Graph, Vertex, Arc and PartialTree with representative links
//	minheap/    — generic meldable min-priority queue
//	treelist/   — circular list of partial trees used as the work queue
//	mst/        — partial-tree MST plus Kruskal and Prim references, Verify
//	builder/    — deterministic and seeded random graph constructors
//	converters/ — plain-text and TOML graph formats
//	cmd/mstree  — command-line front end (compute, generate, version)
//
// Quick example:
//
//	    A─1─B
//	    │   │
//	    3   2
//	    │   │
//	    C───┘
//
//	g := core.NewGraph()
//	g.AddArc("A", "B", 1)
//	g.AddArc("B", "C", 2)
//	g.AddArc("A", "C", 3)
//	arcs, _ := mst.PartialTrees(g) // [{A B 1} {C B 2}]
//
//	go get github.com/katalvlaran/mstree
package mstree
