// Package core defines the graph model the MST solvers run on: Graph, Vertex,
// Arc, Neighbor records, and the PartialTree that represents one component of
// the forest while partial-tree merging is in progress.
//
// Model
//
//   - Graph G = (V, E) is undirected and weighted with non-negative weights.
//   - Every AddArc(u, v, w) appends a neighbor record to both u and v, so the
//     adjacency lists are always bidirectionally consistent.
//   - Vertices() and Arcs() return insertion order; the order is the
//     deterministic tie-breaker for equal weights (see ArcLess).
//   - A graph is built once and then handed to a solver. Building is guarded
//     by a sync.RWMutex; solving is single-threaded and must not overlap with
//     another solve on the same graph.
//
// Components
//
// Each vertex carries an unexported representative link that starts at the
// vertex itself. Find resolves a vertex to its live representative with path
// halving, so chains created by repeated merges stay short. Only
// PartialTree.Merge (re-parenting the absorbed root) and Graph.ResetComponents
// touch the links.
//
// Options (GraphOption):
//
//	– WithMultiArcs()  allow parallel arcs between the same pair
//	– WithLoops()      allow self-loops (they never enter a spanning tree)
//
// Errors:
//
//	ErrEmptyVertexID      - vertex ID is the empty string.
//	ErrVertexNotFound     - requested vertex does not exist.
//	ErrNegativeWeight     - weight is negative or NaN.
//	ErrLoopNotAllowed     - self-loop when loops are disabled.
//	ErrMultiArcNotAllowed - parallel arc when multi-arcs are disabled.
//	ErrInvalidMerge       - merge of a tree with itself or with an absorbed tree.
package core
