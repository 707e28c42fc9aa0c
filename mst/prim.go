// prim.go: reference Prim grown from a single root.

package mst

import (
	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/minheap"
)

// Prim computes the MST of g by growing outwards from root using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : if g is nil.
//   - ErrEmptyRoot          : if root is empty.
//   - core.ErrVertexNotFound: if root does not exist in g.
//   - ErrDisconnected       : if some vertex is unreachable from root.
//
// Steps:
//  1. Mark root visited and push its outgoing arcs.
//  2. Pop the lightest arc; skip it if its far end is visited.
//  3. Otherwise keep it, mark the far end visited, push its arcs to unvisited vertices.
//  4. Fewer than |V|-1 arcs at the end means the graph is disconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, root string) ([]*core.Arc, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	start, err := g.Vertex(root)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	visited := make([]bool, n)
	mst := make([]*core.Arc, 0, n-1)
	pq := minheap.New(core.ArcLess)

	push := func(v *core.Vertex) {
		visited[v.Index] = true
		for _, nb := range v.Neighbors() {
			if !visited[nb.Vertex.Index] {
				pq.Insert(nb.ArcFrom(v))
			}
		}
	}

	// 1. Seed from root.
	push(start)

	// 2–3. Expand until every vertex is in.
	for !pq.IsEmpty() && len(mst) < n-1 {
		a, _ := pq.ExtractMin()
		if visited[a.To.Index] {
			continue
		}
		mst = append(mst, a)
		push(a.To)
	}

	// 4. Unreached vertices remain.
	if len(mst) < n-1 {
		return nil, ErrDisconnected
	}

	return mst, nil
}
