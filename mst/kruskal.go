// kruskal.go: reference Kruskal with a rank-and-compression disjoint set.

package mst

import (
	"sort"

	"github.com/katalvlaran/mstree/core"
)

// Kruskal computes the MST of g with a disjoint-set (union-find) using path
// compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if g is nil.
//   - ErrDisconnected : if |V| > 1 and the graph is not connected.
//
// Steps:
//  1. Collect arcs via g.Arcs(), skip self-loops.
//  2. Stable-sort by core.ArcLess (weight, then insertion order).
//  3. Walk the sorted arcs, keeping each arc whose endpoints are in different sets.
//  4. Stop at |V|-1 arcs; fewer means the graph is disconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]*core.Arc, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	n := g.VertexCount()
	if n <= 1 {
		return []*core.Arc{}, nil
	}

	// 1. Filter self-loops: they never join two sets.
	all := g.Arcs()
	arcs := make([]*core.Arc, 0, len(all))
	for _, a := range all {
		if a.From != a.To {
			arcs = append(arcs, a)
		}
	}

	// 2. Ascending weight; ties keep insertion order.
	sort.SliceStable(arcs, func(i, j int) bool {
		return core.ArcLess(arcs[i], arcs[j])
	})

	// 3. Disjoint sets indexed by Vertex.Index.
	ds := newDisjointSet(n)
	mst := make([]*core.Arc, 0, n-1)
	for _, a := range arcs {
		if ds.union(a.From.Index, a.To.Index) {
			mst = append(mst, a)
			if len(mst) == n-1 {
				break
			}
		}
	}

	// 4. Short of |V|-1 arcs means more than one component.
	if len(mst) < n-1 {
		return nil, ErrDisconnected
	}

	return mst, nil
}

// disjointSet is a union-find over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of u, compressing the path to its grandparent on the way.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank. It reports false if they were
// already in the same set.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
