package mst

import "github.com/katalvlaran/mstree/core"

// Components splits g into its connected components by breadth-first search.
// Components appear in order of their first vertex; vertices within one
// component appear in BFS order from that vertex.
// Complexity: O(V + E).
func Components(g *core.Graph) [][]*core.Vertex {
	if g == nil {
		return nil
	}
	vertices := g.Vertices()
	visited := make([]bool, len(vertices))

	var comps [][]*core.Vertex
	for _, start := range vertices {
		if visited[start.Index] {
			continue
		}
		visited[start.Index] = true
		queue := []*core.Vertex{start}
		for head := 0; head < len(queue); head++ {
			for _, n := range queue[head].Neighbors() {
				if !visited[n.Vertex.Index] {
					visited[n.Vertex.Index] = true
					queue = append(queue, n.Vertex)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
