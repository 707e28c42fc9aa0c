// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstree/builder"
	"github.com/katalvlaran/mstree/core"
)

func TestTopologies_Counts(t *testing.T) {
	cases := []struct {
		name  string
		con   builder.Constructor
		verts int
		arcs  int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(5), 5, 5},
		{"star", builder.Star(5), 5, 4},
		{"complete", builder.Complete(5), 5, 10},
		{"complete single", builder.Complete(1), 1, 0},
		{"sparse p=1", builder.RandomSparse(4, 1), 4, 6},
		{"sparse p=0", builder.RandomSparse(4, 0), 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.verts, g.VertexCount())
			assert.Equal(t, tc.arcs, g.ArcCount())
			for _, a := range g.Arcs() {
				assert.Equal(t, builder.DefaultArcWeight, a.Weight)
			}
		})
	}
}

func TestConstructors_Validation(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"path too small", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"cycle too small", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"star too small", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"complete empty", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"sparse bad p", builder.RandomSparse(3, 1.5), nil, builder.ErrInvalidProbability},
		{"sparse no rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"connected no rng", builder.RandomConnected(3, 2), nil, builder.ErrNeedRandSource},
		{"connected too few arcs", builder.RandomConnected(4, 2), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"connected too many arcs", builder.RandomConnected(4, 7), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooManyArcs},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomConnected(t *testing.T) {
	for _, m := range []int{9, 20, 40, 45} {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(3), builder.WithIntWeight(1, 9)},
				builder.RandomConnected(10, m))
			require.NoError(t, err)
			assert.Equal(t, 10, g.VertexCount())
			assert.Equal(t, m, g.ArcCount())
			assertConnected(t, g)
			for _, a := range g.Arcs() {
				assert.GreaterOrEqual(t, a.Weight, 1.0)
				assert.LessOrEqual(t, a.Weight, 9.0)
			}
		})
	}
}

// TestRandom_Deterministic checks that a fixed seed reproduces the same graph.
func TestRandom_Deterministic(t *testing.T) {
	build := func() []string {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
			builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		var out []string
		for _, a := range g.Arcs() {
			out = append(out, a.String())
		}
		return out
	}
	assert.Equal(t, build(), build())
}

func TestOptions(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithIDScheme(func(i int) string { return fmt.Sprintf("V%d", i) }),
			builder.WithConstantWeight(7),
		},
		builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"V0", "V1", "V2"}, g.VertexIDs())
	assert.Equal(t, 14.0, core.TotalWeight(g.Arcs()))

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(-1, 3) })

	// Without an RNG the stochastic weight functions fall back to the default.
	assert.Equal(t, builder.DefaultArcWeight, builder.IntWeightFn(3, 9)(nil))
	assert.Equal(t, builder.DefaultArcWeight, builder.UniformWeightFn(3, 9)(nil))
}

// assertConnected walks the graph from its first vertex.
func assertConnected(t *testing.T, g *core.Graph) {
	t.Helper()
	vs := g.Vertices()
	if len(vs) == 0 {
		return
	}
	seen := map[*core.Vertex]bool{vs[0]: true}
	stack := []*core.Vertex{vs[0]}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range v.Neighbors() {
			if !seen[n.Vertex] {
				seen[n.Vertex] = true
				stack = append(stack, n.Vertex)
			}
		}
	}
	assert.Len(t, seen, len(vs))
}
