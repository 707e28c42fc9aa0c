// Package core_test verifies core.Graph construction and lookup contracts.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstree/core"
)

// buildTriangle returns A—B(1), B—C(2), A—C(3).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3}} {
		_, err := g.AddArc(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	require.NoError(t, g.AddVertex("B"))

	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("Z"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{"A", "B"}, g.VertexIDs())

	v, err := g.Vertex("B")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, "B", v.String())

	_, err = g.Vertex("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Vertex("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestAddArc_Validation(t *testing.T) {
	cases := []struct {
		name    string
		opts    []core.GraphOption
		from    string
		to      string
		w       float64
		wantErr error
	}{
		{"empty from", nil, "", "B", 1, core.ErrEmptyVertexID},
		{"empty to", nil, "A", "", 1, core.ErrEmptyVertexID},
		{"negative weight", nil, "A", "B", -1, core.ErrNegativeWeight},
		{"NaN weight", nil, "A", "B", math.NaN(), core.ErrNegativeWeight},
		{"loop rejected", nil, "A", "A", 1, core.ErrLoopNotAllowed},
		{"loop allowed", []core.GraphOption{core.WithLoops()}, "A", "A", 1, nil},
		{"zero weight", nil, "A", "B", 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddArc(tc.from, tc.to, tc.w)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAddArc_MultiArcs(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddArc("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddArc("B", "A", 2)
	assert.ErrorIs(t, err, core.ErrMultiArcNotAllowed)
	assert.False(t, g.Multigraph())

	m := core.NewGraph(core.WithMultiArcs())
	_, err = m.AddArc("A", "B", 1)
	require.NoError(t, err)
	_, err = m.AddArc("B", "A", 2)
	require.NoError(t, err)
	assert.True(t, m.Multigraph())
	assert.Equal(t, 2, m.ArcCount())

	a, err := m.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, 2, a.Degree())
}

// TestAddArc_Symmetric verifies that every arc shows up in both adjacency lists.
func TestAddArc_Symmetric(t *testing.T) {
	g := buildTriangle(t)

	weights := func(id string) map[string]float64 {
		v, err := g.Vertex(id)
		require.NoError(t, err)
		out := make(map[string]float64)
		for _, n := range v.Neighbors() {
			out[n.Vertex.ID] = n.Weight
		}
		return out
	}

	assert.Equal(t, map[string]float64{"B": 1, "C": 3}, weights("A"))
	assert.Equal(t, map[string]float64{"A": 1, "C": 2}, weights("B"))
	assert.Equal(t, map[string]float64{"B": 2, "A": 3}, weights("C"))

	arcs := g.Arcs()
	require.Len(t, arcs, 3)
	for i, a := range arcs {
		assert.Equal(t, uint64(i), a.Seq)
	}
	assert.Equal(t, 6.0, core.TotalWeight(arcs))
}

func TestAddArc_LoopRecordedOnce(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddArc("A", "A", 4)
	require.NoError(t, err)
	assert.True(t, g.Looped())

	a, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Degree())
}

func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := buildTriangle(t)
	a, err := g.Vertex("A")
	require.NoError(t, err)

	ns := a.Neighbors()
	ns[0].Weight = 100
	assert.Equal(t, 1.0, a.Neighbors()[0].Weight)
}
