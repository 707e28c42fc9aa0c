package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstree/core"
)

func vertex(t *testing.T, g *core.Graph, id string) *core.Vertex {
	t.Helper()
	v, err := g.Vertex(id)
	require.NoError(t, err)

	return v
}

// TestNewPartialTree_SeedsQueue checks one outgoing arc per neighbor record, lightest first.
func TestNewPartialTree_SeedsQueue(t *testing.T) {
	g := buildTriangle(t)
	a := vertex(t, g, "A")

	tree := core.NewPartialTree(a)
	assert.Same(t, a, tree.Root())
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, 2, tree.Arcs().Len())
	assert.True(t, tree.Contains(a))
	assert.Equal(t, "A(size=1 arcs=2)", tree.String())

	first, err := tree.Arcs().ExtractMin()
	require.NoError(t, err)
	assert.Same(t, a, first.From)
	assert.Equal(t, "B", first.To.ID)
	assert.Equal(t, 1.0, first.Weight)

	second, err := tree.Arcs().ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "{A C 3}", second.String())
}

func TestPartialTree_Merge(t *testing.T) {
	g := buildTriangle(t)
	a, b, c := vertex(t, g, "A"), vertex(t, g, "B"), vertex(t, g, "C")
	ta, tb, tc := core.NewPartialTree(a), core.NewPartialTree(b), core.NewPartialTree(c)

	require.NoError(t, ta.Merge(tb))
	assert.Equal(t, 2, ta.Size())
	assert.Equal(t, 4, ta.Arcs().Len())
	assert.Equal(t, 0, tb.Size())
	assert.True(t, tb.Arcs().IsEmpty())
	assert.True(t, ta.Contains(b))
	assert.Same(t, a, core.Find(b))

	// Merge the A-component into C: B now sits two links away from C.
	require.NoError(t, tc.Merge(ta))
	assert.Same(t, c, core.Find(a))
	assert.Same(t, c, core.Find(b))
	assert.Equal(t, 3, tc.Size())
	assert.Equal(t, 6, tc.Arcs().Len())

	g.ResetComponents()
	assert.Same(t, a, core.Find(a))
	assert.Same(t, b, core.Find(b))
}

func TestPartialTree_MergeInvalid(t *testing.T) {
	g := buildTriangle(t)
	ta := core.NewPartialTree(vertex(t, g, "A"))
	tb := core.NewPartialTree(vertex(t, g, "B"))

	assert.ErrorIs(t, ta.Merge(nil), core.ErrInvalidMerge)
	assert.ErrorIs(t, ta.Merge(ta), core.ErrInvalidMerge)

	require.NoError(t, ta.Merge(tb))
	assert.ErrorIs(t, ta.Merge(tb), core.ErrInvalidMerge, "absorbed tree cannot merge twice")

	// A second singleton for an already-absorbed vertex is rejected too.
	stale := core.NewPartialTree(vertex(t, g, "B"))
	assert.ErrorIs(t, ta.Merge(stale), core.ErrInvalidMerge)
}

// TestFind_PathHalving builds a chain of merges and checks links are shortened.
func TestFind_PathHalving(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"V0", "V1", "V2", "V3", "V4"}
	for i := 1; i < len(ids); i++ {
		_, err := g.AddArc(ids[i-1], ids[i], float64(i))
		require.NoError(t, err)
	}

	// V0 <- V1 <- V2 <- V3 <- V4 : each new root absorbs the previous component.
	prev := core.NewPartialTree(vertex(t, g, ids[0]))
	for _, id := range ids[1:] {
		next := core.NewPartialTree(vertex(t, g, id))
		require.NoError(t, next.Merge(prev))
		prev = next
	}

	root := vertex(t, g, "V4")
	for _, id := range ids {
		assert.Same(t, root, core.Find(vertex(t, g, id)))
	}
	assert.Equal(t, 5, prev.Size())
}
