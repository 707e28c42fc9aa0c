package treelist_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstree/core"
	"github.com/katalvlaran/mstree/treelist"
)

// singletons returns n isolated vertices V0..V(n-1) and one tree per vertex.
func singletons(t *testing.T, n int) ([]*core.Vertex, []*core.PartialTree) {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}
	vs := g.Vertices()
	trees := make([]*core.PartialTree, n)
	for i, v := range vs {
		trees[i] = core.NewPartialTree(v)
	}

	return vs, trees
}

func roots(l *treelist.List) []string {
	var out []string
	for tr := range l.All() {
		out = append(out, tr.Root().ID)
	}

	return out
}

func TestRemoveFront_Empty(t *testing.T) {
	l := treelist.New()
	_, err := l.RemoveFront()
	assert.ErrorIs(t, err, treelist.ErrEmptyList)
	assert.Zero(t, l.Size())
	assert.Equal(t, "[]", l.String())
}

// TestAppendRemoveFront_FIFO checks queue order and wrap-around after refills.
func TestAppendRemoveFront_FIFO(t *testing.T) {
	_, trees := singletons(t, 4)
	l := treelist.New()
	for _, tr := range trees {
		l.Append(tr)
	}
	require.Equal(t, 4, l.Size())
	assert.Equal(t, []string{"V0", "V1", "V2", "V3"}, roots(l))

	front, err := l.RemoveFront()
	require.NoError(t, err)
	assert.Same(t, trees[0], front)

	// Re-append the removed tree: it goes behind V3.
	l.Append(front)
	assert.Equal(t, []string{"V1", "V2", "V3", "V0"}, roots(l))

	for _, want := range []string{"V1", "V2", "V3", "V0"} {
		tr, err := l.RemoveFront()
		require.NoError(t, err)
		assert.Equal(t, want, tr.Root().ID)
	}
	assert.Zero(t, l.Size())
	_, err = l.RemoveFront()
	assert.ErrorIs(t, err, treelist.ErrEmptyList)
}

func TestRemoveContaining(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		target int
		want   []string
	}{
		{"sole node", 1, 0, nil},
		{"front", 3, 0, []string{"V1", "V2"}},
		{"middle", 3, 1, []string{"V0", "V2"}},
		{"rear", 3, 2, []string{"V0", "V1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs, trees := singletons(t, tc.n)
			l := treelist.New()
			for _, tr := range trees {
				l.Append(tr)
			}

			got, ok := l.RemoveContaining(vs[tc.target])
			require.True(t, ok)
			assert.Same(t, trees[tc.target], got)
			assert.Equal(t, tc.n-1, l.Size())
			assert.Equal(t, tc.want, roots(l))
		})
	}
}

// TestRemoveContaining_RearThenAppend verifies the rear pointer moves back
// when the rear node is removed, so the next append lands in the right place.
func TestRemoveContaining_RearThenAppend(t *testing.T) {
	vs, trees := singletons(t, 4)
	l := treelist.New()
	for _, tr := range trees[:3] {
		l.Append(tr)
	}
	_, ok := l.RemoveContaining(vs[2])
	require.True(t, ok)
	l.Append(trees[3])
	assert.Equal(t, []string{"V0", "V1", "V3"}, roots(l))

	front, err := l.RemoveFront()
	require.NoError(t, err)
	assert.Equal(t, "V0", front.Root().ID)
}

func TestRemoveContaining_NotFound(t *testing.T) {
	vs, trees := singletons(t, 3)
	l := treelist.New()

	_, ok := l.RemoveContaining(vs[0])
	assert.False(t, ok, "empty list")

	l.Append(trees[0])
	l.Append(trees[1])
	_, ok = l.RemoveContaining(vs[2])
	assert.False(t, ok)
	_, ok = l.RemoveContaining(nil)
	assert.False(t, ok)
	assert.Equal(t, 2, l.Size())
}

// TestRemoveContaining_MatchesRootOnly checks that an absorbed vertex is not a hit.
func TestRemoveContaining_MatchesRootOnly(t *testing.T) {
	vs, trees := singletons(t, 3)
	require.NoError(t, trees[0].Merge(trees[1]))

	l := treelist.New()
	l.Append(trees[0])
	l.Append(trees[2])

	_, ok := l.RemoveContaining(vs[1])
	assert.False(t, ok)
	got, ok := l.RemoveContaining(vs[0])
	require.True(t, ok)
	assert.Same(t, trees[0], got)
}

func TestAll_EarlyStop(t *testing.T) {
	_, trees := singletons(t, 5)
	l := treelist.New()
	for _, tr := range trees {
		l.Append(tr)
	}

	var seen int
	for range l.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
	assert.Equal(t, 5, l.Size())
	assert.Equal(t, "[V0(size=1 arcs=0) V1(size=1 arcs=0) V2(size=1 arcs=0) V3(size=1 arcs=0) V4(size=1 arcs=0)]", l.String())
}
