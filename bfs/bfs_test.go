package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/txgraph/bfs"
	"github.com/katalvlaran/txgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build creates a graph with vertices 0x1..0xn and unit edges between the
// given 1-based vertex pairs.
func build(t *testing.T, n int, pairs ...[2]int) (*core.Graph, []core.VertexID) {
	t.Helper()
	g := core.NewGraph()
	ids := make([]core.VertexID, n+1)
	for i := 1; i <= n; i++ {
		id, err := g.AddVertex(addr(i))
		require.NoError(t, err)
		ids[i] = id
	}
	for _, p := range pairs {
		_, err := g.AddEdge(ids[p[0]], ids[p[1]], 1, 1, 1)
		require.NoError(t, err)
	}

	return g, ids
}

func addr(i int) string { return "0x" + string(rune('0'+i)) }

// requireVisited asserts every vertex and edge explored flag equals want.
func requireVisited(t *testing.T, g *core.Graph, want bool) {
	t.Helper()
	st := g.State()
	for i, e := range st.EdgeExplored {
		require.Equal(t, want, e, "edge %d explored", i)
	}
	for i, v := range st.Explored {
		require.Equal(t, want, v, "vertex %d explored", i)
	}
}

func TestConnectedComponents(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		pairs [][2]int
		want  int
	}{
		{"one component square", 4, [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}}, 1},
		{"two disjoint edges", 4, [][2]int{{1, 2}, {3, 4}}, 2},
		{"four isolated vertices", 4, nil, 4},
		{"empty graph", 0, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := build(t, tc.n, tc.pairs...)
			requireVisited(t, g, false)

			got, err := bfs.ConnectedComponents(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			requireVisited(t, g, true)
		})
	}
}

func TestConnectedComponents_Idempotent(t *testing.T) {
	g, _ := build(t, 5, [2]int{1, 2}, [2]int{3, 4})
	first, err := bfs.ConnectedComponents(g)
	require.NoError(t, err)

	// Second run on an already-explored graph must not see stale marks.
	second, err := bfs.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, 3, first)
	assert.Equal(t, first, second)

	g.ResetState()
	third, err := bfs.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestConnectedComponents_SelfLoop(t *testing.T) {
	g, ids := build(t, 2)
	_, err := g.AddEdge(ids[1], ids[1], 0, 1, 1)
	require.NoError(t, err)

	got, err := bfs.ConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	requireVisited(t, g, true)
}

func TestComponents_Order(t *testing.T) {
	g, ids := build(t, 6, [2]int{1, 2}, [2]int{2, 3}, [2]int{4, 5})
	comps, err := bfs.Components(g)
	require.NoError(t, err)

	require.Len(t, comps, 3)
	assert.Equal(t, []core.VertexID{ids[1], ids[2], ids[3]}, comps[0])
	assert.Equal(t, []core.VertexID{ids[4], ids[5]}, comps[1])
	assert.Equal(t, []core.VertexID{ids[6]}, comps[2])
}

func TestLargestComponent(t *testing.T) {
	g, ids := build(t, 7,
		[2]int{1, 2},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3},
		[2]int{6, 7},
	)
	largest, err := bfs.LargestComponent(g)
	require.NoError(t, err)

	assert.ElementsMatch(t, []core.VertexID{ids[3], ids[4], ids[5]}, largest)
	assert.Equal(t, ids[3], largest[0], "BFS order starts at the first vertex of the component")
	requireVisited(t, g, false)
}

func TestLargestComponent_TieFirstWins(t *testing.T) {
	g, ids := build(t, 4, [2]int{3, 4}, [2]int{1, 2})
	largest, err := bfs.LargestComponent(g)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{ids[1], ids[2]}, largest)
}

func TestLargestComponent_Empty(t *testing.T) {
	largest, err := bfs.LargestComponent(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, largest)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.ConnectedComponents(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.LargestComponent(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g, ids := build(t, 1)
	_, err = bfs.BFS(g, 5)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, ids[1], bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndPath(t *testing.T) {
	// 1-2-3-4 chain plus 1-5
	g, ids := build(t, 5, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{1, 5})
	res, err := bfs.BFS(g, ids[1])
	require.NoError(t, err)

	assert.Equal(t, []core.VertexID{ids[1], ids[2], ids[5], ids[3], ids[4]}, res.Order)
	assert.Equal(t, 3, res.Depth[ids[4]])
	path, err := res.PathTo(ids[4])
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{ids[1], ids[2], ids[3], ids[4]}, path)
}

func TestBFS_MaxDepthAndUnreached(t *testing.T) {
	g, ids := build(t, 4, [2]int{1, 2}, [2]int{2, 3})
	res, err := bfs.BFS(g, ids[1], bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{ids[1], ids[2]}, res.Order)

	_, err = res.PathTo(ids[4])
	assert.Error(t, err)
}

func TestBFS_OnVisitAborts(t *testing.T) {
	g, ids := build(t, 3, [2]int{1, 2}, [2]int{2, 3})
	stop := errors.New("stop")
	var enqueued []core.VertexID
	_, err := bfs.BFS(g, ids[1],
		bfs.WithOnEnqueue(func(id core.VertexID, _ int) { enqueued = append(enqueued, id) }),
		bfs.WithOnVisit(func(id core.VertexID, _ int) error {
			if id == ids[2] {
				return stop
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []core.VertexID{ids[1], ids[2]}, enqueued)
}
