package centrality_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/txgraph/centrality"
	"github.com/katalvlaran/txgraph/core"
	"github.com/katalvlaran/txgraph/dijkstra"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// unitGraph builds a graph from address pairs with unit gas.
func unitGraph(t testing.TB, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		_, err := g.AddTransaction(p[0], p[1], 0, 1, 1)
		require.NoError(t, err)
	}
	return g
}

// bridgeGraph is two triangles a-b-c and d-e-f joined by the edge c-d.
func bridgeGraph(t testing.TB) *core.Graph {
	return unitGraph(t,
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"},
		[2]string{"d", "e"}, [2]string{"e", "f"}, [2]string{"f", "d"},
		[2]string{"c", "d"},
	)
}

// randomGraph builds a reproducible sparse graph with random gas.
func randomGraph(t testing.TB, n, m int, seed int64) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, err := g.AddVertex(fmt.Sprintf("0x%03d", i))
		require.NoError(t, err)
	}
	for i := 0; i < m; i++ {
		_, err := g.AddEdge(core.VertexID(rng.Intn(n)), core.VertexID(rng.Intn(n)), 0, uint64(1+rng.Intn(5)), 1)
		require.NoError(t, err)
	}
	return g
}

func TestCompute_BridgeBetweenTriangles(t *testing.T) {
	for _, workers := range []int{1, 2, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			scores, err := centrality.Compute(bridgeGraph(t), centrality.WithWorkers(workers))
			require.NoError(t, err)
			require.Len(t, scores, 6)

			assert.InDelta(t, 6.0, scores["c"], eps)
			assert.InDelta(t, 6.0, scores["d"], eps)
			for _, addr := range []string{"a", "b", "e", "f"} {
				assert.InDelta(t, 0.0, scores[addr], eps, addr)
			}
		})
	}
}

func TestCompute_SplitPaths(t *testing.T) {
	// e-a-b is the only shortest e..b route; e..d has two, one through a.
	g := unitGraph(t,
		[2]string{"a", "b"}, [2]string{"a", "e"}, [2]string{"e", "f"}, [2]string{"f", "c"},
		[2]string{"b", "c"}, [2]string{"b", "d"}, [2]string{"d", "c"},
	)
	scores, err := centrality.Compute(g)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, scores["a"], eps)
}

func TestCompute_SquareAndPath(t *testing.T) {
	square := unitGraph(t, [2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "d"}, [2]string{"c", "d"})
	scores, err := centrality.Compute(square)
	require.NoError(t, err)
	for addr, s := range scores {
		assert.InDelta(t, 0.5, s, eps, addr)
	}

	path := unitGraph(t, [2]string{"x", "y"}, [2]string{"y", "z"})
	scores, err = centrality.Compute(path, centrality.WithWorkers(3))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores["y"], eps)
	assert.InDelta(t, 0.0, scores["x"], eps)
}

func TestCompute_IsolatedAndEmpty(t *testing.T) {
	g := unitGraph(t, [2]string{"a", "b"})
	_, err := g.AddVertex("lonely")
	require.NoError(t, err)

	scores, err := centrality.Compute(g, centrality.WithWorkers(8))
	require.NoError(t, err)
	require.Contains(t, scores, "lonely")
	assert.Zero(t, scores["lonely"])

	empty, err := centrality.Compute(core.NewGraph(), centrality.WithWorkers(4))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCompute_WorkerCountsAgree(t *testing.T) {
	g := randomGraph(t, 60, 150, 7)
	want, err := centrality.Compute(g)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 7} {
		got, err := centrality.Compute(g, centrality.WithWorkers(workers))
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for addr, s := range want {
			assert.InDelta(t, s, got[addr], eps, "workers=%d addr=%s", workers, addr)
		}
	}
}

func TestCompute_LeavesGraphStateAlone(t *testing.T) {
	g := bridgeGraph(t)
	for _, workers := range []int{1, 4} {
		_, err := centrality.Compute(g, centrality.WithWorkers(workers))
		require.NoError(t, err)
		assert.True(t, g.State().NoneExplored(), "workers=%d", workers)
		for _, d := range g.State().Distance {
			assert.Equal(t, core.Infinity, d)
		}
	}
}

func TestCompute_WorkerPanicAbortsRun(t *testing.T) {
	g := randomGraph(t, 20, 40, 3)
	scores, err := centrality.Compute(g,
		centrality.WithWorkers(4),
		centrality.WithOnSource(func(_ int, src core.VertexID) error {
			if src == 5 {
				panic("boom")
			}
			return nil
		}),
	)
	assert.ErrorIs(t, err, centrality.ErrWorkerPanic)
	assert.Nil(t, scores)
}

func TestCompute_HookErrorAbortsRun(t *testing.T) {
	stop := errors.New("stop")
	for _, workers := range []int{1, 3} {
		scores, err := centrality.Compute(bridgeGraph(t),
			centrality.WithWorkers(workers),
			centrality.WithOnSource(func(_ int, src core.VertexID) error {
				if src == 2 {
					return stop
				}
				return nil
			}),
		)
		assert.ErrorIs(t, err, stop)
		assert.Nil(t, scores)
	}
}

func TestCompute_Validation(t *testing.T) {
	_, err := centrality.Compute(nil)
	assert.ErrorIs(t, err, centrality.ErrGraphNil)

	_, err = centrality.Compute(bridgeGraph(t), centrality.WithProgressEvery(0))
	assert.ErrorIs(t, err, centrality.ErrOptionViolation)
}

func TestCompute_OverflowPropagates(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddTransaction("a", "b", 0, ^uint64(0)-1, 1)
	require.NoError(t, err)
	_, err = g.AddTransaction("b", "c", 0, 5, 1)
	require.NoError(t, err)

	_, err = centrality.Compute(g, centrality.WithWorkers(2))
	assert.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)
}

func TestCompute_VerboseProgress(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	_, err := centrality.Compute(bridgeGraph(t),
		centrality.WithVerbose(true),
		centrality.WithProgressEvery(2),
		centrality.WithLogger(logger),
	)
	require.NoError(t, err)

	var progress []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "betweenness progress" {
			progress = append(progress, e)
		}
	}
	require.Len(t, progress, 3)
	assert.Equal(t, 0, progress[0].Data["worker"])
	assert.Equal(t, 2, progress[0].Data["processed"])
	assert.Equal(t, 6, progress[2].Data["processed"])
}

func TestCompute_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := centrality.NewMetrics(reg)

	_, err := centrality.Compute(bridgeGraph(t), centrality.WithWorkers(2), centrality.WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.SourcesProcessed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Workers))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RunDuration))
}

func TestAccumulate_SingleSource(t *testing.T) {
	g := unitGraph(t, [2]string{"x", "y"}, [2]string{"y", "z"})
	x, _ := g.Lookup("x")
	y, _ := g.Lookup("y")
	st := g.NewState()
	require.NoError(t, dijkstra.Run(g, st, x))

	scores := make([]float64, g.Order())
	centrality.Accumulate(st, x, scores)
	assert.InDelta(t, 0.5, scores[y], eps)
	assert.Zero(t, scores[x])
	assert.False(t, st.HasOrdered())
}

// A finalized vertex with no counted shortest paths must not divide by zero
// or push any dependency onto its predecessors.
func TestAccumulate_ZeroSigmaContributesNothing(t *testing.T) {
	g := unitGraph(t, [2]string{"x", "y"}, [2]string{"y", "z"})
	x, _ := g.Lookup("x")
	y, _ := g.Lookup("y")
	z, _ := g.Lookup("z")
	st := g.NewState()
	require.NoError(t, dijkstra.Run(g, st, x))
	require.True(t, st.Explored[z])
	st.Sigma[z] = 0

	scores := make([]float64, g.Order())
	centrality.Accumulate(st, x, scores)
	for v, sc := range scores {
		assert.False(t, math.IsNaN(sc) || math.IsInf(sc, 0), "vertex %d: %v", v, sc)
	}
	assert.Zero(t, st.Delta[y], "z passes no dependency to y")
	assert.Equal(t, []float64{0, 0, 0}, scores)
}
