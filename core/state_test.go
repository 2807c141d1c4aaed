package core_test

import (
	"testing"

	"github.com/katalvlaran/txgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_ResetRestoresInitialLabels(t *testing.T) {
	g := newSquare(t)
	st := g.State()
	require.True(t, st.Fits(g))

	for i := range st.Distance {
		st.Explored[i] = true
		st.Distance[i] = uint64(i)
		st.Parent[i] = 0
		st.Preds[i] = append(st.Preds[i], 0, 1)
		st.Sigma[i] = 1
		st.Delta[i] = 0.5
	}
	for i := range st.EdgeExplored {
		st.EdgeExplored[i] = true
	}
	st.PushOrdered(1)
	st.IncrementPaths()
	require.True(t, st.AllExplored())

	g.ResetState()

	assert.True(t, st.NoneExplored())
	for i := range st.Distance {
		assert.Equal(t, core.Infinity, st.Distance[i])
		assert.Equal(t, core.NoVertex, st.Parent[i])
		assert.Empty(t, st.Preds[i])
		assert.Zero(t, st.Sigma[i])
		assert.Zero(t, st.Delta[i])
	}
	assert.False(t, st.HasOrdered())
	assert.Zero(t, st.Paths())
}

func TestState_OrderedStack(t *testing.T) {
	st := core.NewGraph().NewState()
	assert.Equal(t, core.NoVertex, st.PopOrdered(), "empty stack pops NoVertex")

	st.PushOrdered(3)
	st.PushOrdered(1)
	st.PushOrdered(2)
	assert.Equal(t, []core.VertexID{3, 1, 2}, st.Ordered())

	assert.Equal(t, core.VertexID(2), st.PopOrdered())
	assert.Equal(t, core.VertexID(1), st.PopOrdered())
	assert.True(t, st.HasOrdered())
	st.ResetOrdered()
	assert.False(t, st.HasOrdered())
}

func TestState_GrowsWithGraph(t *testing.T) {
	g := core.NewGraph()
	st := g.State()
	assert.Len(t, st.Distance, 0)

	_, err := g.AddTransaction(Addr1, Addr2, 0, 1, 1)
	require.NoError(t, err)
	assert.False(t, st.Fits(g), "state taken before growth is stale")

	st = g.State()
	assert.True(t, st.Fits(g))
	assert.Equal(t, core.Infinity, st.Distance[1])
	assert.Equal(t, core.NoVertex, st.Parent[1])
}

func TestState_IndependentStates(t *testing.T) {
	g := newSquare(t)
	a := g.NewState()
	b := g.NewState()
	a.Explored[0] = true
	a.Distance[0] = 0

	assert.False(t, b.Explored[0])
	assert.Equal(t, core.Infinity, b.Distance[0])
	assert.True(t, g.State().NoneExplored())
}

func TestState_FitsNil(t *testing.T) {
	var st *core.State
	assert.False(t, st.Fits(core.NewGraph()))
	assert.False(t, core.NewGraph().NewState().Fits(nil))
}
