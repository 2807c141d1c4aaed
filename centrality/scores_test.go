package centrality_test

import (
	"testing"

	"github.com/katalvlaran/txgraph/centrality"
	"github.com/stretchr/testify/assert"
)

func TestScores_Top(t *testing.T) {
	s := centrality.Scores{"a": 1, "c": 3, "b": 3, "d": 0}

	assert.Equal(t, []centrality.Ranked{{Address: "b", Score: 3}, {Address: "c", Score: 3}}, s.Top(2))

	all := []centrality.Ranked{{Address: "b", Score: 3}, {Address: "c", Score: 3}, {Address: "a", Score: 1}, {Address: "d", Score: 0}}
	assert.Equal(t, all, s.Top(0))
	assert.Equal(t, all, s.Top(-1))
	assert.Equal(t, all, s.Top(10))

	assert.Empty(t, centrality.Scores{}.Top(3))
}

func TestScores_Max(t *testing.T) {
	best, ok := centrality.Scores{"x": 0.5, "y": 2}.Max()
	assert.True(t, ok)
	assert.Equal(t, centrality.Ranked{Address: "y", Score: 2}, best)

	_, ok = centrality.Scores{}.Max()
	assert.False(t, ok)
}
