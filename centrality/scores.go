package centrality

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
)

// Scores maps an address to its betweenness centrality.
type Scores map[string]float64

// Ranked is one entry of a ranking.
type Ranked struct {
	Address string
	Score   float64
}

// byScoreDesc orders Ranked values highest score first, then by address.
func byScoreDesc(a, b interface{}) int {
	x, y := a.(Ranked), b.(Ranked)
	switch {
	case x.Score > y.Score:
		return -1
	case x.Score < y.Score:
		return 1
	case x.Address < y.Address:
		return -1
	case x.Address > y.Address:
		return 1
	}
	return 0
}

// Top returns the k highest-scoring addresses, ties broken by address
// ascending. k <= 0 or k > len(s) returns every entry, sorted the same way.
//
// Complexity: O(V log V).
func (s Scores) Top(k int) []Ranked {
	if k <= 0 || k > len(s) {
		k = len(s)
	}
	pq := priorityqueue.NewWith(byScoreDesc)
	for addr, score := range s {
		pq.Enqueue(Ranked{Address: addr, Score: score})
	}

	out := make([]Ranked, 0, k)
	for len(out) < k {
		v, ok := pq.Dequeue()
		if !ok {
			break
		}
		out = append(out, v.(Ranked))
	}

	return out
}

// Max returns the highest-scoring entry, or false for empty Scores.
func (s Scores) Max() (Ranked, bool) {
	top := s.Top(1)
	if len(top) == 0 {
		return Ranked{}, false
	}
	return top[0], true
}
