// File: api.go
// Role: Read-only summaries and row iterators consumed by reporting layers.
// Policy:
//   - No algorithms here; everything is a projection of the graph and a State.

package core

// GraphStats is a snapshot of catalog sizes and transaction totals.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	SelfLoops     int
	Isolated      int     // vertices with no incident edge
	MaxDegree     int     // largest incident-edge count
	TotalGas      uint64  // saturates at Infinity
	TotalValue    float64 // sum of Edge.Value
	MeanGasPrice  float64 // arithmetic mean over edges (0 when no edges)
	MaxDegreeAddr string  // address of a vertex with MaxDegree (first in iteration order)
}

// Stats produces a read-only snapshot of g.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for i := range g.vertices {
		d := len(g.vertices[i].incident)
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
			st.MaxDegreeAddr = g.vertices[i].Address
		}
	}
	var priceSum float64
	for i := range g.edges {
		e := &g.edges[i]
		if e.From == e.To {
			st.SelfLoops++
		}
		if Infinity-st.TotalGas < e.Gas {
			st.TotalGas = Infinity
		} else {
			st.TotalGas += e.Gas
		}
		st.TotalValue += e.Value
		priceSum += float64(e.GasPrice)
	}
	if len(g.edges) > 0 {
		st.MeanGasPrice = priceSum / float64(len(g.edges))
	}

	return st
}

// DistanceRow is one (address, degree, distance) tuple for persistence.
type DistanceRow struct {
	Address  string
	Degree   int
	Distance uint64 // Infinity when unreached
}

// Reached reports whether the row's vertex was reached by the last run.
func (r DistanceRow) Reached() bool { return r.Distance != Infinity }

// ScoreRow is one (address, degree, score) tuple for persistence.
type ScoreRow struct {
	Address string
	Degree  int
	Score   float64
}

// DistanceRows projects st.Distance onto addresses in iteration order.
//
// Errors:
//   - ErrStateMismatch: st was not sized for g.
func (g *Graph) DistanceRows(st *State) ([]DistanceRow, error) {
	if !st.Fits(g) {
		return nil, ErrStateMismatch
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	rows := make([]DistanceRow, len(g.vertices))
	for i := range g.vertices {
		rows[i] = DistanceRow{
			Address:  g.vertices[i].Address,
			Degree:   len(g.vertices[i].incident),
			Distance: st.Distance[i],
		}
	}

	return rows, nil
}

// ScoreRows joins a score mapping with vertex degrees, in iteration order.
// Vertices missing from scores get a zero score; addresses in scores that
// are not in g are ignored.
func (g *Graph) ScoreRows(scores map[string]float64) []ScoreRow {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rows := make([]ScoreRow, len(g.vertices))
	for i := range g.vertices {
		addr := g.vertices[i].Address
		rows[i] = ScoreRow{Address: addr, Degree: len(g.vertices[i].incident), Score: scores[addr]}
	}

	return rows
}
