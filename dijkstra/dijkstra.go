package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/txgraph/core"
)

// ShortestPaths resets the graph's own State and runs a single-source
// shortest-path search from source over it, returning that State.
//
// See Run for the algorithm and the labels written.
func ShortestPaths(g *core.Graph, source core.VertexID, opts ...Option) (*core.State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	st := g.State()

	return st, Run(g, st, source, opts...)
}

// Run computes shortest gas distances from source to every reachable vertex
// and writes, into st:
//
//   - Distance[v]: minimum total gas (core.Infinity when unreached).
//   - Parent[v]:   predecessor on one shortest path (NoVertex for the source
//     and unreached vertices).
//   - Preds[v]:    every predecessor lying on some shortest path.
//   - Sigma[v]:    number of shortest paths from source to v.
//   - Explored[v]: v was finalized.
//   - the ordered stack: finalized vertices in non-decreasing distance.
//
// st is reset first. Edges are undirected for the search.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. options must be valid (ErrBadInfThreshold).
//  3. st must be sized for g (ErrStateMismatch).
//  4. source must be a vertex of g (ErrVertexNotFound).
//
// A tentative distance that would reach core.Infinity aborts the run with
// ErrDistanceOverflow; st then holds a partial result.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds at most 1 + (strict relaxations) entries.
func Run(g *core.Graph, st *core.State, source core.VertexID, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}
	if !st.Fits(g) {
		return fmt.Errorf("%w: state for %d vertices, graph has %d", ErrStateMismatch, stateOrder(st), g.Order())
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: source handle %d", ErrVertexNotFound, source)
	}

	r := &runner{
		g:       g,
		st:      st,
		options: cfg,
		source:  source,
		pq:      make(nodePQ, 0, 16),
	}
	r.init()

	return r.process()
}

func stateOrder(st *core.State) int {
	if st == nil {
		return 0
	}
	return len(st.Distance)
}

// runner holds the mutable state for a single run.
type runner struct {
	g       *core.Graph
	st      *core.State
	options Options
	source  core.VertexID
	pq      nodePQ
	seq     uint64 // push counter; breaks distance ties in FIFO order
}

// init resets the state and seeds the heap with the source at distance 0.
func (r *runner) init() {
	r.st.Reset()
	r.st.Distance[r.source] = 0
	r.st.Sigma[r.source] = 1
	heap.Init(&r.pq)
	r.push(r.source, 0)
}

func (r *runner) push(v core.VertexID, d uint64) {
	heap.Push(&r.pq, &nodeItem{id: v, dist: d, seq: r.seq})
	r.seq++
}

// process is the main loop: pop the closest unfinalized vertex, finalize it
// and relax its incident edges, until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry from a superseded relaxation.
		if r.st.Explored[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.st.Explored[u] = true
		r.st.PushOrdered(u)
		if u != r.source {
			r.st.IncrementPaths()
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge incident to u and improves the labels of its
// unfinalized far endpoints.
//
// A strictly shorter candidate replaces dist, parent, sigma and preds and
// pushes a new heap entry. An equal candidate adds u as another predecessor
// and adds sigma[u] to sigma[v] without pushing.
func (r *runner) relax(u core.VertexID) error {
	st := r.st
	du := st.Distance[u]
	for _, eid := range r.g.Incident(u) {
		e := r.g.Edge(eid)
		v := e.Adjacent(u)
		if st.Explored[v] {
			continue
		}
		if r.options.InfEdgeThreshold != core.Infinity && e.Gas >= r.options.InfEdgeThreshold {
			continue
		}
		if e.Gas >= core.Infinity-du {
			return fmt.Errorf("%w: %d + %d at %q", ErrDistanceOverflow, du, e.Gas, r.g.Address(v))
		}
		cand := du + e.Gas
		if cand > r.options.MaxDistance {
			continue
		}

		switch {
		case cand < st.Distance[v]:
			st.Distance[v] = cand
			st.Parent[v] = u
			st.Sigma[v] = st.Sigma[u]
			st.Preds[v] = append(st.Preds[v][:0], u)
			r.push(v, cand)
		case cand == st.Distance[v]:
			st.Sigma[v] += st.Sigma[u]
			st.Preds[v] = append(st.Preds[v], u)
		}
	}

	return nil
}

// PathTo backtracks Parent links in st from target to the run's source and
// returns the vertices source..target.
//
// Errors:
//   - ErrGraphNil, ErrStateMismatch, ErrVertexNotFound for invalid input.
//   - ErrUnreachable if target was not reached by the last run.
func PathTo(g *core.Graph, st *core.State, target core.VertexID) ([]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !st.Fits(g) {
		return nil, ErrStateMismatch
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target handle %d", ErrVertexNotFound, target)
	}
	if st.Distance[target] == core.Infinity {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, g.Address(target))
	}

	path := []core.VertexID{}
	for cur := target; cur != core.NoVertex; cur = st.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Distance returns the distance of t in st and whether t was reached.
func Distance(st *core.State, t core.VertexID) (uint64, bool) {
	if st == nil || t < 0 || int(t) >= len(st.Distance) {
		return core.Infinity, false
	}
	d := st.Distance[t]

	return d, d != core.Infinity
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   core.VertexID
	dist uint64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
// Superseded entries stay in the heap and are skipped when popped
// (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
