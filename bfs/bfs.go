package bfs

import (
	"fmt"

	"github.com/katalvlaran/txgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state for one launch.
type walker struct {
	graph *core.Graph
	state *core.State
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS resets the graph's state and runs breadth-first search from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	st := g.State()
	st.Reset()
	w := newWalker(g, st, o, true)

	return w.res, w.run(start)
}

// newWalker prepares a walker; record=false skips Depth/Parent bookkeeping
// for sweeps that only need visit order.
func newWalker(g *core.Graph, st *core.State, o BFSOptions, record bool) *walker {
	w := &walker{
		graph: g,
		state: st,
		opts:  o,
		queue: make([]queueItem, 0, 16),
		res:   &BFSResult{},
	}
	if record {
		w.res.Depth = make(map[core.VertexID]int)
		w.res.Parent = make(map[core.VertexID]core.VertexID)
	}

	return w
}

// run seeds the queue with start and drains it.
// Vertices already explored in the state are treated as visited, which lets
// component sweeps share one State across launches.
func (w *walker) run(start core.VertexID) error {
	w.enqueue(start, 0, core.NoVertex)
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueue marks id explored at depth d and queues it.
func (w *walker) enqueue(id core.VertexID, d int, parent core.VertexID) {
	w.state.Explored[id] = true
	if w.res.Depth != nil {
		w.res.Depth[id] = d
		if parent != core.NoVertex {
			w.res.Parent[id] = parent
		}
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at vertex %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors marks every incident edge explored and queues each
// unexplored far endpoint, honoring MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, eid := range w.graph.Incident(item.id) {
		w.state.EdgeExplored[eid] = true
		nbr := w.graph.Edge(eid).Adjacent(item.id)
		if !w.state.Explored[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}

// Components resets the graph's state and returns every connected component
// as a list of vertices in BFS visit order. Components appear in the order
// their first vertex occurs in the graph's iteration order.
//
// After return every vertex and every edge is marked explored in g.State().
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	st := g.State()
	st.Reset()

	var comps [][]core.VertexID
	for _, v := range g.Vertices() {
		if st.Explored[v] {
			continue
		}
		w := newWalker(g, st, DefaultOptions(), false)
		if err := w.run(v); err != nil {
			return nil, err
		}
		comps = append(comps, w.res.Order)
	}

	return comps, nil
}

// ConnectedComponents resets the graph's state, launches a BFS from every
// vertex not yet explored, and returns the number of launches, which is the
// number of connected components.
//
// After return every vertex and every edge is marked explored in g.State().
func ConnectedComponents(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	st := g.State()
	st.Reset()

	count := 0
	for _, v := range g.Vertices() {
		if st.Explored[v] {
			continue
		}
		w := newWalker(g, st, DefaultOptions(), false)
		if err := w.run(v); err != nil {
			return 0, err
		}
		count++
	}

	return count, nil
}

// LargestComponent returns the vertices of the largest connected component in
// BFS visit order. On equal sizes the component found first in iteration
// order wins. The graph's state is reset before returning, so the output
// does not depend on, and leaves no, traversal side effects.
//
// An empty graph yields an empty slice.
func LargestComponent(g *core.Graph) ([]core.VertexID, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, err
	}
	defer g.ResetState()

	largest := []core.VertexID{}
	for _, c := range comps {
		if len(c) > len(largest) {
			largest = c
		}
	}

	return largest, nil
}
