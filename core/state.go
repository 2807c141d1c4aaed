// File: state.go
// Role: Per-run algorithm scratch space, indexed by VertexID / EdgeID.
// Concurrency:
//   - A State is not safe for concurrent use. Give each goroutine its own.
//   - Several States may read the same Graph concurrently.

package core

// State holds the transient labels written by traversals and shortest-path
// runs. Keeping them apart from Vertex lets independent analyses query the
// same Graph, each with its own State.
//
// Slices are indexed by VertexID (or EdgeID for EdgeExplored) and are exported
// so that algorithm packages can update them without call overhead.
type State struct {
	// Explored marks vertices that BFS reached or SSSP finalized.
	Explored []bool

	// EdgeExplored marks edges traversed by BFS. SSSP does not touch it.
	EdgeExplored []bool

	// Distance is the shortest known distance from the last source
	// (Infinity when unreached).
	Distance []uint64

	// Parent is the predecessor on one shortest path (NoVertex if none).
	Parent []VertexID

	// Preds lists every predecessor that lies on some shortest path.
	Preds [][]VertexID

	// Sigma counts shortest paths from the source.
	Sigma []float64

	// Delta is the dependency accumulated during back-propagation.
	Delta []float64

	// ordered is the stack of vertices in non-decreasing finalized distance.
	ordered []VertexID

	// paths counts (source, target) pairs finalized since the last Reset.
	paths uint64
}

// newState allocates a reset State for n vertices and m edges.
func newState(n, m int) *State {
	s := &State{}
	s.grow(n, m)

	return s
}

// NewState allocates an independent State sized for g.
// Complexity: O(V + E).
func (g *Graph) NewState() *State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return newState(len(g.vertices), len(g.edges))
}

// State returns the graph's own State, grown to the current graph size.
// Operations such as bfs.ConnectedComponents write here so that callers can
// observe their side effects afterwards.
func (g *Graph) State() *State {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state.grow(len(g.vertices), len(g.edges))

	return g.state
}

// ResetState clears the graph's own State.
func (g *Graph) ResetState() { g.State().Reset() }

// grow extends every slice to n vertices and m edges; new slots start reset.
func (s *State) grow(n, m int) {
	for len(s.Distance) < n {
		s.Explored = append(s.Explored, false)
		s.Distance = append(s.Distance, Infinity)
		s.Parent = append(s.Parent, NoVertex)
		s.Preds = append(s.Preds, nil)
		s.Sigma = append(s.Sigma, 0)
		s.Delta = append(s.Delta, 0)
	}
	for len(s.EdgeExplored) < m {
		s.EdgeExplored = append(s.EdgeExplored, false)
	}
}

// Reset restores every label to its initial value: unexplored, infinite
// distance, no parent, no predecessors, zero sigma and delta. The ordered
// stack and the path counter are emptied.
// Predecessor slices keep their capacity so that repeated runs reuse memory.
//
// Complexity: O(V + E).
func (s *State) Reset() {
	for i := range s.Distance {
		s.Explored[i] = false
		s.Distance[i] = Infinity
		s.Parent[i] = NoVertex
		s.Preds[i] = s.Preds[i][:0]
		s.Sigma[i] = 0
		s.Delta[i] = 0
	}
	for i := range s.EdgeExplored {
		s.EdgeExplored[i] = false
	}
	s.ordered = s.ordered[:0]
	s.paths = 0
}

// Fits reports whether s has exactly one slot per vertex and edge of g.
func (s *State) Fits(g *Graph) bool {
	if s == nil || g == nil {
		return false
	}
	return len(s.Distance) == g.Order() && len(s.EdgeExplored) == g.Size()
}

// PushOrdered records v as the next vertex finalized by a shortest-path run.
func (s *State) PushOrdered(v VertexID) { s.ordered = append(s.ordered, v) }

// PopOrdered removes and returns the most recently finalized vertex.
// It returns NoVertex when the stack is empty.
func (s *State) PopOrdered() VertexID {
	n := len(s.ordered)
	if n == 0 {
		return NoVertex
	}
	v := s.ordered[n-1]
	s.ordered = s.ordered[:n-1]

	return v
}

// HasOrdered reports whether the ordered stack holds any vertex.
func (s *State) HasOrdered() bool { return len(s.ordered) > 0 }

// ResetOrdered empties the ordered stack without touching other labels.
func (s *State) ResetOrdered() { s.ordered = s.ordered[:0] }

// Ordered returns a copy of the ordered stack, bottom (source) first.
func (s *State) Ordered() []VertexID {
	out := make([]VertexID, len(s.ordered))
	copy(out, s.ordered)

	return out
}

// IncrementPaths bumps the diagnostic shortest-path counter.
func (s *State) IncrementPaths() { s.paths++ }

// Paths returns the diagnostic shortest-path counter.
func (s *State) Paths() uint64 { return s.paths }

// AllExplored reports whether every vertex and every edge is marked explored.
func (s *State) AllExplored() bool {
	for _, e := range s.Explored {
		if !e {
			return false
		}
	}
	for _, e := range s.EdgeExplored {
		if !e {
			return false
		}
	}
	return true
}

// NoneExplored reports whether no vertex and no edge is marked explored.
func (s *State) NoneExplored() bool {
	for _, e := range s.Explored {
		if e {
			return false
		}
	}
	for _, e := range s.EdgeExplored {
		if e {
			return false
		}
	}
	return true
}
