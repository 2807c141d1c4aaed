// File: methods_clone.go
// Role: Deep copies and induced subgraphs.
// Determinism:
//   - Clone preserves every handle: vertex i of the clone is vertex i of the source.
//   - Induced renumbers vertices in the order given by the caller.
// Concurrency:
//   - Read lock on the source; the result is a fresh, independent graph.

package core

// Clone returns a deep copy of g: vertices, edges, incidence lists and the
// address index are rebuilt, never aliased. The clone starts with a fresh,
// reset State, so algorithm labels on either graph are invisible to the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		vertices: make([]Vertex, len(g.vertices)),
		edges:    make([]Edge, len(g.edges)),
		index:    make(map[string]VertexID, len(g.index)),
	}
	for i := range g.vertices {
		src := &g.vertices[i]
		inc := make([]EdgeID, len(src.incident))
		copy(inc, src.incident)
		clone.vertices[i] = Vertex{Address: src.Address, incident: inc}
		clone.index[src.Address] = VertexID(i)
	}
	copy(clone.edges, g.edges)
	clone.state = newState(len(clone.vertices), len(clone.edges))

	return clone
}

// Induced returns a new graph holding the given vertices of g and every edge
// of g whose endpoints are both among them. Handles in ids that are not part
// of g, and duplicates, are skipped.
//
// Complexity: O(k + sum of degrees of the kept vertices).
func (g *Graph) Induced(ids []VertexID) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacity(len(ids), 0))
	remap := make(map[VertexID]VertexID, len(ids))
	for _, id := range ids {
		if id < 0 || int(id) >= len(g.vertices) {
			continue
		}
		if _, dup := remap[id]; dup {
			continue
		}
		remap[id] = out.addVertexLocked(g.vertices[id].Address)
	}

	// Walk incidence of kept vertices; seen makes each edge count once.
	seen := make(map[EdgeID]struct{})
	for _, id := range ids {
		if _, ok := remap[id]; !ok {
			continue
		}
		for _, eid := range g.vertices[id].incident {
			if _, dup := seen[eid]; dup {
				continue
			}
			e := g.edges[eid]
			from, okFrom := remap[e.From]
			to, okTo := remap[e.To]
			if !okFrom || !okTo {
				continue
			}
			seen[eid] = struct{}{}
			out.addEdgeLocked(from, to, e.Value, e.Gas, e.GasPrice)
		}
	}

	return out
}
