// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, AddTransaction, Edge, Edges, Size.
// Determinism:
//   - Edge handles are assigned in insertion order.
//   - Incidence lists keep insertion order.
// Concurrency:
//   - Mutations under the write lock; Edge, Edges, HasEdge and Size under the read lock.

package core

import "fmt"

// AddEdge records a transaction between two existing vertices and registers
// it with both endpoints' incidence lists (once for a self-loop).
//
// Errors:
//   - ErrVertexNotFound: src or dst is not a handle of g. The graph is left
//     unchanged; an edge to a vertex of another graph would break incidence.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst VertexID, value float64, gas, gasPrice uint64) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := VertexID(len(g.vertices))
	if src < 0 || src >= n {
		return -1, fmt.Errorf("%w: source handle %d (graph has %d vertices)", ErrVertexNotFound, src, n)
	}
	if dst < 0 || dst >= n {
		return -1, fmt.Errorf("%w: destination handle %d (graph has %d vertices)", ErrVertexNotFound, dst, n)
	}

	return g.addEdgeLocked(src, dst, value, gas, gasPrice), nil
}

// addEdgeLocked assumes g.mu is held for writing and both handles are valid.
func (g *Graph) addEdgeLocked(src, dst VertexID, value float64, gas, gasPrice uint64) EdgeID {
	eid := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{From: src, To: dst, Value: value, Gas: gas, GasPrice: gasPrice})
	g.vertices[src].incident = append(g.vertices[src].incident, eid)
	if dst != src {
		g.vertices[dst].incident = append(g.vertices[dst].incident, eid)
	}

	return eid
}

// AddTransaction inserts both addresses (idempotently) and then the edge
// between them. It is the single entry point used by ingestion.
//
// Errors:
//   - ErrEmptyAddress: from or to is empty.
func (g *Graph) AddTransaction(from, to string, value float64, gas, gasPrice uint64) (EdgeID, error) {
	if from == "" || to == "" {
		return -1, ErrEmptyAddress
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	src := g.addVertexLocked(from)
	dst := g.addVertexLocked(to)

	return g.addEdgeLocked(src, dst, value, gas, gasPrice), nil
}

// HasEdge reports whether id is a valid edge handle of g.
func (g *Graph) HasEdge(id EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && int(id) < len(g.edges)
}

// Edge returns a copy of the edge behind id.
// It panics on an invalid handle; use HasEdge for untrusted input.
func (g *Graph) Edge(id EdgeID) Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[id]
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a snapshot of every edge in handle order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
