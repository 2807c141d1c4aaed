// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and Addresses() return vertices in insertion order.
//
// Concurrency:
//   - AddVertex takes the write lock; address lookups take the read lock.
//   - Handle accessors (Vertex, Address, Incident, Order) take the read lock.

package core

import "fmt"

// AddVertex inserts a vertex for address if missing and returns its handle.
//
// Behavior highlights:
//   - Idempotent: an existing address returns its existing handle and no error.
//
// Errors:
//   - ErrEmptyAddress: if address == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(address string) (VertexID, error) {
	if address == "" {
		return NoVertex, ErrEmptyAddress
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(address), nil
}

// addVertexLocked assumes g.mu is held for writing.
func (g *Graph) addVertexLocked(address string) VertexID {
	if id, ok := g.index[address]; ok {
		return id
	}
	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{Address: address})
	g.index[address] = id

	return id
}

// Contains reports whether a vertex with this address exists.
// Complexity: O(1).
func (g *Graph) Contains(address string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[address]

	return ok
}

// VertexID looks up the handle for address.
// Complexity: O(1).
func (g *Graph) VertexID(address string) (VertexID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	id, ok := g.index[address]
	if !ok {
		return NoVertex, false
	}

	return id, true
}

// Lookup is VertexID with an error instead of a flag.
func (g *Graph) Lookup(address string) (VertexID, error) {
	id, ok := g.VertexID(address)
	if !ok {
		return NoVertex, fmt.Errorf("%w: %q", ErrVertexNotFound, address)
	}

	return id, nil
}

// HasVertex reports whether id is a valid handle of g.
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && int(id) < len(g.vertices)
}

// Vertex returns the vertex behind id. It panics on an invalid handle, like
// slice indexing; use HasVertex first when the handle is untrusted.
func (g *Graph) Vertex(id VertexID) *Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &g.vertices[id]
}

// Address returns the address of the vertex behind id.
func (g *Graph) Address(id VertexID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[id].Address
}

// Incident returns the edges touching id, in insertion order.
// The slice is owned by the graph and must not be modified.
func (g *Graph) Incident(id VertexID) []EdgeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[id].incident
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns every vertex handle in iteration (insertion) order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]VertexID, len(g.vertices))
	for i := range out {
		out[i] = VertexID(i)
	}

	return out
}

// Addresses returns every address in iteration order.
// Complexity: O(V).
func (g *Graph) Addresses() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i].Address
	}

	return out
}

// ResolveStart picks the start vertex for a single-source query.
//
// If address names a vertex, its handle is returned with a nil error.
// If address is empty or unknown, the first vertex in iteration order is
// returned together with an error wrapping ErrStartFallback: the handle is
// usable, and the caller decides whether to log or reject the substitution.
//
// Errors:
//   - ErrEmptyGraph: g has no vertices; the handle is NoVertex.
//   - ErrStartFallback (wrapped): the substitution happened.
func (g *Graph) ResolveStart(address string) (VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.vertices) == 0 {
		return NoVertex, ErrEmptyGraph
	}
	if id, ok := g.index[address]; ok {
		return id, nil
	}
	first := VertexID(0)
	if address == "" {
		return first, fmt.Errorf("%w: no address given, using %q", ErrStartFallback, g.vertices[first].Address)
	}

	return first, fmt.Errorf("%w: %q unknown, using %q", ErrStartFallback, address, g.vertices[first].Address)
}
