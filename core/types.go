// Package core defines the transaction Graph, its Vertex and Edge records,
// and the per-run algorithm State that traversals and shortest-path runs
// write into.
//
// Vertices and edges live in arenas owned by the Graph and are referenced by
// index handles (VertexID, EdgeID). Incidence lists and edge endpoints hold
// handles, never pointers, so a Clone shares nothing with its source.
//
// Errors:
//
//	ErrEmptyAddress    - vertex address is the empty string.
//	ErrVertexNotFound  - a handle or address does not name a vertex of this graph.
//	ErrEdgeNotFound    - an edge handle is out of range.
//	ErrEmptyGraph      - operation needs at least one vertex.
//	ErrStartFallback   - requested start vertex was replaced by the first vertex.
//	ErrStateMismatch   - a State was sized for a different graph.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyAddress indicates that a vertex address is empty.
	ErrEmptyAddress = errors.New("core: vertex address is empty")

	// ErrVertexNotFound indicates an operation referenced a vertex that is not in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge that is not in the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyGraph indicates an operation that needs at least one vertex.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrStartFallback is returned alongside a usable vertex when the requested
	// start address was empty or unknown and the first vertex was substituted.
	ErrStartFallback = errors.New("core: start vertex not found, using first vertex")

	// ErrStateMismatch indicates a State whose dimensions do not match the graph.
	ErrStateMismatch = errors.New("core: state does not match graph dimensions")
)

// Infinity is the distance of a vertex that has not been reached.
const Infinity uint64 = math.MaxUint64

// VertexID is a stable handle to a vertex inside one Graph.
type VertexID int

// EdgeID is a stable handle to an edge inside one Graph.
type EdgeID int

// NoVertex marks an absent vertex reference (no parent, not found).
const NoVertex VertexID = -1

// Vertex is an address that took part in at least one transaction,
// or was registered explicitly.
type Vertex struct {
	// Address is the unique blockchain address of this vertex.
	Address string

	// incident holds every edge touching this vertex, in insertion order.
	incident []EdgeID
}

// Degree returns the number of incident edges. A self-loop counts once.
func (v *Vertex) Degree() int { return len(v.incident) }

// Edge is one transaction between two vertices.
//
// Edges are undirected for traversal: Adjacent returns the far endpoint
// regardless of which side the transaction originated from.
type Edge struct {
	// From is the sender of the transaction.
	From VertexID

	// To is the receiver of the transaction.
	To VertexID

	// Value is the amount transferred (truncated, in 10^12 units).
	Value float64

	// Gas is the gas used; it is the shortest-path weight.
	Gas uint64

	// GasPrice is the gas price at the time of the transaction.
	GasPrice uint64
}

// Adjacent returns the endpoint of e that is not v.
// For a self-loop it returns v.
func (e Edge) Adjacent(v VertexID) VertexID {
	if e.From == v {
		return e.To
	}
	return e.From
}

// Touches reports whether v is one of the endpoints of e.
func (e Edge) Touches(v VertexID) bool { return e.From == v || e.To == v }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for the given number of vertices and edges.
// Negative values are ignored.
func WithCapacity(vertices, edges int) GraphOption {
	return func(g *Graph) {
		if vertices > 0 {
			g.vertices = make([]Vertex, 0, vertices)
			g.index = make(map[string]VertexID, vertices)
		}
		if edges > 0 {
			g.edges = make([]Edge, 0, edges)
		}
	}
}

// Graph owns every vertex and edge of one transaction dataset.
//
// mu guards the arenas, the address index and the growth of the graph's
// own State. Every accessor takes it, so lookups may run concurrently with
// loading. Slices returned by Incident and the *Vertex from Vertex may be
// stale after the next mutation.
type Graph struct {
	mu sync.RWMutex

	vertices []Vertex            // VertexID → Vertex
	edges    []Edge              // EdgeID → Edge
	index    map[string]VertexID // address → VertexID

	// state is the graph's own algorithm scratch space.
	state *State
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any preallocation requested through options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]VertexID),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = newState(0, 0)

	return g
}
