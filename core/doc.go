// Package core provides the in-memory transaction graph used by every
// txgraph analysis.
//
// The Graph G = (V,E) models a blockchain transaction dataset:
//
//   - V: one Vertex per address, keyed by the address string.
//   - E: one Edge per transaction, carrying Value, Gas and GasPrice.
//     Edges are stored with their sender/receiver but are undirected for
//     traversal; Edge.Adjacent(v) yields the far endpoint.
//
// Storage is an arena owned by the Graph:
//
//	vertices []Vertex            // VertexID = index
//	edges    []Edge              // EdgeID   = index
//	index    map[string]VertexID // address → handle
//
// Incidence lists and edge endpoints reference peers by handle. A Clone
// rebuilds every slice, so a clone and its source never share mutable data,
// and handles of one graph are meaningless in another.
//
// Algorithm state:
//
// Traversal labels (explored flags, distance, parent, predecessor lists,
// sigma, delta, the distance-ordered stack) live in a State, not on the
// vertices. Every Graph owns one State (Graph.State) that holds the side
// effects callers expect to inspect after bfs.ConnectedComponents or
// dijkstra.ShortestPaths; NewState creates further independent States so
// that concurrent read-only analyses never race on a shared reset.
//
// Core Methods:
//
//	AddVertex(address) (VertexID, error)                       // O(1), idempotent
//	AddEdge(src, dst, value, gas, gasPrice) (EdgeID, error)    // O(1), both handles must exist
//	AddTransaction(from, to, value, gas, gasPrice)             // O(1), inserts addresses as needed
//	VertexID(address) / Lookup(address) / Contains(address)    // O(1)
//	Vertex(id) / Edge(id) / Incident(id) / Order() / Size()    // O(1), lock-free
//	Clone() *Graph                                             // O(V+E) deep copy
//	Induced(ids) *Graph                                        // O(k + deg)
//	ResolveStart(address) (VertexID, error)                    // explicit fallback
//	State() / NewState() / ResetState()
//	Stats() / DistanceRows(st) / ScoreRows(scores)
//
// Iteration order is insertion order, which makes every traversal, the
// start-vertex fallback and the partitioning of parallel work reproducible.
package core
