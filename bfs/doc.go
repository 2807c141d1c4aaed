// Package bfs provides breadth-first traversal of a core.Graph for
// connectivity metrics.
//
// What
//
//   - BFS: single-source walk returning visit Order, hop Depth and Parent links.
//   - Components: every connected component, each in BFS visit order.
//   - ConnectedComponents: number of BFS launches needed to cover the graph.
//   - LargestComponent: the biggest component (first wins ties), with the
//     graph's state reset afterwards.
//
// Side effects
//
//	Traversals mark vertices and traversed edges in the graph's own
//	core.State (Explored / EdgeExplored). After Components or
//	ConnectedComponents every vertex and every edge is explored; BFS marks
//	only the start's component. Each entry point resets the state first, so
//	re-running on an already-processed graph reproduces the first result.
//
// Determinism
//
//	Launch order follows the graph's insertion order and neighbors are
//	scanned in incidence (insertion) order, so visit sequences are fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the result.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start handle is not in the graph.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
