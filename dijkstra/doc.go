// Package dijkstra implements single-source shortest paths over a transaction
// graph, weighted by gas, and records everything Brandes betweenness needs.
//
// The search treats every edge as undirected and processes vertices in order
// of increasing distance using a binary min-heap with lazy decrease-key:
// a vertex is pushed on every strict improvement and stale entries are
// skipped when popped.
//
// Besides Distance and Parent, a run fills, per vertex, the number of
// shortest paths (Sigma) and the list of predecessors on any shortest path
// (Preds), and pushes finalized vertices onto the State's ordered stack.
// Popping that stack yields vertices in non-increasing distance, the order
// dependency accumulation needs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexNotFound    if the source or target handle is out of range.
//   - ErrStateMismatch     if the State was sized for another graph.
//   - ErrDistanceOverflow  if a distance would reach core.Infinity.
//   - ErrUnreachable       from PathTo, if the target was not reached.
//   - ErrBadInfThreshold   if WithInfEdgeThreshold(0) was passed.
//
// Example usage:
//
//	st, err := dijkstra.ShortestPaths(g, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := dijkstra.PathTo(g, st, dst)
package dijkstra
