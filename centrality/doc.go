// Package centrality computes betweenness centrality over a transaction graph
// using Brandes' algorithm with gas-weighted shortest paths.
//
// For every source vertex, dijkstra.Run labels the graph with distances,
// shortest-path counts and predecessor lists; Accumulate then walks the
// finalized vertices farthest first and back-propagates dependencies.
// Summing over all sources yields, for each vertex, the number of
// shortest paths between other pairs that pass through it, each pair
// counted once.
//
// Compute runs sequentially or over several worker goroutines. Parallel
// workers each own a deep copy of the graph, so no labels are shared; only
// their partial score vectors cross goroutines, and they are summed at the
// end. Results agree with the sequential run up to floating-point rounding.
//
// Scores.Top ranks the result for reporting.
package centrality
