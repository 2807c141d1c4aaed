// Package txgraph analyzes blockchain transaction graphs: who is connected to
// whom, how cheaply value can move between two addresses, and which
// addresses sit on the most cheapest routes.
//
// Transactions are loaded into an undirected multigraph whose vertices are
// addresses and whose edges carry value, gas and gas price. Gas is the edge
// weight for shortest paths.
//
// Packages:
//
//	core/       Graph, Vertex, Edge and the per-run traversal State
//	ingest/     CSV transactions in and out of a core.Graph
//	bfs/        breadth-first search, connected components, largest component
//	dijkstra/   gas-weighted single-source shortest paths with path counts
//	centrality/ betweenness centrality, sequential or across worker goroutines
//	builder/    synthetic graphs with known shapes for tests and benchmarks
//	report/     CSV tables and the YAML run summary
//	store/      bbolt-backed store of per-run scores and distances
//	cmd/txgraph the command line front end
//
// Quick start:
//
//	g, _, err := ingest.Load("transactions.csv")
//	if err != nil {
//		return err
//	}
//	n, _ := bfs.ConnectedComponents(g)
//	scores, _ := centrality.Compute(g, centrality.WithWorkers(4))
//	for _, r := range scores.Top(10) {
//		fmt.Println(r.Address, r.Score, n)
//	}
package txgraph
