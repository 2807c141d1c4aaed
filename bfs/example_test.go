package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/txgraph/bfs"
	"github.com/katalvlaran/txgraph/core"
)

// ExampleConnectedComponents counts the islands of a small transaction graph.
func ExampleConnectedComponents() {
	g := core.NewGraph()
	_, _ = g.AddTransaction("0xa", "0xb", 0, 21000, 1)
	_, _ = g.AddTransaction("0xb", "0xc", 0, 21000, 1)
	_, _ = g.AddTransaction("0xd", "0xe", 0, 21000, 1)
	_, _ = g.AddVertex("0xf")

	n, err := bfs.ConnectedComponents(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("components:", n)
	fmt.Println("all explored:", g.State().AllExplored())

	// Output:
	// components: 3
	// all explored: true
}

// ExampleLargestComponent extracts the biggest island and builds a subgraph
// from it, as the centrality command does with --largest.
func ExampleLargestComponent() {
	g := core.NewGraph()
	_, _ = g.AddTransaction("0xa", "0xb", 0, 1, 1)
	_, _ = g.AddTransaction("0xc", "0xd", 0, 1, 1)
	_, _ = g.AddTransaction("0xd", "0xe", 0, 1, 1)

	largest, _ := bfs.LargestComponent(g)
	sub := g.Induced(largest)
	fmt.Println(sub.Addresses(), sub.Size())

	// Output:
	// [0xc 0xd 0xe] 2
}
