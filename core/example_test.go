package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/txgraph/core"
)

// ExampleGraph demonstrates building a graph from transactions and
// inspecting it.
func ExampleGraph() {
	g := core.NewGraph()

	// Addresses are inserted on first sight.
	_, _ = g.AddTransaction("0xa", "0xb", 1.0, 21000, 20)
	_, _ = g.AddTransaction("0xb", "0xc", 0.5, 30000, 25)
	_, _ = g.AddTransaction("0xa", "0xc", 2.0, 21000, 20)

	fmt.Println("Vertices:", g.Addresses())
	fmt.Println("Edges:", g.Size())

	b, _ := g.VertexID("0xb")
	fmt.Println("Degree of 0xb:", g.Vertex(b).Degree())

	// Output:
	// Vertices: [0xa 0xb 0xc]
	// Edges: 3
	// Degree of 0xb: 2
}

// ExampleGraph_ResolveStart shows the explicit start-vertex fallback.
func ExampleGraph_ResolveStart() {
	g := core.NewGraph()
	_, _ = g.AddTransaction("0xa", "0xb", 0, 1, 1)

	id, err := g.ResolveStart("0xzz")
	if errors.Is(err, core.ErrStartFallback) {
		fmt.Println("fell back to", g.Address(id))
	}

	// Output:
	// fell back to 0xa
}

// ExampleGraph_Clone shows that clones are fully independent.
func ExampleGraph_Clone() {
	g := core.NewGraph()
	_, _ = g.AddTransaction("0xa", "0xb", 0, 1, 1)

	c := g.Clone()
	_, _ = c.AddTransaction("0xb", "0xc", 0, 1, 1)

	fmt.Println(g.Order(), g.Size())
	fmt.Println(c.Order(), c.Size())

	// Output:
	// 2 1
	// 3 2
}
