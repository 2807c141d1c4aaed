package builder_test

import (
	"fmt"

	"github.com/katalvlaran/txgraph/builder"
	"github.com/katalvlaran/txgraph/centrality"
)

// Two triangles joined by a bridge: the bridge endpoints carry all
// cross traffic.
func ExampleBarbell() {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithIDScheme(func(i int) string { return fmt.Sprintf("v%d", i) })},
		builder.Barbell(3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	scores, err := centrality.Compute(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range scores.Top(2) {
		fmt.Printf("%s %.1f\n", r.Address, r.Score)
	}
	// Output:
	// v2 6.0
	// v3 6.0
}
