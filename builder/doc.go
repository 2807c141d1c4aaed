// Package builder generates synthetic transaction graphs with known shapes.
//
// A graph is assembled by BuildGraph from a list of Constructors, each of
// which adds vertices and transactions to the same core.Graph. Shapes with a
// closed-form betweenness (paths, stars, cycles, bridged cliques) make good
// fixtures; RandomSparse produces Erdős–Rényi style graphs for benchmarks.
//
// Determinism:
//   - Vertex addresses come from the ID scheme (WithIDScheme, default hex
//     addresses) applied to a running counter, so two constructors in one
//     build never collide.
//   - Edges are emitted in a documented, stable order.
//   - Gas and value draws use the configured *rand.Rand; equal seeds give
//     equal graphs.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.Option{builder.WithSeed(7)},
//		builder.Barbell(3),
//		builder.RandomSparse(100, 0.05),
//	)
//
// The CSV form of a generated graph is written with ingest.Write and can be
// fed straight back into the txgraph commands.
package builder
