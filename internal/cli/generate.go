package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/txgraph/builder"
	"github.com/katalvlaran/txgraph/ingest"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var shapes = []string{"path", "cycle", "star", "complete", "grid", "barbell", "tree", "random"}

func newGenerateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic transaction CSV with a known shape",
		Long: "generate builds a synthetic graph and writes it in the ingest CSV layout.\n" +
			"Shapes: " + strings.Join(shapes, ", ") + ". grid uses --n as the side length,\n" +
			"barbell uses it as the clique size and random uses --p as the edge probability.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shape := a.v.GetString("shape")
			n := a.v.GetInt("n")
			con, err := shapeConstructor(shape, n, a.v.GetFloat64("p"))
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph([]builder.Option{
				builder.WithSeed(a.v.GetInt64("seed")),
				builder.WithGasFn(builder.UniformGas(a.v.GetUint64("min_gas"), a.v.GetUint64("max_gas"))),
			}, con)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"shape":    shape,
				"vertices": g.Order(),
				"edges":    g.Size(),
			}).Info("Generated graph")

			if a.cfg.Out == "" {
				return ingest.Write(cmd.OutOrStdout(), g)
			}
			f, err := createOutput(a.cfg.Out)
			if err != nil {
				return err
			}
			if err := ingest.Write(f, g); err != nil {
				_ = f.Close()
				return err
			}

			return f.Close()
		},
	}
	cmd.Flags().String("shape", "random", "graph shape: "+strings.Join(shapes, "|"))
	cmd.Flags().Int("n", 100, "number of vertices (side length for grid, clique size for barbell)")
	cmd.Flags().Float64("p", 0.05, "edge probability for the random shape")
	cmd.Flags().Int64("seed", 1, "random seed")
	cmd.Flags().Uint64("min-gas", builder.DefaultGas, "lowest generated gas")
	cmd.Flags().Uint64("max-gas", builder.DefaultGas, "highest generated gas")
	cmd.Flags().StringP("out", "o", "", "write the CSV to this file instead of stdout")

	return cmd
}

func shapeConstructor(shape string, n int, p float64) (builder.Constructor, error) {
	switch shape {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		return builder.Grid(n, n), nil
	case "barbell":
		return builder.Barbell(n), nil
	case "tree":
		return builder.RandomTree(n), nil
	case "random":
		return builder.RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("unknown shape %q (want one of %s)", shape, strings.Join(shapes, ", "))
}
