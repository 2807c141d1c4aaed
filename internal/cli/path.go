package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/txgraph/core"
	"github.com/katalvlaran/txgraph/dijkstra"
	"github.com/katalvlaran/txgraph/report"
	"github.com/katalvlaran/txgraph/store"
	"github.com/spf13/cobra"
)

func newPathCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Gas-weighted shortest paths from a start address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			src, _, err := resolveStart(g, a.cfg.Start)
			if err != nil {
				return err
			}
			st, err := dijkstra.ShortestPaths(g, src)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start: %s\nreached: %d of %d\n", g.Address(src), reached(st), g.Order())

			if a.cfg.Target != "" {
				dst, err := g.Lookup(a.cfg.Target)
				if err != nil {
					return err
				}
				path, err := dijkstra.PathTo(g, st, dst)
				if err != nil {
					return err
				}
				hops := make([]string, len(path))
				for i, id := range path {
					hops[i] = g.Address(id)
				}
				fmt.Fprintf(out, "path: %s\ndistance: %d\n", strings.Join(hops, " -> "), st.Distance[dst])
			}

			rows, err := g.DistanceRows(st)
			if err != nil {
				return err
			}

			return a.saveDistances(rows)
		},
	}
	cmd.Flags().StringP("start", "s", "", "start address (default: first address in the dataset)")
	cmd.Flags().String("target", "", "print the path to this address")
	cmd.Flags().StringP("out", "o", "", "write per-address distances to this CSV file")
	cmd.Flags().String("store", "", "save distances into this result database")
	cmd.Flags().String("run", "latest", "run name used with --store")

	return cmd
}

// reached counts finalized vertices.
func reached(st *core.State) int {
	n := 0
	for _, e := range st.Explored {
		if e {
			n++
		}
	}
	return n
}

func (a *app) saveDistances(rows []core.DistanceRow) error {
	if a.cfg.Out != "" {
		f, err := createOutput(a.cfg.Out)
		if err != nil {
			return err
		}
		if err := report.WriteDistances(f, rows); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if a.cfg.Store != "" {
		s, err := store.Open(a.cfg.Store)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.SaveDistances(a.cfg.Run, rows)
	}

	return nil
}
