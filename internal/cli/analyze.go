package cli

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/txgraph/bfs"
	"github.com/katalvlaran/txgraph/core"
	"github.com/katalvlaran/txgraph/dijkstra"
	"github.com/katalvlaran/txgraph/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run components, shortest paths and centrality, and write a YAML summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			began := time.Now()
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			stats := g.Stats()
			sum := report.Summary{
				RunID:     uuid.NewString(),
				Dataset:   a.cfg.Data,
				Vertices:  stats.VertexCount,
				Edges:     stats.EdgeCount,
				SelfLoops: stats.SelfLoops,
				TotalGas:  stats.TotalGas,
			}

			if a.cfg.BFS {
				if sum.Components, err = bfs.ConnectedComponents(g); err != nil {
					return err
				}
				largest, err := bfs.LargestComponent(g)
				if err != nil {
					return err
				}
				sum.Largest = len(largest)
			}

			if g.Order() > 0 {
				if sum.Path, err = a.pathSummary(g); err != nil {
					return err
				}
			}

			scores, sg, err := a.betweenness(g)
			if err != nil {
				return err
			}
			cs := &report.CentralitySummary{Workers: a.cfg.Threads}
			for _, r := range scores.Top(a.cfg.Top) {
				cs.Top = append(cs.Top, report.Entry{Address: r.Address, Score: r.Score})
			}
			sum.Centrality = cs
			if err := a.saveScores(sg, scores); err != nil {
				return err
			}
			sum.Elapsed = time.Since(began).Round(time.Millisecond)
			log.WithFields(log.Fields{"run_id": sum.RunID, "elapsed": sum.Elapsed.String()}).Info("Analysis finished")

			return a.writeSummary(cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().Bool("bfs", false, "also count connected components")
	cmd.Flags().StringP("start", "s", "", "start address for shortest paths")
	cmd.Flags().IntP("threads", "t", 1, "parallel workers for centrality")
	cmd.Flags().IntP("top", "k", 10, "number of top addresses in the summary (0 = all)")
	cmd.Flags().Bool("largest", false, "restrict centrality to the largest connected component")
	cmd.Flags().StringP("out", "o", "", "write per-address scores to this CSV file")
	cmd.Flags().String("store", "", "save scores into this result database")
	cmd.Flags().String("run", "latest", "run name used with --store")
	cmd.Flags().String("summary", "", "write the YAML summary to this file instead of stdout")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

func (a *app) pathSummary(g *core.Graph) (*report.PathSummary, error) {
	src, fallback, err := resolveStart(g, a.cfg.Start)
	if err != nil {
		return nil, err
	}
	st, err := dijkstra.ShortestPaths(g, src)
	if err != nil {
		return nil, err
	}
	ps := &report.PathSummary{
		Start:    g.Address(src),
		Fallback: fallback,
		Reached:  reached(st),
		Paths:    st.Paths(),
	}
	for _, d := range st.Distance {
		if d != core.Infinity && d > ps.MaxDist {
			ps.MaxDist = d
		}
	}
	g.ResetState()

	return ps, nil
}

func (a *app) writeSummary(stdout io.Writer, sum report.Summary) error {
	if a.cfg.Summary == "" {
		return report.WriteSummary(stdout, sum)
	}
	f, err := createOutput(a.cfg.Summary)
	if err != nil {
		return err
	}
	if err := report.WriteSummary(f, sum); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
