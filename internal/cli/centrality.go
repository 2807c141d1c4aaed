package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/txgraph/bfs"
	"github.com/katalvlaran/txgraph/centrality"
	"github.com/katalvlaran/txgraph/core"
	"github.com/katalvlaran/txgraph/report"
	"github.com/katalvlaran/txgraph/store"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCentralityCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Betweenness centrality of every address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			scores, g, err := a.betweenness(g)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tADDRESS\tSCORE")
			for i, r := range scores.Top(a.cfg.Top) {
				fmt.Fprintf(tw, "%d\t%s\t%g\n", i+1, r.Address, r.Score)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			return a.saveScores(g, scores)
		},
	}
	cmd.Flags().IntP("threads", "t", 1, "parallel workers")
	cmd.Flags().IntP("top", "k", 10, "number of top addresses to print (0 = all)")
	cmd.Flags().Bool("largest", false, "restrict to the largest connected component")
	cmd.Flags().StringP("out", "o", "", "write per-address scores to this CSV file")
	cmd.Flags().String("store", "", "save scores into this result database")
	cmd.Flags().String("run", "latest", "run name used with --store")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

// betweenness runs Compute with the configured workers, optionally on the
// largest component only, and exports metrics if requested. It returns the
// graph the scores refer to.
func (a *app) betweenness(g *core.Graph) (centrality.Scores, *core.Graph, error) {
	if a.cfg.Largest {
		ids, err := bfs.LargestComponent(g)
		if err != nil {
			return nil, nil, err
		}
		g = g.Induced(ids)
		log.WithField("vertices", g.Order()).Info("Restricted to largest component")
	}

	reg := prometheus.NewRegistry()
	m := centrality.NewMetrics(reg)

	start := time.Now()
	scores, err := centrality.Compute(g,
		centrality.WithWorkers(a.cfg.Threads),
		centrality.WithVerbose(a.cfg.Verbose),
		centrality.WithLogger(log.StandardLogger()),
		centrality.WithMetrics(m),
	)
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(log.Fields{
		"workers": a.cfg.Threads,
		"elapsed": time.Since(start).String(),
	}).Info("Computed betweenness centrality")

	if a.cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, reg); err != nil {
			return nil, nil, fmt.Errorf("writing metrics: %w", err)
		}
	}

	return scores, g, nil
}

func (a *app) saveScores(g *core.Graph, scores centrality.Scores) error {
	if a.cfg.Out != "" {
		f, err := createOutput(a.cfg.Out)
		if err != nil {
			return err
		}
		if err := report.WriteScores(f, g.ScoreRows(scores)); err != nil {
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
		return s.SaveScores(a.cfg.Run, scores)
	}

	return nil
}
