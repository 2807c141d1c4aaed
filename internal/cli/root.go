// Package cli implements the txgraph command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/txgraph/core"
	"github.com/katalvlaran/txgraph/ingest"
	"github.com/katalvlaran/txgraph/internal/config"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the configuration resolved for the running command.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the txgraph command tree with a fresh viper instance.
func NewRootCommand(version string) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "txgraph",
		Short: "Connectivity, shortest paths and betweenness over blockchain transactions",
		Long: "txgraph loads a CSV of transactions (idx,from_address,to_address,value,gas,gas_price)\n" +
			"into an undirected graph and reports connected components, gas-weighted shortest\n" +
			"paths and betweenness centrality.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .txgraph.yaml)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.String("log-format", config.LogFormatText, "log format: text or json")
	pf.StringP("data", "d", "", "transaction CSV file")
	pf.Int("limit", 0, "read at most this many transactions (0 = all)")
	pf.Bool("skip-self-loops", false, "drop transactions from an address to itself")

	rootCmd.AddCommand(
		newComponentsCommand(a),
		newPathCommand(a),
		newCentralityCommand(a),
		newAnalyzeCommand(a),
		newGenerateCommand(a),
	)

	return rootCmd
}

// setup reads the config file, binds the running command's flags and
// configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", cfgFile, err)
		}
	} else {
		a.v.SetConfigName(".txgraph")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = a.v.ReadInConfig()
	}
	a.v.SetEnvPrefix("TXGRAPH")
	a.v.AutomaticEnv()

	// Flags() holds local and inherited persistent flags once parsed.
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	setupLogging(cfg)
	if used := a.v.ConfigFileUsed(); used != "" {
		log.Debugf("Using config file %s", used)
	}

	return nil
}

// bindFlags binds every flag to the viper key of the same name with dashes
// turned into underscores.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || err != nil {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})

	return err
}

func setupLogging(cfg config.Config) {
	if cfg.LogFormat == config.LogFormatJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
			DisableColors: !isTerminal(os.Stderr),
		})
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadGraph ingests the configured dataset.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.cfg.Data == "" {
		return nil, fmt.Errorf("no dataset: pass --data or set data in .txgraph.yaml")
	}
	opts := []ingest.Option{
		ingest.WithLimit(a.cfg.Limit),
		ingest.WithLogger(log.StandardLogger()),
	}
	if a.cfg.SkipSelfLoops {
		opts = append(opts, ingest.WithSkipSelfLoops())
	}

	log.Debugf("Loading graph from %s", a.cfg.Data)
	start := time.Now()
	g, st, err := ingest.Load(a.cfg.Data, opts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"edges":    st.Edges,
		"vertices": st.Vertices,
		"skipped":  st.Skipped,
		"elapsed":  time.Since(start).String(),
	}).Info("Loaded graph")

	return g, nil
}

// resolveStart picks the SSSP source, logging a substituted start vertex.
func resolveStart(g *core.Graph, address string) (core.VertexID, bool, error) {
	id, err := g.ResolveStart(address)
	if err == nil {
		return id, false, nil
	}
	if errors.Is(err, core.ErrStartFallback) {
		log.Warn(err)
		return id, true, nil
	}

	return id, false, err
}

// createOutput opens path for writing.
func createOutput(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}

	return f, nil
}
