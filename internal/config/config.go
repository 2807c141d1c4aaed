// Package config resolves txgraph settings from defaults, a .txgraph.yaml
// file, TXGRAPH_* environment variables and command-line flags.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Log formats accepted by LogFormat.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all runtime configuration for one txgraph invocation.
type Config struct {
	Data          string `mapstructure:"data"`
	Limit         int    `mapstructure:"limit"`
	SkipSelfLoops bool   `mapstructure:"skip_self_loops"`
	Threads       int    `mapstructure:"threads"`
	Top           int    `mapstructure:"top"`
	Start         string `mapstructure:"start"`
	Target        string `mapstructure:"target"`
	Largest       bool   `mapstructure:"largest"`
	BFS           bool   `mapstructure:"bfs"`
	Out           string `mapstructure:"out"`
	Store         string `mapstructure:"store"`
	Run           string `mapstructure:"run"`
	Summary       string `mapstructure:"summary"`
	MetricsFile   string `mapstructure:"metrics_file"`
	Verbose       bool   `mapstructure:"verbose"`
	LogFormat     string `mapstructure:"log_format"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data", "")
	v.SetDefault("limit", 0)
	v.SetDefault("skip_self_loops", false)
	v.SetDefault("threads", 1)
	v.SetDefault("top", 10)
	v.SetDefault("start", "")
	v.SetDefault("target", "")
	v.SetDefault("largest", false)
	v.SetDefault("bfs", false)
	v.SetDefault("out", "")
	v.SetDefault("store", "")
	v.SetDefault("run", "latest")
	v.SetDefault("summary", "")
	v.SetDefault("metrics_file", "")
	v.SetDefault("verbose", false)
	v.SetDefault("log_format", LogFormatText)
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings no command can use.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("config: threads must be at least 1, got %d", c.Threads)
	}
	if c.Top < 0 {
		return fmt.Errorf("config: top must not be negative, got %d", c.Top)
	}
	if c.Limit < 0 {
		return fmt.Errorf("config: limit must not be negative, got %d", c.Limit)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}

	return nil
}
