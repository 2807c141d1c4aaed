package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Threads)
	assert.Equal(t, 10, cfg.Top)
	assert.False(t, cfg.BFS)
	assert.Equal(t, "latest", cfg.Run)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Empty(t, cfg.Data)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TXGRAPH_THREADS", "4")
	t.Setenv("TXGRAPH_METRICS_FILE", "/tmp/tx.prom")
	t.Setenv("TXGRAPH_BFS", "true")

	v := viper.New()
	v.SetEnvPrefix("TXGRAPH")
	v.AutomaticEnv()
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, "/tmp/tx.prom", cfg.MetricsFile)
	assert.True(t, cfg.BFS)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".txgraph.yaml")
	content := "data: tx.csv\ntop: 3\nskip_self_loops: true\nlog_format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "tx.csv", cfg.Data)
	assert.Equal(t, 3, cfg.Top)
	assert.True(t, cfg.SkipSelfLoops)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	base := Config{Threads: 1, Top: 10, LogFormat: LogFormatText}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero threads", func(c *Config) { c.Threads = 0 }},
		{"negative top", func(c *Config) { c.Top = -1 }},
		{"negative limit", func(c *Config) { c.Limit = -5 }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
