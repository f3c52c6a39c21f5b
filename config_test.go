package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, EnglishLabels, cfg.Labels())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
search:
  mode: plain
  penalty: 2.5
  maxExpansions: 100
  labels: pt
cache:
  ttl: 30s
`), 0644))

	t.Setenv("GRIDROUTE_SERVER_ADDR", ":9100")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Server.Addr, "environment wins over file")
	assert.Equal(t, "plain", cfg.Search.Mode)
	assert.Equal(t, 2.5, cfg.Search.Penalty)
	assert.Equal(t, 100, cfg.Search.MaxExpansions)
	assert.Equal(t, PortugueseLabels, cfg.Labels())
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "gridroute:", cfg.Cache.Prefix)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"mode", func(c *Config) { c.Search.Mode = "greedy" }, "search.mode"},
		{"labels", func(c *Config) { c.Search.Labels = "de" }, "search.labels"},
		{"penalty", func(c *Config) { c.Search.Penalty = -1 }, "search.penalty"},
		{"expansions", func(c *Config) { c.Search.MaxExpansions = -5 }, "search.maxExpansions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsConfigError(err))

			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigLoadGrid(t *testing.T) {
	cfg := DefaultConfig()
	grid, err := cfg.LoadGrid()
	require.NoError(t, err)
	assert.Equal(t, "default", grid.Name())

	cfg.Map.File = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = cfg.LoadGrid()
	assert.Error(t, err)
}
