package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithDefaults(t *testing.T) {
	require.NoError(t, Init(""))

	cfg := Get()
	assert.Equal(t, 4e9, cfg.Economy.OfficeInitialCost)
	assert.Equal(t, 3, cfg.Economy.OfficeInitialSize)
	assert.Equal(t, 1.09, cfg.Economy.OfficeGrowthRatio)
	assert.Equal(t, 1.07, cfg.Economy.WarehouseGrowthRatio)
	assert.Equal(t, 50.0, cfg.Economy.DividendMaxPercent)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestInitWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	doc := []byte("economy:\n  office_initial_cost: 123\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	require.NoError(t, Init(path))

	cfg := Get()
	assert.Equal(t, 123.0, cfg.Economy.OfficeInitialCost)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults
	assert.Equal(t, 5e9, cfg.Economy.WarehouseInitialCost)
}

func TestInitMissingExplicitFileUsesDefaults(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, 4e9, Get().Economy.OfficeInitialCost)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		require.NoError(t, Init(""))
		return Get()
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero office cost", func(c *Config) { c.Economy.OfficeInitialCost = 0 }},
		{"office ratio not above 1", func(c *Config) { c.Economy.OfficeGrowthRatio = 1 }},
		{"zero warehouse size", func(c *Config) { c.Economy.WarehouseInitialSize = 0 }},
		{"dividend cap above 100", func(c *Config) { c.Economy.DividendMaxPercent = 150 }},
		{"coffee mult below 1", func(c *Config) { c.Economy.CoffeeEnergyMult = 0.9 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"negative seed funds", func(c *Config) { c.Demo.SeedFunds = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}

	assert.NoError(t, Validate(base()))
}

func TestSetUpdatesStruct(t *testing.T) {
	require.NoError(t, Init(""))
	Set("economy.office_initial_size", 6)
	assert.Equal(t, 6, Get().Economy.OfficeInitialSize)
}
