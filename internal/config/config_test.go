package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "comparison.json", cfg.Output)
	assert.False(t, cfg.Warnings)
	assert.Empty(t, cfg.Interpolate)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Input = "run.json"
	cfg.Reference = "ref.json"
	cfg.Warnings = true
	cfg.Interpolate = []string{"x"}
	cfg.Vars = []string{"u", "v"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("timeseries")
	require.NotNil(t, cfg)
	assert.True(t, cfg.Warnings)
	assert.Equal(t, []string{"time"}, cfg.Interpolate)
}

func TestGetPreset_NotFound(t *testing.T) {
	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	assert.NotEmpty(t, ListPresets())
}
