package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
layer_dir = "/srv/layers"
log = "/var/log/bindle.log"
debug = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/layers", cfg.LayerDir)
	assert.Equal(t, "/var/log/bindle.log", cfg.Log)
	assert.True(t, cfg.Debug)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLayerDir, cfg.LayerDir)
	assert.Empty(t, cfg.Log)
	assert.False(t, cfg.Debug)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`debug = true`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultLayerDir, cfg.LayerDir)
	assert.True(t, cfg.Debug)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`layer_dir = [`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
