// Package config loads the optional bindle configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// DefaultPath is where the configuration file is looked for unless
// overridden with --config.
const DefaultPath = "/etc/bindle/config.toml"

// DefaultLayerDir is where relative layer names are resolved.
const DefaultLayerDir = "/var/lib/bindle/layers"

// Config is the on-disk configuration. All fields are optional; flags take
// precedence over file values.
type Config struct {
	// LayerDir is the directory relative layer names resolve against.
	LayerDir string `toml:"layer_dir"`
	// Log is the log file destination.
	Log string `toml:"log"`
	// Debug enables debug logging.
	Debug bool `toml:"debug"`
}

// Load reads the TOML configuration at path. A missing file is not an error;
// defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LayerDir: DefaultLayerDir,
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if cfg.LayerDir == "" {
		cfg.LayerDir = DefaultLayerDir
	}

	return cfg, nil
}
