package operations

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/nixpig/bindle/internal/backend"
)

// ProvisionOpts holds the options for the Provision operation.
type ProvisionOpts struct {
	// Layers are the filesystem layer paths; the bind backend accepts
	// exactly one. Relative names are resolved against LayerDir.
	Layers []string
	// Rootfs is the path to provision the container rootfs at.
	Rootfs string
	// LayerDir is the directory relative layer names resolve against.
	LayerDir string
	// Log receives operation logs.
	Log *slog.Logger
}

// Provision bind-mounts a single layer onto the rootfs path and remounts it
// read-only.
func Provision(opts *ProvisionOpts) error {
	b, err := backend.New(backend.Config{Log: opts.Log})
	if err != nil {
		return fmt.Errorf("create backend: %w", err)
	}
	defer b.Close()

	layers := make([]string, len(opts.Layers))
	for i, layer := range opts.Layers {
		if !filepath.IsAbs(layer) && opts.LayerDir != "" {
			layer = filepath.Join(opts.LayerDir, layer)
		}
		layers[i] = layer
	}

	if _, err := b.Provision(layers, opts.Rootfs).Wait(); err != nil {
		return fmt.Errorf("provision rootfs: %w", err)
	}

	return nil
}
