package cli

import (
	"fmt"

	"github.com/nixpig/bindle/internal/operations"
	"github.com/spf13/cobra"
)

func provisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "provision [flags] ROOTFS",
		Short:   "Provision a container rootfs from a filesystem layer",
		Args:    cobra.ExactArgs(1),
		Example: "  bindle provision --layer alpine /run/bindle/c1/rootfs",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootfs := args[0]

			layers, _ := cmd.Flags().GetStringSlice("layer")

			if err := operations.Provision(&operations.ProvisionOpts{
				Layers:   layers,
				Rootfs:   rootfs,
				LayerDir: cfg.LayerDir,
				Log:      log,
			}); err != nil {
				return fmt.Errorf("failed to provision rootfs: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().
		StringSlice("layer", nil, "Layer path, or name relative to layer_dir (exactly one)")

	return cmd
}
