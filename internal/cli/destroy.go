package cli

import (
	"fmt"

	"github.com/nixpig/bindle/internal/operations"
	"github.com/spf13/cobra"
)

func destroyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "destroy [flags] ROOTFS",
		Short:   "Destroy a provisioned container rootfs",
		Args:    cobra.ExactArgs(1),
		Example: "  bindle destroy /run/bindle/c1/rootfs",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootfs := args[0]

			removed, err := operations.Destroy(&operations.DestroyOpts{
				Rootfs: rootfs,
				Log:    log,
			})
			if err != nil {
				return fmt.Errorf("failed to destroy rootfs: %w", err)
			}

			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "removed")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "not mounted")
			}

			return nil
		},
	}

	return cmd
}
