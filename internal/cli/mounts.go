package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/nixpig/bindle/internal/operations"
	"github.com/spf13/cobra"
)

func mountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mounts",
		Short:   "Print a snapshot of the current mount table",
		Args:    cobra.NoArgs,
		Example: "  bindle mounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := operations.Mounts()
			if err != nil {
				return fmt.Errorf("failed to read mounts: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "SOURCE\tTARGET\tOPTIONS")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Source, entry.Target, entry.Options)
			}

			return w.Flush()
		},
	}

	return cmd
}
