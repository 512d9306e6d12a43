package cli

import (
	"fmt"
	"log/slog"

	"github.com/nixpig/bindle/internal/config"
	"github.com/nixpig/bindle/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *slog.Logger
)

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bindle",
		Short:        "Bind-mount rootfs provisioning for containers.",
		Long:         "Provision container root filesystems by bind-mounting a single pre-built layer and remounting it read-only; destroy by unmounting and removing the mount point.",
		Example:      "",
		Version:      "0.0.1",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			logfile, _ := cmd.Flags().GetString("log")
			debug, _ := cmd.Flags().GetBool("debug")

			c, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags take precedence over the config file.
			if logfile == "" {
				logfile = c.Log
			}
			if !debug {
				debug = c.Debug
			}

			logger, err := logging.NewLogger(logfile, debug)
			if err != nil {
				return fmt.Errorf("initialise logging: %w", err)
			}

			if logfile != "" {
				cmd.Root().SetErr(logging.NewErrorWriter(logger))
			}

			cfg = c
			log = logger

			return nil
		},
	}

	cmd.AddCommand(
		provisionCmd(),
		destroyCmd(),
		mountsCmd(),
	)

	cmd.PersistentFlags().StringP(
		"config",
		"c",
		config.DefaultPath,
		"Path to config file",
	)

	cmd.PersistentFlags().StringP(
		"log",
		"l",
		"",
		"Destination to write logs (default is stderr)",
	)

	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	cmd.CompletionOptions.HiddenDefaultCmd = true

	return cmd
}
