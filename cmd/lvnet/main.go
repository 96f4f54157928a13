// SPDX-License-Identifier: MIT

// Command lvnet wires the matrix and neuron packages into a small example
// network and exposes weight initialization from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnet/internal/config"
	"github.com/katalvlaran/lvnet/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvnet",
		Short: "Dense matrices and single-neuron forward passes",
		Long: `lvnet runs a hand-built feed-forward network on a minimal dense
matrix library: two hidden neurons feed one output neuron.

The network, logging level and initialization seed come from a YAML file
(--config) with LVNET_LOG_LEVEL / LVNET_SEED environment overrides.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, trace (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newForwardCmd(),
		newInitCmd(),
		newActivationsCmd(),
	)

	return rootCmd
}

// loadRuntime resolves the config and logger shared by every subcommand.
func loadRuntime(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvnet version %s\n", version)
		},
	}
}

// writeLine is fmt.Fprintln that returns only the error.
func writeLine(w io.Writer, a ...any) error {
	_, err := fmt.Fprintln(w, a...)
	return err
}
