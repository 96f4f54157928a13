// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newForwardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Run the configured network on an input vector",
		Long: `Run the configured two-stage network and print its output.

Without --input the input vector from the config is used.`,
		Example: `  lvnet forward
  lvnet forward --input 5,1,3
  lvnet forward --config net.yaml --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			input := cfg.Network.Input
			if cmd.Flags().Changed("input") {
				input, _ = cmd.Flags().GetFloat64Slice("input")
			}
			if len(input) == 0 {
				return fmt.Errorf("forward: empty input")
			}

			out, err := runNetwork(cfg.Network, input, logger)
			if err != nil {
				return fmt.Errorf("forward: %w", err)
			}

			return writeLine(cmd.OutOrStdout(), "Output:", out)
		},
	}
	cmd.Flags().Float64Slice("input", nil, "Comma-separated input values (overrides config)")

	return cmd
}
