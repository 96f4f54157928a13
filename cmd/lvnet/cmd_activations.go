// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnet/neuron"
)

func newActivationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activations",
		Short: "List the activation names accepted in config files",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range neuron.Names() {
				if err := writeLine(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
