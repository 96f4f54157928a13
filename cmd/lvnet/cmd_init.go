// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/rng"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "He-initialize a weight matrix and print it",
		Long: `Allocate a rows×cols matrix, fill it with He/Kaiming samples
N(0, 2/inputs) and print it one row per line.

--seed (or the config seed / LVNET_SEED) makes the output reproducible.`,
		Example: `  lvnet init --rows 3 --cols 1 --seed 7
  lvnet init --rows 4 --cols 4 --inputs 16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(cmd)
			if err != nil {
				return err
			}
			rows, _ := cmd.Flags().GetInt("rows")
			cols, _ := cmd.Flags().GetInt("cols")
			inputs, _ := cmd.Flags().GetInt("inputs")
			if !cmd.Flags().Changed("inputs") {
				inputs = rows
			}

			var sampler *rng.Gaussian
			switch {
			case cmd.Flags().Changed("seed"):
				seed, _ := cmd.Flags().GetUint64("seed")
				sampler = rng.New(seed)
			case cfg.Seed != nil:
				sampler = rng.New(*cfg.Seed)
			default:
				sampler = rng.NewRandom()
			}

			m, err := matrix.NewZeros(rows, cols)
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			if err := m.Initialize(sampler, inputs); err != nil {
				return fmt.Errorf("init: %w", err)
			}
			logger.Debug("initialized", "rows", rows, "cols", cols, "inputs", inputs)

			_, err = fmt.Fprint(cmd.OutOrStdout(), m.String())
			return err
		},
	}
	cmd.Flags().Int("rows", 1, "Number of rows")
	cmd.Flags().Int("cols", 1, "Number of columns")
	cmd.Flags().Int("inputs", 0, "Fan-in used for the standard deviation (default: rows)")
	cmd.Flags().Uint64("seed", 0, "Seed for the Gaussian sampler")

	return cmd
}
