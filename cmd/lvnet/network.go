// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvnet/internal/config"
	"github.com/katalvlaran/lvnet/internal/logging"
	"github.com/katalvlaran/lvnet/matrix"
)

// runNetwork feeds input through the configured network. The input column is
// transposed into a row before the hidden stage; the hidden outputs are
// collected into a column and transposed again for the output neuron.
func runNetwork(netCfg config.NetworkConfig, input []float64, logger *slog.Logger) (float64, error) {
	col, err := matrix.NewDense(len(input), 1, input)
	if err != nil {
		return 0, fmt.Errorf("input: %w", err)
	}
	row := col.T()
	logger.Log(context.Background(), logging.LevelTrace, "input", "matrix", row.String())

	hidden := make([]float64, len(netCfg.Hidden))
	for i, hc := range netCfg.Hidden {
		n, err := hc.Build()
		if err != nil {
			return 0, fmt.Errorf("hidden[%d]: %w", i, err)
		}
		hidden[i], err = n.Forward(row)
		if err != nil {
			return 0, fmt.Errorf("hidden[%d]: %w", i, err)
		}
		logger.Debug("hidden neuron", "index", i, "neuron", n.String(), "output", hidden[i])
	}

	hiddenCol, err := matrix.NewDense(len(hidden), 1, hidden)
	if err != nil {
		return 0, fmt.Errorf("hidden outputs: %w", err)
	}
	out, err := netCfg.Output.Build()
	if err != nil {
		return 0, fmt.Errorf("output: %w", err)
	}
	result, err := out.Forward(hiddenCol.T())
	if err != nil {
		return 0, fmt.Errorf("output: %w", err)
	}
	logger.Debug("output neuron", "neuron", out.String(), "output", result)

	return result, nil
}
