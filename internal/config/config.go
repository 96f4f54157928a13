// SPDX-License-Identifier: MIT

// Package config provides configuration loading for the lvnet CLI.
// It supports loading from YAML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/neuron"
)

// ErrInvalidConfig is returned by Validate for any rejected setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all lvnet settings.
type Config struct {
	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Seed fixes the Gaussian sampler used by "lvnet init". Nil means a
	// runtime-random seed.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Network describes the example feed-forward network run by "lvnet forward".
	Network NetworkConfig `json:"network" yaml:"network"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// NetworkConfig is a two-stage network: every hidden neuron sees the input,
// and the output neuron sees the hidden outputs.
type NetworkConfig struct {
	// Input is the input column; it is fed to the hidden neurons transposed.
	Input []float64 `json:"input" yaml:"input"`

	// Hidden lists the hidden-stage neurons.
	Hidden []NeuronConfig `json:"hidden" yaml:"hidden"`

	// Output is the single output neuron; it needs one weight per hidden neuron.
	Output NeuronConfig `json:"output" yaml:"output"`
}

// NeuronConfig describes one neuron. Weights form an n×1 column.
type NeuronConfig struct {
	Weights    []float64 `json:"weights" yaml:"weights"`
	Bias       float64   `json:"bias" yaml:"bias"`
	Activation string    `json:"activation" yaml:"activation"`
}

// Default returns a Config describing the reference 3-input network.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Network: NetworkConfig{
			Input: []float64{5.0, 1.0, 3.0},
			Hidden: []NeuronConfig{
				{Weights: []float64{0.8, 0.3, 1.0}, Bias: 0, Activation: neuron.NameSigmoid},
				{Weights: []float64{0.2, 0.5, 0.4}, Bias: 0, Activation: neuron.NameSigmoid},
			},
			Output: NeuronConfig{Weights: []float64{0.3, 0.5}, Bias: -0.5, Activation: neuron.NameSigmoid},
		},
	}
}

// Load returns defaults overlaid with path (when non-empty and present)
// and then environment variables.
// Order: defaults -> file -> environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			fileCfg, err := LoadFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
			cfg = fileCfg
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config file: %w", statErr)
		}
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of Default().
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level %q (valid: info, debug, trace): %w", c.Logging.Level, ErrInvalidConfig)
	}
	if len(c.Network.Input) == 0 {
		return fmt.Errorf("network.input is empty: %w", ErrInvalidConfig)
	}
	if len(c.Network.Hidden) == 0 {
		return fmt.Errorf("network.hidden is empty: %w", ErrInvalidConfig)
	}
	for i, h := range c.Network.Hidden {
		if err := h.validate(); err != nil {
			return fmt.Errorf("network.hidden[%d]: %w", i, err)
		}
	}
	if err := c.Network.Output.validate(); err != nil {
		return fmt.Errorf("network.output: %w", err)
	}
	if len(c.Network.Output.Weights) != len(c.Network.Hidden) {
		return fmt.Errorf("network.output has %d weights for %d hidden neurons: %w",
			len(c.Network.Output.Weights), len(c.Network.Hidden), ErrInvalidConfig)
	}

	return nil
}

func (n NeuronConfig) validate() error {
	if len(n.Weights) == 0 {
		return fmt.Errorf("no weights: %w", ErrInvalidConfig)
	}
	if _, err := neuron.Lookup(n.Activation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Build constructs the neuron: weights become an n×1 column matrix.
func (n NeuronConfig) Build() (*neuron.Neuron, error) {
	act, err := neuron.Lookup(n.Activation)
	if err != nil {
		return nil, err
	}
	w, err := matrix.NewDense(len(n.Weights), 1, n.Weights)
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}

	return neuron.New(w, n.Bias, act), nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LVNET_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LVNET_SEED"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = &s
		}
	}
}
