// SPDX-License-Identifier: MIT

package neuron

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Activation is a pure, stateless scalar transform applied to a neuron's
// weighted sum plus bias. The neuron never inspects which one is installed.
type Activation func(float64) float64

// Sigmoid computes 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// ReLU computes max(0, x).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}

	return 0
}

// Tanh computes the hyperbolic tangent of x.
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// Identity returns x unchanged.
func Identity(x float64) float64 {
	return x
}

// Registered activation names.
const (
	NameSigmoid  = "sigmoid"
	NameReLU     = "relu"
	NameTanh     = "tanh"
	NameIdentity = "identity"
)

var activations = map[string]Activation{
	NameSigmoid:  Sigmoid,
	NameReLU:     ReLU,
	NameTanh:     Tanh,
	NameIdentity: Identity,
}

// Lookup resolves an activation by name (case-insensitive, surrounding
// whitespace ignored). Unknown names yield ErrUnknownActivation.
func Lookup(name string) (Activation, error) {
	f, ok := activations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownActivation)
	}

	return f, nil
}

// Names returns the registered activation names in lexical order.
func Names() []string {
	out := make([]string, 0, len(activations))
	for name := range activations {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
