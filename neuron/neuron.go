// SPDX-License-Identifier: MIT

// Package neuron implements a single computational unit on top of package
// matrix: a weight matrix, a scalar bias and an activation function.
//
// Forward computes activation(Σ(weights · input) + bias). Shape compatibility
// is checked lazily, at Forward time; construction and replacement of weights
// never validate.
package neuron

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/katalvlaran/lvnet/matrix"
)

const (
	opForward = "Forward"

	// customActivationName labels an activation that is not in the registry.
	customActivationName = "custom"
)

// Neuron is one unit of a feed-forward network.
// The neuron takes ownership of the weights handed to New/SetWeights; callers
// must not mutate that matrix afterwards. Not safe for concurrent mutation.
type Neuron struct {
	weights    *matrix.Dense
	bias       float64
	activation Activation
}

// New stores weights, bias and activation verbatim. No validation is done
// here: a weight/input mismatch surfaces at the next Forward.
func New(weights *matrix.Dense, bias float64, activation Activation) *Neuron {
	return &Neuron{weights: weights, bias: bias, activation: activation}
}

// Weights returns a copy of the weight matrix (nil if none is installed).
func (n *Neuron) Weights() *matrix.Dense {
	if n.weights == nil {
		return nil
	}

	return n.weights.Clone().(*matrix.Dense)
}

// Bias returns the scalar bias.
func (n *Neuron) Bias() float64 { return n.bias }

// Activation returns the installed activation function.
func (n *Neuron) Activation() Activation { return n.activation }

// SetWeights replaces the whole weight matrix.
func (n *Neuron) SetWeights(weights *matrix.Dense) { n.weights = weights }

// SetBias replaces the bias.
func (n *Neuron) SetBias(bias float64) { n.bias = bias }

// SetActivation replaces the activation function.
func (n *Neuron) SetActivation(activation Activation) { n.activation = activation }

// Forward computes activation(Sum(P) + bias) where P is the product of the
// weights with input.
// MAIN DESCRIPTION:
//   - P = Dot(weights, input) when weights.Cols == input.Rows. This is the
//     row-vector wiring: n×1 weights against a 1×m input (a transposed
//     column) gives an n×m product that is reduced by summation.
//   - Otherwise, when the weights are a column vector with one weight per
//     input row (weights n×1, input n×m), P = Dot(Transpose(weights), input),
//     the 1×m weighted sums.
//   - Any other pairing fails with matrix.ErrShapeMismatch.
//
// Errors:
//   - matrix.ErrNilMatrix (no weights or nil input), matrix.ErrShapeMismatch,
//     ErrNilActivation. All wrapped with "Forward: ...".
//
// Complexity:
//   - Time O(size of P × inner dimension), Space O(size of P).
func (n *Neuron) Forward(input matrix.Matrix) (float64, error) {
	if n.activation == nil {
		return 0, fmt.Errorf("%s: %w", opForward, ErrNilActivation)
	}
	if err := matrix.ValidateNotNil(input); err != nil {
		return 0, fmt.Errorf("%s: input: %w", opForward, err)
	}
	if n.weights == nil {
		return 0, fmt.Errorf("%s: weights: %w", opForward, matrix.ErrNilMatrix)
	}

	product, err := n.weightedProduct(input)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opForward, err)
	}
	sum, err := matrix.Sum(product)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opForward, err)
	}

	return n.activation(sum + n.bias), nil
}

// weightedProduct picks the weight orientation described on Forward.
func (n *Neuron) weightedProduct(input matrix.Matrix) (*matrix.Dense, error) {
	w := n.weights
	if w.Cols() == input.Rows() {
		return matrix.Dot(w, input)
	}
	if w.Cols() == 1 && w.Rows() == input.Rows() {
		return matrix.Dot(w.T(), input)
	}

	// Let Dot produce the canonical shape-mismatch error.
	return matrix.Dot(w, input)
}

// String renders the neuron for debugging, e.g.
// "Neuron { weights: 2x1 [1 1], bias: 0, activation: identity }".
func (n *Neuron) String() string {
	var b strings.Builder
	b.WriteString("Neuron { weights: ")
	if n.weights == nil {
		b.WriteString("<nil>")
	} else {
		r, c := n.weights.Shape()
		fmt.Fprintf(&b, "%dx%d [%s]", r, c,
			strings.Join(strings.Fields(n.weights.String()), " "))
	}
	fmt.Fprintf(&b, ", bias: %g, activation: %s }", n.bias, activationName(n.activation))

	return b.String()
}

// activationName resolves a registered activation back to its name by
// function identity; unregistered functions report "custom".
func activationName(f Activation) string {
	if f == nil {
		return "<nil>"
	}
	ptr := reflect.ValueOf(f).Pointer()
	for _, name := range Names() {
		if reflect.ValueOf(activations[name]).Pointer() == ptr {
			return name
		}
	}

	return customActivationName
}
