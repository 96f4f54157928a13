// SPDX-License-Identifier: MIT

// Package lvnet is a small playground for hand-built neural computation:
// a dense row-major matrix library and a single neuron on top of it.
//
// What is inside?
//
//	• matrix: Dense storage, element-wise and scalar kernels, Dot,
//	  Transpose, Apply, Sum, AllClose and He initialization
//	• neuron: weights + bias + activation, with a shape-checked Forward
//	• rng:    seeded Gaussian sampler for reproducible initialization
//	• cmd/lvnet: a CLI that runs a two-stage example network from YAML
//
// Design:
//
//   - Every operation returns a fresh *matrix.Dense and never mutates its
//     operands.
//   - Failures are sentinel errors matched with errors.Is; nothing panics
//     on bad shapes or indices.
//   - Randomness is injected (matrix.GaussianSampler); there is no global
//     generator.
//
// Quick start:
//
//	w, _ := matrix.NewDense(2, 1, []float64{1, 1})
//	x, _ := matrix.NewDense(2, 1, []float64{3, 4})
//	n := neuron.New(w, 0, neuron.Identity)
//	out, _ := n.Forward(x) // 7
//
// Inverse, determinant and cofactor are declared but report
// matrix.ErrUnsupported.
package lvnet
