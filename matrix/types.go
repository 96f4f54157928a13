// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Package functions accept any Matrix and take a flat-slice fast path when
// the operands are *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// GaussianSampler draws independent samples from a normal distribution.
// It is the only randomness the package consumes; seeding and thread-safety
// belong to the implementation (see package rng).
type GaussianSampler interface {
	// Gaussian returns one sample from N(mean, stdDev²).
	Gaussian(mean, stdDev float64) float64
}

// ElementFunc maps a single element to its replacement value.
type ElementFunc func(float64) float64
