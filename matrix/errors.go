// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// %w) and tests MUST check them via errors.Is. No exported function panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap sentinels with an operation tag via
// matrixErrorf ("Dot: ...") and accessors add coordinates via denseErrorf
// ("Dense.At(2,0): ..."); callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> NaN/Inf policy -> unsupported.

var (
	// ErrInvalidShape is returned when a requested shape is invalid (rows<1 or
	// cols<1) or when supplied data does not hold exactly rows*cols values.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfBounds indicates that a row or column index is outside [0, dim).
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g., Add/Sub/Hadamard on different shapes, or Dot where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidArgument signals a degenerate scalar parameter (e.g., zero
	// fan-in for He initialization, or a nil sampler).
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrUnsupported marks an intentionally unimplemented operation
	// (Inverse, Det, Cofactor).
	ErrUnsupported = errors.New("matrix: operation not supported")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered while the
	// finite-only numeric policy is enabled (see WithValidateNaNInf).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
