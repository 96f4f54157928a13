// SPDX-License-Identifier: MIT

// Package matrix provides a small dense, row-major float64 matrix and the
// arithmetic substrate a hand-built feed-forward network needs.
//
// The matrix package provides:
//
//   - Dense: fixed-shape storage with bounds-checked At/Set, Row/Col copies,
//     Clone/Equal and a space-separated String dump.
//   - Element-wise kernels: Add, Sub, Hadamard and the scalar forms
//     (AddScalar, SubScalar, Scale, ScalarAdd, ScalarSub, ScalarMul).
//   - Linear algebra: Dot (standard product), Transpose, Apply, Sum.
//   - He initialization through an injected GaussianSampler.
//
// Every derived result is a freshly allocated *Dense; operands are never
// mutated and never share storage with the result. Errors are package-level
// sentinels (see errors.go) and must be matched with errors.Is.
//
// Inverse, Det and Cofactor are exposed only as explicit ErrUnsupported
// failures.
package matrix
