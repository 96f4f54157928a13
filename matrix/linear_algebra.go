// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction and product, the standard matrix
// product, transpose, element-wise mapping and reduction. All functions
// perform strict fail-fast validation and return clear errors on shape
// mismatches.
//
// Notes:
//   - Every kernel allocates exactly one result *Dense; operands are never mutated.
//   - Fast paths run on the flat buffers when all operands are *Dense; the
//     generic fallback goes through At/Set in fixed i→j order.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for products and reductions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opDot       = "Dot"
	opTranspose = "Transpose"
	opApply     = "Apply"
	opSum       = "Sum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryOp combines two same-position elements.
type binaryOp func(x, y float64) float64

// elementwise computes out[i,j] = op(a[i,j], b[i,j]) for identically shaped operands.
// Internal helper for Add/Sub/Hadamard to share validation, allocation and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func elementwise(a, b Matrix, op binaryOp, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newResult(rows, cols, a)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = op(da.data[idx], db.data[idx])
			}
			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = op(av, bv)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x + y }, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x - y }, opSub)
}

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// This is the "*" between two matrices; the matrix product is Dot.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
func Hadamard(a, b Matrix) (*Dense, error) {
	return elementwise(a, b, func(x, y float64) float64 { return x * y }, opHadamard)
}

// Dot performs standard matrix multiplication C = A × B (no aliasing).
// MAIN DESCRIPTION:
//   - C[i,j] = Σ_k A[i,k]·B[k,j] for A (r×n) and B (n×p); C is r×p.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(A, B) (non-nil, A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; each cell accumulates from ZeroSum with k
//     innermost. The same order is used on the *Dense fast path and on the
//     generic fallback, so both paths are bit-identical.
//
// Behavior highlights:
//   - No zero-skipping and no loop reordering: the summation order is fixed
//     (k = 0..n-1) and results are reproducible bit-for-bit.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*p), Space O(r*p).
func Dot(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newResult(aRows, bCols, a)

	var (
		i, j, k int
		sum     float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*inner + k; db.data layout: k*bCols + j.
			var rowOffsetA int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * inner
				for j = 0; j < bCols; j++ {
					sum = ZeroSum
					for k = 0; k < inner; k++ {
						sum += da.data[rowOffsetA+k] * db.data[k*bCols+j]
					}
					res.data[i*bCols+j] = sum
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop, same i→j→k order.
	var (
		av, bv float64
		err    error
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opDot, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opDot, err)
				}
				sum += av * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with out(j,i) = m(i,j).
// The source is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return transposeDense(dm), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res := newResult(cols, rows, m)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// transposeDense is the flat-buffer kernel behind Transpose and (*Dense).T.
func transposeDense(m *Dense) *Dense {
	rows, cols := m.r, m.c
	res := newResult(cols, rows, m)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Apply returns a new matrix with every element replaced by f(element).
// MAIN DESCRIPTION:
//   - Element-wise map for activation-style transforms; same shape as m.
//
// Implementation:
//   - Stage 1: validate m non-nil and f non-nil.
//   - Stage 2: map in row-major order into a fresh buffer.
//   - Stage 3: when the numeric policy is ON, reject a non-finite f result.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidArgument (nil f), ErrNaNInf (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - All-or-nothing: on error no partial result is returned; m is untouched.
func Apply(m Matrix, f ElementFunc) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	if dm, ok := m.(*Dense); ok {
		return applyDense(dm, f)
	}
	if f == nil {
		return nil, matrixErrorf(opApply, ErrInvalidArgument)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newResult(rows, cols, m)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opApply, err)
			}
			res.data[i*cols+j] = f(v)
		}
	}

	return res, nil
}

// applyDense is the flat-buffer kernel behind Apply and (*Dense).Map.
func applyDense(m *Dense, f ElementFunc) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opApply, ErrNilMatrix)
	}
	if f == nil {
		return nil, matrixErrorf(opApply, ErrInvalidArgument)
	}
	res := newResult(m.r, m.c, m)
	var nv float64
	for idx, v := range m.data {
		nv = f(v)
		if res.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
			return nil, denseErrorf(opApply, idx/m.c, idx%m.c, ErrNaNInf)
		}
		res.data[idx] = nv
	}

	return res, nil
}

// Sum reduces m to the sum of all its elements, accumulated in row-major order.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Sum(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}
	total := ZeroSum
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			total += v
		}
		return total, nil
	}

	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opSum, err)
			}
			total += v
		}
	}

	return total, nil
}
