// SPDX-License-Identifier: MIT
// Package: matrix
//
// Square-matrix routines that are part of the surface but deliberately not
// implemented. Each one validates its input first, so callers get the same
// shape diagnostics a real implementation would give, then fails with
// ErrUnsupported instead of returning an approximate result.

package matrix

import "fmt"

const (
	opInverse  = "Inverse"
	opDet      = "Det"
	opCofactor = "Cofactor"
)

// validateSquareOp runs NotNil → Square for the unsupported square routines.
// A non-square input reports both ErrUnsupported and ErrNonSquare.
func validateSquareOp(m Matrix, opTag string) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w: %w", opTag, ErrUnsupported, err)
	}

	return nil
}

// Inverse always fails: ErrUnsupported (plus ErrNonSquare for non-square input).
func Inverse(m Matrix) (*Dense, error) {
	if err := validateSquareOp(m, opInverse); err != nil {
		return nil, err
	}

	return nil, matrixErrorf(opInverse, ErrUnsupported)
}

// Det always fails: ErrUnsupported (plus ErrNonSquare for non-square input).
func Det(m Matrix) (float64, error) {
	if err := validateSquareOp(m, opDet); err != nil {
		return 0, err
	}

	return 0, matrixErrorf(opDet, ErrUnsupported)
}

// Cofactor always fails. Indices are checked before the ErrUnsupported
// result so that misuse surfaces as ErrIndexOutOfBounds.
func Cofactor(m Matrix, row, col int) (float64, error) {
	if err := validateSquareOp(m, opCofactor); err != nil {
		return 0, err
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return 0, denseErrorf(opCofactor, row, col, ErrIndexOutOfBounds)
	}

	return 0, matrixErrorf(opCofactor, ErrUnsupported)
}
