// SPDX-License-Identifier: MIT

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//   - Any NaN element fails the comparison.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1). Early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !withinTol(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !withinTol(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// withinTol reports |x-y| ≤ atol + rtol*|y|; false whenever x or y is NaN.
func withinTol(x, y, rtol, atol float64) bool {
	return math.Abs(x-y) <= atol+rtol*math.Abs(y)
}
