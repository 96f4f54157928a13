// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast a scalar over every element (matrix ⊕ scalar and scalar ⊕ matrix).
//   - Keep operand order explicit: ScalarSub(s, M) is s - m[i,j], never m[i,j] - s.
//
// Design:
//   - One private kernel (ewScalar) shared by all public forms.
//   - Fresh result per call; deterministic flat loop on the Dense fast path.

package matrix

// Operation tags for the scalar forms.
const (
	opAddScalar = "AddScalar"
	opSubScalar = "SubScalar"
	opScale     = "Scale"
	opScalarSub = "ScalarSub"
)

// ewScalar computes out[i,j] = op(m[i,j]). Time: O(r*c). Space: O(r*c).
func ewScalar(m Matrix, op func(v float64) float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := newResult(rows, cols, m)

	// Dense fast-path: direct flat slice iteration.
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = op(v)
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			out.data[i*cols+j] = op(v)
		}
	}

	return out, nil
}

// AddScalar returns m + s (s added to every element).
func AddScalar(m Matrix, s float64) (*Dense, error) {
	return ewScalar(m, func(v float64) float64 { return v + s }, opAddScalar)
}

// SubScalar returns m - s, i.e. out[i,j] = m[i,j] - s.
func SubScalar(m Matrix, s float64) (*Dense, error) {
	return ewScalar(m, func(v float64) float64 { return v - s }, opSubScalar)
}

// Scale returns alpha * m. alpha = 0 yields an explicit zero matrix of the same shape.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	return ewScalar(m, func(v float64) float64 { return v * alpha }, opScale)
}

// ScalarAdd returns s + m. Addition commutes, so this equals AddScalar(m, s).
func ScalarAdd(s float64, m Matrix) (*Dense, error) {
	return ewScalar(m, func(v float64) float64 { return s + v }, opAddScalar)
}

// ScalarSub returns s - m, i.e. out[i,j] = s - m[i,j].
// Operand order is preserved: ScalarSub(5, M) is NOT SubScalar(M, 5).
func ScalarSub(s float64, m Matrix) (*Dense, error) {
	return ewScalar(m, func(v float64) float64 { return s - v }, opScalarSub)
}

// ScalarMul returns s * m. Multiplication commutes, so this equals Scale(m, s).
func ScalarMul(s float64, m Matrix) (*Dense, error) {
	return ewScalar(m, func(v float64) float64 { return s * v }, opScale)
}
