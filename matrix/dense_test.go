// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/matrix"
)

// TestNewDense_Data copies caller data in row-major order.
func TestNewDense_Data(t *testing.T) {
	vals := []float64{1, 2, 3, 4}
	m, err := matrix.NewDense(2, 2, vals)
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data())

	vals[0] = 99 // caller keeps its slice; the matrix owns a copy
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestNewDense_ZeroFill checks every valid shape starts at 0.0 with size rows*cols.
func TestNewDense_ZeroFill(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {3, 4}, {10, 10}} {
		m, err := matrix.NewDense(shape[0], shape[1], nil)
		require.NoError(t, err)
		require.Equal(t, shape[0]*shape[1], m.Size())
		for _, v := range m.Data() {
			require.Equal(t, 0.0, v)
		}
	}

	z, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, make([]float64, 6), z.Data())
}

// TestNewDense_InvalidShape rejects non-positive dimensions and wrong data length.
func TestNewDense_InvalidShape(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		data       []float64
	}{
		{"zero rows", 0, 5, nil},
		{"zero cols", 5, 0, nil},
		{"zero both", 0, 0, nil},
		{"negative", -1, 2, nil},
		{"short data", 2, 2, []float64{1, 2, 3}},
		{"long data", 2, 2, []float64{1, 2, 3, 4, 5}},
		{"empty non-nil data", 1, 1, []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, matrix.ErrInvalidShape)
			require.Nil(t, m)
		})
	}
}

// TestAtSet covers valid round-trips and every out-of-bounds direction.
func TestAtSet(t *testing.T) {
	m := mustDense(t, 2, 3, nil)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(i, j, float64(10*i+j)))
		}
	}
	require.Equal(t, []float64{0, 1, 2, 10, 11, 12}, m.Data())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 12.0, v)

	for _, idx := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}, {5, 5}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "At%v", idx)
		err = m.Set(idx[0], idx[1], 1)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "Set%v", idx)
	}
	// failed writes leave storage untouched
	require.Equal(t, []float64{0, 1, 2, 10, 11, 12}, m.Data())
}

// TestRowCol returns fresh copies and rejects bad indices.
func TestRowCol(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2, 3, 4})

	r0, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, r0)
	r1, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, r1)

	c0, err := m.Col(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, c0)
	c1, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4}, c1)

	r0[0] = 42
	c1[0] = 42
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data())

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.Col(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestDataIsCopy ensures Data() never exposes the backing buffer.
func TestDataIsCopy(t *testing.T) {
	m := mustDense(t, 1, 2, []float64{1, 2})
	d := m.Data()
	d[0] = -1
	require.Equal(t, []float64{1, 2}, m.Data())
}

// TestShapeSize checks the pure accessors.
func TestShapeSize(t *testing.T) {
	m := mustDense(t, 3, 4, nil)
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 12, m.Size())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.False(t, m.Equal(clone))
}

// TestEqual covers shape, value, nil and fallback comparisons.
func TestEqual(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})

	assert.True(t, a.Equal(mustDense(t, 2, 2, []float64{1, 2, 3, 4})))
	assert.False(t, a.Equal(mustDense(t, 2, 2, []float64{1, 2, 3, 5})))
	assert.False(t, a.Equal(mustDense(t, 1, 4, []float64{1, 2, 3, 4})))
	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal((*matrix.Dense)(nil)))
	assert.True(t, a.Equal(hide{mustDense(t, 2, 2, []float64{1, 2, 3, 4})}))
	assert.False(t, a.Equal(hide{mustDense(t, 2, 2, []float64{0, 2, 3, 4})}))

	nan := mustDense(t, 1, 1, []float64{math.NaN()})
	assert.False(t, nan.Equal(nan.Clone()), "NaN is never equal under exact float equality")
}

// TestStringOutput checks the space-separated, newline-per-row dump.
func TestStringOutput(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.Equal(t, "1 2\n3 4\n", m.String())

	frac := mustDense(t, 1, 3, []float64{0.5, -1.25, 1e-9})
	require.Equal(t, "0.5 -1.25 1e-09\n", frac.String())
}

// TestNaNInfPolicy checks the opt-in finite-only policy and its inheritance.
func TestNaNInfPolicy(t *testing.T) {
	_, err := matrix.NewDense(1, 2, []float64{1, math.Inf(1)}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	loose := mustDense(t, 1, 1, nil)
	require.NoError(t, loose.Set(0, 0, math.NaN()), "policy is off by default")

	strict, err := matrix.NewDense(1, 2, nil, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	// Clone keeps the policy.
	require.ErrorIs(t, strict.Clone().Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)

	// Derived results keep it too.
	tr := strict.T()
	require.ErrorIs(t, tr.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	_, err = strict.Map(func(v float64) float64 { return 1 / v })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// Last writer wins.
	back, err := matrix.NewDense(1, 1, nil, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, back.Set(0, 0, math.NaN()))

	// nil options are skipped
	_, err = matrix.NewDense(1, 1, nil, nil, matrix.WithValidateNaNInf())
	require.NoError(t, err)
}
