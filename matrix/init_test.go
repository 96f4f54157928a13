// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/rng"
)

func TestHeStdDev(t *testing.T) {
	sigma, err := matrix.HeStdDev(2)
	require.NoError(t, err)
	require.Equal(t, 1.0, sigma)

	sigma, err = matrix.HeStdDev(8)
	require.NoError(t, err)
	require.Equal(t, 0.5, sigma)

	_, err = matrix.HeStdDev(0)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = matrix.HeStdDev(-3)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestInitialize_SamplerContract checks parameters and row-major fill order.
func TestInitialize_SamplerContract(t *testing.T) {
	m := mustDense(t, 2, 3, nil)
	src := &stubSampler{next: 1, step: 1}

	require.NoError(t, m.Initialize(src, 3))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())
	require.Len(t, src.means, 6)

	want := math.Sqrt(2.0 / 3.0)
	for i := range src.means {
		require.Equal(t, 0.0, src.means[i])
		require.Equal(t, want, src.stdDevs[i])
	}
}

func TestInitialize_Seeded(t *testing.T) {
	a := mustDense(t, 4, 4, nil)
	b := mustDense(t, 4, 4, nil)

	require.NoError(t, a.Initialize(rng.New(42), 4))
	require.NoError(t, b.Initialize(rng.New(42), 4))
	require.True(t, a.Equal(b), "same seed, same weights")

	zero := mustDense(t, 4, 4, nil)
	require.False(t, a.Equal(zero))

	c := mustDense(t, 4, 4, nil)
	require.NoError(t, c.Initialize(rng.New(43), 4))
	require.False(t, a.Equal(c))
}

func TestInitialize_Errors(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2, 3, 4})

	require.ErrorIs(t, m.Initialize(&stubSampler{}, 0), matrix.ErrInvalidArgument)
	require.ErrorIs(t, m.Initialize(nil, 2), matrix.ErrInvalidArgument)
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data(), "failed init leaves values")

	var nilDense *matrix.Dense
	require.ErrorIs(t, nilDense.Initialize(&stubSampler{}, 2), matrix.ErrNilMatrix)
}
