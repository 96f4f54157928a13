// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite so the numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnet/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths and compare
// them with the fast path.
type hide struct{ matrix.Matrix }

// mustDense BUILDS an r×c *Dense from row-major vals (nil ⇒ zeros) or fails the test.
func mustDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c, vals)
	require.NoError(tb, err)

	return m
}

// randDense FILLS an r×c *Dense with uniform values in [-1,1) from a seeded source.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return mustDense(tb, r, c, vals)
}

// stubSampler returns a fixed sequence and records every call.
type stubSampler struct {
	next    float64
	step    float64
	means   []float64
	stdDevs []float64
}

func (s *stubSampler) Gaussian(mean, stdDev float64) float64 {
	s.means = append(s.means, mean)
	s.stdDevs = append(s.stdDevs, stdDev)
	v := s.next
	s.next += s.step

	return v
}
