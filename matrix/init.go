// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const ctxInitialize = "Initialize"

// HeStdDev returns the He/Kaiming standard deviation sqrt(2/nInputs).
// Returns ErrInvalidArgument when nInputs ≤ 0.
func HeStdDev(nInputs int) (float64, error) {
	if nInputs <= 0 {
		return 0, fmt.Errorf("HeStdDev(%d): %w", nInputs, ErrInvalidArgument)
	}

	return math.Sqrt(2.0 / float64(nInputs)), nil
}

// Initialize fills m in place with He/Kaiming samples: every element is an
// independent draw from N(0, 2/nInputs) taken from src.
// MAIN DESCRIPTION:
//   - The one randomized mutator. Shape is unchanged.
//
// Implementation:
//   - Stage 1: validate receiver, sampler and nInputs > 0.
//   - Stage 2: compute σ = sqrt(2/nInputs) once.
//   - Stage 3: draw one sample per element in row-major order.
//
// Errors:
//   - ErrNilMatrix (nil receiver), ErrInvalidArgument (nil src or nInputs ≤ 0).
//     On error m is left untouched.
//
// Determinism:
//   - Fully determined by the sampler's sequence; a seeded sampler yields a
//     reproducible matrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Initialize(src GaussianSampler, nInputs int) error {
	if m == nil {
		return matrixErrorf(ctxInitialize, ErrNilMatrix)
	}
	if src == nil {
		return fmt.Errorf("%s: nil sampler: %w", ctxInitialize, ErrInvalidArgument)
	}
	sigma, err := HeStdDev(nInputs)
	if err != nil {
		return matrixErrorf(ctxInitialize, err)
	}
	for idx := range m.data {
		m.data[idx] = src.Gaussian(0, sigma)
	}

	return nil
}
