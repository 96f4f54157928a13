// SPDX-License-Identifier: MIT

// Package rng supplies the Gaussian sampler consumed by matrix.Initialize.
//
// The sampler is an explicit handle: callers create it (seeded for
// reproducibility, or from the runtime's random state) and pass it into
// initialization. There is no package-level generator.
package rng

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvnet/matrix"
)

// pcgStream is the fixed second PCG word; the seed selects the sequence.
const pcgStream = 0x9e3779b97f4a7c15

// Gaussian draws normally distributed samples from a private source.
// Not safe for concurrent use; give each goroutine its own Gaussian.
type Gaussian struct {
	src rand.Source
}

var _ matrix.GaussianSampler = (*Gaussian)(nil)

// New returns a Gaussian seeded with seed. Equal seeds produce equal sequences.
func New(seed uint64) *Gaussian {
	return &Gaussian{src: rand.NewPCG(seed, pcgStream)}
}

// NewRandom returns a Gaussian seeded from the runtime's random state.
func NewRandom() *Gaussian {
	return New(rand.Uint64())
}

// NewFromSource wraps an existing source. A nil src falls back to NewRandom.
func NewFromSource(src rand.Source) *Gaussian {
	if src == nil {
		return NewRandom()
	}

	return &Gaussian{src: src}
}

// Gaussian returns one sample from N(mean, stdDev²).
// stdDev == 0 returns mean exactly.
func (g *Gaussian) Gaussian(mean, stdDev float64) float64 {
	n := distuv.Normal{Mu: mean, Sigma: stdDev, Src: g.src}

	return n.Rand()
}
