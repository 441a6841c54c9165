// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// sequence_shared.go - shared defaults and helpers for the samplers.
//
// Purpose:
//   - Hold cross-sampler defaults (amplitude/noise/trend).
//   - Provide per-seed RNG construction and the process-wide seed draw.
//   - Provide small named numeric constants to avoid magic literals.

package generator

import (
	"math"
	"math/rand"
)

// -----------------------------
// Shared defaults (cross-file).
// -----------------------------
const (
	defAmp        = 1.0 // Default amplitude A (>0).
	defSigma      = 0.0 // Default Gaussian noise sigma (≥0); 0 disables noise.
	defTrendSlope = 0.0 // Default linear trend increment per sample.
	defSineFreq   = 0.05
)

// -----------------------------
// Tiny numeric named constants.
// -----------------------------
const (
	unitZero  = 0.0 // named zero to avoid magic 0.0
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// tau = 2π, used by the periodic samplers.
const tau = 2.0 * math.Pi

// maxSeed bounds drawn seeds to the positive int32 range so they survive
// every serialized form unchanged.
const maxSeed = math.MaxInt32 - 1

// rngFor returns an independent stream for one instance seed.
func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DrawSeed returns a fresh seed in [1, 2^31-2] from the process-wide source.
// Safe for concurrent use.
func DrawSeed() int64 {
	return rand.Int63n(maxSeed) + 1
}

// SeedSource returns a deterministic seed stream drawing from the same range
// as DrawSeed. Not safe for concurrent use.
func SeedSource(seed int64) func() int64 {
	rng := rngFor(seed)
	return func() int64 {
		return rng.Int63n(maxSeed) + 1
	}
}
