// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// impl_chirp.go - linear chirp sampler.
//
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ) + trend*i + noise

package generator

import (
	"math"
	"math/rand"
)

const (
	defChirpF0 = 0.02 // start frequency (cycles/sample)
	defChirpF1 = 0.25 // end   frequency (cycles/sample)
)

type chirpParams struct {
	amp   float64
	f0    float64
	f1    float64
	sigma float64
	trend float64
}

func extractChirpParams(v values) chirpParams {
	return chirpParams{
		amp:   v("amplitude"),
		f0:    v("f0"),
		f1:    v("f1"),
		sigma: v("noise"),
		trend: v("trend"),
	}
}

// guardChirp: A > 0, f0 > 0, f1 > 0, σ ≥ 0.
func guardChirp(v values) []string {
	p := extractChirpParams(v)
	var bad []string
	if !(p.amp > 0) {
		bad = append(bad, "amplitude")
	}
	if !(p.f0 > 0) {
		bad = append(bad, "f0")
	}
	if !(p.f1 > 0) {
		bad = append(bad, "f1")
	}
	if !(p.sigma >= 0) {
		bad = append(bad, "noise")
	}
	return bad
}

func sampleChirp(v values, n int, rng *rand.Rand) []float64 {
	p := extractChirpParams(v)
	out := make([]float64, n)

	// Phase starts at 0 for reproducibility.
	theta := unitZero

	var t, fi, val float64
	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		} else {
			t = unitZero
		}

		fi = p.f0 + (p.f1-p.f0)*t
		theta += tau * fi

		val = p.amp*math.Sin(theta) + p.trend*float64(i)
		if p.sigma > 0 {
			val += p.sigma * rng.NormFloat64()
		}
		out[i] = val
	}

	return out
}
