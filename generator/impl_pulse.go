// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// impl_pulse.go — rectangular/triangular pulse sampler.
//
// Model:
//   • Rectangular: y ∈ {0, A}, on while the phase fraction is below duty.
//   • Triangular:  y ∈ [0, A] via 1 − |2·frac − 1| (no trig).
//   • Then y += trend·i and y += noise·N(0,1) (seeded).
//
// O(n) time and memory.

package generator

import (
	"math"
	"math/rand"
)

const (
	defPulseFreq = 0.125 // cycles/sample; period ≈ 8
	defDuty      = 0.5   // rectangular duty cycle in [0,1]
)

// pulseParams holds the resolved knobs for one pulse run.
type pulseParams struct {
	amp        float64
	f0         float64
	duty       float64
	triangular bool
	sigma      float64
	trend      float64
}

// extractPulseParams maps option values to pulseParams.
func extractPulseParams(v values) pulseParams {
	return pulseParams{
		amp:        v("amplitude"),
		f0:         v("frequency"),
		duty:       v("duty"),
		triangular: v("triangular") >= unitOne,
		sigma:      v("noise"),
		trend:      v("trend"),
	}
}

// guardPulse: A > 0, f > 0, duty in [0,1], σ ≥ 0.
func guardPulse(v values) []string {
	p := extractPulseParams(v)
	var bad []string
	if !(p.amp > 0) {
		bad = append(bad, "amplitude")
	}
	if !(p.f0 > 0) || math.IsInf(p.f0, 0) {
		bad = append(bad, "frequency")
	}
	if !(p.duty >= 0 && p.duty <= 1) {
		bad = append(bad, "duty")
	}
	if !(p.sigma >= 0) {
		bad = append(bad, "noise")
	}
	return bad
}

func samplePulse(v values, n int, rng *rand.Rand) []float64 {
	p := extractPulseParams(v)
	out := make([]float64, n)

	var frac, base float64
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1) without trig.
		frac = math.Mod(float64(i)*p.f0, unitOne)

		if p.triangular {
			base = p.amp * (unitOne - math.Abs(triDouble*frac-triCenter))
		} else if frac < p.duty {
			base = p.amp
		} else {
			base = unitZero
		}

		base += p.trend * float64(i)
		if p.sigma > 0 {
			base += p.sigma * rng.NormFloat64()
		}
		out[i] = base
	}

	return out
}
