// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// impl_gbm.go - close prices of a discrete-time GBM with intraday steps.
//
// Model (per intraday step, Δt = 1/steps):
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1).
//
// Sample i is the close after day i. O(n * steps) time; O(n) memory.
// Prices stay strictly positive because S0 > 0 and exp(·) > 0.

package generator

import (
	"math"
	"math/rand"
)

const (
	defGBMStart      = 100.0  // initial price S0 (>0)
	defGBMDrift      = 0.0005 // daily drift μ
	defGBMVol        = 0.02   // daily volatility σ (≥0)
	defIntradaySteps = 8      // intraday steps per day
	maxIntradaySteps = 1024
)

type gbmParams struct {
	S0    float64
	mu    float64
	vol   float64
	steps int
}

// extractGBMParams clamps steps into [1, maxIntradaySteps]; guardGBM keeps
// values that would need the clamp from reaching the sampler.
func extractGBMParams(v values) gbmParams {
	steps := v("steps")
	if math.IsNaN(steps) || steps < 1 {
		steps = 1
	}
	return gbmParams{
		S0:    v("start"),
		mu:    v("drift"),
		vol:   v("volatility"),
		steps: int(math.Min(steps, maxIntradaySteps)),
	}
}

// guardGBM: S0 > 0, σ ≥ 0, steps integral in [1, maxIntradaySteps].
func guardGBM(v values) []string {
	var bad []string
	if s0 := v("start"); !(s0 > 0) || math.IsInf(s0, 0) {
		bad = append(bad, "start")
	}
	if vol := v("volatility"); !(vol >= 0) || math.IsInf(vol, 0) {
		bad = append(bad, "volatility")
	}
	if math.IsNaN(v("drift")) {
		bad = append(bad, "drift")
	}
	if steps := v("steps"); steps != math.Trunc(steps) || steps < 1 || steps > maxIntradaySteps {
		bad = append(bad, "steps")
	}
	return bad
}

func sampleGBM(v values, n int, rng *rand.Rand) []float64 {
	p := extractGBMParams(v)
	out := make([]float64, n)

	dt := unitOne / float64(p.steps)
	driftTerm := p.mu - 0.5*p.vol*p.vol
	noiseScale := p.vol * math.Sqrt(dt)

	S := p.S0
	for d := 0; d < n; d++ {
		for s := 0; s < p.steps; s++ {
			S *= math.Exp(driftTerm*dt + noiseScale*rng.NormFloat64())
		}
		out[d] = S
	}

	return out
}
