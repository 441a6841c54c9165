// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// impl_basic.go - closed-form and i.i.d. samplers (linear, sine, uniform, normal).

package generator

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tsgen/option"
)

// sampleLinear: yᵢ = intercept + slope·i.
func sampleLinear(v values, n int, _ *rand.Rand) []float64 {
	slope, intercept := v("slope"), v("intercept")
	out := make([]float64, n)
	for i := range out {
		out[i] = intercept + slope*float64(i)
	}
	return out
}

// sampleSine: yᵢ = offset + A·sin(τ·f·i + phase).
func sampleSine(v values, n int, _ *rand.Rand) []float64 {
	amp, f, phase, offset := v("amplitude"), v("frequency"), v("phase"), v("offset")
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + amp*math.Sin(tau*f*float64(i)+phase)
	}
	return out
}

// sampleUniform: yᵢ ~ U[xMin, xMax).
func sampleUniform(v values, n int, rng *rand.Rand) []float64 {
	lo, hi := v(option.NameXMin), v(option.NameXMax)
	width := hi - lo
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + width*rng.Float64()
	}
	return out
}

// sampleNormal: yᵢ ~ N(mean, sigma²).
func sampleNormal(v values, n int, rng *rand.Rand) []float64 {
	mean, sigma := v("mean"), v("sigma")
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + sigma*rng.NormFloat64()
	}
	return out
}
