// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// kinds.go — the kind registry: option tables and sampling models.
//
// Contract:
//   • Every kind declares a title, a seeded flag, an ordered option table and
//     a sampler. Option tables are static and pass their own constraints.
//   • Samplers receive already validated values and, for seeded kinds, a
//     non-nil RNG; they never panic. Kinds whose samplers need more than the
//     option table promises declare a guard.

package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tsgen/option"
)

// Kind names a sampling model.
type Kind string

// Registered kinds.
const (
	KindLinear  Kind = "linear"
	KindSine    Kind = "sine"
	KindPulse   Kind = "pulse"
	KindChirp   Kind = "chirp"
	KindGBM     Kind = "gbm"
	KindUniform Kind = "uniform"
	KindNormal  Kind = "normal"
)

// DefaultKind is used when a component is created without a generator.
const DefaultKind = KindNormal

// values resolves option values by name for samplers.
type values func(name string) float64

// sampler produces n samples. rng is nil for non-seeded kinds.
type sampler func(v values, n int, rng *rand.Rand) []float64

// guard names the options whose values break a sampler's preconditions.
// Decoded options may carry looser bounds than the kind table, so the
// guard is checked independently of option validity.
type guard func(v values) []string

// param is one row of a kind's option table.
type param struct {
	name  string
	value float64
	cfg   option.Config
}

// kindSpec describes a registered kind.
type kindSpec struct {
	title  string
	seeded bool
	params []param
	sample sampler
	guard  guard
}

var (
	positive    = []option.Validator{option.Positive}
	positiveInt = []option.Validator{option.Integer, option.Positive}
)

// registry is declaration-ordered so Kinds() is stable.
var registry = []struct {
	kind Kind
	spec kindSpec
}{
	{KindLinear, kindSpec{
		title: "Linear",
		params: []param{
			{"slope", 1, option.Config{Title: option.S("Slope")}},
			{"intercept", 0, option.Config{Title: option.S("Intercept")}},
		},
		sample: sampleLinear,
	}},
	{KindSine, kindSpec{
		title: "Sine",
		params: []param{
			{"amplitude", defAmp, option.Config{Title: option.S("Amplitude"), Validators: positive}},
			{"frequency", defSineFreq, option.Config{Title: option.S("Frequency"), Step: option.F(0.01), Validators: positive}},
			{"phase", 0, option.Config{Title: option.S("Phase")}},
			{"offset", 0, option.Config{Title: option.S("Offset")}},
		},
		sample: sampleSine,
	}},
	{KindPulse, kindSpec{
		title:  "Pulse",
		seeded: true,
		params: []param{
			{"amplitude", defAmp, option.Config{Title: option.S("Amplitude"), Validators: positive}},
			{"frequency", defPulseFreq, option.Config{Title: option.S("Frequency"), Step: option.F(0.005), Validators: positive}},
			{"duty", defDuty, option.Config{Title: option.S("Duty cycle"), Min: option.F(0), Max: option.F(1), Step: option.F(0.05)}},
			{"triangular", 0, option.Config{Title: option.S("Triangular"), Min: option.F(0), Max: option.F(1), Step: option.F(1), Validators: []option.Validator{option.Integer}}},
			{"noise", defSigma, option.Config{Title: option.S("Noise σ"), Min: option.F(0)}},
			{"trend", defTrendSlope, option.Config{Title: option.S("Trend"), Step: option.F(0.01)}},
		},
		sample: samplePulse,
		guard:  guardPulse,
	}},
	{KindChirp, kindSpec{
		title:  "Chirp",
		seeded: true,
		params: []param{
			{"amplitude", defAmp, option.Config{Title: option.S("Amplitude"), Validators: positive}},
			{"f0", defChirpF0, option.Config{Title: option.S("Start frequency"), Step: option.F(0.01), Validators: positive}},
			{"f1", defChirpF1, option.Config{Title: option.S("End frequency"), Step: option.F(0.01), Validators: positive}},
			{"noise", defSigma, option.Config{Title: option.S("Noise σ"), Min: option.F(0)}},
			{"trend", defTrendSlope, option.Config{Title: option.S("Trend"), Step: option.F(0.01)}},
		},
		sample: sampleChirp,
		guard:  guardChirp,
	}},
	{KindGBM, kindSpec{
		title:  "GBM",
		seeded: true,
		params: []param{
			{"start", defGBMStart, option.Config{Title: option.S("Start price"), Step: option.F(1), Validators: positive}},
			{"drift", defGBMDrift, option.Config{Title: option.S("Drift μ"), Step: option.F(0.0001)}},
			{"volatility", defGBMVol, option.Config{Title: option.S("Volatility σ"), Min: option.F(0), Step: option.F(0.001)}},
			{"steps", defIntradaySteps, option.Config{Title: option.S("Intraday steps"), Max: option.F(maxIntradaySteps), Step: option.F(1), Validators: positiveInt}},
		},
		sample: sampleGBM,
		guard:  guardGBM,
	}},
	{KindUniform, kindSpec{
		title:  "Uniform",
		seeded: true,
		params: []param{
			{option.NameXMin, 0, option.Config{Title: option.S("Lower bound")}},
			{option.NameXMax, 1, option.Config{Title: option.S("Upper bound")}},
		},
		sample: sampleUniform,
	}},
	{KindNormal, kindSpec{
		title:  "Normal",
		seeded: true,
		params: []param{
			{"mean", 0, option.Config{Title: option.S("Mean μ")}},
			{"sigma", 1, option.Config{Title: option.S("Std. deviation σ"), Validators: positive}},
		},
		sample: sampleNormal,
	}},
}

// lookupKind returns the spec for k.
func lookupKind(k Kind) (kindSpec, bool) {
	for _, r := range registry {
		if r.kind == k {
			return r.spec, true
		}
	}
	return kindSpec{}, false
}

// ParseKind validates a kind name.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := lookupKind(k); !ok {
		return "", fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
	}
	return k, nil
}

// Kinds lists registered kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(registry))
	for i, r := range registry {
		out[i] = r.kind
	}
	return out
}

// Title returns the display title of k, or the raw name when unknown.
func (k Kind) Title() string {
	if spec, ok := lookupKind(k); ok {
		return spec.title
	}
	return string(k)
}

// Seeded reports whether k is seed-sensitive.
func (k Kind) Seeded() bool {
	spec, ok := lookupKind(k)
	return ok && spec.seeded
}
