// SPDX-License-Identifier: MIT
// Package: tsgen/option
//
// describe.go — human-readable constraint summaries.
//
// Rendering rules (observable contract, asserted against literal strings):
//   • Range: "x ∈ <l><min>, <max><r>" with "[" / "]" for finite ends and
//     "(" / ")" otherwise; non-finite ends print as "-∞" / "+∞".
//   • EXCLUSIVE_0_1 forces "(…)" and clamps the range into [0,1].
//   • Otherwise POSITIVE forces "(" and clamps min to ≥ 0.
//   • NOT_ZERO prints "x > 0" when POSITIVE or EXCLUSIVE_0_1 is attached,
//     else "x ≠ 0". INTEGER prints "x ∈ Z\{ 0 }" with POSITIVE, else "x ∈ Z".
//   • Membership clauses keep attachment order and are joined by " | ".
// Presentation only: nothing here affects validity.

package option

import (
	"math"
	"strconv"
	"strings"
)

const (
	negInfText = "-∞"
	posInfText = "+∞"
)

// Describe renders the constraint summary, prefixed by "name: " when
// includeName is set.
func (o *Option) Describe(includeName bool) string {
	var b strings.Builder
	if includeName {
		b.WriteString(o.Name)
		b.WriteString(": ")
	}
	b.WriteString("{ ")
	b.WriteString(rangeText(o.Min, o.Max, o.Validators))
	for _, clause := range membershipClauses(o.Validators) {
		b.WriteString(" | ")
		b.WriteString(clause)
	}
	b.WriteString(" }")

	return b.String()
}

// String implements fmt.Stringer with the name included.
func (o *Option) String() string {
	return o.Describe(true)
}

// rangeText renders the interval part of a summary.
func rangeText(lo, hi float64, vs []Validator) string {
	left, right := "(", ")"
	if isFinite(lo) {
		left = "["
	}
	if isFinite(hi) {
		right = "]"
	}

	switch {
	case hasValidator(vs, Exclusive01):
		left, right = "(", ")"
		lo = math.Max(lo, 0)
		hi = math.Min(hi, 1)
	case hasValidator(vs, Positive):
		left = "("
		lo = math.Max(lo, 0)
	}

	return "x ∈ " + left + boundText(lo, negInfText) + ", " + boundText(hi, posInfText) + right
}

// membershipClauses renders NOT_ZERO and INTEGER; other validators are
// already expressed by the range.
func membershipClauses(vs []Validator) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		switch v {
		case NotZero:
			if hasValidator(vs, Exclusive01) || hasValidator(vs, Positive) {
				out = append(out, "x > 0")
			} else {
				out = append(out, "x ≠ 0")
			}
		case Integer:
			if hasValidator(vs, Positive) {
				out = append(out, `x ∈ Z\{ 0 }`)
			} else {
				out = append(out, "x ∈ Z")
			}
		}
	}
	return out
}

func boundText(v float64, inf string) string {
	if !isFinite(v) {
		return inf
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
