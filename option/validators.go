// SPDX-License-Identifier: MIT
// Package: tsgen/option
//
// validators.go — the fixed catalog of named value predicates.
//
// Contract:
//   • Validator is a closed enum; every member has a pure predicate and a
//     stable string id used in serialized forms.
//   • Ids outside the catalog are rejected at parse time (ErrUnknownValidator).
//   • An out-of-catalog enum value that reaches a check fails closed.

package option

import (
	"fmt"
	"math"
)

// Validator identifies one predicate from the catalog.
type Validator int

const (
	// Exclusive01 holds for 0 < v < 1.
	Exclusive01 Validator = iota + 1
	// NotZero holds for v ≠ 0.
	NotZero
	// Positive holds for v > 0.
	Positive
	// Integer holds for whole numbers.
	Integer
)

// Stable ids used in JSON/YAML.
const (
	IDExclusive01 = "EXCLUSIVE_0_1"
	IDNotZero     = "NOT_ZERO"
	IDPositive    = "POSITIVE"
	IDInteger     = "INTEGER"
)

// catalog is declaration-ordered; index i holds Validator(i+1).
var catalog = [...]struct {
	id   string
	pred func(float64) bool
}{
	{IDExclusive01, func(v float64) bool { return v > 0 && v < 1 }},
	{IDNotZero, func(v float64) bool { return v != 0 }},
	{IDPositive, func(v float64) bool { return v > 0 }},
	{IDInteger, isInteger},
}

// isInteger mirrors "is a whole number": finite and without fractional part.
func isInteger(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v)
}

// Known reports whether v is a member of the catalog.
func (v Validator) Known() bool {
	return v >= Exclusive01 && int(v) <= len(catalog)
}

// Check applies the predicate to x. Unknown validators never hold.
func (v Validator) Check(x float64) bool {
	if !v.Known() {
		return false
	}
	return catalog[v-1].pred(x)
}

// String returns the catalog id, or a diagnostic form for unknown values.
func (v Validator) String() string {
	if !v.Known() {
		return fmt.Sprintf("Validator(%d)", int(v))
	}
	return catalog[v-1].id
}

// MarshalText encodes the catalog id so JSON and YAML carry plain strings.
func (v Validator) MarshalText() ([]byte, error) {
	if !v.Known() {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(v), ErrUnknownValidator)
	}
	return []byte(v.String()), nil
}

// UnmarshalText decodes a catalog id.
func (v *Validator) UnmarshalText(text []byte) error {
	parsed, err := ParseValidator(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseValidator maps a catalog id to its Validator.
func ParseValidator(id string) (Validator, error) {
	for i := range catalog {
		if catalog[i].id == id {
			return Validator(i + 1), nil
		}
	}
	return 0, fmt.Errorf("ParseValidator(%q): %w", id, ErrUnknownValidator)
}

// ValidatorIDs lists the catalog ids in declaration order.
func ValidatorIDs() []string {
	ids := make([]string, len(catalog))
	for i := range catalog {
		ids[i] = catalog[i].id
	}
	return ids
}

// hasValidator reports membership of v in set.
func hasValidator(set []Validator, v Validator) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}
