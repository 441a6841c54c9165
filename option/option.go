// SPDX-License-Identifier: MIT
// Package: tsgen/option
//
// option.go — the Option type, presence-aware defaults and validity checks.
//
// Contract (strict):
//   • Defaults apply only to ABSENT Config fields (nil pointers). A supplied
//     0 bound or step is kept verbatim.
//   • The owner Lookup is a non-owning handle consulted for cross-field
//     checks only; the Option never mutates it.
//   • IsValid / MatchesValidators never panic and never return errors.

package option

import (
	"fmt"
	"math"
)

// Cross-field pair names. Only these two names take part in the
// cross-field layer.
const (
	NameXMin = "xMin"
	NameXMax = "xMax"
)

// DefaultStep is the suggested increment when Config.Step is absent.
const DefaultStep = 0.1

// Lookup resolves sibling options by name. A parameter set that owns options
// implements it; options hold it as a non-owning back-reference.
type Lookup interface {
	Opt(name string) (*Option, bool)
}

// Config is the construction bag for New. Nil fields take defaults:
// Title → name, Min → -Inf, Max → +Inf, Step → DefaultStep.
type Config struct {
	Title      *string
	Min        *float64
	Max        *float64
	Step       *float64
	Validators []Validator
}

// F returns a pointer to v, for Config literals.
func F(v float64) *float64 { return &v }

// S returns a pointer to s, for Config literals.
func S(s string) *string { return &s }

// Option is one named numeric parameter with its constraint metadata.
type Option struct {
	Name       string
	Title      string
	Value      float64
	Min        float64
	Max        float64
	Step       float64
	Validators []Validator

	owner Lookup
}

// New builds an Option from name, initial value and cfg. owner may be nil.
//
// Errors:
//   - ErrEmptyName if name == "".
//   - ErrUnknownValidator if cfg.Validators holds a value outside the catalog.
func New(name string, value float64, cfg Config, owner Lookup) (*Option, error) {
	if name == "" {
		return nil, fmt.Errorf("New: %w", ErrEmptyName)
	}

	o := &Option{
		Name:  name,
		Title: name,
		Value: value,
		Min:   math.Inf(-1),
		Max:   math.Inf(1),
		Step:  DefaultStep,
		owner: owner,
	}
	if cfg.Title != nil {
		o.Title = *cfg.Title
	}
	if cfg.Min != nil {
		o.Min = *cfg.Min
	}
	if cfg.Max != nil {
		o.Max = *cfg.Max
	}
	if cfg.Step != nil {
		o.Step = *cfg.Step
	}

	vs, err := normalizeValidators(cfg.Validators)
	if err != nil {
		return nil, fmt.Errorf("New(%q): %w", name, err)
	}
	o.Validators = vs

	return o, nil
}

// MustNew is New for static option tables; it panics on error.
func MustNew(name string, value float64, cfg Config, owner Lookup) *Option {
	o, err := New(name, value, cfg, owner)
	if err != nil {
		panic(err)
	}
	return o
}

// normalizeValidators rejects unknown members and drops duplicates while
// keeping first-seen order.
func normalizeValidators(in []Validator) ([]Validator, error) {
	out := make([]Validator, 0, len(in))
	for _, v := range in {
		if !v.Known() {
			return nil, fmt.Errorf("validator %d: %w", int(v), ErrUnknownValidator)
		}
		if !hasValidator(out, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// SetOwner attaches, replaces or (with nil) clears the owner back-reference.
func (o *Option) SetOwner(owner Lookup) {
	o.owner = owner
}

// Owner returns the attached back-reference, or nil.
func (o *Option) Owner() Lookup {
	return o.owner
}

// Set overwrites the current value. No validation happens here.
func (o *Option) Set(v float64) {
	o.Value = v
}

// Copy returns an independent Option with the same fields. The owner handle
// is shared, value state is not.
func (o *Option) Copy() *Option {
	c := *o
	c.Validators = append([]Validator(nil), o.Validators...)
	return &c
}

// Has reports whether v is attached to o.
func (o *Option) Has(v Validator) bool {
	return hasValidator(o.Validators, v)
}

// MatchesValidators applies the cross-field layer and then the catalog layer
// to candidate.
func (o *Option) MatchesValidators(candidate float64) bool {
	if !o.matchesPair(candidate) {
		return false
	}
	for _, v := range o.Validators {
		if !v.Check(candidate) {
			return false
		}
	}
	return true
}

// matchesPair enforces xMin < xMax. A missing owner or missing pair passes.
func (o *Option) matchesPair(candidate float64) bool {
	if o.owner == nil {
		return true
	}

	var pair string
	switch o.Name {
	case NameXMin:
		pair = NameXMax
	case NameXMax:
		pair = NameXMin
	default:
		return true
	}

	other, ok := o.owner.Opt(pair)
	if !ok || other == nil {
		return true
	}
	if o.Name == NameXMin {
		return candidate < other.Value
	}
	return candidate > other.Value
}

// IsValid reports whether candidate satisfies every constraint of o.
func (o *Option) IsValid(candidate float64) bool {
	return !math.IsNaN(candidate) &&
		o.MatchesValidators(candidate) &&
		(math.IsNaN(o.Min) || candidate >= o.Min) &&
		(math.IsNaN(o.Max) || candidate <= o.Max) &&
		(math.IsNaN(o.Min) || math.IsNaN(o.Max) || o.Min < o.Max)
}

// Valid is IsValid applied to the current value.
func (o *Option) Valid() bool {
	return o.IsValid(o.Value)
}

// Matches is MatchesValidators applied to the current value.
func (o *Option) Matches() bool {
	return o.MatchesValidators(o.Value)
}
