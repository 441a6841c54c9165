// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// generator.go — the Generator parameter set.
//
// Design contract (strict):
//   • A Generator exclusively owns its options and seeds; options hold the
//     Generator only as an option.Lookup back-reference.
//   • Seed-required kinds keep one seed per instance; the caller (the
//     instance manager) decides how many.
//   • Generate is deterministic per (kind, values, seeds, samples).

package generator

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tsgen/option"
)

// Generator is a kind plus its option values and instance seeds.
type Generator struct {
	kind  Kind
	spec  kindSpec
	opts  []*option.Option
	seeds []int64
}

// compile-time check: options resolve siblings through their Generator.
var _ option.Lookup = (*Generator)(nil)

// New builds a Generator for kind with the kind's default option table.
//
// Errors:
//   - ErrUnknownKind for unregistered kinds.
//   - ErrUnknownOption when WithValue names an option the kind lacks.
func New(kind Kind, opts ...Option) (*Generator, error) {
	spec, ok := lookupKind(kind)
	if !ok {
		return nil, fmt.Errorf("New(%q): %w", kind, ErrUnknownKind)
	}
	cfg := newConfig(opts...)

	g := &Generator{kind: kind, spec: spec, opts: make([]*option.Option, 0, len(spec.params))}
	for _, p := range spec.params {
		g.opts = append(g.opts, option.MustNew(p.name, p.value, p.cfg, g))
	}

	for _, ov := range cfg.values {
		o, ok := g.Opt(ov.name)
		if !ok {
			return nil, fmt.Errorf("New(%q): WithValue(%q): %w", kind, ov.name, ErrUnknownOption)
		}
		o.Set(ov.value)
	}

	if spec.seeded {
		if cfg.hasSeeds {
			g.seeds = cfg.seeds
		} else {
			g.seeds = []int64{cfg.seedFn()}
		}
	}

	return g, nil
}

// Kind returns the sampling model.
func (g *Generator) Kind() Kind { return g.kind }

// Title returns the kind's display title.
func (g *Generator) Title() string { return g.spec.title }

// SeedRequired reports whether output depends on per-instance seeds.
func (g *Generator) SeedRequired() bool { return g.spec.seeded }

// Opt implements option.Lookup.
func (g *Generator) Opt(name string) (*option.Option, bool) {
	for _, o := range g.opts {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Options returns the options in table order. The slice is a copy; the
// options themselves are shared so edits take effect.
func (g *Generator) Options() []*option.Option {
	return append([]*option.Option(nil), g.opts...)
}

// SetValue overwrites the value of the named option without validating it.
func (g *Generator) SetValue(name string, v float64) error {
	o, ok := g.Opt(name)
	if !ok {
		return fmt.Errorf("SetValue(%q): %w", name, ErrUnknownOption)
	}
	o.Set(v)
	return nil
}

// Value returns the current value of the named option.
func (g *Generator) Value(name string) (float64, bool) {
	o, ok := g.Opt(name)
	if !ok {
		return 0, false
	}
	return o.Value, true
}

// IsValid reports whether every option's current value is valid and the
// kind's sampler preconditions hold.
func (g *Generator) IsValid() bool {
	return len(g.Invalid()) == 0
}

// Invalid lists the names of options whose current value is invalid, in
// table order, followed by any further names the kind's guard rejects.
func (g *Generator) Invalid() []string {
	var out []string
	for _, o := range g.opts {
		if !o.Valid() {
			out = append(out, o.Name)
		}
	}
	if g.spec.guard == nil {
		return out
	}
	for _, name := range g.spec.guard(g.value) {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}

// -----------------------------------------------------------------------------
// Seeds
// -----------------------------------------------------------------------------

// Seeds returns a copy of the instance seeds.
func (g *Generator) Seeds() []int64 {
	return append([]int64(nil), g.seeds...)
}

// NumSeeds returns the number of instance seeds.
func (g *Generator) NumSeeds() int { return len(g.seeds) }

// AddSeed appends one instance seed.
func (g *Generator) AddSeed(seed int64) {
	g.seeds = append(g.seeds, seed)
}

// SetSeed overwrites the seed of instance i.
func (g *Generator) SetSeed(i int, seed int64) error {
	if i < 0 || i >= len(g.seeds) {
		return fmt.Errorf("SetSeed(%d): %w", i, ErrIndexOutOfRange)
	}
	g.seeds[i] = seed
	return nil
}

// TruncateSeeds keeps the first n seeds. n beyond the current length is a no-op.
func (g *Generator) TruncateSeeds(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(g.seeds) {
		g.seeds = g.seeds[:n:n]
	}
}

// -----------------------------------------------------------------------------
// Sampling
// -----------------------------------------------------------------------------

// Generate produces one series per seed for seeded kinds, or a single shared
// series otherwise.
//
// Errors: ErrBadSize when samples < 1, ErrInvalidOptions when IsValid fails.
func (g *Generator) Generate(samples int) ([][]float64, error) {
	if err := g.precheck(samples); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	if !g.spec.seeded {
		return [][]float64{g.spec.sample(g.value, samples, nil)}, nil
	}

	out := make([][]float64, len(g.seeds))
	for i, seed := range g.seeds {
		out[i] = g.spec.sample(g.value, samples, rngFor(seed))
	}
	return out, nil
}

// GenerateInstance produces the series of instance index alone. Non-seeded
// kinds ignore index and return their shared series.
func (g *Generator) GenerateInstance(samples, index int) ([]float64, error) {
	if err := g.precheck(samples); err != nil {
		return nil, fmt.Errorf("GenerateInstance: %w", err)
	}

	if !g.spec.seeded {
		return g.spec.sample(g.value, samples, nil), nil
	}
	if index < 0 || index >= len(g.seeds) {
		return nil, fmt.Errorf("GenerateInstance(%d): %w", index, ErrIndexOutOfRange)
	}
	return g.spec.sample(g.value, samples, rngFor(g.seeds[index])), nil
}

func (g *Generator) precheck(samples int) error {
	if samples < 1 {
		return fmt.Errorf("samples=%d: %w", samples, ErrBadSize)
	}
	if bad := g.Invalid(); len(bad) > 0 {
		return fmt.Errorf("%v: %w", bad, ErrInvalidOptions)
	}
	return nil
}

// value resolves option values for samplers. Missing names read as 0; the
// kind tables guarantee presence.
func (g *Generator) value(name string) float64 {
	v, _ := g.Value(name)
	return v
}

// -----------------------------------------------------------------------------
// Copy
// -----------------------------------------------------------------------------

// Copy returns a deep, independent clone. Cloned options are owned by the
// clone, so cross-field checks resolve against the clone's values.
func (g *Generator) Copy() *Generator {
	c := &Generator{
		kind:  g.kind,
		spec:  g.spec,
		opts:  make([]*option.Option, len(g.opts)),
		seeds: append([]int64(nil), g.seeds...),
	}
	for i, o := range g.opts {
		oc := o.Copy()
		oc.SetOwner(c)
		c.opts[i] = oc
	}
	return c
}
