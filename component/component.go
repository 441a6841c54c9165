// SPDX-License-Identifier: MIT
// Package: tsgen/component
//
// component.go — seed lifecycle and regeneration.
//
// Contract (strict):
//   • Seeds and data are owned here; the generator's seed list is mutated
//     only through this type's operations.
//   • Mutations never fail: instance counts below 1 clamp to 1, shrinking
//     truncates, growing appends drawn seeds in index order.
//   • Generation failures (invalid options) leave data empty and are logged.

package component

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/tsgen/generator"
	"github.com/katalvlaran/tsgen/logging"
)

// Renamer is the owning series' naming registry.
type Renamer interface {
	Rename(id, name string)
}

// Series is the owning time series as seen by a component.
type Series interface {
	// NextID mints an identity for a new component.
	NextID() string
	// NameFor proposes a display name for a component built on g.
	NameFor(g *generator.Generator) string
	// Samples is the default sample count.
	Samples() int
	// Generate recomputes the series after a component changed.
	Generate()
	// Compositor returns the naming registry.
	Compositor() Renamer
}

// Component runs one generator as Instances() parallel seeded instances.
type Component struct {
	id        string
	name      string
	instances int
	gen       *generator.Generator
	data      [][]float64
	visible   bool

	series Series
	seedFn func() int64
	root   *logging.Logger // as supplied, before component scoping
	log    *logging.Logger
}

// New binds a component to series. A nil gen is replaced by a fresh
// generator of generator.DefaultKind. Identity comes from the series unless
// WithID / WithName say otherwise. The first generation pass runs before New
// returns (when series is non-nil).
func New(series Series, instances int, gen *generator.Generator, opts ...Option) *Component {
	s := newSettings(opts...)
	c := &Component{
		visible: s.visible,
		series:  series,
		seedFn:  s.seedFn,
	}

	fresh := gen == nil
	if fresh {
		gen = defaultGenerator(s.seedFn)
	}
	c.gen = gen

	switch {
	case s.id != nil:
		c.id = *s.id
	case series != nil:
		c.id = series.NextID()
	}
	switch {
	case s.name != nil:
		c.name = *s.name
	case series != nil:
		c.name = series.NameFor(gen)
	}
	c.root = s.logger
	c.log = s.logger.WithComponent(c.id)

	if fresh && instances > 1 {
		// A fresh generator holds exactly one seed: grow through the same
		// path as SetInstances so every instance is seeded before generating.
		c.instances = 1
		c.SetInstances(instances)
		if !gen.SeedRequired() {
			c.Generate(0)
		}
		return c
	}

	c.instances = max(1, instances)
	c.reconcileSeeds()
	c.Generate(0)

	return c
}

func defaultGenerator(seedFn func() int64) *generator.Generator {
	g, err := generator.New(generator.DefaultKind, generator.WithSeedSource(seedFn))
	if err != nil {
		// unreachable: DefaultKind is registered
		panic(fmt.Sprintf("component: default generator: %v", err))
	}
	return g
}

// reconcileSeeds brings a seeded generator's seed count to c.instances.
func (c *Component) reconcileSeeds() {
	if !c.gen.SeedRequired() {
		return
	}
	if c.gen.NumSeeds() > c.instances {
		c.gen.TruncateSeeds(c.instances)
		return
	}
	for c.gen.NumSeeds() < c.instances {
		c.gen.AddSeed(c.seedFn())
	}
}

// Bind attaches (or replaces) the owning series. Nothing is regenerated.
func (c *Component) Bind(series Series) { c.series = series }

// Series returns the owning series, or nil when unbound.
func (c *Component) Series() Series { return c.series }

// ID returns the component identity.
func (c *Component) ID() string { return c.id }

// Name returns the display name.
func (c *Component) Name() string { return c.name }

// Instances returns the number of parallel instances (≥ 1).
func (c *Component) Instances() int { return c.instances }

// Generator returns the underlying generator. Seed mutations must go through
// the component.
func (c *Component) Generator() *generator.Generator { return c.gen }

// Seeds returns a copy of the instance seeds.
func (c *Component) Seeds() []int64 { return c.gen.Seeds() }

// Visible reports the display flag.
func (c *Component) Visible() bool { return c.visible }

// SetVisible sets the display flag. Generation is unaffected.
func (c *Component) SetVisible(v bool) { c.visible = v }

// SetName renames the component and notifies the series' naming registry.
func (c *Component) SetName(name string) {
	c.name = name
	if c.series == nil {
		return
	}
	if r := c.series.Compositor(); r != nil {
		r.Rename(c.id, name)
	}
}

// SetInstances changes the instance count (clamped to ≥ 1). For seeded
// generators shrinking truncates the seeds, growing appends drawn seeds, and
// the data is regenerated. Non-seeded generators share one series, so their
// data is left as is.
func (c *Component) SetInstances(n int) {
	n = max(1, n)
	seeded := c.gen.SeedRequired()

	if seeded {
		if n < c.gen.NumSeeds() {
			c.gen.TruncateSeeds(n)
		} else {
			for i := c.gen.NumSeeds(); i < n; i++ {
				c.gen.AddSeed(c.seedFn())
			}
		}
	}
	c.instances = n

	if seeded {
		c.Generate(0)
	}
}

// SetSeed overwrites the seed of instance 0 and regenerates. Non-seeded
// generators keep no seeds; only the regeneration happens.
func (c *Component) SetSeed(seed int64) {
	if c.gen.SeedRequired() {
		// index 0 always exists for seeded generators (instances ≥ 1)
		_ = c.gen.SetSeed(0, seed)
	}
	c.Generate(0)
}

// RandomSeed redraws every seed slot in index order and regenerates.
func (c *Component) RandomSeed() {
	if c.gen.SeedRequired() {
		for i := 0; i < c.instances; i++ {
			_ = c.gen.SetSeed(i, c.seedFn())
		}
	}
	c.Generate(0)
}

// IsValid delegates to the generator.
func (c *Component) IsValid() bool {
	return c.gen.IsValid()
}

// Data returns the series of instance index. Seeded generators return
// data[index] (nil when out of range); non-seeded generators return their
// single shared series for every index. Callers must not mutate the result.
func (c *Component) Data(index int) []float64 {
	if c.gen.SeedRequired() {
		if index < 0 || index >= len(c.data) {
			return nil
		}
		return c.data[index]
	}
	if len(c.data) == 0 {
		return nil
	}
	return c.data[0]
}

// AllData returns a copy of every produced series (one per instance when
// seeded). Writes to the result never reach the component.
func (c *Component) AllData() [][]float64 {
	if c.data == nil {
		return nil
	}
	out := make([][]float64, len(c.data))
	for i, row := range c.data {
		out[i] = slices.Clone(row)
	}
	return out
}

// Generate reruns the generator and replaces data wholesale. samples ≤ 0
// means the series' default. Unbound components do nothing and return nil.
// There is no per-instance variant here, so data is never partially stale;
// use Generator().GenerateInstance for a single run without touching data.
func (c *Component) Generate(samples int) [][]float64 {
	if c.series == nil {
		return nil
	}
	if samples <= 0 {
		samples = c.series.Samples()
	}

	data, err := c.gen.Generate(samples)
	if err != nil {
		c.data = nil
		c.log.Warn("generation failed", "kind", string(c.gen.Kind()), "samples", samples, "error", err.Error())
		return nil
	}

	c.data = data
	c.log.Debug("regenerated", "kind", string(c.gen.Kind()), "samples", samples, "instances", c.instances)
	return c.data
}

// Update regenerates this component and then asks the series to regenerate.
func (c *Component) Update() {
	if c.series == nil {
		return
	}
	c.Generate(0)
	c.series.Generate()
}

// Copy returns an independent component bound to series: same identity,
// instance count and visibility, with a cloned generator.
func (c *Component) Copy(series Series) *Component {
	return New(series, c.instances, c.gen.Copy(),
		WithID(c.id),
		WithName(c.name),
		WithSeedSource(c.seedFn),
		WithLogger(c.root),
		WithVisible(c.visible),
	)
}
