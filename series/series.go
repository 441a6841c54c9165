// SPDX-License-Identifier: MIT
// Package: tsgen/series
//
// series.go — the Series container.
//
// Contract:
//   • Series implements component.Series; components call back into it for
//     identity, naming, sample count, renames and composite regeneration.
//   • The composite is recomputed wholesale; it is never partially stale.

package series

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/tsgen/component"
	"github.com/katalvlaran/tsgen/generator"
	"github.com/katalvlaran/tsgen/logging"
)

// DefaultSamples is used when New receives samples < 1.
const DefaultSamples = 100

// Series owns an ordered set of components and their composite.
type Series struct {
	id         string
	name       string
	samples    int
	components []*component.Component
	compositor *Compositor
	counters   map[generator.Kind]int
	data       [][]float64

	seedFn func() int64
	log    *logging.Logger
}

var _ component.Series = (*Series)(nil)

// Option customizes a Series.
type Option func(*Series)

// WithID fixes the series ID instead of minting a UUID.
func WithID(id string) Option {
	return func(s *Series) { s.id = id }
}

// WithLogger attaches a logger, shared with the series' components.
// Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("series: WithLogger(nil)")
	}
	return func(s *Series) { s.log = l }
}

// WithSeedSource sets the seed source handed to components. Panics on nil.
func WithSeedSource(fn func() int64) Option {
	if fn == nil {
		panic("series: WithSeedSource(nil)")
	}
	return func(s *Series) { s.seedFn = fn }
}

// New returns an empty series. samples < 1 falls back to DefaultSamples.
func New(name string, samples int, opts ...Option) *Series {
	if samples < 1 {
		samples = DefaultSamples
	}
	s := &Series{
		id:         uuid.NewString(),
		name:       name,
		samples:    samples,
		compositor: NewCompositor(),
		counters:   make(map[generator.Kind]int),
		seedFn:     generator.DrawSeed,
		log:        logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the series identity.
func (s *Series) ID() string { return s.id }

// Name returns the series display name.
func (s *Series) Name() string { return s.name }

// SetName renames the series.
func (s *Series) SetName(name string) { s.name = name }

// NextID implements component.Series with a random UUID.
func (s *Series) NextID() string { return uuid.NewString() }

// NameFor implements component.Series: "<Kind title> <n>" with n counting
// components of that kind created in this series. Names already held by a
// registered component are skipped.
func (s *Series) NameFor(g *generator.Generator) string {
	for {
		s.counters[g.Kind()]++
		name := fmt.Sprintf("%s %d", g.Title(), s.counters[g.Kind()])
		if !s.compositor.HasName(name) {
			return name
		}
	}
}

// noteName raises the counter of kind to the numeric suffix of a
// "<Kind title> <n>" name, so later NameFor calls continue after it.
func (s *Series) noteName(g *generator.Generator, name string) {
	rest, ok := strings.CutPrefix(name, g.Title()+" ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return
	}
	s.counters[g.Kind()] = max(s.counters[g.Kind()], n)
}

// Samples implements component.Series.
func (s *Series) Samples() int { return s.samples }

// Compositor implements component.Series.
func (s *Series) Compositor() component.Renamer { return s.compositor }

// Registry exposes the naming registry with its full API.
func (s *Series) Registry() *Compositor { return s.compositor }

// SetSamples changes the sample count and regenerates every component.
func (s *Series) SetSamples(n int) error {
	if n < 1 {
		return fmt.Errorf("SetSamples(%d): %w", n, ErrInvalidSamples)
	}
	s.samples = n
	for _, c := range s.components {
		c.Generate(0)
	}
	s.Generate()
	return nil
}

// Add creates a component for gen (nil ⇒ default generator) with the given
// instance count, registers it and regenerates the composite.
func (s *Series) Add(gen *generator.Generator, instances int) *component.Component {
	c := component.New(s, instances, gen,
		component.WithSeedSource(s.seedFn),
		component.WithLogger(s.log.WithSeries(s.id)),
	)
	s.attach(c)
	s.Generate()
	return c
}

func (s *Series) attach(c *component.Component) {
	s.components = append(s.components, c)
	s.compositor.Register(c.ID(), c.Name())
}

// Remove drops the component with id and regenerates the composite.
func (s *Series) Remove(id string) error {
	for i, c := range s.components {
		if c.ID() == id {
			s.components = append(s.components[:i], s.components[i+1:]...)
			s.compositor.Remove(id)
			s.Generate()
			return nil
		}
	}
	return fmt.Errorf("Remove(%q): %w", id, ErrUnknownComponent)
}

// Component returns the component with id.
func (s *Series) Component(id string) (*component.Component, error) {
	for _, c := range s.components {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("Component(%q): %w", id, ErrUnknownComponent)
}

// Components returns the components in insertion order.
func (s *Series) Components() []*component.Component {
	return append([]*component.Component(nil), s.components...)
}

// Valid reports whether every component's generator is valid.
func (s *Series) Valid() bool {
	for _, c := range s.components {
		if !c.IsValid() {
			return false
		}
	}
	return true
}

// Generate implements component.Series: recompute the composite.
func (s *Series) Generate() {
	width := 0
	for _, c := range s.components {
		if c.Visible() && c.Instances() > width {
			width = c.Instances()
		}
	}

	out := make([][]float64, width)
	for i := range out {
		row := make([]float64, s.samples)
		for _, c := range s.components {
			if !c.Visible() {
				continue
			}
			d := c.Data(i)
			for j := 0; j < len(d) && j < len(row); j++ {
				row[j] += d[j]
			}
		}
		out[i] = row
	}

	s.data = out
	s.log.Debug("composite regenerated", "series_id", s.id, "components", len(s.components), "instances", width)
}

// Data returns the composite, one row per instance index.
func (s *Series) Data() [][]float64 { return s.data }

// Copy returns an independent series with the same identity and cloned
// components bound to the copy.
func (s *Series) Copy() *Series {
	cp := &Series{
		id:         s.id,
		name:       s.name,
		samples:    s.samples,
		compositor: s.compositor.copy(),
		counters:   make(map[generator.Kind]int, len(s.counters)),
		seedFn:     s.seedFn,
		log:        s.log,
	}
	for k, v := range s.counters {
		cp.counters[k] = v
	}
	for _, c := range s.components {
		cp.components = append(cp.components, c.Copy(cp))
	}
	cp.Generate()
	return cp
}
