// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// options.go — functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)) and applied in order.
//   • Option constructors PANIC on meaningless inputs (nil functions);
//     New itself returns errors and never panics.

package generator

// Option customizes New.
type Option func(*config)

// valueOverride is one WithValue entry; kept ordered so later wins.
type valueOverride struct {
	name  string
	value float64
}

// config aggregates New's knobs.
type config struct {
	seeds    []int64
	hasSeeds bool
	seedFn   func() int64
	values   []valueOverride
}

func newConfig(opts ...Option) config {
	cfg := config{seedFn: DrawSeed}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeeds sets the initial seeds, one per instance. Ignored by
// non-seeded kinds. An empty list means "draw one seed".
func WithSeeds(seeds ...int64) Option {
	return func(c *config) {
		c.seeds = append([]int64(nil), seeds...)
		c.hasSeeds = len(seeds) > 0
	}
}

// WithSeedSource replaces DrawSeed for seeds New has to draw itself.
// Panics on nil.
func WithSeedSource(fn func() int64) Option {
	if fn == nil {
		panic("generator: WithSeedSource(nil)")
	}
	return func(c *config) {
		c.seedFn = fn
	}
}

// WithValue overrides the initial value of the named option. New fails with
// ErrUnknownOption when the kind has no such option.
func WithValue(name string, v float64) Option {
	return func(c *config) {
		c.values = append(c.values, valueOverride{name: name, value: v})
	}
}
