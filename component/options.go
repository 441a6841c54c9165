// SPDX-License-Identifier: MIT
// Package: tsgen/component
//
// options.go — functional options for New and Decode.

package component

import (
	"github.com/katalvlaran/tsgen/generator"
	"github.com/katalvlaran/tsgen/logging"
)

// Option customizes a Component at construction.
type Option func(*settings)

type settings struct {
	id      *string
	name    *string
	seedFn  func() int64
	logger  *logging.Logger
	visible bool
}

func newSettings(opts ...Option) settings {
	s := settings{seedFn: generator.DrawSeed, logger: logging.NopLogger(), visible: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithID fixes the component ID instead of asking the series for one.
func WithID(id string) Option {
	return func(s *settings) { s.id = &id }
}

// WithName fixes the display name instead of asking the series for one.
func WithName(name string) Option {
	return func(s *settings) { s.name = &name }
}

// WithSeedSource replaces generator.DrawSeed for new seeds. Panics on nil.
func WithSeedSource(fn func() int64) Option {
	if fn == nil {
		panic("component: WithSeedSource(nil)")
	}
	return func(s *settings) { s.seedFn = fn }
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("component: WithLogger(nil)")
	}
	return func(s *settings) { s.logger = l }
}

// WithVisible sets the initial display flag (default true).
func WithVisible(v bool) Option {
	return func(s *settings) { s.visible = v }
}
