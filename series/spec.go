// SPDX-License-Identifier: MIT
// Package: tsgen/series
//
// spec.go — declarative YAML description of a series.
//
// Example:
//
//	name: demo
//	samples: 64
//	components:
//	  - kind: normal
//	    instances: 3
//	    seeds: [1, 2, 3]
//	    options: {mean: 0, sigma: 0.5}
//	  - kind: linear
//	    name: trend
//	    options: {slope: 0.1}

package series

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsgen/generator"
)

// Spec describes a series.
type Spec struct {
	Name       string          `yaml:"name"`
	Samples    int             `yaml:"samples,omitempty"`
	Components []ComponentSpec `yaml:"components"`
}

// ComponentSpec describes one component. An empty Kind takes the default
// kind; Instances defaults to the number of seeds, or the default count.
type ComponentSpec struct {
	Kind      string             `yaml:"kind"`
	Name      string             `yaml:"name,omitempty"`
	Instances int                `yaml:"instances,omitempty"`
	Seeds     []int64            `yaml:"seeds,omitempty"`
	Hidden    bool               `yaml:"hidden,omitempty"`
	Options   map[string]float64 `yaml:"options,omitempty"`
}

// ParseSpec decodes YAML strictly: unknown fields are errors.
func ParseSpec(data []byte) (Spec, error) {
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return Spec{}, fmt.Errorf("ParseSpec: %w: %w", ErrInvalidSpec, err)
	}
	return spec, nil
}

// Defaults fills what a Spec leaves out. Zero fields fall back to
// DefaultSamples, generator.DefaultKind and 1.
type Defaults struct {
	Samples   int
	Kind      generator.Kind
	Instances int
}

// Build turns spec into a generated Series.
func Build(spec Spec, d Defaults, opts ...Option) (*Series, error) {
	if d.Kind == "" {
		d.Kind = generator.DefaultKind
	}
	d.Instances = max(1, d.Instances)

	samples := spec.Samples
	if samples < 1 {
		samples = d.Samples
	}
	s := New(spec.Name, samples, opts...)

	for i, cs := range spec.Components {
		if cs.Kind == "" {
			cs.Kind = string(d.Kind)
		}
		gen, err := buildGenerator(cs, s.seedFn)
		if err != nil {
			return nil, fmt.Errorf("Build: component %d: %w: %w", i, ErrInvalidSpec, err)
		}

		instances := cs.Instances
		if instances < 1 {
			instances = len(cs.Seeds)
		}
		if instances < 1 {
			instances = d.Instances
		}

		c := s.Add(gen, instances)
		if cs.Name != "" {
			c.SetName(cs.Name)
		}
		if cs.Hidden {
			c.SetVisible(false)
		}
	}
	s.Generate()

	return s, nil
}

func buildGenerator(cs ComponentSpec, seedFn func() int64) (*generator.Generator, error) {
	kind, err := generator.ParseKind(cs.Kind)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cs.Options))
	for name := range cs.Options {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := make([]generator.Option, 0, len(names)+2)
	opts = append(opts, generator.WithSeedSource(seedFn))
	if len(cs.Seeds) > 0 {
		opts = append(opts, generator.WithSeeds(cs.Seeds...))
	}
	for _, name := range names {
		opts = append(opts, generator.WithValue(name, cs.Options[name]))
	}

	return generator.New(kind, opts...)
}
