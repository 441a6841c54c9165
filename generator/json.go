// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// json.go — {kind, seeds, options} round trip.
//
// Decoding rebuilds the kind's table, replaces options by name with the
// decoded ones (bounds and validators included) and re-attaches ownership.
// Foreign option names fail with ErrUnknownOption.

package generator

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/tsgen/option"
)

type wireGenerator struct {
	Kind    Kind             `json:"kind"`
	Seeds   []int64          `json:"seeds"`
	Options []*option.Option `json:"options"`
}

// MarshalJSON implements json.Marshaler.
func (g *Generator) MarshalJSON() ([]byte, error) {
	seeds := g.seeds
	if seeds == nil {
		seeds = []int64{}
	}
	return json.Marshal(wireGenerator{Kind: g.kind, Seeds: seeds, Options: g.opts})
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Generator) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*g = *decoded
	// Options still point at the temporary; rebind them to g.
	for _, o := range g.opts {
		o.SetOwner(g)
	}
	return nil
}

// Decode builds a Generator from its JSON form.
func Decode(data []byte) (*Generator, error) {
	var w wireGenerator
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("generator: decode: %w", err)
	}

	g, err := New(w.Kind, WithSeeds(w.Seeds...))
	if err != nil {
		return nil, fmt.Errorf("generator: decode: %w", err)
	}

	for _, o := range w.Options {
		if o == nil {
			continue
		}
		idx := g.index(o.Name)
		if idx < 0 {
			return nil, fmt.Errorf("generator: decode: %q: %w", o.Name, ErrUnknownOption)
		}
		o.SetOwner(g)
		g.opts[idx] = o
	}

	return g, nil
}

func (g *Generator) index(name string) int {
	for i, o := range g.opts {
		if o.Name == name {
			return i
		}
	}
	return -1
}
