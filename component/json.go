// SPDX-License-Identifier: MIT
// Package: tsgen/component
//
// json.go — {id, name, instances, generator} round trip. The owning series
// is never serialized; Decode takes it explicitly.

package component

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/tsgen/generator"
)

// ErrMissingGenerator indicates a serialized component without a generator.
var ErrMissingGenerator = errors.New("component: generator is required")

type wireComponent struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Instances int                  `json:"instances"`
	Generator *generator.Generator `json:"generator"`
}

// MarshalJSON implements json.Marshaler.
func (c *Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireComponent{
		ID:        c.id,
		Name:      c.name,
		Instances: c.instances,
		Generator: c.gen,
	})
}

// Decode rebuilds a component bound to series from its JSON form and runs the
// first generation pass. opts may add a seed source or logger; identity
// always comes from the data.
func Decode(series Series, data []byte, opts ...Option) (*Component, error) {
	var w wireComponent
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("component: decode: %w", err)
	}
	if w.Generator == nil {
		return nil, fmt.Errorf("component: decode: %w", ErrMissingGenerator)
	}

	opts = append(opts, WithID(w.ID), WithName(w.Name))
	return New(series, w.Instances, w.Generator, opts...), nil
}
