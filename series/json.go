// SPDX-License-Identifier: MIT
// Package: tsgen/series
//
// json.go — {id, name, samples, components} round trip.

package series

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/tsgen/component"
)

type wireSeries struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Samples    int                    `json:"samples"`
	Components []*component.Component `json:"components"`
}

type wireSeriesIn struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Samples    int               `json:"samples"`
	Components []json.RawMessage `json:"components"`
}

// MarshalJSON implements json.Marshaler.
func (s *Series) MarshalJSON() ([]byte, error) {
	comps := s.components
	if comps == nil {
		comps = []*component.Component{}
	}
	return json.Marshal(wireSeries{ID: s.id, Name: s.name, Samples: s.samples, Components: comps})
}

// Decode rebuilds a series and its components from JSON. Per-kind name
// counters resume after the highest "<Kind title> <n>" among the decoded
// components.
func Decode(data []byte, opts ...Option) (*Series, error) {
	var w wireSeriesIn
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("series: decode: %w", err)
	}

	s := New(w.Name, w.Samples, opts...)
	if w.ID != "" {
		s.id = w.ID
	}

	for i, raw := range w.Components {
		c, err := component.Decode(s, raw,
			component.WithSeedSource(s.seedFn),
			component.WithLogger(s.log.WithSeries(s.id)),
		)
		if err != nil {
			return nil, fmt.Errorf("series: decode: component %d: %w", i, err)
		}
		s.noteName(c.Generator(), c.Name())
		s.attach(c)
	}
	s.Generate()

	return s, nil
}
