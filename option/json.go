// SPDX-License-Identifier: MIT
// Package: tsgen/option
//
// json.go — exact JSON round trip of {name, value, title, min, max, step, validators}.
//
// Non-finite numbers are not representable in JSON, so they travel as the
// strings "Infinity", "-Infinity" and "NaN". Decoding goes through New, so
// absent fields take the usual defaults and unknown validator ids fail with
// ErrUnknownValidator. A decoded Option never has an owner attached.

package option

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const (
	jsonPosInf = "Infinity"
	jsonNegInf = "-Infinity"
	jsonNaN    = "NaN"
)

// Number is a float64 whose JSON form tolerates ±Inf and NaN.
type Number float64

// MarshalJSON encodes finite values as JSON numbers and the rest as strings.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return json.Marshal(jsonNaN)
	case math.IsInf(f, 1):
		return json.Marshal(jsonPosInf)
	case math.IsInf(f, -1):
		return json.Marshal(jsonNegInf)
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts a JSON number or one of the non-finite strings.
func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("option: number: %w", err)
	}
	switch s {
	case jsonPosInf:
		*n = Number(math.Inf(1))
	case jsonNegInf:
		*n = Number(math.Inf(-1))
	case jsonNaN:
		*n = Number(math.NaN())
	default:
		return fmt.Errorf("option: number: unexpected %q", s)
	}
	return nil
}

// wireOption is the serialized shape. Pointer fields record presence.
type wireOption struct {
	Name       string      `json:"name"`
	Value      *Number     `json:"value,omitempty"`
	Title      *string     `json:"title,omitempty"`
	Min        *Number     `json:"min,omitempty"`
	Max        *Number     `json:"max,omitempty"`
	Step       *Number     `json:"step,omitempty"`
	Validators []Validator `json:"validators"`
}

// MarshalJSON implements json.Marshaler.
func (o *Option) MarshalJSON() ([]byte, error) {
	value, lo, hi, step := Number(o.Value), Number(o.Min), Number(o.Max), Number(o.Step)
	title := o.Title
	vs := o.Validators
	if vs == nil {
		vs = []Validator{}
	}

	return json.Marshal(wireOption{
		Name:       o.Name,
		Value:      &value,
		Title:      &title,
		Min:        &lo,
		Max:        &hi,
		Step:       &step,
		Validators: vs,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Any previously attached owner
// is dropped; callers reattach it.
func (o *Option) UnmarshalJSON(data []byte) error {
	var w wireOption
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("option: decode: %w", err)
	}

	cfg := Config{Title: w.Title, Validators: w.Validators}
	cfg.Min = numberPtr(w.Min)
	cfg.Max = numberPtr(w.Max)
	cfg.Step = numberPtr(w.Step)

	var value float64
	if w.Value != nil {
		value = float64(*w.Value)
	}

	decoded, err := New(w.Name, value, cfg, nil)
	if err != nil {
		return fmt.Errorf("option: decode: %w", err)
	}
	*o = *decoded

	return nil
}

// Decode is the functional form of UnmarshalJSON.
func Decode(data []byte) (*Option, error) {
	o := new(Option)
	if err := o.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return o, nil
}

func numberPtr(n *Number) *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}
