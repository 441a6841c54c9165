// SPDX-License-Identifier: MIT
// Package: tsgen/series
//
// errors.go — sentinel errors for the series package.

package series

import "errors"

// ErrUnknownComponent indicates a component ID the series does not hold.
var ErrUnknownComponent = errors.New("series: unknown component")

// ErrInvalidSamples indicates a sample count below 1.
var ErrInvalidSamples = errors.New("series: samples must be ≥ 1")

// ErrInvalidSpec indicates a YAML spec that cannot be built.
var ErrInvalidSpec = errors.New("series: invalid spec")
