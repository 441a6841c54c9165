// SPDX-License-Identifier: MIT
// Package: tsgen/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the failing method.
//   • Sampling never panics; invalid input surfaces as an error.

package generator

import "errors"

// ErrUnknownKind indicates a kind name outside the registry.
var ErrUnknownKind = errors.New("generator: unknown kind")

// ErrUnknownOption indicates an option name the generator's kind does not define.
var ErrUnknownOption = errors.New("generator: unknown option")

// ErrInvalidOptions indicates at least one option value fails its constraints.
var ErrInvalidOptions = errors.New("generator: invalid option values")

// ErrBadSize indicates a sample count below 1.
var ErrBadSize = errors.New("generator: invalid sample count")

// ErrIndexOutOfRange indicates an instance index with no seed.
var ErrIndexOutOfRange = errors.New("generator: instance index out of range")
