// SPDX-License-Identifier: MIT
// Package: tsgen/option
//
// errors.go — sentinel errors for the option package.
//
// Error policy:
//   • Only construction and decoding return errors; constraint checks are
//     boolean and never fail.
//   • Callers branch with errors.Is; messages carry context via %w.

package option

import "errors"

// ErrEmptyName indicates an option was constructed without a name.
var ErrEmptyName = errors.New("option: name is required")

// ErrUnknownValidator indicates a validator id (or enum value) outside the
// fixed catalog. Unknown ids are rejected when attached, never evaluated.
var ErrUnknownValidator = errors.New("option: unknown validator")
