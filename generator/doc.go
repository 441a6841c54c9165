// Package generator provides the parameter sets that produce synthetic
// time series from a table of constrained options and, for stochastic kinds,
// one seed per parallel instance.
//
// A Generator is built for one Kind. The kind fixes the option table
// (names, defaults, bounds, validators), whether sampling is seed-sensitive,
// and the sampling model:
//
//   - linear  — intercept + slope·i                           (deterministic)
//   - sine    — offset + A·sin(2π·f·i + phase)                (deterministic)
//   - pulse   — rectangular/triangular pulse, trend and noise (seeded)
//   - chirp   — linear frequency sweep f0→f1, trend and noise (seeded)
//   - gbm     — close prices of a geometric Brownian motion   (seeded)
//   - uniform — U[xMin, xMax), with the xMin < xMax pair      (seeded)
//   - normal  — N(mean, sigma²)                               (seeded)
//
// Determinism: for a fixed kind, option values and seed the produced series
// is identical across runs. Each seeded instance draws from its own
// rand.New(rand.NewSource(seed)) stream.
//
// Options are owned by their Generator, which implements option.Lookup so
// cross-field constraints (xMin/xMax) resolve against sibling values.
//
// Errors are package sentinels (ErrUnknownKind, ErrUnknownOption,
// ErrInvalidOptions, ErrBadSize, ErrIndexOutOfRange) wrapped with %w.
package generator
