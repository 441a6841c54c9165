// Package tsgen is a synthetic time-series toolkit: parameterised
// generators are composed into multi-instance series that can be described,
// validated, serialized and regenerated deterministically from seeds.
//
// Everything is organized under four library packages and one command:
//
//	option/     — a named numeric parameter with bounds, step and validators
//	generator/  — the kind registry (linear, sine, pulse, chirp, gbm, uniform, normal)
//	component/  — one generator run as N seeded instances with its own data
//	series/     — an ordered set of components, their composite and YAML specs
//	cmd/tsgen   — CLI: kinds, describe, generate, validate
//
// Ambient packages: logging/ (structured JSON logs on log/slog) and config/
// (viper-backed defaults, file and TSGEN_* environment overrides).
//
// Quick example:
//
//	s := series.New("demo", 64)
//	noise, _ := generator.New(generator.KindNormal, generator.WithSeeds(1, 2, 3))
//	trend, _ := generator.New(generator.KindLinear, generator.WithValue("slope", 0.1))
//	s.Add(noise, 3)
//	s.Add(trend, 1)
//	rows := s.Data() // 3 rows of 64 samples: noise instance i + trend
//
//	go get github.com/katalvlaran/tsgen
package tsgen
