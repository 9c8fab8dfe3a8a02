// SPDX-License-Identifier: MIT
// Package: hypothesis/settings
//
// options.go — functional options for Settings.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Runtime sources (env, YAML) report ErrBadSettings instead.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package settings

import (
	"log/slog"
	"math/rand"
)

// Option customizes a Settings value.
type Option func(*Settings)

// WithMaxIterations sets the attempt budget. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("settings: WithMaxIterations(n<1)")
	}
	return func(s *Settings) {
		s.MaxIterations = n
	}
}

// WithMaxMutations sets the per-rejection mutation budget. Panics if n < 0.
func WithMaxMutations(n int) Option {
	if n < 0 {
		panic("settings: WithMaxMutations(n<0)")
	}
	return func(s *Settings) {
		s.MaxMutations = n
	}
}

// WithMaxShrinks sets the shrink budget; 0 disables shrinking. Panics if n < 0.
func WithMaxShrinks(n int) Option {
	if n < 0 {
		panic("settings: WithMaxShrinks(n<0)")
	}
	return func(s *Settings) {
		s.MaxShrinks = n
	}
}

// WithBufferSize sets the per-attempt entropy budget in bytes. Panics if n < 1.
func WithBufferSize(n int) Option {
	if n < 1 {
		panic("settings: WithBufferSize(n<1)")
	}
	return func(s *Settings) {
		s.BufferSize = n
	}
}

// WithSeed seeds the run's RNG and drops any RNG set by WithRand.
func WithSeed(seed int64) Option {
	return func(s *Settings) {
		s.Seed = seed
		s.rng = nil
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("settings: WithRand(nil)")
	}
	return func(s *Settings) {
		s.rng = r
	}
}

// WithLogger routes search diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("settings: WithLogger(nil)")
	}
	return func(s *Settings) {
		s.logger = l
	}
}

// WithProfile copies the numeric knobs of p, keeping the RNG and logger.
func WithProfile(p Settings) Option {
	return func(s *Settings) {
		s.MaxIterations = p.MaxIterations
		s.MaxMutations = p.MaxMutations
		s.MaxShrinks = p.MaxShrinks
		s.BufferSize = p.BufferSize
		s.Seed = p.Seed
	}
}
