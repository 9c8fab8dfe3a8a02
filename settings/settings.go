// SPDX-License-Identifier: MIT
// Package: hypothesis/settings
//
// settings.go — the resolved configuration of a search run.
//
// Design:
//   • Settings is a plain value; options resolve into it in order (last wins).
//   • Defaults are deterministic: seed 0 maps to entropy.DefaultSeed.
//   • Exported numeric knobs may also come from the environment (env.go) or
//     from named YAML profiles (profiles.go). The RNG and logger are code-only.
//
// Deterministic defaults:
//   • MaxIterations = 1000
//   • MaxMutations  = 10
//   • MaxShrinks    = 500
//   • BufferSize    = entropy.DefaultMaxSize
//   • Seed          = 0 (⇒ entropy.DefaultSeed)
//   • logger        = discard

// Package settings configures the bounded search that drives strategies:
// iteration, mutation and shrink budgets, per-attempt entropy size, the random
// source and an optional structured logger.
package settings

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/degustaf/hypothesis/entropy"
)

// Default budget values (named, no magic numbers).
const (
	DefaultMaxIterations = 1000
	DefaultMaxMutations  = 10
	DefaultMaxShrinks    = 500
	DefaultBufferSize    = entropy.DefaultMaxSize
)

// Settings holds every knob consumed by search.Find.
type Settings struct {
	// MaxIterations bounds the number of generation attempts, valid or not.
	MaxIterations int `env:"MAX_ITERATIONS" yaml:"max_iterations"`
	// MaxMutations bounds the mutated replays derived from one rejected value.
	MaxMutations int `env:"MAX_MUTATIONS" yaml:"max_mutations"`
	// MaxShrinks bounds the successful reductions applied to a found value.
	MaxShrinks int `env:"MAX_SHRINKS" yaml:"max_shrinks"`
	// BufferSize is the entropy budget, in bytes, of one attempt.
	BufferSize int `env:"BUFFER_SIZE" yaml:"buffer_size"`
	// Seed seeds the run's RNG when no explicit RNG is given.
	Seed int64 `env:"SEED" yaml:"seed"`

	rng    *rand.Rand
	logger *slog.Logger
}

// Default returns the deterministic defaults.
func Default() Settings {
	return Settings{
		MaxIterations: DefaultMaxIterations,
		MaxMutations:  DefaultMaxMutations,
		MaxShrinks:    DefaultMaxShrinks,
		BufferSize:    DefaultBufferSize,
	}
}

// New resolves opts on top of Default.
// Complexity: O(len(opts)).
func New(opts ...Option) Settings {
	return Default().With(opts...)
}

// With returns a copy of s with opts applied in order.
func (s Settings) With(opts ...Option) Settings {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Rand returns the configured RNG, or a fresh one seeded from Seed.
// Each call without an explicit RNG starts a new, identical stream.
func (s Settings) Rand() *rand.Rand {
	if s.rng != nil {
		return s.rng
	}
	return entropy.NewRand(s.Seed)
}

// Logger returns the configured logger, or one that discards everything.
func (s Settings) Logger() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Validate checks the numeric knobs.
func (s Settings) Validate() error {
	switch {
	case s.MaxIterations < 1:
		return fmt.Errorf("max_iterations=%d < 1: %w", s.MaxIterations, ErrBadSettings)
	case s.MaxMutations < 0:
		return fmt.Errorf("max_mutations=%d < 0: %w", s.MaxMutations, ErrBadSettings)
	case s.MaxShrinks < 0:
		return fmt.Errorf("max_shrinks=%d < 0: %w", s.MaxShrinks, ErrBadSettings)
	case s.BufferSize < 1:
		return fmt.Errorf("buffer_size=%d < 1: %w", s.BufferSize, ErrBadSettings)
	}
	return nil
}
