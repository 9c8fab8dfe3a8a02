// SPDX-License-Identifier: MIT
// Package: hypothesis/entropy
//
// options.go — functional options for Data.
//
// Contract:
//   • Options are functional (type Option func(*Data)).
//   • Option constructors panic on meaningless inputs; draws never panic.
//   • Determinism is explicit: randomness comes only from WithSeed/WithRand.

package entropy

import "math/rand"

// DefaultMaxSize is the byte budget of a Data when WithMaxSize is not given.
const DefaultMaxSize = 8 * 1024

// Option customizes a Data before its first draw.
type Option func(*Data)

// WithPrefix makes the Data replay the given bytes before consulting its RNG.
// The slice is copied.
func WithPrefix(prefix []byte) Option {
	cp := append([]byte(nil), prefix...)
	return func(d *Data) {
		d.prefix = cp
	}
}

// WithRand sets the RNG used once the prefix is exhausted.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("entropy: WithRand(nil)")
	}
	return func(d *Data) {
		d.rng = r
	}
}

// WithSeed creates a fresh deterministic RNG from seed (0 ⇒ DefaultSeed).
func WithSeed(seed int64) Option {
	return func(d *Data) {
		d.rng = NewRand(seed)
	}
}

// WithMaxSize bounds how many bytes the attempt may consume.
// Panics if n < 0.
func WithMaxSize(n int) Option {
	if n < 0 {
		panic("entropy: WithMaxSize(n<0)")
	}
	return func(d *Data) {
		d.maxSize = n
	}
}

// WithMaxDepth bounds draw nesting. Zero means unbounded.
// Panics if n < 0.
func WithMaxDepth(n int) Option {
	if n < 0 {
		panic("entropy: WithMaxDepth(n<0)")
	}
	return func(d *Data) {
		d.maxDepth = n
	}
}
