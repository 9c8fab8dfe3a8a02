// Package hypothesis is the composable data-generation core of a
// property-based testing engine: strategies that describe value spaces,
// combinators that union, transform, filter and bind them, and a draw
// protocol that threads one order-sensitive entropy source through the whole
// recursive structure.
//
// Under the hood, everything is organized in small subpackages:
//
//	entropy/    — per-attempt Source, byte-buffer Data, IntegerRange, seeded RNGs
//	control/    — abandonment signals (Assume, Reject, IsAbandoned)
//	reflection/ — deterministic descriptions of callables and values
//	strategy/   — Strategy[T], Map, Filter, FlatMap, Or, OneOf, primitives, Example
//	search/     — bounded Find loop: iterations, mutations, shrinking, stats
//	settings/   — budgets and RNG via options, HYPOTHESIS_* env, YAML profiles
//
// Quick example:
//
//	coin, _ := strategy.OneOf(strategy.Just("heads"), strategy.Just("tails"))
//	v, err := strategy.Example(coin, settings.WithSeed(42))
//
// A Filter whose rejected draws consume no entropy abandons its attempt
// instead of spinning; the attempt loop in search.Find retries with fresh
// entropy.
package hypothesis
