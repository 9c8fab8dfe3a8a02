// Package strategy is the combinator algebra of the generation engine: a
// Strategy[T] knows how to produce a T from an entropy.Source, and strategies
// compose through a handful of package functions that never mutate their
// inputs.
//
// 🚀 Combinators
//
//	Map(s, f)          – transform every value with a pure function
//	Filter(s, pred)    – keep values satisfying pred (rejection sampling)
//	FlatMap(s, expand) – draw x from s, then draw from expand(x)
//	Or(s, other)       – binary union; other must be a Strategy[T]
//	OneOf(xs...)       – n-ary union; collapses the 0- and 1-element cases
//
// Primitives (Just, Integers, Booleans, SampledFrom, Floats, NormalFloats,
// ExponentialFloats, Lists) and Of (a strategy from a generate function)
// supply the leaves.
//
// Draw protocol:
//
//	One entropy.Source is threaded through the whole recursive structure
//	for a single attempt, so consumption is globally ordered. Combinators
//	recurse through entropy.Draw and propagate constituent errors unchanged.
//
// Liveness of Filter:
//
//	Every rejected iteration must advance src.Index(). A rejection that
//	consumed nothing abandons the attempt with control.ErrUnsatisfied
//	instead of retrying in place, so the loop is bounded by the attempt's
//	entropy budget rather than by a retry counter.
//
// Errors (sentinel):
//
//	– ErrInvalidOperand  union/flatmap with something that is not a Strategy[T].
//	– ErrEmptyUnion      OneOf() or SampledFrom() with nothing to choose from.
//	– ErrUnionArity      NewUnion with fewer than two constituents.
//	– ErrUnimplemented   a strategy without a generate function.
//	– ErrNoExamples      Example exhausted its fixed budget.
//	– ErrInvalidRange    primitive bounds that describe no values.
//
// Concurrency:
//
//	Strategies are immutable after construction (their cached descriptions
//	are idempotent), so one value may serve many concurrent attempts, each
//	with its own Source.
package strategy
