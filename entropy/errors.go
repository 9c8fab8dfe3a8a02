// SPDX-License-Identifier: MIT
// Package: hypothesis/entropy
//
// errors.go — sentinel errors for the entropy package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site, never in the definition.

package entropy

import "errors"

// ErrOverrun indicates that the attempt tried to consume more entropy than its
// budget allows. The Data is frozen afterwards. This is an abandonment signal,
// not a hard failure: the owning attempt loop should discard the attempt.
var ErrOverrun = errors.New("entropy: data overrun")

// ErrFrozen indicates a draw against a Data that has already been frozen
// (after an overrun or an explicit Freeze).
var ErrFrozen = errors.New("entropy: draw from frozen data")

// ErrInvalidRange indicates IntegerRange(low, high) with low > high, or a
// negative byte count passed to DrawBytes.
var ErrInvalidRange = errors.New("entropy: invalid range")
