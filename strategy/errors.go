// SPDX-License-Identifier: MIT
// Package: hypothesis/strategy
//
// errors.go — sentinel errors for the strategy package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w where the error is raised.
//   • Abandonment is NOT one of these: it is control.ErrUnsatisfied or
//     entropy.ErrOverrun and belongs to the attempt loop.

package strategy

import "errors"

// ErrInvalidOperand indicates a union (or flatmap expansion) with a value
// that is not a Strategy of the right element type. Detected when combining,
// not when drawing.
var ErrInvalidOperand = errors.New("strategy: operand is not a strategy")

// ErrEmptyUnion indicates a union over zero strategies.
var ErrEmptyUnion = errors.New("strategy: cannot join an empty list of strategies")

// ErrUnionArity indicates a direct NewUnion call with fewer than two
// constituents; OneOf is the constructor that collapses such cases.
var ErrUnionArity = errors.New("strategy: need at least 2 strategies to choose amongst")

// ErrUnimplemented indicates a strategy with no generate function. It is a
// defect in strategy authoring and is expected to reach the caller unhandled.
var ErrUnimplemented = errors.New("strategy: generate not implemented")

// ErrNoExamples indicates that Example found nothing within its budget.
var ErrNoExamples = errors.New("strategy: no examples")

// ErrInvalidRange indicates primitive bounds that describe no values
// (low > high, negative sizes, non-finite float bounds, ...).
var ErrInvalidRange = errors.New("strategy: invalid range")
