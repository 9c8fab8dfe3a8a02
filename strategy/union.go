package strategy

import (
	"fmt"
	"strings"

	"github.com/degustaf/hypothesis/entropy"
)

// Union draws from one of two or more constituents, chosen uniformly per
// draw. Build it with OneOf (or NewUnion when a *Union is required); the
// zero value has no constituents and fails every Generate with ErrUnionArity.
type Union[T any] struct {
	strategies []Strategy[T]
	desc       lazyString
}

// NewUnion builds a Union over xs. It fails with ErrUnionArity when
// len(xs) < 2 and with ErrInvalidOperand when a constituent is nil.
// The slice is copied.
func NewUnion[T any](xs ...Strategy[T]) (*Union[T], error) {
	if len(xs) < 2 {
		return nil, fmt.Errorf("NewUnion: got %d: %w", len(xs), ErrUnionArity)
	}
	for i, x := range xs {
		if x == nil {
			return nil, fmt.Errorf("NewUnion: strategy %d is nil: %w", i, ErrInvalidOperand)
		}
	}
	return &Union[T]{strategies: append([]Strategy[T](nil), xs...)}, nil
}

// OneOf joins xs into a single strategy.
//
//   - no strategies: ErrEmptyUnion;
//   - one strategy:  that strategy itself, unwrapped;
//   - otherwise:     a *Union over all of them, in order.
func OneOf[T any](xs ...Strategy[T]) (Strategy[T], error) {
	switch len(xs) {
	case 0:
		return nil, fmt.Errorf("OneOf: %w", ErrEmptyUnion)
	case 1:
		if xs[0] == nil {
			return nil, fmt.Errorf("OneOf: strategy 0 is nil: %w", ErrInvalidOperand)
		}
		return xs[0], nil
	}

	u, err := NewUnion(xs...)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Generate picks a constituent index uniformly and draws from it.
func (u *Union[T]) Generate(src entropy.Source) (T, error) {
	if len(u.strategies) < 2 {
		var zero T
		return zero, fmt.Errorf("Union.Generate: %d strategies: %w", len(u.strategies), ErrUnionArity)
	}
	i, err := src.IntegerRange(0, len(u.strategies)-1)
	if err != nil {
		var zero T
		return zero, err
	}
	return entropy.Draw[T](src, u.strategies[i])
}

// Len returns the number of constituents.
func (u *Union[T]) Len() int { return len(u.strategies) }

// Strategies returns a copy of the constituents in order.
func (u *Union[T]) Strategies() []Strategy[T] {
	return append([]Strategy[T](nil), u.strategies...)
}

// String joins the constituents' descriptions with " | ".
func (u *Union[T]) String() string {
	return u.desc.get(func() string {
		parts := make([]string, len(u.strategies))
		for i, s := range u.strategies {
			parts[i] = s.String()
		}
		return strings.Join(parts, " | ")
	})
}
