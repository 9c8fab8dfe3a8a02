package strategy

import (
	"fmt"

	"github.com/degustaf/hypothesis/entropy"
	"github.com/degustaf/hypothesis/reflection"
)

// Just returns a strategy that always produces v and consumes no entropy.
func Just[T any](v T) Strategy[T] {
	return &just[T]{value: v}
}

type just[T any] struct {
	value T
}

func (j *just[T]) Generate(entropy.Source) (T, error) { return j.value, nil }

func (j *just[T]) String() string {
	return fmt.Sprintf("just(%s)", reflection.Describe(j.value))
}

// Integers returns a strategy producing ints uniformly in [low, high].
// low > high is reported by Generate as ErrInvalidRange.
func Integers(low, high int) Strategy[int] {
	return &integers{low: low, high: high}
}

type integers struct {
	low, high int
}

func (s *integers) Generate(src entropy.Source) (int, error) {
	if s.low > s.high {
		return 0, fmt.Errorf("%s: %w", s, ErrInvalidRange)
	}
	return src.IntegerRange(s.low, s.high)
}

func (s *integers) String() string {
	return fmt.Sprintf("integers(%d, %d)", s.low, s.high)
}

// Booleans returns a strategy producing true or false from one byte.
func Booleans() Strategy[bool] {
	return booleans{}
}

type booleans struct{}

func (booleans) Generate(src entropy.Source) (bool, error) {
	b, err := src.DrawBytes(1)
	if err != nil {
		return false, err
	}
	return b[0]&1 == 1, nil
}

func (booleans) String() string { return "booleans()" }

// SampledFrom returns a strategy choosing uniformly among xs.
// An empty xs is reported by Generate as ErrEmptyUnion. The slice is copied.
func SampledFrom[T any](xs ...T) Strategy[T] {
	return &sampled[T]{elements: append([]T(nil), xs...)}
}

type sampled[T any] struct {
	elements []T
	desc     lazyString
}

func (s *sampled[T]) Generate(src entropy.Source) (T, error) {
	var zero T
	if len(s.elements) == 0 {
		return zero, fmt.Errorf("%s: %w", s, ErrEmptyUnion)
	}
	i, err := src.IntegerRange(0, len(s.elements)-1)
	if err != nil {
		return zero, err
	}
	return s.elements[i], nil
}

func (s *sampled[T]) String() string {
	return s.desc.get(func() string {
		return fmt.Sprintf("sampled_from(%s)", reflection.Describe(s.elements))
	})
}
