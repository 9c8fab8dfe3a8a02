package strategy

import (
	"fmt"

	"github.com/degustaf/hypothesis/entropy"
)

// Lists returns a strategy producing slices of elem values whose length is
// uniform in [minSize, maxSize]. The length is drawn first, then the elements
// in order. Invalid sizes are reported by Generate as ErrInvalidRange.
// Panics on a nil elem.
func Lists[T any](elem Strategy[T], minSize, maxSize int) Strategy[[]T] {
	if elem == nil {
		panic("strategy: Lists(nil)")
	}
	return &lists[T]{elem: elem, minSize: minSize, maxSize: maxSize}
}

type lists[T any] struct {
	elem             Strategy[T]
	minSize, maxSize int
	desc             lazyString
}

func (s *lists[T]) Generate(src entropy.Source) ([]T, error) {
	if s.minSize < 0 || s.maxSize < s.minSize {
		return nil, fmt.Errorf("%s: %w", s, ErrInvalidRange)
	}
	n, err := src.IntegerRange(s.minSize, s.maxSize)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := entropy.Draw[T](src, s.elem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *lists[T]) String() string {
	return s.desc.get(func() string {
		return fmt.Sprintf("lists(%s, %d, %d)", s.elem, s.minSize, s.maxSize)
	})
}
