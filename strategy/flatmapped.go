package strategy

import (
	"fmt"

	"github.com/degustaf/hypothesis/entropy"
	"github.com/degustaf/hypothesis/reflection"
)

// FlatMapped draws x from its inner strategy and then draws from the
// strategy expand(x).
type FlatMapped[T, U any] struct {
	inner  Strategy[T]
	expand func(T) Strategy[U]
	desc   lazyString
}

// FlatMap returns a strategy that draws x from s, then a value from expand(x).
// Both draws share the same Source. Panics on a nil s or expand.
func FlatMap[T, U any](s Strategy[T], expand func(T) Strategy[U]) Strategy[U] {
	if s == nil || expand == nil {
		panic("strategy: FlatMap(nil)")
	}
	return &FlatMapped[T, U]{inner: s, expand: expand}
}

// Generate draws x, expands it and draws from the result. An expansion that
// returns nil fails with ErrInvalidOperand.
func (m *FlatMapped[T, U]) Generate(src entropy.Source) (U, error) {
	var zero U
	x, err := entropy.Draw[T](src, m.inner)
	if err != nil {
		return zero, err
	}
	next := m.expand(x)
	if next == nil {
		return zero, fmt.Errorf("%s: expand(%s) returned nil: %w", m, reflection.Describe(x), ErrInvalidOperand)
	}
	return entropy.Draw[U](src, next)
}

// String renders as "<inner>.flatmap(<expand>)"; computed once.
func (m *FlatMapped[T, U]) String() string {
	return m.desc.get(func() string {
		return fmt.Sprintf("%s.flatmap(%s)", m.inner, reflection.Describe(m.expand))
	})
}
