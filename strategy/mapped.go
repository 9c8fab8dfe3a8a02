package strategy

import (
	"fmt"

	"github.com/degustaf/hypothesis/entropy"
	"github.com/degustaf/hypothesis/reflection"
)

// Mapped applies a pure function to every value of its inner strategy.
// It consumes exactly the entropy the inner strategy consumes.
type Mapped[T, U any] struct {
	inner Strategy[T]
	f     func(T) U
	desc  lazyString
}

// Map returns a strategy producing f(v) for each v drawn from s.
// f must not draw from any Source. Panics on a nil s or f.
func Map[T, U any](s Strategy[T], f func(T) U) Strategy[U] {
	if s == nil || f == nil {
		panic("strategy: Map(nil)")
	}
	return &Mapped[T, U]{inner: s, f: f}
}

// Generate draws from the inner strategy and transforms the result.
func (m *Mapped[T, U]) Generate(src entropy.Source) (U, error) {
	v, err := entropy.Draw[T](src, m.inner)
	if err != nil {
		var zero U
		return zero, err
	}
	return m.f(v), nil
}

// String renders as "<inner>.map(<f>)"; computed once.
func (m *Mapped[T, U]) String() string {
	return m.desc.get(func() string {
		return fmt.Sprintf("%s.map(%s)", m.inner, reflection.Describe(m.f))
	})
}
