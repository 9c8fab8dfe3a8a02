package strategy

import (
	"fmt"

	"github.com/degustaf/hypothesis/control"
	"github.com/degustaf/hypothesis/entropy"
	"github.com/degustaf/hypothesis/reflection"
)

// Filtered keeps only the values of its inner strategy that satisfy a
// predicate, redrawing on rejection.
type Filtered[T any] struct {
	inner Strategy[T]
	pred  func(T) bool
	desc  lazyString
}

// Filter returns a strategy producing values from s that satisfy pred.
// A predicate that is too hard to satisfy makes attempts abandon rather than
// hang. Panics on a nil s or pred.
func Filter[T any](s Strategy[T], pred func(T) bool) Strategy[T] {
	if s == nil || pred == nil {
		panic("strategy: Filter(nil)")
	}
	return &Filtered[T]{inner: s, pred: pred}
}

// Generate redraws until pred holds. Each rejected draw must have advanced
// src.Index(); otherwise the attempt is abandoned with control.ErrUnsatisfied.
func (f *Filtered[T]) Generate(src entropy.Source) (T, error) {
	var zero T
	for {
		start := src.Index()
		v, err := entropy.Draw[T](src, f.inner)
		if err != nil {
			return zero, err
		}
		if f.pred(v) {
			return v, nil
		}
		if err := control.Assume(src.Index() > start); err != nil {
			return zero, fmt.Errorf("%s: rejected draw consumed no entropy: %w", f, err)
		}
	}
}

// String renders as "<inner>.filter(<pred>)"; computed once.
func (f *Filtered[T]) String() string {
	return f.desc.get(func() string {
		return fmt.Sprintf("%s.filter(%s)", f.inner, reflection.Describe(f.pred))
	})
}
