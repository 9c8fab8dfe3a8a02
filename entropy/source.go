package entropy

// Source is the per-attempt supplier of ordered choices.
//
// Index returns how many bytes have been consumed so far. It never decreases
// during an attempt. Combinators compare two readings for inequality only;
// they never interpret the numeric value.
//
// IntegerRange draws a uniformly distributed integer in [low, high]
// inclusive. Implementations return low without consuming entropy when
// low == high.
//
// DrawBytes consumes exactly n bytes.
type Source interface {
	Index() int
	IntegerRange(low, high int) (int, error)
	DrawBytes(n int) ([]byte, error)
}

// Generator produces one value of type T from a Source.
// Every strategy satisfies it.
type Generator[T any] interface {
	Generate(src Source) (T, error)
}

// depthTracker is implemented by sources that account for draw nesting.
type depthTracker interface {
	enter() error
	leave()
}

// Draw asks g for a value using src. It is the only way strategies should
// recurse into their constituents, so that nesting depth and frozen-state
// checks stay uniform across the whole composition.
func Draw[T any](src Source, g Generator[T]) (T, error) {
	if t, ok := src.(depthTracker); ok {
		if err := t.enter(); err != nil {
			var zero T
			return zero, err
		}
		defer t.leave()
	}

	return g.Generate(src)
}
