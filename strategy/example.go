package strategy

import (
	"errors"
	"fmt"

	"github.com/degustaf/hypothesis/search"
	"github.com/degustaf/hypothesis/settings"
)

// Fixed budget of Example.
const (
	exampleIterations = 100
	exampleMutations  = 5
)

// Example returns one value generated by s, for interactive exploration and
// documentation only. It runs search.Find with an always-true predicate,
// no shrinking, 100 iterations and 5 mutations; opts may set the random
// source (settings.WithSeed, settings.WithRand), the buffer size or a
// logger, but not the budget.
//
// Fails with ErrNoExamples when every attempt was abandoned.
func Example[T any](s Strategy[T], opts ...settings.Option) (T, error) {
	var zero T
	if s == nil {
		return zero, fmt.Errorf("Example: nil strategy: %w", ErrInvalidOperand)
	}

	cfg := settings.New(opts...).With(
		settings.WithMaxShrinks(0),
		settings.WithMaxIterations(exampleIterations),
		settings.WithMaxMutations(exampleMutations),
	)
	v, _, err := search.Find[T](s, func(T) bool { return true }, cfg)
	switch {
	case errors.Is(err, search.ErrNoSuchExample):
		return zero, fmt.Errorf("could not find any valid examples in %d tries: %w", exampleIterations, ErrNoExamples)
	case err != nil:
		return zero, err
	}
	return v, nil
}
