// Package search runs a strategy against fresh entropy until a generated
// value satisfies a predicate, within the budgets of a settings.Settings.
//
// Find is the owner of the attempt loop: it is the one place where
// abandonment (control.ErrUnsatisfied, entropy.ErrOverrun) is caught.
// Abandoned attempts are counted and skipped; any other error is a hard
// failure and is returned immediately.
//
// Budgets:
//
//	– MaxIterations: total attempts, fresh and mutated.
//	– MaxMutations:  mutated replays of a value that was generated but rejected.
//	– MaxShrinks:    successful reductions of the satisfying choice sequence
//	                 (0 returns the first satisfying value as is).
//	– BufferSize:    bytes of entropy available to each attempt.
//
// Errors (sentinel):
//
//	– ErrNoSuchExample if the budget ran out without a satisfying value.
//	– settings.ErrBadSettings if the settings do not validate.
//
// Example usage:
//
//	v, stats, err := search.Find[int](strategy.Integers(0, 1000),
//	    func(n int) bool { return n > 900 },
//	    settings.New(settings.WithSeed(1)),
//	)
package search
