package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/degustaf/hypothesis/control"
	"github.com/degustaf/hypothesis/entropy"
	"github.com/degustaf/hypothesis/settings"
)

// Find generates values from g until one satisfies pred, then shrinks it
// within s.MaxShrinks. A nil pred accepts every value.
//
// Complexity: O(MaxIterations · cost(g)) for the search, plus
// O(MaxShrinks · len(buffer)² · cost(g)) for shrinking.
func Find[T any](g entropy.Generator[T], pred func(T) bool, s settings.Settings) (T, Stats, error) {
	var zero T
	if err := s.Validate(); err != nil {
		return zero, Stats{}, fmt.Errorf("Find: %w", err)
	}
	if pred == nil {
		pred = func(T) bool { return true }
	}

	r := &run[T]{
		gen:   g,
		pred:  pred,
		cfg:   s,
		rng:   s.Rand(),
		stats: Stats{RunID: uuid.New()},
	}
	r.log = s.Logger().With(slog.String("run_id", r.stats.RunID.String()))
	r.log.Debug("search started",
		slog.Int("max_iterations", s.MaxIterations),
		slog.Int("max_mutations", s.MaxMutations),
		slog.Int("max_shrinks", s.MaxShrinks),
		slog.Int("buffer_size", s.BufferSize),
	)

	v, buf, found, err := r.search()
	if err != nil {
		r.log.Debug("search failed", slog.Any("stats", r.stats), slog.Any("error", err))
		return zero, r.stats, fmt.Errorf("Find: %w", err)
	}
	if !found {
		r.log.Debug("search exhausted", slog.Any("stats", r.stats))
		return zero, r.stats, fmt.Errorf("Find: %d iterations: %w", r.stats.Iterations, ErrNoSuchExample)
	}

	v, err = r.shrink(v, buf)
	if err != nil {
		return zero, r.stats, fmt.Errorf("Find: shrink: %w", err)
	}
	r.log.Debug("search succeeded", slog.Any("stats", r.stats))

	return v, r.stats, nil
}

// run carries the state of one Find call.
type run[T any] struct {
	gen   entropy.Generator[T]
	pred  func(T) bool
	cfg   settings.Settings
	rng   *rand.Rand
	log   *slog.Logger
	stats Stats
}

// search returns the first satisfying value and the bytes that produced it.
func (r *run[T]) search() (T, []byte, bool, error) {
	var zero T
	for r.stats.Iterations < r.cfg.MaxIterations {
		d := r.fresh(nil)
		v, ok, err := r.attempt(d)
		if err != nil {
			return zero, nil, false, err
		}
		if !ok {
			continue
		}
		if r.pred(v) {
			return v, d.Buffer(), true, nil
		}

		// Explore the neighbourhood of a value that was generated but rejected.
		base := d.Buffer()
		for m := 0; m < r.cfg.MaxMutations && r.stats.Iterations < r.cfg.MaxIterations; m++ {
			r.stats.Mutations++
			md := r.fresh(mutate(r.rng, base))
			mv, mok, err := r.attempt(md)
			if err != nil {
				return zero, nil, false, err
			}
			if mok && r.pred(mv) {
				return mv, md.Buffer(), true, nil
			}
		}
	}
	return zero, nil, false, nil
}

// fresh builds the Data for the next attempt, replaying prefix first.
func (r *run[T]) fresh(prefix []byte) *entropy.Data {
	stream := entropy.DeriveRand(r.rng, uint64(r.stats.Iterations))
	return entropy.New(
		entropy.WithPrefix(prefix),
		entropy.WithRand(stream),
		entropy.WithMaxSize(r.cfg.BufferSize),
	)
}

// attempt draws once from d. ok is false when the attempt was abandoned.
func (r *run[T]) attempt(d *entropy.Data) (v T, ok bool, err error) {
	r.stats.Iterations++
	defer d.Freeze()

	v, err = entropy.Draw[T](d, r.gen)
	switch {
	case err == nil:
		r.stats.Valid++
		return v, true, nil
	case errors.Is(err, entropy.ErrOverrun):
		r.stats.Overruns++
	case control.IsAbandoned(err):
		r.stats.Abandoned++
	default:
		return v, false, err
	}
	var zero T
	return zero, false, nil
}
