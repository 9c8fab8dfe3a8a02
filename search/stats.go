package search

import (
	"log/slog"

	"github.com/google/uuid"
)

// Stats summarizes one Find run.
type Stats struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID
	// Iterations counts every attempt, fresh or mutated.
	Iterations int
	// Valid counts attempts that produced a value.
	Valid int
	// Abandoned counts attempts that raised an unsatisfied assumption.
	Abandoned int
	// Overruns counts attempts that ran out of entropy.
	Overruns int
	// Mutations counts mutated replays.
	Mutations int
	// Shrinks counts successful reductions of the result.
	Shrinks int
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run_id", s.RunID.String()),
		slog.Int("iterations", s.Iterations),
		slog.Int("valid", s.Valid),
		slog.Int("abandoned", s.Abandoned),
		slog.Int("overruns", s.Overruns),
		slog.Int("mutations", s.Mutations),
		slog.Int("shrinks", s.Shrinks),
	)
}
