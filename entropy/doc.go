// Package entropy defines the per-attempt source of choices that strategies
// draw from, and a concrete byte-buffer implementation of it.
//
// A Source is owned by exactly one generation attempt. Every draw consumes
// bytes in order and advances Index, a monotonically non-decreasing counter
// that combinators use as a progress witness ("did this draw consume
// anything?"). When the attempt runs past its byte budget the source reports
// ErrOverrun and freezes; the caller that owns the attempt loop decides
// whether to retry with fresh entropy.
//
// Components:
//
//   - Source:        the narrow contract consumed by strategies
//     (Index, IntegerRange, DrawBytes).
//   - Generator[T]:  anything that produces a T from a Source.
//   - Draw:          delegates to a Generator while tracking nesting depth.
//   - Data:          the concrete Source; replays a fixed prefix, then pulls
//     fresh bytes from a seeded *rand.Rand until MaxSize is reached.
//   - NewRand / DeriveRand: deterministic RNG construction (seed 0 policy,
//     SplitMix64 sub-streams).
//
// Concurrency:
//
//	Data is NOT safe for concurrent use. Create one per attempt.
//
// Example:
//
//	d := entropy.New(entropy.WithSeed(42), entropy.WithMaxSize(1024))
//	n, err := d.IntegerRange(0, 9)
//	if err != nil {
//	    // errors.Is(err, entropy.ErrOverrun) means the attempt is abandoned.
//	}
//	fmt.Println(n, d.Index())
package entropy
