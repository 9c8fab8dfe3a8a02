package search

import (
	"bytes"
	"math/rand"

	"github.com/degustaf/hypothesis/control"
	"github.com/degustaf/hypothesis/entropy"
)

// shrink reduces buf in shortlex order while the replayed value still
// satisfies the predicate, accepting at most MaxShrinks reductions.
// Every accepted buffer is strictly smaller than the previous one, so the
// loop terminates even without the budget.
func (r *run[T]) shrink(v T, buf []byte) (T, error) {
	var scratch []byte
	for r.stats.Shrinks < r.cfg.MaxShrinks {
		var (
			improved bool
			hardErr  error
		)
		scratch = forEachCandidate(buf, scratch, func(cand []byte) bool {
			d := entropy.ForBuffer(cand)
			cv, err := entropy.Draw[T](d, r.gen)
			d.Freeze()
			if err != nil {
				if control.IsAbandoned(err) {
					return true
				}
				hardErr = err
				return false
			}
			if !r.pred(cv) {
				return true
			}
			next := d.Buffer()
			if !shortlexLess(next, buf) {
				return true
			}
			v, buf = cv, next
			r.stats.Shrinks++
			improved = true
			return false
		})
		if hardErr != nil {
			return v, hardErr
		}
		if !improved {
			break
		}
	}
	return v, nil
}

// forEachCandidate yields simpler variants of buf to try until try returns
// false. Positions are visited left to right; at each one it deletes a chunk
// of 8, 4, 2 and 1 bytes, then replaces the byte with zero, half and one less.
//
// Candidates are built in scratch, which is grown as needed and returned for
// reuse. A candidate is only valid for the duration of the call to try.
func forEachCandidate(buf, scratch []byte, try func([]byte) bool) []byte {
	if cap(scratch) < len(buf) {
		scratch = make([]byte, 0, len(buf))
	}
	for i := range buf {
		for k := 8; k > 0; k /= 2 {
			if i+k > len(buf) {
				continue
			}
			c := append(append(scratch[:0], buf[:i]...), buf[i+k:]...)
			if !try(c) {
				return scratch
			}
		}

		edits, n := byteEdits(buf[i])
		for _, nb := range edits[:n] {
			c := append(scratch[:0], buf...)
			c[i] = nb
			if !try(c) {
				return scratch
			}
		}
	}
	return scratch
}

// byteEdits lists the distinct smaller values tried for b: zero, half, and
// one less.
func byteEdits(b byte) (out [3]byte, n int) {
	switch {
	case b == 0:
		return out, 0
	case b == 1:
		return [3]byte{0}, 1
	case b == 2:
		return [3]byte{0, 1}, 2
	}
	return [3]byte{0, b / 2, b - 1}, 3
}

// shortlexLess orders byte strings by length, then lexicographically.
func shortlexLess(a, b []byte) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return bytes.Compare(a, b) < 0
}

// mutate returns a copy of buf with one random run of bytes rewritten,
// either with fresh random bytes or with zeros.
func mutate(rng *rand.Rand, buf []byte) []byte {
	out := append([]byte(nil), buf...)
	if len(out) == 0 {
		return out
	}
	i := rng.Intn(len(out))
	j := i + 1 + rng.Intn(len(out)-i)
	zero := rng.Intn(2) == 0
	for k := i; k < j; k++ {
		if zero {
			out[k] = 0
		} else {
			out[k] = byte(rng.Intn(256))
		}
	}
	return out
}
