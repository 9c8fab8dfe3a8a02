package entropy

import (
	"fmt"
	"math/bits"
	"math/rand"
)

// Status describes how an attempt ended, as far as the Data can tell.
type Status int

const (
	// StatusValid means every draw so far was served within budget.
	StatusValid Status = iota
	// StatusOverrun means a draw exceeded the byte budget or the nesting bound.
	StatusOverrun
)

// String returns a lowercase label for s.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusOverrun:
		return "overrun"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Data is the concrete Source for a single generation attempt.
//
// Bytes are served first from the prefix (if any) and then from the RNG.
// Without an RNG, running past the prefix is an overrun; this is how a
// recorded buffer is replayed exactly.
type Data struct {
	prefix   []byte
	rng      *rand.Rand
	buffer   []byte
	maxSize  int
	maxDepth int
	depth    int
	frozen   bool
	status   Status
}

// New returns a Data configured by opts. With no options the Data has the
// DefaultMaxSize budget and no RNG, so its first draw overruns.
func New(opts ...Option) *Data {
	d := &Data{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ForBuffer returns a Data that replays exactly buf and overruns after it.
func ForBuffer(buf []byte) *Data {
	return New(WithPrefix(buf), WithMaxSize(len(buf)))
}

// Index returns the number of bytes consumed so far.
func (d *Data) Index() int { return len(d.buffer) }

// Buffer returns a copy of the bytes consumed so far.
func (d *Data) Buffer() []byte { return append([]byte(nil), d.buffer...) }

// Status reports whether the attempt overran.
func (d *Data) Status() Status { return d.status }

// Frozen reports whether further draws are refused.
func (d *Data) Frozen() bool { return d.frozen }

// Depth returns the current draw nesting depth.
func (d *Data) Depth() int { return d.depth }

// Freeze stops the Data from serving any further draws.
func (d *Data) Freeze() { d.frozen = true }

// DrawBytes consumes exactly n bytes.
func (d *Data) DrawBytes(n int) ([]byte, error) {
	if d.frozen {
		return nil, ErrFrozen
	}
	if n < 0 {
		return nil, fmt.Errorf("DrawBytes(%d): %w", n, ErrInvalidRange)
	}
	start := len(d.buffer)
	if start+n > d.maxSize {
		d.overrun()
		return nil, fmt.Errorf("DrawBytes(%d) at index %d of %d: %w", n, start, d.maxSize, ErrOverrun)
	}

	out := make([]byte, n)
	for i := range out {
		pos := start + i
		switch {
		case pos < len(d.prefix):
			out[i] = d.prefix[pos]
		case d.rng != nil:
			out[i] = byte(d.rng.Intn(256))
		default:
			d.overrun()
			return nil, fmt.Errorf("DrawBytes(%d) past replay buffer of %d: %w", n, len(d.prefix), ErrOverrun)
		}
	}
	d.buffer = append(d.buffer, out...)

	return out, nil
}

// IntegerRange draws a uniform integer in [low, high].
//
// The gap high-low is covered by the smallest whole number of bytes; the
// masked value is rejected and redrawn while it exceeds the gap, so every
// outcome is equally likely and each retry consumes more entropy.
// low == high returns low without consuming anything.
func (d *Data) IntegerRange(low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("IntegerRange(%d, %d): %w", low, high, ErrInvalidRange)
	}
	if low == high {
		return low, nil
	}

	gap := uint64(high) - uint64(low)
	width := bits.Len64(gap)
	nbytes := (width + 7) / 8
	mask := ^uint64(0)
	if width < 64 {
		mask = (uint64(1) << width) - 1
	}

	for {
		raw, err := d.DrawBytes(nbytes)
		if err != nil {
			return 0, err
		}
		var probe uint64
		for _, b := range raw {
			probe = probe<<8 | uint64(b)
		}
		probe &= mask
		if probe <= gap {
			return int(uint64(low) + probe), nil
		}
	}
}

func (d *Data) overrun() {
	d.status = StatusOverrun
	d.frozen = true
}

func (d *Data) enter() error {
	if d.frozen {
		return ErrFrozen
	}
	if d.maxDepth > 0 && d.depth >= d.maxDepth {
		d.overrun()
		return fmt.Errorf("draw nested deeper than %d: %w", d.maxDepth, ErrOverrun)
	}
	d.depth++
	return nil
}

func (d *Data) leave() {
	d.depth--
}
