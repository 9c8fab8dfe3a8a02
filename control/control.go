// Package control carries the attempt-abandonment signals raised by
// strategies and caught by the loop that owns a generation attempt.
//
// Abandonment is not a failure. It means "this attempt cannot produce a
// value"; the owner retries with fresh entropy or gives up. Strategies raise
// it and propagate it unchanged; they never catch it themselves.
package control

import (
	"errors"

	"github.com/degustaf/hypothesis/entropy"
)

// ErrUnsatisfied signals an unsatisfied assumption: the current attempt is
// abandoned. Filters also use it when a rejected draw made no progress.
var ErrUnsatisfied = errors.New("control: unsatisfied assumption")

// Assume returns nil when cond holds and ErrUnsatisfied otherwise.
func Assume(cond bool) error {
	if cond {
		return nil
	}
	return ErrUnsatisfied
}

// Reject unconditionally abandons the current attempt.
func Reject() error {
	return ErrUnsatisfied
}

// IsAbandoned reports whether err is an abandonment outcome: an unsatisfied
// assumption or an entropy overrun. Anything else is a hard error that must
// reach the caller.
func IsAbandoned(err error) bool {
	return errors.Is(err, ErrUnsatisfied) || errors.Is(err, entropy.ErrOverrun)
}
