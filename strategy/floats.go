// Package strategy - continuous distributions driven by drawn bytes.
//
// Every float strategy turns 8 bytes of entropy into a uniform u ∈ [0,1)
// (53 significant bits) and maps it through an inverse transform:
//
//	Floats(min, max)          min + u·(max−min)
//	NormalFloats(mean, sd)    Box–Muller over two uniforms
//	ExponentialFloats(rate)   −ln(1−u) / rate
//
// Parameter violations are reported by Generate as ErrInvalidRange.
package strategy

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/degustaf/hypothesis/entropy"
)

// floatBytes is the entropy consumed per uniform draw.
const floatBytes = 8

// unitFloat draws u ∈ [0,1) from 8 bytes (top 53 bits).
func unitFloat(src entropy.Source) (float64, error) {
	b, err := src.DrawBytes(floatBytes)
	if err != nil {
		return 0, err
	}
	return float64(binary.BigEndian.Uint64(b)>>11) / (1 << 53), nil
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Floats returns a strategy producing floats uniformly in [min, max).
// min == max always yields min without consuming entropy.
func Floats(min, max float64) Strategy[float64] {
	return &floats{min: min, max: max}
}

type floats struct {
	min, max float64
}

func (s *floats) Generate(src entropy.Source) (float64, error) {
	if !finite(s.min, s.max) || s.max < s.min {
		return 0, fmt.Errorf("%s: %w", s, ErrInvalidRange)
	}
	if s.max == s.min {
		return s.min, nil
	}
	u, err := unitFloat(src)
	if err != nil {
		return 0, err
	}
	return s.min + u*(s.max-s.min), nil
}

func (s *floats) String() string {
	return fmt.Sprintf("floats(%g, %g)", s.min, s.max)
}

// NormalFloats returns a strategy sampling N(mean, stddev).
// Requires finite parameters and stddev ≥ 0.
func NormalFloats(mean, stddev float64) Strategy[float64] {
	return &normalFloats{mean: mean, stddev: stddev}
}

type normalFloats struct {
	mean, stddev float64
}

func (s *normalFloats) Generate(src entropy.Source) (float64, error) {
	if !finite(s.mean, s.stddev) || s.stddev < 0 {
		return 0, fmt.Errorf("%s: %w", s, ErrInvalidRange)
	}
	u1, err := unitFloat(src)
	if err != nil {
		return 0, err
	}
	u2, err := unitFloat(src)
	if err != nil {
		return 0, err
	}
	// 1−u1 ∈ (0,1], so the logarithm is finite.
	z := math.Sqrt(-2*math.Log(1-u1)) * math.Cos(2*math.Pi*u2)
	return s.mean + z*s.stddev, nil
}

func (s *normalFloats) String() string {
	return fmt.Sprintf("normal_floats(%g, %g)", s.mean, s.stddev)
}

// ExponentialFloats returns a strategy sampling Exp(rate), mean 1/rate.
// Requires a finite rate > 0.
func ExponentialFloats(rate float64) Strategy[float64] {
	return &exponentialFloats{rate: rate}
}

type exponentialFloats struct {
	rate float64
}

func (s *exponentialFloats) Generate(src entropy.Source) (float64, error) {
	if !finite(s.rate) || s.rate <= 0 {
		return 0, fmt.Errorf("%s: %w", s, ErrInvalidRange)
	}
	u, err := unitFloat(src)
	if err != nil {
		return 0, err
	}
	return -math.Log(1-u) / s.rate, nil
}

func (s *exponentialFloats) String() string {
	return fmt.Sprintf("exponential_floats(%g)", s.rate)
}
