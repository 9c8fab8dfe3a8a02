package strategy

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/degustaf/hypothesis/entropy"
)

// Strategy produces values of type T from a Source.
//
// Generate must recurse into constituents only through entropy.Draw and must
// return constituent errors unchanged. String is a deterministic diagnostic
// description.
type Strategy[T any] interface {
	Generate(src entropy.Source) (T, error)
	String() string
}

// GenerateFunc is the body of a strategy built with Of.
type GenerateFunc[T any] func(src entropy.Source) (T, error)

// Of returns a strategy named name whose Generate calls fn.
// A nil fn yields a strategy whose Generate fails with ErrUnimplemented,
// naming the strategy. An empty name defaults to "strategy[<T>]".
func Of[T any](name string, fn GenerateFunc[T]) Strategy[T] {
	if name == "" {
		name = fmt.Sprintf("strategy[%s]", typeName[T]())
	}
	return &funcStrategy[T]{name: name, fn: fn}
}

type funcStrategy[T any] struct {
	name string
	fn   GenerateFunc[T]
}

func (s *funcStrategy[T]) Generate(src entropy.Source) (T, error) {
	if s.fn == nil {
		var zero T
		return zero, fmt.Errorf("%s.Generate: %w", s.name, ErrUnimplemented)
	}
	return s.fn(src)
}

func (s *funcStrategy[T]) String() string { return s.name }

// Or returns a strategy drawing from s or other with equal probability.
// other must hold a non-nil Strategy[T]; anything else fails with
// ErrInvalidOperand.
func Or[T any](s Strategy[T], other any) (Strategy[T], error) {
	if s == nil {
		return nil, fmt.Errorf("cannot | a nil strategy: %w", ErrInvalidOperand)
	}
	o, ok := other.(Strategy[T])
	if !ok || o == nil {
		return nil, fmt.Errorf("cannot | %s with %#v: %w", s, other, ErrInvalidOperand)
	}
	return OneOf(s, o)
}

// lazyString caches a description computed on first use. Concurrent first
// calls may both compute; they store the same value.
type lazyString struct {
	p atomic.Pointer[string]
}

func (l *lazyString) get(compute func() string) string {
	if s := l.p.Load(); s != nil {
		return *s
	}
	s := compute()
	l.p.Store(&s)
	return s
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
