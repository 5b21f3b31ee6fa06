package reactor

import (
	"fmt"

	"github.com/aldenjr/reactor/internal"
)

// Signal is a mutable reactive cell holding a value of type T.
type Signal[T any] struct {
	cell *internal.Signal
}

// SignalOption configures a Signal at construction time.
type SignalOption[T any] func(*signalConfig[T])

type signalConfig[T any] struct {
	equal func(a, b T) bool
}

// WithEqual overrides the default `==`-based equality used to decide
// whether a Write actually changes the signal's value.
func WithEqual[T any](equal func(a, b T) bool) SignalOption[T] {
	return func(c *signalConfig[T]) { c.equal = equal }
}

// NewSignal creates a reactive cell holding the given initial value.
func NewSignal[T any](initial T, opts ...SignalOption[T]) *Signal[T] {
	var cfg signalConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	var equal func(a, b any) bool
	if cfg.equal != nil {
		equal = func(a, b any) bool { return cfg.equal(a.(T), b.(T)) }
	}

	return &Signal[T]{cell: internal.NewSignal(initial, equal)}
}

// Read returns the signal's current value, subscribing the active
// consumer, if any, to future changes.
func (s *Signal[T]) Read() T {
	return as[T](s.cell.Read(internal.CurrentEngine()))
}

// Peek returns the current value without creating a dependency.
func (s *Signal[T]) Peek() T {
	return as[T](s.cell.Peek())
}

// Write replaces the signal's value, notifying subscribers unless the
// new value equals the old one. Writing from within a Computed's
// compute closure panics with an error satisfying errors.Is against
// ErrMutationInComputed.
func (s *Signal[T]) Write(v T) {
	if err := s.cell.Write(internal.CurrentEngine(), v); err != nil {
		panic(err)
	}
}

// Subscribe registers fn to run once immediately and again every time
// the signal's value changes. It returns a disposer that stops it.
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	return subscribe(s.Read, fn)
}

func (s *Signal[T]) String() string {
	return fmt.Sprint(any(s.Peek()))
}
