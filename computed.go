package reactor

import (
	"fmt"

	"github.com/aldenjr/reactor/internal"
)

// Computed is a derived cell whose value is a memoized, lazily
// re-evaluated function of whatever signals and computeds its closure
// reads. Writing to a Computed is not possible: there is no Write
// method.
type Computed[T any] struct {
	cell *internal.Computed
}

// ComputedOption configures a Computed at construction time.
type ComputedOption[T any] func(*computedConfig[T])

type computedConfig[T any] struct {
	equal func(a, b T) bool
}

// WithComputedEqual overrides the default `==`-based equality used to
// decide whether a recompute actually changed the cached value (and
// therefore whether it needs to propagate further).
func WithComputedEqual[T any](equal func(a, b T) bool) ComputedOption[T] {
	return func(c *computedConfig[T]) { c.equal = equal }
}

// NewComputed creates a derived cell. compute is invoked lazily: not at
// construction, only the first time the cell is read or gains a
// subscriber.
func NewComputed[T any](compute func() T, opts ...ComputedOption[T]) *Computed[T] {
	var cfg computedConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	var equal func(a, b any) bool
	if cfg.equal != nil {
		equal = func(a, b any) bool { return cfg.equal(a.(T), b.(T)) }
	}

	wrapped := func() any { return compute() }
	return &Computed[T]{cell: internal.NewComputed(wrapped, equal)}
}

// Read returns the cached value, recomputing first if any dependency
// actually changed, and registers a dependency if a consumer context is
// active. If the closure's last run raised, Read re-raises that same
// error.
func (c *Computed[T]) Read() T {
	return as[T](c.cell.Read(internal.CurrentEngine()))
}

// Peek returns the same value Read would, without creating a
// dependency.
func (c *Computed[T]) Peek() T {
	return as[T](c.cell.Peek(internal.CurrentEngine()))
}

// Subscribe registers fn to run once immediately and again every time
// the computed's value changes. It returns a disposer that stops it.
func (c *Computed[T]) Subscribe(fn func(T)) func() {
	return subscribe(c.Read, fn)
}

func (c *Computed[T]) String() string {
	return fmt.Sprint(any(c.Peek()))
}
