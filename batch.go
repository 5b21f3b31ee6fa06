package reactor

import "github.com/aldenjr/reactor/internal"

// Batch defers effect notifications until fn returns, so that several
// writes are observed by subscribers as a single update. Batches nest:
// only the outermost Batch flushes pending effects.
func Batch(fn func()) {
	internal.CurrentEngine().Batch(fn)
}

// BatchValue is Batch for a closure that produces a value, returning
// fn's result once the (possibly nested) batch completes.
func BatchValue[T any](fn func() T) T {
	var result T
	internal.CurrentEngine().Batch(func() { result = fn() })
	return result
}

// Untrack runs fn without creating dependency edges for any signal or
// computed it reads, and returns fn's result.
func Untrack[T any](fn func() T) T {
	var result T
	internal.CurrentEngine().Untracked(func() { result = fn() })
	return result
}

// UntrackVoid is Untrack for a closure with no return value.
func UntrackVoid(fn func()) {
	internal.CurrentEngine().Untracked(fn)
}
