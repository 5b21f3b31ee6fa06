package reactor

import "github.com/aldenjr/reactor/internal"

// Sentinel errors recovered panics can be compared against with
// errors.Is. UserError is not a sentinel: it is whatever value the
// user's own closure panicked with, normalized to an error.
var (
	// ErrCycleDetected: a Computed depends on itself directly or
	// transitively, batch_iteration exceeded 100 within one batch
	// (runaway feedback), or an effect's start was invoked while it was
	// already running.
	ErrCycleDetected = internal.ErrCycleDetected

	// ErrMutationInComputed: a signal was written while a Computed was
	// the active consumer.
	ErrMutationInComputed = internal.ErrMutationInComputed

	// ErrEarlyReturnInEffect: an effect's compute closure exited through
	// a non-local path the engine could not observe as a normal return.
	ErrEarlyReturnInEffect = internal.ErrEarlyReturnInEffect

	// ErrOutOfOrderEffect: an effect's end-of-run finalizer fired when
	// the active consumer was not that effect.
	ErrOutOfOrderEffect = internal.ErrOutOfOrderEffect
)
