package internal

// Flags is the state bitset carried by every Computed and Effect.
type Flags uint8

const (
	FlagRunning  Flags = 1 << iota // currently executing its compute closure
	FlagNotified                   // enqueued in the pending-effects queue, or (Computed) propagated dirty this epoch
	FlagOutdated                   // cached value may be stale; refresh required
	FlagDisposed                   // permanently torn down; no further work
	FlagHasError                   // cached value is an error to be re-raised on read
	FlagTracking                   // reads by this consumer establish subscriptions
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }
func (f *Flags) Set(flag Flags)     { *f |= flag }
func (f *Flags) Clear(flag Flags)   { *f &^= flag }
