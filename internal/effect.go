package internal

// Effect is a side-effect holder: a compute closure, an optional
// cleanup, its own dependency list, a flag word, and an intrusive link
// in the engine's pending-effects queue.
type Effect struct {
	compute func() any
	cleanup func()

	depsH, depsT *Node
	flagbits     Flags

	everRan bool // true once this effect has completed at least one run successfully

	nextPending *Effect
}

func NewEffect() *Effect {
	return &Effect{flagbits: FlagTracking}
}

func (e *Effect) flags() *Flags      { return &e.flagbits }
func (e *Effect) depsHead() *Node    { return e.depsH }
func (e *Effect) depsTail() *Node    { return e.depsT }
func (e *Effect) setDeps(h, t *Node) { e.depsH, e.depsT = h, t }

// Flags exposes the flag word to callers outside this package (used by
// Subscribe's temporary TRACKING toggle).
func (e *Effect) Flags() *Flags { return &e.flagbits }

func (e *Effect) notify(eng *Engine) {
	if !e.flagbits.Has(FlagNotified) {
		e.flagbits.Set(FlagNotified)
		eng.enqueuePending(e)
	}
}

// AddCleanup coalesces fn onto the effect's cleanup slot in append
// order: a compute closure that returns a callable and one or more
// OnCleanup calls during the same run end up chained together.
func (e *Effect) AddCleanup(fn func()) {
	if e.cleanup == nil {
		e.cleanup = fn
		return
	}
	prev := e.cleanup
	e.cleanup = func() { prev(); fn() }
}

// runCleanup runs and clears any existing cleanup, outside any
// evaluation context and inside its own batch. A cleanup that panics
// disposes the effect (without re-running the cleanup) and propagates.
func (e *Effect) runCleanup(eng *Engine) {
	if e.cleanup == nil {
		return
	}
	cleanup := e.cleanup
	e.cleanup = nil

	prevConsumer := eng.activeConsumer
	eng.activeConsumer = nil
	eng.startBatch()

	defer func() {
		eng.activeConsumer = prevConsumer
		eng.endBatch()
	}()

	defer func() {
		if r := recover(); r != nil {
			e.flagbits.Set(FlagDisposed)
			e.flagbits.Clear(FlagRunning)
			e.unlinkAllDeps()
			e.compute = nil
			panic(r)
		}
	}()

	cleanup()
}

func (e *Effect) unlinkAllDeps() {
	for n := e.depsH; n != nil; {
		next := n.nextDep
		n.source.unsubscribe(n)
		n = next
	}
	e.depsH, e.depsT = nil, nil
}

// Start implements _start: primes the dependency list, opens a batch,
// and installs this effect as the active consumer. The returned func
// must run on every exit path (see Run).
func (e *Effect) Start(eng *Engine) func() {
	if e.flagbits.Has(FlagRunning) {
		panic(violation(ErrCycleDetected))
	}
	e.flagbits.Set(FlagRunning)
	e.flagbits.Clear(FlagDisposed)

	e.runCleanup(eng)

	prepareSources(e)
	eng.startBatch()

	prevConsumer := eng.activeConsumer
	eng.activeConsumer = e

	return func() { eng.endEffect(e, prevConsumer) }
}

// Run invokes _callback: start, then the compute closure, storing a
// returned callable as an additional cleanup, always pairing with the
// finalizer from Start. end is only ever invoked once: if it panics
// itself (e.g. a runaway write tripping the cycle cap while draining),
// the recover below must not call it again and mask the real error.
//
// compute is stashed on the effect itself (not just held as a local)
// because every re-run after the first is driven by the pending-queue
// drain calling back through eff.compute, not through a fresh Run call.
func (e *Effect) Run(eng *Engine, compute func() any) {
	e.compute = compute

	end := e.Start(eng)
	completed, ended := false, false
	finish := func() {
		if !ended {
			ended = true
			end()
		}
	}

	defer func() {
		if r := recover(); r != nil {
			// A failure on the first run ever (no prior successful
			// completion) leaves no live caller holding a handle to
			// dispose this effect, so it must dispose itself here or
			// its confirmed dependency nodes leak as permanent,
			// unreachable subscriptions.
			if !e.everRan {
				e.flagbits.Set(FlagDisposed)
			}
			finish()
			panic(r)
		}
		if !completed {
			if !e.everRan {
				e.flagbits.Set(FlagDisposed)
			}
			finish()
			panic(violation(ErrEarlyReturnInEffect))
		}
	}()

	value := compute()
	if cleanup, ok := value.(func()); ok {
		e.AddCleanup(cleanup)
	}
	completed = true
	e.everRan = true
	finish()
}

// Dispose implements _dispose: idempotent; if the effect is not
// currently running, full disposal happens immediately, otherwise it is
// deferred to end_effect.
func (e *Effect) Dispose(eng *Engine) {
	if e.flagbits.Has(FlagDisposed) {
		return
	}
	e.flagbits.Set(FlagDisposed)
	if !e.flagbits.Has(FlagRunning) {
		e.fullDispose(eng)
	}
}

// fullDispose unsubscribes all dependencies, drops the compute closure,
// and runs any stored cleanup outside any context, inside a batch.
func (e *Effect) fullDispose(eng *Engine) {
	e.unlinkAllDeps()
	e.compute = nil

	if e.cleanup == nil {
		return
	}
	cleanup := e.cleanup
	e.cleanup = nil

	prevConsumer := eng.activeConsumer
	eng.activeConsumer = nil
	eng.startBatch()
	defer func() {
		eng.activeConsumer = prevConsumer
		eng.endBatch()
	}()
	cleanup()
}
