package reactor

import "github.com/aldenjr/reactor/internal"

// EffectFn is the set of closure shapes NewEffect accepts: either a
// plain side effect, or one that returns a cleanup to run before the
// next invocation and on disposal.
type EffectFn interface {
	func() | func() func()
}

// Effect is a disposable handle to a running side effect.
type Effect struct {
	eff *internal.Effect
}

// NewEffect creates and immediately runs a reactive effect. It re-runs
// automatically whenever a signal or computed it read last time
// changes. If fn returns a func(), that func is used — together with
// anything registered via OnCleanup during the same run, in append
// order — to clean up before the next run and when the effect is
// disposed.
func NewEffect[F EffectFn](fn F) *Effect {
	eng := internal.CurrentEngine()
	eff := internal.NewEffect()

	compute := func() any {
		switch f := any(fn).(type) {
		case func():
			f()
			return nil
		case func() func():
			return f()
		default:
			panic("reactor: unreachable effect closure shape")
		}
	}

	eff.Run(eng, compute)
	return &Effect{eff: eff}
}

// Dispose stops the effect: it will not run again, and any pending
// cleanup runs immediately. Disposing twice is a no-op.
func (e *Effect) Dispose() {
	e.eff.Dispose(internal.CurrentEngine())
}

// OnCleanup registers fn to run before the currently-executing effect
// re-runs, and when it is disposed. Calling it outside an effect's
// compute closure panics.
func OnCleanup(fn func()) {
	eng := internal.CurrentEngine()
	eff, ok := eng.ActiveConsumer().(*internal.Effect)
	if !ok {
		panic("reactor: OnCleanup called outside a running effect")
	}
	eff.AddCleanup(fn)
}
