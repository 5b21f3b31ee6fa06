package reactor

import "github.com/aldenjr/reactor/internal"

// subscribe implements cell.subscribe(fn): an Effect whose body reads
// the cell (establishing the subscription), temporarily clearing
// TRACKING around invoking fn so that fn itself cannot create further
// subscriptions.
func subscribe[T any](read func() T, fn func(T)) func() {
	eng := internal.CurrentEngine()
	eff := internal.NewEffect()

	compute := func() any {
		value := read()

		flags := eff.Flags()
		wasTracking := flags.Has(internal.FlagTracking)
		flags.Clear(internal.FlagTracking)
		fn(value)
		if wasTracking {
			flags.Set(internal.FlagTracking)
		}

		return nil
	}

	eff.Run(eng, compute)

	return func() { eff.Dispose(eng) }
}
