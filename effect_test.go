package reactor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect(t *testing.T) {
	t.Run("runs immediately and on dependency change", func(t *testing.T) {
		a := NewSignal(1)
		var seen []int

		NewEffect(func() {
			seen = append(seen, a.Read())
		})

		a.Write(2)
		a.Write(3)

		assert.Equal(t, []int{1, 2, 3}, seen)
	})

	t.Run("only depends on what it actually read last run", func(t *testing.T) {
		cond := NewSignal(true)
		a := NewSignal("a")
		b := NewSignal("b")

		runs := 0
		NewEffect(func() {
			runs++
			if cond.Read() {
				a.Read()
			} else {
				b.Read()
			}
		})
		assert.Equal(t, 1, runs)

		a.Write("a2")
		assert.Equal(t, 2, runs)

		cond.Write(false)
		assert.Equal(t, 3, runs)

		// a is no longer a dependency: writing it must not re-run.
		a.Write("a3")
		assert.Equal(t, 3, runs)

		b.Write("b2")
		assert.Equal(t, 4, runs)
	})

	t.Run("cleanup runs before next run and on dispose", func(t *testing.T) {
		a := NewSignal(0)
		var cleanups []int

		eff := NewEffect(func() func() {
			v := a.Read()
			return func() { cleanups = append(cleanups, v) }
		})

		a.Write(1)
		assert.Equal(t, []int{0}, cleanups)

		eff.Dispose()
		assert.Equal(t, []int{0, 1}, cleanups)

		eff.Dispose() // idempotent
		assert.Equal(t, []int{0, 1}, cleanups)
	})

	t.Run("OnCleanup coalesces with the returned cleanup in order", func(t *testing.T) {
		a := NewSignal(0)
		var order []string

		eff := NewEffect(func() func() {
			a.Read()
			OnCleanup(func() { order = append(order, "onCleanup") })
			return func() { order = append(order, "returned") }
		})

		a.Write(1)
		assert.Equal(t, []string{"onCleanup", "returned"}, order)

		eff.Dispose()
		assert.Equal(t, []string{"onCleanup", "returned", "onCleanup", "returned"}, order)
	})

	t.Run("OnCleanup outside an effect panics", func(t *testing.T) {
		assert.Panics(t, func() { OnCleanup(func() {}) })
	})

	t.Run("a runaway feedback loop exceeds the batch iteration cap", func(t *testing.T) {
		a := NewSignal(0)
		assert.PanicsWithError(t, ErrCycleDetected.Error(), func() {
			NewEffect(func() {
				a.Write(a.Read() + 1)
			})
		})
	})

	t.Run("user panic from an effect body propagates", func(t *testing.T) {
		assert.PanicsWithError(t, "boom", func() {
			NewEffect(func() {
				panic(errors.New("boom"))
			})
		})
	})
}
