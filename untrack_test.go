package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntrack(t *testing.T) {
	t.Run("reads inside Untrack do not create dependencies", func(t *testing.T) {
		a := NewSignal(1)
		b := NewSignal(10)
		runs := 0

		NewEffect(func() {
			runs++
			_ = a.Read() + Untrack(func() int { return b.Read() })
		})
		assert.Equal(t, 1, runs)

		b.Write(20)
		assert.Equal(t, 1, runs, "b must not be a dependency")

		a.Write(2)
		assert.Equal(t, 2, runs)
	})

	t.Run("UntrackVoid works for side-effecting closures", func(t *testing.T) {
		a := NewSignal(1)
		runs := 0

		NewEffect(func() {
			UntrackVoid(func() { a.Read() })
			runs++
		})

		a.Write(2)
		assert.Equal(t, 1, runs)
	})

	t.Run("nested Untrack collapses to the outer scope", func(t *testing.T) {
		a := NewSignal(1)
		runs := 0

		NewEffect(func() {
			Untrack(func() int {
				return Untrack(func() int { return a.Read() })
			})
			runs++
		})

		a.Write(5)
		assert.Equal(t, 1, runs)
	})

	t.Run("a computed read inside Untrack is still memoized normally", func(t *testing.T) {
		a := NewSignal(1)
		evals := 0
		c := NewComputed(func() int {
			evals++
			return a.Read() * 2
		})

		assert.Equal(t, 2, Untrack(func() int { return c.Read() }))
		assert.Equal(t, 1, evals)
		assert.Equal(t, 2, Untrack(func() int { return c.Read() }))
		assert.Equal(t, 1, evals)
	})
}
