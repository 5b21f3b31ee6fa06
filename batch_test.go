package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("defers effect runs until the batch ends", func(t *testing.T) {
		a := NewSignal(1)
		b := NewSignal(2)
		runs := 0

		NewEffect(func() {
			a.Read()
			b.Read()
			runs++
		})
		assert.Equal(t, 1, runs)

		Batch(func() {
			a.Write(10)
			b.Write(20)
			assert.Equal(t, 1, runs, "effect must not run mid-batch")
		})

		assert.Equal(t, 2, runs)
	})

	t.Run("nested batches only flush at the outermost level", func(t *testing.T) {
		a := NewSignal(0)
		runs := 0
		NewEffect(func() {
			a.Read()
			runs++
		})

		Batch(func() {
			Batch(func() {
				a.Write(1)
			})
			assert.Equal(t, 1, runs)
		})
		assert.Equal(t, 2, runs)
	})

	t.Run("BatchValue returns the closure's result", func(t *testing.T) {
		a := NewSignal(1)
		result := BatchValue(func() int {
			a.Write(5)
			return a.Peek() * 2
		})
		assert.Equal(t, 10, result)
	})

	t.Run("a write during a batch that feeds right back is capped", func(t *testing.T) {
		a := NewSignal(0)
		NewEffect(func() {
			if v := a.Read(); v > 0 {
				a.Write(v + 1)
			}
		})
		assert.Panics(t, func() {
			Batch(func() {
				a.Write(1)
			})
		})
	})
}
