package reactor

import "fmt"

// A diamond dependency: both b and c read a, and d reads both b and c.
// d recomputes exactly once per change to a, never once per path.
func Example_diamond() {
	a := NewSignal(2)
	b := NewComputed(func() int { return a.Read() * 2 })
	c := NewComputed(func() int { return a.Read() + 1 })

	runs := 0
	d := NewComputed(func() int {
		runs++
		return b.Read() + c.Read()
	})

	fmt.Println(d.Read(), runs)
	a.Write(5)
	fmt.Println(d.Read(), runs)

	// Output:
	// 7 1
	// 16 2
}

// Writing a signal from inside a Computed's own compute closure is a
// mutation violation and panics rather than silently succeeding.
func Example_mutationInComputed() {
	a := NewSignal(1)
	bad := NewComputed(func() int {
		a.Write(a.Peek() + 1)
		return a.Peek()
	})

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Println("recovered:", r)
			}
		}()
		bad.Read()
	}()

	// Output:
	// recovered: signal mutated while a computed cell is executing
}

// A batch coalesces several writes into a single effect run.
func Example_batch() {
	a := NewSignal(1)
	b := NewSignal(2)
	runs := 0

	NewEffect(func() {
		runs++
		fmt.Println(a.Read() + b.Read())
	})

	Batch(func() {
		a.Write(10)
		b.Write(20)
	})

	fmt.Println("runs:", runs)

	// Output:
	// 3
	// 30
	// runs: 2
}
