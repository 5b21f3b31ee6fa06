//go:build wasm

package internal

import "sync"

var (
	wasmOnce   sync.Once
	wasmEngine *Engine
)

// CurrentEngine returns the single global engine. WebAssembly builds
// run on one thread, so there is no goroutine to key a per-context
// engine by; one engine serves the whole program.
func CurrentEngine() *Engine {
	wasmOnce.Do(func() { wasmEngine = NewEngine() })
	return wasmEngine
}
