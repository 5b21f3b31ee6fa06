//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var engines sync.Map // goroutine id -> *Engine

// CurrentEngine returns the engine bound to the calling goroutine,
// creating one on first use. This is the context-local handle design
// note 9 calls for: within one goroutine's engine there is no locking,
// because there is no concurrency; across goroutines, state is
// disjoint.
func CurrentEngine() *Engine {
	gid := goid.Get()

	if e, ok := engines.Load(gid); ok {
		return e.(*Engine)
	}

	e := NewEngine()
	engines.Store(gid, e)
	return e
}
