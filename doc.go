// Package reactor implements a dependency-tracking reactive value graph:
// mutable signals, lazily-evaluated computed cells, and effects that
// re-run automatically when the cells they last read change.
//
// Dependencies are discovered through reads, not declared up front. A
// Computed or Effect that reads a Signal is re-run only when that
// signal's value actually changes (by the configured equality), and
// only once per batched update no matter how many of its dependencies
// changed — diamond-shaped dependency graphs are glitch-free.
package reactor
