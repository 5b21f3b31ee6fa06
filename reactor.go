package reactor

// as converts an internal any-typed value back to T, used at every
// boundary where the generic wrapper types call into the non-generic
// internal engine.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
