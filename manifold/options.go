// Package manifold: functional configuration for tolerance-sensitive
// operations (checked construction, approximate equality).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); user data never panics.
//   - "Callers may omit it" ergonomics: every tolerance-taking facade
//     accepts ...Option and falls back to DefaultTolerance.
package manifold

import "math"

// DefaultTolerance is the package-wide default numeric tolerance, used
// whenever a caller does not supply WithTolerance. It is an exported
// constant — not mutable state — so the concurrency guarantees of the
// value types are preserved.
const DefaultTolerance = 1e-9

// panicToleranceInvalid is the panic message for a nonsensical tolerance.
// Named to avoid magic strings at the panic site.
const panicToleranceInvalid = "manifold: WithTolerance: tolerance must be finite and non-negative"

// Options carries the resolved configuration for one call. Fields are
// unexported; construct via DefaultOptions and mutate via Option values.
type Options struct {
	tolerance float64
}

// Tolerance returns the configured numeric tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// Option mutates an Options value. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// DefaultOptions returns the canonical defaults: tolerance = DefaultTolerance.
func DefaultOptions() Options {
	return Options{tolerance: DefaultTolerance}
}

// WithTolerance overrides the numeric tolerance for one call.
// Panics if tolerance is NaN, infinite, or negative — a nonsensical
// tolerance is a programmer error, not a runtime condition.
func WithTolerance(tolerance float64) Option {
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tolerance = tolerance
	}
}

// gatherOptions folds opts over the defaults, left to right.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
