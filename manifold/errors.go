// Package manifold: sentinel error set.
// This file defines ONLY package-level sentinel errors. Callers match them
// via errors.Is. No operation in this package panics on user data; panics
// are reserved for programmer errors in option constructors.
package manifold

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "manifold: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning them directly;
// wrap with fmt.Errorf("ctx: %w", ErrX) only when extra context is
// essential — callers still match with errors.Is.

var (
	// ErrInvalidPoint is returned by the checked FromPoint when the provided
	// embedding point does not lie on the manifold within the configured
	// tolerance. The unchecked Element.FromPoint method never returns it:
	// there the precondition is the caller's responsibility.
	ErrInvalidPoint = errors.New("manifold: point does not lie on the manifold")

	// ErrDegenerateGeodesic is declared for concrete manifolds that opt in
	// to signalling a non-unique geodesic (e.g. antipodal sphere points,
	// half-turn rotations). Neither built-in manifold returns it: both
	// resolve degeneracies to a documented deterministic result instead.
	ErrDegenerateGeodesic = errors.New("manifold: geodesic between the elements is not unique")

	// ErrBadTolerance is reserved for facade-level validation of
	// caller-supplied tolerances. WithTolerance itself panics on invalid
	// input, since a nonsensical tolerance is a programmer error.
	ErrBadTolerance = errors.New("manifold: tolerance must be finite and non-negative")
)
