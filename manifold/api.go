// File: api.go
// Role: Thin, deterministic generic facade over the Element contract.
// Policy:
//   - No numerical logic here: every function delegates to the element's
//     own implementation.
//   - The only failure point in the package is the checked FromPoint;
//     predicates return plain booleans and never fail.
//
// Because Go cannot infer the P and T parameters from a method set, these
// functions are typically called with explicit type arguments, or through
// the instantiated aliases each concrete manifold exports (so3.Geodesic,
// sphere.Chart, ...).

package manifold

// FromPoint is the checked build of an element: it validates p against the
// configured tolerance (DefaultTolerance unless WithTolerance is given) and
// only then constructs. Returns ErrInvalidPoint if p does not lie on the
// manifold.
//
// Complexity: one IsValid plus one FromPoint on the concrete type.
func FromPoint[E Element[E, P, T], P, T any](p P, opts ...Option) (E, error) {
	var zero E

	o := gatherOptions(opts...)
	if !zero.IsValid(p, o.tolerance) {
		return zero, ErrInvalidPoint
	}

	return zero.FromPoint(p), nil
}

// Distance returns the intrinsic distance between a and b. Trivially
// delegates; provided so generic algorithms can stay expression-shaped.
func Distance[E Element[E, P, T], P, T any](a, b E) float64 {
	return a.DistanceTo(b)
}

// Interpolate moves along the geodesic from a to b by fraction. Fractions
// outside [0, 1] extrapolate.
func Interpolate[E Element[E, P, T], P, T any](a, b E, fraction float64) E {
	return a.Interpolate(b, fraction)
}

// Equal reports whether a and b are approximately equal:
// DistanceTo(a, b) < tolerance, with STRICT inequality — a distance exactly
// equal to the tolerance is NOT equal. The boundary policy is deliberate
// and relied upon by callers; do not loosen it to ≤.
//
// Equal is reflexive and symmetric. It is NOT transitive: tolerance-based
// equality is not an equivalence relation, and callers must not chain it.
func Equal[E Element[E, P, T], P, T any](a, b E, opts ...Option) bool {
	o := gatherOptions(opts...)

	return a.DistanceTo(b) < o.tolerance
}

// NewGeodesic builds the geodesic from beg to end. Equivalent to the
// GeodesicTo convenience each concrete manifold exports.
func NewGeodesic[E Element[E, P, T], P, T any](beg, end E) Geodesic[E, P, T] {
	return Geodesic[E, P, T]{beg: beg, end: end}
}

// NewChart builds the local chart anchored at origin.
func NewChart[E Element[E, P, T], P, T any](origin E) Chart[E, P, T] {
	return Chart[E, P, T]{origin: origin}
}
