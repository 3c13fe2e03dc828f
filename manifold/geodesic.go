// File: geodesic.go
// Role: Named, immutable view over two endpoint elements.
// Determinism:
//   - Adds no numerical logic: Length and Interpolate delegate to the
//     endpoints' own implementation, so a geodesic can never disagree with
//     the elements it was built from.

package manifold

// Geodesic is the manifold's intrinsic shortest-path curve between two
// elements, parameterized by a fraction. It exclusively owns copies of both
// endpoints and is immutable: concurrent use needs no synchronization.
//
// Invariants, by construction:
//
//	Length()       == Beg().DistanceTo(End())
//	Interpolate(0) == Beg()  and  Interpolate(1) == End()  (up to tolerance)
type Geodesic[E Element[E, P, T], P, T any] struct {
	beg, end E
}

// Beg returns the geodesic's begin point.
func (g Geodesic[E, P, T]) Beg() E { return g.beg }

// End returns the geodesic's end point.
func (g Geodesic[E, P, T]) End() E { return g.end }

// Interpolate evaluates the curve at the provided fraction. Values in
// [0, 1] interpolate between the endpoints; values outside extrapolate
// along the same curve — the result continues past the endpoint rather
// than clamping to it.
func (g Geodesic[E, P, T]) Interpolate(fraction float64) E {
	return g.beg.Interpolate(g.end, fraction)
}

// Length returns the intrinsic length of the geodesic.
func (g Geodesic[E, P, T]) Length() float64 {
	return g.beg.DistanceTo(g.end)
}
