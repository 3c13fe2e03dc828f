// File: chart.go
// Role: Local linear (tangent-space) view of the manifold at an origin.
// Determinism:
//   - The actual exp/log math lives on the concrete element (Element.Exp,
//     Element.Log); the chart only fixes the origin. A chart therefore can
//     never disagree with the manifold it charts.

package manifold

// Chart is a local diffeomorphism between a neighborhood of its origin on
// the manifold and the tangent space at that origin — an ordinary vector
// space in which linear operations (averaging, perturbation, optimization
// steps) become expressible. It exclusively owns a copy of the origin and
// is immutable.
//
// Laws, inherited from the origin's Exp/Log implementation:
//
//	ToTangent(origin)    == zero tangent vector
//	ToManifold(zero)     == origin
//	ToManifold(ToTangent(e)) == e   for e within the chart's validity
//	                                 neighborhood (below the manifold's
//	                                 injectivity radius)
//
// Charts are inherently local: outside the validity neighborhood the maps
// remain deterministic but are not required to round-trip.
type Chart[E Element[E, P, T], P, T any] struct {
	origin E
}

// Origin returns the element the chart is anchored at. The zero tangent
// vector maps to this element.
func (c Chart[E, P, T]) Origin() E { return c.origin }

// ToTangent is the chart's forward (logarithmic) map: the tangent vector v
// such that following the geodesic from the origin in direction v for unit
// time reaches e.
func (c Chart[E, P, T]) ToTangent(e E) T {
	return c.origin.Log(e)
}

// ToManifold is the chart's reverse (exponential) map: the element reached
// by following the geodesic from the origin along v. Inverse of ToTangent
// for vectors within the chart's validity radius.
func (c Chart[E, P, T]) ToManifold(v T) E {
	return c.origin.Exp(v)
}
