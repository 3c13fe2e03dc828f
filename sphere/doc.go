// Package sphere implements the unit 2-sphere S² as a concrete manifold:
// elements are points on the sphere, embedded as unit vectors in R³, with
// tangent vectors living in the plane orthogonal to the point.
//
// 🚀 What does sphere provide?
//
//	The full manifold contract plus the chart maps:
//	  • Project — radial normalization (the nearest sphere point)
//	  • DistanceTo — the great-circle arc length, in radians
//	  • Interpolate — spherical linear interpolation along the great
//	    circle; fractions outside [0, 1] continue the arc (extrapolation)
//	  • Exp / Log — the standard sphere maps: Exp follows the great circle
//	    from the origin along a tangent vector, Log inverts it
//
// ⚙️ Usage:
//
//	p := sphere.FromVector(linalg.UnitX())
//	q := sphere.FromVector(linalg.UnitY())
//
//	p.DistanceTo(q)           // π/2
//	p.Interpolate(q, 0.5)     // (√2/2, √2/2, 0)
//	p.GeodesicTo(q).Interpolate(2.0) // (−1, 0, 0): the arc continued
//
// Degeneracies, resolved deterministically (never an error):
//   - Project of the zero vector has no nearest point; it returns the +X
//     pole by convention.
//   - The geodesic between antipodal points is not unique; Log picks a
//     fixed orthogonal direction (see orthogonalTo) of length π.
//
// As with every acos-based metric, distances between mathematically equal
// points can come out around 1e-8; compare with tolerances near 1e-6.
package sphere
