// Package manifold declares the Element contract that every concrete
// manifold satisfies, and the dimension conventions shared by all of them.
//
// This file declares the Element constraint and documents the laws each
// implementation must uphold. The laws are verified per concrete manifold
// in that manifold's own test suite.
package manifold

// Element is the contract for a point on a differentiable manifold,
// expressed as a generic type constraint. The three parameters are:
//
//   - E — the concrete element type itself (self-referential bound, so that
//     operations stay closed over one manifold: elements of different
//     manifolds can never meet at compile time);
//   - P — the embedding-point type, a value in the ambient space the
//     manifold is represented within (e.g. linalg.Mat3 for rotations,
//     linalg.Vec3 for sphere points);
//   - T — the tangent-vector type, an ordinary fixed-dimension vector.
//
// Laws. Every implementation must guarantee:
//
//   - Project(p) lies on the manifold for every p, and is idempotent:
//     Project(Project(p)) == Project(p).
//   - IsValid never panics; it is an advisory predicate.
//   - DistanceTo is symmetric, non-negative, zero exactly at equal
//     elements, and satisfies the triangle inequality up to tolerance.
//   - Interpolate(rhs, 0) equals the receiver and Interpolate(rhs, 1)
//     equals rhs (up to tolerance); fractions outside [0, 1] extrapolate
//     along the analytic continuation of the same geodesic — they must not
//     clamp.
//   - Exp(zero tangent) equals the receiver; Log(receiver) is the zero
//     tangent; Exp∘Log and Log∘Exp round-trip for arguments within the
//     manifold's injectivity radius. Outside that neighborhood the maps
//     remain deterministic but are not required to round-trip.
//
// FromPoint, Project and IsValid are constructor-shaped: they must not
// read the receiver, so generic code may call them on any value of E,
// including the zero value.
type Element[E, P, T any] interface {
	// FromPoint constructs an element directly from a point in the
	// embedding space. Precondition: IsValid(p) holds — the caller asserts
	// the point already lies on the manifold. Violating the precondition
	// is a programming error with an unspecified (but deterministic)
	// result; use the package-level FromPoint for the checked build.
	FromPoint(p P) E

	// Project maps an arbitrary ambient point to the nearest point on the
	// manifold under the manifold's metric. Idempotent.
	Project(p P) P

	// IsValid reports whether p lies on the manifold within tolerance.
	IsValid(p P, tolerance float64) bool

	// Point returns the element's representation in the embedding space.
	Point() P

	// DistanceTo returns the intrinsic (geodesic) distance to rhs.
	DistanceTo(rhs E) float64

	// Interpolate moves along the geodesic from the receiver to rhs.
	// fraction in [0, 1] interpolates; values outside extrapolate.
	Interpolate(rhs E, fraction float64) E

	// Log is the logarithmic map at the receiver: the tangent vector v
	// such that Exp(v) == rhs. Log(receiver) is the zero tangent.
	Log(rhs E) T

	// Exp is the exponential map at the receiver: follow the geodesic in
	// direction v for unit time. Exp(zero) equals the receiver.
	Exp(v T) E
}
