package sphere

import (
	"math"

	"github.com/katalvlaran/mana/linalg"
	"github.com/katalvlaran/mana/manifold"
)

// Manifold dimensions: the sphere surface is 2-dimensional, embedded in R³.
const (
	Dimension          = 2
	EmbeddingDimension = 3
)

const (
	// smallAngle is the arc length below which Exp switches to its
	// first-order form; sinθ/θ is 1 to machine precision there.
	smallAngle = 1e-8

	// degenerateSine is the magnitude below which the orthogonal component
	// in Log is considered gone: the target is the origin itself or its
	// antipode, and the axis convention takes over.
	degenerateSine = 1e-12
)

// Geodesic is the great-circle geodesic type over sphere points,
// instantiated from the generic core.
type Geodesic = manifold.Geodesic[Point, linalg.Vec3, linalg.Vec3]

// Chart is the local-chart type over sphere points, instantiated from the
// generic core.
type Chart = manifold.Chart[Point, linalg.Vec3, linalg.Vec3]

// Point is an element of S², embedded as a unit vector in R³. The zero
// value is NOT a valid point (it is the zero vector); construct via
// FromVector, Project, or manifold.FromPoint.
type Point struct {
	v linalg.Vec3
}

// FromVector constructs a Point directly from an embedding vector.
// Precondition: IsValid(v) holds — v must already have unit norm. No check
// is performed; use manifold.FromPoint for the checked build, or Project
// first.
func FromVector(v linalg.Vec3) Point {
	return Point{v: v}
}

// Project maps an arbitrary vector to the nearest point on the sphere by
// radial normalization. Idempotent. The zero vector has no nearest point;
// it maps to the +X pole by convention (deterministic, never an error).
func Project(v linalg.Vec3) linalg.Vec3 {
	if v.IsZero(0) {
		return linalg.UnitX()
	}

	return v.Unit()
}

// IsValid reports whether v lies on the unit sphere within tolerance:
// |‖v‖ − 1| ≤ tolerance. Never panics; NaN fails the predicate.
func IsValid(v linalg.Vec3, tolerance float64) bool {
	return math.Abs(v.Norm()-1) <= tolerance
}

// FromPoint implements the manifold contract's unchecked constructor.
func (Point) FromPoint(p linalg.Vec3) Point { return FromVector(p) }

// Project implements the manifold contract; see the package-level Project.
func (Point) Project(p linalg.Vec3) linalg.Vec3 { return Project(p) }

// IsValid implements the manifold contract; see the package-level IsValid.
func (Point) IsValid(p linalg.Vec3, tolerance float64) bool { return IsValid(p, tolerance) }

// Point returns the element's unit vector in the embedding space.
func (p Point) Point() linalg.Vec3 { return p.v }

// DistanceTo returns the great-circle distance to rhs: the angle between
// the two unit vectors, in radians. Always in [0, π].
func (p Point) DistanceTo(rhs Point) float64 {
	return math.Acos(clamp(p.v.Dot(rhs.v), -1, 1))
}

// Interpolate moves along the great circle from p toward rhs by fraction:
// Exp(fraction·Log(rhs)). fraction 0 returns p, fraction 1 returns rhs (up
// to tolerance); values outside [0, 1] continue along the same circle.
func (p Point) Interpolate(rhs Point, fraction float64) Point {
	return p.Exp(p.Log(rhs).Scale(fraction))
}

// Log is the logarithmic map at p: the tangent vector (orthogonal to p) of
// length DistanceTo(rhs) pointing along the great circle toward rhs.
// Log(p) is the zero vector. For rhs antipodal to p the direction is not
// unique; a fixed orthogonal axis of length π is returned (deterministic).
func (p Point) Log(rhs Point) linalg.Vec3 {
	c := clamp(p.v.Dot(rhs.v), -1, 1)
	theta := math.Acos(c)

	// Component of rhs orthogonal to p; its norm is sin θ.
	u := rhs.v.Sub(p.v.Scale(c))
	n := u.Norm()
	if n <= degenerateSine {
		if c > 0 {
			// rhs coincides with p.
			return linalg.Vec3{}
		}

		// Antipode: any direction works; pick the fixed convention.
		return orthogonalTo(p.v).Scale(theta)
	}

	return u.Scale(theta / n)
}

// Exp is the exponential map at p: walk the great circle from p in
// direction v for arc length ‖v‖:
//
//	cos(θ)·p + sin(θ)·v/‖v‖,  θ = ‖v‖
//
// Exp(zero) is p. The result is re-normalized, so tangent vectors with a
// small radial component (numerical drift) stay on the sphere. Bijective
// with Log for ‖v‖ < π.
func (p Point) Exp(v linalg.Vec3) Point {
	theta := v.Norm()
	if theta < smallAngle {
		return Point{v: p.v.Add(v).Unit()}
	}

	return Point{v: p.v.Scale(math.Cos(theta)).Add(v.Scale(math.Sin(theta) / theta)).Unit()}
}

// EqualTo reports whether the points are within tolerance of each other:
// DistanceTo(rhs) < tolerance, strict.
func (p Point) EqualTo(rhs Point, tolerance float64) bool {
	return p.DistanceTo(rhs) < tolerance
}

// GeodesicTo builds the great-circle geodesic from p to rhs.
func (p Point) GeodesicTo(rhs Point) Geodesic {
	return manifold.NewGeodesic[Point, linalg.Vec3, linalg.Vec3](p, rhs)
}

// LocalChart builds the chart anchored at p.
func (p Point) LocalChart() Chart {
	return manifold.NewChart[Point, linalg.Vec3, linalg.Vec3](p)
}

// TangentSpaceBasis returns an orthonormal basis of the tangent plane at
// p: two unit vectors orthogonal to p and to each other, chosen by the
// same fixed convention as the antipodal Log.
func (p Point) TangentSpaceBasis() [Dimension]linalg.Vec3 {
	e0 := orthogonalTo(p.v)

	return [Dimension]linalg.Vec3{e0, p.v.Cross(e0).Unit()}
}

// orthogonalTo returns a unit vector orthogonal to the unit vector v,
// deterministically: the cross product with the canonical axis v is least
// aligned with.
func orthogonalTo(v linalg.Vec3) linalg.Vec3 {
	pick := linalg.UnitX()
	if math.Abs(v.X) > math.Abs(v.Y) {
		pick = linalg.UnitY()
	}

	return v.Cross(pick).Unit()
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
