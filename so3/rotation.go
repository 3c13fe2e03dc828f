// SPDX-License-Identifier: MIT
// Package so3: the Rotation element type and its manifold contract.
//
// Purpose:
//   - Realize the manifold.Element contract for SO(3): construction,
//     projection, validity, distance, geodesic interpolation, chart maps.
//   - Keep every operation pure and value-semantic: a Rotation is never
//     mutated, all operations return new values.

package so3

import (
	"math"

	"github.com/katalvlaran/mana/linalg"
	"github.com/katalvlaran/mana/manifold"
)

// Manifold dimensions. The group is 3-dimensional; its embedding space is
// the 9-dimensional space of 3×3 matrices.
const (
	Dimension          = 3
	EmbeddingDimension = 9
)

const (
	// maxPolarIterations bounds the Newton polar iteration in Project. The
	// iteration converges quadratically; well-conditioned inputs settle in
	// under ten steps, and the cap only guards pathological input.
	maxPolarIterations = 32

	// polarConvergence is the Frobenius-norm step size below which the
	// polar iteration is considered converged.
	polarConvergence = 1e-12
)

// Geodesic is the geodesic type over rotations, instantiated from the
// generic core.
type Geodesic = manifold.Geodesic[Rotation, linalg.Mat3, linalg.Vec3]

// Chart is the local-chart type over rotations, instantiated from the
// generic core.
type Chart = manifold.Chart[Rotation, linalg.Mat3, linalg.Vec3]

// Rotation is an element of SO(3), embedded as a 3×3 rotation matrix.
// The zero value is NOT a valid rotation (it is the zero matrix); construct
// via Identity, FromMatrix, FromAxisAngle, or manifold.FromPoint.
type Rotation struct {
	m linalg.Mat3
}

// Identity returns the identity rotation.
func Identity() Rotation {
	return Rotation{m: linalg.Identity()}
}

// FromMatrix constructs a Rotation directly from a 3×3 matrix.
// Precondition: IsValid(m) holds — m must already be a rotation matrix.
// Violating the precondition is a programming error: no check is performed
// and later operations on the result are unspecified (but deterministic).
// Use manifold.FromPoint for the checked build, or Project first.
func FromMatrix(m linalg.Mat3) Rotation {
	return Rotation{m: m}
}

// FromAxisAngle returns the rotation by angle (radians) about axis. The
// axis is normalized internally; the zero axis yields the identity.
func FromAxisAngle(axis linalg.Vec3, angle float64) Rotation {
	return Rotation{m: expm(axis.Unit().Scale(angle))}
}

// Project maps an arbitrary 3×3 matrix to the nearest rotation matrix in
// the Frobenius norm — the orthogonal polar factor, computed by the Newton
// iteration X ← (X + X⁻ᵀ)/2, with the determinant sign corrected to +1.
// Idempotent: a matrix already in SO(3) is a fixed point of the iteration
// and is returned unchanged.
//
// Degenerate input (singular, including the zero matrix) has no nearest
// rotation in the polar sense; the columns are then orthonormalized by
// Gram–Schmidt with fixed fallback axes, which is deterministic. A
// reflection input (det < 0) converges to an orthogonal factor with
// det = −1; the third column is negated, again deterministically.
func Project(m linalg.Mat3) linalg.Mat3 {
	x := m
	for i := 0; i < maxPolarIterations; i++ {
		inv, ok := x.Inverse()
		if !ok {
			x = orthonormalize(m)

			break
		}

		next := x.Add(inv.Transpose()).Scale(0.5)
		if next.Sub(x).FrobeniusNorm() <= polarConvergence {
			x = next

			break
		}
		x = next
	}

	if x.Det() < 0 {
		x = linalg.FromCols(x.Col(0), x.Col(1), x.Col(2).Neg())
	}

	return x
}

// orthonormalize is the rank-deficient fallback for Project: Gram–Schmidt
// over the columns with fixed substitute axes for degenerate directions.
// The third column is rebuilt as a cross product, forcing det = +1.
func orthonormalize(m linalg.Mat3) linalg.Mat3 {
	c0 := m.Col(0).Unit()
	if c0.IsZero(0) {
		c0 = linalg.UnitX()
	}

	c1 := m.Col(1).Sub(c0.Scale(c0.Dot(m.Col(1))))
	if n := c1.Norm(); n > 0 {
		c1 = c1.Scale(1 / n)
	} else {
		// Column 1 was parallel to column 0 (or zero): pick any direction
		// orthogonal to c0, preferring the axis c0 is least aligned with.
		pick := linalg.UnitX()
		if math.Abs(c0.X) > math.Abs(c0.Y) {
			pick = linalg.UnitY()
		}
		c1 = c0.Cross(pick).Unit()
	}

	return linalg.FromCols(c0, c1, c0.Cross(c1))
}

// IsValid reports whether m is a rotation matrix within tolerance:
// ‖mᵀm − I‖_F ≤ tolerance and |det(m) − 1| ≤ tolerance.
// Never panics; NaN entries simply fail the predicate.
func IsValid(m linalg.Mat3, tolerance float64) bool {
	orth := m.Transpose().Mul(m).Sub(linalg.Identity()).FrobeniusNorm() <= tolerance

	return orth && math.Abs(m.Det()-1) <= tolerance
}

// FromPoint implements the manifold contract's unchecked constructor.
// It must not read the receiver; see FromMatrix for the precondition.
func (Rotation) FromPoint(p linalg.Mat3) Rotation { return FromMatrix(p) }

// Project implements the manifold contract; see the package-level Project.
func (Rotation) Project(p linalg.Mat3) linalg.Mat3 { return Project(p) }

// IsValid implements the manifold contract; see the package-level IsValid.
func (Rotation) IsValid(p linalg.Mat3, tolerance float64) bool { return IsValid(p, tolerance) }

// Point returns the rotation's 3×3 matrix in the embedding space.
func (r Rotation) Point() linalg.Mat3 { return r.m }

// Apply rotates a vector: r.Apply(v) = R·v.
func (r Rotation) Apply(v linalg.Vec3) linalg.Vec3 { return r.m.MulVec(v) }

// Inverse returns the inverse rotation, Rᵀ.
func (r Rotation) Inverse() Rotation { return Rotation{m: r.m.Transpose()} }

// Compose returns the composition r∘s: first rotate by s, then by r.
func (r Rotation) Compose(s Rotation) Rotation { return Rotation{m: r.m.Mul(s.m)} }

// DistanceTo returns the geodesic distance to rhs: the angle, in radians,
// of the relative rotation rᵀ·rhs. Symmetric, non-negative, zero exactly
// at equal rotations; always in [0, π].
func (r Rotation) DistanceTo(rhs Rotation) float64 {
	rel := r.m.Transpose().Mul(rhs.m)

	return math.Acos(clamp((rel.Trace()-1)/2, -1, 1))
}

// Interpolate moves along the geodesic from r to rhs:
//
//	r · exp(fraction · log(rᵀ·rhs))
//
// fraction 0 returns r, fraction 1 returns rhs (up to tolerance); values
// outside [0, 1] extrapolate — the motion continues about the same axis
// past the endpoint rather than stopping at it.
func (r Rotation) Interpolate(rhs Rotation, fraction float64) Rotation {
	return r.Exp(r.Log(rhs).Scale(fraction))
}

// Log is the logarithmic map at r: the body-frame tangent vector (axis ×
// angle) carrying r to rhs, i.e. log(rᵀ·rhs). Log(r) is the zero vector.
// At a half-turn the axis sign follows the deterministic convention in
// logm; the result is always defined.
func (r Rotation) Log(rhs Rotation) linalg.Vec3 {
	return logm(r.m.Transpose().Mul(rhs.m))
}

// Exp is the exponential map at r: follow the geodesic from r along the
// body-frame tangent vector v for unit time, i.e. r·exp(hat(v)).
// Exp(zero) is r. Bijective with Log for ‖v‖ < π (the injectivity radius).
func (r Rotation) Exp(v linalg.Vec3) Rotation {
	return Rotation{m: r.m.Mul(expm(v))}
}

// EqualTo reports whether the rotations are within tolerance of each
// other: DistanceTo(rhs) < tolerance, strict. See the package doc for why
// rotation comparisons want tolerances around 1e-6 rather than machine
// epsilon.
func (r Rotation) EqualTo(rhs Rotation, tolerance float64) bool {
	return r.DistanceTo(rhs) < tolerance
}

// GeodesicTo builds the geodesic from r to rhs.
func (r Rotation) GeodesicTo(rhs Rotation) Geodesic {
	return manifold.NewGeodesic[Rotation, linalg.Mat3, linalg.Vec3](r, rhs)
}

// LocalChart builds the chart anchored at r.
func (r Rotation) LocalChart() Chart {
	return manifold.NewChart[Rotation, linalg.Mat3, linalg.Vec3](r)
}

// TangentSpaceBasis returns an orthonormal basis of the tangent space at r
// in body-frame coordinates. In the body frame the tangent space at every
// rotation is the same copy of R³, so the basis is the canonical one.
func (r Rotation) TangentSpaceBasis() [Dimension]linalg.Vec3 {
	return [Dimension]linalg.Vec3{linalg.UnitX(), linalg.UnitY(), linalg.UnitZ()}
}
