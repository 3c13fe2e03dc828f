// SPDX-License-Identifier: MIT
// Package linalg: fixed-size 3-vector value type.
//
// Purpose:
//   - Provide the tangent-vector and embedding-vector representation used by
//     the manifold packages (so3 tangent vectors, sphere points).
//   - All operations are pure: the receiver is never mutated, results are
//     returned by value.

package linalg

import "math"

// Vec3 is a vector in R³. The zero value is the zero vector and is ready to
// use. Vec3 is comparable with ==, but numeric code should prefer
// EqualWithin to avoid bit-exact comparisons of computed values.
type Vec3 struct {
	X, Y, Z float64
}

// V3 constructs a Vec3 from its three components.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Canonical axis vectors. Returned by value; callers cannot alias them.
func UnitX() Vec3 { return Vec3{X: 1} }
func UnitY() Vec3 { return Vec3{Y: 1} }
func UnitZ() Vec3 { return Vec3{Z: 1} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns −v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar product v · w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the vector product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// NormSq returns the squared Euclidean norm ‖v‖². Cheaper than Norm when
// only comparisons are needed.
func (v Vec3) NormSq() float64 { return v.Dot(v) }

// Norm returns the Euclidean norm ‖v‖.
func (v Vec3) Norm() float64 { return math.Sqrt(v.NormSq()) }

// Unit returns v/‖v‖. The zero vector is returned unchanged: callers that
// can encounter it must handle that case explicitly (see sphere.Project for
// the documented convention).
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return v.Scale(1 / n)
}

// IsZero reports whether every component's magnitude is at most tolerance.
func (v Vec3) IsZero(tolerance float64) bool {
	return math.Abs(v.X) <= tolerance && math.Abs(v.Y) <= tolerance && math.Abs(v.Z) <= tolerance
}

// EqualWithin reports whether ‖v − w‖ ≤ tolerance.
func (v Vec3) EqualWithin(w Vec3, tolerance float64) bool {
	return v.Sub(w).Norm() <= tolerance
}
