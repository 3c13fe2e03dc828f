// SPDX-License-Identifier: MIT

// Package so3 implements the 3D rotation group SO(3) as a concrete
// manifold: elements are rotations, embedded as 3×3 matrices
// {R | RᵀR = I, det(R) = +1}, with tangent vectors in R³ (axis × angle,
// body frame).
//
// 🚀 What does so3 provide?
//
//	The full manifold contract plus the chart maps:
//	  • Project — nearest rotation by Frobenius norm (Newton polar iteration)
//	  • DistanceTo — the rotation angle of R₁ᵀR₂, in radians
//	  • Interpolate — geodesic slerp R₁·exp(f·log(R₁ᵀR₂)); fractions outside
//	    [0, 1] continue the same screw motion (extrapolation, never clamping)
//	  • Exp / Log — Rodrigues closed form and trace-based matrix logarithm,
//	    with dedicated small-angle and near-π regimes
//
// ⚙️ Usage:
//
//	a := so3.Identity()
//	b := so3.FromAxisAngle(linalg.UnitZ(), math.Pi/2)
//
//	b.DistanceTo(a)            // π/2
//	a.Interpolate(b, 0.5)      // 45° about Z
//	a.GeodesicTo(b).Length()   // π/2
//
// Degeneracies: at a half-turn (angle π) the rotation axis is only defined
// up to sign, so the geodesic to the antipode is not unique. Log resolves
// this deterministically (largest-diagonal axis recovery with a fixed sign
// convention) and never fails; see logm for the exact rule.
//
// Numerical note: DistanceTo goes through acos, which is ill-conditioned
// near 0 and π — distances between mathematically equal rotations can come
// out around 1e-8. Pick equality tolerances accordingly (1e-6 is a safe
// default for rotation comparison).
package so3
