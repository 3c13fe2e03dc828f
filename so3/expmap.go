// SPDX-License-Identifier: MIT
// Package so3: exponential and logarithmic maps on SO(3).
//
// Purpose:
//   - Provide the closed-form Rodrigues exponential and the trace-based
//     matrix logarithm that back Rotation.Exp / Rotation.Log and, through
//     them, every chart built on this manifold.
//
// Regimes (all deterministic, none fail):
//   - θ below smallAngle      — truncated Taylor series; the generic
//     formulas divide by θ or sin θ and would lose precision.
//   - generic                 — Rodrigues / vee(R−Rᵀ)·θ/(2·sinθ).
//   - θ within nearPiBand of π — sin θ is too small to carry the axis;
//     recover it from the symmetric part (R+I)/2 ≈ aaᵀ instead.

package so3

import (
	"math"

	"github.com/katalvlaran/mana/linalg"
)

const (
	// smallAngle is the rotation angle below which the series expansions of
	// sinθ/θ and (1−cosθ)/θ² replace the direct formulas.
	smallAngle = 1e-8

	// nearPiBand is the distance from π below which the logarithm switches
	// to symmetric-part axis recovery. Inside the generic branch sinθ stays
	// ≥ sin(π−nearPiBand) ≈ nearPiBand, keeping rounding amplification well
	// under the package's accuracy targets.
	nearPiBand = 1e-6
)

// hat maps an axis-angle vector to its skew-symmetric matrix:
// hat(v)·w == v × w for all w.
func hat(v linalg.Vec3) linalg.Mat3 {
	return linalg.Mat3{M: [3][3]float64{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}}
}

// vee reads the skew part of a matrix as a vector: vee(m) == v where
// hat(v) = m − mᵀ. In particular vee(hat(w)) = 2w, and for a rotation R by
// angle θ about unit axis a, vee(R) = 2·sinθ·a — the quantity both
// logarithm branches rescale.
func vee(m linalg.Mat3) linalg.Vec3 {
	return linalg.Vec3{
		X: m.M[2][1] - m.M[1][2],
		Y: m.M[0][2] - m.M[2][0],
		Z: m.M[1][0] - m.M[0][1],
	}
}

// expm is the exponential map at the identity: the rotation by angle ‖v‖
// about axis v/‖v‖, via the Rodrigues formula
//
//	R = I + A·K + B·K²,  K = hat(v),  A = sinθ/θ,  B = (1−cosθ)/θ².
func expm(v linalg.Vec3) linalg.Mat3 {
	theta := v.Norm()

	var a, b float64
	if theta < smallAngle {
		// Series: sinθ/θ = 1 − θ²/6 + …, (1−cosθ)/θ² = 1/2 − θ²/24 + …
		t2 := theta * theta
		a = 1 - t2/6
		b = 0.5 - t2/24
	} else {
		a = math.Sin(theta) / theta
		b = (1 - math.Cos(theta)) / (theta * theta)
	}

	k := hat(v)

	return linalg.Identity().Add(k.Scale(a)).Add(k.Mul(k).Scale(b))
}

// logm is the logarithmic map at the identity: the axis-angle vector v with
// expm(v) == r, for r ∈ SO(3). The angle is recovered from the trace, the
// axis from the skew part — or, within nearPiBand of a half-turn, from the
// symmetric part, where the axis satisfies aaᵀ ≈ (R+I)/2.
//
// Half-turn convention (deterministic): the axis component with the largest
// diagonal entry of (R+I)/2 is taken non-negative; when the skew part still
// carries a usable sign, it wins.
func logm(r linalg.Mat3) linalg.Vec3 {
	// cosθ = (trace − 1)/2, clamped against rounding drift outside [−1, 1].
	c := clamp((r.Trace()-1)/2, -1, 1)
	theta := math.Acos(c)

	if theta < smallAngle {
		// θ/(2·sinθ) = 1/2·(1 + θ²/6 + …)
		return vee(r).Scale(0.5 * (1 + theta*theta/6))
	}

	if math.Pi-theta > nearPiBand {
		return vee(r).Scale(theta / (2 * math.Sin(theta)))
	}

	// Near π: (R+I)/2 ≈ aaᵀ. Use the column with the largest diagonal entry
	// (at least one is ≥ 1/3, so the division below is safe).
	s := r.Add(linalg.Identity()).Scale(0.5)
	k := 0
	if s.M[1][1] > s.M[k][k] {
		k = 1
	}
	if s.M[2][2] > s.M[k][k] {
		k = 2
	}
	axis := s.Col(k).Scale(1 / math.Sqrt(s.M[k][k])).Unit()

	// The skew part is ∝ 2·sinθ·a: tiny here, but its sign is still exact
	// when nonzero. Fall back to the a[k] ≥ 0 convention at exactly π.
	if skew := vee(r); skew.Dot(axis) < 0 {
		axis = axis.Neg()
	}

	return axis.Scale(theta)
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
