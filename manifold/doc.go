// Package manifold defines the generic contract for points on an
// extrinsically-represented differentiable manifold, plus the two value
// wrappers built from it: Geodesic and Chart.
//
// 🚀 What is the manifold contract?
//
//	A manifold here is a space that locally resembles a vector space but is
//	embedded in a larger ambient space: rotations as 3×3 matrices, sphere
//	points as unit 3-vectors. Each concrete manifold implements Element,
//	and everything else — equality, geodesics, charts, checked
//	construction — is derived generically:
//	  • Element  — FromPoint / Project / IsValid / Point / DistanceTo /
//	    Interpolate, plus the chart maps Exp and Log
//	  • Geodesic — the curve between two elements: Length, Interpolate
//	  • Chart    — the local manifold ⇄ tangent-space view at an origin
//
// ✨ Key properties (enforced by each concrete manifold's tests):
//   - Project is idempotent and always lands on the manifold
//   - DistanceTo is symmetric, non-negative, zero only at equal elements,
//     and satisfies the triangle inequality up to tolerance
//   - Interpolate(rhs, 0) == receiver, Interpolate(rhs, 1) == rhs;
//     fractions outside [0, 1] extrapolate along the same curve — never clamp
//   - Chart round-trips: ToManifold(ToTangent(e)) == e for e near the origin
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/mana/manifold"
//	  "github.com/katalvlaran/mana/so3"
//	)
//
//	a := so3.Identity()
//	b := so3.FromAxisAngle(linalg.UnitZ(), math.Pi/2)
//
//	geo := a.GeodesicTo(b)
//	mid := geo.Interpolate(0.5)        // 45° about Z
//	arc := geo.Length()                // π/2
//
//	chart := a.LocalChart()
//	v := chart.ToTangent(b)            // (0, 0, π/2)
//	back := chart.ToManifold(v)        // == b
//
// Dispatch is resolved at compile time: Element is a type-parameter
// constraint, not a runtime interface, so generic code over a concrete
// manifold carries no boxing or virtual-call overhead. Elements of
// different manifolds are distinct types and can never be compared or
// interpolated together — that class of misuse is a compile error, not a
// runtime check.
//
// A note on ==: Go's built-in equality compares embedding representations
// bit-for-bit, which is almost never what geometric code wants. Manifold
// equality is Equal (generic) or the concrete types' EqualTo: true iff the
// intrinsic distance is strictly below the tolerance.
//
// Everything in this package is an immutable value; there is no shared
// state and no locking. Concrete manifolds live in so3 and sphere.
package manifold
