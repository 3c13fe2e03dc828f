// SPDX-License-Identifier: MIT

// Package linalg provides the fixed-size linear-algebra value types that the
// concrete manifolds build on: a 3-vector (Vec3) and a 3×3 matrix (Mat3).
//
// Purpose:
//   - Declare the canonical small-dimension kernels (dot, cross, norm,
//     multiply, transpose, trace, determinant, inverse, Frobenius norm)
//     used across the so3 and sphere packages.
//   - Keep every operation pure, deterministic and allocation-free: both
//     types are plain value types, every method returns a new value.
//
// Numeric policy:
//   - No NaN/Inf policing here. The manifold layer validates where its
//     contract requires it (IsValid, checked construction); these kernels
//     compute exactly what they are asked to.
//   - Tolerance-based comparisons (EqualWithin) take the tolerance
//     explicitly; there is no package-level epsilon state.
//
// Determinism & Performance:
//   - All methods are straight-line arithmetic on fixed-size arrays:
//     O(1) time, zero heap allocations, no iteration-order ambiguity.
//
// See so3 and sphere for the manifolds these kernels serve.
package linalg
