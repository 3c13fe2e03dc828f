// Package mana is a small, generic toolkit for differentiable manifolds
// represented extrinsically — points live in an ambient vector space, and
// each concrete manifold knows how to project onto itself, measure along
// itself, and interpolate within it.
//
// 🚀 What is mana?
//
//	A modern, zero-dependency library that lets geometric algorithms
//	(averaging, interpolation, distance computation, optimization steps)
//	be written once against a manifold contract and reused across spaces:
//		• Element contract: construction, projection, validity, distance,
//		  geodesic interpolation — generic over the concrete manifold
//		• Chart: local manifold ⇄ tangent-space maps (exp/log)
//		• Geodesic: a named, immutable view over two endpoint elements
//
// ✨ Why choose mana?
//
//   - Value semantics – every element, chart and geodesic is immutable;
//     concurrent reads are safe by construction, no locks anywhere
//   - Compile-time dispatch – concrete manifolds bind to the contract via
//     type parameters, not runtime interfaces
//   - Pure Go – no cgo, no hidden deps
//   - Real chart maps – Rodrigues exponential and matrix logarithm for
//     rotations, great-circle maps for the sphere; no stubs
//
// Everything is organized under four subpackages:
//
//	manifold/ — the generic core: Element contract, Chart, Geodesic, options
//	linalg/   — fixed-size Vec3 / Mat3 value kernels the manifolds build on
//	so3/      — the 3D rotation group, embedded as 3×3 matrices
//	sphere/   — the unit 2-sphere, embedded as unit 3-vectors
//
// Quick ASCII example:
//
//	       v = Log(q)
//	   p ----------→ ·        tangent plane at p
//	    \            |
//	     \           ↓  Exp
//	      `~~~~~~~~~ q        geodesic on the manifold
//
// Dive into each package's doc.go for full examples and the laws every
// concrete manifold must satisfy.
//
//	go get github.com/katalvlaran/mana
package mana
