// SPDX-License-Identifier: MIT

package so3_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mana/linalg"
	"github.com/katalvlaran/mana/manifold"
	"github.com/katalvlaran/mana/so3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rotTol is the tolerance for comparing rotations. The acos-based metric is
// ill-conditioned near 0 and π, so mathematically equal rotations can sit
// ~1e-8 apart; 1e-6 absorbs that with a wide margin.
const rotTol = 1e-6

// matTol is the tolerance for direct Frobenius-norm matrix comparison,
// which is well-conditioned.
const matTol = 1e-9

// validTol is the orthonormality tolerance for projected matrices.
const validTol = 1e-8

// perturbed returns a rotation matrix with a fixed non-orthogonal
// disturbance, for exercising Project.
func perturbed() linalg.Mat3 {
	m := so3.FromAxisAngle(linalg.V3(1, 2, -1), 0.8).Point()
	m.M[0][1] += 1e-3
	m.M[2][0] -= 2e-3
	m.M[1][1] += 5e-4

	return m
}

// TestProject_LandsOnManifold verifies Project produces a valid rotation
// for ordinary, scaled, reflected, and fully degenerate input.
func TestProject_LandsOnManifold(t *testing.T) {
	cases := map[string]linalg.Mat3{
		"already valid": so3.FromAxisAngle(linalg.UnitY(), 1.1).Point(),
		"perturbed":     perturbed(),
		"scaled":        so3.FromAxisAngle(linalg.UnitX(), 0.4).Point().Scale(2),
		"reflection":    linalg.FromRows(linalg.V3(1, 0, 0), linalg.V3(0, 1, 0), linalg.V3(0, 0, -1)),
		"zero matrix":   {},
	}

	for name, m := range cases {
		assert.True(t, so3.IsValid(so3.Project(m), validTol), "Project(%s) must land on SO(3)", name)
	}
}

// TestProject_Idempotent verifies Project(Project(p)) == Project(p).
func TestProject_Idempotent(t *testing.T) {
	for _, m := range []linalg.Mat3{perturbed(), linalg.Identity().Scale(3), {}} {
		once := so3.Project(m)
		twice := so3.Project(once)
		assert.True(t, once.EqualWithin(twice, matTol), "projection is idempotent")
	}
}

// TestProject_RecoversNearestRotation verifies the polar iteration strips a
// pure scaling: the nearest rotation to 2R is R itself.
func TestProject_RecoversNearestRotation(t *testing.T) {
	r := so3.FromAxisAngle(linalg.V3(0, 1, 1), 0.9)

	got := so3.Project(r.Point().Scale(2))
	assert.True(t, got.EqualWithin(r.Point(), matTol), "Project(2R) = R")
}

// TestIsValid covers the predicate's acceptance and rejection cases.
func TestIsValid(t *testing.T) {
	assert.True(t, so3.IsValid(linalg.Identity(), 0), "the identity is exactly valid")
	assert.False(t, so3.IsValid(linalg.Mat3{}, 0.1), "the zero matrix is not a rotation")

	reflection := linalg.FromRows(linalg.V3(1, 0, 0), linalg.V3(0, 1, 0), linalg.V3(0, 0, -1))
	assert.False(t, so3.IsValid(reflection, 0.1), "orthonormal but det=-1 is not a rotation")

	var nan linalg.Mat3
	nan.M[1][2] = math.NaN()
	assert.False(t, so3.IsValid(nan, 1), "NaN entries fail the predicate, no panic")
}

// TestDistance_Properties verifies symmetry, identity of indiscernibles (up
// to acos conditioning) and the triangle inequality on a fixed triple.
func TestDistance_Properties(t *testing.T) {
	a := so3.FromAxisAngle(linalg.UnitX(), 0.3)
	b := so3.FromAxisAngle(linalg.UnitY(), 0.7)
	c := so3.FromAxisAngle(linalg.UnitZ(), 1.2)

	assert.InDelta(t, a.DistanceTo(b), b.DistanceTo(a), 1e-12, "distance is symmetric")
	assert.InDelta(t, 0, a.DistanceTo(a), rotTol, "self-distance is zero")
	assert.GreaterOrEqual(t, a.DistanceTo(b), 0.0, "distance is non-negative")
	assert.LessOrEqual(t, a.DistanceTo(c), a.DistanceTo(b)+b.DistanceTo(c)+rotTol,
		"triangle inequality up to tolerance")
}

// TestInterpolate_Endpoints verifies the boundary fractions return the
// endpoints.
func TestInterpolate_Endpoints(t *testing.T) {
	a := so3.FromAxisAngle(linalg.V3(1, 1, 0), 0.6)
	b := so3.FromAxisAngle(linalg.V3(0, -1, 2), 1.4)

	assert.True(t, a.Interpolate(b, 0).EqualTo(a, rotTol), "fraction 0 returns the receiver")
	assert.True(t, a.Interpolate(b, 1).EqualTo(b, rotTol), "fraction 1 returns the argument")
}

// TestScenario_QuarterTurn is the end-to-end scenario: from the identity to
// a 90° turn about Z, the distance is π/2 and the geodesic midpoint is the
// 45° turn about the same axis.
func TestScenario_QuarterTurn(t *testing.T) {
	r1 := so3.Identity()
	r2 := so3.FromAxisAngle(linalg.UnitZ(), math.Pi/2)

	assert.InDelta(t, math.Pi/2, r1.DistanceTo(r2), 1e-9, "distance equals the rotation angle")

	mid := r1.Interpolate(r2, 0.5)
	assert.True(t, mid.EqualTo(so3.FromAxisAngle(linalg.UnitZ(), math.Pi/4), rotTol),
		"the midpoint is the 45° rotation about the same axis")

	geo := r1.GeodesicTo(r2)
	assert.Equal(t, r1.DistanceTo(r2), geo.Length(), "Length() == beg.DistanceTo(end), always")
	assert.True(t, geo.Interpolate(0).EqualTo(r1, rotTol), "geodesic start")
	assert.True(t, geo.Interpolate(1).EqualTo(r2, rotTol), "geodesic end")
}

// TestGeodesic_ExtrapolationPastEnd verifies fraction 2 continues the turn
// to 180° instead of clamping at 90°.
func TestGeodesic_ExtrapolationPastEnd(t *testing.T) {
	r1 := so3.Identity()
	r2 := so3.FromAxisAngle(linalg.UnitZ(), math.Pi/2)
	geo := r1.GeodesicTo(r2)

	far := geo.Interpolate(2)
	assert.True(t, far.EqualTo(so3.FromAxisAngle(linalg.UnitZ(), math.Pi), rotTol),
		"fraction 2 reaches the half-turn about the same axis")
	assert.Greater(t, far.DistanceTo(r2), 1.0, "the result moved well past the endpoint — no clamping")
}

// TestChart_OriginLaws verifies the chart anchor laws at a non-identity
// origin.
func TestChart_OriginLaws(t *testing.T) {
	origin := so3.FromAxisAngle(linalg.UnitX(), 0.4)
	chart := origin.LocalChart()

	assert.True(t, chart.ToTangent(origin).IsZero(1e-12), "ToTangent(origin) is the zero vector")
	assert.True(t, chart.ToManifold(linalg.Vec3{}).EqualTo(origin, rotTol), "ToManifold(zero) is the origin")
}

// TestChart_RoundTrip verifies both round-trip laws within the injectivity
// radius.
func TestChart_RoundTrip(t *testing.T) {
	chart := so3.FromAxisAngle(linalg.UnitX(), 0.4).LocalChart()

	// Tangent → manifold → tangent.
	v := linalg.V3(0.1, -0.2, 0.3)
	got := chart.ToTangent(chart.ToManifold(v))
	assert.InDelta(t, v.X, got.X, matTol, "round-trip preserves the tangent vector (X)")
	assert.InDelta(t, v.Y, got.Y, matTol, "round-trip preserves the tangent vector (Y)")
	assert.InDelta(t, v.Z, got.Z, matTol, "round-trip preserves the tangent vector (Z)")

	// Manifold → tangent → manifold.
	e := so3.FromAxisAngle(linalg.V3(2, 0, 1), 1.2)
	assert.True(t, chart.ToManifold(chart.ToTangent(e)).EqualTo(e, rotTol),
		"round-trip preserves the element")
}

// TestLog_HalfTurnDeterministic pins the degenerate-geodesic policy: the
// logarithm at a half-turn is defined, repeatable, of norm π, and inverts
// through Exp.
func TestLog_HalfTurnDeterministic(t *testing.T) {
	id := so3.Identity()
	half := so3.FromAxisAngle(linalg.UnitZ(), math.Pi)

	v1 := id.Log(half)
	v2 := id.Log(half)
	assert.Equal(t, v1, v2, "the half-turn logarithm is deterministic")
	assert.InDelta(t, math.Pi, v1.Norm(), 1e-9, "the half-turn logarithm has norm π")
	assert.InDelta(t, math.Pi, math.Abs(v1.Z), 1e-9, "the recovered axis is ±Z")
	assert.True(t, id.Exp(v1).EqualTo(half, rotTol), "Exp inverts the half-turn logarithm")
}

// TestEqualTo_Strict pins the strict-< boundary on the rotation metric.
func TestEqualTo_Strict(t *testing.T) {
	a := so3.Identity()
	b := so3.FromAxisAngle(linalg.UnitZ(), 0.5)
	d := a.DistanceTo(b)

	assert.False(t, a.EqualTo(b, d), "distance == tolerance must NOT be equal")
	assert.True(t, a.EqualTo(b, d+1e-12), "distance just under tolerance is equal")
}

// TestGroupOperations spot-checks Apply, Compose and Inverse against known
// geometry.
func TestGroupOperations(t *testing.T) {
	quarter := so3.FromAxisAngle(linalg.UnitZ(), math.Pi/2)

	assert.True(t, quarter.Apply(linalg.UnitX()).EqualWithin(linalg.UnitY(), 1e-12),
		"a quarter-turn about Z takes X to Y")
	assert.True(t, quarter.Compose(quarter.Inverse()).EqualTo(so3.Identity(), rotTol),
		"R∘R⁻¹ is the identity")
	assert.InDelta(t, quarter.DistanceTo(so3.Identity()), quarter.Inverse().DistanceTo(so3.Identity()), 1e-12,
		"inversion preserves the distance to the identity")
}

// TestFromAxisAngle_ZeroAxis verifies the documented zero-axis convention.
func TestFromAxisAngle_ZeroAxis(t *testing.T) {
	assert.True(t, so3.FromAxisAngle(linalg.Vec3{}, 1.3).EqualTo(so3.Identity(), rotTol),
		"the zero axis yields the identity")
}

// TestTangentSpaceBasis verifies the body-frame basis is the canonical
// orthonormal one.
func TestTangentSpaceBasis(t *testing.T) {
	basis := so3.FromAxisAngle(linalg.UnitY(), 0.8).TangentSpaceBasis()

	require.Len(t, basis, so3.Dimension)
	for i, e := range basis {
		assert.InDelta(t, 1, e.Norm(), 1e-12, "basis vector %d is unit", i)
		for j := i + 1; j < len(basis); j++ {
			assert.InDelta(t, 0, e.Dot(basis[j]), 1e-12, "basis vectors %d and %d are orthogonal", i, j)
		}
	}
}

// TestCheckedConstruction exercises the generic checked facade against this
// concrete manifold.
func TestCheckedConstruction(t *testing.T) {
	r, err := manifold.FromPoint[so3.Rotation, linalg.Mat3, linalg.Vec3](linalg.Identity())
	require.NoError(t, err, "the identity matrix lies on SO(3)")
	assert.True(t, r.EqualTo(so3.Identity(), rotTol))

	_, err = manifold.FromPoint[so3.Rotation, linalg.Mat3, linalg.Vec3](linalg.Identity().Scale(2))
	assert.ErrorIs(t, err, manifold.ErrInvalidPoint, "a scaled identity is off the manifold")
}
