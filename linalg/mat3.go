// SPDX-License-Identifier: MIT
// Package linalg: fixed-size 3×3 matrix value type.
//
// Purpose:
//   - Provide the embedding-point representation for matrix manifolds (so3)
//     and the shared dense kernels: multiply, transpose, trace, determinant,
//     inverse, Frobenius norm.
//   - Row-major storage in a fixed array; every method returns a new value.
//
// Notes:
//   - Inverse reports singularity through its second return value instead of
//     an error: at this layer a zero pivot is ordinary data, not a contract
//     violation. The manifold layer decides what a singular input means.

package linalg

import "math"

// detZero is the exact-zero determinant guard for Inverse. Kept as a named
// constant so the "singular" cutoff is intentional and grep-friendly.
const detZero = 0.0

// Mat3 is a 3×3 matrix in row-major order: M[r][c] is row r, column c.
// The zero value is the zero matrix and is ready to use.
type Mat3 struct {
	M [3][3]float64
}

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// FromRows constructs a Mat3 from three row vectors.
func FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{M: [3][3]float64{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}}
}

// FromCols constructs a Mat3 from three column vectors.
func FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{M: [3][3]float64{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}}
}

// Col returns column c as a vector. Columns outside 0..2 are a programmer
// error and panic via the array index.
func (m Mat3) Col(c int) Vec3 {
	return Vec3{X: m.M[0][c], Y: m.M[1][c], Z: m.M[2][c]}
}

// Row returns row r as a vector.
func (m Mat3) Row(r int) Vec3 {
	return Vec3{X: m.M[r][0], Y: m.M[r][1], Z: m.M[r][2]}
}

// Add returns m + n element-wise.
func (m Mat3) Add(n Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[r][c] = m.M[r][c] + n.M[r][c]
		}
	}

	return out
}

// Sub returns m − n element-wise.
func (m Mat3) Sub(n Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[r][c] = m.M[r][c] - n.M[r][c]
		}
	}

	return out
}

// Scale returns m with every entry multiplied by s.
func (m Mat3) Scale(s float64) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[r][c] = m.M[r][c] * s
		}
	}

	return out
}

// Mul returns the matrix product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[r][c] = m.M[r][0]*n.M[0][c] + m.M[r][1]*n.M[1][c] + m.M[r][2]*n.M[2][c]
		}
	}

	return out
}

// MulVec returns the matrix-vector product m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.M[r][c] = m.M[c][r]
		}
	}

	return out
}

// Trace returns the sum of the diagonal entries.
func (m Mat3) Trace() float64 {
	return m.M[0][0] + m.M[1][1] + m.M[2][2]
}

// Det returns the determinant, expanded along the first row.
func (m Mat3) Det() float64 {
	return m.M[0][0]*(m.M[1][1]*m.M[2][2]-m.M[1][2]*m.M[2][1]) -
		m.M[0][1]*(m.M[1][0]*m.M[2][2]-m.M[1][2]*m.M[2][0]) +
		m.M[0][2]*(m.M[1][0]*m.M[2][1]-m.M[1][1]*m.M[2][0])
}

// Inverse returns m⁻¹ via the adjugate. The second return value reports
// whether the inverse exists; when it is false the returned matrix is the
// zero matrix and must not be used.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Det()
	if det == detZero {
		return Mat3{}, false
	}

	inv := 1 / det
	var out Mat3
	out.M[0][0] = (m.M[1][1]*m.M[2][2] - m.M[1][2]*m.M[2][1]) * inv
	out.M[0][1] = (m.M[0][2]*m.M[2][1] - m.M[0][1]*m.M[2][2]) * inv
	out.M[0][2] = (m.M[0][1]*m.M[1][2] - m.M[0][2]*m.M[1][1]) * inv
	out.M[1][0] = (m.M[1][2]*m.M[2][0] - m.M[1][0]*m.M[2][2]) * inv
	out.M[1][1] = (m.M[0][0]*m.M[2][2] - m.M[0][2]*m.M[2][0]) * inv
	out.M[1][2] = (m.M[0][2]*m.M[1][0] - m.M[0][0]*m.M[1][2]) * inv
	out.M[2][0] = (m.M[1][0]*m.M[2][1] - m.M[1][1]*m.M[2][0]) * inv
	out.M[2][1] = (m.M[0][1]*m.M[2][0] - m.M[0][0]*m.M[2][1]) * inv
	out.M[2][2] = (m.M[0][0]*m.M[1][1] - m.M[0][1]*m.M[1][0]) * inv

	return out, true
}

// FrobeniusNorm returns √(Σ m[r][c]²), the entry-wise Euclidean norm.
func (m Mat3) FrobeniusNorm() float64 {
	sum := 0.0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum += m.M[r][c] * m.M[r][c]
		}
	}

	return math.Sqrt(sum)
}

// OuterProduct returns v·wᵀ, the rank-one matrix with entries v[r]·w[c].
func OuterProduct(v, w Vec3) Mat3 {
	return Mat3{M: [3][3]float64{
		{v.X * w.X, v.X * w.Y, v.X * w.Z},
		{v.Y * w.X, v.Y * w.Y, v.Y * w.Z},
		{v.Z * w.X, v.Z * w.Y, v.Z * w.Z},
	}}
}

// EqualWithin reports whether ‖m − n‖_F ≤ tolerance.
func (m Mat3) EqualWithin(n Mat3, tolerance float64) bool {
	return m.Sub(n).FrobeniusNorm() <= tolerance
}
