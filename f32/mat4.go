// SPDX-License-Identifier: Unlicense OR MIT

package f32

// Mat4 is a 4x4 matrix in row-major order, used for the StackingContext
// transform and perspective matrices that Affine2D cannot express (true
// perspective division). The zero value is NOT the identity; use Identity4.
type Mat4 [4][4]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Affine4 lifts a 2D affine transform into a 4x4 matrix operating on
// (x, y, z, w) with z and w left unchanged.
func Affine4(a Affine2D) Mat4 {
	sx, hx, ox, hy, sy, oy := a.Elems()
	m := Identity4()
	m[0][0], m[0][1], m[0][3] = sx, hx, ox
	m[1][0], m[1][1], m[1][3] = hy, sy, oy
	return m
}

// Translate4 returns a 4x4 translation matrix.
func Translate4(x, y, z float32) Mat4 {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = x, y, z
	return m
}

// Mul returns m applied after n: (m.Mul(n)).Transform(p) == m.Transform(n.Transform(p)).
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * n[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// TransformPoint applies m to the homogeneous point (p.X, p.Y, 0, 1) and
// performs the perspective divide, returning the projected 2D point. ok is
// false when w is degenerate (|w| below a small epsilon), in which case the
// projection is undefined and the caller should treat the primitive as
// invisible.
func (m Mat4) TransformPoint(p Point) (out Point, ok bool) {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][3]
	const eps = 1e-6
	if w > -eps && w < eps {
		return Point{}, false
	}
	return Point{X: x / w, Y: y / w}, true
}

// IsIdentity reports whether m is (bit-exactly) the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity4()
}
