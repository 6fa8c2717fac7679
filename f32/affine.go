// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "math"

// Affine2D is a 2D affine transformation matrix. The zero value of Affine2D
// is the identity transform.
//
// Affine2D is represented internally as
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// with the convention that an all-zero linear part (a, b, d, e all zero)
// denotes the identity linear map; a genuinely singular all-zero linear
// transform never arises from Offset/Scale/Rotate/Shear, so the zero value
// can double as the identity sentinel.
type Affine2D struct {
	a, b, c float32
	d, e, f float32
}

func (p Affine2D) linear() (a, b, d, e float32) {
	if p.a == 0 && p.b == 0 && p.d == 0 && p.e == 0 {
		return 1, 0, 0, 1
	}
	return p.a, p.b, p.d, p.e
}

// Offset returns p followed by a translation by o.
func (p Affine2D) Offset(o Point) Affine2D {
	m := Affine2D{c: o.X, f: o.Y}
	return m.Mul(p)
}

// Scale returns p followed by a scaling by s around origin.
func (p Affine2D) Scale(origin, s Point) Affine2D {
	m := Affine2D{
		a: s.X, c: origin.X * (1 - s.X),
		e: s.Y, f: origin.Y * (1 - s.Y),
	}
	return m.Mul(p)
}

// Rotate returns p followed by a clockwise rotation of radians around
// origin.
func (p Affine2D) Rotate(origin Point, radians float32) Affine2D {
	s, c := math.Sincos(float64(radians))
	sf, cf := float32(s), float32(c)
	m := Affine2D{
		a: cf, b: -sf, c: origin.X - cf*origin.X + sf*origin.Y,
		d: sf, e: cf, f: origin.Y - sf*origin.X - cf*origin.Y,
	}
	return m.Mul(p)
}

// Shear returns p followed by a shear by ax, ay radians around origin.
func (p Affine2D) Shear(origin Point, ax, ay float32) Affine2D {
	tx, ty := float32(math.Tan(float64(ax))), float32(math.Tan(float64(ay)))
	m := Affine2D{
		a: 1, b: tx, c: -tx * origin.Y,
		d: ty, e: 1, f: -ty * origin.X,
	}
	return m.Mul(p)
}

// Mul returns the transform that applies p2 followed by p:
// p.Mul(p2).Transform(pt) == p.Transform(p2.Transform(pt)).
func (p Affine2D) Mul(p2 Affine2D) Affine2D {
	a1, b1, d1, e1 := p.linear()
	c1, f1 := p.c, p.f
	a2, b2, d2, e2 := p2.linear()
	c2, f2 := p2.c, p2.f
	return Affine2D{
		a: a1*a2 + b1*d2, b: a1*b2 + b1*e2, c: a1*c2 + b1*f2 + c1,
		d: d1*a2 + e1*d2, e: d1*b2 + e1*e2, f: d1*c2 + e1*f2 + f1,
	}
}

// Invert returns the inverse of p, assuming p is invertible.
func (p Affine2D) Invert() Affine2D {
	a, b, d, e := p.linear()
	det := a*e - b*d
	ia, ib, id, ie := e/det, -b/det, -d/det, a/det
	return Affine2D{
		a: ia, b: ib, c: -(ia*p.c + ib*p.f),
		d: id, e: ie, f: -(id*p.c + ie*p.f),
	}
}

// Transform returns p applied to pt.
func (p Affine2D) Transform(pt Point) Point {
	a, b, d, e := p.linear()
	return Point{X: a*pt.X + b*pt.Y + p.c, Y: d*pt.X + e*pt.Y + p.f}
}

// Elems decomposes p into its six components, in the order
// (scale-x, shear-x, offset-x, shear-y, scale-y, offset-y).
func (p Affine2D) Elems() (sx, hx, ox, hy, sy, oy float32) {
	a, b, d, e := p.linear()
	return a, b, p.c, d, e, p.f
}
