// SPDX-License-Identifier: Unlicense OR MIT

package f32

// RayBoxIntersect performs a slab-method intersection test between a ray
// (origin + t*dir, t >= 0) on the z=0 plane and an axis-aligned rectangle.
// It reports whether the ray hits box and, if so, the smallest non-negative
// t at which it does. Used for hit-testing and ad-hoc visibility queries;
// grounded on the standard slab method (two pairs of parallel planes).
func RayBoxIntersect(origin, dir Point, box Rectangle) (t float32, hit bool) {
	tMin, tMax := float32(0), float32(math32Inf)
	if dir.X != 0 {
		t1 := (box.Min.X - origin.X) / dir.X
		t2 := (box.Max.X - origin.X) / dir.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
	} else if origin.X < box.Min.X || origin.X > box.Max.X {
		return 0, false
	}
	if dir.Y != 0 {
		t1 := (box.Min.Y - origin.Y) / dir.Y
		t2 := (box.Max.Y - origin.Y) / dir.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
	} else if origin.Y < box.Min.Y || origin.Y > box.Max.Y {
		return 0, false
	}
	if tMin > tMax {
		return 0, false
	}
	return tMin, true
}

const math32Inf = 1e38

// Bilerp re-interpolates a value known at the four corners of rect (in
// order TL, TR, BR, BL) at point p, using bilinear interpolation. It is
// used to re-derive per-corner color when a rectangle is subdivided by a
// complex clip.
func Bilerp(rect Rectangle, tl, tr, br, bl [4]float32, p Point) [4]float32 {
	w, h := rect.Dx(), rect.Dy()
	var u, v float32
	if w != 0 {
		u = (p.X - rect.Min.X) / w
	}
	if h != 0 {
		v = (p.Y - rect.Min.Y) / h
	}
	var out [4]float32
	for i := 0; i < 4; i++ {
		top := tl[i] + (tr[i]-tl[i])*u
		bot := bl[i] + (br[i]-bl[i])*u
		out[i] = top + (bot-top)*v
	}
	return out
}
