// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestRectangleIntersect(t *testing.T) {
	r := Rect(0, 0, 10, 10)
	s := Rect(5, 5, 15, 15)
	got := r.Intersect(s)
	want := Rect(5, 5, 10, 10)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRectangleIntersectsInclusive(t *testing.T) {
	r := Rect(0, 0, 10, 10)
	s := Rect(10, 10, 20, 20)
	if !r.Intersects(s) {
		t.Fatal("touching rectangles should intersect inclusively")
	}
}

func TestRectangleUnion(t *testing.T) {
	r := Rect(0, 0, 1, 1)
	s := Rect(5, 5, 6, 6)
	got := r.Union(s)
	want := Rect(0, 0, 6, 6)
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRectangleUnionEmpty(t *testing.T) {
	var r Rectangle
	s := Rect(1, 1, 2, 2)
	if got := r.Union(s); got != s {
		t.Fatalf("union with empty rect should be the other rect, got %v", got)
	}
}

func TestRectangleIn(t *testing.T) {
	outer := Rect(0, 0, 10, 10)
	inner := Rect(2, 2, 8, 8)
	if !inner.In(outer) {
		t.Fatal("inner should be in outer")
	}
	if outer.In(inner) {
		t.Fatal("outer should not be in inner")
	}
}

func TestBilerp(t *testing.T) {
	rect := Rect(0, 0, 10, 10)
	tl := [4]float32{1, 0, 0, 1}
	tr := [4]float32{0, 1, 0, 1}
	br := [4]float32{0, 0, 1, 1}
	bl := [4]float32{1, 1, 0, 1}
	got := Bilerp(rect, tl, tr, br, bl, rect.Min)
	if got != tl {
		t.Fatalf("corner sample mismatch: got %v want %v", got, tl)
	}
	got = Bilerp(rect, tl, tr, br, bl, Pt(10, 10))
	if got != br {
		t.Fatalf("corner sample mismatch: got %v want %v", got, br)
	}
}

func TestRayBoxIntersect(t *testing.T) {
	box := Rect(5, 5, 15, 15)
	_, hit := RayBoxIntersect(Pt(0, 10), Pt(1, 0), box)
	if !hit {
		t.Fatal("expected ray to hit box")
	}
	_, hit = RayBoxIntersect(Pt(0, 0), Pt(1, 0), box)
	if hit {
		t.Fatal("expected ray parallel to box on the outside to miss")
	}
}

func TestMat4Identity(t *testing.T) {
	m := Identity4()
	p, ok := m.TransformPoint(Pt(3, 4))
	if !ok || p != Pt(3, 4) {
		t.Fatalf("identity transform mismatch: %v, %v", p, ok)
	}
}

func TestMat4Translate(t *testing.T) {
	m := Translate4(1, 2, 0)
	p, ok := m.TransformPoint(Pt(3, 4))
	if !ok || p != Pt(4, 6) {
		t.Fatalf("translate mismatch: %v, %v", p, ok)
	}
}

func TestMat4Mul(t *testing.T) {
	a := Translate4(1, 0, 0)
	b := Translate4(0, 1, 0)
	m := a.Mul(b)
	p, ok := m.TransformPoint(Pt(0, 0))
	if !ok || p != Pt(1, 1) {
		t.Fatalf("composed translate mismatch: %v, %v", p, ok)
	}
}

func TestAffine4(t *testing.T) {
	a := Affine2D{}.Offset(Pt(2, 3))
	m := Affine4(a)
	p, ok := m.TransformPoint(Pt(1, 1))
	if !ok || p != Pt(3, 4) {
		t.Fatalf("affine lift mismatch: %v, %v", p, ok)
	}
}
