// SPDX-License-Identifier: Unlicense OR MIT

package tessellate

import (
	"testing"

	"github.com/wrgo/wrcore/f32"
)

func TestQuadCountBelowThreshold(t *testing.T) {
	if QuadCountForBorderCorner(f32.Pt(10, 10), 1) != 1 {
		t.Fatal("expected a single quad below the radius threshold")
	}
}

func TestQuadCountAtThreshold(t *testing.T) {
	if QuadCountForBorderCorner(f32.Pt(32, 32), 1) != 4 {
		t.Fatal("expected four quads at/above the radius threshold")
	}
}

func TestEllipseYAtZeroIsRadius(t *testing.T) {
	y := EllipseY(0, f32.Pt(10, 20))
	if y != 20 {
		t.Fatalf("expected full radius height at x=0, got %v", y)
	}
}

func TestEllipseYDegenerateRadius(t *testing.T) {
	y := EllipseY(5, f32.Pt(0, 20))
	if y != 5 {
		t.Fatalf("expected identity for zero-width radius, got %v", y)
	}
}

func TestTessellateSingleQuadReturnsRectUnchanged(t *testing.T) {
	rect := f32.Rect(0, 0, 10, 10)
	got := TessellateBorderCorner(rect, f32.Pt(5, 5), f32.Pt(0, 0), 1, Upright, 0)
	if got != rect {
		t.Fatalf("expected unchanged rect for single-quad corner, got %v", got)
	}
}

func TestTessellateFourQuadsNonDegenerate(t *testing.T) {
	rect := f32.Rect(0, 0, 50, 50)
	for i := 0; i < 4; i++ {
		got := TessellateBorderCorner(rect, f32.Pt(50, 50), f32.Pt(0, 0), 1, Upright, i)
		if got.Dx() < 0 || got.Dy() < 0 {
			t.Fatalf("sub-quad %d has negative size: %v", i, got)
		}
	}
}
