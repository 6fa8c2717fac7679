// SPDX-License-Identifier: Unlicense OR MIT

// Package tessellate subdivides a rounded border corner into one or four
// sub-quads suitable for mask-texture sampling, depending on how large
// the corner is relative to the device pixel ratio. Directly translated
// from _examples/original_source/src/tessellator.rs.
package tessellate

import (
	"math"

	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/wrconst"
)

// BasicRotationAngle names which of a border's four corners a tessellated
// sub-rect belongs to, since the ellipse-quadrant math is shared but each
// corner mirrors it differently.
type BasicRotationAngle uint8

const (
	Upright BasicRotationAngle = iota
	Clockwise90
	Clockwise180
	Clockwise270
)

// QuadCountForBorderCorner reports how many sub-quads a corner with the
// given outer radius tessellates into at devicePixelRatio: 1 below the
// threshold (wrconst.BorderCornerRadiusThreshold / devicePixelRatio), 4
// at or above it.
func QuadCountForBorderCorner(outerRadius f32.Point, devicePixelRatio float32) int {
	max := float32(wrconst.BorderCornerRadiusThreshold) / devicePixelRatio
	if outerRadius.X < max && outerRadius.Y < max {
		return 1
	}
	return 4
}

// EllipseY returns the y coordinate of the point at x on the ellipse
// quadrant with the given radius, or x itself when radius.X is zero (a
// degenerate, zero-width ellipse collapses to the line y=x).
func EllipseY(x float32, radius f32.Point) float32 {
	if radius.X == 0 {
		return x
	}
	ratio := x / radius.X
	radicand := 1 - ratio*ratio
	if radicand < 0 {
		return 0
	}
	return radius.Y * float32(math.Sqrt(float64(radicand)))
}

// TessellateBorderCorner returns the sub-rect, in the coordinate space of
// rect, that sub-quad index (0-based) of a corner tessellation occupies.
// If QuadCountForBorderCorner reports 1, index must be 0 and rect is
// returned unchanged. rotation selects which of the four border corners
// this is, since the ellipse-quadrant geometry is computed the same way
// for all four but mirrors differently into rect.
func TessellateBorderCorner(rect f32.Rectangle, outerRadius, innerRadius f32.Point, devicePixelRatio float32, rotation BasicRotationAngle, index int) f32.Rectangle {
	quadCount := QuadCountForBorderCorner(outerRadius, devicePixelRatio)
	if quadCount == 1 {
		return rect
	}

	delta := outerRadius.X / float32(quadCount)
	prevX := ceilf(delta * float32(index))
	prevOuterY := EllipseY(prevX, outerRadius)

	nextX := ceilf(prevX + delta)
	nextInnerY := EllipseY(nextX, innerRadius)

	topLeft := f32.Pt(prevX, prevOuterY)
	bottomRight := f32.Pt(nextX, nextInnerY)

	sub := f32.Rectangle{
		Min: f32.Pt(topLeft.X, bottomRight.Y),
		Max: f32.Pt(bottomRight.X, topLeft.Y),
	}

	switch rotation {
	case Upright:
		w, h := sub.Dx(), sub.Dy()
		sub = f32.Rectangle{
			Min: f32.Pt(outerRadius.X-sub.Max.X, outerRadius.Y-sub.Max.Y),
			Max: f32.Pt(outerRadius.X-sub.Max.X+w, outerRadius.Y-sub.Max.Y+h),
		}
	case Clockwise90:
		h := sub.Dy()
		sub = f32.Rectangle{
			Min: f32.Pt(sub.Min.X, outerRadius.Y-sub.Max.Y),
			Max: f32.Pt(sub.Min.X+sub.Dx(), outerRadius.Y-sub.Max.Y+h),
		}
	case Clockwise180:
		// unchanged
	case Clockwise270:
		w := sub.Dx()
		sub = f32.Rectangle{
			Min: f32.Pt(outerRadius.X-sub.Max.X, sub.Min.Y),
			Max: f32.Pt(outerRadius.X-sub.Max.X+w, sub.Min.Y+sub.Dy()),
		}
	}

	return sub.Add(rect.Min)
}

func ceilf(f float32) float32 {
	i := float32(int32(f))
	if i < f {
		return i + 1
	}
	return i
}
