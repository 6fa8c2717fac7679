// SPDX-License-Identifier: Unlicense OR MIT

package primitive

import (
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/raster"
	"github.com/wrgo/wrcore/scene"
	"github.com/wrgo/wrcore/tessellate"
	"github.com/wrgo/wrcore/wrconst"
)

// EmitBorder draws item's four edges and four corners over rect,
// grounded directly on batch_builder.rs's add_border: each edge is an
// axis-aligned strip running between the two corners it touches, and
// each corner is tessellated into one or four sub-quads depending on
// its radius relative to the device pixel ratio.
func (e *Emitter) EmitBorder(rect f32.Rectangle, item scene.BorderItem, devicePixelRatio float32) {
	radii := item.Radii

	tlOuter := rect.Min
	tlInner := tlOuter.Add(f32.Pt(maxf(radii.TopLeft.X, item.Left.Width), maxf(radii.TopLeft.Y, item.Top.Width)))

	trOuter := f32.Pt(rect.Max.X, rect.Min.Y)
	trInner := trOuter.Add(f32.Pt(-maxf(radii.TopRight.X, item.Right.Width), maxf(radii.TopRight.Y, item.Top.Width)))

	blOuter := f32.Pt(rect.Min.X, rect.Max.Y)
	blInner := blOuter.Add(f32.Pt(maxf(radii.BottomLeft.X, item.Left.Width), -maxf(radii.BottomLeft.Y, item.Bottom.Width)))

	brOuter := rect.Max
	brInner := brOuter.Sub(f32.Pt(maxf(radii.BottomRight.X, item.Right.Width), maxf(radii.BottomRight.Y, item.Bottom.Width)))

	e.emitBorderEdge(f32.Rect(tlOuter.X, tlInner.Y, tlOuter.X+item.Left.Width, blInner.Y), item.Left)
	e.emitBorderEdge(f32.Rect(tlInner.X, tlOuter.Y, trInner.X, trOuter.Y+item.Top.Width), item.Top)
	e.emitBorderEdge(f32.Rect(brOuter.X-item.Right.Width, trInner.Y, brOuter.X, brInner.Y), item.Right)
	e.emitBorderEdge(f32.Rect(blInner.X, blOuter.Y-item.Bottom.Width, brInner.X, blOuter.Y+item.Bottom.Width-item.Bottom.Width), item.Bottom)

	e.emitBorderCorner(f32.Rectangle{Min: tlOuter, Max: tlInner}, radii.TopLeft, devicePixelRatio, tessellate.Upright, item.Left)
	e.emitBorderCorner(f32.Rectangle{Min: f32.Pt(trInner.X, trOuter.Y), Max: f32.Pt(trOuter.X, trInner.Y)}, radii.TopRight, devicePixelRatio, tessellate.Clockwise90, item.Top)
	e.emitBorderCorner(f32.Rectangle{Min: brInner, Max: brOuter}, radii.BottomRight, devicePixelRatio, tessellate.Clockwise180, item.Right)
	e.emitBorderCorner(f32.Rectangle{Min: f32.Pt(blOuter.X, blInner.Y), Max: f32.Pt(blInner.X, blOuter.Y)}, radii.BottomLeft, devicePixelRatio, tessellate.Clockwise270, item.Bottom)
}

// emitBorderEdge draws one straight edge strip, dispatching on side's
// line style: Dashed/Dotted break the strip into runs, Double leaves a
// gap between two thinner strips, Groove/Ridge split it into a shaded
// bevel. Inset/Outset (whole-border shading, not per-edge) and the
// common Solid case all fall through to a plain fill. None draws
// nothing.
func (e *Emitter) emitBorderEdge(rect f32.Rectangle, side scene.BorderSide) {
	if side.Style == scene.BorderNone || side.Width <= 0 {
		return
	}
	clipped, ok := e.effectiveRect(rect)
	if !ok {
		return
	}
	switch side.Style {
	case scene.BorderDashed:
		e.emitDashedEdge(clipped, side, false)
	case scene.BorderDotted:
		e.emitDashedEdge(clipped, side, true)
	case scene.BorderDouble:
		e.emitDoubleEdge(clipped, side)
	case scene.BorderGroove:
		e.emitBevelEdge(clipped, side, true)
	case scene.BorderRidge:
		e.emitBevelEdge(clipped, side, false)
	default:
		e.emitColorRect(clipped, side.Color)
	}
}

// emitDashedEdge decomposes rect into alternating on/off runs along its
// long axis. dot selects a 1:1 dot/gap ratio sized to the edge's own
// width instead of a dash elongated by wrconst.BorderDashSize.
func (e *Emitter) emitDashedEdge(rect f32.Rectangle, side scene.BorderSide, dot bool) {
	horizontal := rect.Dx() >= rect.Dy()
	length := rect.Dy()
	if horizontal {
		length = rect.Dx()
	}
	size := side.Width * wrconst.BorderDashSize
	if dot {
		size = side.Width
	}
	if size <= 0 {
		e.emitColorRect(rect, side.Color)
		return
	}
	for pos := float32(0); pos < length; pos += size * 2 {
		end := minf32(pos+size, length)
		var sub f32.Rectangle
		if horizontal {
			sub = f32.Rect(rect.Min.X+pos, rect.Min.Y, rect.Min.X+end, rect.Max.Y)
		} else {
			sub = f32.Rect(rect.Min.X, rect.Min.Y+pos, rect.Max.X, rect.Min.Y+end)
		}
		clipped, ok := e.effectiveRect(sub)
		if !ok {
			continue
		}
		e.emitColorRect(clipped, side.Color)
	}
}

// emitDoubleEdge draws the outer and inner thirds of rect's thickness,
// leaving the middle third empty, per the CSS double border style.
func (e *Emitter) emitDoubleEdge(rect f32.Rectangle, side scene.BorderSide) {
	horizontal := rect.Dx() >= rect.Dy()
	var a, b f32.Rectangle
	if horizontal {
		t := rect.Dy() / 3
		a = f32.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+t)
		b = f32.Rect(rect.Min.X, rect.Max.Y-t, rect.Max.X, rect.Max.Y)
	} else {
		t := rect.Dx() / 3
		a = f32.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+t, rect.Max.Y)
		b = f32.Rect(rect.Max.X-t, rect.Min.Y, rect.Max.X, rect.Max.Y)
	}
	for _, s := range [...]f32.Rectangle{a, b} {
		if clipped, ok := e.effectiveRect(s); ok {
			e.emitColorRect(clipped, side.Color)
		}
	}
}

// emitBevelEdge splits rect's thickness into an outer and inner half,
// shading one darker and one lighter to fake a 3D bevel: groove sinks
// (dark outer, light inner), ridge raises (light outer, dark inner).
func (e *Emitter) emitBevelEdge(rect f32.Rectangle, side scene.BorderSide, groove bool) {
	dark := shadeColor(side.Color, 0.7)
	light := shadeColor(side.Color, 1.3)
	outer, inner := dark, light
	if !groove {
		outer, inner = light, dark
	}

	horizontal := rect.Dx() >= rect.Dy()
	var outerRect, innerRect f32.Rectangle
	if horizontal {
		t := rect.Dy() / 2
		outerRect = f32.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+t)
		innerRect = f32.Rect(rect.Min.X, rect.Min.Y+t, rect.Max.X, rect.Max.Y)
	} else {
		t := rect.Dx() / 2
		outerRect = f32.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+t, rect.Max.Y)
		innerRect = f32.Rect(rect.Min.X+t, rect.Min.Y, rect.Max.X, rect.Max.Y)
	}
	if clipped, ok := e.effectiveRect(outerRect); ok {
		e.emitColorRect(clipped, outer)
	}
	if clipped, ok := e.effectiveRect(innerRect); ok {
		e.emitColorRect(clipped, inner)
	}
}

// shadeColor scales c's RGB channels by factor, clamped to [0, 1],
// leaving alpha untouched.
func shadeColor(c scene.ColorF, factor float32) scene.ColorF {
	return scene.ColorF{R: clampf(c.R * factor), G: clampf(c.G * factor), B: clampf(c.B * factor), A: c.A}
}

func clampf(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// emitBorderCorner tessellates corner into QuadCountForBorderCorner
// sub-quads (1 for a small or zero radius, 4 for a large one). A real
// radius routes each sub-quad through an A8 border-radius mask; a zero
// radius (a plain mitered corner) falls back to a flat fill.
func (e *Emitter) emitBorderCorner(corner f32.Rectangle, outerRadius f32.Point, devicePixelRatio float32, rotation tessellate.BasicRotationAngle, edge scene.BorderSide) {
	if edge.Style == scene.BorderNone {
		return
	}
	if outerRadius.X > 0 && outerRadius.Y > 0 && corner.Dx() > 0 && corner.Dy() > 0 {
		e.emitMaskedBorderCorner(corner, outerRadius, devicePixelRatio, rotation, edge)
		return
	}
	n := tessellate.QuadCountForBorderCorner(outerRadius, devicePixelRatio)
	for i := 0; i < n; i++ {
		sub := tessellate.TessellateBorderCorner(corner, outerRadius, f32.Pt(0, 0), devicePixelRatio, rotation, i)
		clipped, ok := e.effectiveRect(sub)
		if !ok {
			continue
		}
		e.emitColorRect(clipped, edge.Color)
	}
}

// emitMaskedBorderCorner draws each tessellated sub-quad of corner
// through an A8 border-radius mask resolved via Resources.GetRaster,
// mirroring emitBlurredBoxShadow's mask-texture wiring: the staircase
// subdivision from TessellateBorderCorner approximates the outer curve's
// silhouette, and the mask softens each step's edge with the true
// elliptical coverage. TessellationIndex carries rotation so the four
// corners of one border never collide in the raster cache.
func (e *Emitter) emitMaskedBorderCorner(corner f32.Rectangle, outerRadius f32.Point, devicePixelRatio float32, rotation tessellate.BasicRotationAngle, edge scene.BorderSide) {
	width := uint32(corner.Dx())
	height := uint32(corner.Dy())
	key := raster.Item{
		Kind: raster.KindBorderRadius,
		BorderRadius: raster.BorderRadius{
			OuterRadiusX:      outerRadius.X,
			OuterRadiusY:      outerRadius.Y,
			Format:            scene.FormatA8,
			TessellationIndex: uint32(rotation),
		},
	}
	mask := e.Resources.GetRaster(key, width, height, scene.FormatA8, func() []byte { return make([]byte, width*height) })
	white := e.colorTexture()

	n := tessellate.QuadCountForBorderCorner(outerRadius, devicePixelRatio)
	for i := 0; i < n; i++ {
		sub := tessellate.TessellateBorderCorner(corner, outerRadius, f32.Pt(0, 0), devicePixelRatio, rotation, i)
		clipped, ok := e.effectiveRect(sub)
		if !ok {
			continue
		}
		u0 := mask.U0 + (clipped.Min.X-corner.Min.X)/corner.Dx()*(mask.U1-mask.U0)
		u1 := mask.U0 + (clipped.Max.X-corner.Min.X)/corner.Dx()*(mask.U1-mask.U0)
		v0 := mask.V0 + (clipped.Min.Y-corner.Min.Y)/corner.Dy()*(mask.V1-mask.V0)
		v1 := mask.V0 + (clipped.Max.Y-corner.Min.Y)/corner.Dy()*(mask.V1-mask.V0)
		e.emitUVRect(white.Texture, mask.Texture, clipped, u0, v0, u1, v1, edge.Color, nil)
	}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
