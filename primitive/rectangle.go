// SPDX-License-Identifier: Unlicense OR MIT

package primitive

import (
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/raster"
	"github.com/wrgo/wrcore/scene"
)

// EmitRectangle draws a flat-colored quad over rect, clipped by the
// active clip-in/clip-out rects and, if one is active, subdivided
// against the active complex clip's rounded corners. Grounded on
// batch_builder.rs's add_simple_rectangle / add_complex_clipped_rectangle
// pair: the complex-clip path is only taken when a rounded clip is
// pushed, otherwise a single quad is emitted.
func (e *Emitter) EmitRectangle(rect f32.Rectangle, color scene.ColorF) {
	clipped, ok := e.effectiveRect(rect)
	if !ok {
		return
	}
	if e.complexClip != nil {
		e.emitComplexClippedRectangle(clipped, color)
		return
	}
	e.emitColorRect(clipped, color)
}

func (e *Emitter) emitColorRect(rect f32.Rectangle, color scene.ColorF) {
	white := e.colorTexture()
	mask := e.maskTexture()
	e.Batch.AddRectangle(e.Matrix, white.Texture, mask.Texture,
		rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y, 0,
		color.R, color.G, color.B, color.A, nil)
}

// emitComplexClippedRectangle subdivides rect into a grid against the
// active ComplexClip's corner-radii boxes, drawing only the cells that
// survive the rounded-corner mask, per add_complex_clipped_rectangle's
// x/y breakpoint grid (the four corner radii plus the rect edges yield
// up to 6 distinct x and y breakpoints, i.e. a 5x5 cell grid in the
// worst case).
func (e *Emitter) emitComplexClippedRectangle(rect f32.Rectangle, color scene.ColorF) {
	clip := e.complexClip
	cr := clip.Rect

	xs := sortedUnique([]float32{
		cr.Min.X,
		cr.Min.X + clip.Radii.TopLeft.X,
		cr.Max.X - clip.Radii.TopRight.X,
		cr.Min.X + clip.Radii.BottomLeft.X,
		cr.Max.X - clip.Radii.BottomRight.X,
		cr.Max.X,
	})
	ys := sortedUnique([]float32{
		cr.Min.Y,
		cr.Min.Y + clip.Radii.TopLeft.Y,
		cr.Min.Y + clip.Radii.TopRight.Y,
		cr.Max.Y - clip.Radii.BottomLeft.Y,
		cr.Max.Y - clip.Radii.BottomRight.Y,
		cr.Max.Y,
	})

	for xi := 0; xi+1 < len(xs); xi++ {
		for yi := 0; yi+1 < len(ys); yi++ {
			cell := f32.Rectangle{Min: f32.Pt(xs[xi], ys[yi]), Max: f32.Pt(xs[xi+1], ys[yi+1])}
			if cell.Dx() <= 0 || cell.Dy() <= 0 {
				continue
			}
			sub := cell.Intersect(rect)
			if sub.Dx() <= 0 || sub.Dy() <= 0 {
				continue
			}
			if cellInRoundedCorner(cell, clip) {
				e.emitMaskedCornerRect(sub, cell, clip, color)
				continue
			}
			e.emitColorRect(sub, color)
		}
	}
}

// cornerBoxes returns the four corner-radius boxes of clip, in
// TopLeft/TopRight/BottomLeft/BottomRight order, matching the breakpoint
// grid emitComplexClippedRectangle builds its cells from.
func cornerBoxes(clip *scene.ComplexClip) [4]f32.Rectangle {
	r := clip.Rect
	return [4]f32.Rectangle{
		f32.Rect(r.Min.X, r.Min.Y, r.Min.X+clip.Radii.TopLeft.X, r.Min.Y+clip.Radii.TopLeft.Y),
		f32.Rect(r.Max.X-clip.Radii.TopRight.X, r.Min.Y, r.Max.X, r.Min.Y+clip.Radii.TopRight.Y),
		f32.Rect(r.Min.X, r.Max.Y-clip.Radii.BottomLeft.Y, r.Min.X+clip.Radii.BottomLeft.X, r.Max.Y),
		f32.Rect(r.Max.X-clip.Radii.BottomRight.X, r.Max.Y-clip.Radii.BottomRight.Y, r.Max.X, r.Max.Y),
	}
}

// cellInRoundedCorner reports whether cell falls within one of the four
// corner radius boxes, where a mask is needed rather than a plain fill.
func cellInRoundedCorner(cell f32.Rectangle, clip *scene.ComplexClip) bool {
	boxes := cornerBoxes(clip)
	for _, b := range boxes {
		if !cell.Intersect(b).Empty() {
			return true
		}
	}
	return false
}

// emitMaskedCornerRect draws sub using a border-radius raster mask
// rather than a plain fill, resolving the mask through the resource
// cache the way add_complex_clipped_rectangle resolves its
// RasterItem::BorderRadius mask image, mirroring emitBlurredBoxShadow's
// GetRaster wiring.
func (e *Emitter) emitMaskedCornerRect(sub, cell f32.Rectangle, clip *scene.ComplexClip, color scene.ColorF) {
	box, ok := boxFor(cell, clip)
	if !ok || box.Dx() <= 0 || box.Dy() <= 0 {
		e.emitColorRect(sub, color)
		return
	}

	width := uint32(box.Dx())
	height := uint32(box.Dy())
	if width == 0 || height == 0 {
		e.emitColorRect(sub, color)
		return
	}

	key := raster.Item{
		Kind: raster.KindBorderRadius,
		BorderRadius: raster.BorderRadius{
			OuterRadiusX: box.Dx(),
			OuterRadiusY: box.Dy(),
			Format:       scene.FormatA8,
		},
	}
	mask := e.Resources.GetRaster(key, width, height, scene.FormatA8, func() []byte { return make([]byte, width*height) })
	white := e.colorTexture()

	u0 := mask.U0 + (sub.Min.X-box.Min.X)/box.Dx()*(mask.U1-mask.U0)
	u1 := mask.U0 + (sub.Max.X-box.Min.X)/box.Dx()*(mask.U1-mask.U0)
	v0 := mask.V0 + (sub.Min.Y-box.Min.Y)/box.Dy()*(mask.V1-mask.V0)
	v1 := mask.V0 + (sub.Max.Y-box.Min.Y)/box.Dy()*(mask.V1-mask.V0)
	e.emitUVRect(white.Texture, mask.Texture, sub, u0, v0, u1, v1, color, nil)
}

// boxFor returns the corner-radius box cell lies in, if any.
func boxFor(cell f32.Rectangle, clip *scene.ComplexClip) (f32.Rectangle, bool) {
	for _, b := range cornerBoxes(clip) {
		if !cell.Intersect(b).Empty() {
			return b, true
		}
	}
	return f32.Rectangle{}, false
}

func sortedUnique(vs []float32) []float32 {
	out := append([]float32(nil), vs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	dedup := out[:0]
	for i, v := range out {
		if i == 0 || v != dedup[len(dedup)-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup
}
