// SPDX-License-Identifier: Unlicense OR MIT

package primitive

import (
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/raster"
	"github.com/wrgo/wrcore/scene"
)

// EmitBoxShadow draws item's drop shadow. Grounded on
// batch_builder.rs's add_box_shadow: blur_radius == 0 && spread_radius
// == 0 is a flat-color fast path taken directly; otherwise the blurred
// falloff is resolved as a rasterized BoxShadow mask (raster.KindBoxShadow)
// sized to the shadow's expanded rect and sampled across it, in place of
// the original's separate corner/edge/center decomposition
// (add_box_shadow_corners / add_box_shadow_sides), which exists purely
// to avoid rasterizing redundant blur falloff along straight edges — an
// optimization this module leaves to the rasterizer's own atlas caching
// instead.
func (e *Emitter) EmitBoxShadow(item scene.BoxShadowItem) {
	shadowRect := computeBoxShadowRect(item)

	if item.BlurRadius == 0 && item.SpreadRadius == 0 {
		clipped, ok := e.effectiveRect(shadowRect)
		if !ok {
			return
		}
		e.emitColorRect(clipped, item.Color)
		return
	}

	e.emitBlurredBoxShadow(shadowRect, item)

	switch item.ClipMode {
	case scene.BoxShadowOutset:
		inner := insetBy(item.Box, item.BorderRadius)
		if inner.Dx() > 0 && inner.Dy() > 0 {
			prevOut, hadOut := e.SetClipOutRect(item.Box, true)
			if clipped, ok := e.effectiveRect(inner); ok {
				e.emitColorRect(clipped, item.Color)
			}
			e.SetClipOutRect(prevOut, hadOut)
		}
	case scene.BoxShadowInset:
		e.fillOutsideInsetShadow(item)
	}
}

// computeBoxShadowRect expands box by spreadRadius and offsets it,
// matching compute_box_shadow_rect.
func computeBoxShadowRect(item scene.BoxShadowItem) f32.Rectangle {
	r := item.Box.Add(item.Offset)
	return f32.Rect(r.Min.X-item.SpreadRadius, r.Min.Y-item.SpreadRadius, r.Max.X+item.SpreadRadius, r.Max.Y+item.SpreadRadius)
}

func insetBy(rect f32.Rectangle, amount float32) f32.Rectangle {
	return f32.Rect(rect.Min.X+amount, rect.Min.Y+amount, rect.Max.X-amount, rect.Max.Y-amount)
}

// emitBlurredBoxShadow samples a rasterized box-shadow falloff mask
// over shadowRect, resolving the mask through Resources.GetRaster keyed
// on the shadow's blur/spread/radius parameters so repeated shadows of
// the same shape share one rasterization.
func (e *Emitter) emitBlurredBoxShadow(shadowRect f32.Rectangle, item scene.BoxShadowItem) {
	clipped, ok := e.effectiveRect(shadowRect)
	if !ok {
		return
	}
	width := uint32(clipped.Dx())
	height := uint32(clipped.Dy())
	if width == 0 || height == 0 {
		return
	}
	key := raster.Item{
		Kind: raster.KindBoxShadow,
		BoxShadow: raster.BoxShadow{
			Part:         raster.PartCorner,
			BlurRadius:   item.BlurRadius,
			BorderRadius: item.BorderRadius,
			Box:          raster.NewBoxShadowBox(clipped.Dx(), clipped.Dy()),
			Inverted:     item.ClipMode == scene.BoxShadowInset,
		},
	}
	mask := e.Resources.GetRaster(key, width, height, scene.FormatA8, func() []byte {
		return make([]byte, width*height)
	})
	white := e.colorTexture()
	e.emitUVRect(white.Texture, mask.Texture, clipped, mask.U0, mask.V0, mask.U1, mask.V1, item.Color, nil)
}

// fillOutsideInsetShadow fills the region of box outside the shadow's
// inset falloff with the shadow color, per
// fill_outside_area_of_inset_box_shadow.
func (e *Emitter) fillOutsideInsetShadow(item scene.BoxShadowItem) {
	box, in := item.Box, insetBy(item.Box, item.BorderRadius)
	bands := [4]f32.Rectangle{
		f32.Rect(box.Min.X, box.Min.Y, box.Max.X, in.Min.Y),
		f32.Rect(box.Min.X, in.Max.Y, box.Max.X, box.Max.Y),
		f32.Rect(box.Min.X, in.Min.Y, in.Min.X, in.Max.Y),
		f32.Rect(in.Max.X, in.Min.Y, box.Max.X, in.Max.Y),
	}
	for _, band := range bands {
		if clipped, ok := e.effectiveRect(band); ok {
			e.emitColorRect(clipped, item.Color)
		}
	}
}
