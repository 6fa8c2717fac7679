// SPDX-License-Identifier: Unlicense OR MIT

package primitive

import (
	"github.com/wrgo/wrcore/atlas"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/resourcecache"
	"github.com/wrgo/wrcore/scene"
)

// EmitText draws item's glyph run, grouping all glyphs by the atlas
// texture their rasterized bitmap landed in (groups in the order each
// texture first appears) so each group becomes one shared batch, per
// add_text's per-texture HashMap<TextureId, ...> grouping.
func (e *Emitter) EmitText(item scene.TextItem) {
	if len(item.Glyphs) == 0 {
		return
	}
	groups := map[atlas.TextureID][]glyphQuad{}
	var order []atlas.TextureID
	for _, g := range item.Glyphs {
		img := e.resolveGlyph(g.Key, item.FontSize)
		w, h := float32(img.Width), float32(img.Height)
		rect := f32.Rect(g.Origin.X, g.Origin.Y, g.Origin.X+w, g.Origin.Y+h)
		clipped, ok := e.effectiveRect(rect)
		if !ok {
			continue
		}
		if _, seen := groups[img.Texture]; !seen {
			order = append(order, img.Texture)
		}
		groups[img.Texture] = append(groups[img.Texture], glyphQuad{rect: clipped, item: img})
	}

	mask := e.maskTexture()
	for _, tex := range order {
		for _, q := range groups[tex] {
			e.emitUVRect(tex, mask.Texture, q.rect, q.item.U0, q.item.V0, q.item.U1, q.item.V1, item.Color, nil)
		}
	}
}

type glyphQuad struct {
	rect f32.Rectangle
	item resourcecache.Item
}

func (e *Emitter) resolveGlyph(key scene.GlyphKey, fontSize float32) resourcecache.Item {
	if e.Images == nil {
		return e.Resources.GetDummyMaskImage()
	}
	w, h, pixels := e.Images.Glyph(key, fontSize)
	return e.Resources.GetGlyph(key, w, h, pixels)
}
