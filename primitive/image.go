// SPDX-License-Identifier: Unlicense OR MIT

package primitive

import (
	"github.com/wrgo/wrcore/atlas"
	"github.com/wrgo/wrcore/batch"
	"github.com/wrgo/wrcore/device"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/resourcecache"
	"github.com/wrgo/wrcore/scene"
)

// EmitImage draws item's image into rect, stretched per
// item.StretchSize. Grounded on batch_builder.rs's add_image: the
// tile-params rect (the atlas sub-rect the image was packed into) is
// threaded through so the fragment stage can wrap sampling within it
// rather than bleeding into neighboring atlas entries, the same trick
// add_image's TileParams serves.
func (e *Emitter) EmitImage(rect f32.Rectangle, item scene.ImageItem) {
	clipped, ok := e.effectiveRect(rect)
	if !ok {
		return
	}
	img := e.resolveImage(item.Key)

	stretch := item.StretchSize
	if stretch.X <= 0 || stretch.Y <= 0 {
		stretch = rect.Size()
	}

	u1 := rect.Dx() / stretch.X
	v1 := rect.Dy() / stretch.Y

	mask := e.maskTexture()
	tile := batch.TileParams{U0: img.U0, V0: img.V0, USize: img.U1 - img.U0, VSize: img.V1 - img.V0}
	e.emitUVRect(img.Texture, mask.Texture, clipped, 0, 0, u1, v1, white, &tile)
}

// EmitWebGL composites a host-rendered WebGL surface into rect, flipping
// its v axis first if the surface's origin convention requires it, per
// add_webgl_rectangle.
func (e *Emitter) EmitWebGL(rect f32.Rectangle, item scene.WebGLItem) {
	clipped, ok := e.effectiveRect(rect)
	if !ok {
		return
	}
	img := e.resolveWebGL(item.Key)
	v0, v1 := float32(0), float32(1)
	if item.FlipY {
		v0, v1 = 1, 0
	}
	mask := e.maskTexture()
	e.emitUVRect(img.Texture, mask.Texture, clipped, 0, v0, 1, v1, white, nil)
}

// white is the default vertex tint for primitives that paint the
// texture's own color unmodified (images, WebGL surfaces).
var white = scene.ColorF{R: 1, G: 1, B: 1, A: 1}

// emitUVRect builds the four corner vertices of rect sampling [u0,v0]
// to [u1,v1], tinted uniformly by color, and appends them as a quad.
func (e *Emitter) emitUVRect(colorTexture, maskTexture atlas.TextureID, rect f32.Rectangle, u0, v0, u1, v1 float32, color scene.ColorF, tile *batch.TileParams) {
	e.emitUVRectColors(colorTexture, maskTexture, rect, u0, v0, u1, v1, [4]scene.ColorF{color, color, color, color}, tile)
}

// emitUVRectColors is the general form of emitUVRect, stamping one
// color per corner (top-left, top-right, bottom-right, bottom-left) so
// gradients can interpolate between stops across a quad, per
// add_rectangle's PackedVertexColorMode::Gradient path.
func (e *Emitter) emitUVRectColors(colorTexture, maskTexture atlas.TextureID, rect f32.Rectangle, u0, v0, u1, v1 float32, colors [4]scene.ColorF, tile *batch.TileParams) {
	vertices := []device.PackedVertex{
		device.NewPackedVertex(rect.Min.X, rect.Min.Y, 0, colors[0].R, colors[0].G, colors[0].B, colors[0].A, u0, v0, 0, 0, e.Matrix, 0),
		device.NewPackedVertex(rect.Max.X, rect.Min.Y, 0, colors[1].R, colors[1].G, colors[1].B, colors[1].A, u1, v0, 1, 0, e.Matrix, 0),
		device.NewPackedVertex(rect.Max.X, rect.Max.Y, 0, colors[2].R, colors[2].G, colors[2].B, colors[2].A, u1, v1, 1, 1, e.Matrix, 0),
		device.NewPackedVertex(rect.Min.X, rect.Max.Y, 0, colors[3].R, colors[3].G, colors[3].B, colors[3].A, u0, v1, 0, 1, e.Matrix, 0),
	}
	e.Batch.AddDrawItem(e.Matrix, colorTexture, maskTexture, batch.PrimitiveQuads, vertices, tile)
}

func (e *Emitter) resolveImage(key scene.ImageKey) resourcecache.Item {
	if e.Images == nil {
		return e.Resources.GetDummyColorImage()
	}
	w, h, format, pixels := e.Images.Image(key)
	return e.Resources.GetImage(key, w, h, format, pixels)
}

func (e *Emitter) resolveWebGL(key scene.WebGLImageKey) resourcecache.Item {
	return e.Resources.GetWebGLTexture(key, e.Resources.GetDummyColorImage())
}
