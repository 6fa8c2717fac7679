// SPDX-License-Identifier: Unlicense OR MIT

package scene

import "github.com/wrgo/wrcore/f32"

// ImageFormat is the closed set of pixel formats a host may register
// image or raster resources under; it also selects which TextureAtlas
// level a resource is packed into.
type ImageFormat uint8

const (
	FormatA8 ImageFormat = iota
	FormatRGB8
	FormatRGBA8
)

// ImageKey identifies one image resource registered with the resource
// cache, opaque to wrcore.
type ImageKey uint64

// ImageItem paints a possibly-stretched, possibly-tiled image into its
// DisplayItem's rect.
type ImageItem struct {
	Key ImageKey

	// StretchSize is the size, in local units, one copy of the image is
	// drawn at. It defaults to the DisplayItem's own rect size when
	// zero, in which case the image is drawn once, unstretched.
	StretchSize f32.Point

	// TileSpacing is the gap, in local units, left between repeated
	// copies along each axis.
	TileSpacing f32.Point
}

// WebGLImageKey identifies an offscreen WebGL-rendered surface to
// composite as if it were an image.
type WebGLImageKey uint64

// WebGLItem composites an offscreen WebGL surface into its DisplayItem's
// rect, optionally flipped to account for the source's coordinate
// convention.
type WebGLItem struct {
	Key     WebGLImageKey
	FlipY   bool
}

// GlyphKey identifies one rasterized glyph: a font resource plus a glyph
// index and the sub-pixel offset it was rasterized at.
type GlyphKey struct {
	Font      ImageKey
	Index     uint32
	SubpixelX uint8
	SubpixelY uint8
}

// GlyphInstance places one glyph at a local-space origin.
type GlyphInstance struct {
	Key    GlyphKey
	Origin f32.Point
}

// TextItem paints a run of glyphs from one font resource, sharing a
// color.
type TextItem struct {
	Glyphs []GlyphInstance
	Color  ColorF
	// FontSize is in device pixels, used to pick the rasterization size
	// class a glyph is cached under.
	FontSize float32
}
