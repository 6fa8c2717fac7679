// SPDX-License-Identifier: Unlicense OR MIT

// Package resourcecache owns the atlas-backed texture cache and the
// per-frame generation bookkeeping that ages out resources a frame no
// longer references. The double-map (res/newRes) age-out discipline is
// adapted directly from gioui.org/gpu's resourceCache; the allocate-or-
// standalone policy and pending-updates queue are adapted from
// _examples/original_source/src/texture_cache.rs.
package resourcecache

import (
	"github.com/wrgo/wrcore/atlas"
	"github.com/wrgo/wrcore/device"
	"github.com/wrgo/wrcore/raster"
	"github.com/wrgo/wrcore/scene"
)

// Item is a shared (copy-by-value) descriptor locating one cached
// resource's pixels: the texture it lives in, its pixel origin and size,
// and its normalized uv rect within that texture.
type Item struct {
	Texture    atlas.TextureID
	Format     scene.ImageFormat
	X, Y       int32
	Width      uint32
	Height     uint32
	U0, V0, U1, V1 float32
}

// entry is the unit of age-out bookkeeping: the shared Item only. Pixel
// bytes are not kept; they go straight into the queued TextureUpdate.
type entry struct {
	item Item
}

// Cache maps scene resource keys (images, glyphs, raster ops) to cached
// texture items, backed by a shared Atlas, and tracks which keys a given
// frame actually touched so untouched ones can be evicted.
type Cache struct {
	atlas *atlas.Atlas

	images map[scene.ImageKey]entry
	newImages map[scene.ImageKey]entry

	glyphs map[scene.GlyphKey]entry
	newGlyphs map[scene.GlyphKey]entry

	rasters map[uint64]entry
	newRasters map[uint64]entry

	webgl map[scene.WebGLImageKey]entry
	newWebgl map[scene.WebGLImageKey]entry

	pending device.TextureUpdateList

	nextTexture atlas.TextureID
}

// New returns an empty Cache backed by a fresh Atlas.
func New() *Cache {
	c := &Cache{
		images:     map[scene.ImageKey]entry{},
		newImages:  map[scene.ImageKey]entry{},
		glyphs:     map[scene.GlyphKey]entry{},
		newGlyphs:  map[scene.GlyphKey]entry{},
		rasters:    map[uint64]entry{},
		newRasters: map[uint64]entry{},
		webgl:      map[scene.WebGLImageKey]entry{},
		newWebgl:   map[scene.WebGLImageKey]entry{},
	}
	c.atlas = atlas.New(c.allocTexture)
	return c
}

func (c *Cache) allocTexture(size uint32, format atlas.Format) atlas.TextureID {
	c.nextTexture++
	id := c.nextTexture
	var mode device.RenderTargetMode
	if format == atlas.FormatA8 {
		mode = device.RenderTargetTarget
	}
	c.pending.Push(device.TextureUpdate{
		ID: device.TextureID(id),
		Op: device.TextureUpdateOp{
			Kind:   device.TextureOpCreate,
			Width:  size,
			Height: size,
			Format: formatFor(format),
			Mode:   mode,
		},
	})
	return id
}

func formatFor(f atlas.Format) scene.ImageFormat {
	switch f {
	case atlas.FormatA8:
		return scene.FormatA8
	case atlas.FormatRGB8:
		return scene.FormatRGB8
	default:
		return scene.FormatRGBA8
	}
}

func atlasFormat(f scene.ImageFormat) atlas.Format {
	switch f {
	case scene.FormatA8:
		return atlas.FormatA8
	case scene.FormatRGB8:
		return atlas.FormatRGB8
	default:
		return atlas.FormatRGBA8
	}
}

// GetImage returns the cached Item for key, allocating and queuing an
// upload of pixels if it is not already cached, and marks it touched for
// this frame.
func (c *Cache) GetImage(key scene.ImageKey, width, height uint32, format scene.ImageFormat, pixels []byte) Item {
	if e, ok := c.images[key]; ok {
		c.newImages[key] = e
		return e.item
	}
	item := c.allocate(width, height, format, pixels)
	e := entry{item: item}
	c.images[key] = e
	c.newImages[key] = e
	return item
}

// GetGlyph returns the cached Item for key, rasterizing via pixels if not
// already cached.
func (c *Cache) GetGlyph(key scene.GlyphKey, width, height uint32, pixels []byte) Item {
	if e, ok := c.glyphs[key]; ok {
		c.newGlyphs[key] = e
		return e.item
	}
	item := c.allocate(width, height, scene.FormatA8, pixels)
	e := entry{item: item}
	c.glyphs[key] = e
	c.newGlyphs[key] = e
	return item
}

// GetRaster returns the cached Item for a raster.Item, rasterizing via
// render if not already cached. render takes no arguments and must
// return width×height pixels of rasterized A8 (or format-specific)
// bytes.
func (c *Cache) GetRaster(item raster.Item, width, height uint32, format scene.ImageFormat, render func() []byte) Item {
	key := item.Key()
	if e, ok := c.rasters[key]; ok {
		c.newRasters[key] = e
		return e.item
	}
	pixels := render()
	cached := c.allocate(width, height, format, pixels)
	e := entry{item: cached}
	c.rasters[key] = e
	c.newRasters[key] = e
	return cached
}

// GetWebGLTexture passes through a host-rendered WebGL surface's Item
// without allocating atlas space of its own; the backend owns the
// texture, resourcecache merely tracks its liveness for age-out.
func (c *Cache) GetWebGLTexture(key scene.WebGLImageKey, item Item) Item {
	e := entry{item: item}
	c.webgl[key] = e
	c.newWebgl[key] = e
	return item
}

var dummyColorItem = Item{U0: 0, V0: 0, U1: 1, V1: 1, Width: 1, Height: 1, Format: scene.FormatRGBA8}
var dummyMaskItem = Item{U0: 0, V0: 0, U1: 1, V1: 1, Width: 1, Height: 1, Format: scene.FormatA8}

// GetDummyColorImage returns a 1x1 opaque-white placeholder item used to
// drive a Rectangle primitive through the same textured-quad code path
// as an Image primitive.
func (c *Cache) GetDummyColorImage() Item { return dummyColorItem }

// GetDummyMaskImage returns a 1x1 fully-covered placeholder mask item
// used by primitives with no real mask texture.
func (c *Cache) GetDummyMaskImage() Item { return dummyMaskItem }

func (c *Cache) allocate(width, height uint32, format scene.ImageFormat, pixels []byte) Item {
	res := c.atlas.Allocate(width, height, atlasFormat(format))
	var u0, v0, u1, v1 float32
	switch res.Kind {
	case atlas.KindPage:
		const pageSize = 1024.0
		u0 = float32(res.X) / pageSize
		v0 = float32(res.Y) / pageSize
		u1 = u0 + float32(width)/pageSize
		v1 = v0 + float32(height)/pageSize
	default:
		u0, v0, u1, v1 = 0, 0, 1, 1
	}
	item := Item{
		Texture: res.Texture,
		Format:  format,
		X:       int32(res.X),
		Y:       int32(res.Y),
		Width:   width,
		Height:  height,
		U0:      u0, V0: v0, U1: u1, V1: v1,
	}
	op := device.TextureUpdateOp{Kind: device.TextureOpUpdate, X: res.X, Y: res.Y, Width: width, Height: height}
	if res.Kind == atlas.KindStandalone {
		op = device.TextureUpdateOp{Kind: device.TextureOpCreate, Width: width, Height: height, Format: format, Pixels: pixels, HasPixels: true}
	} else {
		op.Details = device.TextureUpdateDetails{Kind: device.DetailsBlit, Blit: pixels}
	}
	c.pending.Push(device.TextureUpdate{ID: device.TextureID(res.Texture), Op: op})
	return item
}

// PendingUpdates drains and returns every texture update queued since the
// last call.
func (c *Cache) PendingUpdates() device.TextureUpdateList {
	updates := c.pending
	c.pending = device.TextureUpdateList{}
	return updates
}

// Frame ages out cache entries that were not touched (via a Get* call)
// since the previous call to Frame, the same single-pass double-map
// discipline gio's resourceCache.frame uses.
func (c *Cache) Frame() {
	ageMapImage(c.images, c.newImages)
	ageMapGlyph(c.glyphs, c.newGlyphs)
	ageMapRaster(c.rasters, c.newRasters)
	ageMapWebGL(c.webgl, c.newWebgl)
}

func ageMapImage(res, newRes map[scene.ImageKey]entry) {
	for k := range res {
		if _, ok := newRes[k]; !ok {
			delete(res, k)
		}
	}
	for k, v := range newRes {
		delete(newRes, k)
		res[k] = v
	}
}

func ageMapGlyph(res, newRes map[scene.GlyphKey]entry) {
	for k := range res {
		if _, ok := newRes[k]; !ok {
			delete(res, k)
		}
	}
	for k, v := range newRes {
		delete(newRes, k)
		res[k] = v
	}
}

func ageMapRaster(res, newRes map[uint64]entry) {
	for k := range res {
		if _, ok := newRes[k]; !ok {
			delete(res, k)
		}
	}
	for k, v := range newRes {
		delete(newRes, k)
		res[k] = v
	}
}

func ageMapWebGL(res, newRes map[scene.WebGLImageKey]entry) {
	for k := range res {
		if _, ok := newRes[k]; !ok {
			delete(res, k)
		}
	}
	for k, v := range newRes {
		delete(newRes, k)
		res[k] = v
	}
}
