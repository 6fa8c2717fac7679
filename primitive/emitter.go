// SPDX-License-Identifier: Unlicense OR MIT

// Package primitive turns scene.DisplayItems into batch.Builder draw
// calls: it is the per-leaf primitive compiler node_compiler.rs and
// batch_builder.rs implement in the original. Every Emit* method is
// grounded on the corresponding add_* function in
// _examples/original_source/src/batch_builder.rs, adapted to the
// resourcecache.Cache/batch.Builder split this module uses in place of
// the original's single ResourceCache+BatchBuilder pairing.
package primitive

import (
	"github.com/wrgo/wrcore/batch"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/resourcecache"
	"github.com/wrgo/wrcore/scene"
)

// clipStateKind discriminates the active clip mode Emitter applies to
// every rectangle it draws.
type clipStateKind uint8

const (
	clipNone clipStateKind = iota
	clipIn
	clipOut
)

// ImageProvider resolves the raw pixel data behind a scene.ImageKey or
// scene.GlyphKey the first time the Emitter touches it; resourcecache.Cache
// only needs this data on first use, caching it thereafter. Hosts supply
// one instance per Renderer, backing it with their own image and font
// rasterization stores (font rasterization and image decoding are out of
// scope for this module).
type ImageProvider interface {
	Image(key scene.ImageKey) (width, height uint32, format scene.ImageFormat, pixels []byte)
	Glyph(key scene.GlyphKey, fontSize float32) (width, height uint32, pixels []byte)
}

// Emitter walks one leaf's primitives, maintaining an explicit clip
// stack (mirroring batch_builder.rs's self.clip_stack / complex_clip
// fields) and appending their triangulated geometry to a batch.Builder.
type Emitter struct {
	Batch     *batch.Builder
	Resources *resourcecache.Cache
	Images    ImageProvider
	Matrix    uint8

	clipRect    f32.Rectangle
	hasClipRect bool
	clipOutRect f32.Rectangle
	hasClipOut  bool
	complexClip *scene.ComplexClip
}

// New returns an Emitter appending draws to bd, resolving resources
// through cache and images, using matrixIndex as every vertex's palette
// slot.
func New(bd *batch.Builder, cache *resourcecache.Cache, images ImageProvider, matrixIndex uint8) *Emitter {
	return &Emitter{Batch: bd, Resources: cache, Images: images, Matrix: matrixIndex}
}

// PushClipInRect narrows the active clip-in rect to its intersection
// with rect, per gio-adjacent clip-stack push/pop idiom
// (op/clip/clip.go's ClipOp stack), restored by a matching
// PopClipInRect.
func (e *Emitter) PushClipInRect(rect f32.Rectangle) (prev f32.Rectangle, hadPrev bool) {
	prev, hadPrev = e.clipRect, e.hasClipRect
	if hadPrev {
		rect = rect.Intersect(prev)
	}
	e.clipRect, e.hasClipRect = rect, true
	return prev, hadPrev
}

// PopClipInRect restores the clip-in rect to what PushClipInRect
// returned.
func (e *Emitter) PopClipInRect(prev f32.Rectangle, hadPrev bool) {
	e.clipRect, e.hasClipRect = prev, hadPrev
}

// SetClipOutRect installs rect as an inverse clip (content inside rect is
// excluded), returning the previous clip-out rect so the caller can
// restore it. A zero hadPrev means "no clip-out was active".
func (e *Emitter) SetClipOutRect(rect f32.Rectangle, has bool) (prevRect f32.Rectangle, hadPrev bool) {
	prevRect, hadPrev = e.clipOutRect, e.hasClipOut
	e.clipOutRect, e.hasClipOut = rect, has
	return prevRect, hadPrev
}

// PushComplexClip installs clip as the active rounded-corner clip for
// the rectangles emitted until a matching pop.
func (e *Emitter) PushComplexClip(clip *scene.ComplexClip) *scene.ComplexClip {
	prev := e.complexClip
	e.complexClip = clip
	return prev
}

// PopComplexClip restores the complex clip PushComplexClip returned.
func (e *Emitter) PopComplexClip(prev *scene.ComplexClip) {
	e.complexClip = prev
}

// effectiveRect intersects rect with the active clip-in rect (if any)
// and reports false if the result, or rect itself against an active
// clip-out rect, has no area left to draw — empty clips are silently
// skipped rather than treated as an error.
func (e *Emitter) effectiveRect(rect f32.Rectangle) (f32.Rectangle, bool) {
	if e.hasClipRect {
		rect = rect.Intersect(e.clipRect)
	}
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return rect, false
	}
	if e.hasClipOut && rect.In(e.clipOutRect) {
		return rect, false
	}
	return rect, true
}

// colorTexture resolves the dummy white 1x1 image used to draw flat
// color rectangles through the same textured-quad path as a real image.
func (e *Emitter) colorTexture() resourcecache.Item {
	return e.Resources.GetDummyColorImage()
}

func (e *Emitter) maskTexture() resourcecache.Item {
	return e.Resources.GetDummyMaskImage()
}
