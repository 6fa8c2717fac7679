// SPDX-License-Identifier: Unlicense OR MIT

// Package atlas implements a fixed-block-size texture atlas: four size
// classes, each paging fixed-size GPU textures into same-size blocks
// tracked by a bitset, falling back to a standalone texture for anything
// too large to fit a page. Directly grounded on
// _examples/original_source/src/texture_cache.rs's TexturePage/TextureCache.
package atlas

import "github.com/wrgo/wrcore/wrconst"

// TextureID names a GPU texture resource. Allocation of actual ids is the
// device package's responsibility; atlas only tracks which ids it has
// claimed and how their space is divided.
type TextureID uint32

// Kind reports whether a Result landed in a shared atlas page or was
// allocated as its own standalone texture.
type Kind uint8

const (
	KindPage Kind = iota
	KindStandalone
)

// Result describes where a request was placed: the texture it landed in,
// its pixel origin within that texture, and whether that texture is a
// shared atlas page or a dedicated standalone texture.
type Result struct {
	Texture TextureID
	X, Y    uint32
	Kind    Kind
}

// page is one fixed-size (wrconst.AtlasPageSize²) texture, subdivided
// into blockSize² cells tracked by a flat bitset, first-clear-bit
// allocation, never compacted or freed block-by-block (matching the
// teacher's "todo: defragmentation" scope).
type page struct {
	texture     TextureID
	blockSize   uint32
	blocksPerRow uint32
	alloc       []bool
}

func newPage(texture TextureID, blockSize uint32) *page {
	blocksPerRow := uint32(wrconst.AtlasPageSize) / blockSize
	return &page{
		texture:      texture,
		blockSize:    blockSize,
		blocksPerRow: blocksPerRow,
		alloc:        make([]bool, blocksPerRow*blocksPerRow),
	}
}

func (p *page) isFull() bool {
	for _, v := range p.alloc {
		if !v {
			return false
		}
	}
	return true
}

// allocate claims the first free block, returning its block coordinates.
// The caller must first check isFull.
func (p *page) allocate() (bx, by uint32) {
	for i, v := range p.alloc {
		if !v {
			p.alloc[i] = true
			idx := uint32(i)
			return idx % p.blocksPerRow, idx / p.blocksPerRow
		}
	}
	panic("atlas: allocate called on a full page")
}

// level holds the pages for one of the four fixed block sizes, split by
// format since a page's storage format is fixed at creation.
type level struct {
	blockSize uint32
	pagesA8   []*page
	pagesRGB8 []*page
	pagesRGBA8 []*page
}

// NewTextureFunc allocates a fresh backing texture of size×size pixels in
// the given format and returns the id the atlas should track it under. It
// is supplied by the device/renderer layer, which owns real GPU texture
// ids; Atlas itself never talks to a GPU.
type NewTextureFunc func(size uint32, format Format) TextureID

// Format mirrors scene.ImageFormat without importing the scene package,
// keeping atlas usable standalone (e.g. from device, which atlas must not
// import scene through).
type Format uint8

const (
	FormatA8 Format = iota
	FormatRGB8
	FormatRGBA8
)

// Atlas packs same-format raster resources of varying, but bounded, sizes
// into a small number of shared GPU textures. Requests wider or taller
// than the largest block size are allocated a standalone texture instead.
type Atlas struct {
	newTexture NewTextureFunc
	levels     [4]level
}

// New returns an empty Atlas that calls newTexture whenever it needs to
// back a fresh page or standalone allocation.
func New(newTexture NewTextureFunc) *Atlas {
	a := &Atlas{newTexture: newTexture}
	for i, bs := range wrconst.AtlasBlockSizes {
		a.levels[i] = level{blockSize: uint32(bs)}
	}
	return a
}

// Allocate reserves space for a width×height resource in format, packing
// it into a shared page when it fits one of the four block sizes, or
// allocating a standalone texture otherwise.
func (a *Atlas) Allocate(width, height uint32, format Format) Result {
	for i := range a.levels {
		lvl := &a.levels[i]
		if width > lvl.blockSize || height > lvl.blockSize {
			continue
		}
		pages, mode := a.pagesFor(lvl, format)
		var p *page
		if len(*pages) == 0 || (*pages)[len(*pages)-1].isFull() {
			tex := a.newTexture(wrconst.AtlasPageSize, mode)
			p = newPage(tex, lvl.blockSize)
			*pages = append(*pages, p)
		} else {
			p = (*pages)[len(*pages)-1]
		}
		bx, by := p.allocate()
		return Result{
			Texture: p.texture,
			X:       bx * lvl.blockSize,
			Y:       by * lvl.blockSize,
			Kind:    KindPage,
		}
	}
	size := width
	if height > size {
		size = height
	}
	tex := a.newTexture(size, format)
	return Result{Texture: tex, X: 0, Y: 0, Kind: KindStandalone}
}

func (a *Atlas) pagesFor(lvl *level, format Format) (*[]*page, Format) {
	switch format {
	case FormatA8:
		return &lvl.pagesA8, FormatA8
	case FormatRGB8:
		return &lvl.pagesRGB8, FormatRGB8
	default:
		return &lvl.pagesRGBA8, FormatRGBA8
	}
}
