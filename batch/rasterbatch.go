// SPDX-License-Identifier: Unlicense OR MIT

package batch

import "github.com/wrgo/wrcore/atlas"

// BlurDirection mirrors device.BlurDirection for raster-job batching,
// kept as its own type since a RasterBatch without a blur pass carries
// HasBlurDirection=false rather than a meaningless direction value.
type BlurDirection uint8

const (
	BlurHorizontal BlurDirection = iota
	BlurVertical
)

// RasterVertex is the vertex layout a texture-cache update draw call
// uses: just a position and source uv, since raster jobs write directly
// into an atlas page rather than compositing color/mask textures.
type RasterVertex struct {
	X, Y   float32
	U, V   float32
}

// RasterBatch groups the vertices of one or more procedural raster jobs
// (border-corner masks, box-shadow pieces, blur passes) that share a
// destination texture, source texture and blur configuration, so they
// can be rasterized with a single draw call.
type RasterBatch struct {
	DestTexture         atlas.TextureID
	ColorTexture        atlas.TextureID
	BlurDirection       BlurDirection
	HasBlurDirection    bool
	Vertices            []RasterVertex
	Indices             []uint16
}

// NewRasterBatch returns an empty RasterBatch. destTexture and
// colorTexture must differ: a raster job always reads from one texture
// and writes to another.
func NewRasterBatch(destTexture, colorTexture atlas.TextureID, blurDirection BlurDirection, hasBlurDirection bool) *RasterBatch {
	if destTexture == colorTexture {
		panic("batch: raster batch dest and color textures must differ")
	}
	return &RasterBatch{
		DestTexture:      destTexture,
		ColorTexture:     colorTexture,
		BlurDirection:    blurDirection,
		HasBlurDirection: hasBlurDirection,
	}
}

// CanAddToBatch reports whether a raster job targeting destTexture,
// reading colorTexture, with the given blur configuration, can be
// folded into rb.
func (rb *RasterBatch) CanAddToBatch(destTexture, colorTexture atlas.TextureID, blurDirection BlurDirection, hasBlurDirection bool) bool {
	return destTexture == rb.DestTexture &&
		colorTexture == rb.ColorTexture &&
		hasBlurDirection == rb.HasBlurDirection &&
		(!hasBlurDirection || blurDirection == rb.BlurDirection)
}

// AddDrawItem triangulates vertices (a sequence of 4-vertex quads, the
// (0,1,2,2,3,1) fan) and appends them to rb.
func (rb *RasterBatch) AddDrawItem(vertices []RasterVertex) {
	for i := 0; i+3 < len(vertices); i += 4 {
		offset := len(rb.Vertices) + i
		base := uint16(offset)
		rb.Indices = append(rb.Indices, base+0, base+1, base+2, base+2, base+3, base+1)
	}
	rb.Vertices = append(rb.Vertices, vertices...)
}
