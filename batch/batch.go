// SPDX-License-Identifier: Unlicense OR MIT

// Package batch groups packed vertices into GPU-ready draw batches:
// contiguous runs of vertices sharing a color texture, mask texture and
// tile-params budget. Directly translated from
// _examples/original_source/src/batch.rs.
package batch

import (
	"sync/atomic"

	"github.com/wrgo/wrcore/atlas"
	"github.com/wrgo/wrcore/device"
	"github.com/wrgo/wrcore/wrconst"
)

// ID identifies a VertexBuffer, process-wide and monotonically
// increasing, matching the renderer's process-wide id generator design.
type ID uint64

var idCounter uint64

func newID() ID {
	return ID(atomic.AddUint64(&idCounter, 1))
}

// TileParams parameterizes one sub-rect of an atlas page a batch's
// vertices sample from, letting a single draw call address several
// distinct source regions (e.g. a tiled image's repeated copies).
type TileParams struct {
	U0, V0, USize, VSize float32
}

// defaultTileParams is installed as a Batch's first tile-params slot so
// index 0 (wrconst.InvalidTileParam) always resolves to an identity
// mapping for vertices that don't need real tile params.
var defaultTileParams = TileParams{U0: 0, V0: 0, USize: 1, VSize: 1}

// Batch is one contiguous run of a VertexBuffer's indices that can be
// drawn with a single GPU draw call: all its vertices share a color and
// mask texture.
type Batch struct {
	ColorTexture atlas.TextureID
	MaskTexture  atlas.TextureID
	FirstVertex  uint16
	IndexCount   uint16
	TileParams   []TileParams
}

// NewBatch returns an empty Batch starting at firstVertex, with its
// tile-params slot 0 reserved for the identity mapping.
func NewBatch(colorTexture, maskTexture atlas.TextureID, firstVertex uint16) *Batch {
	return &Batch{
		ColorTexture: colorTexture,
		MaskTexture:  maskTexture,
		FirstVertex:  firstVertex,
		TileParams:   []TileParams{defaultTileParams},
	}
}

// CanAddToBatch reports whether a draw item needing the given textures
// (and, if needsTileParams, a fresh tile-params slot) can be folded into
// b rather than starting a new batch.
func (b *Batch) CanAddToBatch(colorTexture, maskTexture atlas.TextureID, needsTileParams bool) bool {
	if colorTexture != b.ColorTexture || maskTexture != b.MaskTexture {
		return false
	}
	if needsTileParams && len(b.TileParams) >= wrconst.MaxTileParamsPerBatch {
		return false
	}
	return true
}

// AddDrawItem records indexCount additional indices as belonging to b
// and, if tileParams is non-nil, appends it as a new tile-params slot,
// returning the slot index vertices should carry (or
// wrconst.InvalidTileParam if tileParams was nil).
func (b *Batch) AddDrawItem(indexCount uint16, tileParams *TileParams) uint8 {
	b.IndexCount += indexCount
	if tileParams == nil {
		return wrconst.InvalidTileParam
	}
	index := len(b.TileParams)
	b.TileParams = append(b.TileParams, *tileParams)
	return uint8(index)
}

// Primitive selects the index-generation scheme AddDrawItem uses to
// triangulate a run of vertices appended to the buffer.
type Primitive uint8

const (
	// PrimitiveQuads triangulates every run of 4 vertices as two
	// triangles via the (0,1,2,2,3,1) fan.
	PrimitiveQuads Primitive = iota
	// PrimitiveTriangles triangulates every run of 3 vertices directly.
	PrimitiveTriangles
	// PrimitiveTriangleFan triangulates the whole vertex run as a single
	// fan around its first vertex.
	PrimitiveTriangleFan
)

// VertexBuffer accumulates packed vertices and 16-bit indices for one
// AABB-tree leaf's compiled geometry. Id is assigned once, at
// construction, from a process-wide monotonic counter.
type VertexBuffer struct {
	ID       ID
	Vertices []device.PackedVertex
	Indices  []uint16
}

// NewVertexBuffer returns an empty VertexBuffer with a freshly allocated
// id.
func NewVertexBuffer() *VertexBuffer {
	return &VertexBuffer{ID: newID()}
}

// Builder accumulates Batches against a single VertexBuffer, opening a
// new Batch whenever the current one can't absorb the next draw item's
// textures or tile-params requirement.
type Builder struct {
	vb      *VertexBuffer
	batches []*Batch
}

// NewBuilder returns a Builder appending to vb.
func NewBuilder(vb *VertexBuffer) *Builder {
	return &Builder{vb: vb}
}

// Finalize returns the accumulated batches, ending this Builder's use of
// vb.
func (bd *Builder) Finalize() []*Batch {
	return bd.batches
}

// AddDrawItem triangulates vertices per kind, appends them (and their
// generated indices) to the underlying VertexBuffer, stamps each with
// matrixIndex and the tile-params slot tileParams resolves to, and
// returns that slot's index. vertices is mutated in place to carry the
// final matrix/tile-params indices before being copied into the buffer.
func (bd *Builder) AddDrawItem(matrixIndex uint8, colorTexture, maskTexture atlas.TextureID, kind Primitive, vertices []device.PackedVertex, tileParams *TileParams) uint8 {
	needNewBatch := true
	if len(bd.batches) > 0 {
		last := bd.batches[len(bd.batches)-1]
		needNewBatch = !last.CanAddToBatch(colorTexture, maskTexture, tileParams != nil)
	}

	indexOffset := len(bd.vb.Vertices)

	if needNewBatch {
		bd.batches = append(bd.batches, NewBatch(colorTexture, maskTexture, uint16(len(bd.vb.Indices))))
	}

	var indexCount uint16
	switch kind {
	case PrimitiveQuads:
		for i := 0; i+3 < len(vertices); i += 4 {
			base := uint16(indexOffset + i)
			bd.vb.Indices = append(bd.vb.Indices, base+0, base+1, base+2, base+2, base+3, base+1)
			indexCount += 6
		}
	case PrimitiveTriangles:
		for i := 0; i+2 < len(vertices); i += 3 {
			base := uint16(indexOffset + i)
			bd.vb.Indices = append(bd.vb.Indices, base+0, base+1, base+2)
			indexCount += 3
		}
	case PrimitiveTriangleFan:
		for i := 1; i < len(vertices)-1; i++ {
			bd.vb.Indices = append(bd.vb.Indices, uint16(indexOffset), uint16(indexOffset+i), uint16(indexOffset+i+1))
			indexCount += 3
		}
	}

	tileParamsIndex := bd.batches[len(bd.batches)-1].AddDrawItem(indexCount, tileParams)

	for i := range vertices {
		vertices[i].MatrixIndex = matrixIndex
		vertices[i].TileParams = uint32(tileParamsIndex)
	}
	bd.vb.Vertices = append(bd.vb.Vertices, vertices...)

	if len(bd.vb.Vertices) >= 65536 {
		panic("batch: vertex buffer exceeded 65535 vertices")
	}

	return tileParamsIndex
}
