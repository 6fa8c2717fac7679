// SPDX-License-Identifier: Unlicense OR MIT

package batch

import (
	"testing"

	"github.com/wrgo/wrcore/device"
)

func quad(m uint8) []device.PackedVertex {
	return []device.PackedVertex{
		device.NewPackedVertex(0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, m, 0),
		device.NewPackedVertex(1, 0, 0, 1, 0, 0, 1, 1, 0, 1, 0, m, 0),
		device.NewPackedVertex(1, 1, 0, 1, 0, 0, 1, 1, 1, 1, 1, m, 0),
		device.NewPackedVertex(0, 1, 0, 1, 0, 0, 1, 0, 1, 0, 1, m, 0),
	}
}

func TestVertexBufferIDsMonotonic(t *testing.T) {
	a := NewVertexBuffer()
	b := NewVertexBuffer()
	if b.ID <= a.ID {
		t.Fatalf("expected monotonically increasing ids, got %d then %d", a.ID, b.ID)
	}
}

func TestSingleQuadSixIndices(t *testing.T) {
	vb := NewVertexBuffer()
	bd := NewBuilder(vb)
	bd.AddDrawItem(0, 1, 2, PrimitiveQuads, quad(0), nil)
	if len(vb.Vertices) != 4 || len(vb.Indices) != 6 {
		t.Fatalf("expected 4 vertices/6 indices, got %d/%d", len(vb.Vertices), len(vb.Indices))
	}
}

func TestTwoQuadsSameTexturesShareBatch(t *testing.T) {
	vb := NewVertexBuffer()
	bd := NewBuilder(vb)
	bd.AddDrawItem(0, 1, 2, PrimitiveQuads, quad(0), nil)
	bd.AddDrawItem(0, 1, 2, PrimitiveQuads, quad(0), nil)
	batches := bd.Finalize()
	if len(batches) != 1 {
		t.Fatalf("expected one shared batch, got %d", len(batches))
	}
	if len(vb.Vertices) != 8 || len(vb.Indices) != 12 {
		t.Fatalf("expected 8 vertices/12 indices, got %d/%d", len(vb.Vertices), len(vb.Indices))
	}
}

func TestDifferentTexturesSplitBatch(t *testing.T) {
	vb := NewVertexBuffer()
	bd := NewBuilder(vb)
	bd.AddDrawItem(0, 1, 2, PrimitiveQuads, quad(0), nil)
	bd.AddDrawItem(0, 3, 2, PrimitiveQuads, quad(0), nil)
	batches := bd.Finalize()
	if len(batches) != 2 {
		t.Fatalf("expected a new batch when the color texture changes, got %d", len(batches))
	}
}

func TestTileParamsOverflowSplitsBatch(t *testing.T) {
	vb := NewVertexBuffer()
	bd := NewBuilder(vb)
	tp := TileParams{U0: 0, V0: 0, USize: 1, VSize: 1}
	for i := 0; i < 255; i++ {
		bd.AddDrawItem(0, 1, 2, PrimitiveQuads, quad(0), &tp)
	}
	batches := bd.Finalize()
	if len(batches) != 1 {
		t.Fatalf("expected 255 tile-params draws to fit in one batch (cap 256, 1 reserved), got %d batches", len(batches))
	}
	bd.AddDrawItem(0, 1, 2, PrimitiveQuads, quad(0), &tp)
	batches = bd.Finalize()
	if len(batches) != 2 {
		t.Fatalf("expected the 256th tile-params draw to split into a new batch, got %d", len(batches))
	}
}

func TestTriangleFan(t *testing.T) {
	vb := NewVertexBuffer()
	bd := NewBuilder(vb)
	verts := append(quad(0), device.NewPackedVertex(0.5, 0.5, 0, 1, 0, 0, 1, 0.5, 0.5, 0, 0, 0, 0))
	bd.AddDrawItem(0, 1, 2, PrimitiveTriangleFan, verts, nil)
	if len(vb.Indices) != 9 {
		t.Fatalf("expected (5-2)*3=9 indices for a 5-vertex fan, got %d", len(vb.Indices))
	}
}

func TestRasterBatchRejectsSameTexture(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when dest and color textures match")
		}
	}()
	NewRasterBatch(1, 1, BlurHorizontal, false)
}
