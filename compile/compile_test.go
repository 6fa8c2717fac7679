// SPDX-License-Identifier: Unlicense OR MIT

package compile

import (
	"testing"

	"github.com/wrgo/wrcore/aabb"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/resourcecache"
	"github.com/wrgo/wrcore/scene"
)

func TestCompileNodeSingleOpaqueRect(t *testing.T) {
	dl := scene.DrawList{
		Items: []scene.DisplayItem{
			{
				Rect:      f32.Rect(0, 0, 10, 10),
				Clip:      scene.SimpleClip(f32.Rect(0, 0, 10, 10)),
				Kind:      scene.ItemRectangle,
				Rectangle: scene.RectangleItem{Color: scene.ColorF{R: 1, A: 1}},
			},
		},
	}

	ctx := Context{
		DrawLists:         map[scene.DrawListID]scene.DrawList{1: dl},
		OffsetFromLayer:   map[scene.StackingContextID]f32.Point{0: {}},
		LocalClipRect:     map[scene.StackingContextID]f32.Rectangle{0: f32.Rect(-1e6, -1e6, 1e6, 1e6)},
		Resources:         resourcecache.New(),
		DevicePixelRatio:  1,
		StackingContextOf: func(scene.DrawListID) scene.StackingContextID { return 0 },
	}
	c := New(ctx)

	node := &aabb.Node{
		SplitRect: f32.Rect(-1e6, -1e6, 1e6, 1e6),
		Buckets:   []aabb.Bucket{{DrawList: 1, Indices: []int{0}}},
	}

	compiled := c.CompileNode(node, func(scene.StackingContextID) uint8 { return 0 })
	if len(compiled.VertexBuffer.Vertices) != 4 {
		t.Fatalf("expected one quad's worth of vertices, got %d", len(compiled.VertexBuffer.Vertices))
	}
	if len(compiled.Batches) != 1 {
		t.Fatalf("expected a single batch, got %d", len(compiled.Batches))
	}
}

func TestCompileNodeTwoAdjacentRectsSameDrawList(t *testing.T) {
	dl := scene.DrawList{
		Items: []scene.DisplayItem{
			{Rect: f32.Rect(0, 0, 10, 10), Clip: scene.SimpleClip(f32.Rect(0, 0, 10, 10)), Kind: scene.ItemRectangle, Rectangle: scene.RectangleItem{Color: scene.ColorF{R: 1, A: 1}}},
			{Rect: f32.Rect(10, 0, 20, 10), Clip: scene.SimpleClip(f32.Rect(10, 0, 20, 10)), Kind: scene.ItemRectangle, Rectangle: scene.RectangleItem{Color: scene.ColorF{G: 1, A: 1}}},
		},
	}
	ctx := Context{
		DrawLists:         map[scene.DrawListID]scene.DrawList{1: dl},
		OffsetFromLayer:   map[scene.StackingContextID]f32.Point{0: {}},
		LocalClipRect:     map[scene.StackingContextID]f32.Rectangle{0: f32.Rect(-1e6, -1e6, 1e6, 1e6)},
		Resources:         resourcecache.New(),
		DevicePixelRatio:  1,
		StackingContextOf: func(scene.DrawListID) scene.StackingContextID { return 0 },
	}
	c := New(ctx)
	node := &aabb.Node{
		SplitRect: f32.Rect(-1e6, -1e6, 1e6, 1e6),
		Buckets:   []aabb.Bucket{{DrawList: 1, Indices: []int{0, 1}}},
	}
	compiled := c.CompileNode(node, func(scene.StackingContextID) uint8 { return 0 })
	if len(compiled.VertexBuffer.Vertices) != 8 {
		t.Fatalf("expected two quads (8 vertices), got %d", len(compiled.VertexBuffer.Vertices))
	}
	if len(compiled.Batches) != 1 {
		t.Fatalf("expected both rects to share one batch (same dummy color texture), got %d", len(compiled.Batches))
	}
}

func TestCompileNodeClipExcludesOutOfBoundsItem(t *testing.T) {
	dl := scene.DrawList{
		Items: []scene.DisplayItem{
			{Rect: f32.Rect(1000, 1000, 1010, 1010), Clip: scene.SimpleClip(f32.Rect(1000, 1000, 1010, 1010)), Kind: scene.ItemRectangle, Rectangle: scene.RectangleItem{Color: scene.ColorF{A: 1}}},
		},
	}
	ctx := Context{
		DrawLists:         map[scene.DrawListID]scene.DrawList{1: dl},
		OffsetFromLayer:   map[scene.StackingContextID]f32.Point{0: {}},
		LocalClipRect:     map[scene.StackingContextID]f32.Rectangle{0: f32.Rect(-1e6, -1e6, 1e6, 1e6)},
		Resources:         resourcecache.New(),
		DevicePixelRatio:  1,
		StackingContextOf: func(scene.DrawListID) scene.StackingContextID { return 0 },
	}
	c := New(ctx)
	node := &aabb.Node{
		SplitRect: f32.Rect(0, 0, 10, 10),
		Buckets:   []aabb.Bucket{{DrawList: 1, Indices: []int{0}}},
	}
	compiled := c.CompileNode(node, func(scene.StackingContextID) uint8 { return 0 })
	if len(compiled.VertexBuffer.Vertices) != 0 {
		t.Fatalf("expected the out-of-split-rect item to be clipped away, got %d vertices", len(compiled.VertexBuffer.Vertices))
	}
}
