// SPDX-License-Identifier: Unlicense OR MIT

// Package compile turns one aabb.Node's buckets of display-item indices
// into a CompiledNode: a vertex buffer and the batches that index into
// it. Directly translated from node_compiler.rs's NodeCompiler trait and
// its sole AABBTreeNode implementation.
package compile

import (
	"github.com/wrgo/wrcore/aabb"
	"github.com/wrgo/wrcore/batch"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/primitive"
	"github.com/wrgo/wrcore/resourcecache"
	"github.com/wrgo/wrcore/scene"
)

// CompiledNode is the batched, ready-to-draw geometry for one leaf of
// the aabb.Tree, cached on aabb.Node.Compiled until a later scene change
// invalidates it.
type CompiledNode struct {
	VertexBuffer *batch.VertexBuffer
	Batches      []*batch.Batch
}

// Context supplies everything the compiler needs to resolve a bucket's
// DrawListID back to real display items and per-stacking-context clip
// offsets, mirroring node_compiler.rs's stacking_context_info and
// draw_list_groups parameters.
type Context struct {
	DrawLists         map[scene.DrawListID]scene.DrawList
	OffsetFromLayer   map[scene.StackingContextID]f32.Point
	LocalClipRect     map[scene.StackingContextID]f32.Rectangle
	Resources         *resourcecache.Cache
	Images            primitive.ImageProvider
	DevicePixelRatio  float32
	StackingContextOf func(scene.DrawListID) scene.StackingContextID
}

// Compiler produces a CompiledNode for one aabb.Node's buckets.
type Compiler struct {
	ctx Context
}

// New returns a Compiler resolving resources and draw lists through ctx.
func New(ctx Context) *Compiler {
	return &Compiler{ctx: ctx}
}

// CompileNode walks node's buckets in order, emitting each bucket's
// display items through a fresh primitive.Emitter sharing one
// batch.Builder/VertexBuffer, so items across buckets that share a
// texture still coalesce into one batch.
func (c *Compiler) CompileNode(node *aabb.Node, matrixIndexOf func(scene.StackingContextID) uint8) CompiledNode {
	vb := batch.NewVertexBuffer()
	bd := batch.NewBuilder(vb)

	for _, bucket := range node.Buckets {
		dl, ok := c.ctx.DrawLists[bucket.DrawList]
		if !ok {
			continue
		}
		sc := c.ctx.StackingContextOf(bucket.DrawList)
		offset := c.ctx.OffsetFromLayer[sc]
		localClip := c.ctx.LocalClipRect[sc]
		matrix := matrixIndexOf(sc)

		e := primitive.New(bd, c.ctx.Resources, c.ctx.Images, matrix)
		splitLocal := node.SplitRect.Add(f32.Pt(-offset.X, -offset.Y))

		for _, idx := range bucket.Indices {
			if idx < 0 || idx >= len(dl.Items) {
				continue
			}
			item := dl.Items[idx]
			clipRect, ok := clipRegion(item.Clip.Main, localClip, splitLocal)
			if !ok {
				continue
			}

			prevIn, hadIn := e.PushClipInRect(clipRect)
			var prevComplex *scene.ComplexClip
			if item.Clip.HasComplex {
				prevComplex = e.PushComplexClip(&item.Clip.Complex)
			} else {
				prevComplex = e.PushComplexClip(nil)
			}

			emitItem(e, item)

			e.PopComplexClip(prevComplex)
			e.PopClipInRect(prevIn, hadIn)
		}
	}

	batches := bd.Finalize()
	return CompiledNode{VertexBuffer: vb, Batches: batches}
}

// clipRegion intersects a display item's own clip rect with its
// stacking context's local clip rect and the node's split rect
// translated into layer-local space, per node_compiler.rs's clip_rect
// chain (display_item.clip.main, context.local_clip_rect, split_rect).
func clipRegion(item, contextLocal, splitLocal f32.Rectangle) (f32.Rectangle, bool) {
	r := item.Intersect(contextLocal)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return r, false
	}
	r = r.Intersect(splitLocal)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return r, false
	}
	return r, true
}

// emitItem dispatches item to the Emitter method matching its Kind,
// mirroring node_compiler.rs's match over SpecificDisplayItem.
func emitItem(e *primitive.Emitter, item scene.DisplayItem) {
	switch item.Kind {
	case scene.ItemRectangle:
		e.EmitRectangle(item.Rect, item.Rectangle.Color)
	case scene.ItemImage:
		e.EmitImage(item.Rect, item.Image)
	case scene.ItemWebGL:
		e.EmitWebGL(item.Rect, item.WebGL)
	case scene.ItemText:
		e.EmitText(item.Text)
	case scene.ItemGradient:
		e.EmitGradient(item.Rect, item.Gradient)
	case scene.ItemBoxShadow:
		e.EmitBoxShadow(item.BoxShadow)
	case scene.ItemBorder:
		e.EmitBorder(item.Rect, item.Border, 1)
	}
}
