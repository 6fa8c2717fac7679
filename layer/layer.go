// SPDX-License-Identifier: Unlicense OR MIT

// Package layer owns one scrollable region's aabb.Tree plus its scroll
// offset and boundary. Directly translated from
// _examples/original_source/src/layer.rs.
package layer

import (
	"github.com/wrgo/wrcore/aabb"
	"github.com/wrgo/wrcore/device"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/scene"
)

// Layer is one ScrollLayerID's worth of content: its own AABB tree plus
// the scroll offset currently applied to it. Its invariant is that each
// component of ScrollOffset stays within [min(0, viewport-boundary), 0],
// clamped by Scroll.
type Layer struct {
	Tree             *aabb.Tree
	ScrollOffset     f32.Point
	ScrollBoundaries f32.Point
}

// New returns a Layer covering sceneRect, with the given split size used
// by its aabb.Tree (see aabb.New).
func New(splitSize float32, sceneRect f32.Rectangle) *Layer {
	return &Layer{Tree: aabb.New(splitSize, sceneRect)}
}

// Reset calls destroy with the vertex-buffer id that compiled records
// for each compiled node (nodes absent from compiled are skipped), and
// clears every node's Compiled flag so the next compile pass treats it
// as fresh. It queues no update itself: pending is not written to.
// Mirrors layer.rs's reset.
func (l *Layer) Reset(pending *device.TextureUpdateList, compiled map[int]uint32, destroy func(id uint32)) {
	for i := range l.Tree.Nodes {
		node := &l.Tree.Nodes[i]
		if !node.HasCompiled {
			continue
		}
		if id, ok := compiled[i]; ok {
			destroy(id)
		}
		node.Compiled = nil
		node.HasCompiled = false
	}
}

// Insert records one display item's bounding rect under drawList at
// itemIndex, delegating to the underlying aabb.Tree.
func (l *Layer) Insert(rect f32.Rectangle, drawList scene.DrawListID, itemIndex int) {
	l.Tree.Insert(rect, drawList, itemIndex)
}

// Cull marks every node visible against viewportRect translated by the
// layer's current scroll offset, per layer.rs's cull (which applies
// -scroll_offset before delegating to the tree).
func (l *Layer) Cull(viewportRect f32.Rectangle) {
	adjusted := viewportRect.Add(f32.Pt(-l.ScrollOffset.X, -l.ScrollOffset.Y))
	l.Tree.Cull(adjusted)
}

// Scroll adjusts ScrollOffset by delta, clamping each axis to
// [min(0, viewportSize-ScrollBoundaries), 0] so the layer never scrolls
// past its content in either direction.
func (l *Layer) Scroll(delta f32.Point, viewportSize f32.Point) {
	l.ScrollOffset = l.ScrollOffset.Add(delta)
	l.ScrollOffset.X = clamp(l.ScrollOffset.X, minf(0, viewportSize.X-l.ScrollBoundaries.X), 0)
	l.ScrollOffset.Y = clamp(l.ScrollOffset.Y, minf(0, viewportSize.Y-l.ScrollBoundaries.Y), 0)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
