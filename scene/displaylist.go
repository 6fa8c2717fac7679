// SPDX-License-Identifier: Unlicense OR MIT

package scene

import "github.com/wrgo/wrcore/f32"

// StackingLevel names one of the six CSS-style painting phases a
// DisplayList's items are grouped into, painted in this order
// back-to-front.
type StackingLevel uint8

const (
	LevelBackgroundAndBorders StackingLevel = iota
	LevelBlockBackgroundAndBorders
	LevelFloats
	LevelPositionedContent
	LevelContent
	LevelOutlines
	numStackingLevels
)

// String names a StackingLevel for diagnostics.
func (l StackingLevel) String() string {
	switch l {
	case LevelBackgroundAndBorders:
		return "BackgroundAndBorders"
	case LevelBlockBackgroundAndBorders:
		return "BlockBackgroundAndBorders"
	case LevelFloats:
		return "Floats"
	case LevelPositionedContent:
		return "PositionedContent"
	case LevelContent:
		return "Content"
	case LevelOutlines:
		return "Outlines"
	default:
		return "Unknown"
	}
}

// SceneItemKind discriminates the variants of SceneItem.
type SceneItemKind uint8

const (
	SceneItemDrawList SceneItemKind = iota
	SceneItemStackingContext
	SceneItemIframe
)

// SceneItem is one entry in a DisplayList's per-level sequence: either a
// leaf draw list, a nested stacking context, or an embedded iframe
// document from another pipeline.
type SceneItem struct {
	Kind SceneItemKind

	// DrawList is valid when Kind == SceneItemDrawList.
	DrawList DrawListID

	// StackingContext is valid when Kind == SceneItemStackingContext.
	StackingContext StackingContextID

	// Iframe is valid when Kind == SceneItemIframe.
	Iframe IframeItem
}

// IframeItem embeds another pipeline's content at an offset, clipped to a
// local rect.
type IframeItem struct {
	Offset     f32.Point
	ClipRect   f32.Rectangle
	PipelineID PipelineID
}

// DisplayList is an ordered sequence of SceneItems, grouped by the
// stacking level they belong to. Levels are painted in StackingLevel
// order; within a level, items are painted in sequence order.
type DisplayList struct {
	PipelineID PipelineID
	Epoch      Epoch

	levels [numStackingLevels][]SceneItem

	// Context holds placement data for this display list: its origin in
	// scene space, the overflow rect it was clipped to, and the composed
	// transform from local to scene space. frame.Builder.Flatten does not
	// write it or HasContext; it keeps each stacking context's placement
	// in its own records, so these fields hold whatever the Scene's
	// author set.
	Context   DrawListContext
	HasContext bool
}

// Append adds item to level's sequence.
func (d *DisplayList) Append(level StackingLevel, item SceneItem) {
	d.levels[level] = append(d.levels[level], item)
}

// Items returns level's item sequence.
func (d *DisplayList) Items(level StackingLevel) []SceneItem {
	return d.levels[level]
}

// Levels iterates every stacking level in paint order, calling fn with
// each level's items.
func (d *DisplayList) Levels(fn func(level StackingLevel, items []SceneItem)) {
	for l := StackingLevel(0); l < numStackingLevels; l++ {
		fn(l, d.levels[l])
	}
}

// DrawListContext is the placement data of a display list occurrence
// (see DisplayList.Context): where its local origin lands in scene space,
// the overflow rect clipping its content, and the final transform
// carrying local-space geometry into scene space.
type DrawListContext struct {
	Origin         f32.Point
	Overflow       f32.Rectangle
	FinalTransform f32.Mat4
}
