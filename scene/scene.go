// SPDX-License-Identifier: Unlicense OR MIT

// Package scene holds the external, read-only input to frame building: the
// tree of pipelines, stacking contexts and display lists a host hands to
// the renderer. Nothing in this package is mutated once a Scene is handed
// to a frame Builder; scene-scope replacement builds a fresh Scene rather
// than patching an existing one, mirroring the immutable-snapshot style of
// gioui.org/op's recorded operation lists.
package scene

import "github.com/wrgo/wrcore/f32"

// PipelineID identifies one independent rendering root, e.g. one browser
// tab or one embedded iframe document.
type PipelineID uint32

// DisplayListID identifies one DisplayList within a Scene.
type DisplayListID uint32

// StackingContextID identifies one StackingContext within a Scene.
type StackingContextID uint32

// DrawListID identifies one DrawList owned by a DisplayList's stacking
// level. It is assigned by the host when building display lists and is
// opaque to wrcore.
type DrawListID uint32

// ScrollLayerID identifies a scrollable layer. The zero value, ScrollLayerID(0),
// is conventionally the root scroll layer.
type ScrollLayerID uint32

// Epoch is a monotonically increasing generation counter a host bumps
// each time it rebuilds a Pipeline's content, so the renderer can detect
// stale references.
type Epoch uint32

// Scene is the full external input to one frame-building pass: every
// pipeline, display list and stacking context the host currently knows
// about. A Scene is treated as read-only for the lifetime of a build.
type Scene struct {
	Pipelines        map[PipelineID]Pipeline
	DisplayLists     map[DisplayListID]DisplayList
	StackingContexts map[StackingContextID]StackingContext
	// DrawLists holds the actual item sequence each DrawListID in a
	// DisplayList's SceneItems resolves to.
	DrawLists map[DrawListID]DrawList

	// RootPipeline is the pipeline the frame builder starts flattening
	// from. The zero value means no root has been set.
	RootPipeline   PipelineID
	HasRootPipeline bool
}

// NewScene returns an empty, usable Scene.
func NewScene() *Scene {
	return &Scene{
		Pipelines:        map[PipelineID]Pipeline{},
		DisplayLists:     map[DisplayListID]DisplayList{},
		StackingContexts: map[StackingContextID]StackingContext{},
		DrawLists:        map[DrawListID]DrawList{},
	}
}

// SetRootPipeline records which pipeline the frame builder should start
// flattening from.
func (s *Scene) SetRootPipeline(id PipelineID) {
	s.RootPipeline, s.HasRootPipeline = id, true
}

// Pipeline is one independently versioned rendering root.
type Pipeline struct {
	RootStackingContext StackingContextID
	Epoch               Epoch
	// Background, if HasBackground, names a draw list painted behind the
	// root stacking context's own content (e.g. a page's base color).
	Background    DrawListID
	HasBackground bool
}

// MixBlendMode is the compositing op a StackingContext's content is
// blended into its backdrop with. Normal is the default, non-separable
// case; the rest mirror the CSS Compositing blend modes.
type MixBlendMode uint8

const (
	MixBlendNormal MixBlendMode = iota
	MixBlendMultiply
	MixBlendScreen
	MixBlendOverlay
	MixBlendDarken
	MixBlendLighten
	MixBlendColorDodge
	MixBlendColorBurn
	MixBlendHardLight
	MixBlendSoftLight
	MixBlendDifference
	MixBlendExclusion
	MixBlendHue
	MixBlendSaturation
	MixBlendColor
	MixBlendLuminosity
)

// FilterKind discriminates a single entry in a StackingContext's filter
// list.
type FilterKind uint8

const (
	FilterBlur FilterKind = iota
	FilterBrightness
	FilterContrast
	FilterGrayscale
	FilterHueRotate
	FilterInvert
	FilterOpacity
	FilterSaturate
	FilterSepia
)

// Filter is one graphical filter applied to a StackingContext's composited
// output before it is blended into its parent. Amount's unit depends on
// Kind: a 0..1 fraction for Brightness/Contrast/Grayscale/Invert/Opacity/
// Saturate/Sepia, device pixels for Blur, and degrees for HueRotate.
type Filter struct {
	Kind   FilterKind
	Amount float32
}

// StackingContext is one entry in the scene's 3D-context / compositing
// tree: a transformed, optionally-clipped, optionally-blended group of
// display lists and nested stacking contexts.
type StackingContext struct {
	Bounds      f32.Rectangle
	Transform   f32.Mat4
	Perspective f32.Mat4
	Overflow    f32.Rectangle
	ZIndex      int32

	MixBlendMode MixBlendMode
	Filters      []Filter

	// ScrollLayer names the scroll layer this context's content moves
	// with. Fixed overrides this: the context stays put regardless of
	// any ancestor scroll offset (e.g. "position: fixed").
	ScrollLayer ScrollLayerID
	Fixed       bool

	// Establishes3D marks a stacking context as the root of a 3D
	// rendering context. frame.Builder does not act on it: descendant
	// transforms are flattened into 2D the same way either way.
	Establishes3D bool

	// DisplayLists is the ordered sequence of display lists painted
	// within this stacking context, nearest-first.
	DisplayLists []DisplayListID
}
