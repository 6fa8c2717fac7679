// SPDX-License-Identifier: Unlicense OR MIT

package device

// DrawCommandKind discriminates the variants of DrawCommand.
type DrawCommandKind uint8

const (
	DrawClear DrawCommandKind = iota
	DrawComposite
	DrawBatch
)

// ClearInfo is the payload of a DrawClear command. Each field is only
// applied if its corresponding Has flag is set, so a Clear can target
// just the color buffer, just depth, just stencil, or any combination.
type ClearInfo struct {
	Color        [4]float32
	HasColor     bool
	Depth        float32
	HasDepth     bool
	Stencil      int32
	HasStencil   bool
}

// CompositeInfo is the payload of a DrawComposite command: blend a
// previously rendered target into the current one.
type CompositeInfo struct {
	Operation      CompositionOp
	ColorTextureID TextureID
	Rect           [4]uint32 // x0, y0, x1, y1
}

// MatrixPaletteEntry is one slot of a batch draw call's matrix palette,
// referenced by PackedVertex.MatrixIndex.
type MatrixPaletteEntry = [16]float32

// TileParams parameterizes one sub-rect of an atlas page a draw call's
// vertices sample from, mirroring batch.TileParams without importing the
// batch package (device sits below it in the dependency graph).
type TileParams struct {
	U0, V0, USize, VSize float32
}

// BatchDrawCall is the device-ready form of one batch.Batch: the
// vertex-buffer id its geometry lives in (uploaded via a prior
// BatchUpdate), the textures it samples, and the vertex/index range
// within that buffer this call draws.
type BatchDrawCall struct {
	VertexBufferID uint32
	ColorTexture   TextureID
	MaskTexture    TextureID
	FirstVertex    uint16
	IndexCount     uint16
	TileParams     []TileParams
}

// BatchCommand groups every BatchDrawCall that shares one matrix
// palette, one entry per draw-list the group's geometry was compiled
// against.
type BatchCommand struct {
	MatrixPalette []MatrixPaletteEntry
	DrawCalls     []BatchDrawCall
}

// DrawCommand is one instruction within a RenderTarget's command stream.
// Exactly one of Clear/Composite/Batch is meaningful, selected by Kind.
type DrawCommand struct {
	Kind      DrawCommandKind
	Clear     ClearInfo
	Composite CompositeInfo
	Batch     []BatchCommand
}

// CompositionOpKind discriminates the variants of CompositionOp.
type CompositionOpKind uint8

const (
	CompositionMixBlend CompositionOpKind = iota
	CompositionFilter
)

// MixBlendMode mirrors scene.MixBlendMode without importing scene, since
// device must stay a leaf package the frame assembler depends on, not
// the reverse.
type MixBlendMode = uint8

// LowLevelFilterKind discriminates the variants of LowLevelFilterOp.
type LowLevelFilterKind uint8

const (
	FilterBlur LowLevelFilterKind = iota
	FilterBrightness
	FilterContrast
	FilterGrayscale
	FilterHueRotate
	FilterInvert
	FilterOpacity
	FilterSaturate
	FilterSepia
)

// BlurDirection selects which axis a FilterBlur pass runs along; a full
// gaussian blur is decomposed by the frame assembler into one
// FilterBlur(Horizontal) pass followed by one FilterBlur(Vertical) pass,
// a closed set of composition filters.
type BlurDirection uint8

const (
	BlurHorizontal BlurDirection = iota
	BlurVertical
)

// LowLevelFilterOp is one single-pass graphical filter a backend applies
// to a render target's contents. Blur additionally carries a direction,
// since it is the only two-pass filter.
type LowLevelFilterOp struct {
	Kind      LowLevelFilterKind
	Amount    float32
	Radius    float32
	Direction BlurDirection
}

// CompositionOp is the tagged payload of a RenderTarget composition:
// either blend with a mix-blend-mode, or apply a single-pass filter.
type CompositionOp struct {
	Kind      CompositionOpKind
	MixBlend  MixBlendMode
	Filter    LowLevelFilterOp
}

// RenderTarget is one output surface the frame assembler renders into:
// either the final framebuffer (Texture unset) or an intermediate
// texture allocated to hold a stacking context's composited content.
type RenderTarget struct {
	Width, Height uint32
	Texture       TextureID
	HasTexture    bool
	Commands      []DrawCommand
}

// Frame is the fully assembled, backend-ready render plan for one frame:
// an ordered sequence of render targets, innermost (leaf) first, such
// that by the time a target is composited into its parent, the parent
// has not yet been rendered to.
type Frame struct {
	Targets []RenderTarget
}
