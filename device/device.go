// SPDX-License-Identifier: Unlicense OR MIT

// Package device defines the wire contract between the frame builder and
// the GPU backend that actually executes a Frame: texture and batch
// update streams, draw commands and composition ops. Nothing in this
// package talks to a real GPU; it is the boundary this module fixes,
// directly adapted from _examples/original_source/src/internal_types.rs's
// TextureUpdate/DrawCommand/Frame shapes.
package device

import "github.com/wrgo/wrcore/scene"

// TextureID names a texture resource a backend has allocated.
type TextureID uint32

// RenderTargetMode selects whether a texture created by a Create update
// is usable as a render target.
type RenderTargetMode uint8

const (
	RenderTargetNone RenderTargetMode = iota
	RenderTargetTarget
)

// TextureUpdateOpKind discriminates the variants of TextureUpdateOp.
type TextureUpdateOpKind uint8

const (
	TextureOpCreate TextureUpdateOpKind = iota
	TextureOpUpdate
	TextureOpDeinitRenderTarget
)

// TextureUpdateDetailsKind discriminates the variants of
// TextureUpdateDetails, the payload of an Update op.
type TextureUpdateDetailsKind uint8

const (
	DetailsBlit TextureUpdateDetailsKind = iota
	DetailsBorderRadius
)

// TextureUpdateDetails is the tagged payload of a TextureOpUpdate.
type TextureUpdateDetails struct {
	Kind TextureUpdateDetailsKind

	// Blit is valid when Kind == DetailsBlit: raw pixel bytes to copy in.
	Blit []byte

	// BorderRadius is valid when Kind == DetailsBorderRadius: the radii
	// describing the mask to rasterize in place, device-pixel units.
	BorderRadius [4]float32 // outerX, outerY, innerX, innerY
}

// TextureUpdateOp is one texture-cache mutation the backend must apply.
type TextureUpdateOp struct {
	Kind TextureUpdateOpKind

	// Create fields, valid when Kind == TextureOpCreate.
	Width, Height uint32
	Format        scene.ImageFormat
	Mode          RenderTargetMode
	Pixels        []byte
	HasPixels     bool

	// Update fields, valid when Kind == TextureOpUpdate.
	X, Y    uint32
	Details TextureUpdateDetails

	// DeinitRenderTarget fields, valid when Kind == TextureOpDeinitRenderTarget.
	Deinit TextureID
}

// TextureUpdate pairs a texture id with the mutation to apply to it.
type TextureUpdate struct {
	ID TextureID
	Op TextureUpdateOp
}

// TextureUpdateList is an ordered queue of pending texture mutations.
type TextureUpdateList struct {
	Updates []TextureUpdate
}

// Push appends update to the list.
func (l *TextureUpdateList) Push(update TextureUpdate) {
	l.Updates = append(l.Updates, update)
}

// BatchUpdateOpKind discriminates the variants of BatchUpdateOp.
type BatchUpdateOpKind uint8

const (
	BatchOpCreate BatchUpdateOpKind = iota
	BatchOpDestroy
)

// BatchUpdateOp is one vertex-buffer-object lifecycle mutation the
// backend must apply: upload a freshly compiled buffer, or release one
// whose owning CompiledNode was invalidated.
type BatchUpdateOp struct {
	Kind     BatchUpdateOpKind
	Vertices []PackedVertex
	Indices  []uint16
}

// BatchUpdate pairs a vertex-buffer id with the mutation to apply.
type BatchUpdate struct {
	ID uint32
	Op BatchUpdateOp
}

// BatchUpdateList is an ordered queue of pending vertex-buffer
// mutations, mirroring TextureUpdateList's shape for the batch cache.
type BatchUpdateList struct {
	Updates []BatchUpdate
}

// Push appends update to the list.
func (l *BatchUpdateList) Push(update BatchUpdate) {
	l.Updates = append(l.Updates, update)
}
