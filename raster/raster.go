// SPDX-License-Identifier: Unlicense OR MIT

// Package raster defines the closed set of procedurally-rasterized
// resources the resource cache can produce and cache: tessellated border
// corners and box shadows. An Item's Key is used both as a cache lookup
// key and as the identity compared to detect a redundant raster request.
package raster

import (
	"hash/maphash"
	"math"

	"github.com/wrgo/wrcore/scene"
)

// Kind discriminates the variants of Item.
type Kind uint8

const (
	KindBorderRadius Kind = iota
	KindBoxShadow
)

// BoxShadowPart selects which piece of a box shadow's nine-patch
// decomposition a BoxShadow Item rasterizes: one corner (replicated with
// flips to the other three) or one edge (stretched along its axis).
type BoxShadowPart uint8

const (
	PartCorner BoxShadowPart = iota
	PartEdge
)

// BorderRadius rasterizes one elliptical border corner's alpha mask: an
// annulus between an outer and inner radius, or its complement when
// Inverted.
type BorderRadius struct {
	OuterRadiusX, OuterRadiusY float32
	InnerRadiusX, InnerRadiusY float32
	Inverted                   bool
	TessellationIndex          uint32
	Format                     scene.ImageFormat
}

// BoxShadow rasterizes one corner or edge of a blurred box shadow's
// nine-patch.
type BoxShadow struct {
	Part         BoxShadowPart
	BlurRadius   float32
	BorderRadius float32
	Box          f32RectLike
	Inverted     bool
}

// f32RectLike avoids importing f32 just for this one field's type while
// keeping the field's shape obvious; it is the box's width and height,
// since a box shadow's corner/edge rasterization only depends on size,
// not position.
type f32RectLike struct {
	Width, Height float32
}

// NewBoxShadowBox returns the width/height pair a BoxShadow.Box field
// holds, for callers outside this package that only know the box's
// size, not its unexported type.
func NewBoxShadowBox(width, height float32) f32RectLike {
	return f32RectLike{Width: width, Height: height}
}

// Item is the tagged union of procedurally rasterized resource requests.
// Exactly one of BorderRadius or BoxShadow is meaningful, selected by
// Kind.
type Item struct {
	Kind         Kind
	BorderRadius BorderRadius
	BoxShadow    BoxShadow
}

var hashSeed = maphash.MakeSeed()

// Key returns a deterministic hash of item suitable for use as a resource
// cache key: two Items describing the same rasterization request always
// hash equal.
func (item Item) Key() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeByte(&h, byte(item.Kind))
	switch item.Kind {
	case KindBorderRadius:
		b := item.BorderRadius
		writeFloat(&h, b.OuterRadiusX)
		writeFloat(&h, b.OuterRadiusY)
		writeFloat(&h, b.InnerRadiusX)
		writeFloat(&h, b.InnerRadiusY)
		writeBool(&h, b.Inverted)
		writeUint32(&h, b.TessellationIndex)
		writeByte(&h, byte(b.Format))
	case KindBoxShadow:
		s := item.BoxShadow
		writeByte(&h, byte(s.Part))
		writeFloat(&h, s.BlurRadius)
		writeFloat(&h, s.BorderRadius)
		writeFloat(&h, s.Box.Width)
		writeFloat(&h, s.Box.Height)
		writeBool(&h, s.Inverted)
	}
	return h.Sum64()
}

func writeByte(h *maphash.Hash, b byte)     { h.WriteByte(b) }
func writeBool(h *maphash.Hash, b bool) {
	if b {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
}
func writeUint32(h *maphash.Hash, v uint32) {
	h.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}
func writeFloat(h *maphash.Hash, f float32) {
	writeUint32(h, math.Float32bits(f))
}
