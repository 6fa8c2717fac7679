// SPDX-License-Identifier: Unlicense OR MIT

package device

// colorFloatToFixed and uvFloatToFixed are the packing-law scale factors:
// u8_color = round(clamp(c,0,1)*255), u16_val = round(clamp(f,0,1)*65535).
// Directly ported from internal_types.rs's
// COLOR_FLOAT_TO_FIXED / UV_FLOAT_TO_FIXED.
const (
	colorFloatToFixed = 255.0
	uvFloatToFixed    = 65535.0
)

// PackedColor is a straight RGBA8 color, the packed form of a ColorF.
type PackedColor struct {
	R, G, B, A uint8
}

// PackColor quantizes a linear [0,1] color component into its RGBA8
// representation: round(clamp(c, 0, 1) * 255).
func PackColor(r, g, b, a float32) PackedColor {
	return PackedColor{
		R: packComponent(r, colorFloatToFixed),
		G: packComponent(g, colorFloatToFixed),
		B: packComponent(b, colorFloatToFixed),
		A: packComponent(a, colorFloatToFixed),
	}
}

// Unpack returns c's components back in [0,1] float space.
func (c PackedColor) Unpack() (r, g, b, a float32) {
	return float32(c.R) / colorFloatToFixed, float32(c.G) / colorFloatToFixed,
		float32(c.B) / colorFloatToFixed, float32(c.A) / colorFloatToFixed
}

// PackUV quantizes a [0,1] uv coordinate into its u16 representation:
// round(clamp(f, 0, 1) * 65535).
func PackUV(f float32) uint16 {
	return packComponent16(f, uvFloatToFixed)
}

// UnpackUV returns a packed uv coordinate back in [0,1] float space.
func UnpackUV(v uint16) float32 {
	return float32(v) / uvFloatToFixed
}

func packComponent(c float32, scale float32) uint8 {
	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	return uint8(roundf(c * scale))
}

func packComponent16(c float32, scale float32) uint16 {
	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	return uint16(roundf(c * scale))
}

// roundf rounds a non-negative float to the nearest integer. Both call
// sites clamp their input to [0,1] before scaling, so f is always >= 0.
func roundf(f float32) float32 {
	return float32(int64(f + 0.5))
}

// PackedVertex is the GPU-visible vertex layout this module fixes: a vec3
// position, an RGBA8 color, and two u16×2 uv pairs (color, mask), stride
// 24 bytes. Also carries the per-batch matrix-palette slot and
// tile-params index, which the shader consumes as additional per-vertex
// attributes but which do not affect the 24-byte geometric stride.
type PackedVertex struct {
	X, Y, Z     float32
	Color       PackedColor
	U, V        uint16
	MU, MV      uint16
	MatrixIndex uint8
	TileParams  uint32
}

// NewPackedVertex packs a vertex from float components, per the packing
// law above.
func NewPackedVertex(x, y, z float32, r, g, b, a float32, u, v, mu, mv float32, matrixIndex uint8, tileParams uint32) PackedVertex {
	return PackedVertex{
		X: x, Y: y, Z: z,
		Color:       PackColor(r, g, b, a),
		U:           PackUV(u),
		V:           PackUV(v),
		MU:          PackUV(mu),
		MV:          PackUV(mv),
		MatrixIndex: matrixIndex,
		TileParams:  tileParams,
	}
}
