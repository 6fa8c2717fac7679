// SPDX-License-Identifier: Unlicense OR MIT

package scene

import "github.com/wrgo/wrcore/f32"

// BorderStyle is the closed set of CSS-style border line styles.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderDashed
	BorderDotted
	BorderDouble
	BorderGroove
	BorderRidge
	BorderInset
	BorderOutset
)

// BorderSide is one edge's width, color and style.
type BorderSide struct {
	Width float32
	Color ColorF
	Style BorderStyle
}

// BorderItem paints up to four independently-styled edges around its
// DisplayItem's rect, with optional per-corner rounding shared with
// ComplexClip's radius representation.
type BorderItem struct {
	Top, Right, Bottom, Left BorderSide
	Radii                    CornerRadii
}

// HasRadius reports whether any corner of b is rounded.
func (b BorderItem) HasRadius() bool {
	return !b.Radii.IsZero()
}

// GradientStop is one color stop along a GradientItem's axis, at
// fractional Offset in [0, 1].
type GradientStop struct {
	Offset float32
	Color  ColorF
}

// GradientItem paints a linear gradient from Start to End, sampling
// Stops (which must be sorted by Offset).
type GradientItem struct {
	Start, End f32.Point
	Stops      []GradientStop
}

// BoxShadowClipMode selects which way a BoxShadowItem's shadow falls
// relative to its source box: Outset is a normal drop shadow, Inset an
// inner shadow. The blurred shadow itself is drawn over the whole
// shadow rect in both modes; it is not clipped to either side of the
// box.
type BoxShadowClipMode uint8

const (
	BoxShadowOutset BoxShadowClipMode = iota
	BoxShadowInset
)

// BoxShadowItem paints a blurred, optionally spread and offset shadow
// cast by Box.
type BoxShadowItem struct {
	Box          f32.Rectangle
	Offset       f32.Point
	Color        ColorF
	BlurRadius   float32
	SpreadRadius float32
	BorderRadius float32
	ClipMode     BoxShadowClipMode
}
