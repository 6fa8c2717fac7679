// SPDX-License-Identifier: Unlicense OR MIT

package scene

import "github.com/wrgo/wrcore/f32"

// CornerRadii holds a per-corner radius pair (rx, ry), used by both
// complex clips and border rounding.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft f32.Point
}

// IsZero reports whether every corner radius is zero, i.e. the rect is
// effectively unrounded.
func (c CornerRadii) IsZero() bool {
	return c.TopLeft == f32.Point{} && c.TopRight == f32.Point{} &&
		c.BottomRight == f32.Point{} && c.BottomLeft == f32.Point{}
}

// ComplexClip refines a Clip's main rect with per-corner rounding.
type ComplexClip struct {
	Rect  f32.Rectangle
	Radii CornerRadii
}

// Clip is the clip region a DisplayItem is painted within: an always-
// present axis-aligned main rect, optionally refined by a rounded-corner
// ComplexClip.
type Clip struct {
	Main f32.Rectangle

	Complex   ComplexClip
	HasComplex bool
}

// SimpleClip returns a Clip with no rounding, clipping to rect.
func SimpleClip(rect f32.Rectangle) Clip {
	return Clip{Main: rect}
}

// DisplayItemKind discriminates the closed set of paintable primitive
// kinds a DisplayItem may carry.
type DisplayItemKind uint8

const (
	ItemRectangle DisplayItemKind = iota
	ItemImage
	ItemWebGL
	ItemText
	ItemGradient
	ItemBoxShadow
	ItemBorder
)

// DisplayItem is one paintable primitive: a local rect, a clip, and a
// kind-specific payload. Exactly one of the Rectangle/Image/WebGL/Text/
// Gradient/BoxShadow/Border fields is meaningful, selected by Kind.
type DisplayItem struct {
	Rect f32.Rectangle
	Clip Clip
	Kind DisplayItemKind

	Rectangle RectangleItem
	Image     ImageItem
	WebGL     WebGLItem
	Text      TextItem
	Gradient  GradientItem
	BoxShadow BoxShadowItem
	Border    BorderItem
}

// RectangleItem fills its DisplayItem's rect with a solid color.
type RectangleItem struct {
	Color ColorF
}

// ColorF is a straight (non-premultiplied), linear RGBA color with
// components in [0, 1].
type ColorF struct {
	R, G, B, A float32
}

// DrawList is a sequence of DisplayItems belonging to one stacking
// level's SceneItemDrawList entry, plus a placement context that
// frame.Builder.Flatten does not write (see DisplayList.Context).
type DrawList struct {
	Items   []DisplayItem
	Context DrawListContext
}
