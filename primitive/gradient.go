// SPDX-License-Identifier: Unlicense OR MIT

package primitive

import (
	"math"

	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/scene"
)

// EmitGradient paints item's linear gradient over rect, taking the
// axis-aligned fast path (a run of bands, one per stop interval) when
// the start and end points share an x or y coordinate, and falling back
// to the general rotated-band construction otherwise. Grounded directly
// on batch_builder.rs's add_gradient / add_axis_aligned_gradient_with_stops.
func (e *Emitter) EmitGradient(rect f32.Rectangle, item scene.GradientItem) {
	if len(item.Stops) < 2 {
		return
	}
	switch {
	case item.Start.X == item.End.X:
		e.emitAxisAlignedGradient(rect, item.Stops, axisVertical, item.Start.Y, item.End.Y)
	case item.Start.Y == item.End.Y:
		e.emitAxisAlignedGradient(rect, item.Stops, axisHorizontal, item.Start.X, item.End.X)
	default:
		e.emitRotatedGradient(item)
	}
}

type gradientAxis uint8

const (
	axisHorizontal gradientAxis = iota
	axisVertical
)

func (e *Emitter) emitAxisAlignedGradient(rect f32.Rectangle, stops []scene.GradientStop, axis gradientAxis, from, to float32) {
	for i := 0; i+1 < len(stops); i++ {
		prev, next := stops[i], stops[i+1]
		if prev.Offset == next.Offset {
			continue
		}
		var piece f32.Rectangle
		var colors [4]scene.ColorF
		switch axis {
		case axisHorizontal:
			prevX := lerp(rect.Min.X, rect.Max.X, prev.Offset)
			nextX := lerp(rect.Min.X, rect.Max.X, next.Offset)
			piece = f32.Rect(prevX, rect.Min.Y, nextX, rect.Max.Y)
			colors = [4]scene.ColorF{prev.Color, next.Color, next.Color, prev.Color}
		case axisVertical:
			prevY := lerp(rect.Min.Y, rect.Max.Y, prev.Offset)
			nextY := lerp(rect.Min.Y, rect.Max.Y, next.Offset)
			piece = f32.Rect(rect.Min.X, prevY, rect.Max.X, nextY)
			colors = [4]scene.ColorF{prev.Color, prev.Color, next.Color, next.Color}
		}
		_ = from
		_ = to
		clipped, ok := e.effectiveRect(piece)
		if !ok {
			continue
		}
		white := e.colorTexture()
		mask := e.maskTexture()
		e.emitUVRectColors(white.Texture, mask.Texture, clipped, 0, 0, 1, 1, colors, nil)
	}
}

// emitRotatedGradient handles gradients whose axis isn't aligned to x
// or y by building, per stop interval, a quad perpendicular to the
// gradient direction and long enough (lenScale) to cover the leaf, the
// same fixed-length trick add_gradient's "TODO: determine this
// properly" comment flags as an approximation in the original.
func (e *Emitter) emitRotatedGradient(item scene.GradientItem) {
	const lenScale = 1000.0

	dirX := item.End.X - item.Start.X
	dirY := item.End.Y - item.Start.Y
	dirLen := float32(math.Sqrt(float64(dirX*dirX + dirY*dirY)))
	if dirLen == 0 {
		return
	}
	dirXN, dirYN := dirX/dirLen, dirY/dirLen
	perpXN, perpYN := -dirYN, dirXN

	white := e.colorTexture()
	mask := e.maskTexture()

	for i := 0; i+1 < len(item.Stops); i++ {
		s0, s1 := item.Stops[i], item.Stops[i+1]
		if s0.Offset == s1.Offset {
			continue
		}
		startX := item.Start.X + s0.Offset*dirX
		startY := item.Start.Y + s0.Offset*dirY
		endX := item.Start.X + s1.Offset*dirX
		endY := item.Start.Y + s1.Offset*dirY

		x0, y0 := startX-perpXN*lenScale, startY-perpYN*lenScale
		x3, y3 := endX+perpXN*lenScale, endY+perpYN*lenScale

		rect := f32.Rect(x0, y0, x0+(x3-x0), y0+(y3-y0)).Canon()
		clipped, ok := e.effectiveRect(rect)
		if !ok {
			continue
		}
		colors := [4]scene.ColorF{s0.Color, s1.Color, s0.Color, s1.Color}
		e.emitUVRectColors(white.Texture, mask.Texture, clipped, 0, 0, 1, 1, colors, nil)
	}
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
