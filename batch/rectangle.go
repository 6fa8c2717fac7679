// SPDX-License-Identifier: Unlicense OR MIT

package batch

import (
	"github.com/wrgo/wrcore/atlas"
	"github.com/wrgo/wrcore/device"
)

// AddRectangle is the common case of AddDrawItem for an axis-aligned
// quad with a single uniform color, stretching both the color and the
// mask texture once across it (uv 0..1 for each): it builds the four
// corner vertices itself and skips zero-area rects entirely, per
// the "silent skip" policy applied to degenerate geometry.
func (bd *Builder) AddRectangle(matrixIndex uint8, colorTexture, maskTexture atlas.TextureID, x0, y0, x1, y1, z float32, r, g, b, a float32, tileParams *TileParams) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	vertices := []device.PackedVertex{
		device.NewPackedVertex(x0, y0, z, r, g, b, a, 0, 0, 0, 0, matrixIndex, 0),
		device.NewPackedVertex(x1, y0, z, r, g, b, a, 1, 0, 1, 0, matrixIndex, 0),
		device.NewPackedVertex(x1, y1, z, r, g, b, a, 1, 1, 1, 1, matrixIndex, 0),
		device.NewPackedVertex(x0, y1, z, r, g, b, a, 0, 1, 0, 1, matrixIndex, 0),
	}
	bd.AddDrawItem(matrixIndex, colorTexture, maskTexture, PrimitiveQuads, vertices, tileParams)
}
