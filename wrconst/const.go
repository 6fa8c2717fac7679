// SPDX-License-Identifier: Unlicense OR MIT

// Package wrconst centralizes the bit-exact constants the rendering pipeline fixes,
// the way gioui.org/gpu/internal/driver centralizes its own backend-facing
// constants in one small package instead of scattering magic numbers across
// the components that use them.
package wrconst

const (
	// MaxMatricesPerBatch bounds the matrix palette: frame.Builder gives
	// each stacking context one slot per scroll layer, up to this many.
	MaxMatricesPerBatch = 32
	// MaxTileParamsPerBatch bounds the number of distinct tile-parameter
	// sub-rects a single Batch may reference.
	MaxTileParamsPerBatch = 256
	// InvalidTileParam is the sentinel tile-params index meaning "no tile
	// parameters apply to this vertex".
	InvalidTileParam = 0
)

const (
	// OrthoNearPlane and OrthoFarPlane bound the orthographic projection
	// volume's z range.
	OrthoNearPlane = -1_000_000
	OrthoFarPlane  = 1_000_000
)

// BorderDashSize is the dash length, expressed as a multiple of the side's
// thickness, used by the Dashed border style.
const BorderDashSize = 3.0

// BlurInflationFactor scales the blur radius when inflating a box-shadow's
// or text-shadow's quad bounds to accommodate its blur kernel. wrcore
// fixes it to the value servo's blur math uses; no emitter in this
// module reads it, so text and box-shadow quads are not inflated.
const BlurInflationFactor = 3.0

// DefaultSplitSize is the AABBTree split threshold, in device units, used
// when a caller does not supply one.
const DefaultSplitSize = 1024

const (
	// AtlasPageSize is the fixed width and height, in pixels, of a
	// TextureAtlas page.
	AtlasPageSize = 1024
)

// AtlasBlockSizes are the four fixed block sizes, in pixels, that a
// TextureAtlas level is allocated in, smallest first.
var AtlasBlockSizes = [4]int{32, 64, 128, 256}

const (
	// MaxImageRepeats bounds how many copies of a tiled image (horizontal
	// repeats times vertical repeats) are drawn before the resource list
	// requests a pre-rendered tile for it.
	MaxImageRepeats = 64
	// TileSize is the edge length, in pixels, of one image tile.
	TileSize = 128
	// ApproximateViewportSize is the nominal viewport size used to bound
	// tiled-image work when the real viewport is unknown at plan time.
	ApproximateViewportSize = 1024
)

// BorderCornerRadiusThreshold is the per-axis radius, scaled by the device
// pixel ratio, below which a border corner is tessellated as a single
// sub-quad rather than four.
const BorderCornerRadiusThreshold = 32
