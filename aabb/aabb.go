// SPDX-License-Identifier: Unlicense OR MIT

// Package aabb implements the indexed AABB tree this module
// describes: a single growable slice of nodes, split lazily along a
// node's longer axis once it exceeds a configured split size, with
// children always appended so that a child's index is strictly greater
// than its parent's. Directly translated from
// _examples/original_source/src/aabbtree.rs.
package aabb

import (
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/scene"
)

// NodeIndex addresses one Node within a Tree; index 0 is always the root.
type NodeIndex uint32

// Bucket groups the item indices of one draw list's items that landed in
// a leaf node, in insertion order.
type Bucket struct {
	DrawList scene.DrawListID
	Indices  []int
}

// CompiledNode is a forward-declared hook: frame.Builder stores the
// compile.CompiledNode value it gets back from compiling a leaf here.
// aabb never constructs or inspects it.
type CompiledNode interface{}

// Node is one entry in a Tree's node slice.
type Node struct {
	SplitRect  f32.Rectangle
	ActualRect f32.Rectangle

	// ChildBase is the index of this node's left child; its right child
	// is ChildBase+1. HasChildren is false for leaves.
	ChildBase   NodeIndex
	HasChildren bool

	Visible bool

	Buckets []Bucket

	Resources   *ResourceList
	Compiled    CompiledNode
	HasCompiled bool
}

// ResourceList is the set of resources a leaf's primitives will need:
// images, glyphs, raster ops and tiled-image keys, deduplicated. No pass
// in this module builds one for a Node: Node.Resources stays nil, and
// compilation resolves resources through the resource cache as it
// emits each primitive. Directly adapted from
// _examples/original_source/src/resource_list.rs (set members, dedup via
// map-as-set rather than a custom hash-set type).
type ResourceList struct {
	Images      map[scene.ImageKey]struct{}
	Glyphs      map[scene.GlyphKey]struct{}
	Rasters     map[uint64]RasterRequest
	TiledImages map[scene.ImageKey]TiledImageRequest
}

// RasterRequest is a required-raster entry keyed by its deterministic
// hash, carrying enough of the original request to rasterize on a cache
// miss.
type RasterRequest struct {
	Kind   RasterKind
	Amount float32
}

// RasterKind narrows which procedural raster op a RasterRequest names,
// without importing the raster package (which aabb has no other need
// of), avoiding a dependency edge a single field doesn't justify.
type RasterKind uint8

const (
	RasterBorderRadius RasterKind = iota
	RasterBoxShadow
)

// TiledImageRequest records that an image is repeated often enough
// within the viewport (once past the MAX_IMAGE_REPEATS threshold) to
// warrant a pre-rendered tile instead of naive per-copy drawing.
type TiledImageRequest struct {
	TiledWidth, TiledHeight     uint32
	StretchWidth, StretchHeight uint32
}

// NewResourceList returns an empty ResourceList.
func NewResourceList() *ResourceList {
	return &ResourceList{
		Images:      map[scene.ImageKey]struct{}{},
		Glyphs:      map[scene.GlyphKey]struct{}{},
		Rasters:     map[uint64]RasterRequest{},
		TiledImages: map[scene.ImageKey]TiledImageRequest{},
	}
}

// AddImage records key as required, also checking whether it needs
// tiling per addTiledImage's threshold.
func (r *ResourceList) AddImage(key scene.ImageKey, tiledSize, stretchSize f32.Point) {
	r.Images[key] = struct{}{}
	r.addTiledImage(key, tiledSize, stretchSize)
}

// AddGlyph records key as required.
func (r *ResourceList) AddGlyph(key scene.GlyphKey) {
	r.Glyphs[key] = struct{}{}
}

// AddRaster records a required procedural raster op under key (typically
// raster.Item.Key()).
func (r *ResourceList) AddRaster(key uint64, req RasterRequest) {
	r.Rasters[key] = req
}

const (
	maxImageRepeats        = 64
	tileSize               = 128
	approximateViewportSize = 1024
)

// addTiledImage requires a tile pre-render for key when the image would
// repeat more than maxImageRepeats times across tiledSize at
// stretchSize, per servo's TiledImageKey
// threshold.
func (r *ResourceList) addTiledImage(key scene.ImageKey, tiledSize, stretchSize f32.Point) {
	w := minf(tiledSize.X, approximateViewportSize)
	h := minf(tiledSize.Y, approximateViewportSize)
	if stretchSize.X <= 0 || stretchSize.Y <= 0 {
		return
	}
	repeatsX := ceilf(w / stretchSize.X)
	repeatsY := ceilf(h / stretchSize.Y)
	repeats := uint32(repeatsX) * uint32(repeatsY)
	if repeats <= maxImageRepeats {
		return
	}
	tw := uint32(ceilf(tileSize/stretchSize.X) * stretchSize.X)
	th := uint32(ceilf(tileSize/stretchSize.Y) * stretchSize.Y)
	r.TiledImages[key] = TiledImageRequest{
		TiledWidth: tw, TiledHeight: th,
		StretchWidth: uint32(stretchSize.X), StretchHeight: uint32(stretchSize.Y),
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func ceilf(f float32) float32 {
	i := float32(int32(f))
	if i < f {
		return i + 1
	}
	return i
}

// ItemCount returns the total number of item indices recorded across all
// of the node's buckets.
func (n *Node) ItemCount() int {
	count := 0
	for _, b := range n.Buckets {
		count += len(b.Indices)
	}
	return count
}

func (n *Node) appendItem(drawList scene.DrawListID, itemIndex int, rect f32.Rectangle) {
	n.ActualRect = n.ActualRect.Union(rect)
	if len(n.Buckets) == 0 || n.Buckets[len(n.Buckets)-1].DrawList != drawList {
		n.Buckets = append(n.Buckets, Bucket{DrawList: drawList})
	}
	last := &n.Buckets[len(n.Buckets)-1]
	last.Indices = append(last.Indices, itemIndex)
}

// Tree is a growable, index-addressed AABB tree covering one Layer's
// scene rect.
type Tree struct {
	Nodes     []Node
	SplitSize float32

	work []NodeIndex
}

// New returns a Tree with a single root node covering sceneRect.
func New(splitSize float32, sceneRect f32.Rectangle) *Tree {
	return &Tree{
		Nodes:     []Node{{SplitRect: sceneRect}},
		SplitSize: splitSize,
	}
}

// Node returns the node at index.
func (t *Tree) Node(index NodeIndex) *Node {
	return &t.Nodes[index]
}

// Insert records one item with bounding rect, belonging to drawList at
// itemIndex within it, into every leaf whose split rect intersects rect.
func (t *Tree) Insert(rect f32.Rectangle, drawList scene.DrawListID, itemIndex int) {
	t.work = t.work[:0]
	t.findBestNodes(0, rect)
	for _, idx := range t.work {
		t.Nodes[idx].appendItem(drawList, itemIndex, rect)
	}
}

func (t *Tree) findBestNodes(index NodeIndex, rect f32.Rectangle) {
	t.splitIfNeeded(index)
	node := &t.Nodes[index]
	if node.HasChildren {
		left, right := node.ChildBase, node.ChildBase+1
		if t.Nodes[left].SplitRect.Intersects(rect) {
			t.findBestNodes(left, rect)
		}
		if t.Nodes[right].SplitRect.Intersects(rect) {
			t.findBestNodes(right, rect)
		}
	} else {
		t.work = append(t.work, index)
	}
}

func (t *Tree) splitIfNeeded(index NodeIndex) {
	if t.Nodes[index].HasChildren {
		return
	}
	rect := t.Nodes[index].SplitRect
	w, h := rect.Dx(), rect.Dy()

	var left, right f32.Rectangle
	var split bool
	switch {
	case w > t.SplitSize && w > h:
		newW := w * 0.5
		left = f32.Rectangle{Min: rect.Min, Max: f32.Pt(rect.Min.X+newW, rect.Max.Y)}
		right = f32.Rectangle{Min: f32.Pt(rect.Min.X+newW, rect.Min.Y), Max: rect.Max}
		split = true
	case h > t.SplitSize:
		newH := h * 0.5
		left = f32.Rectangle{Min: rect.Min, Max: f32.Pt(rect.Max.X, rect.Min.Y+newH)}
		right = f32.Rectangle{Min: f32.Pt(rect.Min.X, rect.Min.Y+newH), Max: rect.Max}
		split = true
	}
	if !split {
		return
	}
	base := NodeIndex(len(t.Nodes))
	t.Nodes = append(t.Nodes, Node{SplitRect: left}, Node{SplitRect: right})
	t.Nodes[index].ChildBase = base
	t.Nodes[index].HasChildren = true
}

// Cull marks every leaf node whose split rect and actual (item-union)
// rect both intersect viewport as visible, clearing visibility on every
// other node first.
func (t *Tree) Cull(viewport f32.Rectangle) {
	for i := range t.Nodes {
		t.Nodes[i].Visible = false
	}
	if len(t.Nodes) > 0 {
		t.checkVisibility(0, viewport)
	}
}

func (t *Tree) checkVisibility(index NodeIndex, viewport f32.Rectangle) {
	node := &t.Nodes[index]
	if !node.SplitRect.Intersects(viewport) {
		return
	}
	if len(node.Buckets) > 0 && node.ActualRect.Intersects(viewport) {
		node.Visible = true
	}
	if node.HasChildren {
		left, right := node.ChildBase, node.ChildBase+1
		t.checkVisibility(left, viewport)
		t.checkVisibility(right, viewport)
	}
}
