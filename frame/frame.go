// SPDX-License-Identifier: Unlicense OR MIT

// Package frame assembles a Scene into a device.Frame: it walks the
// scene's stacking-context tree composing transforms and scroll-layer
// assignments (Flatten), then culls and compiles each layer's visible
// leaves into draw commands (Build). Directly translated from
// _examples/original_source/src/frame.rs.
package frame

import (
	"sync/atomic"

	"github.com/wrgo/wrcore/aabb"
	"github.com/wrgo/wrcore/batch"
	"github.com/wrgo/wrcore/compile"
	"github.com/wrgo/wrcore/device"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/layer"
	"github.com/wrgo/wrcore/primitive"
	"github.com/wrgo/wrcore/resourcecache"
	"github.com/wrgo/wrcore/scene"
	"github.com/wrgo/wrcore/wrconst"
)

// FixedScrollLayer is the sentinel ScrollLayerID content with a "fixed"
// stacking context is assigned to, never moving with an ancestor's
// scroll offset. Mirrors frame.rs's ScrollLayerId::fixed_layer().
const FixedScrollLayer scene.ScrollLayerID = ^scene.ScrollLayerID(0)

// rootTarget is the render-target index of the frame's own framebuffer;
// every other target is an off-screen surface allocated for a
// compositing stacking context.
const rootTarget = 0

// stackingContextPlacement is the per-occurrence bookkeeping Flatten
// records for each StackingContextID it visits, resolved by Compile's
// Context lookup maps.
type stackingContextPlacement struct {
	offsetFromLayer f32.Point
	localClipRect   f32.Rectangle
	scrollLayer     scene.ScrollLayerID
	finalTransform  f32.Mat4

	// renderTarget is the index, into Build's target slice, that this
	// stacking context's own content (and any non-compositing
	// descendants) draws into.
	renderTarget int
}

// compositeTarget is one off-screen render target Flatten allocated for
// a single composition op in a stacking context's op chain: ownerTarget
// composites targetID's rendered contents in via op.
type compositeTarget struct {
	targetID    int
	ownerTarget int
	op          device.CompositionOp
	rect        f32.Rectangle
}

// Builder owns the Layers a Scene's content is distributed into plus the
// per-stacking-context placement Flatten last computed.
type Builder struct {
	Scene            *scene.Scene
	Resources        *resourcecache.Cache
	Images           primitive.ImageProvider
	DevicePixelRatio float32

	Layers map[scene.ScrollLayerID]*layer.Layer

	placements    map[scene.StackingContextID]stackingContextPlacement
	drawListOwner map[scene.DrawListID]scene.StackingContextID
	composites    []compositeTarget
	nextTargetID  int

	// matrixSlots assigns each stacking context a stable per-scroll-layer
	// palette slot, persisting across Build calls so a CompiledNode's
	// vertices (cached via aabb.Node.HasCompiled) keep referencing the
	// same slot even when a later frame doesn't recompile them.
	matrixSlots map[scene.ScrollLayerID]map[scene.StackingContextID]uint8
}

// NewBuilder returns a Builder assembling scn's content, resolving
// resources through cache and images.
func NewBuilder(scn *scene.Scene, cache *resourcecache.Cache, images primitive.ImageProvider, devicePixelRatio float32) *Builder {
	return &Builder{
		Scene:            scn,
		Resources:        cache,
		Images:           images,
		DevicePixelRatio: devicePixelRatio,
		Layers:           map[scene.ScrollLayerID]*layer.Layer{},
	}
}

// Flatten walks the scene from its root pipeline, composing transforms
// and assigning each stacking context's draw lists to the Layer its
// content scrolls with. Grounded on frame.rs's Frame::flatten, simplified
// to 2D flattening throughout (Establishes3D is recorded but does not
// change how child transforms compose, since this module's device.Frame
// has no separate 3D compositing pass).
func (b *Builder) Flatten(sceneRect f32.Rectangle) {
	b.placements = map[scene.StackingContextID]stackingContextPlacement{}
	b.drawListOwner = map[scene.DrawListID]scene.StackingContextID{}
	b.composites = nil
	b.nextTargetID = rootTarget + 1
	if !b.Scene.HasRootPipeline {
		return
	}
	pipeline, ok := b.Scene.Pipelines[b.Scene.RootPipeline]
	if !ok {
		return
	}
	b.flattenStackingContext(pipeline.RootStackingContext, f32.Point{}, f32.Identity4(), f32.Identity4(), 0, rootTarget, sceneRect, sceneRect)
}

func (b *Builder) layerFor(id scene.ScrollLayerID, sceneRect f32.Rectangle) *layer.Layer {
	l, ok := b.Layers[id]
	if !ok {
		l = layer.New(wrconst.DefaultSplitSize, sceneRect)
		b.Layers[id] = l
	}
	return l
}

// buildCompositionOps returns the ordered composition-op chain a
// stacking context with a non-Normal mix-blend-mode or any filters
// needs, per frame.rs's composite-op construction: a Blur filter splits
// into a horizontal then vertical pass, every other filter is one op,
// and a non-Normal mix-blend-mode contributes one final blending op.
func buildCompositionOps(sc scene.StackingContext) []device.CompositionOp {
	var ops []device.CompositionOp
	for _, f := range sc.Filters {
		if f.Kind == scene.FilterBlur {
			ops = append(ops,
				device.CompositionOp{Kind: device.CompositionFilter, Filter: device.LowLevelFilterOp{Kind: device.FilterBlur, Radius: f.Amount, Direction: device.BlurHorizontal}},
				device.CompositionOp{Kind: device.CompositionFilter, Filter: device.LowLevelFilterOp{Kind: device.FilterBlur, Radius: f.Amount, Direction: device.BlurVertical}},
			)
			continue
		}
		ops = append(ops, device.CompositionOp{
			Kind:   device.CompositionFilter,
			Filter: device.LowLevelFilterOp{Kind: device.LowLevelFilterKind(f.Kind), Amount: f.Amount},
		})
	}
	if sc.MixBlendMode != scene.MixBlendNormal {
		ops = append(ops, device.CompositionOp{Kind: device.CompositionMixBlend, MixBlend: device.MixBlendMode(sc.MixBlendMode)})
	}
	return ops
}

func (b *Builder) flattenStackingContext(id scene.StackingContextID, parentOffset f32.Point, parentTransform, parentPerspective f32.Mat4, parentScrollLayer scene.ScrollLayerID, parentRenderTarget int, clipRect, sceneRect f32.Rectangle) {
	sc, ok := b.Scene.StackingContexts[id]
	if !ok {
		return
	}

	thisScrollLayer := parentScrollLayer
	if sc.Fixed {
		thisScrollLayer = FixedScrollLayer
	} else if sc.ScrollLayer != 0 {
		thisScrollLayer = sc.ScrollLayer
	}

	childOffset := parentOffset.Add(sc.Bounds.Min)
	localTransform := f32.Translate4(sc.Bounds.Min.X, sc.Bounds.Min.Y, 0).Mul(sc.Transform)
	finalTransform := parentPerspective.Mul(parentTransform).Mul(localTransform)

	overflow := sc.Overflow.Add(sc.Bounds.Min)
	overflow = clipRect.Intersect(overflow)
	if overflow.Dx() <= 0 || overflow.Dy() <= 0 {
		return
	}

	// Composition: a stacking context with a non-Normal mix-blend-mode
	// or filters renders into a chain of off-screen targets instead of
	// directly into its parent's, one new target per composition op,
	// each composited into the previous target in the chain (or into
	// the parent target, for the first op). The chain's final transform
	// resets to identity: content inside is positioned relative to the
	// target's own origin, not the accumulated ancestor transform.
	thisRenderTarget := parentRenderTarget
	thisTransform := finalTransform
	thisPerspective := sc.Perspective
	ops := buildCompositionOps(sc)
	if len(ops) > 0 {
		owner := parentRenderTarget
		for _, op := range ops {
			targetID := b.nextTargetID
			b.nextTargetID++
			b.composites = append(b.composites, compositeTarget{targetID: targetID, ownerTarget: owner, op: op, rect: overflow})
			owner = targetID
		}
		thisRenderTarget = owner
		thisTransform = f32.Identity4()
		thisPerspective = f32.Identity4()
	}

	b.placements[id] = stackingContextPlacement{
		offsetFromLayer: childOffset,
		localClipRect:   overflow.Add(f32.Pt(-sc.Bounds.Min.X, -sc.Bounds.Min.Y)),
		scrollLayer:     thisScrollLayer,
		finalTransform:  thisTransform,
		renderTarget:    thisRenderTarget,
	}

	l := b.layerFor(thisScrollLayer, sceneRect)

	for _, dlID := range sc.DisplayLists {
		dl, ok := b.Scene.DisplayLists[dlID]
		if !ok {
			continue
		}
		dl.Levels(func(_ scene.StackingLevel, items []scene.SceneItem) {
			for _, item := range items {
				switch item.Kind {
				case scene.SceneItemDrawList:
					b.insertDrawList(l, item.DrawList, id, childOffset, overflow)
				case scene.SceneItemStackingContext:
					b.flattenStackingContext(item.StackingContext, childOffset, thisTransform, thisPerspective, thisScrollLayer, thisRenderTarget, overflow, sceneRect)
				case scene.SceneItemIframe:
					b.flattenIframe(item.Iframe, childOffset, thisTransform, thisPerspective, thisScrollLayer, thisRenderTarget, overflow, sceneRect)
				}
			}
		})
	}
}

func (b *Builder) flattenIframe(item scene.IframeItem, parentOffset f32.Point, parentTransform, parentPerspective f32.Mat4, parentScrollLayer scene.ScrollLayerID, parentRenderTarget int, clipRect, sceneRect f32.Rectangle) {
	pipeline, ok := b.Scene.Pipelines[item.PipelineID]
	if !ok {
		return
	}
	clip := item.ClipRect.Add(parentOffset).Intersect(clipRect)
	if clip.Dx() <= 0 || clip.Dy() <= 0 {
		return
	}
	b.flattenStackingContext(pipeline.RootStackingContext, parentOffset.Add(item.Offset), parentTransform, parentPerspective, parentScrollLayer, parentRenderTarget, clip, sceneRect)
}

func (b *Builder) insertDrawList(l *layer.Layer, id scene.DrawListID, scID scene.StackingContextID, offset f32.Point, clip f32.Rectangle) {
	dl, ok := b.Scene.DrawLists[id]
	if !ok {
		return
	}
	b.drawListOwner[id] = scID
	for i, item := range dl.Items {
		rect := item.Rect.Add(offset)
		rect = rect.Intersect(clip)
		if rect.Dx() <= 0 || rect.Dy() <= 0 {
			continue
		}
		l.Insert(rect, id, i)
	}
}

// slotFor returns sc's stable matrix-palette slot under scrollLayer,
// assigning a fresh one the first time each stacking context is seen.
// Slots are never reassigned once given, so a CompiledNode's
// PackedVertex.MatrixIndex values stay meaningful across Build calls
// that skip recompiling it.
func (b *Builder) slotFor(scrollLayer scene.ScrollLayerID, sc scene.StackingContextID) uint8 {
	if b.matrixSlots == nil {
		b.matrixSlots = map[scene.ScrollLayerID]map[scene.StackingContextID]uint8{}
	}
	m := b.matrixSlots[scrollLayer]
	if m == nil {
		m = map[scene.StackingContextID]uint8{}
		b.matrixSlots[scrollLayer] = m
	}
	if idx, ok := m[sc]; ok {
		return idx
	}
	if len(m) >= wrconst.MaxMatricesPerBatch {
		panic("frame: matrix palette exceeded wrconst.MaxMatricesPerBatch slots for one scroll layer")
	}
	idx := uint8(len(m))
	m[sc] = idx
	return idx
}

// paletteEntries builds scrollLayer's full matrix palette from its
// currently known slots, composing each stacking context's final
// transform with the layer's current scroll offset so geometry baked at
// flatten time doesn't need recompiling just because the layer scrolled.
func (b *Builder) paletteEntries(scrollLayer scene.ScrollLayerID, scrollOffset f32.Point) []device.MatrixPaletteEntry {
	slots := b.matrixSlots[scrollLayer]
	entries := make([]device.MatrixPaletteEntry, len(slots))
	for i := range entries {
		entries[i] = identityPaletteEntry()
	}
	for sc, idx := range slots {
		p, ok := b.placements[sc]
		if !ok {
			continue
		}
		m := f32.Translate4(-scrollOffset.X, -scrollOffset.Y, 0).Mul(p.finalTransform)
		entries[idx] = paletteEntry(m)
	}
	return entries
}

// renderTargetForNode reports which Build target index a compiled
// node's geometry belongs to, taken from its first bucket's owning
// stacking context. A node's buckets span more than one render target
// only if draw lists from both a composited and a non-composited
// stacking context landed in the same aabb leaf, a rare case this
// module resolves by keeping the whole node's output together under its
// first bucket's target rather than splitting the node.
func (b *Builder) renderTargetForNode(node *aabb.Node) int {
	if len(node.Buckets) == 0 {
		return rootTarget
	}
	owner := b.drawListOwner[node.Buckets[0].DrawList]
	if p, ok := b.placements[owner]; ok {
		return p.renderTarget
	}
	return rootTarget
}

// Build culls every Layer against viewport, compiles each newly visible
// leaf, and collects the result into a device.Frame plus the list of
// BatchUpdate::Create records the newly compiled vertex buffers need
// uploaded. Grounded on frame.rs's build/compile_visible_nodes/
// collect_and_sort_visible_batches pipeline, including its render-target
// stack for composited stacking contexts.
func (b *Builder) Build(viewport f32.Rectangle) (device.Frame, device.BatchUpdateList) {
	var pending device.BatchUpdateList

	targets := make([]device.RenderTarget, b.nextTargetID)
	targets[rootTarget] = device.RenderTarget{Width: uint32(viewport.Dx()), Height: uint32(viewport.Dy())}
	targets[rootTarget].Commands = append(targets[rootTarget].Commands, device.DrawCommand{Kind: device.DrawClear, Clear: device.ClearInfo{HasColor: true}})

	for _, c := range b.composites {
		tex := newTargetTexture()
		targets[c.targetID] = device.RenderTarget{
			Width:      uint32(c.rect.Dx()),
			Height:     uint32(c.rect.Dy()),
			Texture:    tex,
			HasTexture: true,
		}
		targets[c.targetID].Commands = append(targets[c.targetID].Commands, device.DrawCommand{Kind: device.DrawClear, Clear: device.ClearInfo{HasColor: true}})
		targets[c.ownerTarget].Commands = append(targets[c.ownerTarget].Commands, device.DrawCommand{
			Kind: device.DrawComposite,
			Composite: device.CompositeInfo{
				Operation:      c.op,
				ColorTextureID: tex,
				Rect:           rectToUint32(c.rect),
			},
		})
	}

	for scrollLayer, l := range b.Layers {
		l.Cull(viewport)

		ctx := compile.Context{
			DrawLists:        b.Scene.DrawLists,
			OffsetFromLayer:  offsetsFor(b.placements),
			LocalClipRect:    clipsFor(b.placements),
			Resources:        b.Resources,
			Images:           b.Images,
			DevicePixelRatio: b.DevicePixelRatio,
			StackingContextOf: func(dl scene.DrawListID) scene.StackingContextID {
				return b.drawListOwner[dl]
			},
		}
		compiler := compile.New(ctx)

		perTarget := map[int]*device.BatchCommand{}

		for i := range l.Tree.Nodes {
			node := &l.Tree.Nodes[i]
			if !node.Visible || len(node.Buckets) == 0 {
				continue
			}

			if !node.HasCompiled {
				compiled := compiler.CompileNode(node, func(sc scene.StackingContextID) uint8 { return b.slotFor(scrollLayer, sc) })
				node.Compiled = compiled
				node.HasCompiled = true
				pending.Push(device.BatchUpdate{
					ID: uint32(compiled.VertexBuffer.ID),
					Op: device.BatchUpdateOp{
						Kind:     device.BatchOpCreate,
						Vertices: compiled.VertexBuffer.Vertices,
						Indices:  compiled.VertexBuffer.Indices,
					},
				})
			}
			compiled, ok := node.Compiled.(compile.CompiledNode)
			if !ok || len(compiled.Batches) == 0 {
				continue
			}

			target := b.renderTargetForNode(node)
			bc := perTarget[target]
			if bc == nil {
				bc = &device.BatchCommand{}
				perTarget[target] = bc
			}
			for _, bt := range compiled.Batches {
				bc.DrawCalls = append(bc.DrawCalls, device.BatchDrawCall{
					VertexBufferID: uint32(compiled.VertexBuffer.ID),
					ColorTexture:   device.TextureID(bt.ColorTexture),
					MaskTexture:    device.TextureID(bt.MaskTexture),
					FirstVertex:    bt.FirstVertex,
					IndexCount:     bt.IndexCount,
					TileParams:     convertTileParams(bt.TileParams),
				})
			}
		}

		if len(perTarget) == 0 {
			continue
		}
		palette := b.paletteEntries(scrollLayer, l.ScrollOffset)
		for target, bc := range perTarget {
			bc.MatrixPalette = palette
			targets[target].Commands = append(targets[target].Commands, device.DrawCommand{Kind: device.DrawBatch, Batch: []device.BatchCommand{*bc}})
		}
	}

	return device.Frame{Targets: reverseTargets(targets)}, pending
}

var targetTextureCounter uint32

// newTargetTexture allocates a fresh abstract id for an off-screen
// composite target's color texture, mirroring batch.newID's
// process-wide monotonic counter; a real backend binds it the first
// time it sees the target's Texture field.
func newTargetTexture() device.TextureID {
	return device.TextureID(atomic.AddUint32(&targetTextureCounter, 1))
}

func rectToUint32(r f32.Rectangle) [4]uint32 {
	return [4]uint32{uint32(r.Min.X), uint32(r.Min.Y), uint32(r.Max.X), uint32(r.Max.Y)}
}

// reverseTargets orders targets innermost-first: a composite target's
// index is always greater than the target it composites into (targets
// are allocated in Flatten's depth-first visiting order), so reversing
// creation order guarantees every target is emitted before anything
// that references its texture.
func reverseTargets(targets []device.RenderTarget) []device.RenderTarget {
	out := make([]device.RenderTarget, len(targets))
	for i, t := range targets {
		out[len(targets)-1-i] = t
	}
	return out
}

func identityPaletteEntry() device.MatrixPaletteEntry {
	return paletteEntry(f32.Identity4())
}

func paletteEntry(m f32.Mat4) device.MatrixPaletteEntry {
	var e device.MatrixPaletteEntry
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			e[row*4+col] = m[row][col]
		}
	}
	return e
}

func convertTileParams(in []batch.TileParams) []device.TileParams {
	if in == nil {
		return nil
	}
	out := make([]device.TileParams, len(in))
	for i, t := range in {
		out[i] = device.TileParams{U0: t.U0, V0: t.V0, USize: t.USize, VSize: t.VSize}
	}
	return out
}

func offsetsFor(placements map[scene.StackingContextID]stackingContextPlacement) map[scene.StackingContextID]f32.Point {
	out := make(map[scene.StackingContextID]f32.Point, len(placements))
	for k, v := range placements {
		out[k] = v.offsetFromLayer
	}
	return out
}

func clipsFor(placements map[scene.StackingContextID]stackingContextPlacement) map[scene.StackingContextID]f32.Rectangle {
	out := make(map[scene.StackingContextID]f32.Rectangle, len(placements))
	for k, v := range placements {
		out[k] = v.localClipRect
	}
	return out
}
