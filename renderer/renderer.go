// SPDX-License-Identifier: Unlicense OR MIT

// Package renderer is the host-facing facade over this module's
// frame-building pipeline: it owns the current Scene, the per-layer
// aabb.Trees, and the resource cache, and turns SetScene/Build/Scroll
// calls into a ready-to-submit device.Frame. Grounded on the general
// shape of gioui.org/gpu's compute type, which similarly owns every
// cache alongside the device it renders through and exposes a single
// render-one-frame entry point.
package renderer

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wrgo/wrcore/device"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/frame"
	"github.com/wrgo/wrcore/primitive"
	"github.com/wrgo/wrcore/resourcecache"
	"github.com/wrgo/wrcore/scene"
)

// Renderer owns the current Scene and every per-frame cache needed to
// turn it into a device.Frame. Its methods serialize on an internal
// mutex. Build flattens on the calling goroutine, decodes resources in
// parallel, then inserts them into the cache and compiles on the
// calling goroutine again.
type Renderer struct {
	mu sync.Mutex

	scn              *scene.Scene
	resources        *resourcecache.Cache
	images           primitive.ImageProvider
	devicePixelRatio float32

	builder *frame.Builder
}

// New returns a Renderer with an empty Scene, resolving image and glyph
// pixel data it doesn't already have cached through images.
func New(images primitive.ImageProvider, devicePixelRatio float32) *Renderer {
	r := &Renderer{
		scn:              scene.NewScene(),
		resources:        resourcecache.New(),
		images:           images,
		devicePixelRatio: devicePixelRatio,
	}
	r.builder = frame.NewBuilder(r.scn, r.resources, r.images, r.devicePixelRatio)
	return r
}

// SetScene replaces the Scene a Renderer builds frames from. The
// previous Scene's compiled nodes are dropped; the next Build call
// recompiles everything it visits from scratch, mirroring this module's
// immutable-snapshot scene-replacement model rather than in-place
// patching.
func (r *Renderer) SetScene(scn *scene.Scene) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scn = scn
	r.builder = frame.NewBuilder(r.scn, r.resources, r.images, r.devicePixelRatio)
}

// Scroll applies delta to the named scroll layer, clamped against its
// recorded scroll boundary, within viewportSize. A no-op if the layer
// has no content yet.
func (r *Renderer) Scroll(layer scene.ScrollLayerID, delta f32.Point, viewportSize f32.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.builder.Layers[layer]
	if !ok {
		return
	}
	l.Scroll(delta, viewportSize)
}

// warmResource resolves one resource ahead of the compile pass, so the
// texture-cache upload it may trigger has already happened by the time
// CompileNode runs and needs the resulting atlas coordinates.
type warmResource struct {
	kind     ResourceKind
	key      interface{}
	fontSize float32
}

// ResourceKind discriminates the variants of a warmResource request.
type ResourceKind uint8

const (
	resourceImage ResourceKind = iota
	resourceGlyph
)

// Build flattens the current Scene against sceneRect, then, when an
// ImageProvider is set, warms every distinct image and glyph referenced
// by any of the Scene's draw lists (decoding runs in parallel; the
// cache inserts that follow run one at a time), then culls and compiles
// against viewport on the calling goroutine, producing the returned
// device.Frame.
func (r *Renderer) Build(sceneRect, viewport f32.Rectangle) (device.Frame, device.BatchUpdateList) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.builder.Flatten(sceneRect)

	if r.images != nil {
		r.warmResources()
	}

	return r.builder.Build(viewport)
}

// decodedResource is one warmResources entry's host-decoded pixel data,
// ready to hand to the resource cache.
type decodedResource struct {
	warmResource
	width, height uint32
	format        scene.ImageFormat
	pixels        []byte
}

// warmResources decodes every distinct ImageKey/GlyphKey referenced by
// the current Scene's draw lists concurrently through an errgroup —
// ImageProvider.Image/Glyph calls are host-side decoding with no shared
// state — then inserts the results into the resource cache one at a
// time, since the cache's atlas allocator is not itself safe for
// concurrent writers.
func (r *Renderer) warmResources() {
	seen := map[interface{}]bool{}
	var keys []warmResource
	for _, dl := range r.scn.DrawLists {
		for _, item := range dl.Items {
			switch item.Kind {
			case scene.ItemImage:
				if !seen[item.Image.Key] {
					seen[item.Image.Key] = true
					keys = append(keys, warmResource{kind: resourceImage, key: item.Image.Key})
				}
			case scene.ItemText:
				for _, g := range item.Text.Glyphs {
					if !seen[g.Key] {
						seen[g.Key] = true
						keys = append(keys, warmResource{kind: resourceGlyph, key: g.Key, fontSize: item.Text.FontSize})
					}
				}
			}
		}
	}

	decoded := make([]decodedResource, len(keys))
	var group errgroup.Group
	for i, k := range keys {
		i, k := i, k
		group.Go(func() error {
			switch k.kind {
			case resourceImage:
				w, h, format, pixels := r.images.Image(k.key.(scene.ImageKey))
				decoded[i] = decodedResource{warmResource: k, width: w, height: h, format: format, pixels: pixels}
			case resourceGlyph:
				w, h, pixels := r.images.Glyph(k.key.(scene.GlyphKey), k.fontSize)
				decoded[i] = decodedResource{warmResource: k, width: w, height: h, pixels: pixels}
			}
			return nil
		})
	}
	_ = group.Wait()

	for _, d := range decoded {
		if d.pixels == nil {
			continue
		}
		switch d.kind {
		case resourceImage:
			r.resources.GetImage(d.key.(scene.ImageKey), d.width, d.height, d.format, d.pixels)
		case resourceGlyph:
			r.resources.GetGlyph(d.key.(scene.GlyphKey), d.width, d.height, d.pixels)
		}
	}
}
