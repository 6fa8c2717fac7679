// SPDX-License-Identifier: Unlicense OR MIT

package renderer

import (
	"testing"

	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/scene"
)

type fakeImages struct {
	imageCalls int
	glyphCalls int
}

func (f *fakeImages) Image(key scene.ImageKey) (uint32, uint32, scene.ImageFormat, []byte) {
	f.imageCalls++
	return 4, 4, scene.FormatRGBA8, make([]byte, 4*4*4)
}

func (f *fakeImages) Glyph(key scene.GlyphKey, fontSize float32) (uint32, uint32, []byte) {
	f.glyphCalls++
	return 8, 8, make([]byte, 8*8)
}

func rectScene() *scene.Scene {
	scn := scene.NewScene()
	scn.DrawLists[1] = scene.DrawList{
		Items: []scene.DisplayItem{
			{
				Rect:      f32.Rect(0, 0, 10, 10),
				Clip:      scene.SimpleClip(f32.Rect(0, 0, 10, 10)),
				Kind:      scene.ItemRectangle,
				Rectangle: scene.RectangleItem{Color: scene.ColorF{R: 1, A: 1}},
			},
		},
	}
	dl := scene.DisplayList{}
	dl.Append(scene.LevelBackgroundAndBorders, scene.SceneItem{Kind: scene.SceneItemDrawList, DrawList: 1})
	scn.DisplayLists[1] = dl
	scn.StackingContexts[1] = scene.StackingContext{
		Bounds:       f32.Rect(0, 0, 100, 100),
		Transform:    f32.Identity4(),
		Perspective:  f32.Identity4(),
		Overflow:     f32.Rect(0, 0, 100, 100),
		DisplayLists: []scene.DisplayListID{1},
	}
	scn.Pipelines[1] = scene.Pipeline{RootStackingContext: 1}
	scn.SetRootPipeline(1)
	return scn
}

func TestBuildProducesFrameFromScene(t *testing.T) {
	r := New(nil, 1)
	r.SetScene(rectScene())

	fr, updates := r.Build(f32.Rect(0, 0, 1000, 1000), f32.Rect(0, 0, 1000, 1000))
	if len(fr.Targets) != 1 {
		t.Fatalf("expected one render target, got %d", len(fr.Targets))
	}
	if len(fr.Targets[0].Commands) != 2 {
		t.Fatalf("expected clear+batch commands, got %d", len(fr.Targets[0].Commands))
	}
	if len(updates.Updates) != 1 {
		t.Fatalf("expected one batch-cache create update for the newly compiled node, got %d", len(updates.Updates))
	}
}

func TestBuildWarmsImageResourcesOnce(t *testing.T) {
	scn := scene.NewScene()
	scn.DrawLists[1] = scene.DrawList{
		Items: []scene.DisplayItem{
			{Rect: f32.Rect(0, 0, 10, 10), Clip: scene.SimpleClip(f32.Rect(0, 0, 10, 10)), Kind: scene.ItemImage, Image: scene.ImageItem{Key: 7}},
			{Rect: f32.Rect(10, 0, 20, 10), Clip: scene.SimpleClip(f32.Rect(10, 0, 20, 10)), Kind: scene.ItemImage, Image: scene.ImageItem{Key: 7}},
		},
	}
	dl := scene.DisplayList{}
	dl.Append(scene.LevelBackgroundAndBorders, scene.SceneItem{Kind: scene.SceneItemDrawList, DrawList: 1})
	scn.DisplayLists[1] = dl
	scn.StackingContexts[1] = scene.StackingContext{
		Bounds:       f32.Rect(0, 0, 100, 100),
		Transform:    f32.Identity4(),
		Perspective:  f32.Identity4(),
		Overflow:     f32.Rect(0, 0, 100, 100),
		DisplayLists: []scene.DisplayListID{1},
	}
	scn.Pipelines[1] = scene.Pipeline{RootStackingContext: 1}
	scn.SetRootPipeline(1)

	fake := &fakeImages{}
	r := New(fake, 1)
	r.SetScene(scn)
	_, _ = r.Build(f32.Rect(0, 0, 1000, 1000), f32.Rect(0, 0, 1000, 1000))

	if fake.imageCalls != 1 {
		t.Fatalf("expected the repeated image key to be decoded exactly once, got %d calls", fake.imageCalls)
	}
}

func TestScrollIsANoOpWithoutContent(t *testing.T) {
	r := New(nil, 1)
	r.Scroll(0, f32.Pt(-10, -10), f32.Pt(100, 100))
}
