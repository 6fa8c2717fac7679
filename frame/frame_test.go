// SPDX-License-Identifier: Unlicense OR MIT

package frame

import (
	"testing"

	"github.com/wrgo/wrcore/device"
	"github.com/wrgo/wrcore/f32"
	"github.com/wrgo/wrcore/resourcecache"
	"github.com/wrgo/wrcore/scene"
)

func singleRectScene() *scene.Scene {
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
		Bounds:      f32.Rect(0, 0, 100, 100),
		Transform:   f32.Identity4(),
		Perspective: f32.Identity4(),
		Overflow:    f32.Rect(0, 0, 100, 100),
		DisplayLists: []scene.DisplayListID{1},
	}
	scn.Pipelines[1] = scene.Pipeline{RootStackingContext: 1}
	scn.SetRootPipeline(1)
	return scn
}

func TestFlattenInsertsDrawListIntoRootLayer(t *testing.T) {
	scn := singleRectScene()
	b := NewBuilder(scn, resourcecache.New(), nil, 1)
	b.Flatten(f32.Rect(0, 0, 1000, 1000))

	l, ok := b.Layers[0]
	if !ok {
		t.Fatal("expected content to land in the root scroll layer")
	}
	if len(l.Tree.Nodes) == 0 {
		t.Fatal("expected at least one aabb node after insertion")
	}
}

func TestFlattenSkipsEmptyOverflow(t *testing.T) {
	scn := singleRectScene()
	sc := scn.StackingContexts[1]
	sc.Overflow = f32.Rect(0, 0, 0, 0)
	scn.StackingContexts[1] = sc

	b := NewBuilder(scn, resourcecache.New(), nil, 1)
	b.Flatten(f32.Rect(0, 0, 1000, 1000))

	if len(b.placements) != 0 {
		t.Fatalf("expected no stacking context placed when overflow is empty, got %d", len(b.placements))
	}
}

func TestFlattenAssignsFixedStackingContextToFixedLayer(t *testing.T) {
	scn := singleRectScene()
	sc := scn.StackingContexts[1]
	sc.Fixed = true
	scn.StackingContexts[1] = sc

	b := NewBuilder(scn, resourcecache.New(), nil, 1)
	b.Flatten(f32.Rect(0, 0, 1000, 1000))

	if _, ok := b.Layers[FixedScrollLayer]; !ok {
		t.Fatal("expected a fixed stacking context to be inserted into the fixed scroll layer")
	}
}

func TestBuildProducesOneClearAndOneBatchCommand(t *testing.T) {
	scn := singleRectScene()
	b := NewBuilder(scn, resourcecache.New(), nil, 1)
	b.Flatten(f32.Rect(0, 0, 1000, 1000))

	fr, updates := b.Build(f32.Rect(0, 0, 1000, 1000))
	if len(fr.Targets) != 1 {
		t.Fatalf("expected a single render target, got %d", len(fr.Targets))
	}
	if len(fr.Targets[0].Commands) != 2 {
		t.Fatalf("expected a clear command followed by a batch command, got %d", len(fr.Targets[0].Commands))
	}

	batchCmd := fr.Targets[0].Commands[1]
	if batchCmd.Kind != device.DrawBatch {
		t.Fatalf("expected the second command to be a batch, got kind %v", batchCmd.Kind)
	}
	if len(batchCmd.Batch) != 1 || len(batchCmd.Batch[0].DrawCalls) != 1 {
		t.Fatalf("expected exactly one batch command carrying one draw call, got %+v", batchCmd.Batch)
	}
	call := batchCmd.Batch[0].DrawCalls[0]
	if call.IndexCount != 6 {
		t.Fatalf("expected a single rectangle to draw 6 indices (two triangles), got %d", call.IndexCount)
	}

	if len(updates.Updates) != 1 {
		t.Fatalf("expected exactly one BatchUpdate::Create for the newly compiled node, got %d", len(updates.Updates))
	}
	create := updates.Updates[0].Op
	if create.Kind != device.BatchOpCreate {
		t.Fatalf("expected a Create op, got %v", create.Kind)
	}
	if len(create.Vertices) != 4 {
		t.Fatalf("expected a single rectangle to pack 4 vertices, got %d", len(create.Vertices))
	}
	if len(create.Indices) != 6 {
		t.Fatalf("expected a single rectangle to pack 6 indices, got %d", len(create.Indices))
	}
	for _, v := range create.Vertices {
		if v.Color.R != 255 || v.Color.G != 0 || v.Color.B != 0 || v.Color.A != 255 {
			t.Fatalf("expected every vertex to carry opaque red, got %+v", v.Color)
		}
	}
}

func TestBuildSkipsBatchCommandWhenNothingVisible(t *testing.T) {
	scn := scene.NewScene()
	b := NewBuilder(scn, resourcecache.New(), nil, 1)
	b.Flatten(f32.Rect(0, 0, 1000, 1000))

	fr, updates := b.Build(f32.Rect(0, 0, 1000, 1000))
	if len(fr.Targets[0].Commands) != 1 {
		t.Fatalf("expected only the clear command with no content, got %d", len(fr.Targets[0].Commands))
	}
	if len(updates.Updates) != 0 {
		t.Fatalf("expected no batch updates with no visible content, got %d", len(updates.Updates))
	}
}
