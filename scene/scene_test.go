// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"testing"

	"github.com/wrgo/wrcore/f32"
)

func TestDisplayListLevelsPaintOrder(t *testing.T) {
	var dl DisplayList
	dl.Append(LevelContent, SceneItem{Kind: SceneItemDrawList, DrawList: 1})
	dl.Append(LevelBackgroundAndBorders, SceneItem{Kind: SceneItemDrawList, DrawList: 2})

	var order []StackingLevel
	dl.Levels(func(level StackingLevel, items []SceneItem) {
		if len(items) > 0 {
			order = append(order, level)
		}
	})
	if len(order) != 2 || order[0] != LevelBackgroundAndBorders || order[1] != LevelContent {
		t.Fatalf("unexpected paint order: %v", order)
	}
}

func TestClipSimple(t *testing.T) {
	c := SimpleClip(f32.Rect(0, 0, 10, 10))
	if c.HasComplex {
		t.Fatal("simple clip should not carry a complex clip")
	}
}

func TestCornerRadiiIsZero(t *testing.T) {
	var c CornerRadii
	if !c.IsZero() {
		t.Fatal("zero-value CornerRadii should report IsZero")
	}
	c.TopLeft = f32.Pt(1, 1)
	if c.IsZero() {
		t.Fatal("non-zero radius should not report IsZero")
	}
}

func TestSceneNew(t *testing.T) {
	s := NewScene()
	s.SetRootPipeline(3)
	if !s.HasRootPipeline || s.RootPipeline != 3 {
		t.Fatal("root pipeline not recorded")
	}
}
