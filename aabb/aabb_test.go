// SPDX-License-Identifier: Unlicense OR MIT

package aabb

import (
	"testing"

	"github.com/wrgo/wrcore/f32"
)

func TestInsertSingleLeaf(t *testing.T) {
	tree := New(1024, f32.Rect(0, 0, 512, 512))
	tree.Insert(f32.Rect(10, 10, 20, 20), 1, 0)
	if len(tree.Nodes) != 1 {
		t.Fatalf("expected no split below split size, got %d nodes", len(tree.Nodes))
	}
	if tree.Nodes[0].ItemCount() != 1 {
		t.Fatalf("expected 1 item, got %d", tree.Nodes[0].ItemCount())
	}
}

func TestSplitOnLargerAxis(t *testing.T) {
	tree := New(100, f32.Rect(0, 0, 400, 100))
	tree.Insert(f32.Rect(0, 0, 10, 10), 1, 0)
	if len(tree.Nodes) < 3 {
		t.Fatalf("expected a split to have occurred, got %d nodes", len(tree.Nodes))
	}
	root := tree.Nodes[0]
	if !root.HasChildren {
		t.Fatal("expected root to have children after split")
	}
	left := tree.Nodes[root.ChildBase]
	if left.SplitRect.Dx() != 200 {
		t.Fatalf("expected split along the wider axis, got left width %v", left.SplitRect.Dx())
	}
}

func TestBucketGroupingByDrawList(t *testing.T) {
	tree := New(1024, f32.Rect(0, 0, 100, 100))
	tree.Insert(f32.Rect(0, 0, 10, 10), 1, 0)
	tree.Insert(f32.Rect(0, 0, 10, 10), 1, 1)
	tree.Insert(f32.Rect(0, 0, 10, 10), 2, 0)
	tree.Insert(f32.Rect(0, 0, 10, 10), 1, 2)
	buckets := tree.Nodes[0].Buckets
	if len(buckets) != 3 {
		t.Fatalf("expected a new bucket whenever draw list id changes, got %d buckets", len(buckets))
	}
	if len(buckets[0].Indices) != 2 {
		t.Fatalf("expected first bucket to absorb both consecutive draw-list-1 items, got %v", buckets[0].Indices)
	}
}

func TestCullVisibility(t *testing.T) {
	tree := New(1024, f32.Rect(0, 0, 1000, 1000))
	tree.Insert(f32.Rect(5, 5, 15, 15), 1, 0)
	tree.Cull(f32.Rect(0, 0, 20, 20))
	if !tree.Nodes[0].Visible {
		t.Fatal("expected the root leaf to be visible when viewport intersects its actual rect")
	}
	tree.Cull(f32.Rect(500, 500, 520, 520))
	if tree.Nodes[0].Visible {
		t.Fatal("expected no visibility when viewport misses the actual rect")
	}
}

func TestResourceListTiledImageThreshold(t *testing.T) {
	rl := NewResourceList()
	rl.AddImage(1, f32.Pt(1024, 1024), f32.Pt(16, 16))
	if _, ok := rl.TiledImages[1]; !ok {
		t.Fatal("expected a high-repeat image to require tiling")
	}
}

func TestResourceListNoTilingBelowThreshold(t *testing.T) {
	rl := NewResourceList()
	rl.AddImage(1, f32.Pt(100, 100), f32.Pt(50, 50))
	if _, ok := rl.TiledImages[1]; ok {
		t.Fatal("expected a low-repeat image not to require tiling")
	}
}
