// SPDX-License-Identifier: Unlicense OR MIT

package layer

import (
	"testing"

	"github.com/wrgo/wrcore/device"
	"github.com/wrgo/wrcore/f32"
)

func TestScrollClampsToBoundary(t *testing.T) {
	l := New(1024, f32.Rect(0, 0, 2000, 2000))
	l.ScrollBoundaries = f32.Pt(2000, 2000)
	l.Scroll(f32.Pt(-5000, 5000), f32.Pt(500, 500))
	if l.ScrollOffset.X > 0 || l.ScrollOffset.X < -1500 {
		t.Fatalf("expected x scroll clamped to [-1500, 0], got %v", l.ScrollOffset.X)
	}
	if l.ScrollOffset.Y != 0 {
		t.Fatalf("expected y scroll clamped to 0 for a positive delta, got %v", l.ScrollOffset.Y)
	}
}

func TestInsertAndCull(t *testing.T) {
	l := New(1024, f32.Rect(0, 0, 100, 100))
	l.Insert(f32.Rect(0, 0, 10, 10), 1, 0)
	l.Cull(f32.Rect(0, 0, 100, 100))
	if !l.Tree.Nodes[0].Visible {
		t.Fatal("expected the root leaf to be visible after culling against a covering viewport")
	}
}

func TestResetClearsCompiledFlag(t *testing.T) {
	l := New(1024, f32.Rect(0, 0, 100, 100))
	l.Insert(f32.Rect(0, 0, 10, 10), 1, 0)
	l.Tree.Nodes[0].HasCompiled = true
	var destroyed []uint32
	pending := &device.TextureUpdateList{}
	l.Reset(pending, map[int]uint32{0: 42}, func(id uint32) { destroyed = append(destroyed, id) })
	if l.Tree.Nodes[0].HasCompiled {
		t.Fatal("expected HasCompiled to be cleared")
	}
	if len(destroyed) != 1 || destroyed[0] != 42 {
		t.Fatalf("expected destroy callback invoked with id 42, got %v", destroyed)
	}
}
