// SPDX-License-Identifier: Unlicense OR MIT

package atlas

import "testing"

func newCountingTexture() (NewTextureFunc, *int) {
	n := 0
	return func(size uint32, format Format) TextureID {
		n++
		return TextureID(n)
	}, &n
}

func TestAllocateSharesPage(t *testing.T) {
	newTex, n := newCountingTexture()
	a := New(newTex)
	r1 := a.Allocate(16, 16, FormatA8)
	r2 := a.Allocate(16, 16, FormatA8)
	if r1.Kind != KindPage || r2.Kind != KindPage {
		t.Fatalf("expected page allocations, got %v %v", r1.Kind, r2.Kind)
	}
	if r1.Texture != r2.Texture {
		t.Fatalf("expected both allocations to share one page texture")
	}
	if *n != 1 {
		t.Fatalf("expected exactly one backing texture created, got %d", *n)
	}
	if r1.X == r2.X && r1.Y == r2.Y {
		t.Fatal("expected distinct block coordinates")
	}
}

func TestAllocateStandaloneWhenOversized(t *testing.T) {
	newTex, _ := newCountingTexture()
	a := New(newTex)
	r := a.Allocate(2000, 2000, FormatRGBA8)
	if r.Kind != KindStandalone {
		t.Fatalf("expected standalone allocation for oversized request, got %v", r.Kind)
	}
}

func TestAllocateNewPageWhenFull(t *testing.T) {
	newTex, n := newCountingTexture()
	a := New(newTex)
	// Smallest block size (32) on a 1024 page yields 32x32=1024 blocks.
	for i := 0; i < 1024; i++ {
		a.Allocate(32, 32, FormatA8)
	}
	if *n != 1 {
		t.Fatalf("expected first page to absorb all 1024 blocks, got %d textures", *n)
	}
	a.Allocate(32, 32, FormatA8)
	if *n != 2 {
		t.Fatalf("expected a second page once the first filled, got %d textures", *n)
	}
}

func TestAllocateFormatsUseSeparatePages(t *testing.T) {
	newTex, n := newCountingTexture()
	a := New(newTex)
	a.Allocate(16, 16, FormatA8)
	a.Allocate(16, 16, FormatRGBA8)
	if *n != 2 {
		t.Fatalf("expected distinct pages per format, got %d textures", *n)
	}
}
