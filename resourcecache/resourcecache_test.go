// SPDX-License-Identifier: Unlicense OR MIT

package resourcecache

import (
	"testing"

	"github.com/wrgo/wrcore/raster"
	"github.com/wrgo/wrcore/scene"
)

func TestGetImageCachesAndQueuesUpdate(t *testing.T) {
	c := New()
	key := scene.ImageKey(1)
	item1 := c.GetImage(key, 16, 16, scene.FormatRGBA8, make([]byte, 16*16*4))
	if len(c.PendingUpdates().Updates) == 0 {
		t.Fatal("expected at least one pending texture update")
	}
	item2 := c.GetImage(key, 16, 16, scene.FormatRGBA8, nil)
	if item1 != item2 {
		t.Fatalf("expected cache hit to return the same item: %+v vs %+v", item1, item2)
	}
}

func TestFrameAgesOutUntouchedEntries(t *testing.T) {
	c := New()
	key := scene.ImageKey(1)
	c.GetImage(key, 8, 8, scene.FormatRGBA8, nil)
	c.Frame()
	// Not touched in this "frame" — should be evicted.
	c.Frame()
	if _, ok := c.images[key]; ok {
		t.Fatal("expected untouched entry to be evicted after two Frame() calls")
	}
}

func TestFrameKeepsTouchedEntries(t *testing.T) {
	c := New()
	key := scene.ImageKey(1)
	c.GetImage(key, 8, 8, scene.FormatRGBA8, nil)
	c.Frame()
	c.GetImage(key, 8, 8, scene.FormatRGBA8, nil)
	c.Frame()
	if _, ok := c.images[key]; !ok {
		t.Fatal("expected touched entry to survive Frame()")
	}
}

func TestGetRasterCachesByKey(t *testing.T) {
	c := New()
	calls := 0
	item := raster.Item{Kind: raster.KindBorderRadius, BorderRadius: raster.BorderRadius{OuterRadiusX: 4, OuterRadiusY: 4}}
	render := func() []byte { calls++; return make([]byte, 4*4) }
	c.GetRaster(item, 4, 4, scene.FormatA8, render)
	c.GetRaster(item, 4, 4, scene.FormatA8, render)
	if calls != 1 {
		t.Fatalf("expected rasterize to run once, got %d calls", calls)
	}
}

func TestDummyImages(t *testing.T) {
	c := New()
	if c.GetDummyColorImage().Format != scene.FormatRGBA8 {
		t.Fatal("expected dummy color image to be RGBA8")
	}
	if c.GetDummyMaskImage().Format != scene.FormatA8 {
		t.Fatal("expected dummy mask image to be A8")
	}
}
