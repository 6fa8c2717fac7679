// SPDX-License-Identifier: Unlicense OR MIT

package device

import "testing"

func TestPackColorRoundTrip(t *testing.T) {
	c := PackColor(1, 0, 0, 1)
	r, g, b, a := c.Unpack()
	if r < 0.99 || r > 1.01 || g > 0.01 || b > 0.01 || a < 0.99 {
		t.Fatalf("round trip mismatch: %v %v %v %v", r, g, b, a)
	}
	if c != (PackedColor{255, 0, 0, 255}) {
		t.Fatalf("expected (255,0,0,255), got %+v", c)
	}
}

func TestPackUVRoundTrip(t *testing.T) {
	v := PackUV(0.5)
	got := UnpackUV(v)
	if got < 0.5-1.0/65535 || got > 0.5+1.0/65535 {
		t.Fatalf("uv round trip off by more than 1/65535: got %v", got)
	}
}

func TestPackClampsOutOfRange(t *testing.T) {
	c := PackColor(2, -1, 0.5, 0.5)
	if c.R != 255 || c.G != 0 {
		t.Fatalf("expected clamping to [0,1] before packing, got %+v", c)
	}
}

func TestTextureUpdateListPush(t *testing.T) {
	var l TextureUpdateList
	l.Push(TextureUpdate{ID: 1, Op: TextureUpdateOp{Kind: TextureOpCreate, Width: 4, Height: 4}})
	if len(l.Updates) != 1 {
		t.Fatalf("expected one queued update, got %d", len(l.Updates))
	}
}
