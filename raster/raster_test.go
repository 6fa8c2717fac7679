// SPDX-License-Identifier: Unlicense OR MIT

package raster

import "testing"

func TestKeyDeterministic(t *testing.T) {
	a := Item{Kind: KindBorderRadius, BorderRadius: BorderRadius{OuterRadiusX: 4, OuterRadiusY: 4}}
	b := Item{Kind: KindBorderRadius, BorderRadius: BorderRadius{OuterRadiusX: 4, OuterRadiusY: 4}}
	if a.Key() != b.Key() {
		t.Fatal("identical items must hash equal")
	}
}

func TestKeyDistinguishesKind(t *testing.T) {
	a := Item{Kind: KindBorderRadius, BorderRadius: BorderRadius{OuterRadiusX: 4}}
	b := Item{Kind: KindBoxShadow, BoxShadow: BoxShadow{BlurRadius: 4}}
	if a.Key() == b.Key() {
		t.Fatal("different kinds should not collide trivially")
	}
}

func TestKeyDistinguishesFields(t *testing.T) {
	a := Item{Kind: KindBorderRadius, BorderRadius: BorderRadius{OuterRadiusX: 4, Inverted: false}}
	b := Item{Kind: KindBorderRadius, BorderRadius: BorderRadius{OuterRadiusX: 4, Inverted: true}}
	if a.Key() == b.Key() {
		t.Fatal("inverted flag must affect the key")
	}
}
