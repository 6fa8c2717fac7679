// SPDX-License-Identifier: Unlicense OR MIT

package freelist

import "testing"

type slot struct {
	val    int
	next   ID
	hasNxt bool
}

func (s slot) NextFreeID() (ID, bool)        { return s.next, s.hasNxt }
func (s *slot) SetNextFreeID(id ID, ok bool) { s.next, s.hasNxt = id, ok }

func TestInsertGet(t *testing.T) {
	var l List[*slot]
	id := l.Insert(&slot{val: 1})
	if l.Get(id).val != 1 {
		t.Fatalf("got %v want 1", l.Get(id).val)
	}
	if l.Len() != 1 {
		t.Fatalf("len = %d want 1", l.Len())
	}
}

func TestFreeAndReuse(t *testing.T) {
	var l List[*slot]
	a := l.Insert(&slot{val: 1})
	b := l.Insert(&slot{val: 2})
	l.Free(a)
	if l.Len() != 1 {
		t.Fatalf("len = %d want 1", l.Len())
	}
	c := l.Insert(&slot{val: 3})
	if c != a {
		t.Fatalf("expected freed slot %d to be reused, got %d", a, c)
	}
	if l.Get(b).val != 2 {
		t.Fatalf("unrelated item corrupted: %v", l.Get(b))
	}
}

func TestIterMutSkipsFree(t *testing.T) {
	var l List[*slot]
	a := l.Insert(&slot{val: 1})
	_ = a
	b := l.Insert(&slot{val: 2})
	c := l.Insert(&slot{val: 3})
	l.Free(b)
	var seen []int
	l.IterMut(func(id ID, item **slot) {
		seen = append(seen, (*item).val)
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("unexpected iteration order: %v", seen)
	}
	_ = c
}

func TestLIFOFreeOrder(t *testing.T) {
	var l List[*slot]
	a := l.Insert(&slot{val: 1})
	b := l.Insert(&slot{val: 2})
	l.Free(a)
	l.Free(b)
	first := l.Insert(&slot{val: 10})
	if first != b {
		t.Fatalf("expected LIFO reuse of %d, got %d", b, first)
	}
	second := l.Insert(&slot{val: 20})
	if second != a {
		t.Fatalf("expected LIFO reuse of %d, got %d", a, second)
	}
}
