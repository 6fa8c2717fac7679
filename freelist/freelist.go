// SPDX-License-Identifier: Unlicense OR MIT

// Package freelist implements a generational, index-addressed slab: a
// growable slice of items where free slots form a LIFO list threaded
// through the items themselves.
package freelist

// ID addresses a single item in a List.
type ID uint32

// Item is the constraint a List's element type must satisfy so that free
// slots can be threaded through the slab itself, rather than tracked in a
// side structure.
type Item interface {
	// NextFreeID returns the id of the next free slot in the chain, or
	// false if this item is the tail of the free list.
	NextFreeID() (ID, bool)
	// SetNextFreeID records the id of the next free slot in the chain.
	SetNextFreeID(id ID, ok bool)
}

// List is a slab of T indexed by ID. The zero value is an empty, usable
// list.
type List[T Item] struct {
	items        []T
	firstFree    ID
	hasFirstFree bool
	allocCount   int
}

// Insert stores item in the list, reusing a freed slot if one is
// available, and returns its id.
func (l *List[T]) Insert(item T) ID {
	l.allocCount++
	if l.hasFirstFree {
		id := l.firstFree
		free := &l.items[id]
		l.firstFree, l.hasFirstFree = (*free).NextFreeID()
		l.items[id] = item
		return id
	}
	id := ID(len(l.items))
	l.items = append(l.items, item)
	return id
}

// Get returns the item stored at id.
func (l *List[T]) Get(id ID) T {
	return l.items[id]
}

// GetMut returns a pointer to the item stored at id, so the caller can
// mutate it in place.
func (l *List[T]) GetMut(id ID) *T {
	return &l.items[id]
}

// Len reports the number of live (non-freed) allocations, which is not
// necessarily the length of the underlying slice: freed slots remain in
// the slice, awaiting reuse.
func (l *List[T]) Len() int {
	return l.allocCount
}

// Free releases id back to the list; a subsequent Insert may reuse it.
func (l *List[T]) Free(id ID) {
	l.allocCount--
	item := &l.items[id]
	(*item).SetNextFreeID(l.firstFree, l.hasFirstFree)
	l.firstFree, l.hasFirstFree = id, true
}

// IterMut calls fn once for each live item's id and pointer, skipping
// indices currently on the free list, and in index order.
func (l *List[T]) IterMut(fn func(id ID, item *T)) {
	free := map[ID]bool{}
	id, ok := l.firstFree, l.hasFirstFree
	for ok {
		free[id] = true
		id, ok = l.items[id].NextFreeID()
	}
	for i := range l.items {
		id := ID(i)
		if free[id] {
			continue
		}
		fn(id, &l.items[i])
	}
}
