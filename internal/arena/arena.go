/*
Package arena implements a paged slab allocator addressed by stable indices.
*/
package arena

import "math"

// DefaultPageSize is the number of slots per page used by the zero value Arena.
const DefaultPageSize = 64

// Ref addresses a slot in an arena. The zero value Nil addresses no slot.
type Ref uint32

// Nil is the absent reference.
const Nil Ref = 0

type slot[T any] struct {
	item     T
	nextFree Ref
	live     bool
}

// Arena stores items in fixed size pages. Pages are never moved
// so a pointer returned for a live slot stays valid until the slot is freed.
//
// The zero value is a ready to use empty arena.
type Arena[T any] struct {
	pages    [][]slot[T]
	free     Ref
	pageSize int
	len      int
}

// New creates an empty arena with pageSize slots per page.
// When pageSize == 0, DefaultPageSize is used.
func New[T any](pageSize int) *Arena[T] {
	if pageSize < 0 {
		panic("arena: invalid page size")
	}

	return &Arena[T]{pageSize: pageSize}
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.len
}

// Cap returns the number of allocated slots, live or free.
func (a *Arena[T]) Cap() int {
	return len(a.pages) * a.size()
}

// Alloc reserves a zeroed slot and returns its reference and item.
func (a *Arena[T]) Alloc() (Ref, *T) {
	if a.free == Nil {
		a.grow()
	}

	r := a.free
	s := a.slot(r)
	a.free = s.nextFree
	s.nextFree = Nil
	s.live = true
	a.len++

	return r, &s.item
}

// Get returns the item stored in a live slot.
func (a *Arena[T]) Get(r Ref) *T {
	s := a.slot(r)
	if !s.live {
		panic("arena: use of freed slot")
	}

	return &s.item
}

// Free zeroes a live slot and returns it to the free list.
func (a *Arena[T]) Free(r Ref) {
	s := a.slot(r)
	if !s.live {
		panic("arena: double free")
	}

	var zero T
	s.item = zero
	s.live = false
	s.nextFree = a.free
	a.free = r
	a.len--
}

func (a *Arena[T]) size() int {
	if a.pageSize == 0 {
		return DefaultPageSize
	}
	return a.pageSize
}

func (a *Arena[T]) slot(r Ref) *slot[T] {
	if r == Nil || int(r) > a.Cap() {
		panic("arena: invalid reference")
	}

	i := int(r - 1)
	size := a.size()

	return &a.pages[i/size][i%size]
}

// grow appends a page and threads its slots onto the free list in address order.
func (a *Arena[T]) grow() {
	size := a.size()
	if uint64(len(a.pages))*uint64(size)+uint64(size) > math.MaxUint32 {
		panic("arena: out of references")
	}

	base := Ref(len(a.pages) * size)
	page := make([]slot[T], size)

	for i := size - 1; i >= 0; i-- {
		page[i].nextFree = a.free
		a.free = base + Ref(i) + 1
	}

	a.pages = append(a.pages, page)
}
