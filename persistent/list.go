/*
Package persistent implements an immutable singly linked list with structural sharing.

Lists derived from each other share their common suffix. Every node counts the
links that refer to it, from list handles and from preceding nodes, and is
released when the last of them is released.

Every handle returned by New, Prepend, Tail and Clone owns a share of its
nodes and must be released with Release. The garbage collector does not
release nodes: a handle dropped without Release keeps its nodes allocated for
as long as the arena lives.

	empty := persistent.New[string]()
	d := empty.Prepend("D")
	c := d.Prepend("C")
	list1 := c.Prepend("A")
	empty.Release()
	d.Release()
	c.Release()

	list2 := list1.Tail()       // C D
	list3 := list2.Prepend("X") // X C D
	list1.Release()             // frees A only
	list2.Release()
	list3.Release()             // frees X, C and D

Lists are not safe for concurrent use.
*/
package persistent

import (
	"iter"

	"github.com/mgnsk/ownlist/internal/arena"
)

type node[V any] struct {
	Value V
	next  arena.Ref
	refs  int32
	len   int
}

// List is a handle to an immutable list.
//
// The zero value is a ready to use empty list. A handle is one owner of its
// nodes: copy it with Clone, not by value, and give it up with Release.
type List[V any] struct {
	nodes    *arena.Arena[node[V]]
	head     arena.Ref
	released bool
}

// New creates an empty list. Lists derived from it share its node arena.
func New[V any](opts ...Option) *List[V] {
	opt := newDefaultListOptions()
	for _, o := range opts {
		o.apply(&opt)
	}

	return &List[V]{
		nodes: arena.New[node[V]](opt.pageSize),
	}
}

// Len returns the number of values in the list.
func (l *List[V]) Len() int {
	l.check()

	if l.head == arena.Nil {
		return 0
	}
	return l.nodes.Get(l.head).len
}

// Head returns the first value of the list.
// It returns false if the list is empty.
func (l *List[V]) Head() (value V, ok bool) {
	l.check()

	if l.head == arena.Nil {
		return value, false
	}
	return l.nodes.Get(l.head).Value, true
}

// Prepend returns a new list with value in front of the values of l.
// l is not modified. Prepending to a zero value List creates a new arena
// owned by the returned list.
func (l *List[V]) Prepend(value V) *List[V] {
	l.check()

	nodes := l.nodes
	if nodes == nil {
		nodes = arena.New[node[V]](0)
	}

	n := l.Len() + 1
	next := l.retain(l.head)

	r, e := nodes.Alloc()
	e.Value = value
	e.next = next
	e.refs = 1
	e.len = n

	return &List[V]{nodes: nodes, head: r}
}

// Tail returns a new list with the values of l after the first one.
// The tail of an empty list is an empty list. l is not modified.
func (l *List[V]) Tail() *List[V] {
	l.check()

	next := arena.Nil
	if l.head != arena.Nil {
		next = l.nodes.Get(l.head).next
	}

	return &List[V]{nodes: l.nodes, head: l.retain(next)}
}

// Clone returns a new handle to the same list.
func (l *List[V]) Clone() *List[V] {
	l.check()

	return &List[V]{nodes: l.nodes, head: l.retain(l.head)}
}

// All returns an iterator over the values of the list.
// The loop body must not release l.
func (l *List[V]) All() iter.Seq[V] {
	l.check()

	return func(yield func(V) bool) {
		l.check()

		for r := l.head; r != arena.Nil; {
			n := l.nodes.Get(r)
			if !yield(n.Value) {
				return
			}
			r = n.next
		}
	}
}

// Release gives up this handle's ownership of its nodes.
// Nodes no longer referenced by any list are freed front to back, stopping
// at the first node that is still shared. Releasing a released list is a no-op.
func (l *List[V]) Release() {
	if l.released {
		return
	}

	l.released = true

	r := l.head
	l.head = arena.Nil

	for r != arena.Nil {
		n := l.nodes.Get(r)
		n.refs--
		if n.refs > 0 {
			return
		}

		next := n.next
		l.nodes.Free(r)
		r = next
	}
}

func (l *List[V]) retain(r arena.Ref) arena.Ref {
	if r != arena.Nil {
		l.nodes.Get(r).refs++
	}
	return r
}

func (l *List[V]) check() {
	if l.released {
		panic(ErrReleased)
	}
}
