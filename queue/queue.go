/*
Package queue implements a singly linked FIFO queue with constant time append.

Nodes live in an arena and are linked by index. The queue owns the chain from
its head; the tail index is a non-owning shortcut to the last node.

Queues are not safe for concurrent use.
*/
package queue

import (
	"iter"

	"github.com/mgnsk/ownlist/internal/arena"
)

type node[V any] struct {
	Value V
	next  arena.Ref
}

// Queue is a singly linked FIFO queue.
//
// The zero value is a ready to use empty queue.
// A Queue must not be copied after first use.
type Queue[V any] struct {
	nodes arena.Arena[node[V]]
	head  arena.Ref
	tail  arena.Ref
	len   int
}

// New creates an empty queue.
func New[V any](opts ...Option) *Queue[V] {
	opt := newDefaultQueueOptions()
	for _, o := range opts {
		o.apply(&opt)
	}

	return &Queue[V]{
		nodes: *arena.New[node[V]](opt.pageSize),
	}
}

// Len returns the number of elements in the queue.
func (q *Queue[V]) Len() int {
	return q.len
}

// PushBack inserts a value at the back of queue q.
func (q *Queue[V]) PushBack(value V) {
	r, n := q.nodes.Alloc()
	n.Value = value

	if q.tail != arena.Nil {
		q.nodes.Get(q.tail).next = r
	} else {
		q.head = r
	}

	q.tail = r
	q.len++
}

// PopFront removes the front element and returns its value.
// It returns false if the queue is empty.
func (q *Queue[V]) PopFront() (value V, ok bool) {
	if q.head == arena.Nil {
		return value, false
	}

	r := q.head
	n := q.nodes.Get(r)
	value = n.Value

	q.head = n.next
	if q.head == arena.Nil {
		q.tail = arena.Nil
	}

	q.nodes.Free(r)
	q.len--

	return value, true
}

// Peek returns the front value without removing it.
func (q *Queue[V]) Peek() (value V, ok bool) {
	if p := q.Front(); p != nil {
		return *p, true
	}
	return value, false
}

// Front returns a pointer to the front value or nil if the queue is empty.
// The pointer is valid until the front element is removed.
func (q *Queue[V]) Front() *V {
	if q.head == arena.Nil {
		return nil
	}
	return &q.nodes.Get(q.head).Value
}

// All returns an iterator over the values in front to back order.
// The loop body must not change q.
func (q *Queue[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for r := q.head; r != arena.Nil; {
			n := q.nodes.Get(r)
			if !yield(n.Value) {
				return
			}
			r = n.next
		}
	}
}

// Pointers returns an iterator over pointers to the values in front to back order.
// Values may be modified through the pointers. The loop body must not change q.
func (q *Queue[V]) Pointers() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for r := q.head; r != arena.Nil; {
			n := q.nodes.Get(r)
			if !yield(&n.Value) {
				return
			}
			r = n.next
		}
	}
}

// Drain returns an iterator that removes and yields values from the front.
// If the loop stops early the remaining values stay in the queue.
func (q *Queue[V]) Drain() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := q.PopFront()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Clear removes all elements, releasing nodes one at a time from the front.
func (q *Queue[V]) Clear() {
	r := q.head
	q.head = arena.Nil
	q.tail = arena.Nil
	q.len = 0

	for r != arena.Nil {
		next := q.nodes.Get(r).next
		q.nodes.Free(r)
		r = next
	}
}
