package seq

import (
	"github.com/tychoish/dsa/memory"
)

// node is the link header and payload slot of one list element. Every
// list is a ring through a root node, which never holds a value. The
// prev pointer is only maintained by doubly linked lists.
type node[T any] struct {
	next *node[T]
	prev *node[T]
	slot memory.Slot[T]
}

func (n *node[T]) value() T { return *n.slot.Ptr() }

// transferAfter moves the nodes in (before, last] so that they
// follow n, only touching next pointers. n must not be in the moved
// range.
func (n *node[T]) transferAfter(before, last *node[T]) {
	if before == last || n == before {
		return
	}

	first := before.next
	before.next = last.next
	last.next = n.next
	n.next = first
}

// transferAfterLinked is transferAfter for doubly linked rings. The
// six pointer updates happen in a fixed order, unlinking the range
// before relinking it, so the case where n directly follows the range
// resolves correctly.
func (n *node[T]) transferAfterLinked(before, last *node[T]) {
	if before == last || n == before {
		return
	}

	first := before.next
	after := last.next

	before.next = after
	after.prev = before

	last.next = n.next
	n.next.prev = last
	n.next = first
	first.prev = n
}

// reverseAfter reverses the ring that begins and ends at n, only
// touching next pointers.
func (n *node[T]) reverseAfter() {
	prev, cur := n, n.next
	for cur != n {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	n.next = prev
}

// reverseAfterLinked reverses a doubly linked ring by exchanging the
// links of every node in it.
func (n *node[T]) reverseAfterLinked() {
	cur := n
	for {
		cur.next, cur.prev = cur.prev, cur.next
		cur = cur.prev
		if cur == n {
			return
		}
	}
}

// hook links the detached node n directly before pos.
func (n *node[T]) hook(pos *node[T]) {
	n.next = pos
	n.prev = pos.prev
	pos.prev.next = n
	pos.prev = n
}

// unhook removes n from its neighbors in a doubly linked ring.
func (n *node[T]) unhook() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}

// chain is a nil terminated run of nodes detached from any ring,
// used to build, sort and merge nodes before linking them into a
// list. Only next pointers are meaningful.
type chain[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func (ch *chain[T]) push(n *node[T]) {
	n.next = nil
	if ch.tail == nil {
		ch.head = n
	} else {
		ch.tail.next = n
	}
	ch.tail = n
	ch.size++
}

// extend appends the other chain, leaving it empty.
func (ch *chain[T]) extend(other *chain[T]) {
	if other.head == nil {
		return
	}
	if ch.tail == nil {
		ch.head = other.head
	} else {
		ch.tail.next = other.head
	}
	ch.tail = other.tail
	ch.size += other.size
	*other = chain[T]{}
}

func (ch *chain[T]) pop() *node[T] {
	n := ch.head
	ch.head = n.next
	if ch.head == nil {
		ch.tail = nil
	}
	n.next = nil
	ch.size--
	return n
}

// chainOf wraps a nil terminated run of nodes, finding its tail.
func chainOf[T any](head *node[T]) chain[T] {
	ch := chain[T]{head: head}
	for n := head; n != nil; n = n.next {
		ch.tail = n
		ch.size++
	}
	return ch
}
