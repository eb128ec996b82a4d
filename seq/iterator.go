package seq

import (
	"fmt"

	"github.com/tychoish/dsa/ers"
)

// position is the representation shared by list iterators: the node
// the iterator refers to and the root of the list that owns it.
type position[T any] struct {
	node *node[T]
	root *node[T]
}

// Valid reports whether the iterator refers to an element, as
// opposed to the end of a list or a zero iterator.
func (p position[T]) Valid() bool { return p.node != nil && p.node != p.root }

// Value returns a copy of the element the iterator refers to.
func (p position[T]) Value() T { return *p.Ptr() }

// Ptr returns a pointer to the element the iterator refers to. The
// pointer is valid until the element is erased.
func (p position[T]) Ptr() *T {
	ers.Invariant(p.Valid(), "dereference of an end iterator")
	return p.node.slot.Ptr()
}

// Set replaces the element the iterator refers to.
func (p position[T]) Set(v T) { *p.Ptr() = v }

func (p position[T]) String() string {
	if !p.Valid() {
		return "<end>"
	}
	return fmt.Sprint(p.Value())
}

// ForwardIterator refers to a position in an SList. Iterators remain
// valid until the element they refer to is erased; inserting and
// erasing other elements does not invalidate them.
type ForwardIterator[T any] struct{ position[T] }

// Next returns an iterator to the following position. The position
// following the last element is the end of the list, and the
// position following the end is the first element.
func (it ForwardIterator[T]) Next() ForwardIterator[T] {
	return ForwardIterator[T]{position[T]{node: it.node.next, root: it.root}}
}

// Equal reports whether both iterators refer to the same position.
func (it ForwardIterator[T]) Equal(other ForwardIterator[T]) bool { return it.node == other.node }

// Iterator refers to a position in a List, and supports traversal in
// both directions.
type Iterator[T any] struct{ position[T] }

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{position[T]{node: it.node.next, root: it.root}}
}

// Prev returns an iterator to the preceding position. The position
// preceding the first element is the end of the list.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{position[T]{node: it.node.prev, root: it.root}}
}

// Equal reports whether both iterators refer to the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.node == other.node }
