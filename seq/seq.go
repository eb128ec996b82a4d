// Package seq provides singly and doubly linked lists that own their
// nodes, allocate them through an alloc.Allocator, and implement
// splicing, merging, and sorting purely by relinking nodes.
//
// Both lists share one representation: a ring through a root node
// that holds no value, which is also the End position. The SList only
// maintains forward links and exposes an insert-after interface; the
// List maintains links in both directions.
//
// Operations that allocate return an error (rooted in
// ers.ErrOutOfMemory, or produced by a value constructor) and leave
// the list unchanged when they fail. Precondition violations, such as
// the Must* accessors on an empty list, panic. These structures are
// not safe for access from multiple concurrent goroutines.
package seq

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/tychoish/dsa/dt/cmp"
)

// Sequence is implemented by both lists.
type Sequence[T any] interface{ Seq() iter.Seq[T] }

// Sortable is implemented by both lists.
type Sortable[T any] interface{ Sort(cmp.LessThan[T]) }

// Remover is implemented by both lists.
type Remover[T any] interface {
	RemoveFunc(*T, cmp.Equal[T]) int
}

// Sort orders a list of natively ordered values from low to high.
func Sort[T constraints.Ordered](list Sortable[T]) { list.Sort(cmp.LessThanNative[T]) }

// Remove erases every element equal to the value and returns the
// number erased. The value may point to an element of the list, as
// in Remove(list, list.FrontPtr()).
func Remove[T comparable](list Remover[T], value *T) int {
	return list.RemoveFunc(value, cmp.EqualNative[T])
}

// Equal reports whether two sequences hold equal values in the same
// order.
func Equal[T comparable](a, b Sequence[T]) bool { return EqualFunc(a, b, cmp.EqualNative[T]) }

// EqualFunc reports whether two sequences hold pairwise equal values
// in the same order.
func EqualFunc[T any](a, b Sequence[T], eq cmp.Equal[T]) bool {
	next, stop := iter.Pull(b.Seq())
	defer stop()

	for av := range a.Seq() {
		bv, ok := next()
		if !ok || !eq(av, bv) {
			return false
		}
	}
	_, ok := next()
	return !ok
}

// IsSorted reports if the sequence is sorted from low to high,
// according to the LessThan function.
func IsSorted[T any](list Sequence[T], lt cmp.LessThan[T]) bool {
	first := true
	var prev T
	for v := range list.Seq() {
		if !first && lt(v, prev) {
			return false
		}
		first = false
		prev = v
	}
	return true
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
