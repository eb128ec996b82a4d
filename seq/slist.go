package seq

import (
	"iter"
	"slices"

	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/memory"
	"github.com/tychoish/dsa/opt"
)

// SList is a singly linked list with an insert-after interface, in
// the manner of a forward list. Positions are expressed as the
// iterator before the element an operation affects, so no operation
// needs to find a predecessor.
//
// The zero value is an empty list that allocates from the heap. Use
// NewSList to configure an allocator or value constructor. Lists must
// not be copied by value; use Copy. Callers are responsible for their
// own concurrency control.
//
// The list does not track its length: Len, Resize, and whole list
// splices walk the list.
type SList[T any] struct {
	list core[T]
}

// NewSList constructs an empty list from the options.
func NewSList[T any](opts ...opt.Provider[*Config[T]]) (*SList[T], error) {
	conf, err := opt.Join(opts...).Build(&Config[T]{})
	if err != nil {
		return nil, err
	}
	return &SList[T]{list: conf.core(false)}, nil
}

// SListOf builds a heap allocated list holding the items in order.
func SListOf[T any](items ...T) *SList[T] {
	l := &SList[T]{}
	ers.Invariant(ers.Ok(l.Assign(items...)), "heap allocation failed")
	return l
}

func (l *SList[T]) lazySetup() *core[T] {
	if l == nil {
		panic(ers.ErrUninitializedContainer)
	}
	return l.list.setup(false)
}

func (l *SList[T]) iter(n *node[T]) ForwardIterator[T] {
	return ForwardIterator[T]{position[T]{node: n, root: l.list.root}}
}

// Len walks the list and reports the number of elements.
func (l *SList[T]) Len() int { return l.lazySetup().size() }

// IsEmpty reports whether the list has no elements, in constant time.
func (l *SList[T]) IsEmpty() bool { return l.lazySetup().empty() }

// MaxSize reports the largest number of elements the allocator could
// provide.
func (l *SList[T]) MaxSize() int { return l.lazySetup().nodes.MaxSize() }

// BeforeBegin returns the position before the first element, which
// is where InsertAfter adds to the front of the list. In this
// circular implementation it is the same position as End.
func (l *SList[T]) BeforeBegin() ForwardIterator[T] { return l.iter(l.lazySetup().root) }

// Begin returns the position of the first element, or End for an
// empty list.
func (l *SList[T]) Begin() ForwardIterator[T] { return l.iter(l.lazySetup().root.next) }

// End returns the position after the last element.
func (l *SList[T]) End() ForwardIterator[T] { return l.iter(l.lazySetup().root) }

// Front returns the first element, or an error rooted in ers.ErrEmpty.
func (l *SList[T]) Front() (T, error) { return l.lazySetup().front() }

// MustFront returns the first element, and panics with ers.ErrEmpty
// when the list is empty.
func (l *SList[T]) MustFront() T { return must(l.Front()) }

// FrontPtr returns a pointer to the first element, or nil.
func (l *SList[T]) FrontPtr() *T { return l.lazySetup().frontPtr() }

// PushFront adds a value to the front of the list.
func (l *SList[T]) PushFront(v T) error { return l.EmplaceFront(memory.Value(v)) }

// EmplaceFront constructs a value at the front of the list. If the
// allocation or the constructor fails, the list is unchanged.
func (l *SList[T]) EmplaceFront(ctor memory.Constructor[T]) error {
	c := l.lazySetup()
	_, err := c.insertAfter(c.root, ctor)
	return err
}

// PopFront removes and returns the first element.
func (l *SList[T]) PopFront() (T, error) { c := l.lazySetup(); return c.popAfter(c.root, "pop front") }

// MustPopFront is PopFront, and panics when the list is empty.
func (l *SList[T]) MustPopFront() T { return must(l.PopFront()) }

// InsertAfter adds a value after the position, returning the
// position of the new element.
func (l *SList[T]) InsertAfter(pos ForwardIterator[T], v T) (ForwardIterator[T], error) {
	return l.EmplaceAfter(pos, memory.Value(v))
}

// EmplaceAfter constructs a value after the position, returning the
// position of the new element. On failure the list is unchanged and
// the returned iterator is pos.
func (l *SList[T]) EmplaceAfter(pos ForwardIterator[T], ctor memory.Constructor[T]) (ForwardIterator[T], error) {
	c := l.lazySetup()
	c.checkOwner(pos.position)

	n, err := c.insertAfter(pos.node, ctor)
	if err != nil {
		return pos, err
	}
	return l.iter(n), nil
}

// InsertAfterN adds count copies of the value after the position and
// returns the position of the last element inserted (pos when count
// is zero). Either every copy is inserted or the list is unchanged.
func (l *SList[T]) InsertAfterN(pos ForwardIterator[T], count int, v T) (ForwardIterator[T], error) {
	c := l.lazySetup()
	c.checkOwner(pos.position)

	ch, err := c.buildN(count, memory.Bind(c.copier, v))
	if err != nil {
		return pos, err
	}
	return l.iter(c.linkChainAfter(pos.node, ch)), nil
}

// InsertAfterSeq adds a copy of every value in the sequence after the
// position, in order, and returns the position of the last element
// inserted. Either every value is inserted or the list is unchanged.
func (l *SList[T]) InsertAfterSeq(pos ForwardIterator[T], seq iter.Seq[T]) (ForwardIterator[T], error) {
	c := l.lazySetup()
	c.checkOwner(pos.position)

	ch, err := c.buildSeq(seq, c.copier)
	if err != nil {
		return pos, err
	}
	return l.iter(c.linkChainAfter(pos.node, ch)), nil
}

// EraseAfter removes the element following the position, and returns
// the position that now follows pos. Panics with ers.ErrOutOfBounds
// when pos is the last element.
func (l *SList[T]) EraseAfter(pos ForwardIterator[T]) ForwardIterator[T] {
	c := l.lazySetup()
	c.checkOwner(pos.position)
	return l.iter(c.eraseAfter(pos.node))
}

// EraseAfterRange removes the elements strictly between pos and
// last, and returns last.
func (l *SList[T]) EraseAfterRange(pos, last ForwardIterator[T]) ForwardIterator[T] {
	c := l.lazySetup()
	c.checkOwner(pos.position)
	c.checkOwner(last.position)
	c.eraseBetween(pos.node, last.node)
	return last
}

// Clear removes every element, returning the list to its initial
// state and releasing its storage to the allocator.
func (l *SList[T]) Clear() { l.lazySetup().clear() }

// SpliceAfter moves every element of other to follow pos, leaving
// other empty. No values are copied. Splicing a list into itself is
// a noop; the lists must share an allocator.
func (l *SList[T]) SpliceAfter(pos ForwardIterator[T], other *SList[T]) {
	c, oc := l.lazySetup(), other.lazySetup()
	c.checkOwner(pos.position)
	if c == oc || oc.empty() {
		return
	}
	c.checkCompatible(oc)
	c.transfer(pos.node, oc.root, oc.last())
}

// SpliceAfterOne moves the element following before, which belongs to
// other, so that it follows pos. Moving an element to its current
// position is a noop.
func (l *SList[T]) SpliceAfterOne(pos ForwardIterator[T], other *SList[T], before ForwardIterator[T]) {
	c, oc := l.lazySetup(), other.lazySetup()
	c.checkOwner(pos.position)
	oc.checkOwner(before.position)
	if c != oc {
		c.checkCompatible(oc)
	}

	moved := before.node.next
	if moved == oc.root || pos.node == before.node || pos.node == moved {
		return
	}
	c.transfer(pos.node, before.node, moved)
}

// SpliceAfterRange moves the elements strictly between first and
// last, which belong to other, so that they follow pos. When pos is
// inside the range the operation is a noop. Finding the end of the
// range takes time proportional to its length.
func (l *SList[T]) SpliceAfterRange(pos ForwardIterator[T], other *SList[T], first, last ForwardIterator[T]) {
	c, oc := l.lazySetup(), other.lazySetup()
	c.checkOwner(pos.position)
	oc.checkOwner(first.position)
	oc.checkOwner(last.position)
	if c != oc {
		c.checkCompatible(oc)
	}

	end := first.node
	for end.next != last.node {
		end = end.next
		ers.Invariant(end != oc.root, "splice range is out of order")
		if end == pos.node {
			return
		}
	}
	c.transfer(pos.node, first.node, end)
}

// RemoveFunc erases every element equal to the value, and returns the
// number of elements erased. The value may point to an element of the
// list.
func (l *SList[T]) RemoveFunc(value *T, eq cmp.Equal[T]) int {
	return l.lazySetup().removeFunc(value, eq)
}

// RemoveIf erases every element for which the predicate returns true,
// and returns the number of elements erased.
func (l *SList[T]) RemoveIf(pred func(T) bool) int { return l.lazySetup().removeIf(pred) }

// Unique erases every element equal to the element before it, and
// returns the number of elements erased.
func (l *SList[T]) Unique(eq cmp.Equal[T]) int { return l.lazySetup().unique(eq) }

// Merge moves every element of other into this list. When both lists
// are sorted according to lt the result is sorted, and equal elements
// from this list precede those from other. Merging a list with itself
// is a noop; the lists must share an allocator.
func (l *SList[T]) Merge(other *SList[T], lt cmp.LessThan[T]) {
	l.lazySetup().merge(other.lazySetup(), lt)
}

// Sort orders the list with a stable merge sort.
func (l *SList[T]) Sort(lt cmp.LessThan[T]) { l.lazySetup().sort(Merge, lt) }

// SortWith orders the list using the algorithm.
func (l *SList[T]) SortWith(alg Algorithm, lt cmp.LessThan[T]) { l.lazySetup().sort(alg, lt) }

// Reverse reverses the order of the list in place.
func (l *SList[T]) Reverse() { l.lazySetup().reverse() }

// Resize truncates the list, or extends it with default constructed
// values. If extension fails the list is unchanged.
func (l *SList[T]) Resize(count int) error { c := l.lazySetup(); return c.resize(count, c.ctor) }

// ResizeFill is Resize, extending the list with copies of the value.
func (l *SList[T]) ResizeFill(count int, v T) error {
	c := l.lazySetup()
	return c.resize(count, memory.Bind(c.copier, v))
}

// Assign replaces the contents of the list with the items. If the
// replacement cannot be built, the list is unchanged.
func (l *SList[T]) Assign(items ...T) error {
	c := l.lazySetup()
	return c.assign(c.buildSeq(slices.Values(items), c.copier))
}

// AssignSeq replaces the contents of the list with the values in the
// sequence.
func (l *SList[T]) AssignSeq(seq iter.Seq[T]) error {
	c := l.lazySetup()
	return c.assign(c.buildSeq(seq, c.copier))
}

// AssignN replaces the contents of the list with count copies of the
// value.
func (l *SList[T]) AssignN(count int, v T) error {
	c := l.lazySetup()
	return c.assign(c.buildN(count, memory.Bind(c.copier, v)))
}

// Swap exchanges the contents and the allocators of the two lists.
func (l *SList[T]) Swap(other *SList[T]) { l.lazySetup().swap(other.lazySetup()) }

// Take replaces the contents of the list with the contents of other,
// leaving other empty. When the lists do not share an allocator, the
// values are moved into new nodes, and if that fails both lists are
// unchanged.
func (l *SList[T]) Take(other *SList[T]) error { return l.lazySetup().take(other.lazySetup()) }

// Copy returns a new list holding copies of every element, using the
// allocator selected by the allocator's copy policy.
func (l *SList[T]) Copy() (*SList[T], error) {
	c, err := l.lazySetup().clone()
	if err != nil {
		return nil, err
	}
	return &SList[T]{list: *c}, nil
}

// EqualFunc reports whether both lists have the same length and
// pairwise equal elements.
func (l *SList[T]) EqualFunc(other *SList[T], eq cmp.Equal[T]) bool {
	return l.lazySetup().equal(other.lazySetup(), eq)
}

// Seq returns an iterator over the values in the list. Erasing the
// current element during iteration is permitted.
func (l *SList[T]) Seq() iter.Seq[T] { return l.lazySetup().values() }

// Slice returns the values in the list.
func (l *SList[T]) Slice() []T { return l.lazySetup().slice() }

// String renders the list in the same format as a slice.
func (l *SList[T]) String() string { return l.lazySetup().String() }
