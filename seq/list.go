package seq

import (
	"iter"
	"slices"

	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/memory"
	"github.com/tychoish/dsa/opt"
)

// List provides a doubly linked list. Positions name the element an
// operation affects, and insertions happen before the position, so
// inserting at End appends.
//
// The zero value is an empty list that allocates from the heap. Use
// NewList to configure an allocator or value constructor. Lists must
// not be copied by value; use Copy. Callers are responsible for their
// own concurrency control and bounds checking, and should generally
// use with the same care as a slice.
type List[T any] struct {
	list core[T]
}

// NewList constructs an empty list from the options.
func NewList[T any](opts ...opt.Provider[*Config[T]]) (*List[T], error) {
	conf, err := opt.Join(opts...).Build(&Config[T]{})
	if err != nil {
		return nil, err
	}
	return &List[T]{list: conf.core(true)}, nil
}

// ListOf builds a heap allocated list holding the items in order.
func ListOf[T any](items ...T) *List[T] {
	l := &List[T]{}
	ers.Invariant(ers.Ok(l.Assign(items...)), "heap allocation failed")
	return l
}

func (l *List[T]) lazySetup() *core[T] {
	if l == nil {
		panic(ers.ErrUninitializedContainer)
	}
	return l.list.setup(true)
}

func (l *List[T]) iter(n *node[T]) Iterator[T] {
	return Iterator[T]{position[T]{node: n, root: l.list.root}}
}

func (l *List[T]) Len() int      { return l.lazySetup().size() }
func (l *List[T]) IsEmpty() bool { return l.lazySetup().empty() }
func (l *List[T]) MaxSize() int  { return l.lazySetup().nodes.MaxSize() }

// Begin returns the position of the first element, or End for an
// empty list.
func (l *List[T]) Begin() Iterator[T] { return l.iter(l.lazySetup().root.next) }

// End returns the position after the last element. The position
// before End is the last element.
func (l *List[T]) End() Iterator[T] { return l.iter(l.lazySetup().root) }

func (l *List[T]) Front() (T, error) { return l.lazySetup().front() }
func (l *List[T]) MustFront() T      { return must(l.Front()) }
func (l *List[T]) FrontPtr() *T      { return l.lazySetup().frontPtr() }

func (l *List[T]) Back() (T, error) {
	c := l.lazySetup()
	if c.empty() {
		var zero T
		return zero, c.emptyError("back")
	}
	return c.root.prev.value(), nil
}

func (l *List[T]) MustBack() T { return must(l.Back()) }

func (l *List[T]) BackPtr() *T {
	c := l.lazySetup()
	if c.empty() {
		return nil
	}
	return c.root.prev.slot.Ptr()
}

func (l *List[T]) PushFront(v T) error { return l.EmplaceFront(memory.Value(v)) }
func (l *List[T]) PushBack(v T) error  { return l.EmplaceBack(memory.Value(v)) }

// EmplaceFront constructs a value at the front of the list. If the
// allocation or the constructor fails, the list is unchanged.
func (l *List[T]) EmplaceFront(ctor memory.Constructor[T]) error {
	_, err := l.Emplace(l.Begin(), ctor)
	return err
}

// EmplaceBack constructs a value at the back of the list. If the
// allocation or the constructor fails, the list is unchanged.
func (l *List[T]) EmplaceBack(ctor memory.Constructor[T]) error {
	_, err := l.Emplace(l.End(), ctor)
	return err
}

func (l *List[T]) PopFront() (T, error) { c := l.lazySetup(); return c.popAfter(c.root, "pop front") }
func (l *List[T]) PopBack() (T, error)  { c := l.lazySetup(); return c.popAfter(c.root.prev.prev, "pop back") }
func (l *List[T]) MustPopFront() T      { return must(l.PopFront()) }
func (l *List[T]) MustPopBack() T       { return must(l.PopBack()) }

// Insert adds a value before the position, returning the position of
// the new element.
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	return l.Emplace(pos, memory.Value(v))
}

// Emplace constructs a value before the position, returning the
// position of the new element. On failure the list is unchanged and
// the returned iterator is pos.
func (l *List[T]) Emplace(pos Iterator[T], ctor memory.Constructor[T]) (Iterator[T], error) {
	c := l.lazySetup()
	c.checkOwner(pos.position)

	n, err := c.insertAfter(pos.node.prev, ctor)
	if err != nil {
		return pos, err
	}
	return l.iter(n), nil
}

// InsertN adds count copies of the value before the position, and
// returns the position of the first element inserted (pos when count
// is zero). Either every copy is inserted or the list is unchanged.
func (l *List[T]) InsertN(pos Iterator[T], count int, v T) (Iterator[T], error) {
	c := l.lazySetup()
	c.checkOwner(pos.position)

	ch, err := c.buildN(count, memory.Bind(c.copier, v))
	if err != nil {
		return pos, err
	}
	return l.linkBefore(pos, ch), nil
}

// InsertSeq adds a copy of every value in the sequence before the
// position, in order, and returns the position of the first element
// inserted. Either every value is inserted or the list is unchanged.
func (l *List[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	c := l.lazySetup()
	c.checkOwner(pos.position)

	ch, err := c.buildSeq(seq, c.copier)
	if err != nil {
		return pos, err
	}
	return l.linkBefore(pos, ch), nil
}

func (l *List[T]) linkBefore(pos Iterator[T], ch chain[T]) Iterator[T] {
	if ch.head == nil {
		return pos
	}
	l.list.linkChainAfter(pos.node.prev, ch)
	return l.iter(ch.head)
}

// Erase removes the element at the position and returns the position
// that followed it. Panics with ers.ErrOutOfBounds when pos is End.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	c := l.lazySetup()
	c.checkOwner(pos.position)
	return l.iter(c.eraseAfter(pos.node.prev))
}

// EraseRange removes the elements in [first, last), and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	c := l.lazySetup()
	c.checkOwner(first.position)
	c.checkOwner(last.position)
	c.eraseBetween(first.node.prev, last.node)
	return last
}

// Clear removes every element, returning the list to its initial
// state and releasing its storage to the allocator.
func (l *List[T]) Clear() { l.lazySetup().clear() }

// Splice moves every element of other before pos, leaving other
// empty, in constant time. Splicing a list into itself is a noop; the
// lists must share an allocator.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	c, oc := l.lazySetup(), other.lazySetup()
	c.checkOwner(pos.position)
	if c == oc || oc.empty() {
		return
	}
	c.checkCompatible(oc)
	c.transfer(pos.node.prev, oc.root, oc.root.prev)
}

// SpliceOne moves the element at it, which belongs to other, before
// pos. Moving an element to its current position is a noop.
func (l *List[T]) SpliceOne(pos Iterator[T], other *List[T], it Iterator[T]) {
	c, oc := l.lazySetup(), other.lazySetup()
	c.checkOwner(pos.position)
	oc.checkOwner(it.position)
	ers.Invariant(it.Valid(), "splice of an end iterator")
	if c != oc {
		c.checkCompatible(oc)
	}

	if pos.node == it.node || pos.node == it.node.next {
		return
	}
	c.transfer(pos.node.prev, it.node.prev, it.node)
}

// SpliceRange moves the elements in [first, last), which belong to
// other, before pos. When pos is inside the range the operation is a
// noop. Finding the end of the range takes time proportional to its
// length.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	c, oc := l.lazySetup(), other.lazySetup()
	c.checkOwner(pos.position)
	oc.checkOwner(first.position)
	oc.checkOwner(last.position)
	if c != oc {
		c.checkCompatible(oc)
	}

	if first.node == last.node || pos.node == last.node {
		return
	}
	for n := first.node; n != last.node; n = n.next {
		ers.Invariant(n != oc.root, "splice range is out of order")
		if n == pos.node {
			return
		}
	}
	c.transfer(pos.node.prev, first.node.prev, last.node.prev)
}

func (l *List[T]) RemoveFunc(value *T, eq cmp.Equal[T]) int {
	return l.lazySetup().removeFunc(value, eq)
}
func (l *List[T]) RemoveIf(pred func(T) bool) int { return l.lazySetup().removeIf(pred) }
func (l *List[T]) Unique(eq cmp.Equal[T]) int      { return l.lazySetup().unique(eq) }

// Merge moves every element of other into this list. When both lists
// are sorted according to lt the result is sorted, and equal elements
// from this list precede those from other. Merging a list with itself
// is a noop; the lists must share an allocator.
func (l *List[T]) Merge(other *List[T], lt cmp.LessThan[T]) {
	l.lazySetup().merge(other.lazySetup(), lt)
}

// Sort orders the list with a stable merge sort.
func (l *List[T]) Sort(lt cmp.LessThan[T]) { l.lazySetup().sort(Merge, lt) }

// SortWith orders the list using the algorithm.
func (l *List[T]) SortWith(alg Algorithm, lt cmp.LessThan[T]) { l.lazySetup().sort(alg, lt) }

func (l *List[T]) Reverse() { l.lazySetup().reverse() }

// Resize truncates the list, or extends it with default constructed
// values. If extension fails the list is unchanged.
func (l *List[T]) Resize(count int) error { c := l.lazySetup(); return c.resize(count, c.ctor) }

// ResizeFill is Resize, extending the list with copies of the value.
func (l *List[T]) ResizeFill(count int, v T) error {
	c := l.lazySetup()
	return c.resize(count, memory.Bind(c.copier, v))
}

// Assign replaces the contents of the list with the items. If the
// replacement cannot be built, the list is unchanged.
func (l *List[T]) Assign(items ...T) error {
	c := l.lazySetup()
	return c.assign(c.buildSeq(slices.Values(items), c.copier))
}

func (l *List[T]) AssignSeq(seq iter.Seq[T]) error {
	c := l.lazySetup()
	return c.assign(c.buildSeq(seq, c.copier))
}

func (l *List[T]) AssignN(count int, v T) error {
	c := l.lazySetup()
	return c.assign(c.buildN(count, memory.Bind(c.copier, v)))
}

// Swap exchanges the contents and the allocators of the two lists.
func (l *List[T]) Swap(other *List[T]) { l.lazySetup().swap(other.lazySetup()) }

// Take replaces the contents of the list with the contents of other,
// leaving other empty. When the lists do not share an allocator, the
// values are moved into new nodes, and if that fails both lists are
// unchanged.
func (l *List[T]) Take(other *List[T]) error { return l.lazySetup().take(other.lazySetup()) }

// Copy returns a new list holding copies of every element, using the
// allocator selected by the allocator's copy policy.
func (l *List[T]) Copy() (*List[T], error) {
	c, err := l.lazySetup().clone()
	if err != nil {
		return nil, err
	}
	return &List[T]{list: *c}, nil
}

func (l *List[T]) EqualFunc(other *List[T], eq cmp.Equal[T]) bool {
	return l.lazySetup().equal(other.lazySetup(), eq)
}

// Seq returns an iterator over the values in the list, from front to
// back. Erasing the current element during iteration is permitted.
func (l *List[T]) Seq() iter.Seq[T] { return l.lazySetup().values() }

// Backward returns an iterator over the values in the list, from back
// to front.
func (l *List[T]) Backward() iter.Seq[T] { return l.lazySetup().backward() }

func (l *List[T]) Slice() []T     { return l.lazySetup().slice() }
func (l *List[T]) String() string { return l.lazySetup().String() }
