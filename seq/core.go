package seq

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/tychoish/dsa/alloc"
	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/memory"
)

// core implements the ring shared by SList and List. Singly linked
// rings only maintain next pointers; the doubly linked form keeps
// prev pointers consistent through every operation.
type core[T any] struct {
	root   *node[T]
	nodes  alloc.Allocator[node[T]]
	ctor   memory.Constructor[T]
	copier memory.Copier[T]
	doubly bool
}

func (c *core[T]) setup(doubly bool) *core[T] {
	if c.root == nil {
		c.doubly = doubly
		c.root = &node[T]{}
		c.root.next = c.root
		if doubly {
			c.root.prev = c.root
		}
	}
	return c
}

func (c *core[T]) family() string {
	if c.doubly {
		return "list"
	}
	return "slist"
}

func (c *core[T]) owns(p position[T]) bool { return p.node != nil && p.root == c.root }

func (c *core[T]) checkOwner(p position[T]) {
	ers.Invariant(c.owns(p), "iterator does not belong to this list")
}

func (c *core[T]) checkCompatible(other *core[T]) {
	ers.Invariant(c.nodes.Equal(other.nodes), "cannot exchange nodes between lists with different allocators")
}

func (c *core[T]) empty() bool { return c.root.next == c.root }

func (c *core[T]) size() (count int) {
	for n := c.root.next; n != c.root; n = n.next {
		count++
	}
	return count
}

// last returns the final node in the ring, which is the root when the
// list is empty.
func (c *core[T]) last() *node[T] {
	if c.doubly {
		return c.root.prev
	}
	return c.before(c.root)
}

// before returns the node preceding n.
func (c *core[T]) before(n *node[T]) *node[T] {
	if c.doubly {
		return n.prev
	}
	prev := c.root
	for prev.next != n {
		prev = prev.next
	}
	return prev
}

// nth returns the node at the 1-based position idx, or the root for
// idx zero. idx must not exceed the size of the list.
func (c *core[T]) nth(idx int) *node[T] {
	n := c.root
	for ; idx > 0; idx-- {
		n = n.next
	}
	return n
}

func (c *core[T]) createNode(ctor memory.Constructor[T]) (*node[T], error) {
	n, err := c.nodes.Allocate()
	if err != nil {
		return nil, errors.Wrap(err, c.family())
	}

	if err := n.slot.Construct(ctor); err != nil {
		c.nodes.Deallocate(n)
		return nil, errors.Wrapf(err, "%s: constructing element", c.family())
	}

	return n, nil
}

func (c *core[T]) destroyNode(n *node[T]) {
	n.slot.Destroy()
	c.nodes.Deallocate(n)
}

func (c *core[T]) destroyChain(ch chain[T]) {
	for n := ch.head; n != nil; {
		next := n.next
		c.destroyNode(n)
		n = next
	}
}

func (c *core[T]) checkCount(count int) error {
	switch {
	case count < 0:
		return errors.Wrapf(ers.ErrInvalidInput, "%s: negative count %d", c.family(), count)
	case count > c.nodes.MaxSize():
		return errors.Wrapf(ers.ErrOutOfBounds, "%s: %d elements exceeds maximum size %d", c.family(), count, c.nodes.MaxSize())
	default:
		return nil
	}
}

// buildN creates a detached chain of count nodes. If any node cannot
// be created, the nodes created so far are destroyed.
func (c *core[T]) buildN(count int, ctor memory.Constructor[T]) (chain[T], error) {
	var ch chain[T]
	if err := c.checkCount(count); err != nil {
		return ch, err
	}

	for ch.size < count {
		n, err := c.createNode(ctor)
		if err != nil {
			c.destroyChain(ch)
			return chain[T]{}, err
		}
		ch.push(n)
	}
	return ch, nil
}

// buildSeq creates a detached chain holding a copy of every value in
// the sequence, with the same rollback as buildN.
func (c *core[T]) buildSeq(seq iter.Seq[T], cp memory.Copier[T]) (chain[T], error) {
	var ch chain[T]
	for value := range seq {
		n, err := c.createNode(memory.Bind(cp, value))
		if err != nil {
			c.destroyChain(ch)
			return chain[T]{}, err
		}
		ch.push(n)
	}
	return ch, nil
}

func (c *core[T]) linkAfter(pos, n *node[T]) {
	if c.doubly {
		n.hook(pos.next)
		return
	}
	n.next = pos.next
	pos.next = n
}

// linkChainAfter links a detached chain into the ring after pos and
// returns the last linked node, or pos for an empty chain.
func (c *core[T]) linkChainAfter(pos *node[T], ch chain[T]) *node[T] {
	if ch.head == nil {
		return pos
	}

	next := pos.next
	pos.next = ch.head
	ch.tail.next = next

	if c.doubly {
		prev := pos
		for n := ch.head; n != next; n = n.next {
			n.prev = prev
			prev = n
		}
		next.prev = ch.tail
	}

	return ch.tail
}

func (c *core[T]) unlinkAfter(pos *node[T]) *node[T] {
	n := pos.next
	if c.doubly {
		n.unhook()
		return n
	}
	pos.next = n.next
	n.next = nil
	return n
}

// detachRange removes the nodes in (before, last] from the ring.
func (c *core[T]) detachRange(before, last *node[T]) chain[T] {
	if before == last {
		return chain[T]{}
	}

	first := before.next
	before.next = last.next
	if c.doubly {
		last.next.prev = before
	}
	last.next = nil

	return chainOf(first)
}

func (c *core[T]) detachAll() chain[T] { return c.detachRange(c.root, c.last()) }

func (c *core[T]) transfer(pos, before, last *node[T]) {
	if c.doubly {
		pos.transferAfterLinked(before, last)
		return
	}
	pos.transferAfter(before, last)
}

func (c *core[T]) eraseAfter(pos *node[T]) *node[T] {
	if pos.next == c.root {
		panic(errors.Wrapf(ers.ErrOutOfBounds, "%s: erase after the last element", c.family()))
	}
	c.destroyNode(c.unlinkAfter(pos))
	return pos.next
}

// eraseBetween erases the nodes in the open range (pos, last).
func (c *core[T]) eraseBetween(pos, last *node[T]) {
	for pos.next != last {
		c.destroyNode(c.unlinkAfter(pos))
	}
}

func (c *core[T]) clear() { c.destroyChain(c.detachAll()) }

func (c *core[T]) emptyError(op string) error {
	return errors.Wrapf(ers.ErrEmpty, "%s %s", c.family(), op)
}

func (c *core[T]) frontPtr() *T {
	if c.empty() {
		return nil
	}
	return c.root.next.slot.Ptr()
}

func (c *core[T]) front() (T, error) {
	if c.empty() {
		var zero T
		return zero, c.emptyError("front")
	}
	return c.root.next.value(), nil
}

func (c *core[T]) insertAfter(pos *node[T], ctor memory.Constructor[T]) (*node[T], error) {
	n, err := c.createNode(ctor)
	if err != nil {
		return nil, err
	}
	c.linkAfter(pos, n)
	return n, nil
}

func (c *core[T]) popAfter(pos *node[T], op string) (T, error) {
	if c.empty() {
		var zero T
		return zero, c.emptyError(op)
	}

	n := c.unlinkAfter(pos)
	out := n.slot.Take()
	c.nodes.Deallocate(n)
	return out, nil
}

// removeFunc erases every element equal to the target. If the target
// points into an element of the list, that element is erased after
// the pass completes, so every comparison reads a live value.
func (c *core[T]) removeFunc(target *T, eq cmp.Equal[T]) (count int) {
	var deferred *node[T]

	prev := c.root
	for prev.next != c.root {
		n := prev.next
		switch {
		case !eq(n.value(), *target):
			prev = n
		case n.slot.Ptr() == target:
			deferred = prev
			prev = n
		default:
			c.destroyNode(c.unlinkAfter(prev))
			count++
		}
	}

	if deferred != nil {
		c.destroyNode(c.unlinkAfter(deferred))
		count++
	}

	return count
}

func (c *core[T]) removeIf(pred func(T) bool) (count int) {
	prev := c.root
	for prev.next != c.root {
		if pred(prev.next.value()) {
			c.destroyNode(c.unlinkAfter(prev))
			count++
			continue
		}
		prev = prev.next
	}
	return count
}

func (c *core[T]) unique(eq cmp.Equal[T]) (count int) {
	if c.empty() {
		return 0
	}

	for prev := c.root.next; prev.next != c.root; {
		if eq(prev.value(), prev.next.value()) {
			c.destroyNode(c.unlinkAfter(prev))
			count++
			continue
		}
		prev = prev.next
	}
	return count
}

func (c *core[T]) merge(other *core[T], lt cmp.LessThan[T]) {
	if c == other || other.empty() {
		return
	}
	c.checkCompatible(other)

	a := c.detachAll()
	b := other.detachAll()
	c.linkChainAfter(c.root, mergeChains(a, b, lt))
}

func (c *core[T]) sort(alg Algorithm, lt cmp.LessThan[T]) {
	if c.root.next.next == c.root {
		return
	}

	ch := c.detachAll()
	c.linkChainAfter(c.root, chainOf(sortChain(alg, ch.head, lt)))
}

func (c *core[T]) reverse() {
	if c.doubly {
		c.root.reverseAfterLinked()
		return
	}
	c.root.reverseAfter()
}

// resize truncates or extends the list to count elements. Extension
// either succeeds completely or leaves the list unchanged.
func (c *core[T]) resize(count int, ctor memory.Constructor[T]) error {
	if err := c.checkCount(count); err != nil {
		return err
	}

	size := c.size()
	if count <= size {
		c.destroyChain(c.detachRange(c.nth(count), c.last()))
		return nil
	}

	ch, err := c.buildN(count-size, ctor)
	if err != nil {
		return err
	}
	c.linkChainAfter(c.last(), ch)
	return nil
}

// assign replaces the contents of the list with a chain built before
// any existing element is destroyed.
func (c *core[T]) assign(ch chain[T], err error) error {
	if err != nil {
		return err
	}
	c.clear()
	c.linkChainAfter(c.root, ch)
	return nil
}

func (c *core[T]) clone() (*core[T], error) {
	out := &core[T]{
		nodes:  c.nodes.SelectOnCopy(),
		ctor:   c.ctor,
		copier: c.copier,
	}
	out.setup(c.doubly)

	if err := out.assign(out.buildSeq(c.values(), c.copier)); err != nil {
		return nil, err
	}
	return out, nil
}

// take replaces the contents of the list with the contents of the
// other list, leaving the other list empty. When both lists share an
// allocator the nodes are transferred, otherwise every value is moved
// into a node from this list's allocator.
func (c *core[T]) take(other *core[T]) error {
	if c == other {
		return nil
	}

	if c.nodes.Equal(other.nodes) {
		c.clear()
		c.linkChainAfter(c.root, other.detachAll())
		return nil
	}

	if err := c.assign(c.buildSeq(other.values(), nil)); err != nil {
		return err
	}
	other.clear()
	return nil
}

func (c *core[T]) swap(other *core[T]) { *c, *other = *other, *c }

func (c *core[T]) equal(other *core[T], eq cmp.Equal[T]) bool {
	a, b := c.root.next, other.root.next
	for ; a != c.root && b != other.root; a, b = a.next, b.next {
		if !eq(a.value(), b.value()) {
			return false
		}
	}
	return a == c.root && b == other.root
}

func (c *core[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.root.next; n != c.root; {
			next := n.next
			if !yield(n.value()) {
				return
			}
			n = next
		}
	}
}

func (c *core[T]) backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.root.prev; n != c.root; {
			prev := n.prev
			if !yield(n.value()) {
				return
			}
			n = prev
		}
	}
}

func (c *core[T]) slice() []T {
	out := []T{}
	for v := range c.values() {
		out = append(out, v)
	}
	return out
}

func (c *core[T]) String() string { return fmt.Sprint(c.slice()) }
