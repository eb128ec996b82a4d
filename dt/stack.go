package dt

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/tychoish/dsa/alloc"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/memory"
	"github.com/tychoish/dsa/opt"
)

// Stack is a last-in-first-out container with a capacity fixed when
// it is constructed. The whole buffer is allocated up front; adding to
// a full stack returns an error rooted in ers.ErrFull and removing
// from an empty stack returns one rooted in ers.ErrEmpty.
//
// The zero value has no capacity, so every Push fails. Stacks must
// not be copied by value; use Copy.
type Stack[T any] struct {
	buf    []T
	alloc  alloc.Allocator[T]
	copier memory.Copier[T]
}

// Pusher is implemented by containers that a Stack can pop into.
type Pusher[T any] interface{ Push(T) error }

// NewStack allocates a stack. The StackCapacity option is required.
func NewStack[T any](opts ...opt.Provider[*StackConfig[T]]) (*Stack[T], error) {
	conf, err := opt.Join(opts...).Build(&StackConfig[T]{})
	if err != nil {
		return nil, err
	}

	buf, err := conf.Allocator.AllocateN(conf.Capacity)
	if err != nil {
		return nil, errors.Wrap(err, "stack")
	}

	return &Stack[T]{buf: buf[:0], alloc: conf.Allocator, copier: conf.Copier}, nil
}

// StackOf builds a heap allocated stack with the capacity, pushing
// the items in order so that the last item is on top.
func StackOf[T any](capacity int, items ...T) *Stack[T] {
	s := must(NewStack(StackCapacity[T](capacity)))
	for _, it := range items {
		ers.Invariant(ers.Ok(s.Push(it)), "stack capacity smaller than the items")
	}
	return s
}

func (s *Stack[T]) self() *Stack[T] {
	if s == nil {
		panic(ers.ErrUninitializedContainer)
	}
	return s
}

func (*Stack[T]) emptyError(op string) error { return errors.Wrapf(ers.ErrEmpty, "stack %s", op) }

func (s *Stack[T]) fullError(op string) error {
	return errors.Wrapf(ers.ErrFull, "stack %s: capacity %d", op, cap(s.buf))
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int       { return len(s.self().buf) }
func (s *Stack[T]) Cap() int       { return cap(s.self().buf) }
func (s *Stack[T]) Available() int { return s.Cap() - s.Len() }
func (s *Stack[T]) IsEmpty() bool  { return s.Len() == 0 }
func (s *Stack[T]) IsFull() bool   { return s.Available() == 0 }

// Push adds a value to the top of the stack.
func (s *Stack[T]) Push(val T) error {
	if s.IsFull() {
		return s.fullError("push")
	}
	s.buf = append(s.buf, val)
	return nil
}

// Emplace constructs a value on the top of the stack. If the
// constructor fails the stack is unchanged.
func (s *Stack[T]) Emplace(ctor memory.Constructor[T]) error {
	if s.IsFull() {
		return s.fullError("emplace")
	}

	size := len(s.buf)
	if err := memory.UninitializedConstruct(s.buf[size:size+1], ctor); err != nil {
		return errors.Wrap(err, "stack emplace")
	}
	s.buf = s.buf[:size+1]
	return nil
}

// Top returns the value on the top of the stack without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, s.emptyError("top")
	}
	return s.buf[len(s.buf)-1], nil
}

// TopPtr returns a pointer to the value on the top of the stack, or
// nil when the stack is empty.
func (s *Stack[T]) TopPtr() *T {
	if s.IsEmpty() {
		return nil
	}
	return &s.buf[len(s.buf)-1]
}

func (s *Stack[T]) MustTop() T { return must(s.Top()) }

// Pop removes and returns the value on the top of the stack.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, s.emptyError("pop")
	}

	top := len(s.buf) - 1
	val := s.buf[top]
	memory.Destroy(s.buf[top:])
	s.buf = s.buf[:top]
	return val, nil
}

func (s *Stack[T]) MustPop() T { return must(s.Pop()) }

// PopInto moves the top value into the container. The value is only
// removed from the stack if the container accepts it.
func (s *Stack[T]) PopInto(dst Pusher[T]) error {
	val, err := s.Top()
	if err != nil {
		return err
	}
	if err := dst.Push(val); err != nil {
		return errors.Wrap(err, "stack pop into")
	}
	_, err = s.Pop()
	return err
}

// Reverse reverses the order of the elements, so the bottom of the
// stack becomes the top.
func (s *Stack[T]) Reverse() error {
	if s.IsEmpty() {
		return s.emptyError("reverse")
	}
	slices.Reverse(s.buf)
	return nil
}

// Clear destroys every element. The capacity is retained.
func (s *Stack[T]) Clear() {
	memory.Destroy(s.self().buf)
	s.buf = s.buf[:0]
}

// Release destroys every element and returns the buffer to the
// allocator, leaving a stack with no capacity.
func (s *Stack[T]) Release() {
	s.self().alloc.DeallocateN(s.buf)
	s.buf = nil
}

// Take replaces the contents of the stack with the contents of other,
// leaving other empty. The capacities are unchanged; if other holds
// more elements than the receiver can, neither stack changes.
func (s *Stack[T]) Take(other *Stack[T]) error {
	if s.self() == other.self() {
		return nil
	}
	if len(other.buf) > cap(s.buf) {
		return s.fullError("take")
	}

	s.Clear()
	size := memory.UninitializedMove(other.buf, s.buf[:len(other.buf)])
	s.buf = s.buf[:size]
	other.buf = other.buf[:0]
	return nil
}

// Swap exchanges the contents, capacities and allocators of the two
// stacks.
func (s *Stack[T]) Swap(other *Stack[T]) {
	a, b := s.self(), other.self()
	*a, *b = *b, *a
}

// Copy returns a new stack with the same capacity holding copies of
// every element, using the allocator's copy selection.
func (s *Stack[T]) Copy() (*Stack[T], error) {
	out := &Stack[T]{alloc: s.self().alloc.SelectOnCopy(), copier: s.copier}

	storage, err := out.alloc.AllocateN(cap(s.buf))
	if err != nil {
		return nil, errors.Wrap(err, "stack copy")
	}

	size, err := memory.UninitializedCopy(s.buf, storage, s.copier)
	if err != nil {
		out.alloc.DeallocateN(storage)
		return nil, err
	}

	out.buf = storage[:size]
	return out, nil
}

// Seq returns an iterator over the elements from the top of the stack
// to the bottom.
func (s *Stack[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range slices.Backward(s.self().buf) {
			if !yield(val) {
				return
			}
		}
	}
}

// Slice returns the elements from the top of the stack to the bottom.
func (s *Stack[T]) Slice() []T { return slices.AppendSeq([]T{}, s.Seq()) }

func (s *Stack[T]) String() string { return fmt.Sprint(s.Slice()) }
