package dt

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/tychoish/dsa/alloc"
	"github.com/tychoish/dsa/dt/cmp"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/memory"
	"github.com/tychoish/dsa/opt"
)

// Vector is a contiguous, growable sequence of values whose buffer is
// provided by an allocator. The zero value is an empty vector that
// allocates from the heap and grows with the Doubling policy.
//
// Operations that allocate or construct values provide the strong
// guarantee: when they return an error the vector is unchanged.
// Vectors must not be copied by value; use Copy.
type Vector[T any] struct {
	// the length of buf is the size of the vector, and the capacity
	// of buf is the capacity of the allocation.
	buf    []T
	alloc  alloc.Allocator[T]
	ctor   memory.Constructor[T]
	copier memory.Copier[T]
	growth Growth
}

// NewVector constructs a vector from the options.
func NewVector[T any](opts ...opt.Provider[*VectorConfig[T]]) (*Vector[T], error) {
	conf, err := opt.Join(opts...).Build(&VectorConfig[T]{})
	if err != nil {
		return nil, err
	}

	v := &Vector[T]{
		alloc:  conf.Allocator,
		ctor:   conf.Constructor,
		copier: conf.Copier,
		growth: conf.Growth,
	}

	if err := v.Reserve(conf.Capacity); err != nil {
		return nil, err
	}

	return v, nil
}

// VectorOf builds a heap allocated vector holding the items in order.
func VectorOf[T any](items ...T) *Vector[T] {
	v := &Vector[T]{}
	ers.Invariant(ers.Ok(v.Assign(items...)), "heap allocation failed")
	return v
}

func (v *Vector[T]) self() *Vector[T] {
	if v == nil {
		panic(ers.ErrUninitializedContainer)
	}
	return v
}

func (v *Vector[T]) rangeError(op string, idx int) error {
	return errors.Wrapf(ers.ErrOutOfBounds, "vector %s: index %d with length %d", op, idx, len(v.buf))
}

func (*Vector[T]) emptyError(op string) error { return errors.Wrapf(ers.ErrEmpty, "vector %s", op) }

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int { return len(v.self().buf) }

// Cap returns the number of elements the vector can hold before it
// must reallocate.
func (v *Vector[T]) Cap() int { return cap(v.self().buf) }

func (v *Vector[T]) IsEmpty() bool                 { return v.Len() == 0 }
func (v *Vector[T]) MaxSize() int                  { return v.self().alloc.MaxSize() }
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.self().alloc }

// At returns the element at the index, or an error rooted in
// ers.ErrOutOfBounds.
func (v *Vector[T]) At(idx int) (T, error) {
	if idx < 0 || idx >= v.Len() {
		var zero T
		return zero, v.rangeError("at", idx)
	}
	return v.buf[idx], nil
}

// Index returns the element at the index, and panics if the index is
// out of bounds.
func (v *Vector[T]) Index(idx int) T { return must(v.At(idx)) }

// Ptr returns a pointer to the element at the index, which remains
// valid until the vector reallocates. Panics if the index is out of
// bounds.
func (v *Vector[T]) Ptr(idx int) *T {
	if idx < 0 || idx >= v.Len() {
		panic(v.rangeError("ptr", idx))
	}
	return &v.buf[idx]
}

// Set replaces the element at the index.
func (v *Vector[T]) Set(idx int, val T) error {
	if idx < 0 || idx >= v.Len() {
		return v.rangeError("set", idx)
	}
	v.buf[idx] = val
	return nil
}

// Front returns the first element, or an error rooted in ers.ErrEmpty.
func (v *Vector[T]) Front() (T, error) {
	if v.IsEmpty() {
		var zero T
		return zero, v.emptyError("front")
	}
	return v.buf[0], nil
}

// Back returns the last element, or an error rooted in ers.ErrEmpty.
func (v *Vector[T]) Back() (T, error) {
	if v.IsEmpty() {
		var zero T
		return zero, v.emptyError("back")
	}
	return v.buf[len(v.buf)-1], nil
}

func (v *Vector[T]) MustFront() T { return must(v.Front()) }
func (v *Vector[T]) MustBack() T  { return must(v.Back()) }

// PushBack adds a value to the end of the vector.
func (v *Vector[T]) PushBack(val T) error { return v.Insert(v.Len(), val) }

// EmplaceBack constructs a value at the end of the vector.
func (v *Vector[T]) EmplaceBack(ctor memory.Constructor[T]) error { return v.Emplace(v.Len(), ctor) }

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, error) {
	if v.IsEmpty() {
		var zero T
		return zero, v.emptyError("pop back")
	}

	last := len(v.buf) - 1
	val := v.buf[last]
	memory.Destroy(v.buf[last:])
	v.buf = v.buf[:last]
	return val, nil
}

// MustPopBack is PopBack, and panics when the vector is empty.
func (v *Vector[T]) MustPopBack() T { return must(v.PopBack()) }

// Insert adds a value before the element at the index. An index
// equal to Len appends.
func (v *Vector[T]) Insert(idx int, val T) error {
	return v.self().insert(idx, 1, func(dst []T) error { dst[0] = val; return nil })
}

// Emplace constructs a value before the element at the index.
func (v *Vector[T]) Emplace(idx int, ctor memory.Constructor[T]) error {
	return v.self().insert(idx, 1, func(dst []T) error { return memory.UninitializedConstruct(dst, ctor) })
}

// InsertN adds count copies of the value before the element at the
// index.
func (v *Vector[T]) InsertN(idx, count int, val T) error {
	return v.self().insert(idx, count, func(dst []T) error { return memory.UninitializedFill(dst, val, v.copier) })
}

// InsertSeq adds copies of the values produced by the sequence before
// the element at the index.
func (v *Vector[T]) InsertSeq(idx int, seq iter.Seq[T]) error {
	values := slices.Collect(seq)
	return v.self().insert(idx, len(values), func(dst []T) error {
		_, err := memory.UninitializedCopy(values, dst, v.copier)
		return err
	})
}

// insert opens count elements at the index and populates them with
// fill. fill must leave dst destroyed when it fails.
func (v *Vector[T]) insert(idx, count int, fill func(dst []T) error) error {
	size := len(v.buf)
	switch {
	case idx < 0 || idx > size:
		return v.rangeError("insert", idx)
	case count < 0:
		return errors.Wrapf(ers.ErrInvalidInput, "vector insert: negative count %d", count)
	case count == 0:
		return nil
	}

	if count <= cap(v.buf)-size {
		if err := fill(v.buf[size : size+count]); err != nil {
			return err
		}
		v.buf = v.buf[:size+count]
		rotate(v.buf[idx:], size-idx)
		return nil
	}

	capacity, err := v.grow(count)
	if err != nil {
		return err
	}

	storage, err := v.alloc.AllocateN(capacity)
	if err != nil {
		return errors.Wrap(err, "vector insert")
	}

	if err := fill(storage[idx : idx+count]); err != nil {
		v.alloc.DeallocateN(storage)
		return err
	}

	memory.UninitializedMove(v.buf[:idx], storage[:idx])
	memory.UninitializedMove(v.buf[idx:], storage[idx+count:])
	v.release()
	v.buf = storage[:size+count]
	return nil
}

// rotate moves the first k elements of s to the end.
func rotate[T any](s []T, k int) {
	slices.Reverse(s[:k])
	slices.Reverse(s[k:])
	slices.Reverse(s)
}

// grow computes the capacity of a buffer that can hold need more
// elements.
func (v *Vector[T]) grow(need int) (int, error) {
	size, limit := len(v.buf), v.alloc.MaxSize()
	if need > limit-size {
		return 0, errors.Wrapf(ers.ErrOutOfBounds, "vector: adding %d elements to %d exceeds maximum size %d", need, size, limit)
	}

	policy := v.growth
	if policy == nil {
		policy = Doubling
	}

	capacity := policy(size, need)
	switch {
	case capacity < 0 || capacity > limit:
		capacity = limit
	case capacity < size+need:
		capacity = size + need
	}

	return capacity, nil
}

// realloc moves the elements into a new buffer of the given capacity.
func (v *Vector[T]) realloc(capacity int) error {
	storage, err := v.alloc.AllocateN(capacity)
	if err != nil {
		return errors.Wrap(err, "vector")
	}

	size := memory.UninitializedMove(v.buf, storage)
	v.release()
	v.buf = storage[:size]
	return nil
}

func (v *Vector[T]) release() {
	v.alloc.DeallocateN(v.buf)
	v.buf = nil
}

// Erase removes the element at the index.
func (v *Vector[T]) Erase(idx int) error {
	if idx < 0 || idx >= v.Len() {
		return v.rangeError("erase", idx)
	}
	v.eraseRange(idx, idx+1)
	return nil
}

// EraseRange removes the elements in [first, last).
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || last > v.Len() || first > last {
		return errors.Wrapf(ers.ErrOutOfBounds, "vector erase: range [%d, %d) with length %d", first, last, len(v.buf))
	}
	v.eraseRange(first, last)
	return nil
}

func (v *Vector[T]) eraseRange(first, last int) {
	size := len(v.buf)
	memory.Destroy(v.buf[first:last])
	memory.Shift(v.buf, last, first, size-last)
	v.buf = v.buf[:size-(last-first)]
}

// RemoveIf erases every element for which the predicate is true,
// preserving the order of the others, and returns the number erased.
func (v *Vector[T]) RemoveIf(pred func(T) bool) int {
	size := v.Len()
	v.buf = slices.DeleteFunc(v.buf, pred)
	return size - len(v.buf)
}

// Reserve ensures the vector can hold n elements without
// reallocating.
func (v *Vector[T]) Reserve(n int) error {
	switch {
	case n < 0:
		return errors.Wrapf(ers.ErrInvalidInput, "vector reserve: negative capacity %d", n)
	case n <= v.Cap():
		return nil
	case n > v.alloc.MaxSize():
		return errors.Wrapf(ers.ErrOutOfBounds, "vector reserve: %d elements exceeds maximum size %d", n, v.alloc.MaxSize())
	default:
		return v.realloc(n)
	}
}

// ShrinkToFit reallocates the buffer so that its capacity equals the
// length of the vector. An empty vector releases its buffer.
func (v *Vector[T]) ShrinkToFit() error {
	if v.Cap() == len(v.buf) {
		return nil
	}
	return v.realloc(len(v.buf))
}

// Resize changes the length of the vector, destroying elements past
// n or constructing new elements with the vector's constructor.
func (v *Vector[T]) Resize(n int) error {
	return v.self().resize(n, func(dst []T) error { return memory.UninitializedConstruct(dst, v.ctor) })
}

// ResizeFill is Resize, filling new elements with copies of the value.
func (v *Vector[T]) ResizeFill(n int, val T) error {
	return v.self().resize(n, func(dst []T) error { return memory.UninitializedFill(dst, val, v.copier) })
}

func (v *Vector[T]) resize(n int, fill func([]T) error) error {
	size := len(v.buf)
	switch {
	case n < 0:
		return errors.Wrapf(ers.ErrInvalidInput, "vector resize: negative size %d", n)
	case n <= size:
		memory.Destroy(v.buf[n:])
		v.buf = v.buf[:n]
		return nil
	default:
		return v.insert(size, n-size, fill)
	}
}

// Assign replaces the contents of the vector with copies of the items.
func (v *Vector[T]) Assign(items ...T) error { return v.AssignSeq(slices.Values(items)) }

// AssignSeq replaces the contents of the vector with copies of the
// values produced by the sequence.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	values := slices.Collect(seq)
	return v.self().assign(len(values), func(dst []T) error {
		_, err := memory.UninitializedCopy(values, dst, v.copier)
		return err
	})
}

// AssignN replaces the contents of the vector with count copies of
// the value.
func (v *Vector[T]) AssignN(count int, val T) error {
	return v.self().assign(count, func(dst []T) error { return memory.UninitializedFill(dst, val, v.copier) })
}

// assign builds the new contents before destroying the old ones,
// reusing the buffer when it has room for both.
func (v *Vector[T]) assign(count int, fill func([]T) error) error {
	size := len(v.buf)
	switch {
	case count < 0:
		return errors.Wrapf(ers.ErrInvalidInput, "vector assign: negative count %d", count)
	case count > v.alloc.MaxSize():
		return errors.Wrapf(ers.ErrOutOfBounds, "vector assign: %d elements exceeds maximum size %d", count, v.alloc.MaxSize())
	case count == 0:
		v.Clear()
		return nil
	case count <= cap(v.buf)-size:
		if err := fill(v.buf[size : size+count]); err != nil {
			return err
		}
		memory.Destroy(v.buf[:size])
		memory.Shift(v.buf[:size+count], size, 0, count)
		v.buf = v.buf[:count]
		return nil
	}

	storage, err := v.alloc.AllocateN(count)
	if err != nil {
		return errors.Wrap(err, "vector assign")
	}
	if err := fill(storage); err != nil {
		v.alloc.DeallocateN(storage)
		return err
	}

	v.release()
	v.buf = storage
	return nil
}

// Clear destroys every element. The capacity is retained; use
// ShrinkToFit to release the buffer.
func (v *Vector[T]) Clear() {
	v.self()
	memory.Destroy(v.buf)
	v.buf = v.buf[:0]
}

// Reverse reverses the order of the elements in place.
func (v *Vector[T]) Reverse() { slices.Reverse(v.self().buf) }

// Swap exchanges the contents, allocators and options of the two
// vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	a, b := v.self(), other.self()
	*a, *b = *b, *a
}

// Take replaces the contents of the vector with the contents of
// other, leaving other empty with no buffer. When the allocators are
// equal the buffer itself is transferred; otherwise the values are
// moved into a buffer from the receiver's allocator, and on failure
// both vectors are unchanged.
func (v *Vector[T]) Take(other *Vector[T]) error {
	if v.self() == other.self() {
		return nil
	}

	if v.alloc.Equal(other.alloc) {
		v.release()
		v.buf, other.buf = other.buf, nil
		return nil
	}

	storage, err := v.alloc.AllocateN(len(other.buf))
	if err != nil {
		return errors.Wrap(err, "vector take")
	}

	size := memory.UninitializedMove(other.buf, storage)
	other.release()
	v.release()
	v.buf = storage[:size]
	return nil
}

// Copy returns a new vector holding copies of every element, using
// the allocator's copy selection.
func (v *Vector[T]) Copy() (*Vector[T], error) {
	out := &Vector[T]{
		alloc:  v.self().alloc.SelectOnCopy(),
		ctor:   v.ctor,
		copier: v.copier,
		growth: v.growth,
	}

	storage, err := out.alloc.AllocateN(len(v.buf))
	if err != nil {
		return nil, errors.Wrap(err, "vector copy")
	}

	if _, err := memory.UninitializedCopy(v.buf, storage, v.copier); err != nil {
		out.alloc.DeallocateN(storage)
		return nil, err
	}

	out.buf = storage
	return out, nil
}

// SortFunc sorts the vector, stably, with the LessThan function.
func (v *Vector[T]) SortFunc(lt cmp.LessThan[T]) {
	slices.SortStableFunc(v.self().buf, func(a, b T) int {
		switch {
		case lt(a, b):
			return -1
		case lt(b, a):
			return 1
		default:
			return 0
		}
	})
}

// SortVector sorts a vector of natively ordered values from low to
// high.
func SortVector[T constraints.Ordered](v *Vector[T]) { slices.Sort(v.self().buf) }

// EqualFunc reports whether the two vectors hold pairwise equal
// values.
func (v *Vector[T]) EqualFunc(other *Vector[T], eq cmp.Equal[T]) bool {
	return slices.EqualFunc(v.self().buf, other.self().buf, eq)
}

// Seq returns an iterator over the elements, from front to back.
func (v *Vector[T]) Seq() iter.Seq[T] { return slices.Values(v.self().buf) }

// All returns an iterator over the indexes and elements.
func (v *Vector[T]) All() iter.Seq2[int, T] { return slices.All(v.self().buf) }

// Backward returns an iterator over the elements, from back to front.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range slices.Backward(v.self().buf) {
			if !yield(val) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T { return append([]T{}, v.self().buf...) }

func (v *Vector[T]) String() string { return fmt.Sprint(v.self().buf) }
