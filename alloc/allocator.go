package alloc

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"

	"github.com/tychoish/dsa/ers"
)

// Allocator provides storage for values of type T from a Resource.
// The zero value is usable, and allocates from the Heap resource.
//
// Storage returned by Allocate and AllocateN is zeroed. Deallocate
// and DeallocateN zero the storage (releasing any references it
// holds) before returning its budget to the resource.
type Allocator[T any] struct {
	res Resource
}

// New constructs an allocator that draws from the provided
// resource. A nil resource is the Heap.
func New[T any](r Resource) Allocator[T] { return Allocator[T]{res: r} }

// Default returns an allocator using the Heap resource.
func Default[T any]() Allocator[T] { return Allocator[T]{} }

// Rebind produces an allocator for a different type that shares the
// resource (and therefore the budget and the equality) of the
// original.
func Rebind[U, T any](a Allocator[T]) Allocator[U] { return Allocator[U]{res: a.res} }

// Resource returns the resource that backs this allocator.
func (a Allocator[T]) Resource() Resource {
	if a.res == nil {
		return Heap
	}
	return a.res
}

// SizeOf reports the number of bytes an allocator charges to its
// resource for each value of type T.
func SizeOf[T any]() uintptr { var zero T; return unsafe.Sizeof(zero) }

// Allocate produces storage for a single value. Returns an error
// rooted in ers.ErrOutOfMemory when the resource cannot satisfy the
// request.
func (a Allocator[T]) Allocate() (*T, error) {
	if err := a.Resource().Acquire(1, SizeOf[T]()); err != nil {
		return nil, err
	}
	return new(T), nil
}

// AllocateN produces storage for n values, as a slice with length
// and capacity n. Requests larger than MaxSize fail with an error
// rooted in ers.ErrOutOfBounds.
func (a Allocator[T]) AllocateN(n int) ([]T, error) {
	switch {
	case n < 0:
		return nil, errors.Wrapf(ers.ErrInvalidInput, "cannot allocate %d objects", n)
	case n == 0:
		return nil, nil
	case n > a.MaxSize():
		return nil, errors.Wrapf(ers.ErrOutOfBounds, "allocation of %d objects exceeds maximum size %d", n, a.MaxSize())
	}

	if err := a.Resource().Acquire(n, SizeOf[T]()); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Deallocate releases storage produced by Allocate. Deallocating nil
// is a noop.
func (a Allocator[T]) Deallocate(p *T) {
	if p == nil {
		return
	}
	var zero T
	*p = zero
	a.Resource().Release(1, SizeOf[T]())
}

// DeallocateN releases storage produced by AllocateN. The full
// capacity of the slice is released, so callers may pass a resliced
// buffer.
func (a Allocator[T]) DeallocateN(buf []T) {
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	clear(buf)
	a.Resource().Release(len(buf), SizeOf[T]())
}

// MaxSize reports the largest number of values of type T that the
// allocator could ever produce in a single request.
func (a Allocator[T]) MaxSize() int {
	size := SizeOf[T]()
	if size == 0 {
		size = 1
	}

	limit := uintptr(math.MaxInt)
	if l, ok := a.Resource().(Limiter); ok && l.Limit() > 0 {
		limit = l.Limit()
	}

	return int(limit / size)
}

// Equal reports whether storage produced by one allocator may be
// released by the other, which is true when both share a resource.
func (a Allocator[T]) Equal(other Allocator[T]) bool { return a.Resource() == other.Resource() }

// SelectOnCopy returns the allocator that a copy of a container using
// this allocator should use.
func (a Allocator[T]) SelectOnCopy() Allocator[T] {
	if cs, ok := a.Resource().(CopySelector); ok {
		return Allocator[T]{res: cs.SelectOnCopy()}
	}
	return a
}
