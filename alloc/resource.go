// Package alloc provides the allocator used by every container in
// this module. An Allocator[T] hands out storage for values of type T
// and draws its budget from a Resource, which is shared by all of the
// allocators rebound from it. Containers never allocate storage
// directly: lists rebind the value allocator supplied by the caller
// to an allocator for their node type, and vectors and stacks
// allocate their buffers through it.
//
// None of the types in this package are safe for concurrent use.
package alloc

// Resource is the source of storage for allocators. Acquire is
// called before storage for count objects of the given size is
// handed out, and Release is called exactly once for every
// successful Acquire, with the same arguments, after the storage is
// no longer used.
//
// Resources must be comparable: two allocators are equal when they
// share the same resource, and containers use that equality to
// decide whether storage can be transferred between them.
type Resource interface {
	Acquire(count int, size uintptr) error
	Release(count int, size uintptr)
}

// CopySelector is an optional interface for resources that decide
// which resource a copy of a container should draw from. Resources
// which do not implement it are shared by copies.
type CopySelector interface {
	SelectOnCopy() Resource
}

// Limiter is an optional interface for resources with a fixed
// budget, in bytes, used to compute an allocator's MaxSize.
type Limiter interface {
	Limit() uintptr
}

type heap struct{}

// Heap is the default, unbounded resource. Allocation from the heap
// never fails, and every allocator using it compares equal to every
// other.
var Heap Resource = heap{}

func (heap) Acquire(int, uintptr) error { return nil }
func (heap) Release(int, uintptr)       {}
