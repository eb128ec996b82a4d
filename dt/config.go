package dt

import (
	"github.com/cockroachdb/errors"

	"github.com/tychoish/dsa/alloc"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/memory"
	"github.com/tychoish/dsa/opt"
)

// VectorConfig holds the construction options of a Vector. The zero
// value allocates from the heap with the Doubling growth policy.
type VectorConfig[T any] struct {
	Allocator   alloc.Allocator[T]
	Constructor memory.Constructor[T]
	Copier      memory.Copier[T]
	Growth      Growth
	// Capacity is reserved when the vector is constructed.
	Capacity int
}

func (conf *VectorConfig[T]) Validate() error {
	if conf.Capacity < 0 {
		return errors.Wrapf(ers.ErrMalformedConfiguration, "vector capacity %d is negative", conf.Capacity)
	}
	return nil
}

// VectorAllocator sets the allocator for the vector's buffer.
func VectorAllocator[T any](a alloc.Allocator[T]) opt.Provider[*VectorConfig[T]] {
	return func(conf *VectorConfig[T]) error { conf.Allocator = a; return nil }
}

// VectorResource sets the vector's allocator to draw from the resource.
func VectorResource[T any](r alloc.Resource) opt.Provider[*VectorConfig[T]] {
	return VectorAllocator(alloc.New[T](r))
}

// VectorConstructor sets the constructor used by Resize.
func VectorConstructor[T any](ctor memory.Constructor[T]) opt.Provider[*VectorConfig[T]] {
	return func(conf *VectorConfig[T]) error { conf.Constructor = ctor; return nil }
}

// VectorCopier sets the function used to copy values into the vector.
func VectorCopier[T any](cp memory.Copier[T]) opt.Provider[*VectorConfig[T]] {
	return func(conf *VectorConfig[T]) error { conf.Copier = cp; return nil }
}

// VectorGrowth sets the growth policy. A nil policy is Doubling.
func VectorGrowth[T any](g Growth) opt.Provider[*VectorConfig[T]] {
	return func(conf *VectorConfig[T]) error { conf.Growth = g; return nil }
}

// VectorCapacity reserves storage for n elements at construction.
func VectorCapacity[T any](n int) opt.Provider[*VectorConfig[T]] {
	return func(conf *VectorConfig[T]) error { conf.Capacity = n; return nil }
}

// StackConfig holds the construction options of a Stack. Capacity is
// required.
type StackConfig[T any] struct {
	Allocator alloc.Allocator[T]
	Copier    memory.Copier[T]
	Capacity  int
}

func (conf *StackConfig[T]) Validate() error {
	if conf.Capacity <= 0 {
		return errors.Wrapf(ers.ErrMalformedConfiguration, "stack capacity must be positive, not %d", conf.Capacity)
	}
	return nil
}

// StackAllocator sets the allocator for the stack's buffer.
func StackAllocator[T any](a alloc.Allocator[T]) opt.Provider[*StackConfig[T]] {
	return func(conf *StackConfig[T]) error { conf.Allocator = a; return nil }
}

// StackResource sets the stack's allocator to draw from the resource.
func StackResource[T any](r alloc.Resource) opt.Provider[*StackConfig[T]] {
	return StackAllocator(alloc.New[T](r))
}

// StackCopier sets the function used to copy values between stacks.
func StackCopier[T any](cp memory.Copier[T]) opt.Provider[*StackConfig[T]] {
	return func(conf *StackConfig[T]) error { conf.Copier = cp; return nil }
}

// StackCapacity sets the fixed capacity of the stack.
func StackCapacity[T any](n int) opt.Provider[*StackConfig[T]] {
	return func(conf *StackConfig[T]) error { conf.Capacity = n; return nil }
}
