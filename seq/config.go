package seq

import (
	"github.com/tychoish/dsa/alloc"
	"github.com/tychoish/dsa/memory"
	"github.com/tychoish/dsa/opt"
)

// Config holds the construction options of a list. The zero value
// allocates from the heap, default constructs zero values and copies
// values with assignment.
type Config[T any] struct {
	// Allocator provides the storage for the list's nodes, by way of
	// alloc.Rebind.
	Allocator alloc.Allocator[T]
	// Constructor produces the values added by Resize and the other
	// operations that default construct elements.
	Constructor memory.Constructor[T]
	// Copier duplicates values when a list is copied or filled.
	Copier memory.Copier[T]
}

// Validate satisfies the validation interface used by opt.Provider.
func (*Config[T]) Validate() error { return nil }

// WithAllocator sets the allocator for the list.
func WithAllocator[T any](a alloc.Allocator[T]) opt.Provider[*Config[T]] {
	return func(conf *Config[T]) error { conf.Allocator = a; return nil }
}

// WithResource sets the list's allocator to draw from the resource.
func WithResource[T any](r alloc.Resource) opt.Provider[*Config[T]] {
	return WithAllocator(alloc.New[T](r))
}

// WithConstructor sets the default constructor of the list.
func WithConstructor[T any](ctor memory.Constructor[T]) opt.Provider[*Config[T]] {
	return func(conf *Config[T]) error { conf.Constructor = ctor; return nil }
}

// WithCopier sets the function used to copy values into the list.
func WithCopier[T any](cp memory.Copier[T]) opt.Provider[*Config[T]] {
	return func(conf *Config[T]) error { conf.Copier = cp; return nil }
}

func (conf *Config[T]) core(doubly bool) core[T] {
	return core[T]{
		nodes:  alloc.Rebind[node[T]](conf.Allocator),
		ctor:   conf.Constructor,
		copier: conf.Copier,
		doubly: doubly,
	}
}
