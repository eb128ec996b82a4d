// Package dt provides array backed container types: a Vector that
// grows its buffer according to a configurable policy, and a Stack
// with a capacity fixed at construction.
//
// Both types draw their storage from an alloc.Allocator and use the
// primitives in the memory package to construct, copy and move
// elements, so operations that allocate or construct values either
// complete or leave the container unchanged and return the error.
// These structures are not safe for access from multiple concurrent
// go routines.
package dt

import (
	"github.com/tychoish/dsa/ers"
)

// Growth computes the capacity of a vector's new buffer when size
// elements are present and at least need more are required. The
// result is clamped to the allocator's MaxSize, and is never less
// than size+need.
type Growth func(size, need int) int

// Doubling is the default growth policy: the buffer grows by the
// larger of its current size and the requested number of elements.
func Doubling(size, need int) int { return size + max(size, need) }

// Exact grows the buffer by exactly the number of elements required.
func Exact(size, need int) int { return size + need }

// Linear returns a policy that grows the buffer in multiples of step
// elements.
func Linear(step int) Growth {
	ers.Invariant(step > 0, "linear growth step must be positive")
	return func(size, need int) int { return size + ((need+step-1)/step)*step }
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
