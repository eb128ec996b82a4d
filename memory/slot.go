// Package memory provides construction primitives for storage handed
// out by the alloc package: a Slot that tracks whether the value it
// holds has been constructed, and range operations that construct,
// copy, move, fill, and destroy values in uninitialized storage,
// rolling back partial work on failure.
//
// Constructors and copiers may fail by returning an error or by
// panicking; panics are converted into errors rooted in
// ers.ErrRecoveredPanic, so the range operations always either
// complete or leave the destination as they found it.
package memory

import (
	"github.com/tychoish/dsa/ers"
)

// Constructor produces a new value.
type Constructor[T any] func() (T, error)

// Copier produces a copy of a value. The default copier is Go
// assignment.
type Copier[T any] func(T) (T, error)

// Value returns a constructor that always produces the provided
// value.
func Value[T any](v T) Constructor[T] { return func() (T, error) { return v, nil } }

// Bind returns a constructor that copies the value with the copier.
func Bind[T any](cp Copier[T], v T) Constructor[T] {
	if cp == nil {
		return Value(v)
	}
	return func() (T, error) { return cp(v) }
}

// Construct runs a constructor, converting panics to errors. A nil
// constructor produces the zero value.
func Construct[T any](ctor Constructor[T]) (T, error) {
	if ctor == nil {
		var zero T
		return zero, nil
	}
	return ers.WithRecoverApply(ctor)
}

// Copy runs a copier, converting panics to errors. A nil copier
// returns its input.
func Copy[T any](cp Copier[T], in T) (T, error) {
	if cp == nil {
		return in, nil
	}
	return ers.WithRecoverApply(func() (T, error) { return cp(in) })
}

// Slot holds storage for one value and tracks whether that value is
// constructed. The zero value is an empty slot.
type Slot[T any] struct {
	value T
	live  bool
}

// Live reports whether the slot holds a constructed value.
func (s *Slot[T]) Live() bool { return s.live }

// Construct builds a value in an empty slot. If the constructor
// fails, the slot remains empty and the error is returned.
// Constructing into a live slot is an invariant violation.
func (s *Slot[T]) Construct(ctor Constructor[T]) error {
	ers.Invariant(!s.live, "construct into a live slot")

	val, err := Construct(ctor)
	if err != nil {
		return err
	}

	s.value = val
	s.live = true
	return nil
}

// Emplace stores a value in an empty slot. Emplacing into a live slot
// is an invariant violation.
func (s *Slot[T]) Emplace(v T) {
	ers.Invariant(!s.live, "emplace into a live slot")
	s.value = v
	s.live = true
}

// Destroy releases the value held by the slot. Destroying an empty
// slot is a noop.
func (s *Slot[T]) Destroy() {
	var zero T
	s.value = zero
	s.live = false
}

// Take moves the value out of the slot, leaving it empty.
func (s *Slot[T]) Take() T {
	ers.Invariant(s.live, "take from an empty slot")
	out := s.value
	s.Destroy()
	return out
}

// Get returns the value held by the slot.
func (s *Slot[T]) Get() T {
	ers.Invariant(s.live, "read from an empty slot")
	return s.value
}

// Ptr returns a pointer to the value held by the slot. The pointer
// is valid until the slot is destroyed.
func (s *Slot[T]) Ptr() *T {
	ers.Invariant(s.live, "reference to an empty slot")
	return &s.value
}

// Set replaces the value held by a live slot.
func (s *Slot[T]) Set(v T) {
	ers.Invariant(s.live, "assign to an empty slot")
	s.value = v
}
