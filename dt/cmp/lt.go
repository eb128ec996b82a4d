// Package cmp provides comparators for sorting and merging the
// containers in this module.
package cmp

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Orderable allows users to define a method on their types which
// implement a method to provide a LessThan operation.
type Orderable[T any] interface{ LessThan(T) bool }

// LessThan describes a less than operation, typically provided by one
// of the following operations. Sorting and merging require that the
// function is a strict weak ordering.
type LessThan[T any] func(a, b T) bool

// Equal describes an equality predicate, used by the Unique and
// Remove operations on lists.
type Equal[T any] func(a, b T) bool

// LessThanNative provides a wrapper around the < operator for types
// that support it, and can be used for sorting lists of compatible
// types.
func LessThanNative[T constraints.Ordered](a, b T) bool { return a < b }

// LessThanCustom converts types that implement the Orderable
// interface.
func LessThanCustom[T Orderable[T]](a, b T) bool { return a.LessThan(b) }

// LessThanConverter provides a function to convert a non-orderable
// type to an orderable type.
func LessThanConverter[T any, S constraints.Ordered](converter func(T) S) LessThan[T] {
	return func(a, b T) bool { return LessThanNative(converter(a), converter(b)) }
}

// LessThanTime compares time using the time.Time.Before() method.
func LessThanTime(a, b time.Time) bool { return a.Before(b) }

// EqualNative wraps the == operator.
func EqualNative[T comparable](a, b T) bool { return a == b }

// Reverse wraps an existing LessThan operator and reverses it's
// direction. The result is a strict ordering: equal elements are
// never less than each other in either direction.
func Reverse[T any](fn LessThan[T]) LessThan[T] { return func(a, b T) bool { return fn(b, a) } }
