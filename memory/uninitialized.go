package memory

import (
	"github.com/cockroachdb/errors"

	"github.com/tychoish/dsa/ers"
)

// UninitializedConstruct constructs a value in every element of dst.
// If any construction fails, the elements constructed so far are
// destroyed and the error is returned.
func UninitializedConstruct[T any](dst []T, ctor Constructor[T]) error {
	for idx := range dst {
		val, err := Construct(ctor)
		if err != nil {
			Destroy(dst[:idx])
			return errors.Wrapf(err, "constructing element %d", idx)
		}
		dst[idx] = val
	}
	return nil
}

// UninitializedFill copies value into every element of dst, with the
// same rollback semantics as UninitializedConstruct.
func UninitializedFill[T any](dst []T, value T, cp Copier[T]) error {
	return UninitializedConstruct(dst, Bind(cp, value))
}

// UninitializedCopy copies every element of src into the
// corresponding element of dst, returning the number of elements
// copied. If a copy fails, the elements copied so far are destroyed,
// and the count is zero. dst must be at least as long as src.
func UninitializedCopy[T any](src, dst []T, cp Copier[T]) (int, error) {
	ers.Invariant(len(dst) >= len(src), "copy destination smaller than source")

	for idx := range src {
		val, err := Copy(cp, src[idx])
		if err != nil {
			Destroy(dst[:idx])
			return 0, errors.Wrapf(err, "copying element %d", idx)
		}
		dst[idx] = val
	}
	return len(src), nil
}

// UninitializedMove moves every element of src into the
// corresponding element of dst, leaving src destroyed. Moves cannot
// fail. dst must be at least as long as src, and the ranges must not
// overlap; use Shift to move elements within one buffer.
func UninitializedMove[T any](src, dst []T) int {
	ers.Invariant(len(dst) >= len(src), "move destination smaller than source")

	n := copy(dst, src)
	Destroy(src)
	return n
}

// Shift moves n elements of buf starting at from so that they start
// at to, destroying the vacated elements that the moved range no
// longer covers.
func Shift[T any](buf []T, from, to, n int) {
	if n == 0 || from == to {
		return
	}

	copy(buf[to:to+n], buf[from:from+n])

	switch {
	case to < from:
		Destroy(buf[max(to+n, from) : from+n])
	default:
		Destroy(buf[from:min(to, from+n)])
	}
}

// Destroy releases the values held in every element of the range.
func Destroy[T any](dst []T) { clear(dst) }
