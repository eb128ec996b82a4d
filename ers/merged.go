package ers

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Stack represents the error type returned by Join when it has more
// than one error. The implementation provides support for errors.Is
// and errors.As on every constituent error, and an Unwind() method
// which returns a slice of the constituent errors for additional use.
type Stack struct {
	errs []error
}

// Join takes a slice of errors and converts it into an *ers.Stack
// typed error. Nil errors are dropped: Join returns nil when there
// are no non-nil errors and the error itself when there is exactly
// one.
func Join(errs ...error) error {
	s := &Stack{}
	for _, err := range errs {
		s.Push(err)
	}

	switch len(s.errs) {
	case 0:
		return nil
	case 1:
		return s.errs[0]
	default:
		return s
	}
}

// Push adds an error to the stack, flattening other stacks.
func (e *Stack) Push(err error) {
	switch werr := err.(type) {
	case nil:
		return
	case *Stack:
		e.errs = append(e.errs, werr.errs...)
	default:
		e.errs = append(e.errs, err)
	}
}

// Len reports the number of errors in the stack.
func (e *Stack) Len() int {
	if e == nil {
		return 0
	}
	return len(e.errs)
}

// Error produces the aggregated error strings, joined by ": ".
func (e *Stack) Error() string {
	if e.Len() == 0 {
		return "<nil>"
	}

	strs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		strs = append(strs, err.Error())
	}

	return strings.Join(strs, ": ")
}

// Is reports whether any of the errors in the stack are (or wrap)
// the target.
func (e *Stack) Is(target error) bool {
	for _, err := range e.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As calls errors.As on each error in the stack, returning at the
// first match.
func (e *Stack) As(target any) bool {
	for _, err := range e.errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

// Unwrap exposes the constituent errors to the standard library's
// errors.Is and errors.As.
func (e *Stack) Unwrap() []error { return e.errs }

// Unwind returns a copy of the constituent errors.
func (e *Stack) Unwind() []error { return append([]error(nil), e.errs...) }
