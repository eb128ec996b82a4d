package ers

import (
	"github.com/cockroachdb/errors"
)

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Newf produces a formatted error with a stack trace attached.
func Newf(tmpl string, args ...any) error { return errors.Newf(tmpl, args...) }

// Wrap annotates an error with a message, returning nil when the
// error is nil. The wrapped error remains visible to errors.Is and
// errors.As.
func Wrap(err error, msg string) error { return errors.Wrap(err, msg) }

// Wrapf is the formatted version of Wrap.
func Wrapf(err error, tmpl string, args ...any) error { return errors.Wrapf(err, tmpl, args...) }

// Is returns true if the error is one of the target errors, (or one
// of it's constituent (wrapped) errors is a target error.
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if err == nil && target != nil {
			continue
		}
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// As is a wrapper around errors.As to allow ers to be a drop in
// replacement for errors.
func As(err error, target any) bool { return errors.As(err, target) }

// When returns the error IF the conditional is true, and returns nil
// otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Ok returns true when the error is nil, and false otherwise. It
// should always be inlined, and mostly exists for clarity at call
// sites in bool/Ok check relevant contexts.
func Ok(err error) bool { return err == nil }

// IsError returns true when the error is non-nil. Provides the
// inverse of Ok().
func IsError(err error) bool { return err != nil }
