// Package ers provides the error kinds shared by every container in
// the module, along with helpers for converting panics into errors
// and for raising invariant violations.
//
// Two kinds of failures are distinguished: recoverable resource
// failures (e.g. ErrOutOfMemory) which are returned as error values,
// and precondition violations (e.g. ErrEmpty for the Must* accessors,
// or ErrInvariantViolation for misuse) which are raised as panics
// whose value is an error rooted in one of the sentinels in this
// package.
package ers

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is,
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies the Is() interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}
