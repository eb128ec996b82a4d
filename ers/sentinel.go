package ers

// ErrEmpty is returned (wrapped with the name of the container
// family) by checked accessors and removals on an empty container,
// and is the root of the panic raised by the Must* accessors.
const ErrEmpty Error = Error("container is empty")

// ErrFull is returned when adding to a fixed-capacity container that
// has no available space.
const ErrFull Error = Error("container is full")

// ErrOutOfBounds is returned for indexes outside of a container's
// extent, and for requested sizes larger than a container's maximum
// size.
const ErrOutOfBounds Error = Error("index out of bounds")

// ErrOutOfMemory is returned by allocators that cannot satisfy a
// request. Allocation failures are always recoverable: containers
// leave their contents unchanged and return the error to the caller.
const ErrOutOfMemory Error = Error("allocation failed")

// ErrUninitializedContainer is the content of the panic produced when
// you attempt to perform an operation on a nil container.
const ErrUninitializedContainer Error = Error("uninitialized container")

// ErrMalformedConfiguration indicates a configuration object that has
// failed validation.
const ErrMalformedConfiguration Error = Error("malformed configuration")

// ErrInvalidInput indicates malformed input. These errors are not
// generally retriable.
const ErrInvalidInput Error = Error("invalid input")

// ErrRecoveredPanic is at the root of any error returned by a
// function in this module that recovers from a panic.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced by the Invariant helper.
const ErrInvariantViolation Error = Error("invariant violation")

// IsInvariantViolation returns true if the argument is or resolves to
// ErrInvariantViolation.
func IsInvariantViolation(r any) bool {
	err, ok := r.(error)
	if !ok || err == nil {
		return false
	}

	return Is(err, ErrInvariantViolation)
}
