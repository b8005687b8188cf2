package npr

import "fmt"

// ErrorKind categorizes failures raised by this package.
type ErrorKind string

const (
	// ErrLookup: an unknown gamma-matrix tag was requested.
	ErrLookup ErrorKind = "lookup"
	// ErrInvariant: a momentum-compatibility or shape invariant was violated.
	ErrInvariant ErrorKind = "invariant"
)

// Error is the structured error type returned by this package.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func newLookupError(message string) *Error {
	return &Error{Kind: ErrLookup, Message: message}
}

func newInvariantError(message string) *Error {
	return &Error{Kind: ErrInvariant, Message: message}
}
