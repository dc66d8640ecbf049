package typed

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the dispatcher.
var (
	// ErrNoMatchingSignature indicates no declared signature is reachable
	// from the argument types through legal conversions.
	ErrNoMatchingSignature = errors.New("typed: no matching signature")

	// ErrDuplicateSignature indicates two textually identical signatures in one table.
	ErrDuplicateSignature = errors.New("typed: duplicate signature")

	// ErrEmptyTable indicates a table without any signature.
	ErrEmptyTable = errors.New("typed: empty dispatch table")

	// ErrNilImpl indicates a signature declared with a nil implementation.
	ErrNilImpl = errors.New("typed: nil implementation")

	// ErrEmptyName indicates a function built without a name.
	ErrEmptyName = errors.New("typed: function name is empty")

	// ErrResultType indicates Call[T] received a result of another type.
	ErrResultType = errors.New("typed: unexpected result type")
)

// NoMatchError names the function and the offending argument types.
type NoMatchError struct {
	Function string
	Args     []string // tag names; unknown(<go type>) for unclassifiable values
}

// Error implements error.
func (e *NoMatchError) Error() string {
	return fmt.Sprintf("typed: %s: no signature matches (%s)", e.Function, strings.Join(e.Args, ", "))
}

// Unwrap exposes ErrNoMatchingSignature to errors.Is.
func (e *NoMatchError) Unwrap() error { return ErrNoMatchingSignature }
