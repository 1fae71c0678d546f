package qb

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions raised without per-call detail, following
// a sentinel-plus-typed-wrapper pattern: a plain sentinel for simple
// matching, and a richer struct when a field needs to travel with the
// error.
var (
	// ErrUnbalanced is returned when EndGroup has no matching BeginGroup, or
	// when open_groups != 0 at compile time.
	ErrUnbalanced = errors.New("qb: unbalanced group nesting")

	// ErrUnsupportedDialect is returned when an upsert is requested against
	// a dialect that does not support it (Oracle).
	ErrUnsupportedDialect = errors.New("qb: dialect does not support this operation")
)

// InvalidInputError reports an empty/whitespace string argument or a null
// value where one is disallowed.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("qb: invalid input for %s", e.Field)
}

// NewInvalidInputError returns a new InvalidInputError for the named field.
func NewInvalidInputError(field string) *InvalidInputError {
	return &InvalidInputError{Field: field}
}

// IsInvalidInput reports whether err is an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}

// ArityError reports a Values(...) row whose length does not match the
// insert's column count.
type ArityError struct {
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("qb: arity mismatch: expected %d values, got %d", e.Expected, e.Got)
}

// NewArityError returns a new ArityError.
func NewArityError(expected, got int) *ArityError {
	return &ArityError{Expected: expected, Got: got}
}

// IsArityError reports whether err is an *ArityError.
func IsArityError(err error) bool {
	var e *ArityError
	return errors.As(err, &e)
}

// InvalidStateError reports an operation called in a builder state that
// does not permit it (e.g. Values before InsertInto).
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("qb: invalid state: %s", e.Reason)
}

// NewInvalidStateError returns a new InvalidStateError.
func NewInvalidStateError(reason string) *InvalidStateError {
	return &InvalidStateError{Reason: reason}
}

// IsInvalidState reports whether err is an *InvalidStateError.
func IsInvalidState(err error) bool {
	var e *InvalidStateError
	return errors.As(err, &e)
}

// InternalInvariantError is raised defensively by the compiler when a §3
// invariant is broken despite the builder's own checks (e.g. more than one
// of insert/update/delete spec set on the same Query).
type InternalInvariantError struct {
	Detail string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("qb: internal invariant violated: %s", e.Detail)
}

// NewInternalInvariantError returns a new InternalInvariantError.
func NewInternalInvariantError(detail string) *InternalInvariantError {
	return &InternalInvariantError{Detail: detail}
}

// IsInternalInvariant reports whether err is an *InternalInvariantError.
func IsInternalInvariant(err error) bool {
	var e *InternalInvariantError
	return errors.As(err, &e)
}
