package mhrono

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind classifies the errors mhrono returns, so callers can branch on
// errors.Is without parsing message text.
type ErrKind int

const (
	// ErrInvalidTimeComponents reports an hour/minute/second/nanosecond
	// combination that cannot form a valid time of day.
	ErrInvalidTimeComponents ErrKind = iota
	// ErrInvalidLocalDateTime reports a local datetime that does not
	// resolve to exactly one instant under ordinary construction (use
	// the gap/fold resolving constructors instead).
	ErrInvalidLocalDateTime
	// ErrDurationParse reports malformed duration grammar.
	ErrDurationParse
	// ErrFrequencyParse reports malformed frequency grammar.
	ErrFrequencyParse
	// ErrOutOfRange reports a value outside the domain a function accepts
	// (e.g. a time outside the span a CachedCalendar was built over).
	ErrOutOfRange
)

func (k ErrKind) String() string {
	switch k {
	case ErrInvalidTimeComponents:
		return "invalid time components"
	case ErrInvalidLocalDateTime:
		return "invalid local datetime"
	case ErrDurationParse:
		return "duration parse error"
	case ErrFrequencyParse:
		return "frequency parse error"
	case ErrOutOfRange:
		return "out of range"
	default:
		return "unknown error"
	}
}

// Error is the taxonomy of failures mhrono's fallible operations return.
// It wraps an underlying cause (when present) via github.com/pkg/errors so
// callers can still recover stack traces and root causes.
type Error struct {
	Kind    ErrKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap lets errors.Is/errors.As see through to the wrapped cause.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error with the same Kind, so sentinel
// comparisons can be done against a bare ErrKind-tagged error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(kind ErrKind, msg string, cause error) *Error {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &Error{Kind: kind, Message: msg, cause: cause}
}

func newErrf(kind ErrKind, cause error, format string, args ...any) *Error {
	return newErr(kind, fmt.Sprintf(format, args...), cause)
}
