// Package apperr defines the application error type and the error kinds used
// to decide how a failure is surfaced to the user.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind uint8

const (
	// Internal is an unexpected failure.
	Internal Kind = iota
	// Validation is bad user input. State is left unchanged.
	Validation
	// StorageUnavailable means the persistence layer cannot be used.
	StorageUnavailable
	// RemoteService is a failed remote completion call.
	RemoteService
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case StorageUnavailable:
		return "storage unavailable"
	case RemoteService:
		return "remote service"
	default:
		return "internal"
	}
}

// Error is an application error. Package-level values act as sentinels and
// remain matchable with errors.Is after Fmt or Wrap.
type Error struct {
	Cause   error
	Message string
	Kind    Kind
	tmpl    *Error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.tmpl != nil {
		return e.tmpl
	}

	return e
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		Kind:    e.Kind,
		tmpl:    e.root(),
	}
}

// Wrap returns a copy of the error caused by err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		Kind:    e.Kind,
		tmpl:    e.root(),
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return Internal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}
