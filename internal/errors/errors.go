// Package errors is the single import for error handling: matching comes from the
// standard library, wrapping from pkg/errors so that every wrapped error carries a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel error. It carries no stack; wrap it at the point of return.
func New(text string) error {
	return stderrors.New(text)
}

// Errorf formats a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Is reports whether any error in err's tree matches target. Domain errors match on their code.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and a stack trace. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err without changing its message.
// Handlers use it before returning a use case error to the error middleware.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
