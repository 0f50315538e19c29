// Package errors provides sentinel errors that may carry a cause.
//
// Sentinels are declared once by status packages and wrapped at the point
// of failure, so callers may test with Is against the sentinel while the
// underlying cause remains reachable through Unwrap.
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New sentinel error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is a message with an optional nested cause.
type Error struct {
	msg    string
	err    error
	parent *Error
}

// Error message, followed by the cause when there is one
func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap returns a copy of the sentinel holding err as its cause.
//
// The sentinel itself is left untouched, so it may be wrapped concurrently.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, parent: e.root()}
}

// root sentinel this error was wrapped from
func (e *Error) root() *Error {
	if e.parent != nil {
		return e.parent
	}
	return e
}

// Wrapf wraps a formatted cause.
func (e *Error) Wrapf(format string, args ...interface{}) *Error {
	return e.Wrap(fmt.Errorf(format, args...))
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	if e == target {
		return true
	}
	if e.parent != nil && e.parent == target {
		return true
	}
	return false
}

// As is a shortcut to the standard library errors.As
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is is a shortcut to the standard library errors.Is
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
