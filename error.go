// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package rendezvous

import (
	"fmt"

	"github.com/creachadair/rendezvous/code"
)

// Error is the concrete type of errors reported by channel operations.
type Error struct {
	code  code.Code
	msg   string
	cause error // the underlying failure, e.g., from an allocator
}

// Error renders e to a human-readable string for the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.msg)
}

// Unwrap returns the underlying cause of e, if any.
func (e *Error) Unwrap() error { return e.cause }

// Code reports the error code of e. It satisfies code.Coder.
func (e *Error) Code() code.Code { return e.code }

// Is reports whether target carries the same error code as e. This allows an
// *Error to match the sentinel values below with errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(code.Coder); ok {
		return e.code == t.Code()
	}
	return false
}

// Sentinel errors for use with errors.Is.
var (
	// ErrInvalidArgument is reported for an empty message or a zero-length
	// receive buffer. No shared state is touched.
	ErrInvalidArgument = code.InvalidArgument.Err()

	// ErrOutOfResources is reported when the payload buffer could not grow to
	// hold a message, or when a receive found nothing to transfer. The
	// channel remains usable.
	ErrOutOfResources = code.OutOfResources.Err()

	// ErrAllocationFailed is reported by Open when the channel could not be
	// constructed.
	ErrAllocationFailed = code.AllocationFailed.Err()

	// ErrClosed is reported by operations that begin after Close.
	ErrClosed = code.Closed.Err()
)

func errorf(c code.Code, cause error, msg string, args ...any) error {
	return &Error{code: c, msg: fmt.Sprintf(msg, args...), cause: cause}
}
