// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package code defines error code values used by the rendezvous package.
package code

import (
	"context"
	"errors"
	"fmt"
)

// A Code is an error code reported by a channel operation.
//
// The values below 100 are reserved for codes defined by this package. Callers
// may register additional codes for their own wrappers with Register.
type Code int32

func (c Code) String() string {
	if s, ok := stdError[c]; ok {
		return s
	}
	return fmt.Sprintf("error code %d", c)
}

// A Coder is a value that can report an error code value.
type Coder interface {
	Code() Code
}

// Err converts c to an error value, which is nil for code.NoError and
// otherwise an error that reports c as its Code. Under errors.Is, the result
// matches any error reporting the same code.
func (c Code) Err() error {
	if c == NoError {
		return nil
	}
	return codeError(c)
}

// Pre-defined error codes.
const (
	NoError          Code = 0 // Denotes a nil error (used by FromError)
	InvalidArgument  Code = 1 // Empty message or zero-length destination
	OutOfResources   Code = 2 // Payload growth failed, or nothing to transfer
	AllocationFailed Code = 3 // A channel could not be constructed
	Closed           Code = 4 // The channel has been closed
	Cancelled        Code = 5 // Operation cancelled (context.Canceled)
	DeadlineExceeded Code = 6 // Operation deadline exceeded (context.DeadlineExceeded)
	SystemError      Code = 7 // Errors from the operating environment
)

var stdError = map[Code]string{
	NoError:          "no error (success)",
	InvalidArgument:  "invalid argument",
	OutOfResources:   "out of resources",
	AllocationFailed: "allocation failed",
	Closed:           "channel closed",
	Cancelled:        "operation cancelled",
	DeadlineExceeded: "deadline exceeded",
	SystemError:      "system error",
}

// Register adds a new Code value with the specified message string. This
// function will panic if the proposed value is already registered or lies in
// the reserved range.
func Register(value int32, message string) Code {
	code := Code(value)
	if s, ok := stdError[code]; ok {
		panic(fmt.Sprintf("code %d is already registered for %q", code, s))
	} else if value >= 0 && value < 100 {
		panic(fmt.Sprintf("code %d is in the reserved range", code))
	}
	stdError[code] = message
	return code
}

// FromError returns a Code to categorize the specified error.
// If err == nil, it returns code.NoError.
// If err is (or wraps) a Coder, it returns the reported code value.
// If err is context.Canceled, it returns code.Cancelled.
// If err is context.DeadlineExceeded, it returns code.DeadlineExceeded.
// Otherwise it returns code.SystemError.
func FromError(err error) Code {
	if err == nil {
		return NoError
	}
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	} else if errors.Is(err, context.Canceled) {
		return Cancelled
	} else if errors.Is(err, context.DeadlineExceeded) {
		return DeadlineExceeded
	}
	return SystemError
}

type codeError Code

func (c codeError) Error() string { return Code(c).String() }
func (c codeError) Code() Code    { return Code(c) }

// Is reports whether target carries the same code as c.
func (c codeError) Is(target error) bool {
	if t, ok := target.(Coder); ok {
		return Code(c) == t.Code()
	}
	return false
}
