// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wcerr defines the error codes shared by every wcwallet
// subsystem.  The numeric values and their ordering are part of the
// public interface and must not be reordered.
package wcerr

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants identify the specific kind of Error.  Success is
// represented by a nil error rather than a code.
const (
	// ErrInvalidArgument indicates a precondition violation: a parse
	// failure, a nil required value, or misuse of a facade handle.
	ErrInvalidArgument ErrorCode = iota

	// ErrInsufficientCapacity indicates a caller-provided buffer was too
	// small.  The required capacity is reported alongside the error.
	ErrInsufficientCapacity

	// ErrOutOfMemory indicates an allocation failure.  It is defined for
	// interface stability with other wallet-core implementations and is
	// never produced by this library.
	ErrOutOfMemory

	// ErrOverflow indicates a numeric value outside the representable
	// range.
	ErrOverflow

	// ErrDbClosed indicates an operation against a storage handle whose
	// database has already been released.
	ErrDbClosed

	// ErrDbOpenFailed indicates the database backend could not be opened.
	ErrDbOpenFailed

	// ErrDbCorrupt indicates the database returned records that cannot be
	// interpreted, such as acceptance times outside the representable
	// range.
	ErrDbCorrupt

	// ErrLogOpenFailed indicates the recovery log could not be opened.
	ErrLogOpenFailed

	// ErrNotConnected indicates a server operation before a connection
	// was established or after disconnect.
	ErrNotConnected

	// ErrConnectFailed indicates the server connector failed to
	// establish a connection.
	ErrConnectFailed

	// ErrHeadless indicates a user-interface operation before startup or
	// after shutdown.
	ErrHeadless

	// ErrStartupFailed indicates the user interface failed to start.
	ErrStartupFailed

	// ErrUnknown is reserved.  Well-formed code never raises it.
	ErrUnknown
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidArgument:      "ErrInvalidArgument",
	ErrInsufficientCapacity: "ErrInsufficientCapacity",
	ErrOutOfMemory:          "ErrOutOfMemory",
	ErrOverflow:             "ErrOverflow",
	ErrDbClosed:             "ErrDbClosed",
	ErrDbOpenFailed:         "ErrDbOpenFailed",
	ErrDbCorrupt:            "ErrDbCorrupt",
	ErrLogOpenFailed:        "ErrLogOpenFailed",
	ErrNotConnected:         "ErrNotConnected",
	ErrConnectFailed:        "ErrConnectFailed",
	ErrHeadless:             "ErrHeadless",
	ErrStartupFailed:        "ErrStartupFailed",
	ErrUnknown:              "ErrUnknown",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error provides a single type for errors that can happen during wallet
// operation.  Facade errors originating from a host-provided backend carry
// the backend's error in the Err field.
type Error struct {
	Code        ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// New creates an Error given a set of arguments.
func New(c ErrorCode, desc string, err error) Error {
	return Error{Code: c, Description: desc, Err: err}
}

// IsCode returns whether err is, or wraps, an Error with the given code.
func IsCode(err error, c ErrorCode) bool {
	var e Error
	return errors.As(err, &e) && e.Code == c
}
