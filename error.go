// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// A Code classifies a dispatch failure. Every error a dispatch
// delivers through its completion callback is an *Error carrying one
// of these codes, so callers can branch on the class of failure
// without string matching.
type Code int

const (
	// CodeUnderlying indicates the transport reported an error:
	// connectivity, timeout, TLS, and so on. The transport's error is
	// available via Unwrap/Cause.
	CodeUnderlying Code = iota
	// CodeCancelled indicates the dispatch was cancelled through its
	// token before a result was delivered.
	CodeCancelled
	// CodeUnknown indicates the transport callback was malformed: it
	// reported neither a usable response-and-body pair nor an
	// explicit error.
	CodeUnknown
)

var codeNames = []string{
	"underlying",
	"cancelled",
	"unknown",
}

// String returns the name of the code.
func (c Code) String() string {
	if 0 <= c && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// An Error is a dispatch failure: a Code naming the class of failure
// and, where one exists, the wrapped cause. Error supports both
// stdlib errors.Is/As matching (via Unwrap) and pkg/errors causer
// chains (via Cause).
type Error struct {
	code  Code
	cause error
}

// NewError wraps cause in an *Error with the given code. A nil cause
// is permitted; the error then carries only its classification.
func NewError(code Code, cause error) *Error {
	return &Error{code: code, cause: cause}
}

// Code returns the failure classification.
func (e *Error) Code() Code {
	return e.code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause == nil {
		return "apix: " + e.code.String() + " error"
	}
	return "apix: " + e.code.String() + " error: " + e.cause.Error()
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns the wrapped cause, if any, for compatibility with
// pkg/errors chains.
func (e *Error) Cause() error {
	return e.cause
}

// IsCancellation indicates whether err, or any error it wraps, is a
// dispatch cancellation.
func IsCancellation(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.code == CodeCancelled
	}
	return false
}

// cancelledError is the failure delivered when a dispatch is
// cancelled through its token.
func cancelledError() *Error {
	return NewError(CodeCancelled, context.Canceled)
}
