// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "underlying", CodeUnderlying.String())
	assert.Equal(t, "cancelled", CodeCancelled.String())
	assert.Equal(t, "unknown", CodeUnknown.String())
	assert.Equal(t, "Code(99)", Code(99).String())
}

func TestError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewError(CodeUnderlying, cause)
		assert.Equal(t, CodeUnderlying, err.Code())
		assert.Equal(t, "apix: underlying error: connection reset", err.Error())
		assert.Same(t, cause, err.Unwrap())
		assert.Same(t, cause, err.Cause())
		assert.True(t, errors.Is(err, cause))
	})
	t.Run("without cause", func(t *testing.T) {
		err := NewError(CodeUnknown, nil)
		assert.Equal(t, "apix: unknown error", err.Error())
		assert.NoError(t, err.Unwrap())
	})
	t.Run("wrapped deep", func(t *testing.T) {
		cause := errors.New("root")
		err := errors.Wrap(NewError(CodeUnderlying, cause), "while dispatching")
		var e *Error
		assert.True(t, errors.As(err, &e))
		assert.Equal(t, CodeUnderlying, e.Code())
		assert.True(t, errors.Is(err, cause))
	})
}

func TestIsCancellation(t *testing.T) {
	assert.True(t, IsCancellation(cancelledError()))
	assert.True(t, IsCancellation(errors.Wrap(cancelledError(), "outer")))
	assert.False(t, IsCancellation(nil))
	assert.False(t, IsCancellation(errors.New("plain")))
	assert.False(t, IsCancellation(NewError(CodeUnderlying, context.Canceled)))
}

func TestCancelledError(t *testing.T) {
	err := cancelledError()
	assert.Equal(t, CodeCancelled, err.Code())
	assert.True(t, errors.Is(err, context.Canceled))
}
