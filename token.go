// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"sync"
)

// A Cancellable is a handle to an in-flight operation that can be
// cancelled. Provider.Dispatch returns one (a *Token), and the
// Transport interface produces one per real send.
//
// Cancel must be safe to call from any goroutine, at any point in the
// operation's lifetime, and must be idempotent.
type Cancellable interface {
	Cancel()
}

// The CancelFunc type is an adapter to allow the use of ordinary
// functions as Cancellables. If f is a function with appropriate
// signature, CancelFunc(f) is a Cancellable that calls f.
type CancelFunc func()

// Cancel calls f().
func (f CancelFunc) Cancel() {
	f()
}

type tokenState int

const (
	// tokenUnstarted: the dispatch exists but no inner cancellable
	// (transport handle) has been attached yet.
	tokenUnstarted tokenState = iota
	// tokenStarted: an inner cancellable is attached.
	tokenStarted
	// tokenCancelled: terminal.
	tokenCancelled
)

// A Token is the caller-held handle to one dispatch. It is returned
// by Provider.Dispatch before any of the dispatch work has
// necessarily run, so it is valid to cancel a Token at any point in
// its lifetime, including before the underlying request exists.
//
// A Token is a small state machine, unstarted → started → cancelled,
// guarded for concurrent use: the caller may cancel from one
// goroutine while the transport or a stub timer completes on another.
// Cancelling an unstarted token records the cancellation and
// propagates it to the inner handle when one is attached; cancelling
// a started token cancels the inner handle immediately; cancelling
// twice, or cancelling after the result was delivered, is a no-op.
//
// A Token carries no background work of its own. Dropping it without
// cancelling simply lets the dispatch run to completion.
type Token struct {
	mu    sync.Mutex
	state tokenState
	inner Cancellable
}

func newToken() *Token {
	return &Token{}
}

// Cancel cancels the dispatch. If the real send or stub has not yet
// been scheduled, the dispatch short-circuits to a cancellation
// failure instead of starting; if it has, the in-flight work is
// cancelled and the completion callback receives a cancellation
// failure. Cancel is idempotent.
func (t *Token) Cancel() {
	t.mu.Lock()
	if t.state == tokenCancelled {
		t.mu.Unlock()
		return
	}
	inner := t.inner
	t.state = tokenCancelled
	t.inner = nil
	t.mu.Unlock()
	if inner != nil {
		inner.Cancel()
	}
}

// Cancelled indicates whether Cancel has been called on the token.
func (t *Token) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == tokenCancelled
}

// attach wires in the inner cancellable once the real transport send
// exists. If the token was already cancelled, the cancellation that
// raced ahead of setup is propagated to inner immediately.
func (t *Token) attach(inner Cancellable) {
	t.mu.Lock()
	if t.state == tokenCancelled {
		t.mu.Unlock()
		inner.Cancel()
		return
	}
	t.state = tokenStarted
	t.inner = inner
	t.mu.Unlock()
}
