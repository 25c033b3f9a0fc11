// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"

	"github.com/gogama/apix/target"
)

// Dispatcher is the interface that wraps the basic Dispatch method.
//
// Dispatch resolves a target, runs the dispatch pipeline, delivers
// the outcome to the completion callback exactly once, and returns a
// cancellation token immediately. Provider implements the Dispatcher
// interface, and any other Dispatcher implementation must behave
// substantially the same as Provider.Dispatch.
type Dispatcher interface {
	Dispatch(r target.Resolver, completion func(resp *Response, err error)) *Token
}

// Call dispatches r on d and blocks until the completion fires,
// returning the outcome as an ordinary value/error pair. It is a
// convenience for call sites that have no use for the asynchronous
// completion style.
func Call(d Dispatcher, r target.Resolver) (*Response, error) {
	return CallContext(context.Background(), d, r)
}

// CallContext is Call with a context. If ctx is cancelled or its
// deadline expires before the dispatch concludes, the dispatch token
// is cancelled and CallContext returns the resulting cancellation
// failure once the dispatch delivers it.
func CallContext(ctx context.Context, d Dispatcher, r target.Resolver) (*Response, error) {
	type outcome struct {
		resp *Response
		err  error
	}
	ch := make(chan outcome, 1)
	tok := d.Dispatch(r, func(resp *Response, err error) {
		ch <- outcome{resp: resp, err: err}
	})
	select {
	case out := <-ch:
		return out.resp, out.err
	case <-ctx.Done():
		tok.Cancel()
		out := <-ch
		return out.resp, out.err
	}
}
