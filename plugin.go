// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"net/http"

	"github.com/gogama/apix/target"
)

// A Plugin observes the lifecycle of every dispatch made through a
// provider. Plugins are attached to the provider at construction
// time, as an ordered list, and are treated as read-only for the
// provider's lifetime.
//
// For each dispatch, every plugin receives exactly one OnRequest
// notification followed by exactly one OnResult notification, in
// registration order, regardless of whether the dispatch went over
// the real transport, was stubbed immediately or after a delay, or
// was cancelled. Concurrent dispatches notify plugins concurrently,
// so implementations must be safe for concurrent use by multiple
// goroutines.
type Plugin interface {
	// OnRequest observes the materialized request immediately before
	// it is sent, or before its stub is scheduled. The request must
	// be treated as read-only; use the RequestPreparer capability to
	// modify outgoing requests.
	OnRequest(req *http.Request, t target.Target)

	// OnResult observes the final outcome of the dispatch, before the
	// completion callback receives it. Exactly one of resp and err is
	// non-nil.
	OnResult(resp *Response, err error, t target.Target)
}

// RequestPreparer is an optional capability a Plugin may implement to
// modify outgoing requests before they are observed and sent.
//
// If a plugin implements RequestPreparer, the provider passes the
// materialized request through Prepare before firing any OnRequest
// notification, on both the real and stubbed paths. Prepare returns
// the request to use, which may be req itself or a modified clone;
// returning nil keeps the request unchanged.
//
// Use this for cross-cutting request decoration such as
// authentication headers or request IDs; see the plugins/requestid
// and plugins/accesstoken packages.
type RequestPreparer interface {
	Prepare(req *http.Request, t target.Target) *http.Request
}

// prepare runs the request through every plugin implementing
// RequestPreparer, in registration order.
func prepare(plugins []Plugin, req *http.Request, t target.Target) *http.Request {
	for _, pl := range plugins {
		if rp, ok := pl.(RequestPreparer); ok {
			if r := rp.Prepare(req, t); r != nil {
				req = r
			}
		}
	}
	return req
}

func notifyRequest(plugins []Plugin, req *http.Request, t target.Target) {
	for _, pl := range plugins {
		pl.OnRequest(req, t)
	}
}

func notifyResult(plugins []Plugin, resp *Response, err error, t target.Target) {
	for _, pl := range plugins {
		pl.OnResult(resp, err, t)
	}
}
