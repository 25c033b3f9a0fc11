// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"io/ioutil"
	"net/http"

	"golang.org/x/net/http2"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A Transport executes real network sends on behalf of a provider.
//
// Send transmits the request and, when the attempt concludes, invokes
// callback exactly once from a transport-owned goroutine with the
// response, the fully buffered body, and the error. Any of the three
// may be absent: a connectivity failure yields only an error, a
// body-read failure yields a response and an error, and a clean
// attempt yields a response and body. The provider's result
// conversion resolves every combination deterministically.
//
// Nothing may move on the network before Send is invoked: the
// provider relies on sends being lazy to preserve the window in which
// a dispatch can be cancelled before any work begins. The returned
// Cancellable aborts the in-flight send; after cancellation the
// callback must still be invoked (with the transport's cancellation
// error) so the dispatch can conclude.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Transport interface {
	Send(req *http.Request, callback func(resp *http.Response, body []byte, err error)) Cancellable
}

// DefaultTransport is the transport used by a provider whose
// Transport field is nil. It sends over http.DefaultClient with no
// default headers.
var DefaultTransport Transport = &NetTransport{}

// NetTransport is a Transport over the standard net/http stack. Its
// zero value is a valid configuration that sends over
// http.DefaultClient.
//
// NetTransport buffers the entire response body before invoking the
// callback, so callbacks never deal in streams. It should be reused
// across dispatches: the underlying HTTPDoer typically caches TCP
// connections.
type NetTransport struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard
	// net/http package is used.
	HTTPDoer HTTPDoer

	// Header contains default header fields applied to every outgoing
	// request. A default header never overrides a field already
	// present on the request.
	Header http.Header
}

// Send implements Transport. The send runs on a new goroutine; the
// returned Cancellable cancels the request's context, aborting the
// connection or body read wherever it currently is.
func (t *NetTransport) Send(req *http.Request, callback func(resp *http.Response, body []byte, err error)) Cancellable {
	ctx, cancel := context.WithCancel(req.Context())
	req = req.WithContext(ctx)
	for k, vs := range t.Header {
		if req.Header.Get(k) == "" {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}
	go func() {
		defer cancel()
		resp, err := t.doer().Do(req)
		if err != nil {
			callback(nil, nil, err)
			return
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			callback(resp, nil, err)
			return
		}
		callback(resp, body, nil)
	}()
	return CancelFunc(cancel)
}

// CloseIdleConnections invokes the same method on the transport's
// underlying HTTPDoer, if it has one, and does nothing otherwise.
func (t *NetTransport) CloseIdleConnections() {
	if ic, ok := t.doer().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (t *NetTransport) doer() HTTPDoer {
	if t.HTTPDoer == nil {
		return http.DefaultClient
	}

	return t.HTTPDoer
}

// IdleCloser is the interface that wraps the basic
// CloseIdleConnections method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections which were previously established but are now
// sitting idle in a "keep-alive" state. It does not interrupt any
// connections currently in use.
type IdleCloser interface {
	CloseIdleConnections()
}

// EnableHTTP2 configures an http.Transport to speak HTTP/2 where the
// server supports it, using the golang.org/x/net/http2 package. Use
// it when building a custom HTTPDoer for a NetTransport:
//
//	tr := &http.Transport{TLSClientConfig: cfg}
//	if err := apix.EnableHTTP2(tr); err != nil {
//		...
//	}
//	t := &apix.NetTransport{HTTPDoer: &http.Client{Transport: tr}}
func EnableHTTP2(t *http.Transport) error {
	return http2.ConfigureTransport(t)
}
