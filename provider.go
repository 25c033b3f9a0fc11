// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"net/http"
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/gogama/apix/stub"
	"github.com/gogama/apix/target"
)

// An EndpointFunc builds the resolved Endpoint for a target. It runs
// once per dispatch, before the stub decision and before the request
// is materialized. It must not return nil.
type EndpointFunc func(t target.Target) *target.Endpoint

// A RequestFunc materializes the transport-level request for an
// endpoint and hands it to next. It is the request-customization seam
// of the dispatch pipeline: implementations may rewrite the request,
// defer to another goroutine, or perform asynchronous work (token
// refresh, request signing) before invoking next.
//
// next must be invoked exactly once, with either a request or an
// error. Passing an error concludes the dispatch with a failure.
type RequestFunc func(e *target.Endpoint, next func(req *http.Request, err error))

// DefaultEndpoint is the endpoint hook used by a provider whose
// Endpoints field is nil. It joins the target's base URL and path and
// builds a sample producer that replies 200 with the target's sample
// data.
func DefaultEndpoint(t target.Target) *target.Endpoint {
	return target.New(target.JoinURL(t.BaseURL, t.Path), t.Method, t.Parameters, func() target.Sample {
		return target.Sample{StatusCode: http.StatusOK, Body: t.SampleData}
	})
}

// DefaultRequest is the request hook used by a provider whose
// Requests field is nil. It synchronously materializes the request
// directly from the endpoint and passes it on.
func DefaultRequest(e *target.Endpoint, next func(req *http.Request, err error)) {
	next(e.Request())
}

var wallClock = clock.New()

// A Provider dispatches targets: it resolves a target to an endpoint,
// materializes a request, and either sends it over a transport or
// synthesizes a stubbed result, notifying plugins along the way. Its
// zero value is a valid configuration that sends every dispatch over
// DefaultTransport with no stubbing and no plugins.
//
// All fields are configured at construction time and treated as
// read-only thereafter; no dispatch mutates them. A Provider is safe
// for concurrent use by multiple goroutines, and concurrent
// dispatches proceed fully independently.
type Provider struct {
	// Transport executes real network sends.
	//
	// If Transport is nil, DefaultTransport is used.
	Transport Transport

	// Endpoints builds the resolved endpoint for each dispatched
	// target.
	//
	// If Endpoints is nil, DefaultEndpoint is used.
	Endpoints EndpointFunc

	// Requests materializes the transport-level request for each
	// dispatch.
	//
	// If Requests is nil, DefaultRequest is used.
	Requests RequestFunc

	// Stubs decides, per target, whether the dispatch is sent for
	// real or stubbed.
	//
	// If Stubs is nil, stub.DefaultDecider is used and nothing is
	// stubbed.
	Stubs stub.Decider

	// Plugins observe every dispatch, in slice order. See the Plugin
	// interface for the notification contract.
	Plugins []Plugin

	// Clock schedules delayed stubs. It exists so tests can inject a
	// mock clock; leave it nil to use the wall clock.
	Clock clock.Clock
}

// Dispatch resolves r to a target and runs the dispatch pipeline,
// returning a cancellation token immediately, before the request has
// necessarily been materialized, let alone sent. The token is safe to
// cancel at any point in its lifetime.
//
// completion receives the outcome exactly once: a *Response on
// success, or an error (always a *apix.Error) on failure. It may be
// invoked on a transport or timer goroutine, or synchronously on the
// caller's goroutine when the dispatch is stubbed immediately.
//
// Dispatch panics if r does not resolve to exactly one target; a
// failed resolution is a mistake in the target declaration, not a
// runtime condition, and is never surfaced as a result.
func (p *Provider) Dispatch(r target.Resolver, completion func(resp *Response, err error)) *Token {
	if completion == nil {
		panic("apix: nil completion")
	}
	t, ok := r.ResolveTarget()
	if !ok {
		panic("apix: resolver did not yield a target")
	}

	tok := newToken()
	e := p.endpoints()(t)
	if e == nil {
		panic("apix: endpoint hook returned nil")
	}
	behavior := p.stubs().Decide(t)

	var once sync.Once
	done := func(resp *Response, err error) {
		once.Do(func() {
			if tok.Cancelled() {
				resp, err = nil, cancelledError()
			}
			notifyResult(p.Plugins, resp, err, t)
			completion(resp, err)
		})
	}

	p.requests()(e, func(req *http.Request, err error) {
		if err != nil {
			done(nil, NewError(CodeUnderlying, err))
			return
		}
		if tok.Cancelled() {
			done(nil, cancelledError())
			return
		}
		if behavior.Stubbed() {
			p.stubDispatch(t, e, req, behavior, tok, done)
		} else {
			p.sendDispatch(t, req, tok, done)
		}
	})

	return tok
}

// sendDispatch runs the real-network arm of the pipeline: prepare and
// announce the request, hand it to the transport, and wire the
// transport's in-flight handle into the token.
func (p *Provider) sendDispatch(t target.Target, req *http.Request, tok *Token, done func(*Response, error)) {
	req = prepare(p.Plugins, req, t)
	notifyRequest(p.Plugins, req, t)
	handle := p.transport().Send(req, func(resp *http.Response, body []byte, err error) {
		done(convert(resp, body, err))
	})
	tok.attach(handle)
}

// stubDispatch runs the stubbed arm of the pipeline. The request
// notification fires immediately when stubbing begins, outside any
// delay and regardless of cancellation state; the synthesized result
// is produced now or after the behavior's delay.
func (p *Provider) stubDispatch(t target.Target, e *target.Endpoint, req *http.Request, b stub.Behavior, tok *Token, done func(*Response, error)) {
	if !b.Stubbed() {
		panic("apix: stub dispatch with behavior " + b.String())
	}
	req = prepare(p.Plugins, req, t)
	notifyRequest(p.Plugins, req, t)
	fire := func() {
		// A cancelled token short-circuits before the sample producer
		// is ever consulted.
		if tok.Cancelled() {
			done(nil, cancelledError())
			return
		}
		s := e.Sample()
		if s.Err != nil {
			done(nil, NewError(CodeUnderlying, s.Err))
			return
		}
		body := s.Body
		if body == nil {
			body = []byte{}
		}
		done(&Response{StatusCode: s.StatusCode, Body: body}, nil)
	}
	if d := b.Delay(); d > 0 {
		p.clock().AfterFunc(d, fire)
	} else {
		fire()
	}
}

func (p *Provider) transport() Transport {
	if p.Transport == nil {
		return DefaultTransport
	}

	return p.Transport
}

func (p *Provider) endpoints() EndpointFunc {
	if p.Endpoints == nil {
		return DefaultEndpoint
	}

	return p.Endpoints
}

func (p *Provider) requests() RequestFunc {
	if p.Requests == nil {
		return DefaultRequest
	}

	return p.Requests
}

func (p *Provider) stubs() stub.Decider {
	if p.Stubs == nil {
		return stub.DefaultDecider
	}

	return p.Stubs
}

func (p *Provider) clock() clock.Clock {
	if p.Clock == nil {
		return wallClock
	}

	return p.Clock
}
