// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gogama/apix/target"
)

// fakeTransport is a controllable Transport for pipeline tests. The
// zero value replies 200 "ok" synchronously from Send.
type fakeTransport struct {
	mu        sync.Mutex
	reqs      []*http.Request
	cancelled int
	// respond, if set, replaces the default synchronous 200 reply. It
	// receives the callback and decides when and with what to invoke
	// it.
	respond func(req *http.Request, callback func(resp *http.Response, body []byte, err error))
}

func (ft *fakeTransport) Send(req *http.Request, callback func(resp *http.Response, body []byte, err error)) Cancellable {
	ft.mu.Lock()
	ft.reqs = append(ft.reqs, req)
	respond := ft.respond
	ft.mu.Unlock()
	if respond != nil {
		respond(req, callback)
	} else {
		callback(&http.Response{StatusCode: 200}, []byte("ok"), nil)
	}
	return CancelFunc(func() {
		ft.mu.Lock()
		ft.cancelled++
		ft.mu.Unlock()
	})
}

func (ft *fakeTransport) requests() []*http.Request {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return append([]*http.Request(nil), ft.reqs...)
}

func (ft *fakeTransport) cancels() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return ft.cancelled
}

// recordPlugin records the notification sequence it observes. Several
// recordPlugins may share one recorder to capture cross-plugin
// ordering.
type recorder struct {
	mu  sync.Mutex
	seq []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	r.seq = append(r.seq, s)
	r.mu.Unlock()
}

func (r *recorder) sequence() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.seq...)
}

type recordPlugin struct {
	seq int
	rec *recorder

	mu    sync.Mutex
	reqs  []*http.Request
	resps []*Response
	errs  []error
}

func newRecordPlugin(seq int, rec *recorder) *recordPlugin {
	return &recordPlugin{seq: seq, rec: rec}
}

func (p *recordPlugin) OnRequest(req *http.Request, _ target.Target) {
	p.rec.add(fmt.Sprintf("%d.request", p.seq))
	p.mu.Lock()
	p.reqs = append(p.reqs, req)
	p.mu.Unlock()
}

func (p *recordPlugin) OnResult(resp *Response, err error, _ target.Target) {
	p.rec.add(fmt.Sprintf("%d.result", p.seq))
	p.mu.Lock()
	p.resps = append(p.resps, resp)
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}

func (p *recordPlugin) requests() []*http.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*http.Request(nil), p.reqs...)
}

func (p *recordPlugin) results() ([]*Response, []error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Response(nil), p.resps...), append([]error(nil), p.errs...)
}

// zenTarget is the canonical test target.
func zenTarget() target.Target {
	return target.Target{
		BaseURL:    "https://api.example.com",
		Path:       "/zen",
		Method:     target.GET,
		SampleData: []byte("Don't panic"),
	}
}

// countingSampleEndpoint returns an endpoint hook whose sample
// producer increments *n each time it is consulted.
func countingSampleEndpoint(n *int, s target.Sample) EndpointFunc {
	return func(t target.Target) *target.Endpoint {
		return target.New(target.JoinURL(t.BaseURL, t.Path), t.Method, t.Parameters, func() target.Sample {
			*n++
			return s
		})
	}
}

// unresolvable is a Resolver that never yields a target.
type unresolvable struct{}

func (unresolvable) ResolveTarget() (target.Target, bool) {
	return target.Target{}, false
}
