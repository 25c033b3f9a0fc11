// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package apix dispatches abstract request targets over a pluggable
pipeline: endpoint construction, request materialization, real network
send or stubbed response, out-of-band cancellation, and plugin
observation of every request and result.

Create a Provider and dispatch targets to begin making requests.

	p := &apix.Provider{}
	t := target.Target{
		BaseURL: "https://api.github.com",
		Path:    "/zen",
		Method:  target.GET,
	}
	tok := p.Dispatch(t, func(resp *apix.Response, err error) {
		...
	})

Dispatch returns a cancellation token immediately, before the request
has been built or sent. Cancel it at any time:

	tok.Cancel()

Call sites that prefer blocking semantics can use the Call and
CallContext conveniences:

	resp, err := apix.CallContext(ctx, p, t)

For control over stubbing, install a decider from package stub. A
stubbed dispatch never touches the network; it synthesizes its result
from the endpoint's sample producer, either immediately or after a
simulated latency:

	p := &apix.Provider{
		Stubs: stub.Always(stub.Delayed(500 * time.Millisecond)),
	}

For control over how requests are sent and received, use a custom
Transport, or configure the default NetTransport:

	p := &apix.Provider{
		Transport: &apix.NetTransport{
			HTTPDoer: &http.Client{},
			Header:   http.Header{"User-Agent": {"apix-example"}},
		},
	}

To observe or decorate every dispatch, attach plugins. A plugin
receives exactly one OnRequest and one OnResult notification per
dispatch, in registration order, on every path: real send, immediate
stub, delayed stub, or cancellation. Plugins implementing the optional
RequestPreparer capability may also rewrite outgoing requests; see the
plugins/httplog, plugins/requestid, and plugins/accesstoken packages
for ready-made implementations.

	p := &apix.Provider{
		Plugins: []apix.Plugin{
			httplog.New(logger),
			requestid.New(),
		},
	}

Package apix is deliberately small: retry policies, response caching,
request deduplication, and body deserialization are layered on top by
callers, not built into the dispatch core.
*/
package apix
