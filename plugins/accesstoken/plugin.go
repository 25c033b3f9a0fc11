// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package accesstoken provides an apix plugin that sets the
// Authorization header of every outgoing request from a caller-owned
// token source.
//
//	p := &apix.Provider{
//		Plugins: []apix.Plugin{
//			accesstoken.New(func() string { return vault.Token() }),
//		},
//	}
//
// The token source is invoked once per dispatch, at request
// preparation time, so rotated credentials take effect without
// reconfiguring the provider.
package accesstoken

import (
	"net/http"

	"github.com/gogama/apix"
	"github.com/gogama/apix/target"
)

// A TokenSource returns the current access token. It must be safe for
// concurrent use by multiple goroutines.
type TokenSource func() string

// Plugin sets the Authorization header on outgoing requests.
type Plugin struct {
	source TokenSource

	// Prefix precedes the token in the Authorization header. Empty
	// means "Bearer".
	Prefix string
}

// New returns an access-token plugin with a "Bearer" prefix.
func New(source TokenSource) *Plugin {
	if source == nil {
		panic("accesstoken: nil token source")
	}
	return &Plugin{source: source}
}

// Prepare sets the Authorization header from the token source. An
// Authorization header already set by the caller is left alone, as is
// the request when the source returns an empty token.
func (p *Plugin) Prepare(req *http.Request, _ target.Target) *http.Request {
	if req.Header.Get("Authorization") != "" {
		return req
	}
	tok := p.source()
	if tok == "" {
		return req
	}
	prefix := p.Prefix
	if prefix == "" {
		prefix = "Bearer"
	}
	req.Header.Set("Authorization", prefix+" "+tok)
	return req
}

// OnRequest is a no-op; the plugin only decorates requests.
func (p *Plugin) OnRequest(_ *http.Request, _ target.Target) {}

// OnResult is a no-op; the plugin only decorates requests.
func (p *Plugin) OnResult(_ *apix.Response, _ error, _ target.Target) {}

var (
	_ apix.Plugin          = (*Plugin)(nil)
	_ apix.RequestPreparer = (*Plugin)(nil)
)
