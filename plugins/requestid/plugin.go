// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package requestid provides an apix plugin that stamps a fresh UUID
// into a header of every outgoing request, so requests can be
// correlated across client logs and server logs.
//
//	p := &apix.Provider{
//		Plugins: []apix.Plugin{requestid.New()},
//	}
//
// The plugin uses the Prepare stage, so the stamped header is visible
// to every later plugin's OnRequest notification and to the wire.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/gogama/apix"
	"github.com/gogama/apix/target"
)

// DefaultHeader is the header stamped when no custom header name is
// configured.
const DefaultHeader = "X-Request-Id"

// Plugin stamps a UUID header on outgoing requests. It is safe for
// concurrent use.
type Plugin struct {
	// Header is the name of the stamped header. Empty means
	// DefaultHeader.
	Header string
}

// New returns a request-ID plugin stamping DefaultHeader.
func New() *Plugin {
	return &Plugin{}
}

// Prepare stamps a fresh UUID into the configured header. A header
// already set by the caller is left alone.
func (p *Plugin) Prepare(req *http.Request, _ target.Target) *http.Request {
	h := p.Header
	if h == "" {
		h = DefaultHeader
	}
	if req.Header.Get(h) == "" {
		req.Header.Set(h, uuid.NewString())
	}
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
