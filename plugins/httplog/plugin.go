// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package httplog provides an apix plugin that logs every dispatched
// request and its result with structured zerolog events.
//
// Attach it to a provider:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	p := &apix.Provider{
//		Plugins: []apix.Plugin{httplog.New(logger)},
//	}
//
// Requests log at debug level; successful results at debug and failed
// results at error level. Set Body to true to include response bodies
// in result events, which is useful against stubbed providers and
// verbose against real ones.
package httplog

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gogama/apix"
	"github.com/gogama/apix/target"
)

// Plugin logs dispatch lifecycle events. It is stateless apart from
// its configuration and safe for concurrent use.
type Plugin struct {
	logger zerolog.Logger

	// Body controls whether result events include the response body.
	Body bool
}

// New returns a logging plugin writing through logger.
func New(logger zerolog.Logger) *Plugin {
	return &Plugin{logger: logger}
}

// OnRequest logs the outgoing request.
func (p *Plugin) OnRequest(req *http.Request, t target.Target) {
	p.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("path", t.Path).
		Msg("dispatching request")
}

// OnResult logs the dispatch outcome.
func (p *Plugin) OnResult(resp *apix.Response, err error, t target.Target) {
	if err != nil {
		p.logger.Error().
			Err(err).
			Str("path", t.Path).
			Bool("cancelled", apix.IsCancellation(err)).
			Msg("dispatch failed")
		return
	}
	evt := p.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(resp.Body)).
		Str("path", t.Path).
		Bool("stubbed", resp.Raw == nil)
	if p.Body {
		evt = evt.Bytes("body", resp.Body)
	}
	evt.Msg("dispatch succeeded")
}

var _ apix.Plugin = (*Plugin)(nil)
