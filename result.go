// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"net/http"

	"github.com/pkg/errors"
)

// A Response is the successful outcome of a dispatch: the status code
// and fully buffered body of the HTTP response, real or stubbed.
type Response struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the complete, pre-buffered response body. It may have
	// zero length but is never nil on a Response produced by a
	// dispatch.
	Body []byte

	// Raw is the transport-level response the body was read from. It
	// is nil for stubbed dispatches, which never touch the transport.
	// Its body stream has already been consumed and closed.
	Raw *http.Response
}

var errMalformedCallback = errors.New("transport callback carried neither response nor error")

// convert maps the transport callback triple to the dispatch outcome.
//
// A transport error always wins and produces a failure, even when a
// response or body accompanies it. Otherwise a present
// response-and-body pair produces a success, and anything else is a
// malformed callback producing a CodeUnknown failure.
func convert(resp *http.Response, body []byte, err error) (*Response, error) {
	switch {
	case err != nil:
		return nil, NewError(CodeUnderlying, err)
	case resp != nil && body != nil:
		return &Response{StatusCode: resp.StatusCode, Body: body, Raw: resp}, nil
	default:
		return nil, NewError(CodeUnknown, errMalformedCallback)
	}
}
