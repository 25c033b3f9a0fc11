// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogama/apix/target"
)

type nilPreparer struct {
	stampPlugin
}

func (p *nilPreparer) Prepare(_ *http.Request, _ target.Target) *http.Request {
	return nil
}

type swapPreparer struct {
	stampPlugin
	swapped *http.Request
}

func (p *swapPreparer) Prepare(_ *http.Request, _ target.Target) *http.Request {
	return p.swapped
}

func TestPrepare(t *testing.T) {
	tgt := zenTarget()
	req, err := DefaultEndpoint(tgt).Request()
	require.NoError(t, err)

	t.Run("no plugins", func(t *testing.T) {
		assert.Same(t, req, prepare(nil, req, tgt))
	})
	t.Run("non-preparer plugins pass through", func(t *testing.T) {
		pl := newRecordPlugin(1, &recorder{})
		assert.Same(t, req, prepare([]Plugin{pl}, req, tgt))
	})
	t.Run("nil return keeps request", func(t *testing.T) {
		assert.Same(t, req, prepare([]Plugin{&nilPreparer{}}, req, tgt))
	})
	t.Run("swap replaces request", func(t *testing.T) {
		other, err := DefaultEndpoint(tgt).Request()
		require.NoError(t, err)
		got := prepare([]Plugin{&swapPreparer{swapped: other}}, req, tgt)
		assert.Same(t, other, got)
	})
	t.Run("chain in order", func(t *testing.T) {
		a := &stampPlugin{header: "X-A", value: "1"}
		b := &stampPlugin{header: "X-A", value: "2"} // later preparer wins
		got := prepare([]Plugin{a, b}, req, tgt)
		assert.Equal(t, "2", got.Header.Get("X-A"))
	})
}

func TestNotify(t *testing.T) {
	tgt := zenTarget()
	rec := &recorder{}
	pl1 := newRecordPlugin(1, rec)
	pl2 := newRecordPlugin(2, rec)
	plugins := []Plugin{pl1, pl2}

	req, err := DefaultEndpoint(tgt).Request()
	require.NoError(t, err)
	notifyRequest(plugins, req, tgt)
	assert.Equal(t, []string{"1.request", "2.request"}, rec.sequence())

	notifyResult(plugins, &Response{StatusCode: 200, Body: []byte{}}, nil, tgt)
	assert.Equal(t, []string{"1.request", "2.request", "1.result", "2.result"}, rec.sequence())
}
