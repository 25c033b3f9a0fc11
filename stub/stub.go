// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package stub

import (
	"fmt"
	"time"

	"github.com/gogama/apix/target"
)

type mode int

const (
	never mode = iota
	immediate
	delayed
)

// A Behavior directs how a single dispatch simulates, or does not
// simulate, the network. It is one of three variants: Never (send for
// real), Immediate (synthesize the result at once), or Delayed
// (synthesize the result after a fixed duration). A Behavior is
// chosen once per dispatch and never changes mid-flight.
type Behavior struct {
	mode  mode
	delay time.Duration
}

// Never is the behavior that sends the request over the real
// transport. It is the zero value of Behavior.
var Never = Behavior{mode: never}

// Immediate is the behavior that synthesizes the result from the
// endpoint's sample producer as soon as the request is materialized,
// with no artificial latency.
var Immediate = Behavior{mode: immediate}

// Delayed returns the behavior that synthesizes the result from the
// endpoint's sample producer after d has elapsed. A non-positive d is
// equivalent to Immediate.
func Delayed(d time.Duration) Behavior {
	if d <= 0 {
		return Immediate
	}
	return Behavior{mode: delayed, delay: d}
}

// Stubbed indicates whether the behavior synthesizes the result
// instead of sending over the real transport.
func (b Behavior) Stubbed() bool {
	return b.mode != never
}

// Delay returns the artificial latency of a Delayed behavior, and
// zero for Never and Immediate.
func (b Behavior) Delay() time.Duration {
	return b.delay
}

// String returns a readable name for the behavior.
func (b Behavior) String() string {
	switch b.mode {
	case never:
		return "Never"
	case immediate:
		return "Immediate"
	default:
		return fmt.Sprintf("Delayed(%s)", b.delay)
	}
}

// A Decider selects the stub behavior for a target. The provider
// consults its Decider exactly once per dispatch, before the request
// is materialized.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
type Decider interface {
	Decide(t target.Target) Behavior
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as stub deciders. Every DeciderFunc must be safe for
// concurrent use by multiple goroutines.
type DeciderFunc func(t target.Target) Behavior

// Decide returns f(t).
func (f DeciderFunc) Decide(t target.Target) Behavior {
	return f(t)
}

// DefaultDecider never stubs: every dispatch goes over the real
// transport. It is the decider used by a zero-value provider.
var DefaultDecider Decider = Always(Never)

// Always constructs a decider that selects the same behavior for
// every target. Always(Never), Always(Immediate), and
// Always(Delayed(d)) cover the three stock stubbing setups: real
// network, instant stubs, and stubs with simulated latency.
func Always(b Behavior) DeciderFunc {
	return func(_ target.Target) Behavior {
		return b
	}
}
