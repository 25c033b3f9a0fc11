// Copyright 2026 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package stub decides whether, and how, a dispatch simulates the
// network instead of sending a real request.
//
// The value type Behavior names the three options: Never (real
// network), Immediate (synthesize the sample result at once), and
// Delayed (synthesize it after a fixed duration, simulating latency).
// The interface Decider selects a Behavior per target; install one on
// a provider to control stubbing without touching call sites:
//
//	p := &apix.Provider{
//		Stubs: stub.Always(stub.Delayed(500 * time.Millisecond)),
//	}
//
// Per-target decisions are ordinary functions:
//
//	p.Stubs = stub.DeciderFunc(func(t target.Target) stub.Behavior {
//		if t.Path == "/zen" {
//			return stub.Immediate
//		}
//		return stub.Never
//	})
package stub
