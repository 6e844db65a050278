// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import (
	"sync/atomic"
	"time"

	"github.com/xmidt-org/chronon"
)

// fakeTimer creates a fake, controllable newTimer closure
// from the given FakeClock.
func fakeTimer(fc *chronon.FakeClock) newTimer {
	return func(d time.Duration) (<-chan time.Time, func() bool) {
		ft := fc.NewTimer(d)
		return ft.C(), ft.Stop
	}
}

// manualTimer is a newTimer strategy whose firing is driven directly by
// the test, independent of any clock. The channel is buffered so that
// Fire never blocks and a fire that happens before the timer is handed
// to a select is still observed.
type manualTimer struct {
	ch      chan time.Time
	created atomic.Int32
	lastDur atomic.Int64
	stopped atomic.Bool
}

func newManualTimer() *manualTimer {
	return &manualTimer{
		ch: make(chan time.Time, 1),
	}
}

func (mt *manualTimer) newTimer(d time.Duration) (<-chan time.Time, func() bool) {
	mt.created.Add(1)
	mt.lastDur.Store(int64(d))
	return mt.ch, func() bool {
		mt.stopped.Store(true)
		return true
	}
}

// Fire makes the timer channel ready, as if the requested duration
// had elapsed.
func (mt *manualTimer) Fire() {
	mt.ch <- time.Time{}
}
