// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import "time"

// now is a closure used to produce the current time.
// By default, time.Now is used.
type now func() time.Time

// newTimer is a factory closure for a timer channel and the associated Stop function.
type newTimer func(time.Duration) (<-chan time.Time, func() bool)

// defaultNewTimer is the default newTimer closure used to produce
// a timer channel and stop function.
func defaultNewTimer(d time.Duration) (<-chan time.Time, func() bool) {
	t := time.NewTimer(d)
	return t.C, t.Stop
}

// remainingUntil computes the duration left before an absolute deadline.
// A deadline in the past yields zero. A deadline too far in the future
// saturates at the maximum time.Duration, so the resulting wait is always
// bounded. time.Time.Sub already saturates on overflow, which means only
// the negative side needs clamping here.
func remainingUntil(n now, deadline time.Time) time.Duration {
	remaining := deadline.Sub(n())
	if remaining < 0 {
		return 0
	}

	return remaining
}
