// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import "time"

// config holds the clock strategies used by a single Start, Race,
// or Detach call. Each call gets its own config, so strategies are
// never shared across invocations.
type config struct {
	// now is the strategy used to get the current time.
	// By default, time.Now is used.
	now now

	// newTimer is a factory for creating the timer channel and stop function.
	// If unset, defaultNewTimer is used.
	//
	// Tests can replace this function to control timeouts and delays.
	newTimer newTimer
}

func newConfig(opts []Option) (cfg config) {
	cfg.now = time.Now
	cfg.newTimer = defaultNewTimer

	for _, o := range opts {
		o.apply(&cfg)
	}

	return
}

// Option is a configurable option for tailoring how an operation
// observes time. Options exist primarily so that calling code and
// tests can substitute a controllable clock, such as chronon's
// FakeClock, for the standard time package.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(cfg *config) { f(cfg) }

// WithNow replaces the strategy used to obtain the current time.
// If f is nil, this option does nothing.
func WithNow(f func() time.Time) Option {
	return optionFunc(func(cfg *config) {
		if f != nil {
			cfg.now = f
		}
	})
}

// WithNewTimer replaces the strategy used to create timers. The supplied
// closure must return a channel that receives (at least) one value after
// the given duration has elapsed, together with a stop function with the
// semantics of time.Timer.Stop.
//
// If f is nil, this option does nothing.
func WithNewTimer(f func(time.Duration) (<-chan time.Time, func() bool)) Option {
	return optionFunc(func(cfg *config) {
		if f != nil {
			cfg.newTimer = f
		}
	})
}
