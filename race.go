// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import "time"

// OnTimeout is an optional notifier consulted when a raced operation does
// not finish before its deadline. The notifier receives the handle of the
// still-running (or just-finished) operation and produces the replacement
// outcome for the race. A notifier is free to block, to await the handle,
// or to abandon it.
type OnTimeout[T any] func(*Operation[T]) (T, error)

// Race runs work concurrently with a timer of duration d and returns the
// outcome of whichever finishes first. Negative durations are clamped to
// zero, which times out immediately but still lets a truly instantaneous
// operation win. If the operation and the timer finish simultaneously,
// the operation's outcome wins.
//
// On timeout with a nil onTimeout, Race fails with ErrTimeout. With a
// notifier, Race returns exactly the notifier's result, including its
// error. The operation's own failure always propagates verbatim.
//
// Race never stops the losing operation: not all work is cancellable, so
// the operation is intentionally left running and the notifier decides
// whether to await, abandon, or otherwise react to it. Use RaceCancel for
// work that observes its context.
//
// The notifier runs on the calling goroutine; there is no notion of
// resuming on a captured context.
func Race[T any](work Work[T], d time.Duration, onTimeout OnTimeout[T], opts ...Option) (T, error) {
	return race(work, d, onTimeout, false, newConfig(opts))
}

// RaceCancel behaves exactly as Race, except that the timeout branch
// first requests cooperative cancellation of the operation's context
// before consulting the notifier or failing with ErrTimeout.
//
// Cancellation is requested, not enforced: RaceCancel does not wait for
// the operation to actually stop, and work that ignores its context may
// still be running when RaceCancel returns. A fresh context is created
// per invocation and is never reused.
func RaceCancel[T any](work Work[T], d time.Duration, onTimeout OnTimeout[T], opts ...Option) (T, error) {
	return race(work, d, onTimeout, true, newConfig(opts))
}

func race[T any](work Work[T], d time.Duration, onTimeout OnTimeout[T], cancelOnTimeout bool, cfg config) (T, error) {
	if d < 0 {
		d = 0
	}

	op := startWork(work, cfg)
	timeCh, stop := cfg.newTimer(d)
	select {
	case <-op.done:
		stop()
		return op.value, op.err

	case <-timeCh:
		// the operation may have finished in the same instant the timer
		// fired. its outcome takes precedence over the timeout.
		select {
		case <-op.done:
			return op.value, op.err

		default:
		}

		if cancelOnTimeout {
			op.Cancel()
		}

		if onTimeout == nil {
			var zero T
			return zero, ErrTimeout
		}

		return onTimeout(op)
	}
}
