// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import (
	"context"
	"time"
)

// Operation is a handle to an in-flight unit of asynchronous work started
// via Start, Race, RaceCancel, or Detach. An Operation has exactly one
// terminal outcome: a value, an error, or a *PanicError if the work
// panicked. Once that outcome is recorded it never changes.
//
// The component that starts an Operation owns it. Ownership never
// transfers; the starter is responsible for eventually observing or
// abandoning the handle.
type Operation[T any] struct {
	value T
	err   error

	// done is closed after the outcome fields are set. Waiting on done
	// establishes the happens-before edge that makes reading the outcome
	// race-free.
	done chan struct{}

	// cancel requests cooperative cancellation of the work's context.
	// Canceling a context is one-shot and never reversed, which gives
	// the cancellation signal its signaled-stays-signaled invariant.
	cancel context.CancelFunc

	// now and newTimer are the clock strategies this Operation was
	// started with. WaitUntil consults them so deadline waits remain
	// controllable in tests.
	now      now
	newTimer newTimer
}

// Start begins executing work on its own goroutine and immediately returns
// a handle to it. The work receives a context that is canceled only if
// Cancel is called on the returned Operation.
//
// A panic escaping the work is recovered and recorded as a *PanicError
// outcome rather than crashing the process.
func Start[T any](work Work[T], opts ...Option) *Operation[T] {
	return startWork(work, newConfig(opts))
}

func startWork[T any](work Work[T], cfg config) *Operation[T] {
	ctx, cancel := context.WithCancel(context.Background())
	op := &Operation[T]{
		done:     make(chan struct{}),
		cancel:   cancel,
		now:      cfg.now,
		newTimer: cfg.newTimer,
	}

	go op.run(ctx, work)
	return op
}

// run drives the work to its single terminal outcome. The outcome fields
// must be fully assigned before done is closed.
func (op *Operation[T]) run(ctx context.Context, work Work[T]) {
	defer func() {
		if r := recover(); r != nil {
			op.err = &PanicError{Value: r}
		}

		close(op.done)
	}()

	op.value, op.err = work(ctx)
}

// Done returns a channel that is closed once this Operation has reached
// its terminal outcome.
func (op *Operation[T]) Done() <-chan struct{} {
	return op.done
}

// Completed reports whether this Operation has reached its terminal
// outcome, without blocking.
func (op *Operation[T]) Completed() bool {
	select {
	case <-op.done:
		return true

	default:
		return false
	}
}

// Wait blocks until this Operation completes, then returns its outcome.
// Wait may be called any number of times, from any goroutine; every call
// returns the same outcome.
func (op *Operation[T]) Wait() (T, error) {
	<-op.done
	return op.value, op.err
}

// Cancel requests cooperative cancellation of this Operation by canceling
// the context its work was started with. Cancel does not wait for the
// work to stop, and work that ignores its context simply keeps running.
// Cancel is idempotent.
func (op *Operation[T]) Cancel() {
	op.cancel()
}

// WaitUntil blocks the calling goroutine until the given absolute deadline
// at the latest, returning whether this Operation had completed by the
// time the wait ended. A deadline in the past returns immediately with
// the current completion state; a deadline too far in the future is
// clamped to the maximum expressible wait, so the call is always bounded.
//
// WaitUntil offers no cancellation; it is intended for synchronous,
// blocking call sites. Use Wait with a select over Done for anything
// fancier.
func (op *Operation[T]) WaitUntil(deadline time.Time) bool {
	remaining := remainingUntil(op.now, deadline)
	if remaining <= 0 {
		return op.Completed()
	}

	timeCh, stop := op.newTimer(remaining)
	select {
	case <-op.done:
		stop()
		return true

	case <-timeCh:
		return op.Completed()
	}
}
