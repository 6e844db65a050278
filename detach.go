// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import (
	"context"
	"log/slog"
	"time"
)

// Task holds the information necessary to run one detached, fire-and-forget
// unit of work via Detach.
type Task[T any] struct {
	// Work is the unit of work to run. The work receives a background
	// context: detached work is never canceled, since the caller has
	// already moved on and nothing holds a reference to it.
	Work Work[T]

	// Delay is an optional duration to wait before the Work starts.
	// Values that are zero or negative mean "start immediately".
	Delay time.Duration

	// OnComplete is an optional callback invoked with the Work's produced
	// value when, and only when, the Work succeeds. An error returned by
	// (or a panic escaping) OnComplete is routed to OnError or the
	// default sink, exactly as a failure of the Work itself would be.
	OnComplete func(T) error

	// OnError is an optional sink for any failure of the Work or of
	// OnComplete. If unset, failures are reported to a default
	// diagnostic sink that logs via slog and never raises. Failures are
	// never silently dropped and never propagated to the original caller.
	OnError func(error)
}

// Detach schedules a Task to run on its own goroutine and returns
// immediately, before the Task's Work can have started. All outcomes of
// the detached work are observable only through the Task's callbacks:
// per invocation, exactly one of OnComplete or OnError (or the default
// sink) fires, strictly after the Work finishes, and never both.
//
// A failure of one detached invocation has no effect on the caller or on
// any other concurrent detached invocation. Callbacks run on the detached
// goroutine.
func Detach[T any](t Task[T], opts ...Option) {
	cfg := newConfig(opts)
	go t.run(cfg)
}

func (t Task[T]) run(cfg config) {
	if t.Delay > 0 {
		timeCh, _ := cfg.newTimer(t.Delay)
		<-timeCh
	}

	value, err := t.execute()
	if err == nil {
		err = t.complete(value)
	}

	if err != nil {
		t.fail(err)
	}
}

// execute runs the Work, converting an escaped panic into a *PanicError
// outcome so a detached panic cannot take down the process.
func (t Task[T]) execute() (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()

	value, err = t.Work(context.Background())
	return
}

// complete invokes OnComplete, if present, under the same panic guard
// as the Work itself.
func (t Task[T]) complete(value T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()

	if t.OnComplete != nil {
		err = t.OnComplete(value)
	}

	return
}

// fail hands the failure to OnError or the default sink, exactly once.
// A panic escaping the sink is swallowed, as there is no one left to
// report it to.
func (t Task[T]) fail(err error) {
	defer func() {
		_ = recover()
	}()

	if t.OnError != nil {
		t.OnError(err)
		return
	}

	slog.Default().Error("detached work failed", "error", err)
}
