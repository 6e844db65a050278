// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import (
	"context"
	"reflect"
)

// Work is the canonical shape of a unit of asynchronous work: it produces
// a single value or a single error. Work is passed a context.Context that
// is canceled when cooperative cancellation is requested, as by RaceCancel.
// Work that cannot be canceled is free to ignore the context.
type Work[T any] func(context.Context) (T, error)

// WorkFunc describes the various closure types that are convertible to Work.
// Calling code can convert any closure that satisfies this type via AsWork.
type WorkFunc[T any] interface {
	~func() |
		~func(context.Context) |
		~func() error |
		~func(context.Context) error |
		~func() T |
		~func(context.Context) T |
		~func() (T, error) |
		~func(context.Context) (T, error)
}

// AsWork converts a closure into a Work. This allows client code to use
// simpler closures that have no dependency on this package, including
// closures that produce no value, no error, or both.
//
// For closures that produce no value, the returned Work yields the zero
// value of T. For closures that return only an error, that error is the
// Work's failure outcome.
func AsWork[T any, F WorkFunc[T]](f F) Work[T] {
	var (
		workNoResult        = reflect.TypeOf((func())(nil))
		workContextNoResult = reflect.TypeOf((func(context.Context))(nil))

		workReturnError        = reflect.TypeOf((func() error)(nil))
		workContextReturnError = reflect.TypeOf((func(context.Context) error)(nil))

		workReturnValue        = reflect.TypeOf((func() T)(nil))
		workContextReturnValue = reflect.TypeOf((func(context.Context) T)(nil))

		workReturnValueError        = reflect.TypeOf((func() (T, error))(nil))
		workContextReturnValueError = reflect.TypeOf((func(context.Context) (T, error))(nil))
	)

	fv := reflect.ValueOf(f)
	switch {
	case fv.CanConvert(workNoResult):
		wf := fv.Convert(workNoResult).Interface().(func())
		return func(_ context.Context) (zero T, _ error) {
			wf()
			return
		}

	case fv.CanConvert(workContextNoResult):
		wf := fv.Convert(workContextNoResult).Interface().(func(context.Context))
		return func(ctx context.Context) (zero T, _ error) {
			wf(ctx)
			return
		}

	// the error shapes are checked before the value shapes so that,
	// when T is itself error, a returned error remains a failure
	// rather than becoming a produced value.
	case fv.CanConvert(workReturnError):
		wf := fv.Convert(workReturnError).Interface().(func() error)
		return func(_ context.Context) (zero T, _ error) {
			return zero, wf()
		}

	case fv.CanConvert(workContextReturnError):
		wf := fv.Convert(workContextReturnError).Interface().(func(context.Context) error)
		return func(ctx context.Context) (zero T, _ error) {
			return zero, wf(ctx)
		}

	case fv.CanConvert(workReturnValue):
		wf := fv.Convert(workReturnValue).Interface().(func() T)
		return func(_ context.Context) (T, error) {
			return wf(), nil
		}

	case fv.CanConvert(workContextReturnValue):
		wf := fv.Convert(workContextReturnValue).Interface().(func(context.Context) T)
		return func(ctx context.Context) (T, error) {
			return wf(ctx), nil
		}

	case fv.CanConvert(workReturnValueError):
		wf := fv.Convert(workReturnValueError).Interface().(func() (T, error))
		return func(_ context.Context) (T, error) {
			return wf()
		}

	default: // this is the exact signature of the Work type
		return fv.Convert(workContextReturnValueError).Interface().(func(context.Context) (T, error))
	}
}
