// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by Race and RaceCancel when the deadline elapsed
// before the operation completed and no timeout notifier was supplied.
//
// ErrTimeout is distinct from any error the operation itself produces:
// an operation that fails before the deadline propagates its own error,
// never this one.
var ErrTimeout = errors.New("agon: the operation did not complete within the allotted time")

// PanicError is the outcome recorded for an operation or callback that
// panicked rather than returning. Capturing panics this way keeps one
// activity's failure from taking down unrelated activities or, for
// detached work, the whole process.
type PanicError struct {
	// Value is the value recovered from the panic.
	Value any
}

func (pe *PanicError) Error() string {
	return fmt.Sprintf("agon: recovered from panic: %v", pe.Value)
}
