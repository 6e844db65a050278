// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package agon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type WorkTestSuite struct {
	suite.Suite

	called  bool
	testCtx context.Context
}

func (suite *WorkTestSuite) SetupSuite() {
	type contextKey struct{}
	suite.testCtx = context.WithValue(context.Background(), contextKey{}, "value")
}

func (suite *WorkTestSuite) SetupTest() {
	suite.called = false
}

func (suite *WorkTestSuite) SetupSubTest() {
	suite.called = false
}

func (suite *WorkTestSuite) assertCtx(ctx context.Context) {
	suite.Same(suite.testCtx, ctx)
}

func (suite *WorkTestSuite) assertWork(w Work[int], expectedValue int, expectedErr error) {
	suite.Require().NotNil(w)
	actualValue, actualErr := w(suite.testCtx)
	suite.Equal(expectedValue, actualValue)
	suite.ErrorIs(expectedErr, actualErr)
	suite.True(suite.called)
}

// testAsWorkNoResult verifies func() and func(context.Context)
func (suite *WorkTestSuite) testAsWorkNoResult() {
	suite.Run("WithoutContext", func() {
		wf := func() { suite.called = true }
		suite.assertWork(AsWork[int](wf), 0, nil)
	})

	suite.Run("WithContext", func() {
		wf := func(ctx context.Context) { suite.assertCtx(ctx); suite.called = true }
		suite.assertWork(AsWork[int](wf), 0, nil)
	})
}

// testAsWorkReturnError verifies func() error and func(context.Context) error
func (suite *WorkTestSuite) testAsWorkReturnError() {
	suite.Run("WithoutContext", func() {
		suite.Run("Nil", func() {
			wf := func() error { suite.called = true; return nil }
			suite.assertWork(AsWork[int](wf), 0, nil)
		})

		suite.Run("NonNil", func() {
			err := errors.New("expected")
			wf := func() error { suite.called = true; return err }
			suite.assertWork(AsWork[int](wf), 0, err)
		})
	})

	suite.Run("WithContext", func() {
		suite.Run("Nil", func() {
			wf := func(ctx context.Context) error { suite.assertCtx(ctx); suite.called = true; return nil }
			suite.assertWork(AsWork[int](wf), 0, nil)
		})

		suite.Run("NonNil", func() {
			err := errors.New("expected")
			wf := func(ctx context.Context) error { suite.assertCtx(ctx); suite.called = true; return err }
			suite.assertWork(AsWork[int](wf), 0, err)
		})
	})
}

// testAsWorkReturnValue verifies func() T and func(context.Context) T
func (suite *WorkTestSuite) testAsWorkReturnValue() {
	suite.Run("WithoutContext", func() {
		wf := func() int { suite.called = true; return 123 }
		suite.assertWork(AsWork[int](wf), 123, nil)
	})

	suite.Run("WithContext", func() {
		wf := func(ctx context.Context) int { suite.assertCtx(ctx); suite.called = true; return 123 }
		suite.assertWork(AsWork[int](wf), 123, nil)
	})
}

// testAsWorkReturnValueError verifies func() (T, error) and func(context.Context) (T, error).
// there's no value translation in the production code, so these tests are
// much simpler.
func (suite *WorkTestSuite) testAsWorkReturnValueError() {
	suite.Run("WithoutContext", func() {
		err := errors.New("expected")
		wf := func() (int, error) { suite.called = true; return 123, err }
		suite.assertWork(AsWork[int](wf), 123, err)
	})

	suite.Run("WithContext", func() {
		err := errors.New("expected")
		wf := func(ctx context.Context) (int, error) {
			suite.assertCtx(ctx)
			suite.called = true
			return 123, err
		}

		suite.assertWork(AsWork[int](wf), 123, err)
	})
}

func (suite *WorkTestSuite) TestAsWork() {
	suite.Run("NoResult", suite.testAsWorkNoResult)
	suite.Run("ReturnError", suite.testAsWorkReturnError)
	suite.Run("ReturnValue", suite.testAsWorkReturnValue)
	suite.Run("ReturnValueError", suite.testAsWorkReturnValueError)
}

func TestWork(t *testing.T) {
	suite.Run(t, new(WorkTestSuite))
}
