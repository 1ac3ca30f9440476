// Package result_test contains tests for the result package.
package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/reactive/result"
)

func TestVariants(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name    string
		res     result.Result[int]
		wantOk  bool
		wantVal int
		wantErr error
	}{
		{
			name:    "success holds value",
			res:     result.Ok(42),
			wantOk:  true,
			wantVal: 42,
		},
		{
			name:    "success with zero value",
			res:     result.Ok(0),
			wantOk:  true,
			wantVal: 0,
		},
		{
			name:    "failure holds error",
			res:     result.Err[int](errBoom),
			wantOk:  false,
			wantErr: errBoom,
		},
		{
			name:   "failure with nil error stays failure",
			res:    result.Err[int](nil),
			wantOk: false,
		},
		{
			name:   "zero value is a failure",
			res:    result.Result[int]{},
			wantOk: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Predicates are always defined and mutually exclusive.
			assert.Equal(t, tc.wantOk, tc.res.IsOk())
			assert.Equal(t, !tc.wantOk, tc.res.IsErr())

			val, ok := tc.res.Value()
			assert.Equal(t, tc.wantOk, ok)
			if tc.wantOk {
				assert.Equal(t, tc.wantVal, val)
			} else {
				assert.Zero(t, val)
			}

			err, failed := tc.res.Err()
			assert.Equal(t, !tc.wantOk, failed)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestMatch(t *testing.T) {
	t.Run("success calls onOk only", func(t *testing.T) {
		var got int
		calledErr := false

		result.Ok(7).Match(
			func(v int) { got = v },
			func(error) { calledErr = true },
		)

		assert.Equal(t, 7, got)
		assert.False(t, calledErr)
	})

	t.Run("failure calls onErr only", func(t *testing.T) {
		errBoom := errors.New("boom")
		var got error
		calledOk := false

		result.Err[int](errBoom).Match(
			func(int) { calledOk = true },
			func(err error) { got = err },
		)

		assert.Equal(t, errBoom, got)
		assert.False(t, calledOk)
	})

	t.Run("nil callbacks are skipped", func(t *testing.T) {
		assert.NotPanics(t, func() {
			result.Ok(1).Match(nil, nil)
			result.Err[int](errors.New("boom")).Match(nil, nil)
		})
	})
}

func TestGet(t *testing.T) {
	val, err := result.Ok("hello").Get()
	require.NoError(t, err)
	assert.Equal(t, "hello", val)

	errBoom := errors.New("boom")
	val, err = result.Err[string](errBoom).Get()
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, val)
}

func TestOf(t *testing.T) {
	assert.True(t, result.Of(1, nil).IsOk())
	assert.True(t, result.Of(1, errors.New("boom")).IsErr())

	// A non-nil error wins even when a value is present.
	res := result.Of(99, errors.New("boom"))
	val, ok := res.Value()
	assert.False(t, ok)
	assert.Zero(t, val)
}

func TestString(t *testing.T) {
	assert.Equal(t, "ok(42)", result.Ok(42).String())
	assert.Equal(t, "err(boom)", result.Err[int](errors.New("boom")).String())
}
