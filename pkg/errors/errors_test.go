// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "pattern_error",
			code:    errors.ErrPattern,
			message: "invalid pattern",
			wantStr: "[PATTERN] invalid pattern",
		},
		{
			name:    "invalid_state_error",
			code:    errors.ErrInvalidState,
			message: "scan already started",
			wantStr: "[INVALID_STATE] scan already started",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrConfigValid, "target %d has unknown kind %q", 2, "link")
	assert.Equal(t, `target 2 has unknown kind "link"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(fs.ErrPermission, errors.ErrListing, "cannot list %s", "/root")
		assert.Equal(t, "[LISTING] cannot list /root: permission denied", err.Error())
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrListing, "cannot list").
		WithDetail("path", "/test/path").
		WithDetail("kind", "dir")

	assert.Equal(t, "/test/path", err.Details["path"])
	assert.Equal(t, "dir", err.Details["kind"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrHandler, "error 1")
	err2 := errors.New(errors.ErrHandler, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		assert.True(t, err1.Is(err2))
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		assert.False(t, err1.Is(err3))
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		assert.True(t, stderrors.Is(err1, err2))
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrPattern, "bad"),
			code:     errors.ErrPattern,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrPattern, "bad"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(fs.ErrNotExist, errors.ErrListing, "missing"),
			code:     errors.ErrListing,
			expected: true,
		},
		{
			name:     "non_sweep_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrListing,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrListing,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrHandler, errors.GetErrorCode(errors.New(errors.ErrHandler, "boom")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("standard error")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := fs.ErrPermission
	listErr := errors.Wrap(rootCause, errors.ErrListing, "cannot list directory")
	handlerErr := errors.Wrap(listErr, errors.ErrHandler, "handler failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		assert.True(t, errors.IsErrorCode(handlerErr, errors.ErrHandler))
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var sweepErr *errors.SweepError
		require.True(t, stderrors.As(handlerErr.Unwrap(), &sweepErr))
		assert.Equal(t, errors.ErrListing, sweepErr.Code)
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		assert.ErrorIs(t, handlerErr, rootCause)
	})
}
