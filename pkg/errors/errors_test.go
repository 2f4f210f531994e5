// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/chromazone/pkg/errors"
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
			name:    "invalid_pattern_error",
			code:    errors.ErrInvalidPattern,
			message: "pattern does not compile",
			wantStr: "[INVALID_PATTERN] pattern does not compile",
		},
		{
			name:    "style_not_found_error",
			code:    errors.ErrStyleNotFound,
			message: "no style named diff",
			wantStr: "[STYLE_NOT_FOUND] no style named diff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidStyleToken, "unknown token %q at position %d", "pink", 2)
	assert.Equal(t, `unknown token "pink" at position 2`, err.Message)
	assert.Equal(t, errors.ErrInvalidStyleToken, err.Code)
}

func TestWrap(t *testing.T) {
	t.Run("wraps_message", func(t *testing.T) {
		base := stderrors.New("missing closing )")
		err := errors.Wrap(base, errors.ErrInvalidPattern, "invalid pattern")
		require.NotNil(t, err)
		assert.Equal(t, "[INVALID_PATTERN] invalid pattern: missing closing )", err.Error())
		assert.Same(t, base, err.Unwrap())
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidStyleToken, "bad token").
		WithDetail(errors.DetailToken, "pink").
		WithDetails(map[string]interface{}{
			errors.DetailPosition: 1,
			errors.DetailOrigin:   "-m #1",
		})

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "pink", details[errors.DetailToken])
	assert.Equal(t, 1, details[errors.DetailPosition])
	assert.Equal(t, "-m #1", details[errors.DetailOrigin])

	var zero errors.Error
	zero.WithDetail("k", "v")
	assert.Equal(t, "v", zero.Details["k"])
}

func TestAtSource(t *testing.T) {
	t.Run("origin_in_message_and_details", func(t *testing.T) {
		err := errors.Newf(errors.ErrZeroLengthMatch, "pattern %q can match an empty string", "a*").
			AtSource("a*", "-m #2")

		assert.Equal(t, `[ZERO_LENGTH_MATCH] pattern "a*" can match an empty string (-m #2)`, err.Error())
		details := errors.GetErrorDetails(err)
		assert.Equal(t, "a*", details[errors.DetailPattern])
		assert.Equal(t, "-m #2", details[errors.DetailOrigin])
	})

	t.Run("empty_origin", func(t *testing.T) {
		err := errors.New(errors.ErrInvalidPattern, "invalid pattern").AtSource("(", "")

		assert.Equal(t, "[INVALID_PATTERN] invalid pattern (unknown origin)", err.Error())
		assert.Equal(t, "", errors.GetErrorDetails(err)[errors.DetailOrigin])
	})

	t.Run("keeps_wrapped_error", func(t *testing.T) {
		base := stderrors.New("missing closing )")
		err := errors.Wrap(base, errors.ErrInvalidPattern, "invalid pattern").AtSource("(", "f:3 [log]")

		assert.Equal(t, "[INVALID_PATTERN] invalid pattern (f:3 [log]): missing closing )", err.Error())
		assert.Same(t, base, err.Unwrap())
	})
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrInvalidPattern, "error 1")
	err2 := errors.New(errors.ErrInvalidPattern, "error 2")
	err3 := errors.New(errors.ErrZeroLengthMatch, "error 3")

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
			err:      errors.New(errors.ErrZeroLengthMatch, "empty match"),
			code:     errors.ErrZeroLengthMatch,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrZeroLengthMatch, "empty match"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrInvalidPattern,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrInvalidPattern,
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
	assert.Equal(t, errors.ErrStyleNotFound, errors.GetErrorCode(errors.New(errors.ErrStyleNotFound, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("standard error")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read style file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var czErr *errors.Error
	require.True(t, stderrors.As(configErr.Unwrap(), &czErr))
	assert.Equal(t, errors.ErrFileAccess, czErr.Code)

	assert.True(t, stderrors.Is(configErr, rootCause))
}
