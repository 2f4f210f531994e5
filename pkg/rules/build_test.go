package rules

import (
	"testing"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	sources := []Source{
		{Pattern: `^@@.*@@$`, Style: "yellow", Origin: "chromazone.styles:2 [diff]"},
		{Pattern: `^-.*`, Style: "red", Origin: "chromazone.styles:3 [diff]"},
		{Pattern: `TODO`, Style: "b:blue,bold", Origin: "-m #1"},
	}

	set, err := Build(sources)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	for i, src := range sources {
		r := set.At(i)
		assert.Equal(t, i, r.Order())
		assert.Equal(t, src.Pattern, r.Pattern().String())
		assert.Equal(t, src.Origin, r.Origin())
		assert.Equal(t, style.MustParse(src.Style), r.Style())
		assert.Equal(t, r.Style().Sequence(), r.Open())
	}
}

func TestBuild_Empty(t *testing.T) {
	set, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())

	var nilSet *Set
	assert.Equal(t, 0, nilSet.Len())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		code    errors.ErrorCode
		pattern string
		origin  string
	}{
		{
			name:    "pattern does not compile",
			sources: []Source{{Pattern: `(unclosed`, Style: "red", Origin: "-m #1"}},
			code:    errors.ErrInvalidPattern,
			pattern: `(unclosed`,
			origin:  "-m #1",
		},
		{
			name:    "star can match nothing",
			sources: []Source{{Pattern: `a*`, Style: "red", Origin: "-m #1"}},
			code:    errors.ErrZeroLengthMatch,
			pattern: `a*`,
			origin:  "-m #1",
		},
		{
			name:    "anchor only",
			sources: []Source{{Pattern: `^$`, Style: "red", Origin: "f:1 [s]"}},
			code:    errors.ErrZeroLengthMatch,
			pattern: `^$`,
			origin:  "f:1 [s]",
		},
		{
			name:    "empty pattern",
			sources: []Source{{Pattern: ``, Style: "red", Origin: "-m #3"}},
			code:    errors.ErrZeroLengthMatch,
			pattern: ``,
			origin:  "-m #3",
		},
		{
			name:    "bad style token",
			sources: []Source{{Pattern: `x`, Style: "red,sparkly", Origin: "-m #2"}},
			code:    errors.ErrInvalidStyleToken,
			pattern: `x`,
			origin:  "-m #2",
		},
		{
			name: "first failure aborts even after good rules",
			sources: []Source{
				{Pattern: `ok`, Style: "green", Origin: "-m #1"},
				{Pattern: `[z-a]`, Style: "green", Origin: "-m #2"},
			},
			code:    errors.ErrInvalidPattern,
			pattern: `[z-a]`,
			origin:  "-m #2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Build(tt.sources)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.pattern, details[errors.DetailPattern])
			assert.Equal(t, tt.origin, details[errors.DetailOrigin])
			assert.Contains(t, err.Error(), tt.origin)
		})
	}
}

func TestBuild_ErrorWithoutOrigin(t *testing.T) {
	_, err := Build([]Source{{Pattern: `x+`, Style: "blink"}})
	require.Error(t, err)

	assert.Contains(t, err.Error(), `invalid style for pattern "x+" (unknown origin)`)
	assert.Equal(t, "", errors.GetErrorDetails(err)[errors.DetailOrigin])
}

func TestBuild_StyleErrorKeepsTokenDetails(t *testing.T) {
	_, err := Build([]Source{{Pattern: `x`, Style: "bold,glow", Origin: "-m #1"}})
	require.Error(t, err)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "glow", details[errors.DetailToken])
	assert.Equal(t, 1, details[errors.DetailPosition])
}

func TestMatchesEmpty(t *testing.T) {
	tests := []struct {
		pattern string
		want    bool
	}{
		{`a`, false},
		{`a+`, false},
		{`a*`, true},
		{`a?`, true},
		{`a{0,3}`, true},
		{`a{2}`, false},
		{`(a|)`, true},
		{`(a|b)`, false},
		{`^`, true},
		{`$`, true},
		{`\b`, true},
		{`\bword\b`, false},
		{`^# .*$`, false},
		{`\[[^\[]*\]`, false},
		{`(?:x*)(?:y?)`, true},
		{`.`, false},
		{`(?s).`, false},
		{`[^a]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := matchesEmpty(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustBuild(t *testing.T) {
	assert.NotPanics(t, func() {
		set := MustBuild(Source{Pattern: "a", Style: "red"})
		assert.Equal(t, 1, set.Len())
	})
	assert.Panics(t, func() { MustBuild(Source{Pattern: "a*", Style: "red"}) })
}
