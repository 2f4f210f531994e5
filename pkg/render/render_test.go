package render

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/matcher"
	"github.com/arthur-debert/chromazone/pkg/rules"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderLine(t *testing.T, color bool, line string, sources ...rules.Source) string {
	t.Helper()
	set, err := rules.Build(sources)
	require.NoError(t, err)
	d := matcher.New(set).Decorate([]byte(line))
	return string(New(color).AppendLine(nil, []byte(line), d))
}

func TestAppendLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		sources []rules.Source
		want    string
	}{
		{
			name: "no match passes through",
			line: "hello world",
			sources: []rules.Source{
				{Pattern: "xyz", Style: "red"},
			},
			want: "hello world",
		},
		{
			name: "styled segment wrapped with reset",
			line: "a needle here",
			sources: []rules.Source{
				{Pattern: "needle", Style: "red"},
			},
			want: "a \x1b[31mneedle\x1b[m here",
		},
		{
			name: "markdown heading with link",
			line: "# [Title](url)",
			sources: []rules.Source{
				{Pattern: `\[[^\[]*\]`, Style: "red,underline"},
				{Pattern: `^# .*$`, Style: "yellow,bold"},
			},
			want: "\x1b[33;1m# \x1b[m\x1b[31;4m[Title]\x1b[m\x1b[33;1m(url)\x1b[m",
		},
		{
			name: "consecutive styled segments wrapped independently",
			line: "foobar",
			sources: []rules.Source{
				{Pattern: "foo", Style: "red"},
				{Pattern: "bar", Style: "b:green"},
			},
			want: "\x1b[31mfoo\x1b[m\x1b[42mbar\x1b[m",
		},
		{
			name: "effects in fixed order",
			line: "x",
			sources: []rules.Source{
				{Pattern: "x", Style: "strike,italic,bold,underline"},
			},
			want: "\x1b[1;3;4;9mx\x1b[m",
		},
		{
			name: "empty line",
			line: "",
			sources: []rules.Source{
				{Pattern: "x", Style: "red"},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderLine(t, true, tt.line, tt.sources...))
		})
	}
}

func TestAppendLine_ColorDisabled(t *testing.T) {
	got := renderLine(t, false, "a needle here", rules.Source{Pattern: "needle", Style: "red"})
	assert.Equal(t, "a needle here", got)
}

func TestAppendLine_AppendsToExistingBuffer(t *testing.T) {
	set := rules.MustBuild(rules.Source{Pattern: "b", Style: "green"})
	line := []byte("ab")
	d := matcher.New(set).Decorate(line)

	got := New(true).AppendLine([]byte("prefix:"), line, d)
	assert.Equal(t, "prefix:a\x1b[32mb\x1b[m", string(got))
}

func TestAppendLine_StripRoundTrip(t *testing.T) {
	set := rules.MustBuild(
		rules.Source{Pattern: `\d+`, Style: "magenta,bold"},
		rules.Source{Pattern: `ERROR|WARN`, Style: "red,b:white"},
	)
	m := matcher.New(set)
	r := New(true)

	for _, line := range []string{
		"2024-01-01 ERROR disk 93% full",
		"nothing here",
		"WARN WARN 1 2 3",
		"",
	} {
		out := r.AppendLine(nil, []byte(line), m.Decorate([]byte(line)))
		assert.Equal(t, line, ansi.Strip(string(out)))
	}
}

func TestRender(t *testing.T) {
	set := rules.MustBuild(rules.Source{Pattern: "x", Style: "cyan"})
	m := matcher.New(set)
	r := New(true)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, []byte("axa"), m.Decorate([]byte("axa"))))
	require.NoError(t, r.Render(&buf, []byte("b"), m.Decorate([]byte("b"))))
	assert.Equal(t, "a\x1b[36mx\x1b[ma"+"b", buf.String())
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestRender_WriteError(t *testing.T) {
	base := stderrors.New("broken pipe")
	r := New(true)
	err := r.Render(failingWriter{base}, []byte("a"), matcher.Decoration{{Start: 0, End: 1}})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputWrite))
	assert.True(t, stderrors.Is(err, base))
}

func TestColor(t *testing.T) {
	assert.True(t, New(true).Color())
	assert.False(t, New(false).Color())
}
