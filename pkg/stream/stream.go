// Package stream runs the highlighting loop over a byte stream: read a
// line, decorate it, render it, and pass it on.
//
// Lines end at '\n'. The terminator (including a preceding '\r') is not
// matched against and is written back unchanged; a final line without a
// terminator is written without one.
//
// Output is collected in whole rendered lines and written when the input has
// nothing more buffered, or when the pending output grows past a threshold,
// so the filter stays responsive in a pipeline without issuing a write per
// line on bulk input. Every write carries complete lines, so an opening
// escape sequence is never written without its reset.
package stream

import (
	"bufio"
	"io"
	"time"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/logging"
	"github.com/arthur-debert/chromazone/pkg/matcher"
	"github.com/arthur-debert/chromazone/pkg/render"
	"github.com/arthur-debert/chromazone/pkg/rules"
	"github.com/rs/zerolog"
)

const (
	readBufferSize = 64 * 1024
	flushThreshold = 32 * 1024
)

// Stats summarises one run.
type Stats struct {
	Lines        int
	BytesRead    int64
	BytesWritten int64
	Writes       int
}

// Filter highlights lines read from one stream into another.
type Filter struct {
	matcher  *matcher.Matcher
	renderer *render.Renderer
	logger   zerolog.Logger

	line    []byte
	pending []byte
}

// NewFilter creates a Filter applying set. With color false lines are
// copied through unchanged.
func NewFilter(set *rules.Set, color bool) *Filter {
	return &Filter{
		matcher:  matcher.New(set),
		renderer: render.New(color),
		logger:   logging.GetLogger("stream"),
	}
}

// Run copies r to w, highlighting every line, until r is exhausted or a
// write fails.
func (f *Filter) Run(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	start := time.Now()
	defer func() {
		f.logger.Debug().
			Int("lines", stats.Lines).
			Int64("bytesRead", stats.BytesRead).
			Int64("bytesWritten", stats.BytesWritten).
			Int("writes", stats.Writes).
			Msg("Stream finished")
		logging.LogDuration(f.logger, start, "stream")
	}()

	br := bufio.NewReaderSize(r, readBufferSize)
	f.pending = f.pending[:0]

	for {
		line, readErr := f.readLine(br)
		if len(line) > 0 {
			stats.Lines++
			stats.BytesRead += int64(len(line))

			body, term := splitTerminator(line)
			f.pending = f.renderer.AppendLine(f.pending, body, f.matcher.Decorate(body))
			f.pending = append(f.pending, term...)
		}

		if readErr != nil && readErr != io.EOF {
			// Pass on what was already read before reporting.
			if err := f.flush(w, &stats); err != nil {
				return stats, err
			}
			return stats, errors.Wrap(readErr, errors.ErrInputRead, "failed to read input")
		}

		if readErr == io.EOF || br.Buffered() == 0 || len(f.pending) >= flushThreshold {
			if err := f.flush(w, &stats); err != nil {
				return stats, err
			}
		}

		if readErr == io.EOF {
			return stats, nil
		}
	}
}

// readLine returns the next line including its terminator. The slice is
// reused on the next call.
func (f *Filter) readLine(br *bufio.Reader) ([]byte, error) {
	f.line = f.line[:0]
	for {
		chunk, err := br.ReadSlice('\n')
		f.line = append(f.line, chunk...)
		if err != bufio.ErrBufferFull {
			return f.line, err
		}
	}
}

func (f *Filter) flush(w io.Writer, stats *Stats) error {
	if len(f.pending) == 0 {
		return nil
	}
	n, err := w.Write(f.pending)
	stats.BytesWritten += int64(n)
	stats.Writes++
	f.pending = f.pending[:0]
	if err != nil {
		f.logger.Debug().Err(err).Msg("Output write failed")
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
	}
	return nil
}

// splitTerminator separates a trailing "\n" or "\r\n" from line.
func splitTerminator(line []byte) (body, term []byte) {
	n := len(line)
	if n == 0 || line[n-1] != '\n' {
		return line, nil
	}
	if n >= 2 && line[n-2] == '\r' {
		return line[:n-2], line[n-2:]
	}
	return line[:n-1], line[n-1:]
}
