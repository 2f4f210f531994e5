// Package render turns a decorated line into output bytes.
//
// Unstyled segments are copied verbatim. Each styled segment is wrapped on
// its own: the rule's opening SGR sequence, the segment's bytes, then a
// reset. No state carries over from one segment or line to the next.
package render

import (
	"io"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/matcher"
	"github.com/arthur-debert/chromazone/pkg/style"
)

// Renderer writes decorated lines. With colour disabled it emits the input
// unchanged.
type Renderer struct {
	color bool
	buf   []byte
}

// New creates a Renderer.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// Color reports whether the renderer emits escape sequences.
func (r *Renderer) Color() bool {
	return r.color
}

// AppendLine appends the rendering of line under d to dst and returns the
// extended buffer. d must cover line exactly.
func (r *Renderer) AppendLine(dst, line []byte, d matcher.Decoration) []byte {
	if !r.color {
		return append(dst, line...)
	}

	for _, seg := range d {
		text := line[seg.Start:seg.End]
		if !seg.Styled() || seg.Rule.Open() == "" || len(text) == 0 {
			dst = append(dst, text...)
			continue
		}
		dst = append(dst, seg.Rule.Open()...)
		dst = append(dst, text...)
		dst = append(dst, style.Reset...)
	}
	return dst
}

// Render writes one rendered line to w in a single Write call, so a styled
// segment is never split from its reset.
func (r *Renderer) Render(w io.Writer, line []byte, d matcher.Decoration) error {
	r.buf = r.AppendLine(r.buf[:0], line, d)
	if _, err := w.Write(r.buf); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
	}
	return nil
}
