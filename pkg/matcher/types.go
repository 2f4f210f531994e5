package matcher

import (
	"github.com/arthur-debert/chromazone/pkg/rules"
	"github.com/arthur-debert/chromazone/pkg/style"
)

// Match is one occurrence of a rule's pattern. End is exclusive.
type Match struct {
	Start int
	End   int
	Order int
}

// Segment is a contiguous byte range of a line. Rule is nil for unstyled
// text. End is exclusive.
type Segment struct {
	Start int
	End   int
	Rule  *rules.Rule
}

// Styled reports whether the segment carries a style.
func (s Segment) Styled() bool {
	return s.Rule != nil
}

// Style returns the segment's attributes and whether it has any.
func (s Segment) Style() (style.Attributes, bool) {
	if s.Rule == nil {
		return style.Attributes{}, false
	}
	return s.Rule.Style(), true
}

// Len returns the number of bytes covered.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Decoration is the resolved styling of one line.
type Decoration []Segment

// sameStyle reports whether two owners render identically. Styled and
// unstyled never compare equal.
func sameStyle(a, b *rules.Rule) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || a.Style() == b.Style()
}
