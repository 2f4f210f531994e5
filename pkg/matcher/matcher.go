package matcher

import (
	"cmp"
	"slices"

	"github.com/arthur-debert/chromazone/pkg/logging"
	"github.com/arthur-debert/chromazone/pkg/rules"
	"github.com/rs/zerolog"
)

type event struct {
	pos   int
	order int
	isEnd bool
}

// Matcher computes decorations for lines against one rule set.
type Matcher struct {
	set    *rules.Set
	logger zerolog.Logger

	matches  []Match
	events   []event
	active   []bool // indexed by rule order
	segments Decoration
}

// New creates a Matcher for set. A nil set decorates every line as
// unstyled.
func New(set *rules.Set) *Matcher {
	logger := logging.GetLogger("matcher")
	logger.Debug().
		Int("ruleCount", set.Len()).
		Msg("Matcher created")

	return &Matcher{
		set:    set,
		logger: logger,
		active: make([]bool, set.Len()),
	}
}

// Decorate resolves the styling of line. The returned Decoration is backed
// by the Matcher's buffers and is only valid until the next call.
func (m *Matcher) Decorate(line []byte) Decoration {
	m.collect(line)
	if e := m.logger.Trace(); e.Enabled() {
		m.sortMatches()
		e.Int("length", len(line)).Interface("matches", m.matches).Msg("Line matched")
	}
	m.sweep(len(line))
	return m.segments
}

// matchesOf returns every match of every rule on line, ordered by start
// offset and then by rule order.
func (m *Matcher) matchesOf(line []byte) []Match {
	m.collect(line)
	m.sortMatches()
	return m.matches
}

// sortMatches orders the collected matches by start, then rule order. The
// sweep does not depend on it.
func (m *Matcher) sortMatches() {
	slices.SortFunc(m.matches, func(a, b Match) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})
}

// collect gathers all non-empty matches of all rules.
func (m *Matcher) collect(line []byte) {
	m.matches = m.matches[:0]
	for i := 0; i < m.set.Len(); i++ {
		r := m.set.At(i)
		for _, loc := range r.Pattern().FindAllIndex(line, -1) {
			// Rejected at build time; never let one through.
			if loc[0] == loc[1] {
				continue
			}
			m.matches = append(m.matches, Match{Start: loc[0], End: loc[1], Order: r.Order()})
		}
	}
}

// sweep turns the collected matches into segments covering [0, n).
func (m *Matcher) sweep(n int) {
	m.events = m.events[:0]
	for _, mt := range m.matches {
		m.events = append(m.events,
			event{pos: mt.Start, order: mt.Order},
			event{pos: mt.End, order: mt.Order, isEnd: true},
		)
	}

	// By position; at the same position, ends before starts.
	slices.SortFunc(m.events, func(a, b event) int {
		if c := cmp.Compare(a.pos, b.pos); c != 0 {
			return c
		}
		if a.isEnd != b.isEnd {
			if a.isEnd {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.order, b.order)
	})

	clear(m.active)
	m.segments = m.segments[:0]

	var owner *rules.Rule
	cur := 0
	for i := 0; i < len(m.events); {
		pos := m.events[i].pos
		if pos > cur {
			m.emit(cur, pos, owner)
			cur = pos
		}
		for i < len(m.events) && m.events[i].pos == pos {
			ev := m.events[i]
			m.active[ev.order] = !ev.isEnd
			i++
		}
		owner = m.winner()
	}

	if cur < n || len(m.segments) == 0 {
		m.emit(cur, n, nil)
	}
}

// winner returns the active rule declared first, or nil.
func (m *Matcher) winner() *rules.Rule {
	for order, on := range m.active {
		if on {
			return m.set.At(order)
		}
	}
	return nil
}

// emit appends [start, end) owned by r, merging with the previous segment
// when both render the same.
func (m *Matcher) emit(start, end int, r *rules.Rule) {
	if k := len(m.segments); k > 0 {
		last := &m.segments[k-1]
		if last.End == start && sameStyle(last.Rule, r) {
			last.End = end
			return
		}
	}
	m.segments = append(m.segments, Segment{Start: start, End: end, Rule: r})
}

// Decorate is a convenience for one-off use; it allocates a fresh Matcher
// and returns a Decoration the caller owns.
func Decorate(set *rules.Set, line []byte) Decoration {
	return slices.Clone(New(set).Decorate(line))
}
