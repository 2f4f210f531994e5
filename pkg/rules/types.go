package rules

import (
	"regexp"

	"github.com/arthur-debert/chromazone/pkg/style"
)

// Source is a rule as declared, before compilation.
type Source struct {
	// Pattern is the regular expression text
	Pattern string

	// Style is the style descriptor, e.g. "red,bold"
	Style string

	// Origin describes where the rule was declared, e.g.
	// "chromazone.styles:4 [diff]" or "-m #1"
	Origin string
}

// Rule is a compiled Source. Rules are immutable.
type Rule struct {
	pattern *regexp.Regexp
	style   style.Attributes
	order   int
	origin  string
	open    string
}

// Pattern returns the compiled expression.
func (r *Rule) Pattern() *regexp.Regexp { return r.pattern }

// Style returns the attributes applied to matches of r.
func (r *Rule) Style() style.Attributes { return r.style }

// Order is the rule's 0-based declaration index; lower wins.
func (r *Rule) Order() int { return r.order }

// Origin returns where the rule was declared.
func (r *Rule) Origin() string { return r.origin }

// Open returns the SGR sequence for the rule's style, computed once at
// construction.
func (r *Rule) Open() string { return r.open }

// Set is an ordered, immutable collection of rules.
type Set struct {
	rules []*Rule
}

// Len returns the number of rules.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// At returns the rule with order i.
func (s *Set) At(i int) *Rule {
	return s.rules[i]
}
