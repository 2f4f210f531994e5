// Package matcher resolves the matches of a rule set on one line into a
// Decoration: a sequence of contiguous segments that covers every byte of
// the line exactly once, each segment either unstyled or owned by one rule.
//
// # Overlap resolution
//
// Every rule contributes all of its non-overlapping, leftmost-first matches.
// Overlaps between rules are resolved per byte: a byte covered by several
// matches belongs to the match whose rule was declared first. A match that
// loses some of its bytes keeps the rest, so a lower-precedence match can
// still style the parts of its range nobody else claims.
//
//	rules:  0: \[[^\[]*\]  red,underline
//	        1: ^# .*$      yellow,bold
//	line:   # [Title](url)
//	        ##=======######
//	        ^ rule 1 (yellow,bold) outside the brackets, rule 0 inside
//
// Adjacent segments with identical attributes are merged.
//
// A Matcher owns scratch buffers that are reused from one line to the next,
// so it must not be shared between goroutines. The rule set it reads is
// immutable and can be shared freely.
package matcher
