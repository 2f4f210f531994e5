// Package rules builds the immutable Rule Set that drives highlighting.
//
// A Rule pairs a compiled regular expression with the style applied to its
// matches. Rules are built from Sources, the (pattern, style descriptor)
// pairs declared in a style file section or on the command line, and keep
// the position they were declared at as their Order. A lower Order means a
// higher precedence: when two rules cover the same byte, the rule declared
// first styles it.
//
// Construction is all-or-nothing. The first pattern that does not compile,
// can match the empty string, or carries a malformed style descriptor aborts
// Build with a coded error naming the offending entry and where it came from.
//
// A Set is never modified after Build returns and may be read from any number
// of goroutines.
package rules
