// Package style defines the Style Attribute Set applied to matched text:
// an optional foreground colour, an optional background colour and a set of
// text effects.
//
// Attributes are built from style descriptors, comma-separated token lists
// such as "red,b:white,bold,underline":
//
//	black red green yellow blue magenta purple cyan white   foreground
//	b:<colour>                                              background
//	bold italic underline strike                            effects
//
// Whitespace around a token is ignored ("red, bold" is "red,bold");
// whitespace inside a token is not ("b: red" is invalid).
//
// A repeated foreground or background token overwrites the earlier one.
// Repeated effects are idempotent.
//
// Sequence maps an Attributes value to its SGR escape sequence. The mapping
// is fixed: foreground, background, then bold, italic, underline, strike,
// regardless of the order the tokens were written in.
package style
