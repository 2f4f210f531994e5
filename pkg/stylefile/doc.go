// Package stylefile reads named styles from a style file.
//
// # Location
//
// The style file lives at $XDG_CONFIG_HOME/chromazone/chromazone.styles
// (see pkg/paths) unless another path is given.
//
// # Format
//
// The format is INI-like. A "[name]" line opens a section; each following
// line of the form
//
//	"<regex>" <style descriptor>
//
// adds a rule to it. The pattern is everything between the first and the
// last double quote, so patterns may contain quotes themselves. Blank lines
// and lines starting with '#' or ';' are ignored, as is any other line that
// fits neither form. A section name may appear more than once; its entries
// are concatenated in file order.
//
//	[diff]
//	"^@@.*@@$" yellow
//	"^-.*" red
//	"^\+.*" green
//
// A small set of styles is built in (see builtin.styles). A section in the
// user's file shadows the built-in section of the same name.
package stylefile
