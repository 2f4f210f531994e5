// Package ui holds the terminal-facing helpers of the command line: deciding
// whether to emit colour and presenting errors.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects when highlighting escapes are emitted
type ColorMode int

const (
	// ColorAlways emits escapes regardless of the output
	ColorAlways ColorMode = iota
	// ColorAuto emits escapes only to colour-capable terminals
	ColorAuto
	// ColorNever passes lines through untouched
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never", "off", "none":
		return ColorNever, nil
	default:
		return ColorAlways, fmt.Errorf("unknown color mode: %s", s)
	}
}

// ColorEnabled decides, for the given mode, whether to colour output
// written to output.
func ColorEnabled(mode ColorMode, output *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	isTerminal := output != nil &&
		(isatty.IsTerminal(output.Fd()) || isatty.IsCygwinTerminal(output.Fd()))
	return autoColor(os.Getenv("NO_COLOR") != "", isTerminal, termenv.EnvColorProfile())
}

func autoColor(noColor, isTerminal bool, profile termenv.Profile) bool {
	if noColor {
		return false
	}
	if !isTerminal {
		return false
	}
	return profile != termenv.Ascii
}
