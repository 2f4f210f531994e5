package style

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Color is one of the eight basic terminal colours. The zero value means
// "no colour".
type Color uint8

const (
	NoColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = [...]string{
	NoColor: "",
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

var basicColors = [...]ansi.BasicColor{
	Black:   ansi.Black,
	Red:     ansi.Red,
	Green:   ansi.Green,
	Yellow:  ansi.Yellow,
	Blue:    ansi.Blue,
	Magenta: ansi.Magenta,
	Cyan:    ansi.Cyan,
	White:   ansi.White,
}

// String returns the descriptor name of the colour.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// IsSet reports whether c names a colour.
func (c Color) IsSet() bool {
	return c != NoColor && int(c) < len(colorNames)
}

// Effect is a set of text effects.
type Effect uint8

const (
	Bold Effect = 1 << iota
	Italic
	Underline
	Strike
)

// effectOrder is the fixed emission order for effects.
var effectOrder = [...]struct {
	effect Effect
	name   string
}{
	{Bold, "bold"},
	{Italic, "italic"},
	{Underline, "underline"},
	{Strike, "strike"},
}

// Has reports whether every effect in o is also in e.
func (e Effect) Has(o Effect) bool {
	return e&o == o
}

// Attributes is a resolved visual style. Values are comparable with ==.
type Attributes struct {
	Foreground Color
	Background Color
	Effects    Effect
}

// IsZero reports whether a carries no styling at all.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

// Sequence returns the SGR sequence that switches the terminal to a, or ""
// when a is zero.
func (a Attributes) Sequence() string {
	if a.IsZero() {
		return ""
	}

	var s ansi.Style
	if a.Foreground.IsSet() {
		s = s.ForegroundColor(basicColors[a.Foreground])
	}
	if a.Background.IsSet() {
		s = s.BackgroundColor(basicColors[a.Background])
	}
	if a.Effects.Has(Bold) {
		s = s.Bold()
	}
	if a.Effects.Has(Italic) {
		s = s.Italic()
	}
	if a.Effects.Has(Underline) {
		s = s.Underline()
	}
	if a.Effects.Has(Strike) {
		s = s.Strikethrough()
	}
	if len(s) == 0 {
		return ""
	}
	return s.String()
}

// Reset is the sequence that ends a styled run.
const Reset = ansi.ResetStyle

// String returns a canonical descriptor for a, e.g. "red,b:white,bold".
func (a Attributes) String() string {
	parts := make([]string, 0, 6)
	if a.Foreground.IsSet() {
		parts = append(parts, a.Foreground.String())
	}
	if a.Background.IsSet() {
		parts = append(parts, backgroundPrefix+a.Background.String())
	}
	for _, e := range effectOrder {
		if a.Effects.Has(e.effect) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, ",")
}
