package style

import (
	"strings"

	"github.com/arthur-debert/chromazone/pkg/errors"
)

const backgroundPrefix = "b:"

var colorTokens = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"purple":  Magenta,
	"cyan":    Cyan,
	"white":   White,
}

var effectTokens = map[string]Effect{
	"bold":      Bold,
	"italic":    Italic,
	"underline": Underline,
	"strike":    Strike,
}

// Parse turns a style descriptor into Attributes. Unknown tokens fail with
// an ErrInvalidStyleToken error carrying the token and its 0-based position.
func Parse(descriptor string) (Attributes, error) {
	var a Attributes

	for pos, raw := range strings.Split(descriptor, ",") {
		token := strings.TrimSpace(raw)

		if name, ok := strings.CutPrefix(token, backgroundPrefix); ok {
			c, ok := colorTokens[name]
			if !ok {
				return Attributes{}, invalidToken(descriptor, token, pos)
			}
			// Last background wins.
			a.Background = c
			continue
		}

		if c, ok := colorTokens[token]; ok {
			// Last foreground wins.
			a.Foreground = c
			continue
		}

		if e, ok := effectTokens[token]; ok {
			a.Effects |= e
			continue
		}

		return Attributes{}, invalidToken(descriptor, token, pos)
	}

	return a, nil
}

// MustParse is like Parse but panics on error. Meant for built-in tables and
// tests.
func MustParse(descriptor string) Attributes {
	a, err := Parse(descriptor)
	if err != nil {
		panic(err)
	}
	return a
}

func invalidToken(descriptor, token string, pos int) error {
	return errors.Newf(errors.ErrInvalidStyleToken,
		"unknown style token %q at position %d in %q", token, pos, descriptor).
		WithDetail(errors.DetailToken, token).
		WithDetail(errors.DetailPosition, pos).
		WithDetail(errors.DetailStyle, descriptor)
}
