package rules

import (
	"regexp"
	"regexp/syntax"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/logging"
	"github.com/arthur-debert/chromazone/pkg/style"
)

// Build compiles sources, in the order given, into a Set. Order is assigned
// from each source's index.
func Build(sources []Source) (*Set, error) {
	logger := logging.GetLogger("rules.build")
	set := &Set{rules: make([]*Rule, 0, len(sources))}

	for i, src := range sources {
		rule, err := compile(i, src)
		if err != nil {
			logger.Debug().
				Err(err).
				Str("origin", src.Origin).
				Str("pattern", src.Pattern).
				Msg("Rule rejected")
			return nil, err
		}

		logger.Trace().
			Int("order", rule.order).
			Str("origin", rule.origin).
			Str("pattern", src.Pattern).
			Str("style", rule.style.String()).
			Msg("Rule compiled")
		set.rules = append(set.rules, rule)
	}

	logger.Debug().Int("ruleCount", set.Len()).Msg("Rule set built")
	return set, nil
}

// MustBuild is like Build but panics on error.
func MustBuild(sources ...Source) *Set {
	set, err := Build(sources)
	if err != nil {
		panic(err)
	}
	return set
}

func compile(order int, src Source) (*Rule, error) {
	re, err := regexp.Compile(src.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid pattern %q", src.Pattern).
			AtSource(src.Pattern, src.Origin)
	}

	empty, err := matchesEmpty(src.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid pattern %q", src.Pattern).
			AtSource(src.Pattern, src.Origin)
	}
	if empty {
		return nil, errors.Newf(errors.ErrZeroLengthMatch, "pattern %q can match an empty string", src.Pattern).
			AtSource(src.Pattern, src.Origin)
	}

	attrs, err := style.Parse(src.Style)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidStyleToken, "invalid style for pattern %q", src.Pattern).
			WithDetails(errors.GetErrorDetails(err)).
			AtSource(src.Pattern, src.Origin)
	}

	return &Rule{
		pattern: re,
		style:   attrs,
		order:   order,
		origin:  src.Origin,
		open:    attrs.Sequence(),
	}, nil
}

// matchesEmpty reports whether the pattern can succeed without consuming
// input. Empty-width assertions count as empty.
func matchesEmpty(pattern string) (bool, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return false, err
	}
	return nullable(re.Simplify()), nil
}

func nullable(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return true
	case syntax.OpLiteral:
		return len(re.Rune) == 0
	case syntax.OpNoMatch, syntax.OpCharClass, syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return false
	case syntax.OpCapture, syntax.OpPlus:
		return nullable(re.Sub[0])
	case syntax.OpStar, syntax.OpQuest:
		return true
	case syntax.OpRepeat:
		return re.Min == 0 || nullable(re.Sub[0])
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if !nullable(sub) {
				return false
			}
		}
		return true
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if nullable(sub) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
