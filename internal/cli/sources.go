package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/rules"
	"github.com/arthur-debert/chromazone/pkg/stylefile"
	"github.com/spf13/cobra"
)

// collectSources gathers the rules of styleName (if any) followed by the
// -m rules in the order given.
func collectSources(file, styleName string, matches []string) ([]rules.Source, error) {
	var sources []rules.Source

	if styleName != "" {
		catalog, err := loadCatalog(file)
		if err != nil {
			return nil, err
		}
		section, err := catalog.Lookup(styleName)
		if err != nil {
			return nil, err
		}
		sources = append(sources, section.Sources()...)
	}

	for i, m := range matches {
		src, err := parseMatchFlag(m, i+1)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func loadCatalog(file string) (*stylefile.Catalog, error) {
	user, err := stylefile.Load(file)
	if err != nil {
		return nil, err
	}
	return stylefile.NewCatalog(user), nil
}

// parseMatchFlag reads one -m value. The quoted form follows the style file
// syntax; otherwise the value splits at its last whitespace run.
func parseMatchFlag(value string, n int) (rules.Source, error) {
	origin := fmt.Sprintf("-m #%d", n)

	if e, ok := stylefile.ParseEntry(value); ok {
		return rules.Source{Pattern: e.Pattern, Style: e.Style, Origin: origin}, nil
	}

	trimmed := strings.TrimSpace(value)
	i := strings.LastIndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return rules.Source{}, errors.New(errors.ErrInvalidInput, MsgErrMatchFormat).
			WithDetail(errors.DetailOrigin, origin).
			WithDetail("value", value)
	}

	return rules.Source{
		Pattern: strings.TrimRightFunc(trimmed[:i], unicode.IsSpace),
		Style:   trimmed[i+1:],
		Origin:  origin,
	}, nil
}

// styleNamesCompletion completes -s with the names of available styles
func styleNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	catalog, err := loadCatalog(cfg.File)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, s := range catalog.Sections() {
		if strings.HasPrefix(s.Name, toComplete) {
			names = append(names, s.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
