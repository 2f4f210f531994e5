package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/style"
	"github.com/arthur-debert/chromazone/pkg/stylefile"
	"github.com/arthur-debert/chromazone/pkg/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type styleListing struct {
	Name   string        `yaml:"name"`
	Source string        `yaml:"source"`
	Rules  []ruleListing `yaml:"rules"`
}

type ruleListing struct {
	Pattern string `yaml:"pattern"`
	Style   string `yaml:"style"`
}

func newStylesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "styles",
		Short: MsgStylesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg.File)
			if err != nil {
				return err
			}

			listings := listStyles(catalog)
			out := cmd.OutOrStdout()
			switch output {
			case "text", "":
				color := ui.ColorEnabled(cfg.ColorMode, outputFile(out))
				return writeStylesText(out, listings, color)
			case "yaml":
				return writeStylesYAML(out, listings)
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgErrOutputFormat, output).
					WithDetail("output", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", MsgFlagOutput)
	return cmd
}

func listStyles(catalog *stylefile.Catalog) []styleListing {
	var listings []styleListing
	for _, s := range catalog.Sections() {
		l := styleListing{Name: s.Name, Source: s.Path, Rules: []ruleListing{}}
		for _, e := range s.Entries {
			l.Rules = append(l.Rules, ruleListing{Pattern: e.Pattern, Style: e.Style})
		}
		listings = append(listings, l)
	}
	return listings
}

// writeStylesText prints each style with its rules. With color, every
// style descriptor is shown in the style it describes.
func writeStylesText(w io.Writer, listings []styleListing, color bool) error {
	if len(listings) == 0 {
		_, err := fmt.Fprintln(w, MsgNoStyles)
		return err
	}

	for _, l := range listings {
		if _, err := fmt.Fprintf(w, MsgStyleHeader, l.Name, l.Source); err != nil {
			return err
		}
		for _, r := range l.Rules {
			desc := r.Style
			if attrs, err := style.Parse(r.Style); color && err == nil {
				desc = attrs.Sequence() + desc + style.Reset
			}
			if _, err := fmt.Fprintf(w, MsgStyleRule, r.Pattern, desc); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeStylesYAML(w io.Writer, listings []styleListing) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(listings); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to encode styles")
	}
	return enc.Close()
}
