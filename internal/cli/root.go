// Package cli implements the cz command line.
package cli

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/arthur-debert/chromazone/internal/version"
	"github.com/arthur-debert/chromazone/pkg/config"
	czerrors "github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/arthur-debert/chromazone/pkg/logging"
	"github.com/arthur-debert/chromazone/pkg/paths"
	"github.com/arthur-debert/chromazone/pkg/rules"
	"github.com/arthur-debert/chromazone/pkg/stream"
	"github.com/arthur-debert/chromazone/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options holds the values of the root command's flags.
type options struct {
	verbosity int
	style     string
	matches   []string
	file      string
	color     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "cz",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity, paths.New().LogFilePath())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.file, "file", "", MsgFlagFile)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)

	rootCmd.Flags().StringVarP(&opts.style, "style", "s", "", MsgFlagStyle)
	rootCmd.Flags().StringArrayVarP(&opts.matches, "match", "m", nil, MsgFlagMatch)

	_ = rootCmd.RegisterFlagCompletionFunc("style", styleNamesCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"always", "auto", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newStylesCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig resolves settings and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(paths.New())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		file, _ := flags.GetString("file")
		cfg.File = paths.ExpandHome(file)
	}
	if flags.Changed("color") {
		color, _ := flags.GetString("color")
		if err := cfg.SetColor(color); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runFilter(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	styleName := opts.style
	if styleName == "" && len(opts.matches) == 0 {
		styleName = cfg.Style
	}

	sources, err := collectSources(cfg.File, styleName, opts.matches)
	if err != nil {
		return err
	}

	set, err := rules.Build(sources)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := ui.ColorEnabled(cfg.ColorMode, outputFile(out))

	log.Info().
		Str("style", styleName).
		Int("rules", set.Len()).
		Bool("color", color).
		Msg("Filtering input")

	_, err = stream.NewFilter(set, color).Run(cmd.InOrStdin(), out)
	if err != nil && isBrokenPipe(err) {
		log.Debug().Err(err).Msg("Output closed, stopping")
		return nil
	}
	return err
}

// outputFile returns w as a file when it is one, for terminal detection.
func outputFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

func isBrokenPipe(err error) bool {
	return czerrors.IsErrorCode(err, czerrors.ErrOutputWrite) && errors.Is(err, syscall.EPIPE)
}
