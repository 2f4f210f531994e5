package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Highlight regular expression matches in a stream"
	MsgStylesShort     = "List available styles and their rules"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStyle   = "Apply the rules of the named style section"
	MsgFlagMatch   = `Add a rule: '"REGEX" STYLE' or 'REGEX STYLE' (repeatable)`
	MsgFlagFile    = "Style file to read instead of the default location"
	MsgFlagColor   = "When to colour output: always, auto or never"
	MsgFlagOutput  = "Output format: text or yaml"

	// Output
	MsgVersionFormat = "cz version %s\n  commit: %s\n  built:  %s\n"
	MsgNoStyles      = "No styles found."
	MsgStyleHeader   = "%s  (%s)\n"
	MsgStyleRule     = "  %q %s\n"

	// Error messages
	MsgErrMatchFormat  = "expected 'PATTERN STYLE'"
	MsgErrOutputFormat = "unknown output format %q"
)

// Embedded message files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(cz completion bash)

Zsh:
  $ cz completion zsh > "${fpath[1]}/_cz"

Fish:
  $ cz completion fish | source

PowerShell:
  PS> cz completion powershell | Out-String | Invoke-Expression
`
)
