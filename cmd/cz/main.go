package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/chromazone/internal/cli"
	"github.com/arthur-debert/chromazone/pkg/ui"
)

func main() {
	// Report a closed output pipe as a write error instead of dying on SIGPIPE.
	signal.Ignore(syscall.SIGPIPE)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(os.Stderr, err))
		os.Exit(1)
	}
}
