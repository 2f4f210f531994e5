package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/arthur-debert/chromazone/pkg/errors"
	"github.com/charmbracelet/lipgloss"
)

// RenderError formats err for the user. The headline is red when w is a
// colour terminal; coded errors also list their details, one per line.
func RenderError(w io.Writer, err error) string {
	r := lipgloss.NewRenderer(w)
	headline := r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	label := r.NewStyle().Faint(true)

	var sb strings.Builder
	sb.WriteString(headline.Render(fmt.Sprintf("Error: %v", err)))

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "\n  %s %v", label.Render(k+":"), details[k])
	}

	return sb.String()
}
