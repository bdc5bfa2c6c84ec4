// Package controller provides output adapters for displaying docstring coverage results.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "doccov.dev/pkg/doccov/internal/model"
)

// ReportFormat selects how a run result is rendered.
type ReportFormat string

// Available report formats.
const (
	FormatTable    ReportFormat = "table"
	FormatMarkdown ReportFormat = "markdown"
	FormatJSON     ReportFormat = "json"
	FormatYAML     ReportFormat = "yaml"
)

// ReportFormats lists the accepted formats.
var ReportFormats = []ReportFormat{FormatTable, FormatMarkdown, FormatJSON, FormatYAML}

// ParseReportFormat validates a format name; empty means table.
func ParseReportFormat(value string) (ReportFormat, error) {
	format := ReportFormat(strings.ToLower(strings.TrimSpace(value)))
	if format == "" {
		return FormatTable, nil
	}

	for _, known := range ReportFormats {
		if format == known {
			return format, nil
		}
	}

	return "", fmt.Errorf("unknown report format %q, expected one of %v", value, ReportFormats)
}

// ReportOptions control what a report shows.
type ReportOptions struct {
	Format       ReportFormat
	Verbosity    int
	FailUnder    float64
	OmitCovered  bool
	IgnoreModule bool
	Color        bool
	Base         m.Path
}

// UI defines how results reach the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayReport(ctx context.Context, result m.RunResult, opts ReportOptions) error
	DisplayFileList(ctx context.Context, files []m.FileResult) error
}

// NewUI picks the pager UI for terminals and the plain UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(f.Fd())
}
