package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "doccov.dev/pkg/doccov/internal/model"
)

// SimpleUI implements UI by writing to the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the report in the requested format.
func (s *SimpleUI) DisplayReport(ctx context.Context, result m.RunResult, opts ReportOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return WriteReport(s.cmd.OutOrStdout(), result, opts)
}

// DisplayFileList prints the files that would be interrogated.
func (s *SimpleUI) DisplayFileList(ctx context.Context, files []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderFileListTable(files))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
