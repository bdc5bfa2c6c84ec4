package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "doccov.dev/pkg/doccov/internal/model"
)

// Lines used by the pager around the viewport: title + blank, blank + help.
const pagerReservedLines = 4

// TUI implements UI using Bubble Tea for interactive display. Output that
// fits the terminal is printed directly; longer output opens a pager.
type TUI struct {
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// DisplayReport shows the report, paging it when it is taller than the terminal.
func (t *TUI) DisplayReport(ctx context.Context, result m.RunResult, opts ReportOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// structured formats are meant for pipes, never page them
	if opts.Format != FormatTable && opts.Format != "" {
		return WriteReport(t.cmd.OutOrStdout(), result, opts)
	}

	var buf bytes.Buffer
	if err := WriteReport(&buf, result, opts); err != nil {
		return err
	}

	return t.page(ctx, "doccov - Docstring Coverage", buf.String())
}

// DisplayFileList shows the files that would be interrogated.
func (t *TUI) DisplayFileList(ctx context.Context, files []m.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(ctx, "doccov - Files", renderFileListTable(files))
}

func (t *TUI) page(ctx context.Context, title, content string) error {
	output := t.cmd.OutOrStdout()
	width, height := terminalSize(output)

	model := newPagerModel(title, content, width, height)

	if !model.needsPagination() {
		_, err := fmt.Fprint(output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	// leave the report in the scrollback once the pager closes
	_, err := fmt.Fprint(output, content)

	return err
}

func terminalSize(output io.Writer) (int, int) {
	f, ok := output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(f.Fd())
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel is the Bubble Tea model scrolling a rendered report.
type pagerModel struct {
	title    string
	lines    int
	viewport viewport.Model
	width    int
	height   int
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, viewportHeight(height))
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		lines:    strings.Count(content, "\n") + 1,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

func viewportHeight(height int) int {
	if height-pagerReservedLines < 1 {
		return 1
	}

	return height - pagerReservedLines
}

// needsPagination returns true if the content is taller than the terminal.
func (pm pagerModel) needsPagination() bool {
	if pm.height == 0 {
		return false
	}

	return pm.lines > pm.height-pagerReservedLines
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.viewport.Width = msg.Width
		pm.viewport.Height = viewportHeight(msg.Height)

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "g", "home":
		pm.viewport.GotoTop()
		return pm, nil

	case "G", "end":
		pm.viewport.GotoBottom()
		return pm, nil
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

var (
	pagerTitleStyle = lipgloss.NewStyle().Bold(true)
	pagerHelpStyle  = lipgloss.NewStyle().Faint(true)
)

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(pagerTitleStyle.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(pagerHelpStyle.Render(fmt.Sprintf(
		"%3.f%%  ↑/k up • ↓/j down • d/u half page • g/G top/bottom • q quit",
		pm.viewport.ScrollPercent()*100,
	)))

	return b.String()
}
