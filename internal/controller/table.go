package controller

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "doccov.dev/pkg/doccov/internal/model"
)

const (
	reportWidth = 80

	statusCovered = "COVERED"
	statusMissed  = "MISSED"
	statusPassed  = "PASSED"
	statusFailed  = "FAILED"
)

// renderTableReport renders the text report. Verbosity 0 is the result line
// only, 1 adds the summary table and 2 the per-node table.
func renderTableReport(result m.RunResult, opts ReportOptions) string {
	var b strings.Builder

	styles := newStyles(opts.Color)

	if opts.Verbosity > 0 {
		b.WriteString(separator("=", "Coverage for "+headerBase(opts.Base), reportWidth))
		b.WriteString("\n")
	}

	if opts.Verbosity > 1 {
		if detailed := renderDetailedTable(result, opts, styles); detailed != "" {
			b.WriteString(separator("-", "Detailed Coverage", reportWidth))
			b.WriteString("\n")
			b.WriteString(detailed)
			b.WriteString("\n")
		}
	}

	if opts.Verbosity > 0 {
		b.WriteString(separator("-", "Summary", reportWidth))
		b.WriteString("\n")
		b.WriteString(renderSummaryTable(result, opts))

		if line := omittedLine(result, opts); line != "" {
			b.WriteString(centered(line, reportWidth))
			b.WriteString("\n")
		}

		b.WriteString(styles.result(result.Passed()).Render(separator("-", statusLine(result, opts), reportWidth)))
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString(statusLine(result, opts))
	b.WriteString("\n")

	return b.String()
}

func renderDetailedTable(result m.RunResult, opts ReportOptions, styles styles) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Name", "Status"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := 0

	for _, file := range result.FileResults {
		if opts.OmitCovered && file.PercentCovered() == 100 {
			continue
		}

		if rows > 0 {
			table.Append([]string{"", ""})
		}

		for _, node := range sortNodesByLine(file.Nodes) {
			table.Append(detailedRow(node, file.DisplayPath(), opts, styles))
			rows++
		}
	}

	if rows == 0 {
		return ""
	}

	table.Render()

	return tableBuffer.String()
}

func detailedRow(node m.CoverageNode, filename m.Path, opts ReportOptions, styles styles) []string {
	var name string

	if node.Kind == m.KindModule {
		if opts.IgnoreModule {
			return []string{string(filename), ""}
		}

		name = string(filename) + " (module)"
	} else {
		name = node.Path
		if idx := strings.LastIndex(name, ":"); idx >= 0 {
			name = name[idx+1:]
		}

		name = fmt.Sprintf("%s (L%d)", name, node.Line)
	}

	status := styles.covered.Render(statusCovered)
	if !node.Documented {
		status = styles.missed.Render(statusMissed)
	}

	return []string{strings.Repeat("  ", node.Level) + name, status}
}

func renderSummaryTable(result m.RunResult, opts ReportOptions) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Name", "Total", "Miss", "Cover", "Cover%"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, file := range result.FileResults {
		if opts.OmitCovered && file.PercentCovered() == 100 {
			continue
		}

		table.Append([]string{
			string(file.DisplayPath()),
			strconv.Itoa(file.Total),
			strconv.Itoa(file.Missing),
			strconv.Itoa(file.Covered),
			fmt.Sprintf("%.0f%%", file.PercentCovered()),
		})
	}

	table.SetFooter([]string{
		"TOTAL",
		strconv.Itoa(result.Total),
		strconv.Itoa(result.Missing),
		strconv.Itoa(result.Covered),
		fmt.Sprintf("%.1f%%", result.PercentCovered()),
	})

	table.Render()

	return tableBuffer.String()
}

func renderFileListTable(files []m.FileResult) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Path", "Nodes", "Documented"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	totalNodes := 0
	totalDocumented := 0

	for _, file := range files {
		table.Append([]string{string(file.DisplayPath()), strconv.Itoa(file.Total), strconv.Itoa(file.Covered)})

		totalNodes += file.Total
		totalDocumented += file.Covered
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(files)),
		strconv.Itoa(totalNodes),
		strconv.Itoa(totalDocumented),
	})

	table.Render()

	return tableBuffer.String()
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	return table
}

func statusLine(result m.RunResult, opts ReportOptions) string {
	status := statusPassed
	if !result.Passed() {
		status = statusFailed
	}

	return fmt.Sprintf("RESULT: %s (minimum: %s%%, actual: %.1f%%)",
		status, strconv.FormatFloat(opts.FailUnder, 'f', -1, 64), result.PercentCovered())
}

func omittedLine(result m.RunResult, opts ReportOptions) string {
	if !opts.OmitCovered {
		return ""
	}

	omitted := 0

	for _, file := range result.FileResults {
		if file.PercentCovered() == 100 {
			omitted++
		}
	}

	if omitted == 0 {
		return ""
	}

	noun := "file"
	if len(result.FileResults) > 1 {
		noun = "files"
	}

	return fmt.Sprintf("(%d of %d %s omitted due to complete coverage)", omitted, len(result.FileResults), noun)
}

func headerBase(base m.Path) string {
	if base == "" {
		return string(filepath.Separator)
	}

	text := string(base)
	if strings.HasSuffix(text, string(filepath.Separator)) {
		return text
	}

	return text + string(filepath.Separator)
}

// separator centers title in a line of fill characters.
func separator(fill, title string, width int) string {
	if title == "" {
		return strings.Repeat(fill, width)
	}

	title = " " + title + " "

	side := (width - len(title)) / 2
	if side < 1 {
		return strings.Repeat(fill, 1) + title + strings.Repeat(fill, 1)
	}

	line := strings.Repeat(fill, side) + title + strings.Repeat(fill, side)
	if len(line) < width {
		line += fill
	}

	return line
}

func centered(text string, width int) string {
	pad := (width - len(text)) / 2
	if pad < 0 {
		pad = 0
	}

	return strings.Repeat(" ", pad) + text
}

func sortNodesByLine(nodes []m.CoverageNode) []m.CoverageNode {
	sorted := make([]m.CoverageNode, len(nodes))
	copy(sorted, nodes)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Line < sorted[j].Line
	})

	return sorted
}
