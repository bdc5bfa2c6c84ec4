package controller

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	m "doccov.dev/pkg/doccov/internal/model"
)

func writeMarkdownReport(w io.Writer, result m.RunResult, opts ReportOptions) error {
	md := markdown.NewMarkdown(w)

	status := statusPassed
	if !result.Passed() {
		status = statusFailed
	}

	md.H1("Docstring Coverage")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Base", "`" + headerBase(opts.Base) + "`"},
			{"Result", "**" + status + "**"},
			{"Minimum", strconv.FormatFloat(opts.FailUnder, 'f', -1, 64) + "%"},
			{"Actual", fmt.Sprintf("%.1f%%", result.PercentCovered())},
		},
	})
	md.PlainText("")

	if opts.Verbosity > 1 {
		writeMarkdownDetails(md, result, opts)
	}

	md.H2("Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(result.FileResults)+1)
	for _, file := range result.FileResults {
		if opts.OmitCovered && file.PercentCovered() == 100 {
			continue
		}

		rows = append(rows, []string{
			"`" + string(file.DisplayPath()) + "`",
			strconv.Itoa(file.Total),
			strconv.Itoa(file.Missing),
			strconv.Itoa(file.Covered),
			fmt.Sprintf("%.0f%%", file.PercentCovered()),
		})
	}

	rows = append(rows, []string{
		"**TOTAL**",
		strconv.Itoa(result.Total),
		strconv.Itoa(result.Missing),
		strconv.Itoa(result.Covered),
		fmt.Sprintf("%.1f%%", result.PercentCovered()),
	})

	md.Table(markdown.TableSet{
		Header: []string{"Name", "Total", "Miss", "Cover", "Cover%"},
		Rows:   rows,
	})
	md.PlainText("")

	if line := omittedLine(result, opts); line != "" {
		md.PlainText(line)
		md.PlainText("")
	}

	return md.Build()
}

func writeMarkdownDetails(md *markdown.Markdown, result m.RunResult, opts ReportOptions) {
	md.H2("Detailed Coverage")
	md.PlainText("")

	noColor := newStyles(false)

	for _, file := range result.FileResults {
		if opts.OmitCovered && file.PercentCovered() == 100 {
			continue
		}

		rows := make([][]string, 0, len(file.Nodes))
		for _, node := range sortNodesByLine(file.Nodes) {
			row := detailedRow(node, file.DisplayPath(), opts, noColor)
			rows = append(rows, []string{"`" + row[0] + "`", row[1]})
		}

		md.H3(string(file.DisplayPath()))
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Name", "Status"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}
