package controller

import (
	"strings"
	"testing"
)

func TestRenderTableReport_Quiet(t *testing.T) {
	opts := sampleOptions()
	opts.Verbosity = 0

	got := renderTableReport(sampleResult(), opts)

	want := "RESULT: FAILED (minimum: 80%, actual: 50.0%)\n"
	if got != want {
		t.Errorf("renderTableReport() = %q, want %q", got, want)
	}
}

func TestRenderTableReport_Summary(t *testing.T) {
	opts := sampleOptions()
	opts.Verbosity = 1

	output := renderTableReport(sampleResult(), opts)

	for _, expected := range []string{
		"Coverage for /proj/",
		"Summary",
		"Cover%",
		"partial.py",
		"full.py",
		"33%",
		"TOTAL",
		"50.0%",
		"RESULT: FAILED (minimum: 80%, actual: 50.0%)",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("output should contain %q, got:\n%s", expected, output)
		}
	}

	if strings.Contains(output, "Detailed Coverage") {
		t.Error("verbosity 1 should not render the detailed table")
	}
}

func TestRenderTableReport_Detailed(t *testing.T) {
	output := renderTableReport(sampleResult(), sampleOptions())

	for _, expected := range []string{
		"Detailed Coverage",
		"full.py (module)",
		"partial.py (module)",
		"Foo (L4)",
		"Foo.method (L7)",
		statusCovered,
		statusMissed,
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("output should contain %q, got:\n%s", expected, output)
		}
	}

	if strings.Index(output, "Foo (L4)") > strings.Index(output, "Foo.method (L7)") {
		t.Error("nodes should be listed by line")
	}
}

func TestRenderTableReport_OmitCovered(t *testing.T) {
	opts := sampleOptions()
	opts.OmitCovered = true

	output := renderTableReport(sampleResult(), opts)

	if strings.Contains(output, "full.py") {
		t.Errorf("fully covered file should be omitted, got:\n%s", output)
	}

	if !strings.Contains(output, "(1 of 2 files omitted due to complete coverage)") {
		t.Errorf("output should mention omitted files, got:\n%s", output)
	}
}

func TestDetailedRow_IgnoreModule(t *testing.T) {
	opts := sampleOptions()
	opts.IgnoreModule = true

	node := sampleResult().FileResults[1].Nodes[0]
	row := detailedRow(node, "partial.py", opts, newStyles(false))

	if row[0] != "partial.py" || row[1] != "" {
		t.Errorf("detailedRow() = %q, want module name without status", row)
	}
}

func TestRenderFileListTable(t *testing.T) {
	output := renderFileListTable(sampleResult().FileResults)

	for _, expected := range []string{"Path", "Nodes", "Documented", "full.py", "partial.py", "Total Files 2"} {
		if !strings.Contains(output, expected) {
			t.Errorf("output should contain %q, got:\n%s", expected, output)
		}
	}
}

func TestSeparator(t *testing.T) {
	line := separator("=", "Summary", reportWidth)
	if len(line) != reportWidth {
		t.Errorf("separator width = %d, want %d", len(line), reportWidth)
	}

	if !strings.Contains(line, " Summary ") || !strings.HasPrefix(line, "===") {
		t.Errorf("separator() = %q", line)
	}

	if plain := separator("-", "", 10); plain != "----------" {
		t.Errorf("separator() without title = %q", plain)
	}
}

func TestOmittedLine_SingleFile(t *testing.T) {
	result := sampleResult()
	result.FileResults = result.FileResults[:1]

	got := omittedLine(result, ReportOptions{OmitCovered: true})
	if got != "(1 of 1 file omitted due to complete coverage)" {
		t.Errorf("omittedLine() = %q", got)
	}

	if omittedLine(result, ReportOptions{}) != "" {
		t.Error("omittedLine() should be empty when not omitting")
	}
}

func TestHeaderBase(t *testing.T) {
	if got := headerBase(""); got != "/" {
		t.Errorf("headerBase(\"\") = %q", got)
	}

	if got := headerBase("/proj/"); got != "/proj/" {
		t.Errorf("headerBase(\"/proj/\") = %q", got)
	}
}
