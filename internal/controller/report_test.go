package controller

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteReport_JSON(t *testing.T) {
	opts := sampleOptions()
	opts.Format = FormatJSON
	opts.OmitCovered = true

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleResult(), opts))

	var doc reportDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, statusFailed, doc.Status)
	assert.InDelta(t, 50.0, doc.PercentCovered, 0.001)
	assert.Equal(t, 4, doc.Total)
	assert.Equal(t, 1, doc.ReturnCode)
	assert.Equal(t, 1, doc.OmittedFiles)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, "partial.py", doc.Files[0].Filename)
	assert.InDelta(t, 33.3, doc.Files[0].PercentCovered, 0.001)
	require.Len(t, doc.Files[0].Nodes, 3)
	assert.Equal(t, "partial.py:Foo", doc.Files[0].Nodes[1].Path, "nodes are ordered by line")
}

func TestWriteReport_YAML(t *testing.T) {
	opts := sampleOptions()
	opts.Format = FormatYAML

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleResult(), opts))

	var doc reportDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, statusFailed, doc.Status)
	assert.Len(t, doc.Files, 2)
	assert.Contains(t, buf.String(), "fail_under: 80")
}

func TestWriteReport_Markdown(t *testing.T) {
	opts := sampleOptions()
	opts.Format = FormatMarkdown

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleResult(), opts))

	output := buf.String()
	for _, expected := range []string{
		"# Docstring Coverage",
		"**FAILED**",
		"## Detailed Coverage",
		"### partial.py",
		"`Foo.method (L7)`",
		"## Summary",
		"**TOTAL**",
		"50.0%",
	} {
		assert.Contains(t, output, expected)
	}

	assert.False(t, strings.Contains(output, "\x1b["), "markdown never carries ANSI markup")
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	opts := sampleOptions()
	opts.Format = "xml"

	err := WriteReport(&bytes.Buffer{}, sampleResult(), opts)
	assert.Error(t, err)
}

func TestParseReportFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected ReportFormat
		wantErr  bool
	}{
		{in: "", expected: FormatTable},
		{in: "TABLE", expected: FormatTable},
		{in: " markdown ", expected: FormatMarkdown},
		{in: "json", expected: FormatJSON},
		{in: "yaml", expected: FormatYAML},
		{in: "html", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseReportFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}

		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.expected, got)
	}
}
