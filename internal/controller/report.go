package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	m "doccov.dev/pkg/doccov/internal/model"
)

// WriteReport renders result to w in opts.Format.
func WriteReport(w io.Writer, result m.RunResult, opts ReportOptions) error {
	switch opts.Format {
	case FormatTable, "":
		_, err := io.WriteString(w, renderTableReport(result, opts))
		return err
	case FormatMarkdown:
		return writeMarkdownReport(w, result, opts)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(newReportDocument(result, opts))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(newReportDocument(result, opts)); err != nil {
			return err
		}

		return encoder.Close()
	}

	return fmt.Errorf("unknown report format %q", opts.Format)
}

type reportDocument struct {
	Status         string       `json:"status" yaml:"status"`
	FailUnder      float64      `json:"fail_under" yaml:"fail_under"`
	PercentCovered float64      `json:"percent_covered" yaml:"percent_covered"`
	Total          int          `json:"total" yaml:"total"`
	Covered        int          `json:"covered" yaml:"covered"`
	Missing        int          `json:"missing" yaml:"missing"`
	ReturnCode     int          `json:"return_code" yaml:"return_code"`
	OmittedFiles   int          `json:"omitted_files,omitempty" yaml:"omitted_files,omitempty"`
	Files          []fileReport `json:"files" yaml:"files"`
}

type fileReport struct {
	Filename       string           `json:"filename" yaml:"filename"`
	PercentCovered float64          `json:"percent_covered" yaml:"percent_covered"`
	Total          int              `json:"total" yaml:"total"`
	Covered        int              `json:"covered" yaml:"covered"`
	Missing        int              `json:"missing" yaml:"missing"`
	Nodes          []m.CoverageNode `json:"nodes" yaml:"nodes"`
}

func newReportDocument(result m.RunResult, opts ReportOptions) reportDocument {
	doc := reportDocument{
		Status:         statusPassed,
		FailUnder:      opts.FailUnder,
		PercentCovered: roundPercent(result.PercentCovered()),
		Total:          result.Total,
		Covered:        result.Covered,
		Missing:        result.Missing,
		ReturnCode:     result.ReturnCode,
		Files:          make([]fileReport, 0, len(result.FileResults)),
	}

	if !result.Passed() {
		doc.Status = statusFailed
	}

	for _, file := range result.FileResults {
		if opts.OmitCovered && file.PercentCovered() == 100 {
			doc.OmittedFiles++
			continue
		}

		doc.Files = append(doc.Files, fileReport{
			Filename:       string(file.DisplayPath()),
			PercentCovered: roundPercent(file.PercentCovered()),
			Total:          file.Total,
			Covered:        file.Covered,
			Missing:        file.Missing,
			Nodes:          sortNodesByLine(file.Nodes),
		})
	}

	return doc
}

func roundPercent(value float64) float64 {
	return math.Round(value*10) / 10
}
