package domain

import (
	"math"

	m "doccov.dev/pkg/doccov/internal/model"
)

// NewFileResult tallies the filtered nodes of one file. The module node stays
// in Nodes but is not counted when module docstrings are ignored.
func NewFileResult(filename m.Path, nodes []m.CoverageNode, cfg *m.Config) m.FileResult {
	result := m.FileResult{
		Filename: filename,
		Nodes:    nodes,
	}

	for _, node := range nodes {
		if cfg.Module && node.Kind == m.KindModule {
			continue
		}

		result.Total++
		if node.Documented {
			result.Covered++
		}
	}

	result.Missing = result.Total - result.Covered

	return result
}

// NewRunResult sums the file results and decides the return code against the
// fail-under threshold.
func NewRunResult(files []m.FileResult, cfg *m.Config) m.RunResult {
	result := m.RunResult{FileResults: files}

	for _, file := range files {
		result.Total += file.Total
		result.Covered += file.Covered
		result.Missing += file.Missing
	}

	if !MeetsThreshold(result.PercentCovered(), cfg) {
		result.ReturnCode = 1
	}

	return result
}

// MeetsThreshold rounds percent to the precision the threshold was written
// with and fails only when the threshold is strictly greater.
func MeetsThreshold(percent float64, cfg *m.Config) bool {
	return !(cfg.FailUnder > roundTo(percent, cfg.FailUnderDecimals()))
}

func roundTo(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(value*pow) / pow
}
