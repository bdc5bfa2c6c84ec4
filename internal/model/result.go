package model

// FileResult holds the coverage tally of a single source file.
type FileResult struct {
	Filename  Path           `json:"filename" yaml:"filename"`
	ShortPath Path           `json:"short_path" yaml:"short_path"`
	Total     int            `json:"total" yaml:"total"`
	Covered   int            `json:"covered" yaml:"covered"`
	Missing   int            `json:"missing" yaml:"missing"`
	Nodes     []CoverageNode `json:"nodes" yaml:"nodes"`
}

// PercentCovered returns the file coverage, 100 when nothing is counted.
func (r FileResult) PercentCovered() float64 {
	return percent(r.Covered, r.Total)
}

// DisplayPath returns the short path when one is known.
func (r FileResult) DisplayPath() Path {
	if r.ShortPath != "" {
		return r.ShortPath
	}

	return r.Filename
}

// RunResult holds the totals across every interrogated file.
type RunResult struct {
	Total       int          `json:"total" yaml:"total"`
	Covered     int          `json:"covered" yaml:"covered"`
	Missing     int          `json:"missing" yaml:"missing"`
	ReturnCode  int          `json:"return_code" yaml:"return_code"`
	FileResults []FileResult `json:"files" yaml:"files"`
}

// PercentCovered returns the total coverage, 100 when nothing is counted.
func (r RunResult) PercentCovered() float64 {
	return percent(r.Covered, r.Total)
}

// Passed reports whether the run met the threshold.
func (r RunResult) Passed() bool {
	return r.ReturnCode == 0
}

func percent(covered, total int) float64 {
	if total == 0 {
		return 100.0
	}

	return float64(covered) / float64(total) * 100
}
