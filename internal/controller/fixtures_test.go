package controller

import (
	m "doccov.dev/pkg/doccov/internal/model"
)

func sampleResult() m.RunResult {
	partial := m.FileResult{
		Filename:  "/proj/partial.py",
		ShortPath: "partial.py",
		Total:     3,
		Covered:   1,
		Missing:   2,
		Nodes: []m.CoverageNode{
			{ID: 0, Name: "partial.py", Path: "partial.py", Kind: m.KindModule, Documented: true, Parent: m.NoParent},
			{ID: 2, Name: "method", Path: "partial.py:Foo.method", Kind: m.KindFunction, Level: 2, Line: 7, Parent: 1},
			{ID: 1, Name: "Foo", Path: "partial.py:Foo", Kind: m.KindClass, Level: 1, Line: 4, Parent: 0},
		},
	}

	full := m.FileResult{
		Filename:  "/proj/full.py",
		ShortPath: "full.py",
		Total:     1,
		Covered:   1,
		Nodes: []m.CoverageNode{
			{ID: 0, Name: "full.py", Path: "full.py", Kind: m.KindModule, Documented: true, Parent: m.NoParent},
		},
	}

	return m.RunResult{
		Total:       4,
		Covered:     2,
		Missing:     2,
		ReturnCode:  1,
		FileResults: []m.FileResult{full, partial},
	}
}

func sampleOptions() ReportOptions {
	return ReportOptions{
		Format:    FormatTable,
		Verbosity: 2,
		FailUnder: 80,
		Base:      "/proj",
	}
}
