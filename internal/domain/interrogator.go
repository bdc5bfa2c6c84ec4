package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"doccov.dev/pkg/doccov/internal/adapter"
	m "doccov.dev/pkg/doccov/internal/model"
)

// Interrogator measures docstring coverage of already discovered files.
type Interrogator interface {
	// InterrogateFile returns nil when the file contributes nothing to the run.
	InterrogateFile(ctx context.Context, file m.File, cfg *m.Config) (*m.FileResult, error)
	Interrogate(ctx context.Context, files []m.File, cfg *m.Config, threads int) (m.RunResult, error)
}

type interrogator struct {
	adapter.SourceFSAdapter
	adapter.PythonFileAdapter
}

// NewInterrogator creates an Interrogator reading files through fsAdapter and
// parsing them with pythonAdapter.
func NewInterrogator(fsAdapter adapter.SourceFSAdapter, pythonAdapter adapter.PythonFileAdapter) Interrogator {
	return &interrogator{
		SourceFSAdapter:   fsAdapter,
		PythonFileAdapter: pythonAdapter,
	}
}

func (i *interrogator) InterrogateFile(ctx context.Context, file m.File, cfg *m.Config) (*m.FileResult, error) {
	content, err := i.ReadFile(ctx, file.FullPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.FullPath, err)
	}

	root, err := i.Parse(ctx, file.FullPath, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", file.FullPath, err)
	}

	nodes := FilterNodes(Visit(root, string(file.FullPath), cfg), cfg)
	if len(nodes) == 0 {
		slog.Debug("file contributes no nodes", "file", file.FullPath)
		return nil, nil
	}

	result := NewFileResult(file.FullPath, nodes, cfg)
	result.ShortPath = file.ShortPath

	slog.Debug("interrogated file", "file", file.FullPath, "total", result.Total, "covered", result.Covered)

	return &result, nil
}

// Interrogate processes files with at most threads workers. Results keep the
// order of files regardless of scheduling; the first failure aborts the run.
func (i *interrogator) Interrogate(ctx context.Context, files []m.File, cfg *m.Config, threads int) (m.RunResult, error) {
	if threads < 1 {
		threads = 1
	}

	slots := make([]*m.FileResult, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for idx, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, err := i.InterrogateFile(groupCtx, file, cfg)
			if err != nil {
				return err
			}

			slots[idx] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("interrogation failed", "error", err)
		return m.RunResult{}, err
	}

	results := make([]m.FileResult, 0, len(slots))
	for _, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
		}
	}

	return NewRunResult(results, cfg), nil
}
