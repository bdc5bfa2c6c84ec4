package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"doccov.dev/pkg/doccov/internal/adapter"
	"doccov.dev/pkg/doccov/internal/controller"
	m "doccov.dev/pkg/doccov/internal/model"
)

// DiscoverArgs selects the files of a run.
type DiscoverArgs struct {
	Paths    []m.Path
	Exclude  []string
	Config   *m.Config
	Parallel int
}

// CheckArgs contains the arguments for measuring coverage.
type CheckArgs struct {
	DiscoverArgs
	Verbosity int
	Quiet     bool
	Format    controller.ReportFormat
	Output    m.Path // report file, stdout when empty
	Badge     m.Path // badge file or directory, no badge when empty
}

// ListArgs contains the arguments for listing interrogated files.
type ListArgs struct {
	DiscoverArgs
}

// Workflow defines the docstring coverage use cases.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) (m.RunResult, error)
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	Interrogator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	interrogator Interrogator,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Interrogator:    interrogator,
	}
}

// Check interrogates the files, reports the result and writes the badge. The
// threshold verdict is carried in the returned RunResult.ReturnCode.
func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.RunResult, error) {
	result, base, err := w.run(ctx, args.DiscoverArgs)
	if err != nil {
		return m.RunResult{}, err
	}

	if !args.Quiet {
		opts := controller.ReportOptions{
			Format:       args.Format,
			Verbosity:    args.Verbosity,
			FailUnder:    args.Config.FailUnder,
			OmitCovered:  args.Config.OmitCovered,
			IgnoreModule: args.Config.Module,
			Color:        args.Config.Color,
			Base:         base,
		}

		if err := w.report(ctx, result, opts, args.Output); err != nil {
			slog.Error("Failed to write report", "error", err)
			return m.RunResult{}, fmt.Errorf("report: %w", err)
		}
	}

	if args.Badge != "" {
		if err := w.badge(result, args.Badge); err != nil {
			slog.Error("Failed to generate badge", "error", err)
			return m.RunResult{}, fmt.Errorf("badge: %w", err)
		}
	}

	slog.Info("coverage measured",
		"files", len(result.FileResults),
		"total", result.Total,
		"covered", result.Covered,
		"percent", result.PercentCovered(),
		"return_code", result.ReturnCode,
	)

	return result, nil
}

// List shows the files a check would interrogate along with their node counts.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	result, _, err := w.run(ctx, args.DiscoverArgs)
	if err != nil {
		return err
	}

	if err := w.DisplayFileList(ctx, result.FileResults); err != nil {
		slog.Error("Failed to display file list", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) run(ctx context.Context, args DiscoverArgs) (m.RunResult, m.Path, error) {
	if args.Config == nil {
		return m.RunResult{}, "", errors.New("missing configuration")
	}

	files, err := w.Get(ctx, args.Paths,
		adapter.WithExclude(args.Exclude...),
		adapter.WithIgnoreInitModule(args.Config.InitModule),
	)
	if err != nil {
		slog.Error("Failed to discover files", "error", err)
		return m.RunResult{}, "", fmt.Errorf("discover files: %w", err)
	}

	base := shortenPaths(files)

	result, err := w.Interrogate(ctx, files, args.Config, args.Parallel)
	if err != nil {
		return m.RunResult{}, "", fmt.Errorf("interrogate: %w", err)
	}

	result.FileResults = sortFileResults(result.FileResults)

	return result, base, nil
}

func (w *workflow) report(ctx context.Context, result m.RunResult, opts controller.ReportOptions, output m.Path) error {
	if output == "" {
		return w.DisplayReport(ctx, result, opts)
	}

	f, err := w.OpenReport(output)
	if err != nil {
		return err
	}

	// files never get ANSI markup
	opts.Color = false

	if err := controller.WriteReport(f, result, opts); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (w *workflow) badge(result m.RunResult, output m.Path) error {
	svg, err := RenderBadge(result.PercentCovered())
	if err != nil {
		return err
	}

	path, err := w.SaveBadge(output, svg)
	if err != nil {
		return err
	}

	slog.Info("badge written", "path", path)

	return nil
}

// shortenPaths fills ShortPath relative to the deepest directory shared by
// all files and returns that directory.
func shortenPaths(files []m.File) m.Path {
	if len(files) == 0 {
		return ""
	}

	base := filepath.Dir(string(files[0].FullPath))
	for _, file := range files[1:] {
		base = commonDir(base, filepath.Dir(string(file.FullPath)))
	}

	for i := range files {
		rel, err := filepath.Rel(base, string(files[i].FullPath))
		if err != nil {
			rel = string(files[i].FullPath)
		}

		files[i].ShortPath = m.Path(rel)
	}

	return m.Path(base)
}

func commonDir(a, b string) string {
	for a != b {
		if len(a) > len(b) {
			a = filepath.Dir(a)
		} else {
			b = filepath.Dir(b)
		}

		if a == filepath.Dir(a) && b == filepath.Dir(b) && a != b {
			return string(filepath.Separator)
		}
	}

	return a
}

// sortFileResults orders results by directory first, then by file name.
func sortFileResults(results []m.FileResult) []m.FileResult {
	sorted := make([]m.FileResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := filepath.Dir(string(sorted[i].Filename)), filepath.Dir(string(sorted[j].Filename))
		if di != dj {
			return strings.Compare(di, dj) < 0
		}

		return sorted[i].Filename < sorted[j].Filename
	})

	return sorted
}
