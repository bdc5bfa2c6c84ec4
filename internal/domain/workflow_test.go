package domain_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "doccov.dev/pkg/doccov/internal/adapter/mocks"
	"doccov.dev/pkg/doccov/internal/controller"
	controllermocks "doccov.dev/pkg/doccov/internal/controller/mocks"
	"doccov.dev/pkg/doccov/internal/domain"
	domainmocks "doccov.dev/pkg/doccov/internal/domain/mocks"
	m "doccov.dev/pkg/doccov/internal/model"
)

type closeBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closeBuffer) Close() error {
	b.closed = true
	return nil
}

type workflowMocks struct {
	fs           *adaptermocks.MockSourceFSAdapter
	store        *adaptermocks.MockReportStore
	ui           *controllermocks.MockUI
	interrogator *domainmocks.MockInterrogator
}

func newWorkflowMocks(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		fs:           adaptermocks.NewMockSourceFSAdapter(t),
		store:        adaptermocks.NewMockReportStore(t),
		ui:           controllermocks.NewMockUI(t),
		interrogator: domainmocks.NewMockInterrogator(t),
	}

	return domain.NewWorkflow(mocks.fs, mocks.store, mocks.ui, mocks.interrogator), mocks
}

func sampleRun() ([]m.File, m.RunResult) {
	files := []m.File{
		{FullPath: "/proj/pkg/sub/b.py"},
		{FullPath: "/proj/pkg/a.py"},
	}

	result := m.RunResult{
		Total:   4,
		Covered: 3,
		Missing: 1,
		FileResults: []m.FileResult{
			{Filename: "/proj/pkg/sub/b.py", ShortPath: "sub/b.py", Total: 2, Covered: 1, Missing: 1},
			{Filename: "/proj/pkg/a.py", ShortPath: "a.py", Total: 2, Covered: 2},
		},
	}

	return files, result
}

func TestWorkflow_Check_DisplaysReport(t *testing.T) {
	// Arrange
	ctx := context.Background()
	wf, mocks := newWorkflowMocks(t)
	cfg := newConfig(t, m.ConfigOptions{FailUnder: 50, Color: true, OmitCovered: true})
	files, run := sampleRun()
	paths := []m.Path{"/proj/pkg"}

	mocks.fs.EXPECT().Get(ctx, paths, mock.Anything, mock.Anything).Return(files, nil)
	mocks.interrogator.EXPECT().Interrogate(ctx, mock.Anything, cfg, 2).
		RunAndReturn(func(_ context.Context, got []m.File, _ *m.Config, _ int) (m.RunResult, error) {
			assert.Equal(t, m.Path("sub/b.py"), got[0].ShortPath)
			assert.Equal(t, m.Path("a.py"), got[1].ShortPath)
			return run, nil
		})
	mocks.ui.EXPECT().DisplayReport(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, result m.RunResult, opts controller.ReportOptions) error {
			require.Len(t, result.FileResults, 2)
			assert.Equal(t, m.Path("/proj/pkg/a.py"), result.FileResults[0].Filename, "files sort by directory first")
			assert.Equal(t, m.Path("/proj/pkg"), opts.Base)
			assert.Equal(t, 2, opts.Verbosity)
			assert.InDelta(t, 50.0, opts.FailUnder, 0.001)
			assert.True(t, opts.OmitCovered)
			assert.True(t, opts.Color)
			assert.Equal(t, controller.FormatTable, opts.Format)
			return nil
		})

	// Act
	result, err := wf.Check(ctx, domain.CheckArgs{
		DiscoverArgs: domain.DiscoverArgs{Paths: paths, Config: cfg, Parallel: 2},
		Verbosity:    2,
		Format:       controller.FormatTable,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.InDelta(t, 75.0, result.PercentCovered(), 0.001)
}

func TestWorkflow_Check_Quiet(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newWorkflowMocks(t)
	cfg := newConfig(t, m.ConfigOptions{})
	files, run := sampleRun()

	mocks.fs.EXPECT().Get(ctx, mock.Anything, mock.Anything, mock.Anything).Return(files, nil)
	mocks.interrogator.EXPECT().Interrogate(ctx, mock.Anything, cfg, 1).Return(run, nil)

	_, err := wf.Check(ctx, domain.CheckArgs{
		DiscoverArgs: domain.DiscoverArgs{Config: cfg, Parallel: 1},
		Quiet:        true,
	})

	require.NoError(t, err)
	mocks.ui.AssertNotCalled(t, "DisplayReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Check_WritesReportFile(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newWorkflowMocks(t)
	cfg := newConfig(t, m.ConfigOptions{FailUnder: 90, Color: true})
	files, run := sampleRun()
	run.ReturnCode = 1

	buf := &closeBuffer{}

	mocks.fs.EXPECT().Get(ctx, mock.Anything, mock.Anything, mock.Anything).Return(files, nil)
	mocks.interrogator.EXPECT().Interrogate(ctx, mock.Anything, cfg, 1).Return(run, nil)
	mocks.store.EXPECT().OpenReport(m.Path("report.txt")).Return(buf, nil)

	result, err := wf.Check(ctx, domain.CheckArgs{
		DiscoverArgs: domain.DiscoverArgs{Config: cfg, Parallel: 1},
		Verbosity:    1,
		Output:       "report.txt",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.ReturnCode)
	assert.True(t, buf.closed)
	assert.Contains(t, buf.String(), "RESULT: FAILED (minimum: 90%, actual: 75.0%)")
	assert.NotContains(t, buf.String(), "\x1b[", "report files carry no ANSI markup")
}

func TestWorkflow_Check_Badge(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newWorkflowMocks(t)
	cfg := newConfig(t, m.ConfigOptions{})
	files, run := sampleRun()

	mocks.fs.EXPECT().Get(ctx, mock.Anything, mock.Anything, mock.Anything).Return(files, nil)
	mocks.interrogator.EXPECT().Interrogate(ctx, mock.Anything, cfg, 1).Return(run, nil)
	mocks.store.EXPECT().SaveBadge(m.Path("docs"), mock.Anything).
		RunAndReturn(func(_ m.Path, svg []byte) (m.Path, error) {
			assert.Contains(t, string(svg), "75.0%")
			assert.Contains(t, string(svg), domain.ColorYellowGreen)
			return "docs/doccov_badge.svg", nil
		})

	_, err := wf.Check(ctx, domain.CheckArgs{
		DiscoverArgs: domain.DiscoverArgs{Config: cfg, Parallel: 1},
		Quiet:        true,
		Badge:        "docs",
	})

	require.NoError(t, err)
}

func TestWorkflow_Check_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing configuration", func(t *testing.T) {
		wf, _ := newWorkflowMocks(t)

		_, err := wf.Check(ctx, domain.CheckArgs{})
		assert.Error(t, err)
	})

	t.Run("discovery failure", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)
		discoverErr := errors.New("no python files")

		mocks.fs.EXPECT().Get(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, discoverErr)

		_, err := wf.Check(ctx, domain.CheckArgs{DiscoverArgs: domain.DiscoverArgs{Config: newConfig(t, m.ConfigOptions{})}})
		assert.ErrorIs(t, err, discoverErr)
	})

	t.Run("interrogation failure", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)
		cfg := newConfig(t, m.ConfigOptions{})
		files, _ := sampleRun()
		parseErr := errors.New("syntax error")

		mocks.fs.EXPECT().Get(ctx, mock.Anything, mock.Anything, mock.Anything).Return(files, nil)
		mocks.interrogator.EXPECT().Interrogate(ctx, mock.Anything, cfg, 0).Return(m.RunResult{}, parseErr)

		_, err := wf.Check(ctx, domain.CheckArgs{DiscoverArgs: domain.DiscoverArgs{Config: cfg}})
		assert.ErrorIs(t, err, parseErr)
	})

	t.Run("display failure", func(t *testing.T) {
		wf, mocks := newWorkflowMocks(t)
		cfg := newConfig(t, m.ConfigOptions{})
		files, run := sampleRun()
		displayErr := errors.New("broken pipe")

		mocks.fs.EXPECT().Get(ctx, mock.Anything, mock.Anything, mock.Anything).Return(files, nil)
		mocks.interrogator.EXPECT().Interrogate(ctx, mock.Anything, cfg, 0).Return(run, nil)
		mocks.ui.EXPECT().DisplayReport(ctx, mock.Anything, mock.Anything).Return(displayErr)

		_, err := wf.Check(ctx, domain.CheckArgs{DiscoverArgs: domain.DiscoverArgs{Config: cfg}})
		assert.ErrorIs(t, err, displayErr)
	})
}

func TestWorkflow_List(t *testing.T) {
	ctx := context.Background()
	wf, mocks := newWorkflowMocks(t)
	cfg := newConfig(t, m.ConfigOptions{})
	files, run := sampleRun()

	mocks.fs.EXPECT().Get(ctx, mock.Anything, mock.Anything, mock.Anything).Return(files, nil)
	mocks.interrogator.EXPECT().Interrogate(ctx, mock.Anything, cfg, 4).Return(run, nil)
	mocks.ui.EXPECT().DisplayFileList(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, results []m.FileResult) error {
			require.Len(t, results, 2)
			assert.Equal(t, m.Path("a.py"), results[0].DisplayPath())
			return nil
		})

	err := wf.List(ctx, domain.ListArgs{DiscoverArgs: domain.DiscoverArgs{Config: cfg, Parallel: 4}})
	require.NoError(t, err)
}
