package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
	domainmocks "doccov.dev/pkg/doccov/internal/domain/mocks"
	m "doccov.dev/pkg/doccov/internal/model"
)

func TestListCmd_PassesPathsAndIgnoreOptions(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 1 &&
			args.Paths[0] == m.Path("pkg") &&
			args.Config.InitModule &&
			args.Config.Module &&
			len(args.Exclude) == 1 &&
			args.Exclude[0] == "pkg/vendored"
	})).Return(nil)

	cmd.SetArgs([]string{"--log-file", filepath.Join(t.TempDir(), "doccov.log"), "list", "-I", "-M", "-e", "pkg/vendored", "pkg"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestListCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	wantErr := errors.New("interrogate: syntax error")
	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).Return(wantErr)

	cmd.SetArgs([]string{"--log-file", filepath.Join(t.TempDir(), "doccov.log"), "list"})
	err := cmd.Execute()
	require.ErrorIs(t, err, wantErr)
}

func TestListCmd_RejectsCheckOnlyFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"list", "--fail-under", "90"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}
