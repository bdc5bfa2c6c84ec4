package adapter

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "doccov.dev/pkg/doccov/internal/model"
)

// DefaultBadgeFilename is used when the badge output path names a directory.
const DefaultBadgeFilename = "doccov_badge.svg"

// ReportStore persists the artifacts of a run: the text report and the badge.
type ReportStore interface {
	// OpenReport creates (or truncates) the report file at path.
	OpenReport(path m.Path) (io.WriteCloser, error)
	// SaveBadge writes svg to path and returns where it was written. The file
	// is only rewritten when its content changes.
	SaveBadge(path m.Path, svg []byte) (m.Path, error)
}

// LocalReportStore stores reports on the local filesystem.
type LocalReportStore struct{}

// NewReportStore creates a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// OpenReport creates the report file, along with missing parent directories.
func (s *LocalReportStore) OpenReport(path m.Path) (io.WriteCloser, error) {
	target := string(path)
	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}

	// #nosec G304 - path comes from the --output flag
	f, err := os.Create(target)
	if err != nil {
		return nil, fmt.Errorf("create report file: %w", err)
	}

	return f, nil
}

// SaveBadge writes the badge. A path without an extension is treated as a
// directory and gets DefaultBadgeFilename.
func (s *LocalReportStore) SaveBadge(path m.Path, svg []byte) (m.Path, error) {
	target := string(path)
	if filepath.Ext(target) == "" {
		target = filepath.Join(target, DefaultBadgeFilename)
	}

	// #nosec G304 - path comes from the --generate-badge flag
	existing, err := os.ReadFile(target)
	if err == nil && sameLines(existing, svg) {
		return m.Path(target), nil
	}

	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("read badge: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", fmt.Errorf("create badge directory: %w", err)
	}

	// #nosec G306 - the badge is meant to be published
	if err := os.WriteFile(target, svg, 0o644); err != nil {
		return "", fmt.Errorf("write badge: %w", err)
	}

	return m.Path(target), nil
}

// sameLines compares content ignoring line ending style.
func sameLines(a, b []byte) bool {
	normalize := func(in []byte) []byte {
		return bytes.ReplaceAll(in, []byte("\r\n"), []byte("\n"))
	}

	return bytes.Equal(normalize(a), normalize(b))
}
