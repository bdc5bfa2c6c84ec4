// Package adapter contains filesystem, parser and report storage adapters for doccov.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "doccov.dev/pkg/doccov/internal/model"
)

const (
	pythonExt      = ".py"
	initModuleName = "__init__.py"
)

// CommonExcludes are skipped under every interrogated directory.
var CommonExcludes = []string{".tox", ".venv", "venv", ".git", ".hg"}

var (
	// ErrNoPythonFiles is returned when discovery finds nothing to interrogate.
	ErrNoPythonFiles = errors.New("no Python files found to interrogate")
	// ErrNotPython is returned when an explicit file path is not a Python file.
	ErrNotPython = errors.New("unable to interrogate non-Python file")
)

// SourceFSAdapter hides filesystem access from the domain layer.
type SourceFSAdapter interface {
	// Get expands paths into the Python files to interrogate. Directories are
	// walked recursively; explicit files are taken as given.
	Get(ctx context.Context, paths []m.Path, options ...GetOption) ([]m.File, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)
}

// GetOption customizes file discovery.
type GetOption func(*getConfig)

type getConfig struct {
	exclude          []string
	ignoreInitModule bool
}

// WithExclude skips files and directories matching any of the patterns. A
// pattern matches a path it prefixes, and may use doublestar globs.
func WithExclude(patterns ...string) GetOption {
	return func(c *getConfig) {
		c.exclude = append(c.exclude, patterns...)
	}
}

// WithIgnoreInitModule skips __init__.py files found while walking.
func WithIgnoreInitModule(ignore bool) GetOption {
	return func(c *getConfig) {
		c.ignoreInitModule = ignore
	}
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks the provided paths and returns the Python files found, in walk
// order with duplicates removed.
func (a *LocalSourceFSAdapter) Get(ctx context.Context, paths []m.Path, options ...GetOption) ([]m.File, error) {
	cfg := &getConfig{}
	for _, option := range options {
		option(cfg)
	}

	for _, pattern := range cfg.exclude {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	var files []m.File

	seen := make(map[m.Path]struct{})
	add := func(path string) {
		if _, ok := seen[m.Path(path)]; ok {
			return
		}

		seen[m.Path(path)] = struct{}{}
		files = append(files, m.File{FullPath: m.Path(path)})
	}

	for _, path := range paths {
		root, err := filepath.Abs(string(path))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", path, err)
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			if filepath.Ext(root) != pythonExt {
				return nil, fmt.Errorf("%w: %s", ErrNotPython, path)
			}

			add(root)

			continue
		}

		excludes := excludePatterns(root, cfg.exclude)

		err = filepath.WalkDir(root, func(current string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if current != root && isExcluded(current, excludes) {
				slog.Debug("excluded from interrogation", "path", current)

				if entry.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if entry.IsDir() || filepath.Ext(current) != pythonExt {
				return nil
			}

			if cfg.ignoreInitModule && entry.Name() == initModuleName {
				return nil
			}

			add(current)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoPythonFiles, joinPaths(paths))
	}

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadFile(string(path))
}

// excludePatterns resolves user patterns to absolute ones and adds the common
// excludes below root.
func excludePatterns(root string, user []string) []string {
	patterns := make([]string, 0, len(user)+len(CommonExcludes))

	for _, name := range CommonExcludes {
		patterns = append(patterns, filepath.Join(root, name))
	}

	for _, pattern := range user {
		abs, err := filepath.Abs(pattern)
		if err != nil {
			continue
		}

		patterns = append(patterns, abs)
	}

	return patterns
}

func isExcluded(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.HasPrefix(path, pattern) {
			return true
		}

		if ok, err := doublestar.PathMatch(pattern+"*", path); err == nil && ok {
			return true
		}

		if ok, err := doublestar.PathMatch(pattern, path); err == nil && ok {
			return true
		}
	}

	return false
}

func joinPaths(paths []m.Path) string {
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, string(path))
	}

	return strings.Join(parts, ", ")
}
