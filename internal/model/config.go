package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DocstringStyle selects how class and constructor docstrings relate.
type DocstringStyle string

const (
	// StyleSphinx requires every construct to carry its own docstring.
	StyleSphinx DocstringStyle = "sphinx"
	// StyleGoogle treats a class and its __init__ as equally documented.
	StyleGoogle DocstringStyle = "google"
)

// DefaultFailUnder is the threshold used when none is configured.
const DefaultFailUnder = 80.0

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidDocstringStyles lists the accepted style names.
var ValidDocstringStyles = []DocstringStyle{StyleSphinx, StyleGoogle}

// IgnoreOptions groups the per-construct exclusion toggles.
type IgnoreOptions struct {
	InitMethod          bool
	InitModule          bool
	Magic               bool
	Module              bool
	Private             bool
	Semiprivate         bool
	PropertyDecorators  bool
	PropertySetters     bool
	NestedFunctions     bool
	NestedClasses       bool
	OverloadedFunctions bool
}

// ConfigOptions are the raw, unvalidated settings assembled from flags,
// config files and defaults.
type ConfigOptions struct {
	DocstringStyle string
	FailUnder      float64
	Ignore         IgnoreOptions
	IgnoreRegex    []string
	IncludeRegex   []string
	OmitCovered    bool
	Color          bool
}

// Config is the validated, read-only configuration of a single run.
type Config struct {
	IgnoreOptions

	DocstringStyle DocstringStyle
	FailUnder      float64
	IgnoreRegex    []*regexp.Regexp
	IncludeRegex   []*regexp.Regexp
	OmitCovered    bool
	Color          bool

	failUnderDecimals int
}

// NewConfig validates opts and builds a Config.
func NewConfig(opts ConfigOptions) (*Config, error) {
	style := DocstringStyle(strings.ToLower(strings.TrimSpace(opts.DocstringStyle)))
	if style == "" {
		style = StyleSphinx
	}

	if !isValidStyle(style) {
		return nil, fmt.Errorf("%w: docstring style %q is not one of %v", ErrInvalidConfig, opts.DocstringStyle, ValidDocstringStyles)
	}

	if opts.FailUnder < 0 || opts.FailUnder > 100 {
		return nil, fmt.Errorf("%w: fail-under %v must be between 0 and 100", ErrInvalidConfig, opts.FailUnder)
	}

	ignoreRegex, err := compileAnchored(opts.IgnoreRegex)
	if err != nil {
		return nil, fmt.Errorf("%w: ignore regex: %w", ErrInvalidConfig, err)
	}

	includeRegex, err := compileAnchored(opts.IncludeRegex)
	if err != nil {
		return nil, fmt.Errorf("%w: include regex: %w", ErrInvalidConfig, err)
	}

	return &Config{
		IgnoreOptions:     opts.Ignore,
		DocstringStyle:    style,
		FailUnder:         opts.FailUnder,
		IgnoreRegex:       ignoreRegex,
		IncludeRegex:      includeRegex,
		OmitCovered:       opts.OmitCovered,
		Color:             opts.Color,
		failUnderDecimals: decimalPlaces(opts.FailUnder),
	}, nil
}

// FailUnderDecimals returns the number of decimal places written in the
// fail-under threshold (48.35 -> 2, 80 -> 0).
func (c *Config) FailUnderDecimals() int {
	return c.failUnderDecimals
}

func isValidStyle(style DocstringStyle) bool {
	for _, valid := range ValidDocstringStyles {
		if style == valid {
			return true
		}
	}

	return false
}

// compileAnchored compiles each pattern so it only matches at the start of
// the subject.
func compileAnchored(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(`^(?:` + pattern + `)`)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func decimalPlaces(value float64) int {
	text := strconv.FormatFloat(value, 'f', -1, 64)

	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}

	return len(text) - dot - 1
}
