package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccov.dev/pkg/doccov/internal/domain"
	m "doccov.dev/pkg/doccov/internal/model"
)

func TestFilterNodes_ModuleOnlyFile(t *testing.T) {
	t.Run("dropped when module docstrings are ignored", func(t *testing.T) {
		cfg := newConfig(t, m.ConfigOptions{Ignore: m.IgnoreOptions{Module: true}})

		assert.Nil(t, domain.FilterNodes(domain.Visit(module("docs"), "mod.py", cfg), cfg))
	})

	t.Run("kept otherwise", func(t *testing.T) {
		cfg := newConfig(t, m.ConfigOptions{})

		assert.Len(t, domain.FilterNodes(domain.Visit(module(""), "mod.py", cfg), cfg), 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, domain.FilterNodes(nil, newConfig(t, m.ConfigOptions{})))
	})
}

func TestFilterNodes_IncludeWhitelist(t *testing.T) {
	root := module("docs",
		class("Foo", "", 1,
			function("get_x", "", 2),
			function("get_y", "", 4),
			function("set_x", "", 6),
		),
		function("get_top", "", 9),
		function("other", "", 11),
	)

	t.Run("matching names and the module survive", func(t *testing.T) {
		cfg := newConfig(t, m.ConfigOptions{IncludeRegex: []string{"get"}})

		filtered := domain.FilterNodes(domain.Visit(root, "mod.py", cfg), cfg)
		assert.Equal(t, []string{"mod.py", "get_x", "get_y", "get_top"}, names(filtered))
	})

	t.Run("children of a matching class are not pulled in", func(t *testing.T) {
		cfg := newConfig(t, m.ConfigOptions{IncludeRegex: []string{"Foo"}})

		filtered := domain.FilterNodes(domain.Visit(root, "mod.py", cfg), cfg)
		assert.Equal(t, []string{"mod.py", "Foo"}, names(filtered))
	})

	t.Run("nothing matched", func(t *testing.T) {
		cfg := newConfig(t, m.ConfigOptions{IncludeRegex: []string{"nomatch"}})

		assert.Nil(t, domain.FilterNodes(domain.Visit(root, "mod.py", cfg), cfg))
	})
}

func TestFilterNodes_NestedFunctions(t *testing.T) {
	cfg := newConfig(t, m.ConfigOptions{Ignore: m.IgnoreOptions{NestedFunctions: true}})

	root := module("docs",
		class("Foo", "", 1,
			function("method", "", 2,
				function("helper", "", 3),
			),
		),
		function("top", "", 6,
			function("inner", "", 7),
		),
	)

	filtered := domain.FilterNodes(domain.Visit(root, "mod.py", cfg), cfg)
	assert.Equal(t, []string{"mod.py", "Foo", "method", "top"}, names(filtered))
}

func TestFilterNodes_NestedClasses(t *testing.T) {
	cfg := newConfig(t, m.ConfigOptions{Ignore: m.IgnoreOptions{NestedClasses: true}})

	root := module("docs",
		class("Outer", "", 1,
			class("InClass", "", 2,
				function("in_class_method", "", 3),
			),
			function("method", "", 5,
				class("InMethod", "", 6),
			),
		),
	)

	filtered := domain.FilterNodes(domain.Visit(root, "mod.py", cfg), cfg)
	assert.Equal(t, []string{"mod.py", "Outer", "method"}, names(filtered))

	for _, node := range filtered {
		assert.Equal(t, node.Name, node.Path[len(node.Path)-len(node.Name):])
	}
}

func TestFilterNodes_GoogleStyleMerge(t *testing.T) {
	root := module("docs",
		class("A", "A docs.", 1, function("__init__", "", 2)),
		class("B", "", 5, function("__init__", "B init docs.", 6)),
		class("C", "", 9, function("__init__", "", 10)),
		function("__init__", "", 13),
	)

	documented := func(nodes []m.CoverageNode) map[string]bool {
		out := map[string]bool{}
		for _, node := range nodes {
			out[node.Path] = node.Documented
		}

		return out
	}

	t.Run("sphinx leaves nodes alone", func(t *testing.T) {
		cfg := newConfig(t, m.ConfigOptions{DocstringStyle: "sphinx"})

		filtered := domain.FilterNodes(domain.Visit(root, "mod.py", cfg), cfg)
		assert.Equal(t, map[string]bool{
			"mod.py":            true,
			"mod.py:A":          true,
			"mod.py:A.__init__": false,
			"mod.py:B":          false,
			"mod.py:B.__init__": true,
			"mod.py:C":          false,
			"mod.py:C.__init__": false,
			"mod.py:__init__":   false,
		}, documented(filtered))
	})

	t.Run("google shares status in both directions", func(t *testing.T) {
		cfg := newConfig(t, m.ConfigOptions{DocstringStyle: "google"})

		visited := domain.Visit(root, "mod.py", cfg)
		filtered := domain.FilterNodes(visited, cfg)

		assert.Equal(t, map[string]bool{
			"mod.py":            true,
			"mod.py:A":          true,
			"mod.py:A.__init__": true,
			"mod.py:B":          true,
			"mod.py:B.__init__": true,
			"mod.py:C":          false,
			"mod.py:C.__init__": false,
			"mod.py:__init__":   false,
		}, documented(filtered))

		// the visited arena is not touched
		assert.False(t, documented(visited)["mod.py:A.__init__"])
		assert.False(t, documented(visited)["mod.py:B"])
	})
}

func TestFilterNodes_Idempotent(t *testing.T) {
	root := module("docs",
		class("Outer", "", 1,
			function("__init__", "init docs", 2),
			class("Inner", "", 4,
				function("method", "", 5),
			),
			function("get_value", "", 7,
				function("helper", "", 8),
			),
		),
		function("get_top", "", 11),
	)

	configs := map[string]m.ConfigOptions{
		"defaults":         {},
		"google":           {DocstringStyle: "google"},
		"nested functions": {Ignore: m.IgnoreOptions{NestedFunctions: true}},
		"nested classes":   {Ignore: m.IgnoreOptions{NestedClasses: true}, DocstringStyle: "google"},
		"whitelist":        {IncludeRegex: []string{"get_", "__init__"}, DocstringStyle: "google"},
	}

	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			cfg := newConfig(t, opts)

			once := domain.FilterNodes(domain.Visit(root, "mod.py", cfg), cfg)
			require.NotEmpty(t, once)

			assert.Equal(t, once, domain.FilterNodes(once, cfg))
		})
	}
}
