package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "doccov.dev/pkg/doccov/internal/model"
)

const sampleDir = "../../examples/sample"

func newConfig(t *testing.T, opts m.ConfigOptions) *m.Config {
	t.Helper()

	cfg, err := m.NewConfig(opts)
	require.NoError(t, err)

	return cfg
}

func module(doc string, children ...*m.SyntaxNode) *m.SyntaxNode {
	return &m.SyntaxNode{Kind: m.KindModule, Docstring: doc, Children: children}
}

func class(name, doc string, line int, children ...*m.SyntaxNode) *m.SyntaxNode {
	return &m.SyntaxNode{Kind: m.KindClass, Name: name, Line: line, Docstring: doc, Children: children}
}

func function(name, doc string, line int, children ...*m.SyntaxNode) *m.SyntaxNode {
	return &m.SyntaxNode{Kind: m.KindFunction, Name: name, Line: line, Docstring: doc, Children: children}
}

func decorated(node *m.SyntaxNode, decorators ...m.Decorator) *m.SyntaxNode {
	node.Decorators = decorators
	return node
}

func names(nodes []m.CoverageNode) []string {
	out := make([]string, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, node.Name)
	}

	return out
}
