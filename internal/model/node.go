// Package model defines the data structures shared by the docstring coverage engine.
package model

// NodeKind is the kind of a documentable construct.
type NodeKind string

const (
	// KindModule is a source file.
	KindModule NodeKind = "module"
	// KindClass is a class definition.
	KindClass NodeKind = "class"
	// KindFunction is a function or method definition.
	KindFunction NodeKind = "function"
	// KindAsyncFunction is an async function or method definition.
	KindAsyncFunction NodeKind = "async_function"
)

// IsFunction reports whether the kind is a plain or async function.
func (k NodeKind) IsFunction() bool {
	return k == KindFunction || k == KindAsyncFunction
}

// NoParent marks the module root of a file arena.
const NoParent = -1

// CoverageNode is one documentable construct and its classification.
//
// Nodes of a file live in a flat arena; Parent is the index of the enclosing
// node in that same arena.
type CoverageNode struct {
	ID             int      `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Path           string   `json:"path" yaml:"path"`
	Level          int      `json:"level" yaml:"level"`
	Line           int      `json:"line,omitempty" yaml:"line,omitempty"` // 0 when the node has no physical line
	Documented     bool     `json:"documented" yaml:"documented"`
	Kind           NodeKind `json:"kind" yaml:"kind"`
	NestedFunction bool     `json:"nested_function" yaml:"nested_function"`
	NestedClass    bool     `json:"nested_class" yaml:"nested_class"`
	Parent         int      `json:"parent" yaml:"parent"`
}

// HasParent reports whether the node has an enclosing node.
func (n CoverageNode) HasParent() bool {
	return n.Parent != NoParent
}

// SyntaxNode is a parser-neutral view of a documentable construct as found in
// the source tree.
type SyntaxNode struct {
	Kind       NodeKind
	Name       string
	Line       int
	Decorators []Decorator
	Docstring  string
	Children   []*SyntaxNode
}
