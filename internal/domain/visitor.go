package domain

import (
	"path/filepath"
	"strings"

	m "doccov.dev/pkg/doccov/internal/model"
)

const (
	initMethodName = "__init__"
	dunder         = "__"
)

// Visit walks a parsed file depth-first and returns its coverage nodes in
// document order. The module root is always recorded; a class or function
// excluded by cfg is skipped together with its whole subtree.
func Visit(root *m.SyntaxNode, filename string, cfg *m.Config) []m.CoverageNode {
	if root == nil {
		return nil
	}

	v := &treeVisitor{
		moduleName: filepath.Base(filename),
		cfg:        cfg,
	}
	v.visit(root)

	return v.nodes
}

type treeVisitor struct {
	moduleName string
	cfg        *m.Config
	stack      []int
	nodes      []m.CoverageNode
}

func (v *treeVisitor) visit(node *m.SyntaxNode) {
	if node.Kind != m.KindModule && v.isIgnored(node) {
		return
	}

	id := v.record(node)

	v.stack = append(v.stack, id)
	for _, child := range node.Children {
		v.visit(child)
	}
	v.stack = v.stack[:len(v.stack)-1]
}

func (v *treeVisitor) record(node *m.SyntaxNode) int {
	name := node.Name
	if node.Kind == m.KindModule {
		name = v.moduleName
	}

	cov := m.CoverageNode{
		ID:         len(v.nodes),
		Name:       name,
		Path:       name,
		Level:      len(v.stack),
		Line:       node.Line,
		Documented: hasDocstring(node),
		Kind:       node.Kind,
		Parent:     m.NoParent,
	}

	if len(v.stack) > 0 {
		parent := v.nodes[v.stack[len(v.stack)-1]]
		cov.Parent = parent.ID

		sep := "."
		if parent.Kind == m.KindModule {
			sep = ":"
		}

		cov.Path = parent.Path + sep + name
		cov.NestedFunction = node.Kind.IsFunction() && parent.Kind.IsFunction()
		cov.NestedClass = node.Kind == m.KindClass && (parent.Kind == m.KindClass || parent.Kind.IsFunction())
	}

	v.nodes = append(v.nodes, cov)

	return cov.ID
}

func (v *treeVisitor) isIgnored(node *m.SyntaxNode) bool {
	switch node.Kind {
	case m.KindClass:
		return v.isIgnoredCommon(node)
	case m.KindFunction, m.KindAsyncFunction:
		return v.isFuncIgnored(node)
	}

	return false
}

func (v *treeVisitor) isIgnoredCommon(node *m.SyntaxNode) bool {
	if v.cfg.Private && isPrivate(node.Name) {
		return true
	}

	if v.cfg.Semiprivate && isSemiprivate(node.Name) {
		return true
	}

	for _, re := range v.cfg.IgnoreRegex {
		if re.MatchString(node.Name) {
			return true
		}
	}

	return false
}

func (v *treeVisitor) isFuncIgnored(node *m.SyntaxNode) bool {
	if v.cfg.InitMethod && node.Name == initMethodName {
		return true
	}

	if v.cfg.Magic && isMagic(node.Name) {
		return true
	}

	if v.cfg.PropertyDecorators && anyDecorator(node.Decorators, isPropertyDecorator) {
		return true
	}

	if v.cfg.PropertySetters && anyDecorator(node.Decorators, isSetterDecorator) {
		return true
	}

	if v.cfg.OverloadedFunctions && anyDecorator(node.Decorators, isOverloadDecorator) {
		return true
	}

	return v.isIgnoredCommon(node)
}

func hasDocstring(node *m.SyntaxNode) bool {
	return strings.TrimSpace(node.Docstring) != ""
}

// isPrivate reports a name-mangled name such as __x (but not __x__).
func isPrivate(name string) bool {
	return strings.HasPrefix(name, dunder) && !strings.HasSuffix(name, dunder)
}

// isSemiprivate reports a name such as _x (but not __x or _x__).
func isSemiprivate(name string) bool {
	return strings.HasPrefix(name, "_") && !strings.HasPrefix(name, dunder) && !strings.HasSuffix(name, dunder)
}

// isMagic reports a dunder name other than __init__.
func isMagic(name string) bool {
	return strings.HasPrefix(name, dunder) && strings.HasSuffix(name, dunder) && name != initMethodName
}
