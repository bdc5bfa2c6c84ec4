package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "doccov.dev/pkg/doccov/internal/model"
)

// ErrSyntax is returned when a source file cannot be parsed.
var ErrSyntax = errors.New("syntax error")

// PythonFileAdapter turns Python source into the parser-neutral tree walked
// by the coverage visitor.
type PythonFileAdapter interface {
	Parse(ctx context.Context, path m.Path, content []byte) (*m.SyntaxNode, error)
}

// LocalPythonFileAdapter parses Python source with tree-sitter.
type LocalPythonFileAdapter struct{}

// NewLocalPythonFileAdapter creates a LocalPythonFileAdapter.
func NewLocalPythonFileAdapter() *LocalPythonFileAdapter {
	return &LocalPythonFileAdapter{}
}

// Parse builds the syntax tree of a module. Malformed source yields an error
// wrapping ErrSyntax with the line of the first error node.
func (a *LocalPythonFileAdapter) Parse(ctx context.Context, path m.Path, content []byte) (*m.SyntaxNode, error) {
	// a parser is not safe for concurrent use, so each call gets its own
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w in %s at line %d", ErrSyntax, path, firstErrorLine(root))
	}

	module := &m.SyntaxNode{
		Kind:      m.KindModule,
		Name:      string(path),
		Docstring: blockDocstring(root, content),
	}
	module.Children = collectDefinitions(root, content, nil)

	return module, nil
}

// collectDefinitions gathers the classes and functions reachable from node
// without crossing another definition, in source order.
func collectDefinitions(node *sitter.Node, src []byte, out []*m.SyntaxNode) []*m.SyntaxNode {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case "class_definition", "function_definition":
			if def := convertDefinition(child, nil, src); def != nil {
				out = append(out, def)
			}
		case "decorated_definition":
			if def := convertDecorated(child, src); def != nil {
				out = append(out, def)
			}
		case "comment":
		default:
			out = collectDefinitions(child, src, out)
		}
	}

	return out
}

func convertDecorated(node *sitter.Node, src []byte) *m.SyntaxNode {
	var decorators []m.Decorator

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}

		if expr := firstNonComment(child); expr != nil {
			decorators = append(decorators, toDecorator(expr, src))
		}
	}

	definition := node.ChildByFieldName("definition")
	if definition == nil {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "class_definition" || child.Type() == "function_definition" {
				definition = child
				break
			}
		}
	}

	if definition == nil {
		return nil
	}

	return convertDefinition(definition, decorators, src)
}

func convertDefinition(node *sitter.Node, decorators []m.Decorator, src []byte) *m.SyntaxNode {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	def := &m.SyntaxNode{
		Kind:       m.KindClass,
		Name:       nodeText(nameNode, src),
		Line:       int(node.StartPoint().Row) + 1,
		Decorators: decorators,
	}

	if node.Type() == "function_definition" {
		def.Kind = m.KindFunction
		if isAsync(node) {
			def.Kind = m.KindAsyncFunction
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		def.Docstring = blockDocstring(body, src)
		def.Children = collectDefinitions(body, src, nil)
	}

	return def
}

func isAsync(node *sitter.Node) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == "async" {
			return true
		}
	}

	return false
}

func toDecorator(expr *sitter.Node, src []byte) m.Decorator {
	switch expr.Type() {
	case "identifier":
		return m.NameDecorator{Name: nodeText(expr, src)}
	case "attribute":
		object := expr.ChildByFieldName("object")
		attribute := expr.ChildByFieldName("attribute")
		if object == nil || attribute == nil {
			break
		}

		return m.AttributeDecorator{
			Object:    toDecorator(object, src),
			Attribute: nodeText(attribute, src),
		}
	case "call":
		if function := expr.ChildByFieldName("function"); function != nil {
			return m.CallDecorator{Func: toDecorator(function, src)}
		}
	}

	return m.ExprDecorator{Text: nodeText(expr, src)}
}

// blockDocstring returns the text of the string literal that opens a module
// or block, or "" when the first statement is anything else. A trailing
// comma makes the statement a tuple.
func blockDocstring(block *sitter.Node, src []byte) string {
	first := firstNonComment(block)
	if first == nil || first.Type() != "expression_statement" || first.ChildCount() != 1 {
		return ""
	}

	doc, _ := stringValue(first.NamedChild(0), src)

	return doc
}

func stringValue(expr *sitter.Node, src []byte) (string, bool) {
	switch expr.Type() {
	case "string":
		return unquote(nodeText(expr, src))
	case "concatenated_string":
		var b strings.Builder

		for i := 0; i < int(expr.NamedChildCount()); i++ {
			part := expr.NamedChild(i)
			if part.Type() == "comment" {
				continue
			}

			text, ok := stringValue(part, src)
			if !ok {
				return "", false
			}

			b.WriteString(text)
		}

		return b.String(), true
	case "parenthesized_expression":
		if inner := firstNonComment(expr); inner != nil {
			return stringValue(inner, src)
		}
	}

	return "", false
}

// unquote strips the prefix and quotes of a str literal and resolves its
// escapes. Bytes, f-strings and t-strings are not docstrings.
func unquote(literal string) (string, bool) {
	start := strings.IndexAny(literal, `'"`)
	if start < 0 {
		return "", false
	}

	prefix := strings.ToLower(literal[:start])
	if strings.ContainsAny(prefix, "bft") {
		return "", false
	}

	body := literal[start:]
	quote := body[:1]

	if len(body) >= 6 && strings.HasPrefix(body, strings.Repeat(quote, 3)) {
		quote = strings.Repeat(quote, 3)
	}

	if len(body) < 2*len(quote) {
		return "", false
	}

	content := body[len(quote) : len(body)-len(quote)]
	if strings.Contains(prefix, "r") {
		return content, true
	}

	return unescape(content), true
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		i++

		switch next := s[i]; next {
		case '\n':
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'v':
			b.WriteByte('\v')
		case 'f':
			b.WriteByte('\f')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case '\\', '\'', '"':
			b.WriteByte(next)
		case 'x', 'u', 'U':
			width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[next]
			if r, ok := parseCodePoint(s, i+1, width, 16); ok {
				b.WriteRune(r)
				i += width

				continue
			}

			b.WriteByte('\\')
			b.WriteByte(next)
		default:
			if next >= '0' && next <= '7' {
				width := octalWidth(s, i)
				if r, ok := parseCodePoint(s, i, width, 8); ok {
					b.WriteRune(r)
					i += width - 1

					continue
				}
			}

			b.WriteByte('\\')
			b.WriteByte(next)
		}
	}

	return b.String()
}

func parseCodePoint(s string, from, width, base int) (rune, bool) {
	if from+width > len(s) {
		return 0, false
	}

	n, err := strconv.ParseUint(s[from:from+width], base, 32)
	if err != nil {
		return 0, false
	}

	return rune(n), true
}

func octalWidth(s string, from int) int {
	width := 0
	for width < 3 && from+width < len(s) && s[from+width] >= '0' && s[from+width] <= '7' {
		width++
	}

	return width
}

func firstNonComment(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "comment" {
			return child
		}
	}

	return nil
}

func firstErrorLine(node *sitter.Node) int {
	if node.Type() == "ERROR" || node.IsMissing() {
		return int(node.StartPoint().Row) + 1
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() || child.IsMissing() {
			return firstErrorLine(child)
		}
	}

	return int(node.StartPoint().Row) + 1
}

func nodeText(node *sitter.Node, src []byte) string {
	return string(src[node.StartByte():node.EndByte()])
}
