// Package ast defines the syntax tree produced by the wyre parser.
//
// Every node carries the source span it was parsed from. Nodes are
// grouped into expressions, statements, declarations and types via
// marker interfaces so that containers can hold exactly the node
// family they expect.
package ast

import (
	"strings"

	"github.com/wyrelang/wyre/source"
)

// Node is implemented by every element of the syntax tree.
type Node interface {
	// Span reports the source region this node was parsed from.
	Span() source.Span
	// SetSpan overwrites the source region of this node.
	SetSpan(source.Span)
}

// node carries the span shared by all tree elements.
type node struct {
	span source.Span
}

func (n *node) Span() source.Span {
	return n.span
}

func (n *node) SetSpan(s source.Span) {
	n.span = s
}

// Expression is the marker interface for value-producing nodes.
// Every expression renders back to source-like text via String.
type Expression interface {
	Node
	String() string
	exprNode()
}

// Statement is the marker interface for executable nodes.
type Statement interface {
	Node
	stmtNode()
}

// Declaration is the marker interface for file-level items.
type Declaration interface {
	Node
	declNode()
}

// Type is the marker interface for type annotations.
type Type interface {
	Node
	String() string
	typeNode()
}

// File is the root node of a parsed source file.
type File struct {
	node
	Declarations []Declaration
}

// joinStrings renders a node list as "a, b, c".
func joinStrings[T interface{ String() string }](items []T, sep string) string {
	var b strings.Builder

	for i, item := range items {
		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(item.String())
	}

	return b.String()
}
