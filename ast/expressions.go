package ast

import (
	"fmt"

	"github.com/wyrelang/wyre/source"
	"github.com/wyrelang/wyre/token"
)

// Identifier is a name referring to a binding, function, circuit or member.
type Identifier struct {
	node
	Name string
}

// NewIdentifier builds an identifier covering span.
func NewIdentifier(name string, span source.Span) *Identifier {
	ident := &Identifier{Name: name}
	ident.SetSpan(span)

	return ident
}

func (i *Identifier) String() string { return i.Name }
func (*Identifier) exprNode()        {}

// PositiveNumber is an unsigned integer literal kept as its source text so
// that values wider than any machine word survive parsing unchanged.
type PositiveNumber struct {
	Value string
}

func (n *PositiveNumber) String() string { return n.Value }

// CoordinateKind discriminates the four spellings a group coordinate allows.
type CoordinateKind int

const (
	// CoordinateNumber is an explicit integer coordinate, possibly negative.
	CoordinateNumber CoordinateKind = iota
	// CoordinateSignHigh selects the root with the greater y value ("+").
	CoordinateSignHigh
	// CoordinateSignLow selects the root with the lesser y value ("-").
	CoordinateSignLow
	// CoordinateInferred leaves the coordinate for the compiler to recover ("_").
	CoordinateInferred
)

// GroupCoordinate is one half of a group tuple literal. Only number
// coordinates carry a span; the sign and inferred forms are single
// punctuation tokens whose position the enclosing tuple already covers.
type GroupCoordinate struct {
	Kind   CoordinateKind
	Number string
	Span   source.Span
}

// NewNumberCoordinate builds an explicit coordinate from its digits (with
// optional leading minus) and the span of the number token.
func NewNumberCoordinate(value string, span source.Span) GroupCoordinate {
	return GroupCoordinate{Kind: CoordinateNumber, Number: value, Span: span}
}

func (c GroupCoordinate) String() string {
	switch c.Kind {
	case CoordinateSignHigh:
		return "+"
	case CoordinateSignLow:
		return "-"
	case CoordinateInferred:
		return "_"
	default:
		return c.Number
	}
}

// GroupTuple is an explicit group literal "(x, y)group". Its span covers
// the opening parenthesis through the group keyword.
type GroupTuple struct {
	node
	X GroupCoordinate
	Y GroupCoordinate
}

func (g *GroupTuple) String() string {
	return fmt.Sprintf("(%s, %s)group", g.X, g.Y)
}

func (*GroupTuple) exprNode() {}

// IntegerLiteral is an integer literal with an optional adjacent type
// suffix, e.g. "5", "5u8" or "1group". Suffix is token.EOF when the
// literal is untyped.
type IntegerLiteral struct {
	node
	Value  string
	Suffix token.Type
}

func (l *IntegerLiteral) String() string {
	if l.Suffix == token.EOF {
		return l.Value
	}

	return l.Value + l.Suffix.String()
}

func (*IntegerLiteral) exprNode() {}

// BooleanLiteral is "true" or "false".
type BooleanLiteral struct {
	node
	Value bool
}

func (l *BooleanLiteral) String() string {
	if l.Value {
		return "true"
	}

	return "false"
}

func (*BooleanLiteral) exprNode() {}

// UnaryExpression applies a prefix operator ("!" or "-") to its operand.
type UnaryExpression struct {
	node
	Op    token.Type
	Inner Expression
}

func (e *UnaryExpression) String() string {
	return e.Op.String() + e.Inner.String()
}

func (*UnaryExpression) exprNode() {}

// BinaryExpression applies an infix operator to two operands.
type BinaryExpression struct {
	node
	Op    token.Type
	Left  Expression
	Right Expression
}

func (e *BinaryExpression) String() string {
	return fmt.Sprintf("%s %s %s", e.Left, e.Op, e.Right)
}

func (*BinaryExpression) exprNode() {}

// CastExpression converts a value to a target type, e.g. "x as u32".
type CastExpression struct {
	node
	Inner      Expression
	TargetType Type
}

func (e *CastExpression) String() string {
	return fmt.Sprintf("%s as %s", e.Inner, e.TargetType)
}

func (*CastExpression) exprNode() {}

// CallExpression invokes a callee with argument expressions.
type CallExpression struct {
	node
	Callee    Expression
	Arguments []Expression
}

func (e *CallExpression) String() string {
	return fmt.Sprintf("%s(%s)", e.Callee, joinStrings(e.Arguments, ", "))
}

func (*CallExpression) exprNode() {}

// MemberExpression accesses a named member, e.g. "point.x". The member name
// may reuse a keyword or digit spelling.
type MemberExpression struct {
	node
	Target Expression
	Member *Identifier
}

func (e *MemberExpression) String() string {
	return fmt.Sprintf("%s.%s", e.Target, e.Member)
}

func (*MemberExpression) exprNode() {}

// StaticAccessExpression accesses an associated circuit member, e.g.
// "BHP256::hash".
type StaticAccessExpression struct {
	node
	Target Expression
	Member *Identifier
}

func (e *StaticAccessExpression) String() string {
	return fmt.Sprintf("%s::%s", e.Target, e.Member)
}

func (*StaticAccessExpression) exprNode() {}

// TupleIndexExpression accesses a tuple component by position, e.g. "pair.0".
type TupleIndexExpression struct {
	node
	Target Expression
	Index  *PositiveNumber
}

func (e *TupleIndexExpression) String() string {
	return fmt.Sprintf("%s.%s", e.Target, e.Index)
}

func (*TupleIndexExpression) exprNode() {}

// IndexExpression accesses an array element, e.g. "values[i]".
type IndexExpression struct {
	node
	Target Expression
	Index  Expression
}

func (e *IndexExpression) String() string {
	return fmt.Sprintf("%s[%s]", e.Target, e.Index)
}

func (*IndexExpression) exprNode() {}

// TupleExpression is a tuple literal "(a, b)". A parenthesized single
// expression without a trailing comma never produces this node.
type TupleExpression struct {
	node
	Elements []Expression
}

func (e *TupleExpression) String() string {
	return "(" + joinStrings(e.Elements, ", ") + ")"
}

func (*TupleExpression) exprNode() {}

// ArrayExpression is an array literal "[a, b, c]".
type ArrayExpression struct {
	node
	Elements []Expression
}

func (e *ArrayExpression) String() string {
	return "[" + joinStrings(e.Elements, ", ") + "]"
}

func (*ArrayExpression) exprNode() {}

// CircuitInitMember is one "name: value" entry of a circuit initializer.
// Value is nil for the shorthand form, which binds the variable of the
// same name.
type CircuitInitMember struct {
	Name  *Identifier
	Value Expression
}

func (m *CircuitInitMember) String() string {
	if m.Value == nil {
		return m.Name.String()
	}

	return fmt.Sprintf("%s: %s", m.Name, m.Value)
}

// CircuitInitExpression instantiates a circuit, e.g. "Point { x: 1, y }".
type CircuitInitExpression struct {
	node
	Name    *Identifier
	Members []*CircuitInitMember
}

func (e *CircuitInitExpression) String() string {
	return fmt.Sprintf("%s { %s }", e.Name, joinStrings(e.Members, ", "))
}

func (*CircuitInitExpression) exprNode() {}
