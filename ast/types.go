package ast

import "github.com/wyrelang/wyre/token"

// PrimitiveType is one of the non-integer builtin types: address, bool,
// field or group.
type PrimitiveType struct {
	node
	Keyword token.Type
}

func (t *PrimitiveType) String() string { return t.Keyword.String() }
func (*PrimitiveType) typeNode()        {}

// IntegerType is one of the sized integer types u8 through i128.
type IntegerType struct {
	node
	Keyword token.Type
}

func (t *IntegerType) String() string { return t.Keyword.String() }
func (*IntegerType) typeNode()        {}

// NamedType refers to a circuit by name.
type NamedType struct {
	node
	Name *Identifier
}

func (t *NamedType) String() string { return t.Name.String() }
func (*NamedType) typeNode()        {}

// TupleType is a parenthesized type list, e.g. "(u8, field)".
type TupleType struct {
	node
	Elements []Type
}

func (t *TupleType) String() string {
	return "(" + joinStrings(t.Elements, ", ") + ")"
}

func (*TupleType) typeNode() {}
