package parser

import (
	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/diag"
	"github.com/wyrelang/wyre/token"
)

// ParseType parses a type annotation: a primitive or sized integer
// keyword, a circuit name, or a parenthesized tuple of types.
func (p *Parser) ParseType() (ast.Type, error) {
	next, err := p.Peek()
	if err != nil {
		return nil, err
	}

	switch next.Type {
	case token.ADDRESS, token.BOOL, token.FIELD, token.GROUP:
		p.Advance()

		typ := &ast.PrimitiveType{Keyword: next.Type}
		typ.SetSpan(next.Span)

		return typ, nil
	case token.U8, token.U16, token.U32, token.U64, token.U128,
		token.I8, token.I16, token.I32, token.I64, token.I128:
		p.Advance()

		typ := &ast.IntegerType{Keyword: next.Type}
		typ.SetSpan(next.Span)

		return typ, nil
	case token.IDENT:
		name, _ := p.EatIdentifier()

		typ := &ast.NamedType{Name: name}
		typ.SetSpan(name.Span())

		return typ, nil
	case token.LEFT_PAREN:
		elements, _, span, err := ParseParenCommaList(p.Cursor, p.parseTypeElement)
		if err != nil {
			return nil, err
		}

		typ := &ast.TupleType{Elements: elements}
		typ.SetSpan(span)

		return typ, nil
	default:
		return nil, diag.NewUnexpectedToken(next.String(), "type", next.Span)
	}
}

func (p *Parser) parseTypeElement(*Cursor) (ast.Type, bool, error) {
	typ, err := p.ParseType()
	if err != nil {
		return nil, false, err
	}

	return typ, true, nil
}
