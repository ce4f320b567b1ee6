package parser

import (
	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/diag"
	"github.com/wyrelang/wyre/token"
)

// ParseExpression parses an expression at the lowest precedence level.
// Circuit initializers are always legal at a fresh expression; the guard
// restriction of if conditions and loop ranges applies only until the next
// parenthesized subexpression.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	prev := p.disallowCircuitInit
	p.disallowCircuitInit = false

	expr, err := p.parseDisjunction()

	p.disallowCircuitInit = prev

	return expr, err
}

// parseGuardExpression parses an expression with circuit initializers
// suppressed.
func (p *Parser) parseGuardExpression() (ast.Expression, error) {
	prev := p.disallowCircuitInit
	p.disallowCircuitInit = true

	expr, err := p.parseDisjunction()

	p.disallowCircuitInit = prev

	return expr, err
}

// parseBinaryChain parses a left-associative run of the given operators,
// with next parsing each operand.
func (p *Parser) parseBinaryChain(next func() (ast.Expression, error), ops ...token.Type) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.EatAny(ops...)
		if !ok {
			return left, nil
		}

		right, err := next()
		if err != nil {
			return nil, err
		}

		expr := &ast.BinaryExpression{Op: op.Type, Left: left, Right: right}
		expr.SetSpan(left.Span().Merge(right.Span()))
		left = expr
	}
}

func (p *Parser) parseDisjunction() (ast.Expression, error) {
	return p.parseBinaryChain(p.parseConjunction, token.OR)
}

func (p *Parser) parseConjunction() (ast.Expression, error) {
	return p.parseBinaryChain(p.parseEquality, token.AND)
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseBinaryChain(p.parseComparison, token.EQ, token.NOT_EQ)
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	return p.parseBinaryChain(p.parseAdditive, token.LT, token.LT_EQ, token.GT, token.GT_EQ)
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseBinaryChain(p.parseMultiplicative, token.ADD, token.MINUS)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.parseBinaryChain(p.parseCast, token.STAR, token.SLASH)
}

// parseCast parses "unary (as type)*". The cast binds tighter than any
// arithmetic operator, so "a * b as u8" casts only b.
func (p *Parser) parseCast() (ast.Expression, error) {
	inner, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		if _, ok := p.Eat(token.AS); !ok {
			return inner, nil
		}

		target, err := p.ParseType()
		if err != nil {
			return nil, err
		}

		cast := &ast.CastExpression{Inner: inner, TargetType: target}
		cast.SetSpan(inner.Span().Merge(target.Span()))
		inner = cast
	}
}

// parseUnary parses a run of prefix operators, applied innermost-first.
func (p *Parser) parseUnary() (ast.Expression, error) {
	var ops []token.Token

	for {
		op, ok := p.EatAny(token.NOT, token.MINUS)
		if !ok {
			break
		}

		ops = append(ops, op)
	}

	inner, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}

	for i := len(ops) - 1; i >= 0; i-- {
		expr := &ast.UnaryExpression{Op: ops[i].Type, Inner: inner}
		expr.SetSpan(ops[i].Span.Merge(inner.Span()))
		inner = expr
	}

	return inner, nil
}

// parsePostfix parses a primary expression and any chain of accesses:
// named members, tuple indexes, associated members, calls and array
// indexes.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.PeekType() {
		case token.DOT:
			p.Advance()

			if number, span, ok := p.EatInt(); ok {
				index := &ast.TupleIndexExpression{Target: expr, Index: number}
				index.SetSpan(expr.Span().Merge(span))
				expr = index

				continue
			}

			member, err := p.ExpectLooseIdentifier()
			if err != nil {
				return nil, err
			}

			access := &ast.MemberExpression{Target: expr, Member: member}
			access.SetSpan(expr.Span().Merge(member.Span()))
			expr = access
		case token.DOUBLE_COLON:
			p.Advance()

			member, err := p.ExpectIdentifier()
			if err != nil {
				return nil, err
			}

			access := &ast.StaticAccessExpression{Target: expr, Member: member}
			access.SetSpan(expr.Span().Merge(member.Span()))
			expr = access
		case token.LEFT_PAREN:
			arguments, _, span, err := ParseParenCommaList(p.Cursor, p.parseCallArgument)
			if err != nil {
				return nil, err
			}

			call := &ast.CallExpression{Callee: expr, Arguments: arguments}
			call.SetSpan(expr.Span().Merge(span))
			expr = call
		case token.LEFT_SQUARE:
			p.Advance()

			index, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}

			end, err := p.Expect(token.RIGHT_SQUARE)
			if err != nil {
				return nil, err
			}

			idx := &ast.IndexExpression{Target: expr, Index: index}
			idx.SetSpan(expr.Span().Merge(end))
			expr = idx
		default:
			return expr, nil
		}
	}
}

// parsePrimary parses the atoms of the expression grammar. The token is
// taken unconditionally; one that cannot start an expression is pushed
// back so the caller sees the cursor exactly as before the attempt.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.PeekType() {
	case token.LEFT_PAREN:
		// A group literal owns its opening parenthesis; try the backward
		// scan before committing to a parenthesized expression.
		tuple, err := p.EatGroupPartial()
		if err != nil {
			return nil, err
		}

		if tuple != nil {
			return tuple, nil
		}

		return p.parseTupleOrParen()
	case token.LEFT_SQUARE:
		return p.parseArrayLiteral()
	}

	tok, err := p.TakeAny()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case token.INT:
		return p.parseIntegerLiteral(tok)
	case token.TRUE, token.FALSE:
		lit := &ast.BooleanLiteral{Value: tok.Type == token.TRUE}
		lit.SetSpan(tok.Span)

		return lit, nil
	case token.IDENT:
		ident := ast.NewIdentifier(tok.Value, tok.Span)

		if p.PeekType() == token.LEFT_CURLY && !p.disallowCircuitInit {
			return p.parseCircuitInit(ident)
		}

		return ident, nil
	default:
		p.PushBack(tok)

		return nil, diag.NewUnexpectedToken(tok.String(), "expression", tok.Span)
	}
}

// literalSuffixes are the type keywords that may follow an integer
// literal's digits to type it.
var literalSuffixes = []token.Type{
	token.FIELD, token.GROUP,
	token.U8, token.U16, token.U32, token.U64, token.U128,
	token.I8, token.I16, token.I32, token.I64, token.I128,
}

// parseIntegerLiteral builds the literal for an already consumed integer
// token and attaches a type suffix when one directly follows. The suffix
// must touch the digits; "5 group" is the same malformed-literal mistake
// as layout inside a group tuple.
func (p *Parser) parseIntegerLiteral(tok token.Token) (ast.Expression, error) {
	lit := &ast.IntegerLiteral{Value: tok.Value}
	lit.SetSpan(tok.Span)

	suffix, ok := p.EatAny(literalSuffixes...)
	if !ok {
		return lit, nil
	}

	if err := assertNoWhitespace(tok.Span, suffix.Span, tok.Value, suffix.String()); err != nil {
		return nil, err
	}

	lit.Suffix = suffix.Type
	lit.SetSpan(tok.Span.Merge(suffix.Span))

	return lit, nil
}

// parseTupleOrParen parses "( ... )" that is not a group literal: a unit
// tuple, a parenthesized expression, or a tuple literal. One element with
// a trailing comma is still a tuple.
func (p *Parser) parseTupleOrParen() (ast.Expression, error) {
	elements, trailing, span, err := ParseParenCommaList(p.Cursor, p.parseCallArgument)
	if err != nil {
		return nil, err
	}

	if len(elements) == 1 && !trailing {
		return elements[0], nil
	}

	tuple := &ast.TupleExpression{Elements: elements}
	tuple.SetSpan(span)

	return tuple, nil
}

// parseArrayLiteral parses "[ element, ... ]".
func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	elements, _, span, err := ParseList(p.Cursor, token.LEFT_SQUARE, token.RIGHT_SQUARE, token.COMMA, p.parseCallArgument)
	if err != nil {
		return nil, err
	}

	array := &ast.ArrayExpression{Elements: elements}
	array.SetSpan(span)

	return array, nil
}

// parseCircuitInit parses "{ name (: value)?, ... }" after the circuit
// name has been consumed. A member without a value binds the variable of
// the same name.
func (p *Parser) parseCircuitInit(name *ast.Identifier) (ast.Expression, error) {
	members, _, span, err := ParseList(p.Cursor, token.LEFT_CURLY, token.RIGHT_CURLY, token.COMMA, p.parseCircuitInitMember)
	if err != nil {
		return nil, err
	}

	init := &ast.CircuitInitExpression{Name: name, Members: members}
	init.SetSpan(name.Span().Merge(span))

	return init, nil
}

func (p *Parser) parseCircuitInitMember(*Cursor) (*ast.CircuitInitMember, bool, error) {
	name, err := p.ExpectLooseIdentifier()
	if err != nil {
		return nil, false, err
	}

	member := &ast.CircuitInitMember{Name: name}

	if _, ok := p.Eat(token.COLON); ok {
		value, err := p.ParseExpression()
		if err != nil {
			return nil, false, err
		}

		member.Value = value
	}

	return member, true, nil
}

// parseCallArgument adapts ParseExpression to the list element contract.
func (p *Parser) parseCallArgument(*Cursor) (ast.Expression, bool, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, false, err
	}

	return expr, true, nil
}
