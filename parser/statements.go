package parser

import (
	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/token"
)

// ParseStatement parses one statement. Dispatch takes the leading token
// and pushes it straight back, so every rule consumes its own keyword.
func (p *Parser) ParseStatement() (ast.Statement, error) {
	next, err := p.TakeAny()
	if err != nil {
		return nil, err
	}

	p.PushBack(next)

	switch next.Type {
	case token.RETURN:
		return p.parseReturnStatement()
	case token.LET, token.CONST:
		return p.parseLetStatement()
	case token.IF:
		return p.parseConditionalStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.LEFT_CURLY:
		return p.ParseBlock()
	default:
		return p.parseExpressionStatement()
	}
}

// ParseBlock parses "{ statements }".
func (p *Parser) ParseBlock() (*ast.Block, error) {
	start, err := p.Expect(token.LEFT_CURLY)
	if err != nil {
		return nil, err
	}

	block := &ast.Block{}

	for {
		next, err := p.Peek()
		if err != nil {
			return nil, err
		}

		if next.Type == token.RIGHT_CURLY {
			break
		}

		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}

		block.Statements = append(block.Statements, stmt)
	}

	end, err := p.Expect(token.RIGHT_CURLY)
	if err != nil {
		return nil, err
	}

	block.SetSpan(start.Merge(end))

	return block, nil
}

// parseReturnStatement parses "return value ;".
func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	start, err := p.Expect(token.RETURN)
	if err != nil {
		return nil, err
	}

	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	end, err := p.Expect(token.SEMICOLON)
	if err != nil {
		return nil, err
	}

	stmt := &ast.ReturnStatement{Value: value}
	stmt.SetSpan(start.Merge(end))

	return stmt, nil
}

// parseLetStatement parses a binding introduced by let or const:
//
//	(let | const) mut? name (: type)? = value ;
func (p *Parser) parseLetStatement() (*ast.LetStatement, error) {
	intro, err := p.ExpectOneOf(token.LET, token.CONST)
	if err != nil {
		return nil, err
	}

	mutable := false
	if _, ok := p.Eat(token.MUT); ok {
		mutable = true
	}

	name, err := p.ExpectIdentifier()
	if err != nil {
		return nil, err
	}

	var typ ast.Type

	if _, ok := p.Eat(token.COLON); ok {
		typ, err = p.ParseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.Expect(token.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	end, err := p.Expect(token.SEMICOLON)
	if err != nil {
		return nil, err
	}

	stmt := &ast.LetStatement{
		Const:   intro.Type == token.CONST,
		Mutable: mutable,
		Name:    name,
		Type:    typ,
		Value:   value,
	}
	stmt.SetSpan(intro.Span.Merge(end))

	return stmt, nil
}

// parseConditionalStatement parses "if cond block (else (if | block))?".
// The condition is a guard expression: circuit initializers are suppressed
// so its left curly always opens the consequent block.
func (p *Parser) parseConditionalStatement() (*ast.ConditionalStatement, error) {
	start, err := p.Expect(token.IF)
	if err != nil {
		return nil, err
	}

	condition, err := p.parseGuardExpression()
	if err != nil {
		return nil, err
	}

	then, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ConditionalStatement{Condition: condition, Then: then}
	end := then.Span()

	if _, ok := p.Eat(token.ELSE); ok {
		if p.PeekType() == token.IF {
			elseIf, err := p.parseConditionalStatement()
			if err != nil {
				return nil, err
			}

			stmt.Else = elseIf
			end = elseIf.Span()
		} else {
			block, err := p.ParseBlock()
			if err != nil {
				return nil, err
			}

			stmt.Else = block
			end = block.Span()
		}
	}

	stmt.SetSpan(start.Merge(end))

	return stmt, nil
}

// parseForStatement parses "for name in start..stop block". Both range
// bounds are guard expressions for the same reason as an if condition.
func (p *Parser) parseForStatement() (*ast.ForStatement, error) {
	startSpan, err := p.Expect(token.FOR)
	if err != nil {
		return nil, err
	}

	variable, err := p.ExpectIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.Expect(token.IN); err != nil {
		return nil, err
	}

	from, err := p.parseGuardExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.Expect(token.DOT_DOT); err != nil {
		return nil, err
	}

	to, err := p.parseGuardExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.ForStatement{Variable: variable, Start: from, Stop: to, Body: body}
	stmt.SetSpan(startSpan.Merge(body.Span()))

	return stmt, nil
}

// parseExpressionStatement parses "expression ;".
func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	end, err := p.Expect(token.SEMICOLON)
	if err != nil {
		return nil, err
	}

	stmt := &ast.ExpressionStatement{Expr: expr}
	stmt.SetSpan(expr.Span().Merge(end))

	return stmt, nil
}
