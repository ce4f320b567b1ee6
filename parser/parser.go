// Package parser builds wyre syntax trees from token sequences.
//
// The Cursor supplies the token-level machinery: lookahead, conditional
// consumption, backtracking and the backward group literal scan. Parser
// layers the grammar on top of it. Fatal errors travel up the call chain
// as *diag.ParseError values; recoverable ones (a malformed list element
// that was skipped) are accumulated in a diag.Handler so a single run can
// report several mistakes.
package parser

import (
	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/diag"
	"github.com/wyrelang/wyre/lexer"
	"github.com/wyrelang/wyre/source"
	"github.com/wyrelang/wyre/token"
)

// Parser parses one token sequence into a syntax tree.
type Parser struct {
	*Cursor

	handler *diag.Handler

	// disallowCircuitInit suppresses circuit initializer expressions while
	// the condition of an if statement or the bounds of a loop range are
	// being parsed, where a left curly always opens the statement body.
	// Parenthesized subexpressions lift the restriction again.
	disallowCircuitInit bool
}

// New builds a parser over tokens that reports recoverable diagnostics to
// handler. A nil handler gets a fresh sink.
func New(tokens []token.Token, handler *diag.Handler) *Parser {
	if handler == nil {
		handler = diag.NewHandler()
	}

	return &Parser{Cursor: NewCursor(tokens), handler: handler}
}

// Handler returns the diagnostic sink of this parser.
func (p *Parser) Handler() *diag.Handler {
	return p.handler
}

// Parse lexes and parses src as a source file. The returned error is the
// first fatal parse error when one occurred, otherwise the folded
// recoverable diagnostics, otherwise nil.
func Parse(src string) (*ast.File, error) {
	tokens, err := lexer.New(src).Scan()
	if err != nil {
		return nil, err
	}

	p := New(tokens, nil)

	file, err := p.ParseFile()
	if err != nil {
		return nil, err
	}

	return file, p.handler.Err()
}

// ParseTokens parses an already lexed token sequence as a source file,
// reporting recoverable diagnostics to handler.
func ParseTokens(tokens []token.Token, handler *diag.Handler) (*ast.File, error) {
	return New(tokens, handler).ParseFile()
}

// ParseExpression lexes and parses src as a single expression with no
// tokens left over.
func ParseExpression(src string) (ast.Expression, error) {
	tokens, err := lexer.New(src).Scan()
	if err != nil {
		return nil, err
	}

	p := New(tokens, nil)

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if next, ok := p.PeekOption(); ok {
		return nil, diag.NewUnexpectedToken(next.String(), "end of input", next.Span)
	}

	return expr, p.handler.Err()
}

// ParseStatement lexes and parses src as a single statement with no tokens
// left over.
func ParseStatement(src string) (ast.Statement, error) {
	tokens, err := lexer.New(src).Scan()
	if err != nil {
		return nil, err
	}

	p := New(tokens, nil)

	stmt, err := p.ParseStatement()
	if err != nil {
		return nil, err
	}

	if next, ok := p.PeekOption(); ok {
		return nil, diag.NewUnexpectedToken(next.String(), "end of input", next.Span)
	}

	return stmt, p.handler.Err()
}

// ParseFile parses declarations until the token sequence is exhausted.
func (p *Parser) ParseFile() (*ast.File, error) {
	file := &ast.File{}

	var span source.Span

	for p.HasNext() {
		decl, err := p.ParseDeclaration()
		if err != nil {
			return nil, err
		}

		file.Declarations = append(file.Declarations, decl)
		span = span.Merge(decl.Span())
	}

	file.SetSpan(span)

	return file, nil
}

// recoverListElement reports err to the handler and consumes tokens up to
// the next element boundary: a separator or closing delimiter at the
// current nesting depth, or the end of input. The boundary token itself is
// left for the enclosing list.
func (p *Parser) recoverListElement(err error, sep, close token.Type) {
	p.handler.Emit(err)

	depth := 0

	for {
		next, ok := p.PeekOption()
		if !ok {
			return
		}

		if depth == 0 && (next.Type == sep || next.Type == close) {
			return
		}

		switch next.Type {
		case token.LEFT_PAREN, token.LEFT_SQUARE, token.LEFT_CURLY:
			depth++
		case token.RIGHT_PAREN, token.RIGHT_SQUARE, token.RIGHT_CURLY:
			if depth == 0 {
				return
			}

			depth--
		}

		p.Advance()
	}
}
