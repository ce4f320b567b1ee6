package parser

import (
	"fmt"
	"strings"

	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/diag"
	"github.com/wyrelang/wyre/source"
	"github.com/wyrelang/wyre/token"
)

// Cursor walks a token sequence with single-token lookahead, conditional
// consumption, and backtracking of just-consumed tokens.
//
// Tokens are stored in reverse so the next token is always the last
// element: advancing pops from the tail, backtracking pushes onto it, and
// the group literal scan walks toward the front by decreasing index.
type Cursor struct {
	tokens  []token.Token
	endSpan source.Span
}

// NewCursor builds a cursor over tokens, dropping comment tokens. The tail
// span reported by end-of-input diagnostics is fixed here: the span of the
// last remaining token whose text is not only whitespace, or the zero span
// when no such token exists.
func NewCursor(tokens []token.Token) *Cursor {
	stored := make([]token.Token, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Type.IsComment() {
			continue
		}

		stored = append(stored, tokens[i])
	}

	var endSpan source.Span

	for _, tok := range stored {
		if strings.TrimSpace(tok.Value) != "" {
			endSpan = tok.Span
			break
		}
	}

	return &Cursor{tokens: stored, endSpan: endSpan}
}

// eof builds the diagnostic for running out of tokens, pointing at the
// fixed tail span.
func (c *Cursor) eof() error {
	return diag.NewUnexpectedEOF(c.endSpan)
}

// HasNext reports whether any tokens remain.
func (c *Cursor) HasNext() bool {
	return len(c.tokens) > 0
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (token.Token, error) {
	if len(c.tokens) == 0 {
		return token.Token{}, c.eof()
	}

	return c.tokens[len(c.tokens)-1], nil
}

// PeekSecond returns the token after the next one without consuming
// anything. Fewer than two remaining tokens is an end-of-input error.
func (c *Cursor) PeekSecond() (token.Token, error) {
	if len(c.tokens) < 2 {
		return token.Token{}, c.eof()
	}

	return c.tokens[len(c.tokens)-2], nil
}

// PeekOption returns the next token, reporting exhaustion through ok
// instead of an error.
func (c *Cursor) PeekOption() (token.Token, bool) {
	if len(c.tokens) == 0 {
		return token.Token{}, false
	}

	return c.tokens[len(c.tokens)-1], true
}

// PeekType returns the next token's type, or EOF when no tokens remain.
func (c *Cursor) PeekType() token.Type {
	if len(c.tokens) == 0 {
		return token.EOF
	}

	return c.tokens[len(c.tokens)-1].Type
}

// Advance consumes and returns the next token. ok is false when the
// sequence is exhausted.
func (c *Cursor) Advance() (token.Token, bool) {
	if len(c.tokens) == 0 {
		return token.Token{}, false
	}

	tok := c.tokens[len(c.tokens)-1]
	c.tokens = c.tokens[:len(c.tokens)-1]

	return tok, true
}

// TakeAny consumes and returns the next token regardless of its type.
func (c *Cursor) TakeAny() (token.Token, error) {
	tok, ok := c.Advance()
	if !ok {
		return token.Token{}, c.eof()
	}

	return tok, nil
}

// PushBack restores tok as the next token. It is meant for a token that
// was just consumed from this cursor; the tail span is not recomputed.
func (c *Cursor) PushBack(tok token.Token) {
	c.tokens = append(c.tokens, tok)
}

// Eat consumes the next token when its type is expected. On a mismatch the
// cursor is left untouched.
func (c *Cursor) Eat(expected token.Type) (token.Token, bool) {
	if c.PeekType() != expected {
		return token.Token{}, false
	}

	return c.Advance()
}

// EatAny consumes the next token when its type is any of expected. On a
// mismatch the cursor is left untouched.
func (c *Cursor) EatAny(expected ...token.Type) (token.Token, bool) {
	next := c.PeekType()
	for _, t := range expected {
		if next == t {
			return c.Advance()
		}
	}

	return token.Token{}, false
}

// Expect consumes the next token, which must have type expected, and
// returns its span.
func (c *Cursor) Expect(expected token.Type) (source.Span, error) {
	if tok, ok := c.Eat(expected); ok {
		return tok.Span, nil
	}

	next, err := c.Peek()
	if err != nil {
		return source.Span{}, err
	}

	return source.Span{}, diag.NewUnexpectedToken(next.String(), fmt.Sprintf("'%s'", expected), next.Span)
}

// ExpectOneOf consumes the next token, which must have one of the expected
// types, and returns it. The diagnostic lists every alternative.
func (c *Cursor) ExpectOneOf(expected ...token.Type) (token.Token, error) {
	if tok, ok := c.EatAny(expected...); ok {
		return tok, nil
	}

	next, err := c.Peek()
	if err != nil {
		return token.Token{}, err
	}

	return token.Token{}, diag.NewUnexpectedToken(next.String(), describeTypes(expected), next.Span)
}

// describeTypes renders a token type set as "'a', 'b', 'c'".
func describeTypes(types []token.Type) string {
	var b strings.Builder

	for i, t := range types {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "'%s'", t)
	}

	return b.String()
}

// EatIdentifier consumes the next token when it is an identifier.
func (c *Cursor) EatIdentifier() (*ast.Identifier, bool) {
	tok, ok := c.Eat(token.IDENT)
	if !ok {
		return nil, false
	}

	return ast.NewIdentifier(tok.Value, tok.Span), true
}

// ExpectIdentifier consumes the next token, which must be an identifier.
func (c *Cursor) ExpectIdentifier() (*ast.Identifier, error) {
	if ident, ok := c.EatIdentifier(); ok {
		return ident, nil
	}

	next, err := c.Peek()
	if err != nil {
		return nil, err
	}

	return nil, diag.NewUnexpectedToken(next.String(), "identifier", next.Span)
}

// ExpectLooseIdentifier consumes the next token as a name under the
// relaxed rules used in member positions: a keyword is accepted with its
// spelling as the name, an integer literal is accepted with its digits as
// the name, and anything else must be a strict identifier.
func (c *Cursor) ExpectLooseIdentifier() (*ast.Identifier, error) {
	if tok, ok := c.EatAny(token.Keywords...); ok {
		return ast.NewIdentifier(tok.String(), tok.Span), nil
	}

	if number, span, ok := c.EatInt(); ok {
		return ast.NewIdentifier(number.Value, span), nil
	}

	return c.ExpectIdentifier()
}

// EatInt consumes the next token when it is an integer literal, returning
// the digits and their span.
func (c *Cursor) EatInt() (*ast.PositiveNumber, source.Span, bool) {
	tok, ok := c.Eat(token.INT)
	if !ok {
		return nil, source.Span{}, false
	}

	return &ast.PositiveNumber{Value: tok.Value}, tok.Span, true
}

// PeekIsFunctionStart reports whether the upcoming tokens begin a function
// declaration: the function keyword or an annotation marker, or const
// directly followed by function. A single remaining token can never start
// a function; an empty cursor is an end-of-input error.
func (c *Cursor) PeekIsFunctionStart() (bool, error) {
	first, err := c.Peek()
	if err != nil {
		return false, err
	}

	if len(c.tokens) < 2 {
		return false, nil
	}

	switch first.Type {
	case token.FUNCTION, token.AT:
		return true, nil
	case token.CONST:
		return c.tokens[len(c.tokens)-2].Type == token.FUNCTION, nil
	default:
		return false, nil
	}
}
