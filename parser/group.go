package parser

import (
	"fmt"

	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/diag"
	"github.com/wyrelang/wyre/source"
	"github.com/wyrelang/wyre/token"
)

// EatGroupPartial recognizes an explicit group literal "(x, y)group"
// starting at the cursor position. The scan inspects tokens from nearest
// to farthest without consuming anything until the entire shape has
// matched, so the three outcomes are:
//
//   - (nil, nil): no group literal starts here and the cursor is untouched;
//   - (tuple, nil): the literal matched and all of its tokens are consumed;
//   - (nil, err): the literal matched and was consumed, but layout
//     separated the closing parenthesis from the group keyword.
func (c *Cursor) EatGroupPartial() (*ast.GroupTuple, error) {
	i := len(c.tokens)

	i--
	if i < 0 || c.tokens[i].Type != token.LEFT_PAREN {
		return nil, nil
	}

	startSpan := c.tokens[i].Span

	first, ok := c.peekGroupCoordinate(&i)
	if !ok {
		return nil, nil
	}

	i--
	if i < 0 || c.tokens[i].Type != token.COMMA {
		return nil, nil
	}

	second, ok := c.peekGroupCoordinate(&i)
	if !ok {
		return nil, nil
	}

	i--
	if i < 0 || c.tokens[i].Type != token.RIGHT_PAREN {
		return nil, nil
	}

	rightParenSpan := c.tokens[i].Span

	i--
	if i < 0 || c.tokens[i].Type != token.GROUP {
		return nil, nil
	}

	endSpan := c.tokens[i].Span

	// The shape is certain now: consume the whole literal in one step.
	c.tokens = c.tokens[:i]

	left := fmt.Sprintf("(%s,%s)", first, second)
	if err := assertNoWhitespace(rightParenSpan, endSpan, left, "group"); err != nil {
		return nil, err
	}

	tuple := &ast.GroupTuple{X: first, Y: second}
	tuple.SetSpan(startSpan.Merge(endSpan))

	return tuple, nil
}

// peekGroupCoordinate matches one group coordinate, decrementing *i past
// the tokens it covers. A minus directly followed by an integer folds into
// a single negative number coordinate carrying the integer's span.
func (c *Cursor) peekGroupCoordinate(i *int) (ast.GroupCoordinate, bool) {
	*i--
	if *i < 0 {
		return ast.GroupCoordinate{}, false
	}

	tok := c.tokens[*i]

	switch tok.Type {
	case token.ADD:
		return ast.GroupCoordinate{Kind: ast.CoordinateSignHigh}, true
	case token.MINUS:
		if *i-1 >= 0 && c.tokens[*i-1].Type == token.INT {
			*i--
			number := c.tokens[*i]

			return ast.NewNumberCoordinate("-"+number.Value, number.Span), true
		}

		return ast.GroupCoordinate{Kind: ast.CoordinateSignLow}, true
	case token.UNDERSCORE:
		return ast.GroupCoordinate{Kind: ast.CoordinateInferred}, true
	case token.INT:
		return ast.NewNumberCoordinate(tok.Value, tok.Span), true
	default:
		return ast.GroupCoordinate{}, false
	}
}

// assertNoWhitespace verifies that the end of left touches the start of
// right, i.e. that no layout separates two fragments that must be written
// adjacently. The diagnostic spans from the left fragment through the
// right one.
func assertNoWhitespace(left, right source.Span, leftText, rightText string) error {
	if left.End != right.Start {
		return diag.NewUnexpectedWhitespace(leftText, rightText, left.Merge(right))
	}

	return nil
}
