package parser

import (
	"github.com/wyrelang/wyre/source"
	"github.com/wyrelang/wyre/token"
)

// ParseList parses a delimited, separator-interleaved sequence: the open
// token, elements produced by inner, and the close token. A separator
// after the last element is legal and reported through trailing; the
// returned span covers open through close.
//
// inner may consume tokens and produce no element (ok false) to signal a
// malformed element it has already reported and skipped; the list simply
// moves on to the separator. Any error from inner aborts the list.
func ParseList[T any](c *Cursor, open, close, sep token.Type, inner func(*Cursor) (T, bool, error)) ([]T, bool, source.Span, error) {
	var (
		list     []T
		trailing bool
	)

	openSpan, err := c.Expect(open)
	if err != nil {
		return nil, false, source.Span{}, err
	}

	for {
		next, err := c.Peek()
		if err != nil {
			return nil, false, source.Span{}, err
		}

		if next.Type == close {
			break
		}

		elem, ok, err := inner(c)
		if err != nil {
			return nil, false, source.Span{}, err
		}

		if ok {
			list = append(list, elem)
		}

		if _, ok := c.Eat(sep); !ok {
			trailing = false
			break
		}

		trailing = true
	}

	closeSpan, err := c.Expect(close)
	if err != nil {
		return nil, false, source.Span{}, err
	}

	return list, trailing, openSpan.Merge(closeSpan), nil
}

// ParseParenCommaList parses "( inner , ... )", the most common list shape
// of the grammar.
func ParseParenCommaList[T any](c *Cursor, inner func(*Cursor) (T, bool, error)) ([]T, bool, source.Span, error) {
	return ParseList(c, token.LEFT_PAREN, token.RIGHT_PAREN, token.COMMA, inner)
}
