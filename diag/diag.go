// Package diag defines the structured diagnostics reported by the wyre
// parser and the sink that accumulates recoverable ones.
//
// Every diagnostic is a *ParseError carrying a rendered message, the source
// span it points at, and a category sentinel that callers match with
// errors.Is.
package diag

import (
	"errors"
	"fmt"

	"github.com/wyrelang/wyre/source"
)

// Diagnostic categories. Each ParseError unwraps to exactly one of these.
var (
	// ErrUnexpectedToken reports a token that does not fit the grammar at
	// its position.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnexpectedEOF reports that the token sequence ended where the
	// grammar required more input.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnexpectedWhitespace reports layout between two components of a
	// literal that must be written adjacently, such as the closing
	// parenthesis of a group tuple and its group keyword.
	ErrUnexpectedWhitespace = errors.New("unexpected whitespace")
)

// ParseError is one positioned diagnostic.
type ParseError struct {
	Message string
	Span    source.Span

	category error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Span.Start.Line, e.Span.Start.Column)
}

// Unwrap exposes the category sentinel so errors.Is can classify the
// diagnostic.
func (e *ParseError) Unwrap() error {
	return e.category
}

// NewUnexpectedToken builds an ErrUnexpectedToken diagnostic. The found
// argument is the display spelling of the offending token; expected
// describes what was legal, quoted by the caller when it names concrete
// tokens.
func NewUnexpectedToken(found, expected string, span source.Span) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf("expected %s -- found '%s'", expected, found),
		Span:     span,
		category: ErrUnexpectedToken,
	}
}

// NewUnexpectedEOF builds an ErrUnexpectedEOF diagnostic pointing at the
// tail position of the input.
func NewUnexpectedEOF(span source.Span) *ParseError {
	return &ParseError{
		Message:  "unexpected end of input",
		Span:     span,
		category: ErrUnexpectedEOF,
	}
}

// NewUnexpectedWhitespace builds an ErrUnexpectedWhitespace diagnostic for
// the literal whose left and right fragments must be adjacent.
func NewUnexpectedWhitespace(left, right string, span source.Span) *ParseError {
	return &ParseError{
		Message:  fmt.Sprintf("unexpected whitespace between '%s' and '%s'", left, right),
		Span:     span,
		category: ErrUnexpectedWhitespace,
	}
}
