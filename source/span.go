// Package source provides position and span value types shared by the
// lexer, parser, and diagnostics. Spans are plain values: they are cheap
// to copy, comparable with ==, and never reference the source text.
package source

import "fmt"

// Position is a 1-based line/column location in a source file. The zero
// value marks "no position".
type Position struct {
	Line   int
	Column int
}

// Before reports whether p is strictly before other in source order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}

	return p.Column < other.Column
}

// Span is a contiguous source range. Start is inclusive; End.Column is
// exclusive (one past the final rune), so two spans are adjacent exactly
// when the first span's End equals the second span's Start.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a single-line span covering [col, col+width) on line.
func NewSpan(line, col, width int) Span {
	return Span{
		Start: Position{Line: line, Column: col},
		End:   Position{Line: line, Column: col + width},
	}
}

// IsZero reports whether the span is the zero value.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Merge returns the smallest span covering both s and other. A zero span
// acts as the identity element, so merging against an unset span is safe.
func (s Span) Merge(other Span) Span {
	if s.IsZero() {
		return other
	}

	if other.IsZero() {
		return s
	}

	merged := s
	if other.Start.Before(merged.Start) {
		merged.Start = other.Start
	}

	if merged.End.Before(other.End) {
		merged.End = other.End
	}

	return merged
}

// String renders the span compactly: "3:5-9" for a single-line span,
// "3:5-4:2" when the span crosses lines, and "0:0" for the zero value.
func (s Span) String() string {
	if s.IsZero() {
		return "0:0"
	}

	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}

	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
