package token

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Type
	}{
		{
			name:     "function keyword",
			input:    "function",
			expected: FUNCTION,
		},
		{
			name:     "const keyword",
			input:    "const",
			expected: CONST,
		},
		{
			name:     "type keyword",
			input:    "u32",
			expected: U32,
		},
		{
			name:     "group keyword",
			input:    "group",
			expected: GROUP,
		},
		{
			name:     "plain identifier",
			input:    "balance",
			expected: IDENT,
		},
		{
			name:     "case sensitive",
			input:    "Function",
			expected: IDENT,
		},
		{
			name:     "empty string",
			input:    "",
			expected: IDENT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lookup(tt.input))
		})
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{LEFT_PAREN, "("},
		{RIGHT_PAREN, ")"},
		{COMMA, ","},
		{DOUBLE_COLON, "::"},
		{ARROW, "->"},
		{MINUS, "-"},
		{FUNCTION, "function"},
		{GROUP, "group"},
		{I128, "i128"},
		{INT, "integer"},
		{IDENT, "identifier"},
		{EOF, "<eof>"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestKeywordTable(t *testing.T) {
	// Every listed keyword round-trips through Lookup and reports
	// IsKeyword; spellings are unique.
	seen := make(map[string]bool)

	for _, k := range Keywords {
		spelling := k.String()

		assert.False(t, seen[spelling], "duplicate keyword spelling %q", spelling)
		seen[spelling] = true

		assert.True(t, k.IsKeyword())
		assert.Equal(t, k, Lookup(spelling))
	}

	assert.False(t, IDENT.IsKeyword())
	assert.False(t, LEFT_PAREN.IsKeyword())
	assert.False(t, LINE_COMMENT.IsKeyword())
}

func TestIsComment(t *testing.T) {
	assert.True(t, LINE_COMMENT.IsComment())
	assert.True(t, BLOCK_COMMENT.IsComment())
	assert.False(t, IDENT.IsComment())
	assert.False(t, SLASH.IsComment())
}

func TestTokenString(t *testing.T) {
	withValue := Token{Type: IDENT, Value: "balance"}
	assert.Equal(t, "balance", withValue.String())

	fixed := Token{Type: RIGHT_PAREN}
	assert.Equal(t, ")", fixed.String())
}
