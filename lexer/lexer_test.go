package lexer

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/wyrelang/wyre/source"
	"github.com/wyrelang/wyre/token"
)

func TestTokenIterator(t *testing.T) {
	input := "function main(a: u32) -> u32 { return a; }"
	lexer := New(input)

	expectedTypes := []token.Type{
		token.FUNCTION, token.IDENT, token.LEFT_PAREN, token.IDENT, token.COLON,
		token.U32, token.RIGHT_PAREN, token.ARROW, token.U32, token.LEFT_CURLY,
		token.RETURN, token.IDENT, token.SEMICOLON, token.RIGHT_CURLY, token.EOF,
	}

	var actualTypes []token.Type

	for tok, err := range lexer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, tok.Type)

		if tok.Type == token.EOF {
			break
		}
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestTokenIteratorSkipComments(t *testing.T) {
	input := "let x = 5; // tail\n/* note */ let y = 6;"
	lexer := New(input, Options{SkipComments: true})

	expectedTypes := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.EOF,
	}

	var actualTypes []token.Type

	for tok, err := range lexer.Tokens() {
		assert.NoError(t, err)

		actualTypes = append(actualTypes, tok.Type)

		if tok.Type == token.EOF {
			break
		}
	}

	assert.Equal(t, expectedTypes, actualTypes)
}

func TestIteratorEarlyTermination(t *testing.T) {
	lexer := New("let a = 1 + 2 + 3;")

	count := 0

	for _, err := range lexer.Tokens() {
		assert.NoError(t, err)

		count++

		if count >= 4 {
			break
		}
	}

	assert.Equal(t, 4, count)
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Type
	}{
		{
			name:     "single keyword",
			input:    "circuit",
			expected: []token.Type{token.CIRCUIT},
		},
		{
			name:     "group literal",
			input:    "(1, 2)group",
			expected: []token.Type{token.LEFT_PAREN, token.INT, token.COMMA, token.INT, token.RIGHT_PAREN, token.GROUP},
		},
		{
			name:     "negative coordinate",
			input:    "(-3,4)group",
			expected: []token.Type{token.LEFT_PAREN, token.MINUS, token.INT, token.COMMA, token.INT, token.RIGHT_PAREN, token.GROUP},
		},
		{
			name:     "typed literal",
			input:    "5group",
			expected: []token.Type{token.INT, token.GROUP},
		},
		{
			name:     "comparison operators",
			input:    "a == b != c <= d >= e < f > g",
			expected: []token.Type{token.IDENT, token.EQ, token.IDENT, token.NOT_EQ, token.IDENT, token.LT_EQ, token.IDENT, token.GT_EQ, token.IDENT, token.LT, token.IDENT, token.GT, token.IDENT},
		},
		{
			name:     "logical operators",
			input:    "!a && b || c",
			expected: []token.Type{token.NOT, token.IDENT, token.AND, token.IDENT, token.OR, token.IDENT},
		},
		{
			name:     "paths and ranges",
			input:    "std::math 0..10 p.x",
			expected: []token.Type{token.IDENT, token.DOUBLE_COLON, token.IDENT, token.INT, token.DOT_DOT, token.INT, token.IDENT, token.DOT, token.IDENT},
		},
		{
			name:     "underscore alone and in identifier",
			input:    "_ _tmp a_b",
			expected: []token.Type{token.UNDERSCORE, token.IDENT, token.IDENT},
		},
		{
			name:     "annotation",
			input:    "@test function f()",
			expected: []token.Type{token.AT, token.IDENT, token.FUNCTION, token.IDENT, token.LEFT_PAREN, token.RIGHT_PAREN},
		},
		{
			name:     "arrow versus minus",
			input:    "-> - >",
			expected: []token.Type{token.ARROW, token.MINUS, token.GT},
		},
		{
			name:     "line comment kept by default",
			input:    "x // trailing",
			expected: []token.Type{token.IDENT, token.LINE_COMMENT},
		},
		{
			name:     "block comment kept by default",
			input:    "/* note */ x",
			expected: []token.Type{token.BLOCK_COMMENT, token.IDENT},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []token.Type{},
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: []token.Type{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := New(tt.input).Scan()
			assert.NoError(t, err)

			actual := make([]token.Type, 0, len(tokens))
			for _, tok := range tokens {
				actual = append(actual, tok.Type)
			}

			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestTokenValues(t *testing.T) {
	tokens, err := New("let total_0 = 42;").Scan()
	assert.NoError(t, err)

	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}

	assert.Equal(t, []string{"let", "total_0", "=", "42", ";"}, values)
}

func TestTokenSpans(t *testing.T) {
	tokens, err := New("let x =\n  5group;").Scan()
	assert.NoError(t, err)
	assert.Equal(t, 6, len(tokens))

	assert.Equal(t, source.NewSpan(1, 1, 3), tokens[0].Span) // let
	assert.Equal(t, source.NewSpan(1, 5, 1), tokens[1].Span) // x
	assert.Equal(t, source.NewSpan(1, 7, 1), tokens[2].Span) // =
	assert.Equal(t, source.NewSpan(2, 3, 1), tokens[3].Span) // 5
	assert.Equal(t, source.NewSpan(2, 4, 5), tokens[4].Span) // group
	assert.Equal(t, source.NewSpan(2, 9, 1), tokens[5].Span) // ;

	// "5group" has no gap between the literal and its type keyword.
	assert.Equal(t, tokens[3].Span.End, tokens[4].Span.Start)
}

func TestMultiLineBlockCommentSpan(t *testing.T) {
	tokens, err := New("/* a\nb */").Scan()
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tokens))

	assert.Equal(t, token.BLOCK_COMMENT, tokens[0].Type)
	assert.Equal(t, "/* a\nb */", tokens[0].Value)
	assert.Equal(t, source.Position{Line: 1, Column: 1}, tokens[0].Span.Start)
	assert.Equal(t, source.Position{Line: 2, Column: 5}, tokens[0].Span.End)
}

func TestUnexpectedCharacter(t *testing.T) {
	tokens, err := New("let & x").Scan()
	assert.IsError(t, err, ErrUnexpectedCharacter)

	// The scan continues past the offending rune.
	actual := make([]token.Type, 0, len(tokens))
	for _, tok := range tokens {
		actual = append(actual, tok.Type)
	}

	assert.Equal(t, []token.Type{token.LET, token.IDENT}, actual)
}

func TestUnterminatedBlockComment(t *testing.T) {
	tests := []string{"/* abc", "/*", "/*/"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := New(input).Scan()
			assert.IsError(t, err, ErrUnterminatedComment)
		})
	}
}
