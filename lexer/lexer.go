// Package lexer turns wyre source text into a stream of positioned tokens.
package lexer

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wyrelang/wyre/source"
	"github.com/wyrelang/wyre/token"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedComment = errors.New("unterminated block comment")
)

// TokenIterator uses the Go 1.23 iterator pattern.
type TokenIterator iter.Seq2[token.Token, error]

// Lexer scans one source text and returns its tokens as an iterator.
type Lexer struct {
	input   string
	options Options
}

// Options are options for the lexer.
type Options struct {
	SkipComments bool
}

// New creates a Lexer over input.
func New(input string, options ...Options) *Lexer {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}

	return &Lexer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens. The EOF token is yielded exactly
// once, last. Scan errors are yielded in sequence order with a zero token;
// the scanner skips the offending rune and continues.
func (l *Lexer) Tokens() TokenIterator {
	return func(yield func(token.Token, error) bool) {
		s := newScanner(l.input)

		for {
			tok, err := s.nextToken()
			if err != nil {
				if !yield(token.Token{}, err) {
					return
				}

				continue
			}

			if tok.Type == token.EOF {
				yield(tok, nil)
				return
			}

			if l.options.SkipComments && tok.Type.IsComment() {
				continue
			}

			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Scan materializes the token sequence, excluding the trailing EOF token.
// On scan errors the surviving tokens are returned together with the last
// error encountered.
func (l *Lexer) Scan() ([]token.Token, error) {
	tokens := make([]token.Token, 0, 64)

	var lastErr error

	for tok, err := range l.Tokens() {
		if err != nil {
			lastErr = err
			continue
		}

		if tok.Type == token.EOF {
			break
		}

		tokens = append(tokens, tok)
	}

	return tokens, lastErr
}

// Internal scanner implementation.
type scanner struct {
	input    string
	position int // index of the byte after current
	line     int // 1-based line of current
	column   int // 1-based column of current
	current  rune
}

func newScanner(input string) *scanner {
	s := &scanner{
		input:  input,
		line:   1,
		column: 0,
	}
	s.readChar()

	return s
}

// readChar advances current to the next rune and keeps line and column
// pointing at it. At end of input current becomes 0 and column points one
// past the final rune, which is exactly the exclusive end column.
func (s *scanner) readChar() {
	if s.current == '\n' {
		s.line++
		s.column = 0
	}

	if s.position >= len(s.input) {
		s.current = 0
		s.column++

		return
	}

	r, size := utf8.DecodeRuneInString(s.input[s.position:])
	s.current = r
	s.position += size
	s.column++
}

// peekChar looks ahead at the next rune without advancing.
func (s *scanner) peekChar() rune {
	if s.position >= len(s.input) {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(s.input[s.position:])

	return r
}

func (s *scanner) pos() source.Position {
	return source.Position{Line: s.line, Column: s.column}
}

// nextToken scans and returns the next token.
func (s *scanner) nextToken() (token.Token, error) {
	for unicode.IsSpace(s.current) {
		s.readChar()
	}

	start := s.pos()

	switch s.current {
	case 0:
		return token.Token{Type: token.EOF, Span: source.Span{Start: start, End: start}}, nil
	case '(':
		return s.single(token.LEFT_PAREN), nil
	case ')':
		return s.single(token.RIGHT_PAREN), nil
	case '[':
		return s.single(token.LEFT_SQUARE), nil
	case ']':
		return s.single(token.RIGHT_SQUARE), nil
	case '{':
		return s.single(token.LEFT_CURLY), nil
	case '}':
		return s.single(token.RIGHT_CURLY), nil
	case ',':
		return s.single(token.COMMA), nil
	case ';':
		return s.single(token.SEMICOLON), nil
	case '@':
		return s.single(token.AT), nil
	case '+':
		return s.single(token.ADD), nil
	case '*':
		return s.single(token.STAR), nil
	case '.':
		if s.peekChar() == '.' {
			return s.double(token.DOT_DOT), nil
		}

		return s.single(token.DOT), nil
	case ':':
		if s.peekChar() == ':' {
			return s.double(token.DOUBLE_COLON), nil
		}

		return s.single(token.COLON), nil
	case '-':
		if s.peekChar() == '>' {
			return s.double(token.ARROW), nil
		}

		return s.single(token.MINUS), nil
	case '=':
		if s.peekChar() == '=' {
			return s.double(token.EQ), nil
		}

		return s.single(token.ASSIGN), nil
	case '!':
		if s.peekChar() == '=' {
			return s.double(token.NOT_EQ), nil
		}

		return s.single(token.NOT), nil
	case '<':
		if s.peekChar() == '=' {
			return s.double(token.LT_EQ), nil
		}

		return s.single(token.LT), nil
	case '>':
		if s.peekChar() == '=' {
			return s.double(token.GT_EQ), nil
		}

		return s.single(token.GT), nil
	case '&':
		if s.peekChar() == '&' {
			return s.double(token.AND), nil
		}

		return token.Token{}, s.unexpectedChar(start)
	case '|':
		if s.peekChar() == '|' {
			return s.double(token.OR), nil
		}

		return token.Token{}, s.unexpectedChar(start)
	case '/':
		if s.peekChar() == '/' {
			return s.readLineComment(), nil
		}

		if s.peekChar() == '*' {
			return s.readBlockComment()
		}

		return s.single(token.SLASH), nil
	default:
		if s.current == '_' && !isWordPart(s.peekChar()) {
			return s.single(token.UNDERSCORE), nil
		}

		if unicode.IsLetter(s.current) || s.current == '_' {
			return s.readWord(), nil
		}

		if unicode.IsDigit(s.current) {
			return s.readNumber(), nil
		}

		return token.Token{}, s.unexpectedChar(start)
	}
}

// single consumes the current rune as a one-rune token.
func (s *scanner) single(typ token.Type) token.Token {
	start := s.pos()
	value := string(s.current)
	s.readChar()

	return token.Token{Type: typ, Value: value, Span: source.Span{Start: start, End: s.pos()}}
}

// double consumes the current rune and the one after it as a two-rune token.
func (s *scanner) double(typ token.Type) token.Token {
	start := s.pos()
	value := string(s.current)
	s.readChar()
	value += string(s.current)
	s.readChar()

	return token.Token{Type: typ, Value: value, Span: source.Span{Start: start, End: s.pos()}}
}

func isWordPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// readWord reads identifiers and keywords.
func (s *scanner) readWord() token.Token {
	var builder strings.Builder

	start := s.pos()

	for isWordPart(s.current) {
		builder.WriteRune(s.current)
		s.readChar()
	}

	word := builder.String()

	return token.Token{
		Type:  token.Lookup(word),
		Value: word,
		Span:  source.Span{Start: start, End: s.pos()},
	}
}

// readNumber reads an integer literal. Digit runs only; a sign is a
// separate MINUS token and any type keyword that follows is its own token,
// so "5group" scans as two adjacent tokens.
func (s *scanner) readNumber() token.Token {
	var builder strings.Builder

	start := s.pos()

	for unicode.IsDigit(s.current) {
		builder.WriteRune(s.current)
		s.readChar()
	}

	return token.Token{
		Type:  token.INT,
		Value: builder.String(),
		Span:  source.Span{Start: start, End: s.pos()},
	}
}

// readLineComment reads a // comment up to, not including, the newline.
func (s *scanner) readLineComment() token.Token {
	var builder strings.Builder

	start := s.pos()

	for s.current != 0 && s.current != '\n' {
		builder.WriteRune(s.current)
		s.readChar()
	}

	return token.Token{
		Type:  token.LINE_COMMENT,
		Value: builder.String(),
		Span:  source.Span{Start: start, End: s.pos()},
	}
}

// readBlockComment reads a /* */ comment, including both delimiters.
func (s *scanner) readBlockComment() (token.Token, error) {
	var builder strings.Builder

	start := s.pos()

	// consume '/*'
	builder.WriteRune(s.current)
	s.readChar()
	builder.WriteRune(s.current)
	s.readChar()

	terminated := false

	for s.current != 0 {
		if s.current == '*' && s.peekChar() == '/' {
			builder.WriteRune(s.current)
			s.readChar()
			builder.WriteRune(s.current)
			s.readChar()

			terminated = true

			break
		}

		builder.WriteRune(s.current)
		s.readChar()
	}

	if !terminated {
		return token.Token{}, fmt.Errorf("%w at line %d, column %d", ErrUnterminatedComment, start.Line, start.Column)
	}

	return token.Token{
		Type:  token.BLOCK_COMMENT,
		Value: builder.String(),
		Span:  source.Span{Start: start, End: s.pos()},
	}, nil
}

// unexpectedChar consumes the offending rune and reports it, so the scan
// can continue with the next token.
func (s *scanner) unexpectedChar(start source.Position) error {
	ch := s.current
	s.readChar()

	return fmt.Errorf("%w: %q at line %d, column %d", ErrUnexpectedCharacter, ch, start.Line, start.Column)
}
