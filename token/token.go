// Package token defines the lexical vocabulary of the wyre language: the
// token type enumeration, the reserved-word tables, and the positioned
// Token value the lexer produces and the parser consumes.
package token

import "github.com/wyrelang/wyre/source"

// Type represents the type of a token.
type Type int

const (
	// EOF is reserved to stand in for "no token" when a cursor position
	// has to be rendered in a diagnostic. The lexer never stores it in
	// the materialized token sequence.
	EOF Type = iota

	// Literals and identifiers
	INT   // integer literal, digits kept as text
	IDENT // identifier

	// Punctuation
	LEFT_PAREN   // (
	RIGHT_PAREN  // )
	LEFT_SQUARE  // [
	RIGHT_SQUARE // ]
	LEFT_CURLY   // {
	RIGHT_CURLY  // }
	COMMA        // ,
	DOT          // .
	DOT_DOT      // ..
	SEMICOLON    // ;
	COLON        // :
	DOUBLE_COLON // ::
	ARROW        // ->
	AT           // @
	UNDERSCORE   // _

	// Operators
	ASSIGN // =
	EQ     // ==
	NOT_EQ // !=
	LT     // <
	LT_EQ  // <=
	GT     // >
	GT_EQ  // >=
	ADD    // +
	MINUS  // -
	STAR   // *
	SLASH  // /
	NOT    // !
	AND    // &&
	OR     // ||

	// Keywords
	FUNCTION
	CONST
	CIRCUIT
	LET
	MUT
	IF
	ELSE
	FOR
	IN
	RETURN
	AS
	IMPORT
	TRUE
	FALSE

	// Type keywords
	ADDRESS
	BOOL
	FIELD
	GROUP
	U8
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128

	// Comments
	LINE_COMMENT  // // line comment
	BLOCK_COMMENT // /* block comment */
)

// String returns the canonical source spelling for fixed tokens and a
// category description for the variable ones. Diagnostics interpolate
// this directly ("expected 'function' -- found 'let'").
func (t Type) String() string {
	switch t {
	case EOF:
		return "<eof>"
	case INT:
		return "integer"
	case IDENT:
		return "identifier"
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case LEFT_SQUARE:
		return "["
	case RIGHT_SQUARE:
		return "]"
	case LEFT_CURLY:
		return "{"
	case RIGHT_CURLY:
		return "}"
	case COMMA:
		return ","
	case DOT:
		return "."
	case DOT_DOT:
		return ".."
	case SEMICOLON:
		return ";"
	case COLON:
		return ":"
	case DOUBLE_COLON:
		return "::"
	case ARROW:
		return "->"
	case AT:
		return "@"
	case UNDERSCORE:
		return "_"
	case ASSIGN:
		return "="
	case EQ:
		return "=="
	case NOT_EQ:
		return "!="
	case LT:
		return "<"
	case LT_EQ:
		return "<="
	case GT:
		return ">"
	case GT_EQ:
		return ">="
	case ADD:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case NOT:
		return "!"
	case AND:
		return "&&"
	case OR:
		return "||"
	case FUNCTION:
		return "function"
	case CONST:
		return "const"
	case CIRCUIT:
		return "circuit"
	case LET:
		return "let"
	case MUT:
		return "mut"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case FOR:
		return "for"
	case IN:
		return "in"
	case RETURN:
		return "return"
	case AS:
		return "as"
	case IMPORT:
		return "import"
	case TRUE:
		return "true"
	case FALSE:
		return "false"
	case ADDRESS:
		return "address"
	case BOOL:
		return "bool"
	case FIELD:
		return "field"
	case GROUP:
		return "group"
	case U8:
		return "u8"
	case U16:
		return "u16"
	case U32:
		return "u32"
	case U64:
		return "u64"
	case U128:
		return "u128"
	case I8:
		return "i8"
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case I128:
		return "i128"
	case LINE_COMMENT:
		return "line comment"
	case BLOCK_COMMENT:
		return "block comment"
	default:
		return "unknown"
	}
}

// Keywords lists every reserved word, in declaration order. The cursor's
// loose-identifier acceptor consumes any member of this set and reuses its
// spelling as the identifier name.
var Keywords = []Type{
	FUNCTION, CONST, CIRCUIT, LET, MUT, IF, ELSE, FOR, IN, RETURN, AS,
	IMPORT, TRUE, FALSE,
	ADDRESS, BOOL, FIELD, GROUP,
	U8, U16, U32, U64, U128,
	I8, I16, I32, I64, I128,
}

var keywords = make(map[string]Type, len(Keywords))

func init() {
	for _, k := range Keywords {
		keywords[k.String()] = k
	}
}

// Lookup resolves an identifier spelling to its keyword type, or IDENT if
// the spelling is not reserved.
func Lookup(name string) Type {
	if k, ok := keywords[name]; ok {
		return k
	}

	return IDENT
}

// IsKeyword reports whether t is a reserved word.
func (t Type) IsKeyword() bool {
	return t >= FUNCTION && t <= I128
}

// IsComment reports whether t is a comment token type. Comment tokens are
// produced by the lexer but filtered out when a cursor is constructed.
func (t Type) IsComment() bool {
	return t == LINE_COMMENT || t == BLOCK_COMMENT
}

// Token is one positioned lexical unit: a token type, its exact source
// spelling, and the span it occupies.
type Token struct {
	Type  Type
	Value string
	Span  source.Span
}

// String returns the display spelling of the token: the source text when
// the lexer recorded one, otherwise the type's canonical spelling.
func (t Token) String() string {
	if t.Value != "" {
		return t.Value
	}

	return t.Type.String()
}
