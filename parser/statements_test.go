package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/diag"
	"github.com/wyrelang/wyre/token"
)

func TestParseLetStatement(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		wantConst   bool
		wantMutable bool
		wantType    string
	}{
		{
			name: "plain let",
			src:  "let x = 5;",
		},
		{
			name:        "mutable with type",
			src:         "let mut x: u32 = 5;",
			wantMutable: true,
			wantType:    "u32",
		},
		{
			name:      "const binding",
			src:       "const x: field = 1field;",
			wantConst: true,
			wantType:  "field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := ParseStatement(tt.src)
			assert.NoError(t, err)

			let, ok := stmt.(*ast.LetStatement)
			assert.True(t, ok)
			assert.Equal(t, tt.wantConst, let.Const)
			assert.Equal(t, tt.wantMutable, let.Mutable)
			assert.Equal(t, "x", let.Name.Name)

			if tt.wantType == "" {
				assert.Zero(t, let.Type)
			} else {
				assert.Equal(t, tt.wantType, let.Type.String())
			}

			assert.NotZero(t, let.Value)
		})
	}
}

func TestParseReturnStatement(t *testing.T) {
	stmt, err := ParseStatement("return x + 1;")
	assert.NoError(t, err)

	ret, ok := stmt.(*ast.ReturnStatement)
	assert.True(t, ok)
	assert.Equal(t, "x + 1", ret.Value.String())
}

func TestParseConditionalStatement(t *testing.T) {
	stmt, err := ParseStatement("if a { return 1; } else if b { return 2; } else { return 3; }")
	assert.NoError(t, err)

	cond, ok := stmt.(*ast.ConditionalStatement)
	assert.True(t, ok)
	assert.Equal(t, "a", cond.Condition.String())
	assert.Equal(t, 1, len(cond.Then.Statements))

	elseIf, ok := cond.Else.(*ast.ConditionalStatement)
	assert.True(t, ok)
	assert.Equal(t, "b", elseIf.Condition.String())

	last, ok := elseIf.Else.(*ast.Block)
	assert.True(t, ok)
	assert.Equal(t, 1, len(last.Statements))
}

func TestParseConditionalGuardsCircuitInit(t *testing.T) {
	// "p {" in condition position opens the block; it is not a circuit
	// initializer.
	stmt, err := ParseStatement("if p { return 1; }")
	assert.NoError(t, err)

	cond, ok := stmt.(*ast.ConditionalStatement)
	assert.True(t, ok)

	_, ok = cond.Condition.(*ast.Identifier)
	assert.True(t, ok)

	// Parentheses lift the restriction again.
	stmt, err = ParseStatement("if (Point { x: 1 }).x { return 1; }")
	assert.NoError(t, err)

	cond, ok = stmt.(*ast.ConditionalStatement)
	assert.True(t, ok)

	member, ok := cond.Condition.(*ast.MemberExpression)
	assert.True(t, ok)

	_, ok = member.Target.(*ast.CircuitInitExpression)
	assert.True(t, ok)
}

func TestParseForStatement(t *testing.T) {
	stmt, err := ParseStatement("for i in 0..10 { sum(); }")
	assert.NoError(t, err)

	loop, ok := stmt.(*ast.ForStatement)
	assert.True(t, ok)
	assert.Equal(t, "i", loop.Variable.Name)
	assert.Equal(t, "0", loop.Start.String())
	assert.Equal(t, "10", loop.Stop.String())
	assert.Equal(t, 1, len(loop.Body.Statements))
}

func TestParseExpressionStatement(t *testing.T) {
	stmt, err := ParseStatement("transfer(to, amount);")
	assert.NoError(t, err)

	expr, ok := stmt.(*ast.ExpressionStatement)
	assert.True(t, ok)
	assert.Equal(t, "transfer(to, amount)", expr.Expr.String())
}

func TestParseBlockStatement(t *testing.T) {
	stmt, err := ParseStatement("{ let x = 1; return x; }")
	assert.NoError(t, err)

	block, ok := stmt.(*ast.Block)
	assert.True(t, ok)
	assert.Equal(t, 2, len(block.Statements))
}

func TestParseStatementDispatchRestoresCursor(t *testing.T) {
	// Statement dispatch pops the first token and pushes it back; the
	// keyword rule must still see it.
	p := New(scan(t, "return 1; return 2;"), nil)

	first, err := p.ParseStatement()
	assert.NoError(t, err)
	second, err := p.ParseStatement()
	assert.NoError(t, err)

	assert.Equal(t, "1", first.(*ast.ReturnStatement).Value.String())
	assert.Equal(t, "2", second.(*ast.ReturnStatement).Value.String())
	assert.False(t, p.HasNext())
}

func TestParseStatementErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		category error
	}{
		{
			name:     "missing semicolon",
			src:      "let x = 5",
			category: diag.ErrUnexpectedEOF,
		},
		{
			name:     "missing value",
			src:      "let x = ;",
			category: diag.ErrUnexpectedToken,
		},
		{
			name:     "empty input",
			src:      "",
			category: diag.ErrUnexpectedEOF,
		},
		{
			name:     "missing range dots",
			src:      "for i in 0 10 { }",
			category: diag.ErrUnexpectedToken,
		},
		{
			name:     "leftover tokens",
			src:      "return 1; return 2;",
			category: diag.ErrUnexpectedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStatement(tt.src)
			assert.IsError(t, err, tt.category)
		})
	}
}

func TestParseStatementKeywordValue(t *testing.T) {
	// A const binding in statement position must not be mistaken for a
	// const function even when a function declaration follows.
	p := New(scan(t, "const x = 1; function"), nil)

	stmt, err := p.ParseStatement()
	assert.NoError(t, err)

	let, ok := stmt.(*ast.LetStatement)
	assert.True(t, ok)
	assert.True(t, let.Const)

	next, err := p.Peek()
	assert.NoError(t, err)
	assert.Equal(t, token.FUNCTION, next.Type)
}
