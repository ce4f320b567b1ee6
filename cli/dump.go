package cli

import (
	"fmt"

	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/token"
)

// DumpFile converts a parsed file into plain maps and slices, the shape
// serialized by the parse command's json and yaml outputs.
func DumpFile(file *ast.File) map[string]any {
	declarations := make([]any, 0, len(file.Declarations))
	for _, decl := range file.Declarations {
		declarations = append(declarations, dumpDeclaration(decl))
	}

	return map[string]any{
		"kind":         "file",
		"span":         file.Span().String(),
		"declarations": declarations,
	}
}

// DumpTokens converts a token sequence for json and yaml output.
func DumpTokens(tokens []token.Token) []map[string]any {
	out := make([]map[string]any, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, map[string]any{
			"type": tok.Type.String(),
			"text": tok.Value,
			"span": tok.Span.String(),
		})
	}

	return out
}

// SummarizeFile returns one line per declaration, the parse command's
// text output.
func SummarizeFile(file *ast.File) []string {
	lines := make([]string, 0, len(file.Declarations))

	for _, decl := range file.Declarations {
		switch d := decl.(type) {
		case *ast.FunctionDeclaration:
			kind := "function"
			if d.Const {
				kind = "const function"
			}

			lines = append(lines, fmt.Sprintf("%s %s (%d parameters) [%s]", kind, d.Name.Name, len(d.Parameters), d.Span()))
		case *ast.CircuitDeclaration:
			lines = append(lines, fmt.Sprintf("circuit %s (%d members) [%s]", d.Name.Name, len(d.Members), d.Span()))
		case *ast.ConstDeclaration:
			lines = append(lines, fmt.Sprintf("const %s = %s [%s]", d.Name.Name, d.Value, d.Span()))
		}
	}

	return lines
}

func dumpDeclaration(decl ast.Declaration) map[string]any {
	switch d := decl.(type) {
	case *ast.FunctionDeclaration:
		return dumpFunction(d)
	case *ast.CircuitDeclaration:
		members := make([]any, 0, len(d.Members))

		for _, member := range d.Members {
			switch m := member.(type) {
			case *ast.CircuitVariable:
				members = append(members, map[string]any{
					"kind": "variable",
					"span": m.Span().String(),
					"name": m.Name.Name,
					"type": m.Type.String(),
				})
			case *ast.FunctionDeclaration:
				members = append(members, dumpFunction(m))
			}
		}

		return map[string]any{
			"kind":    "circuit",
			"span":    d.Span().String(),
			"name":    d.Name.Name,
			"members": members,
		}
	case *ast.ConstDeclaration:
		fields := map[string]any{
			"kind":  "const",
			"span":  d.Span().String(),
			"name":  d.Name.Name,
			"value": dumpExpression(d.Value),
		}
		if d.Type != nil {
			fields["type"] = d.Type.String()
		}

		return fields
	default:
		return map[string]any{"kind": "unknown", "span": decl.Span().String()}
	}
}

func dumpFunction(fn *ast.FunctionDeclaration) map[string]any {
	parameters := make([]any, 0, len(fn.Parameters))
	for _, param := range fn.Parameters {
		parameters = append(parameters, map[string]any{
			"kind":    "parameter",
			"span":    param.Span().String(),
			"name":    param.Name.Name,
			"mutable": param.Mutable,
			"type":    param.Type.String(),
		})
	}

	fields := map[string]any{
		"kind":       "function",
		"span":       fn.Span().String(),
		"name":       fn.Name.Name,
		"const":      fn.Const,
		"parameters": parameters,
		"body":       dumpBlock(fn.Body),
	}

	if len(fn.Annotations) > 0 {
		annotations := make([]any, 0, len(fn.Annotations))
		for _, annotation := range fn.Annotations {
			annotations = append(annotations, annotation.Name.Name)
		}

		fields["annotations"] = annotations
	}

	if fn.ReturnType != nil {
		fields["return_type"] = fn.ReturnType.String()
	}

	return fields
}

func dumpBlock(block *ast.Block) map[string]any {
	statements := make([]any, 0, len(block.Statements))
	for _, stmt := range block.Statements {
		statements = append(statements, dumpStatement(stmt))
	}

	return map[string]any{
		"kind":       "block",
		"span":       block.Span().String(),
		"statements": statements,
	}
}

func dumpStatement(stmt ast.Statement) map[string]any {
	switch s := stmt.(type) {
	case *ast.Block:
		return dumpBlock(s)
	case *ast.LetStatement:
		fields := map[string]any{
			"kind":    "let",
			"span":    s.Span().String(),
			"name":    s.Name.Name,
			"const":   s.Const,
			"mutable": s.Mutable,
			"value":   dumpExpression(s.Value),
		}
		if s.Type != nil {
			fields["type"] = s.Type.String()
		}

		return fields
	case *ast.ReturnStatement:
		return map[string]any{
			"kind":  "return",
			"span":  s.Span().String(),
			"value": dumpExpression(s.Value),
		}
	case *ast.ConditionalStatement:
		fields := map[string]any{
			"kind":      "conditional",
			"span":      s.Span().String(),
			"condition": dumpExpression(s.Condition),
			"then":      dumpBlock(s.Then),
		}
		if s.Else != nil {
			fields["else"] = dumpStatement(s.Else)
		}

		return fields
	case *ast.ForStatement:
		return map[string]any{
			"kind":     "for",
			"span":     s.Span().String(),
			"variable": s.Variable.Name,
			"from":     dumpExpression(s.Start),
			"to":       dumpExpression(s.Stop),
			"body":     dumpBlock(s.Body),
		}
	case *ast.ExpressionStatement:
		return map[string]any{
			"kind":       "expression",
			"span":       s.Span().String(),
			"expression": dumpExpression(s.Expr),
		}
	default:
		return map[string]any{"kind": "unknown", "span": stmt.Span().String()}
	}
}

func dumpExpression(expr ast.Expression) map[string]any {
	switch e := expr.(type) {
	case *ast.Identifier:
		return map[string]any{
			"kind": "identifier",
			"span": e.Span().String(),
			"name": e.Name,
		}
	case *ast.IntegerLiteral:
		fields := map[string]any{
			"kind":  "integer",
			"span":  e.Span().String(),
			"value": e.Value,
		}
		if e.Suffix != token.EOF {
			fields["suffix"] = e.Suffix.String()
		}

		return fields
	case *ast.BooleanLiteral:
		return map[string]any{
			"kind":  "boolean",
			"span":  e.Span().String(),
			"value": e.Value,
		}
	case *ast.GroupTuple:
		return map[string]any{
			"kind": "group",
			"span": e.Span().String(),
			"x":    e.X.String(),
			"y":    e.Y.String(),
		}
	case *ast.UnaryExpression:
		return map[string]any{
			"kind":  "unary",
			"span":  e.Span().String(),
			"op":    e.Op.String(),
			"inner": dumpExpression(e.Inner),
		}
	case *ast.BinaryExpression:
		return map[string]any{
			"kind":  "binary",
			"span":  e.Span().String(),
			"op":    e.Op.String(),
			"left":  dumpExpression(e.Left),
			"right": dumpExpression(e.Right),
		}
	case *ast.CastExpression:
		return map[string]any{
			"kind":  "cast",
			"span":  e.Span().String(),
			"inner": dumpExpression(e.Inner),
			"type":  e.TargetType.String(),
		}
	case *ast.CallExpression:
		arguments := make([]any, 0, len(e.Arguments))
		for _, argument := range e.Arguments {
			arguments = append(arguments, dumpExpression(argument))
		}

		return map[string]any{
			"kind":      "call",
			"span":      e.Span().String(),
			"callee":    dumpExpression(e.Callee),
			"arguments": arguments,
		}
	case *ast.MemberExpression:
		return map[string]any{
			"kind":   "member",
			"span":   e.Span().String(),
			"target": dumpExpression(e.Target),
			"member": e.Member.Name,
		}
	case *ast.StaticAccessExpression:
		return map[string]any{
			"kind":   "static_access",
			"span":   e.Span().String(),
			"target": dumpExpression(e.Target),
			"member": e.Member.Name,
		}
	case *ast.TupleIndexExpression:
		return map[string]any{
			"kind":   "tuple_index",
			"span":   e.Span().String(),
			"target": dumpExpression(e.Target),
			"index":  e.Index.Value,
		}
	case *ast.IndexExpression:
		return map[string]any{
			"kind":   "index",
			"span":   e.Span().String(),
			"target": dumpExpression(e.Target),
			"index":  dumpExpression(e.Index),
		}
	case *ast.TupleExpression:
		return map[string]any{
			"kind":     "tuple",
			"span":     e.Span().String(),
			"elements": dumpExpressions(e.Elements),
		}
	case *ast.ArrayExpression:
		return map[string]any{
			"kind":     "array",
			"span":     e.Span().String(),
			"elements": dumpExpressions(e.Elements),
		}
	case *ast.CircuitInitExpression:
		members := make([]any, 0, len(e.Members))

		for _, member := range e.Members {
			fields := map[string]any{"name": member.Name.Name}
			// Shorthand members have no value expression.
			if member.Value != nil {
				fields["value"] = dumpExpression(member.Value)
			}

			members = append(members, fields)
		}

		return map[string]any{
			"kind":    "circuit_init",
			"span":    e.Span().String(),
			"name":    e.Name.Name,
			"members": members,
		}
	default:
		return map[string]any{"kind": "unknown", "span": expr.Span().String()}
	}
}

func dumpExpressions(expressions []ast.Expression) []any {
	out := make([]any, 0, len(expressions))
	for _, expression := range expressions {
		out = append(out, dumpExpression(expression))
	}

	return out
}
