package parser

import (
	"github.com/wyrelang/wyre/ast"
	"github.com/wyrelang/wyre/diag"
	"github.com/wyrelang/wyre/source"
	"github.com/wyrelang/wyre/token"
)

// ParseDeclaration parses one file-level item: an annotated or plain
// function, a circuit, or a constant binding. A leading const is
// disambiguated by the token after it.
func (p *Parser) ParseDeclaration() (ast.Declaration, error) {
	next, err := p.Peek()
	if err != nil {
		return nil, err
	}

	switch next.Type {
	case token.AT, token.FUNCTION:
		return p.ParseFunction()
	case token.CONST:
		isFunction, err := p.PeekIsFunctionStart()
		if err != nil {
			return nil, err
		}

		if isFunction {
			return p.ParseFunction()
		}

		return p.parseConstDeclaration()
	case token.CIRCUIT:
		return p.ParseCircuit()
	default:
		return nil, diag.NewUnexpectedToken(next.String(), "'function', 'circuit', 'const' or '@'", next.Span)
	}
}

// parseAnnotation parses "@name".
func (p *Parser) parseAnnotation() (*ast.Annotation, error) {
	atSpan, err := p.Expect(token.AT)
	if err != nil {
		return nil, err
	}

	name, err := p.ExpectIdentifier()
	if err != nil {
		return nil, err
	}

	annotation := &ast.Annotation{Name: name}
	annotation.SetSpan(atSpan.Merge(name.Span()))

	return annotation, nil
}

// ParseFunction parses a function declaration:
//
//	@annotation* const? function name ( parameters ) (-> type)? block
func (p *Parser) ParseFunction() (*ast.FunctionDeclaration, error) {
	var (
		annotations []*ast.Annotation
		start       source.Span
	)

	for p.PeekType() == token.AT {
		annotation, err := p.parseAnnotation()
		if err != nil {
			return nil, err
		}

		annotations = append(annotations, annotation)
	}

	if len(annotations) > 0 {
		start = annotations[0].Span()
	}

	isConst := false

	if tok, ok := p.Eat(token.CONST); ok {
		isConst = true

		if start.IsZero() {
			start = tok.Span
		}
	}

	fnSpan, err := p.Expect(token.FUNCTION)
	if err != nil {
		return nil, err
	}

	if start.IsZero() {
		start = fnSpan
	}

	name, err := p.ExpectIdentifier()
	if err != nil {
		return nil, err
	}

	parameters, _, _, err := ParseParenCommaList(p.Cursor, p.parseParameter)
	if err != nil {
		return nil, err
	}

	var returnType ast.Type

	if _, ok := p.Eat(token.ARROW); ok {
		returnType, err = p.ParseType()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.ParseBlock()
	if err != nil {
		return nil, err
	}

	fn := &ast.FunctionDeclaration{
		Annotations: annotations,
		Const:       isConst,
		Name:        name,
		Parameters:  parameters,
		ReturnType:  returnType,
		Body:        body,
	}
	fn.SetSpan(start.Merge(body.Span()))

	return fn, nil
}

// parseParameter parses "mut? name: type". A malformed parameter is
// reported to the handler and skipped through the next element boundary so
// the rest of the list still parses.
func (p *Parser) parseParameter(*Cursor) (*ast.Parameter, bool, error) {
	var start source.Span

	mutable := false

	if tok, ok := p.Eat(token.MUT); ok {
		mutable = true
		start = tok.Span
	}

	name, err := p.ExpectIdentifier()
	if err != nil {
		p.recoverListElement(err, token.COMMA, token.RIGHT_PAREN)
		return nil, false, nil
	}

	if start.IsZero() {
		start = name.Span()
	}

	if _, err := p.Expect(token.COLON); err != nil {
		p.recoverListElement(err, token.COMMA, token.RIGHT_PAREN)
		return nil, false, nil
	}

	typ, err := p.ParseType()
	if err != nil {
		p.recoverListElement(err, token.COMMA, token.RIGHT_PAREN)
		return nil, false, nil
	}

	parameter := &ast.Parameter{Mutable: mutable, Name: name, Type: typ}
	parameter.SetSpan(start.Merge(typ.Span()))

	return parameter, true, nil
}

// parseConstDeclaration parses a file-level constant:
//
//	const name (: type)? = value ;
func (p *Parser) parseConstDeclaration() (*ast.ConstDeclaration, error) {
	start, err := p.Expect(token.CONST)
	if err != nil {
		return nil, err
	}

	name, err := p.ExpectIdentifier()
	if err != nil {
		return nil, err
	}

	var typ ast.Type

	if _, ok := p.Eat(token.COLON); ok {
		typ, err = p.ParseType()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.Expect(token.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	end, err := p.Expect(token.SEMICOLON)
	if err != nil {
		return nil, err
	}

	decl := &ast.ConstDeclaration{Name: name, Type: typ, Value: value}
	decl.SetSpan(start.Merge(end))

	return decl, nil
}

// ParseCircuit parses "circuit Name { members }". Variable members are
// "name: type" separated by commas, where the name follows the loose rules
// so fields may shadow keywords or use digit spellings. Member functions
// are full function declarations and need no separator.
func (p *Parser) ParseCircuit() (*ast.CircuitDeclaration, error) {
	start, err := p.Expect(token.CIRCUIT)
	if err != nil {
		return nil, err
	}

	name, err := p.ExpectIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.Expect(token.LEFT_CURLY); err != nil {
		return nil, err
	}

	var members []ast.CircuitMember

	for {
		next, err := p.Peek()
		if err != nil {
			return nil, err
		}

		if next.Type == token.RIGHT_CURLY {
			break
		}

		isFunction, err := p.PeekIsFunctionStart()
		if err != nil {
			return nil, err
		}

		if isFunction {
			fn, err := p.ParseFunction()
			if err != nil {
				return nil, err
			}

			members = append(members, fn)

			continue
		}

		variable, err := p.parseCircuitVariable()
		if err != nil {
			return nil, err
		}

		members = append(members, variable)

		if _, ok := p.Eat(token.COMMA); ok {
			continue
		}

		// A missing comma is only legal before the closing brace or a
		// member function.
		next, err = p.Peek()
		if err != nil {
			return nil, err
		}

		if next.Type == token.RIGHT_CURLY {
			continue
		}

		isFunction, err = p.PeekIsFunctionStart()
		if err != nil {
			return nil, err
		}

		if !isFunction {
			return nil, diag.NewUnexpectedToken(next.String(), "','", next.Span)
		}
	}

	end, err := p.Expect(token.RIGHT_CURLY)
	if err != nil {
		return nil, err
	}

	circuit := &ast.CircuitDeclaration{Name: name, Members: members}
	circuit.SetSpan(start.Merge(end))

	return circuit, nil
}

// parseCircuitVariable parses one "name: type" member.
func (p *Parser) parseCircuitVariable() (*ast.CircuitVariable, error) {
	name, err := p.ExpectLooseIdentifier()
	if err != nil {
		return nil, err
	}

	if _, err := p.Expect(token.COLON); err != nil {
		return nil, err
	}

	typ, err := p.ParseType()
	if err != nil {
		return nil, err
	}

	variable := &ast.CircuitVariable{Name: name, Type: typ}
	variable.SetSpan(name.Span().Merge(typ.Span()))

	return variable, nil
}
