package parser

import (
	"github.com/newton-lang/newton/ast"
	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/span"
	"github.com/newton-lang/newton/types"
)

// consumeType parses one Type production (§4.2.8) starting at the current
// token, returning the type and the span of the tokens it consumed. It
// never leaves an expression-shaped sentinel behind on failure — Type has
// no error alternative of its own, so callers propagate the returned
// error to their own statement- or top-level recovery point.
func (p *Parser) consumeType() (ast.Type, span.Span, *perror.ParseError) {
	switch p.currentKind() {
	case lexer.TypeIdentifier:
		tok := p.current.tok
		sp := p.currentSpan()
		p.advance()
		return ast.NewSimple(tok.TypeIdent), sp, nil

	case lexer.Identifier:
		// Climb only through call-precedence operators ('.'), so a following
		// '=', 'as' or arithmetic operator stays outside the type.
		saved := p.noStruct
		p.noStruct = true
		expr := p.parsePrecedence(lexer.PrecedenceUnary)
		p.noStruct = saved
		uid, err := p.userIdentifier(expr)
		if err != nil {
			return ast.Type{}, expr.Span, err
		}
		return ast.NewSimple(types.NewUserDefined(uid)), expr.Span, nil

	case lexer.Star:
		return p.consumeIndirectionType(false)

	case lexer.Ampersand, lexer.AmpersandAmpersand:
		return p.consumeIndirectionType(true)

	case lexer.LeftBracket:
		return p.consumeArrayType()

	case lexer.Question:
		startSpan := p.currentSpan()
		p.advance()
		base, baseSpan, err := p.consumeSimpleType()
		if err != nil {
			return ast.Type{}, startSpan.To(baseSpan), err
		}
		return ast.NewNullable(base), startSpan.To(baseSpan), nil

	default:
		err := perror.NewConsumeError(p.currentText(), "type")
		return ast.Type{}, p.currentSpan(), &err
	}
}

// consumeSimpleType parses a type and requires it to be a Simple
// alternative, the restriction every composite type's base is held to.
func (p *Parser) consumeSimpleType() (types.Simple, span.Span, *perror.ParseError) {
	ty, sp, err := p.consumeType()
	if err != nil {
		return types.Simple{}, sp, err
	}
	simple, ok := ty.Simple()
	if !ok {
		err := perror.NewInternalError("expected a simple type here, found a composite type")
		return types.Simple{}, sp, &err
	}
	return simple, sp, nil
}

// consumeIndirectionType parses the `*`/`&` family: one or two repeated
// marker runes followed by a Simple base. ref selects Ref over Pointer.
func (p *Parser) consumeIndirectionType(ref bool) (ast.Type, span.Span, *perror.ParseError) {
	startSpan := p.currentSpan()
	marker := lexer.Star
	if ref {
		marker = lexer.Ampersand
	}
	depth := uint8(0)
markers:
	for {
		switch {
		case p.check(marker):
			depth++
		case ref && p.check(lexer.AmpersandAmpersand):
			// The lexer fuses "&&" into one token; it counts as two markers.
			depth += 2
		default:
			break markers
		}
		p.advance()
	}
	base, baseSpan, err := p.consumeSimpleType()
	full := startSpan.To(baseSpan)
	if err != nil {
		return ast.Type{}, full, err
	}

	var ty ast.Type
	var cerr error
	if ref {
		ty, cerr = ast.NewRef(base, depth)
	} else {
		ty, cerr = ast.NewPointer(base, depth)
	}
	if cerr != nil {
		e := perror.NewInternalError(cerr.Error())
		return ast.Type{}, full, &e
	}
	return ty, full, nil
}

// consumeArrayType parses `[?]Simple` (dynamic) or `[Expression]Simple`
// (fixed-size).
func (p *Parser) consumeArrayType() (ast.Type, span.Span, *perror.ParseError) {
	startSpan := p.currentSpan()
	p.advance() // '['

	var size *ast.Expression
	if p.check(lexer.Question) {
		p.advance()
	} else {
		size = p.parseExpression(false)
	}
	if _, _, err := p.consume(lexer.RightBracket, "]"); err != nil {
		return ast.Type{}, startSpan, err
	}
	base, baseSpan, err := p.consumeSimpleType()
	full := startSpan.To(baseSpan)
	if err != nil {
		return ast.Type{}, full, err
	}
	return ast.NewArray(base, size), full, nil
}
