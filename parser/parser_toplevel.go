package parser

import (
	"github.com/newton-lang/newton/ast"
	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/span"
	"github.com/newton-lang/newton/types"
)

// parseTopLevel dispatches one top-level item and, on failure, performs
// top-level recovery (§4.2.1): count the error, skip forward to the next
// plausible item start, and leave an ErrorItem sentinel.
func (p *Parser) parseTopLevel() ast.TopLevel {
	start := p.currentSpan()
	item, err := p.tryParseTopLevel(start)
	if err != nil {
		p.ErrorCount++
		p.syncTopLevel()
		return ast.NewTopLevel(start, ast.ErrorItem{Err: *err})
	}
	return item
}

func (p *Parser) tryParseTopLevel(start span.Span) (ast.TopLevel, *perror.ParseError) {
	switch p.currentKind() {
	case lexer.Import:
		return p.parseImport(start)
	case lexer.Type:
		return p.parseTypeDeclaration(start)
	case lexer.Extern, lexer.Fn:
		return p.parseFunctionDeclaration(start)
	default:
		err := perror.NewPrefixError(p.currentText())
		return ast.TopLevel{}, &err
	}
}

// parseImport parses `import "name" ;`.
func (p *Parser) parseImport(start span.Span) (ast.TopLevel, *perror.ParseError) {
	p.advance() // 'import'
	nameTok, _, err := p.consume(lexer.StringLiteral, "string literal")
	if err != nil {
		return ast.TopLevel{}, err
	}
	endSpan, serr := p.consumeSemicolon()
	if serr != nil {
		return ast.TopLevel{}, serr
	}
	return ast.NewTopLevel(start.To(endSpan), ast.Import{Name: nameTok.Lexeme}), nil
}

// parseFunctionDeclaration parses `[extern] fn NAME ParameterList => Type Body`.
// An extern declaration's body is a bare ';'; every other function has a
// braced block.
func (p *Parser) parseFunctionDeclaration(start span.Span) (ast.TopLevel, *perror.ParseError) {
	isExternal := p.check(lexer.Extern)
	if isExternal {
		p.advance()
	}
	if _, _, err := p.consume(lexer.Fn, "fn"); err != nil {
		return ast.TopLevel{}, err
	}
	nameTok, _, err := p.consume(lexer.Identifier, "identifier")
	if err != nil {
		return ast.TopLevel{}, err
	}
	params, err := p.parseParameterList(isExternal)
	if err != nil {
		return ast.TopLevel{}, err
	}
	if _, _, err := p.consume(lexer.Arrow, "=>"); err != nil {
		return ast.TopLevel{}, err
	}
	retType, _, err := p.consumeType()
	if err != nil {
		return ast.TopLevel{}, err
	}

	var body ast.BlockStatement
	var endSpan span.Span
	if isExternal {
		sp, serr := p.consumeSemicolon()
		if serr != nil {
			return ast.TopLevel{}, serr
		}
		endSpan = sp
	} else {
		b, bspan, berr := p.parseBlock()
		if berr != nil {
			return ast.TopLevel{}, berr
		}
		body, endSpan = b, bspan
	}

	decl := ast.FunctionDeclaration{
		Name:       nameTok.Lexeme,
		Parameters: params,
		Body:       body,
		ReturnType: retType,
		IsExternal: isExternal,
	}
	return ast.NewTopLevel(start.To(endSpan), decl), nil
}

// parseParameterList parses `( [ Param { , Param } ] [ ... ] )`. A
// trailing `...` is only accepted when isExternal; otherwise it is a
// recoverable ConsumeError rather than the source grammar's panic.
func (p *Parser) parseParameterList(isExternal bool) (ast.ParameterList, *perror.ParseError) {
	if _, _, err := p.consume(lexer.LeftParen, "("); err != nil {
		return ast.ParameterList{}, err
	}

	params := make([]ast.Parameter, 0)
	varargs := false
	for !p.check(lexer.RightParen) && !p.atEnd() {
		if p.check(lexer.Varargs) {
			if !isExternal {
				err := perror.NewConsumeError("...", "a named parameter ('...' requires extern)")
				return ast.ParameterList{}, &err
			}
			p.advance()
			varargs = true
			params = append(params, ast.Parameter{Name: "...", Type: ast.NewSimple(types.VarArgs())})
			break
		}

		nameTok, _, err := p.consume(lexer.Identifier, "parameter name")
		if err != nil {
			return ast.ParameterList{}, err
		}
		if _, _, err := p.consume(lexer.Colon, ":"); err != nil {
			return ast.ParameterList{}, err
		}
		ty, _, terr := p.consumeType()
		if terr != nil {
			return ast.ParameterList{}, terr
		}
		params = append(params, ast.Parameter{Name: nameTok.Lexeme, Type: ty})

		if p.check(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, _, err := p.consume(lexer.RightParen, ")"); err != nil {
		return ast.ParameterList{}, err
	}
	return ast.ParameterList{Parameters: params, Varargs: varargs}, nil
}
