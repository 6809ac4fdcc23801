package parser

import (
	"github.com/newton-lang/newton/ast"
	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/span"
	"github.com/newton-lang/newton/types"
)

// parseTypeDeclaration parses `type NAME ...`, dispatching on what
// follows NAME (§4.2.4).
func (p *Parser) parseTypeDeclaration(start span.Span) (ast.TopLevel, *perror.ParseError) {
	p.advance() // 'type'
	nameTok, _, err := p.consume(lexer.Identifier, "identifier")
	if err != nil {
		return ast.TopLevel{}, err
	}

	switch p.currentKind() {
	case lexer.Struct:
		return p.parseStructDefinition(start, nameTok.Lexeme)
	case lexer.Enum:
		return p.parseEnumDefinition(start, nameTok.Lexeme)
	case lexer.Smaller:
		return p.parseTypeAlias(start, nameTok.Lexeme)
	case lexer.Trait:
		err := perror.NewInternalError("trait declarations are not implemented")
		return ast.TopLevel{}, &err
	default:
		err := perror.NewConsumeError(p.currentText(), "struct, enum, trait, or '<'")
		return ast.TopLevel{}, &err
	}
}

// parseGenericParams parses `< Ident { , Ident } >`.
func (p *Parser) parseGenericParams() ([]string, *perror.ParseError) {
	p.advance() // '<'
	params := make([]string, 0)
	for {
		tok, _, err := p.consume(lexer.Identifier, "generic parameter")
		if err != nil {
			return nil, err
		}
		params = append(params, tok.Lexeme)
		if p.check(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, _, err := p.consume(lexer.Greater, ">"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseStructDefinition parses `struct [ < GenericParams > ] { Member* }`.
// Each Member is either a field (`@name: Type`) or a nested function
// (method). A field is terminated by ';'; a method ends with its own body
// (a braced block, or ';' for an extern method), and a ';' after a
// method's block is rejected.
func (p *Parser) parseStructDefinition(start span.Span, name string) (ast.TopLevel, *perror.ParseError) {
	p.advance() // 'struct'

	var generics []string
	if p.check(lexer.Smaller) {
		g, err := p.parseGenericParams()
		if err != nil {
			return ast.TopLevel{}, err
		}
		generics = g
	}

	if _, _, err := p.consume(lexer.LeftBrace, "{"); err != nil {
		return ast.TopLevel{}, err
	}

	fields := make([]ast.StructField, 0)
	methods := make([]ast.FunctionDeclaration, 0)
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		switch {
		case p.check(lexer.At):
			p.advance()
			fieldNameTok, _, ferr := p.consume(lexer.Identifier, "field name")
			if ferr != nil {
				return ast.TopLevel{}, ferr
			}
			if _, _, cerr := p.consume(lexer.Colon, ":"); cerr != nil {
				return ast.TopLevel{}, cerr
			}
			ty, _, terr := p.consumeType()
			if terr != nil {
				return ast.TopLevel{}, terr
			}
			fields = append(fields, ast.StructField{Name: fieldNameTok.Lexeme, Type: ty})
			if _, _, serr := p.consume(lexer.Semicolon, ";"); serr != nil {
				return ast.TopLevel{}, serr
			}

		case p.check(lexer.Fn) || p.check(lexer.Extern):
			methodStart := p.currentSpan()
			item, merr := p.parseFunctionDeclaration(methodStart)
			if merr != nil {
				return ast.TopLevel{}, merr
			}
			methods = append(methods, item.Kind.(ast.FunctionDeclaration))

		default:
			err := perror.NewPrefixError(p.currentText())
			return ast.TopLevel{}, &err
		}
	}

	_, closeSpan, err := p.consume(lexer.RightBrace, "}")
	if err != nil {
		return ast.TopLevel{}, err
	}

	decl := ast.StructDefinition{Name: name, GenericParams: generics, Fields: fields, Methods: methods}
	return ast.NewTopLevel(start.To(closeSpan), ast.TypeDeclarationItem{Declaration: decl}), nil
}

// parseEnumDefinition parses `enum [ : Type ] { Ident (Ident)* }`. The
// backing type defaults to Void when omitted.
func (p *Parser) parseEnumDefinition(start span.Span, name string) (ast.TopLevel, *perror.ParseError) {
	p.advance() // 'enum'

	backing := ast.NewSimple(types.Void())
	if p.check(lexer.Colon) {
		p.advance()
		ty, _, err := p.consumeType()
		if err != nil {
			return ast.TopLevel{}, err
		}
		backing = ty
	}

	if _, _, err := p.consume(lexer.LeftBrace, "{"); err != nil {
		return ast.TopLevel{}, err
	}
	variants := make([]string, 0)
	for p.check(lexer.Identifier) {
		variants = append(variants, p.current.tok.Lexeme)
		p.advance()
	}
	_, closeSpan, err := p.consume(lexer.RightBrace, "}")
	if err != nil {
		return ast.TopLevel{}, err
	}

	decl := ast.EnumDefinition{Name: name, Variants: variants, BackingType: backing}
	return ast.NewTopLevel(start.To(closeSpan), ast.TypeDeclarationItem{Declaration: decl}), nil
}

// parseTypeAlias parses `< GenericParams > = Type ;`, NAME having already
// been consumed by the caller.
func (p *Parser) parseTypeAlias(start span.Span, name string) (ast.TopLevel, *perror.ParseError) {
	generics, err := p.parseGenericParams()
	if err != nil {
		return ast.TopLevel{}, err
	}
	if _, _, eqErr := p.consume(lexer.Equals, "="); eqErr != nil {
		return ast.TopLevel{}, eqErr
	}
	ty, _, terr := p.consumeType()
	if terr != nil {
		return ast.TopLevel{}, terr
	}
	endSpan, serr := p.consumeSemicolon()
	if serr != nil {
		return ast.TopLevel{}, serr
	}

	decl := ast.TypeAlias{Name: name, GenericParams: generics, Type: ty}
	return ast.NewTopLevel(start.To(endSpan), ast.TypeDeclarationItem{Declaration: decl}), nil
}
