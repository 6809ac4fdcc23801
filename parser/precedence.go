package parser

import "github.com/newton-lang/newton/lexer"

// registerPrefix associates f with every kind listed, overwriting any
// previous registration. Mirrors the source grammar's one-function-many-
// tokens registration helpers.
func (p *Parser) registerPrefix(f prefixParseFn, kinds ...lexer.TokenType) {
	for _, k := range kinds {
		p.prefixFns[k] = f
	}
}

func (p *Parser) registerInfix(f infixParseFn, kinds ...lexer.TokenType) {
	for _, k := range kinds {
		p.infixFns[k] = f
	}
}

// registerRules builds the prefix/infix dispatch tables once, at parser
// construction. The table is closed: a token absent from the prefix table
// yields a PrefixError at parse time, and a token absent from the infix
// table ends the expression before it.
func (p *Parser) registerRules() {
	p.prefixFns = make(map[lexer.TokenType]prefixParseFn)
	p.infixFns = make(map[lexer.TokenType]infixParseFn)

	p.registerPrefix(parseNullLiteral, lexer.Null)
	p.registerPrefix(parseDecLiteral, lexer.DecLiteral)
	p.registerPrefix(parseFloatLiteral, lexer.FloatLiteral)
	p.registerPrefix(parseStringLiteral, lexer.StringLiteral)
	p.registerPrefix(parseCharLiteral, lexer.Char)
	p.registerPrefix(parseIdentifier, lexer.Identifier)
	p.registerPrefix(parseGrouping, lexer.LeftParen)
	p.registerPrefix(parseUnary, lexer.Minus, lexer.Ampersand, lexer.Star, lexer.Bang)
	p.registerPrefix(parseSizeOf, lexer.Sizeof)
	p.registerPrefix(parseNewExpr, lexer.NewKw)

	p.registerInfix(parseBinary, lexer.Plus, lexer.Minus, lexer.Star, lexer.Slash, lexer.Percent)
	p.registerInfix(parseBoolBinary, lexer.EqualsEquals, lexer.BangEquals, lexer.Smaller,
		lexer.SmallerEquals, lexer.Greater, lexer.GreaterEquals, lexer.AmpersandAmpersand, lexer.PipePipe)
	p.registerInfix(parseCast, lexer.As)
	p.registerInfix(parseAccess, lexer.Dot)
	p.registerInfix(parseStructInit, lexer.LeftBrace)
	p.registerInfix(parseCall, lexer.LeftParen)
}
