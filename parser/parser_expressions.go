package parser

import (
	"github.com/newton-lang/newton/ast"
	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/span"
	"github.com/newton-lang/newton/types"
)

// parseExpression is the outer expression entry point: an assignment
// level, then a Pratt climb underneath it. Assignment is not folded into
// the climb as a normal binary operator; it right-associates by
// reparsing its right-hand side as a full expression after consuming '='.
func (p *Parser) parseExpression(noStruct bool) *ast.Expression {
	saved := p.noStruct
	p.noStruct = noStruct
	defer func() { p.noStruct = saved }()

	left := p.parsePrecedence(lexer.PrecedenceNone)
	if p.check(lexer.Equals) {
		eq := p.current.tok
		p.advance()
		value := p.parseExpression(noStruct)
		return ast.New(left.Span.To(value.Span), ast.Assignment{Left: left, Eq: eq, Value: value})
	}
	return left
}

// parsePrecedence implements the Pratt climb proper: one prefix dispatch
// on the current token, then infix dispatches while the lookahead binds
// tighter than min. It reads p.noStruct rather than taking it as a
// parameter, because prefix/infix rule functions carry no mode argument
// of their own.
func (p *Parser) parsePrecedence(min lexer.Precedence) *ast.Expression {
	prefixFn, ok := p.prefixFns[p.currentKind()]
	if !ok {
		expr := p.errorHere(perror.NewPrefixError(p.currentText()))
		p.advance()
		return expr
	}
	p.tokTok = p.current.tok
	p.tokSpan = p.currentSpan()
	p.advance()
	left := prefixFn(p)

	for {
		kind := p.currentKind()
		if kind == lexer.LeftBrace && p.noStruct {
			break
		}
		infixFn, ok := p.infixFns[kind]
		if !ok || lexer.PrecedenceOf(kind) <= min {
			break
		}
		p.tokTok = p.current.tok
		p.tokSpan = p.currentSpan()
		p.advance()
		left = infixFn(p, left)
	}
	return left
}

// userIdentifier coerces expr into a qualified UserIdentifier: a bare
// Identifier takes the current module, and a one-level Identifier.Identifier
// Access splits into (module, name). Anything deeper, or any other
// expression shape, is an internal error.
func (p *Parser) userIdentifier(expr *ast.Expression) (types.UserIdentifier, *perror.ParseError) {
	switch k := expr.Kind.(type) {
	case ast.Identifier:
		return types.UserIdentifier{Module: p.currentModuleName(), Name: k.Name}, nil
	case ast.Access:
		if left, ok := k.Left.Kind.(ast.Identifier); ok {
			return types.UserIdentifier{Module: left.Name, Name: k.Identifier}, nil
		}
		err := perror.NewInternalError("a user identifier cannot be more than one module level deep")
		return types.UserIdentifier{}, &err
	default:
		err := perror.NewInternalError("expected an identifier or module-qualified identifier here")
		return types.UserIdentifier{}, &err
	}
}

// --- prefix rules ---

func parseNullLiteral(p *Parser) *ast.Expression {
	return ast.New(p.tokSpan, ast.NullLiteral{})
}

func parseDecLiteral(p *Parser) *ast.Expression {
	return ast.New(p.tokSpan, ast.DecLiteral{Text: p.tokTok.Lexeme})
}

func parseFloatLiteral(p *Parser) *ast.Expression {
	return ast.New(p.tokSpan, ast.FloatLiteral{Text: p.tokTok.Lexeme})
}

func parseStringLiteral(p *Parser) *ast.Expression {
	return ast.New(p.tokSpan, ast.StringLiteral{Text: p.tokTok.Lexeme})
}

func parseCharLiteral(p *Parser) *ast.Expression {
	return ast.New(p.tokSpan, ast.CharLiteral{Text: p.tokTok.Lexeme})
}

// parseIdentifier yields a bare Identifier node. A following `{` (when
// struct initialisers are allowed in this context) is picked up by the
// Pratt loop's infix dispatch on LeftBrace, not handled here.
func parseIdentifier(p *Parser) *ast.Expression {
	return ast.New(p.tokSpan, ast.Identifier{Name: p.tokTok.Lexeme})
}

// parseGrouping parses `( Expression )`. The returned node is the inner
// expression itself, its span widened by one byte on each side to cover
// the parens it was wrapped in.
func parseGrouping(p *Parser) *ast.Expression {
	inner := p.parseExpression(false)
	if _, _, err := p.consume(lexer.RightParen, ")"); err != nil {
		p.ErrorCount++
		return ast.New(inner.Span, ast.ErrorExpr{Err: *err})
	}
	inner.Span = inner.Span.Widen(1)
	return inner
}

// parseUnary handles the four prefix operators that share one precedence:
// '-', '&', '*', '!'.
func parseUnary(p *Parser) *ast.Expression {
	op := p.tokTok
	opSpan := p.tokSpan
	inner := p.parsePrecedence(lexer.PrecedenceUnary)
	full := opSpan.To(inner.Span)
	switch op.Kind {
	case lexer.Minus:
		return ast.New(full, ast.Negate{Op: op, Inner: inner})
	case lexer.Ampersand:
		return ast.New(full, ast.Reference{Op: op, Inner: inner})
	case lexer.Star:
		return ast.New(full, ast.Dereference{Op: op, Inner: inner})
	case lexer.Bang:
		return ast.New(full, ast.BoolNegate{Op: op, Inner: inner})
	default:
		p.ErrorCount++
		return ast.New(full, ast.ErrorExpr{Err: perror.NewInternalError("unary dispatch on a non-unary token")})
	}
}

func parseSizeOf(p *Parser) *ast.Expression {
	startSpan := p.tokSpan
	ty, tySpan, err := p.consumeType()
	if err != nil {
		p.ErrorCount++
		return ast.New(startSpan.To(tySpan), ast.ErrorExpr{Err: *err})
	}
	return ast.New(startSpan.To(tySpan), ast.SizeOf{Type: ty})
}

// parseNewExpr parses `new Expression`; the inner expression is parsed at
// unary precedence, so `new array()` correctly wraps the whole call.
func parseNewExpr(p *Parser) *ast.Expression {
	startSpan := p.tokSpan
	inner := p.parsePrecedence(lexer.PrecedenceUnary)
	return ast.New(startSpan.To(inner.Span), ast.NewExpr{Inner: inner})
}

// --- infix rules ---

func parseBinary(p *Parser, left *ast.Expression) *ast.Expression {
	op := p.tokTok
	right := p.parsePrecedence(op.Precedence())
	return ast.New(left.Span.To(right.Span), ast.Binary{Left: left, Op: op, Right: right})
}

func parseBoolBinary(p *Parser, left *ast.Expression) *ast.Expression {
	op := p.tokTok
	right := p.parsePrecedence(op.Precedence())
	return ast.New(left.Span.To(right.Span), ast.BoolBinary{Left: left, Op: op, Right: right})
}

func parseCast(p *Parser, left *ast.Expression) *ast.Expression {
	asTok := p.tokTok
	ty, tySpan, err := p.consumeType()
	if err != nil {
		p.ErrorCount++
		return ast.New(left.Span.To(tySpan), ast.ErrorExpr{Err: *err})
	}
	return ast.New(left.Span.To(tySpan), ast.Cast{Expr: left, As: asTok, Type: ty})
}

// parseAccess requires the right-hand side of '.' to be a bare identifier.
func parseAccess(p *Parser, left *ast.Expression) *ast.Expression {
	if !p.check(lexer.Identifier) {
		err := perror.NewConsumeError(p.currentText(), "identifier")
		p.ErrorCount++
		return ast.New(left.Span, ast.ErrorExpr{Err: err})
	}
	name := p.current.tok.Lexeme
	idSpan := p.currentSpan()
	p.advance()
	return ast.New(left.Span.To(idSpan), ast.Access{Left: left, Identifier: name})
}

// parseStructInit handles the '{' infix rule: left must coerce to a
// UserIdentifier (a bare name or a one-level module.Name access).
func parseStructInit(p *Parser, left *ast.Expression) *ast.Expression {
	uid, err := p.userIdentifier(left)
	if err != nil {
		p.ErrorCount++
		return ast.New(left.Span, ast.ErrorExpr{Err: *err})
	}
	fields, closeSpan, ferr := p.parseInitializerList()
	if ferr != nil {
		p.ErrorCount++
		return ast.New(left.Span.To(closeSpan), ast.ErrorExpr{Err: *ferr})
	}
	return ast.New(left.Span.To(closeSpan), ast.StructInitialization{Identifier: uid, Fields: fields})
}

// parseInitializerList parses the field list of a struct initialiser,
// '{' already consumed, up to and including the closing '}'.
func (p *Parser) parseInitializerList() (ast.InitializerList, span.Span, *perror.ParseError) {
	fields := make(ast.InitializerList, 0)
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		nameTok, _, err := p.consume(lexer.Identifier, "field name")
		if err != nil {
			return fields, p.currentSpan(), err
		}
		if _, _, err := p.consume(lexer.Colon, ":"); err != nil {
			return fields, p.currentSpan(), err
		}
		value := p.parseExpression(false)
		fields = append(fields, ast.InitializerField{Name: nameTok.Lexeme, Value: value})
		if p.check(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	_, closeSpan, err := p.consume(lexer.RightBrace, "}")
	return fields, closeSpan, err
}

// parseCall handles the '(' infix rule. A module-qualified callee
// (Identifier.Identifier) splits into (module, bare callee); anything
// else keeps the whole left expression as the callee, qualified by the
// current source's own name.
func parseCall(p *Parser, left *ast.Expression) *ast.Expression {
	module := p.currentModuleName()
	callee := left
	if access, ok := left.Kind.(ast.Access); ok {
		if ident, ok2 := access.Left.Kind.(ast.Identifier); ok2 {
			module = ident.Name
			callee = ast.New(left.Span, ast.Identifier{Name: access.Identifier})
		}
	}
	args, closeSpan, err := p.parseArgumentList()
	if err != nil {
		p.ErrorCount++
		return ast.New(left.Span.To(closeSpan), ast.ErrorExpr{Err: *err})
	}
	return ast.New(left.Span.To(closeSpan), ast.Call{Module: module, Callee: callee, Arguments: args})
}

// parseArgumentList parses a call's argument list, '(' already consumed,
// up to and including the closing ')'.
func (p *Parser) parseArgumentList() (ast.ArgumentList, span.Span, *perror.ParseError) {
	args := make(ast.ArgumentList, 0)
	for !p.check(lexer.RightParen) && !p.atEnd() {
		args = append(args, p.parseExpression(false))
		if p.check(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	_, closeSpan, err := p.consume(lexer.RightParen, ")")
	return args, closeSpan, err
}
