package parser

import (
	"github.com/newton-lang/newton/ast"
	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/span"
)

// parseBlock parses a braced statement sequence and returns it together
// with the span from its opening to its closing brace.
func (p *Parser) parseBlock() (ast.BlockStatement, span.Span, *perror.ParseError) {
	_, openSpan, err := p.consume(lexer.LeftBrace, "{")
	if err != nil {
		return ast.BlockStatement{}, openSpan, err
	}
	stmts := make([]ast.Statement, 0)
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		stmts = append(stmts, p.parseStatement())
	}
	_, closeSpan, err := p.consume(lexer.RightBrace, "}")
	block := ast.BlockStatement{Statements: stmts}
	if err != nil {
		return block, openSpan.To(closeSpan), err
	}
	return block, openSpan.To(closeSpan), nil
}

func (p *Parser) consumeSemicolon() (span.Span, *perror.ParseError) {
	_, sp, err := p.consume(lexer.Semicolon, ";")
	return sp, err
}

// parseStatement dispatches one statement and, on failure, performs the
// statement-level recovery described in §4.2.3: count the error,
// synchronise, and leave an ExpressionStatement(Error) sentinel so the
// block's shape is preserved.
func (p *Parser) parseStatement() ast.Statement {
	start := p.currentSpan()
	stmt, err := p.tryParseStatement(start)
	if err != nil {
		p.ErrorCount++
		p.syncStatement()
		return ast.NewStatement(start, ast.ExpressionStatement{
			Value: ast.New(start, ast.ErrorExpr{Err: *err}),
		})
	}
	return stmt
}

func (p *Parser) tryParseStatement(start span.Span) (ast.Statement, *perror.ParseError) {
	switch p.currentKind() {
	case lexer.Let:
		return p.parseVariableDeclaration(start)
	case lexer.If:
		return p.parseIfStatement(start)
	case lexer.While:
		return p.parseWhileStatement(start)
	case lexer.Return:
		return p.parseReturnStatement(start)
	case lexer.Delete:
		return p.parseDeleteStatement(start)
	default:
		return p.parseExpressionStatement(start)
	}
}

// parseVariableDeclaration parses `let NAME [ : Type ] = Expression ;`.
func (p *Parser) parseVariableDeclaration(start span.Span) (ast.Statement, *perror.ParseError) {
	p.advance() // 'let'
	nameTok, _, err := p.consume(lexer.Identifier, "identifier")
	if err != nil {
		return ast.Statement{}, err
	}

	var declType *ast.Type
	if p.check(lexer.Colon) {
		p.advance()
		ty, _, terr := p.consumeType()
		if terr != nil {
			return ast.Statement{}, terr
		}
		declType = &ty
	}

	if _, _, eqErr := p.consume(lexer.Equals, "="); eqErr != nil {
		return ast.Statement{}, eqErr
	}
	value := p.parseExpression(false)
	endSpan, serr := p.consumeSemicolon()
	if serr != nil {
		return ast.Statement{}, serr
	}
	decl := ast.VariableDeclaration{Name: nameTok.Lexeme, Type: declType, Value: value}
	return ast.NewStatement(start.To(endSpan), decl), nil
}

// parseIfStatement parses `if ExpressionNoStruct Block [ else (If | Block) ]`.
func (p *Parser) parseIfStatement(start span.Span) (ast.Statement, *perror.ParseError) {
	p.advance() // 'if'
	cond := p.parseExpression(true)
	then, thenSpan, err := p.parseBlock()
	if err != nil {
		return ast.Statement{}, err
	}
	full := start.To(thenSpan)

	var elseStmt *ast.Statement
	if p.check(lexer.Else) {
		p.advance()
		if p.check(lexer.If) {
			elseStart := p.currentSpan()
			s, eerr := p.parseIfStatement(elseStart)
			if eerr != nil {
				return ast.Statement{}, eerr
			}
			full = start.To(s.Span)
			elseStmt = &s
		} else {
			elseBlock, elseSpan, eerr := p.parseBlock()
			if eerr != nil {
				return ast.Statement{}, eerr
			}
			s := ast.NewStatement(elseSpan, elseBlock)
			full = start.To(elseSpan)
			elseStmt = &s
		}
	}
	return ast.NewStatement(full, ast.IfStatement{Condition: cond, Then: then, Else: elseStmt}), nil
}

// parseWhileStatement parses `while ExpressionNoStruct Block`.
func (p *Parser) parseWhileStatement(start span.Span) (ast.Statement, *perror.ParseError) {
	p.advance() // 'while'
	cond := p.parseExpression(true)
	body, bodySpan, err := p.parseBlock()
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.NewStatement(start.To(bodySpan), ast.WhileStatement{Condition: cond, Body: body}), nil
}

// parseReturnStatement parses `return [ Expression ] ;`.
func (p *Parser) parseReturnStatement(start span.Span) (ast.Statement, *perror.ParseError) {
	p.advance() // 'return'
	var value *ast.Expression
	if !p.check(lexer.Semicolon) {
		value = p.parseExpression(false)
	}
	endSpan, err := p.consumeSemicolon()
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.NewStatement(start.To(endSpan), ast.ReturnStatement{Value: value}), nil
}

// parseDeleteStatement parses `delete Expression ;`.
func (p *Parser) parseDeleteStatement(start span.Span) (ast.Statement, *perror.ParseError) {
	p.advance() // 'delete'
	value := p.parseExpression(false)
	endSpan, err := p.consumeSemicolon()
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.NewStatement(start.To(endSpan), ast.DeleteStatement{Value: value}), nil
}

// parseExpressionStatement parses `Expression ;`.
func (p *Parser) parseExpressionStatement(start span.Span) (ast.Statement, *perror.ParseError) {
	value := p.parseExpression(false)
	endSpan, err := p.consumeSemicolon()
	if err != nil {
		return ast.Statement{}, err
	}
	return ast.NewStatement(start.To(endSpan), ast.ExpressionStatement{Value: value}), nil
}
