// Package parser implements a Pratt (operator-precedence) parser that
// turns a lexer's token stream into a Program. Prefix and infix parsing
// rules are registered into dispatch maps keyed by token type, the same
// registration-map idiom used throughout this codebase's earlier lexer
// and parser generations.
package parser

import (
	"github.com/newton-lang/newton/ast"
	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/source"
	"github.com/newton-lang/newton/span"
)

// prefixParseFn parses an expression that starts at the current token,
// which has already been consumed by the time it is called.
type prefixParseFn func(p *Parser) *ast.Expression

// infixParseFn continues an expression given its already-parsed left
// operand; the operator token has already been consumed.
type infixParseFn func(p *Parser, left *ast.Expression) *ast.Expression

// lookahead is one slot of the parser's two-token window: a token, a
// lexing error reported at that position, or end of input.
type lookahead struct {
	tok lexer.Token
	sp  span.Span
	err *perror.ParseError
	eof bool
}

// Parser consumes a Lexer and builds a Program. It holds exactly one
// token of lookahead beyond "current", matching the source grammar's
// peekable design.
type Parser struct {
	lex *lexer.Lexer
	src *source.Source

	current lookahead
	peek    lookahead

	noStruct bool

	// ErrorCount is the number of recoverable errors produced while
	// parsing, counted separately from the number of Error nodes (a
	// single Error node can absorb several skipped tokens).
	ErrorCount int

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn

	// tokTok/tokSpan hold the token a prefix or infix rule was dispatched
	// on, already consumed by the time that rule runs.
	tokTok  lexer.Token
	tokSpan span.Span
}

// currentModuleName is the module qualifier used for unqualified calls and
// bare-identifier struct initialisers: the name of the source being parsed.
func (p *Parser) currentModuleName() string {
	return p.src.Name
}

// New builds a Parser positioned at the start of src's token stream.
func New(src *source.Source) *Parser {
	p := &Parser{lex: lexer.NewLexer(src), src: src}
	p.registerRules()
	p.current = p.pull()
	p.peek = p.pull()
	return p
}

func (p *Parser) pull() lookahead {
	item, ok := p.lex.Next()
	if !ok {
		return lookahead{eof: true}
	}
	if item.Err != nil {
		err := item.Err.Node
		return lookahead{err: &err, sp: item.Err.Span}
	}
	return lookahead{tok: item.Token.Node, sp: item.Token.Span}
}

func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.pull()
}

// currentKind reports current's token kind, treating a lexing error or
// end of input as their own pseudo-kinds so callers can switch uniformly.
func (p *Parser) currentKind() lexer.TokenType {
	switch {
	case p.current.eof:
		return lexer.EOF
	case p.current.err != nil:
		return lexer.Invalid
	default:
		return p.current.tok.Kind
	}
}

func (p *Parser) peekKind() lexer.TokenType {
	switch {
	case p.peek.eof:
		return lexer.EOF
	case p.peek.err != nil:
		return lexer.Invalid
	default:
		return p.peek.tok.Kind
	}
}

func (p *Parser) currentSpan() span.Span {
	return p.current.sp
}

// currentText renders current for error messages: a lexing error's own
// message, "EOF" at end of input, or the token's own rendering.
func (p *Parser) currentText() string {
	switch {
	case p.current.eof:
		return "EOF"
	case p.current.err != nil:
		return p.current.err.Error()
	default:
		return p.current.tok.String()
	}
}

func (p *Parser) atEnd() bool {
	return p.current.eof
}

// check reports whether current is exactly kind (never true for a lexing
// error or EOF).
func (p *Parser) check(kind lexer.TokenType) bool {
	return p.current.err == nil && !p.current.eof && p.current.tok.Kind == kind
}

// errorHere builds an ErrorExpr covering current's span without consuming
// it, incrementing the error counter.
func (p *Parser) errorHere(err perror.ParseError) *ast.Expression {
	p.ErrorCount++
	return ast.New(p.currentSpan(), ast.ErrorExpr{Err: err})
}

// consume requires current to be kind, advances past it, and returns its
// span; otherwise it reports a ConsumeError without advancing.
func (p *Parser) consume(kind lexer.TokenType, expected string) (lexer.Token, span.Span, *perror.ParseError) {
	if p.check(kind) {
		tok := p.current.tok
		sp := p.current.sp
		p.advance()
		return tok, sp, nil
	}
	err := perror.NewConsumeError(p.currentText(), expected)
	return lexer.Token{}, p.currentSpan(), &err
}

// Parse consumes the entire token stream and returns the resulting
// Program. Malformed top-level items become ast.ErrorItem sentinels; the
// parser never aborts early.
func (p *Parser) Parse() ast.Program {
	items := make([]ast.TopLevel, 0)
	for !p.atEnd() {
		items = append(items, p.parseTopLevel())
	}
	return ast.Program{Items: items}
}

// Expression is the public expression entry point used directly by tests
// and by any caller that wants to parse a standalone expression rather
// than a whole program.
func (p *Parser) Expression(noStruct bool) *ast.Expression {
	return p.parseExpression(noStruct)
}

// syncTopLevel discards tokens until the next plausible top-level start
// (Fn, Extern, Import, Type) or end of input, after a malformed top-level
// item.
func (p *Parser) syncTopLevel() {
	for !p.atEnd() {
		switch p.currentKind() {
		case lexer.Fn, lexer.Extern, lexer.Import, lexer.Type:
			return
		}
		p.advance()
	}
}

// syncStatement discards tokens through the next ';', or up to (not
// through) a token that plausibly starts a new statement, after a
// malformed statement.
func (p *Parser) syncStatement() {
	for !p.atEnd() {
		switch p.currentKind() {
		case lexer.Semicolon:
			p.advance()
			return
		case lexer.Type, lexer.Fn, lexer.If, lexer.While, lexer.Let, lexer.Return, lexer.Delete:
			return
		}
		p.advance()
	}
}
