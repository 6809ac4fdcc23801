// Package perror defines the closed taxonomy of errors the lexer and
// parser can produce. It sits at the bottom of the dependency graph,
// alongside span and source, so that both lexer and ast/parser can return
// a common error type without importing each other.
package perror

import "fmt"

// ParseError is the sum of every error Newton's front end can raise while
// turning source text into an AST. Exactly one of the New* constructors
// below should be used to build a value; Kind reports which alternative
// is held.
type ParseError struct {
	kind     errorKind
	cause    string
	text     string
	actual   string
	expected string
}

type errorKind int

const (
	// KindLexing wraps a failure to recognize the next token (an
	// unterminated string, an invalid escape, a stray byte).
	KindLexing errorKind = iota
	// KindPrefix reports a token that cannot begin an expression.
	KindPrefix
	// KindInfix reports a token that cannot continue an expression that
	// has already started.
	KindInfix
	// KindConsume reports a token that fails an exact match against an
	// expected token during a mandatory consume.
	KindConsume
	// KindInternal reports an invariant violated during parsing, such as a
	// user identifier more than one module level deep or a pointer depth
	// outside 1..2. The input program can trigger it.
	KindInternal
)

func (e ParseError) Kind() errorKind { return e.kind }

// NewLexingError wraps the message produced by the lexer when it cannot
// recognize the next token.
func NewLexingError(cause string) ParseError {
	return ParseError{kind: KindLexing, cause: cause}
}

// NewPrefixError reports that text cannot begin an expression.
func NewPrefixError(text string) ParseError {
	return ParseError{kind: KindPrefix, text: text}
}

// NewInfixError reports that text cannot continue an expression.
func NewInfixError(text string) ParseError {
	return ParseError{kind: KindInfix, text: text}
}

// NewConsumeError reports that actual failed an exact match against
// expected. Both are pre-rendered strings (the parser passes the offending
// token's String rendering, or "EOF", as actual, and a short description
// as expected), kept as strings here rather than a lexer.Token so this
// package never needs to import lexer.
func NewConsumeError(actual, expected string) ParseError {
	return ParseError{kind: KindConsume, actual: actual, expected: expected}
}

// NewInternalError reports an invariant violated during parsing; see
// KindInternal.
func NewInternalError(text string) ParseError {
	return ParseError{kind: KindInternal, text: text}
}

// Error renders the error for display, matching the phrasing of each
// alternative.
func (e ParseError) Error() string {
	switch e.kind {
	case KindLexing:
		return fmt.Sprintf("failed to lex token; because %s", e.cause)
	case KindPrefix:
		return fmt.Sprintf("'%s' cannot begin an expression", e.text)
	case KindInfix:
		return fmt.Sprintf("'%s' cannot continue an expression", e.text)
	case KindConsume:
		return fmt.Sprintf("expected '%s', but got '%s' instead", e.expected, e.actual)
	case KindInternal:
		return fmt.Sprintf("an internal error has occurred!\n\t%s", e.text)
	default:
		return "unknown parse error"
	}
}

// Actual and Expected expose the token text carried by a KindConsume
// error, for callers that want to render it differently than Error does.
func (e ParseError) Actual() string   { return e.actual }
func (e ParseError) Expected() string { return e.expected }
