package lexer

import (
	"fmt"

	"github.com/newton-lang/newton/types"
)

// TokenType identifies one alternative of Newton's closed token union. It is
// a string, as in go-mix, so that mismatches print as something readable
// straight out of a test failure.
type TokenType string

const (
	EOF     TokenType = "EOF"
	Invalid TokenType = "Invalid"

	// Payload-bearing terminals. Identifier, the literal kinds, and Char
	// carry their text in Token.Lexeme; TypeIdentifier carries a
	// pre-lexed types.Simple as well, with its rendering as Lexeme.
	Identifier     TokenType = "Identifier"
	DecLiteral     TokenType = "DecLiteral"
	FloatLiteral   TokenType = "FloatLiteral"
	StringLiteral  TokenType = "StringLiteral"
	Char           TokenType = "Char"
	TypeIdentifier TokenType = "TypeIdentifier"

	// Keywords.
	Null       TokenType = "null"
	Let        TokenType = "let"
	Fn         TokenType = "fn"
	If         TokenType = "if"
	Else       TokenType = "else"
	Import     TokenType = "import"
	From       TokenType = "from"
	Return     TokenType = "return"
	Extern     TokenType = "extern"
	While      TokenType = "while"
	Type       TokenType = "type"
	Struct     TokenType = "struct"
	Trait      TokenType = "trait"
	Implements TokenType = "implements"
	Enum       TokenType = "enum"
	NewKw      TokenType = "new"
	Delete     TokenType = "delete"
	Sizeof     TokenType = "sizeof"
	As         TokenType = "as"
	Static     TokenType = "static"
	Inline     TokenType = "inline"
	Abstract   TokenType = "abstract"
	Mut        TokenType = "mut"
	And        TokenType = "and"
	Or         TokenType = "or"
	For        TokenType = "for"
	Break      TokenType = "break"
	Continue   TokenType = "continue"
	True       TokenType = "true"
	False      TokenType = "false"
	Match      TokenType = "match"
	Case       TokenType = "case"
	Default    TokenType = "default"
	Finally    TokenType = "finally"
	Volatile   TokenType = "volatile"
	Register   TokenType = "register"

	// Single-character punctuation.
	Plus          TokenType = "+"
	Minus         TokenType = "-"
	Star          TokenType = "*"
	Slash         TokenType = "/"
	Percent       TokenType = "%"
	Ampersand     TokenType = "&"
	Pipe          TokenType = "|"
	Caret         TokenType = "^"
	Bang          TokenType = "!"
	Question      TokenType = "?"
	Dot           TokenType = "."
	Colon         TokenType = ":"
	Semicolon     TokenType = ";"
	Comma         TokenType = ","
	LeftParen     TokenType = "("
	RightParen    TokenType = ")"
	LeftBrace     TokenType = "{"
	RightBrace    TokenType = "}"
	LeftBracket   TokenType = "["
	RightBracket  TokenType = "]"
	At            TokenType = "@"
	Smaller       TokenType = "<"
	Greater       TokenType = ">"
	Equals        TokenType = "="

	// Multi-character punctuation.
	EqualsEquals       TokenType = "=="
	BangEquals         TokenType = "!="
	SmallerEquals      TokenType = "<="
	GreaterEquals      TokenType = ">="
	AmpersandAmpersand TokenType = "&&"
	PipePipe           TokenType = "||"
	PlusPlus           TokenType = "++"
	MinusMinus         TokenType = "--"
	Arrow              TokenType = "=>"
	Varargs            TokenType = "..."
)

// keywords maps a lexed identifier's exact text to its keyword TokenType.
// Anything absent from this table lexes as a plain Identifier.
var keywords = map[string]TokenType{
	"null": Null,
	"let": Let, "fn": Fn, "if": If, "else": Else, "import": Import,
	"from": From, "return": Return, "extern": Extern, "while": While,
	"type": Type, "struct": Struct, "trait": Trait, "implements": Implements,
	"enum": Enum, "new": NewKw, "delete": Delete, "sizeof": Sizeof, "as": As,
	"static": Static, "inline": Inline, "abstract": Abstract, "mut": Mut,
	"and": And, "or": Or, "for": For, "break": Break, "continue": Continue,
	"true": True, "false": False, "match": Match, "case": Case,
	"default": Default, "finally": Finally, "volatile": Volatile,
	"register": Register,
}

// typeKeywords maps a built-in type keyword's text to its pre-lexed Simple
// payload. Matched before the general keyword table so "i32" becomes a
// TypeIdentifier rather than falling through to a plain Identifier.
var typeKeywords = map[string]types.Simple{
	"string": types.String(),
	"char":   types.Character(),
	"void":   types.Void(),
	"bool":   types.Bool(),
	"i8":     types.NewInteger(8, true),
	"i16":    types.NewInteger(16, true),
	"i32":    types.NewInteger(32, true),
	"i64":    types.NewInteger(64, true),
	"u8":     types.NewInteger(8, false),
	"u16":    types.NewInteger(16, false),
	"u32":    types.NewInteger(32, false),
	"u64":    types.NewInteger(64, false),
	"f32":    types.NewFloat(32),
	"f64":    types.NewFloat(64),
}

// Precedence is Newton's ordered operator-precedence ladder, low to high.
type Precedence int

const (
	PrecedenceNone Precedence = iota
	PrecedenceAssignment
	PrecedenceAnd
	PrecedenceEquality
	PrecedenceComparison
	PrecedenceSum
	PrecedenceProduct
	PrecedenceUnary
	PrecedenceCall
)

// precedences maps every token that can appear in infix/postfix position to
// its precedence. A token absent from this table defaults to PrecedenceNone,
// which stops the Pratt loop.
var precedences = map[TokenType]Precedence{
	Equals:             PrecedenceAssignment,
	AmpersandAmpersand: PrecedenceAnd,
	PipePipe:           PrecedenceAnd,
	EqualsEquals:       PrecedenceEquality,
	BangEquals:         PrecedenceEquality,
	Smaller:            PrecedenceComparison,
	SmallerEquals:      PrecedenceComparison,
	Greater:            PrecedenceComparison,
	GreaterEquals:      PrecedenceComparison,
	Plus:               PrecedenceSum,
	Minus:              PrecedenceSum,
	PlusPlus:           PrecedenceSum,
	MinusMinus:         PrecedenceSum,
	Star:               PrecedenceProduct,
	Slash:              PrecedenceProduct,
	Percent:            PrecedenceProduct,
	As:                 PrecedenceProduct,
	LeftParen:          PrecedenceCall,
	LeftBrace:          PrecedenceCall,
	Dot:                PrecedenceCall,
}

// PrecedenceOf returns the infix precedence of kind, or PrecedenceNone if it
// never appears in infix/postfix position.
func PrecedenceOf(kind TokenType) Precedence {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return PrecedenceNone
}

// Token is one lexical terminal: a kind tag plus whichever payload that kind
// carries. Identifier, the literal kinds, and Char borrow Lexeme directly
// from the source buffer. TypeIdentifier carries TypeIdent, and its Lexeme
// is that type's String rendering.
type Token struct {
	Kind      TokenType
	Lexeme    string
	TypeIdent types.Simple
}

func New(kind TokenType, lexeme string) Token {
	return Token{Kind: kind, Lexeme: lexeme}
}

func NewTypeIdentifier(simple types.Simple) Token {
	return Token{Kind: TypeIdentifier, Lexeme: simple.String(), TypeIdent: simple}
}

// Precedence returns this token's infix precedence.
func (t Token) Precedence() Precedence {
	return PrecedenceOf(t.Kind)
}

// String renders the token for debugging and consume-error messages.
func (t Token) String() string {
	if t.Lexeme != "" {
		return fmt.Sprintf("%s(%q)", t.Kind, t.Lexeme)
	}
	return string(t.Kind)
}

// lookupIdentifier classifies a scanned identifier-shaped slice as a type
// keyword, a general keyword, or a plain Identifier.
func lookupIdentifier(text string) Token {
	if simple, ok := typeKeywords[text]; ok {
		return NewTypeIdentifier(simple)
	}
	if kind, ok := keywords[text]; ok {
		return New(kind, text)
	}
	return New(Identifier, text)
}
