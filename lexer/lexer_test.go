package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newton-lang/newton/source"
	"github.com/newton-lang/newton/types"
)

func tokensOf(t *testing.T, code string) []Token {
	t.Helper()
	items := NewLexer(source.New("test.nt", code)).All()
	toks := make([]Token, 0, len(items))
	for _, it := range items {
		require := assert.Nil
		require(t, it.Err, "unexpected lexing error: %v", it.Err)
		toks = append(toks, it.Token.Node)
	}
	return toks
}

func TestLexer_ArithmeticAndPunctuation(t *testing.T) {
	toks := tokensOf(t, `123 + 2 - 12 { } [ ]`)
	assert.Equal(t, []Token{
		New(DecLiteral, "123"),
		New(Plus, "+"),
		New(DecLiteral, "2"),
		New(Minus, "-"),
		New(DecLiteral, "12"),
		New(LeftBrace, "{"),
		New(RightBrace, "}"),
		New(LeftBracket, "["),
		New(RightBracket, "]"),
	}, toks)
}

func TestLexer_MultiCharOperators(t *testing.T) {
	toks := tokensOf(t, `== != <= >= && || ++ -- => ...`)
	assert.Equal(t, []Token{
		New(EqualsEquals, "=="),
		New(BangEquals, "!="),
		New(SmallerEquals, "<="),
		New(GreaterEquals, ">="),
		New(AmpersandAmpersand, "&&"),
		New(PipePipe, "||"),
		New(PlusPlus, "++"),
		New(MinusMinus, "--"),
		New(Arrow, "=>"),
		New(Varargs, "..."),
	}, toks)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := tokensOf(t, `let fn if else myVar private_9`)
	assert.Equal(t, []Token{
		New(Let, "let"),
		New(Fn, "fn"),
		New(If, "if"),
		New(Else, "else"),
		New(Identifier, "myVar"),
		New(Identifier, "private_9"),
	}, toks)
}

func TestLexer_TypeKeywords(t *testing.T) {
	toks := tokensOf(t, `i32 u8 f64 string bool char void`)
	assert.Equal(t, []Token{
		NewTypeIdentifier(types.NewInteger(32, true)),
		NewTypeIdentifier(types.NewInteger(8, false)),
		NewTypeIdentifier(types.NewFloat(64)),
		NewTypeIdentifier(types.String()),
		NewTypeIdentifier(types.Bool()),
		NewTypeIdentifier(types.Character()),
		NewTypeIdentifier(types.Void()),
	}, toks)
}

func TestLexer_StringLiteral(t *testing.T) {
	toks := tokensOf(t, `"hello, world" after`)
	assert.Equal(t, []Token{
		New(StringLiteral, "hello, world"),
		New(Identifier, "after"),
	}, toks)
}

func TestLexer_CharLiteralAndEscapes(t *testing.T) {
	toks := tokensOf(t, `'a' '\n' '\t' '\\'`)
	assert.Equal(t, []Token{
		New(Char, "a"),
		New(Char, "\n"),
		New(Char, "\t"),
		New(Char, "\\"),
	}, toks)
}

func TestLexer_FloatLiteral(t *testing.T) {
	toks := tokensOf(t, `3.14 2 5.0`)
	assert.Equal(t, []Token{
		New(FloatLiteral, "3.14"),
		New(DecLiteral, "2"),
		New(FloatLiteral, "5.0"),
	}, toks)
}

func TestLexer_LineCommentIsSkipped(t *testing.T) {
	toks := tokensOf(t, "let x = 1; // trailing comment\nlet y = 2;")
	assert.Equal(t, []TokenType{Let, Identifier, Equals, DecLiteral, Semicolon, Let, Identifier, Equals, DecLiteral, Semicolon}, kindsOf(toks))
}

func kindsOf(toks []Token) []TokenType {
	kinds := make([]TokenType, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexer_SpanCoversExactBytes(t *testing.T) {
	src := source.New("test.nt", `abc + 1`)
	items := NewLexer(src).All()
	require := assert.NotEmpty
	require(t, items)

	first := items[0].Token
	assert.Equal(t, "abc", src.Slice(first.Span))
}

func TestLexer_UnterminatedStringProducesError(t *testing.T) {
	items := NewLexer(source.New("test.nt", `"unterminated`)).All()
	require := 1
	assert.Len(t, items, require)
	assert.NotNil(t, items[0].Err)
	assert.Contains(t, items[0].Err.Node.Error(), "unterminated string literal")
}

func TestLexer_TooManyDotsIsError(t *testing.T) {
	items := NewLexer(source.New("test.nt", `..`)).All()
	assert.Len(t, items, 1)
	assert.NotNil(t, items[0].Err)
	assert.Contains(t, items[0].Err.Node.Error(), "too many dots")

	items = NewLexer(source.New("test.nt", `....`)).All()
	assert.Len(t, items, 1)
	assert.NotNil(t, items[0].Err)
	assert.Contains(t, items[0].Err.Node.Error(), "too many dots")
}

func TestLexer_ExactlyThreeDotsIsVarargs(t *testing.T) {
	toks := tokensOf(t, `...`)
	assert.Equal(t, []Token{New(Varargs, "...")}, toks)
}

func TestLexer_NonASCIIIdentifierRejected(t *testing.T) {
	items := NewLexer(source.New("test.nt", `café`)).All()
	assert.Len(t, items, 1)
	assert.NotNil(t, items[0].Err)
	assert.Contains(t, items[0].Err.Node.Error(), "non-ascii identifiers are not allowed")
}

func TestLexer_CharLiteralWrongLengthIsError(t *testing.T) {
	items := NewLexer(source.New("test.nt", `'ab'`)).All()
	assert.Len(t, items, 1)
	assert.NotNil(t, items[0].Err)
	assert.Contains(t, items[0].Err.Node.Error(), "`char` must have a length of one")
}
