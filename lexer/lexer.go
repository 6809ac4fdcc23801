// Package lexer turns a source.Source into a lazy stream of tokens. It never
// panics on ill-formed input: a recognition failure yields a lexing error
// item and scanning continues from the byte after the offending token.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/source"
	"github.com/newton-lang/newton/span"
)

// Item is one element of the lexer's pull stream: either a spanned Token or
// a spanned lexing error, never both.
type Item struct {
	Token span.Spanned[Token]
	Err   *span.Spanned[perror.ParseError]
}

func tokItem(tok Token, sp span.Span) Item {
	return Item{Token: span.NewSpannedFrom(sp, tok)}
}

func errItem(err perror.ParseError, sp span.Span) Item {
	spanned := span.NewSpannedFrom(sp, err)
	return Item{Err: &spanned}
}

// Lexer is a peekable rune cursor over a Source's byte buffer. Position
// tracking is done in bytes, not runes, so every span it produces indexes
// directly into Source.Code.
type Lexer struct {
	src     *source.Source
	pos     int
	current rune
	width   int
}

// NewLexer builds a Lexer positioned at the start of src.
func NewLexer(src *source.Source) *Lexer {
	l := &Lexer{src: src}
	l.current, l.width = decodeAt(src.Code, 0)
	return l
}

// Source returns the buffer this lexer is scanning.
func (l *Lexer) Source() *source.Source { return l.src }

func decodeAt(s string, pos int) (rune, int) {
	if pos >= len(s) {
		return 0, 0
	}
	r, w := utf8.DecodeRuneInString(s[pos:])
	return r, w
}

func (l *Lexer) atEnd() bool {
	return l.width == 0
}

func (l *Lexer) peek() rune {
	r, _ := decodeAt(l.src.Code, l.pos+l.width)
	return r
}

func (l *Lexer) advance() {
	l.pos += l.width
	l.current, l.width = decodeAt(l.src.Code, l.pos)
}

// lastByte returns the inclusive byte offset of the rune currently under
// the cursor, used as a span's end before consuming that rune.
func (l *Lexer) lastByte() int {
	return l.pos + l.width - 1
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }
func isDigit(r rune) bool      { return r >= '0' && r <= '9' }

// Next yields the next lexical item, or ok=false once the input (and any
// trailing whitespace) is exhausted.
func (l *Lexer) Next() (Item, bool) {
	l.skipWhitespaceAndComments()
	if l.atEnd() {
		return Item{}, false
	}

	start := l.pos
	switch {
	case isIdentStart(l.current):
		return l.readIdentifier(start), true
	case isDigit(l.current):
		return l.readNumber(start), true
	case l.current == '"':
		return l.readString(start), true
	case l.current == '\'':
		return l.readChar(start), true
	default:
		return l.readOperator(start), true
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.current == ' ' || l.current == '\t' || l.current == '\n' || l.current == '\r':
			l.advance()
		case l.current == '/' && l.peek() == '/':
			for !l.atEnd() && l.current != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier(start int) Item {
	nonASCII := false
	end := l.lastByte()
	for isIdentPart(l.current) {
		if l.current > unicode.MaxASCII {
			nonASCII = true
		}
		end = l.lastByte()
		l.advance()
	}
	sp := span.New(start, end)
	if nonASCII {
		return errItem(perror.NewLexingError("non-ascii identifiers are not allowed"), sp)
	}
	return tokItem(lookupIdentifier(l.src.Code[start:end+1]), sp)
}

func (l *Lexer) readNumber(start int) Item {
	end := l.lastByte()
	for isDigit(l.current) {
		end = l.lastByte()
		l.advance()
	}

	isFloat := false
	if l.current == '.' && isDigit(l.peek()) {
		isFloat = true
		end = l.lastByte()
		l.advance()
		for isDigit(l.current) {
			end = l.lastByte()
			l.advance()
		}
	}

	kind := DecLiteral
	if isFloat {
		kind = FloatLiteral
	}
	return tokItem(New(kind, l.src.Code[start:end+1]), span.New(start, end))
}

func (l *Lexer) readString(start int) Item {
	l.advance() // opening quote
	contentStart := l.pos
	end := contentStart - 1

	for !l.atEnd() && l.current != '"' {
		end = l.lastByte()
		l.advance()
	}
	if l.atEnd() {
		return errItem(perror.NewLexingError("unterminated string literal"), span.New(start, end))
	}

	text := ""
	if end >= contentStart {
		text = l.src.Code[contentStart : end+1]
	}
	l.advance() // closing quote
	return tokItem(New(StringLiteral, text), span.New(contentStart, end))
}

func (l *Lexer) readChar(start int) Item {
	l.advance() // opening quote
	contentStart := l.pos
	if l.atEnd() {
		return errItem(perror.NewLexingError("`char` must have a length of one"), span.New(start, start))
	}

	var text string
	var end int
	if l.current == '\\' {
		l.advance()
		if l.atEnd() {
			return errItem(perror.NewLexingError("`char` must have a length of one"), span.New(start, contentStart))
		}
		switch l.current {
		case '\\':
			text = "\\"
		case '0':
			text = "\x00"
		case 'n':
			text = "\n"
		case 'r':
			text = "\r"
		case 't':
			text = "\t"
		default:
			return l.recoverCharLiteral(start, l.lastByte())
		}
		end = l.lastByte()
		l.advance()
	} else {
		text = string(l.current)
		end = l.lastByte()
		l.advance()
	}

	if l.current != '\'' {
		return l.recoverCharLiteral(start, end)
	}
	l.advance() // closing quote
	return tokItem(New(Char, text), span.New(contentStart, end))
}

// recoverCharLiteral is called once a char literal's body has already
// proven too long or malformed. It consumes through the closing quote (or
// EOF) so the stray content isn't re-lexed as fresh tokens, then reports a
// single error for the whole literal.
func (l *Lexer) recoverCharLiteral(start, lastGoodByte int) Item {
	end := lastGoodByte
	for !l.atEnd() && l.current != '\'' {
		end = l.lastByte()
		l.advance()
	}
	if !l.atEnd() {
		end = l.lastByte()
		l.advance() // closing quote
	}
	return errItem(perror.NewLexingError("`char` must have a length of one"), span.New(start, end))
}

// twoCharOr scans a punctuation token that is either a single rune or that
// rune followed immediately by second, picking the latter when it matches.
func (l *Lexer) twoCharOr(oneKind TokenType, second rune, twoKind TokenType) Item {
	start := l.pos
	if l.peek() == second {
		l.advance()
		end := l.lastByte()
		l.advance()
		return tokItem(New(twoKind, l.src.Code[start:end+1]), span.New(start, end))
	}
	end := l.lastByte()
	l.advance()
	return tokItem(New(oneKind, l.src.Code[start:end+1]), span.New(start, end))
}

func (l *Lexer) single(kind TokenType) Item {
	start := l.pos
	end := l.lastByte()
	lexeme := l.src.Code[start : end+1]
	l.advance()
	return tokItem(New(kind, lexeme), span.New(start, end))
}

func (l *Lexer) readOperator(start int) Item {
	switch l.current {
	case '=':
		switch l.peek() {
		case '=':
			l.advance()
			end := l.lastByte()
			l.advance()
			return tokItem(New(EqualsEquals, "=="), span.New(start, end))
		case '>':
			l.advance()
			end := l.lastByte()
			l.advance()
			return tokItem(New(Arrow, "=>"), span.New(start, end))
		default:
			return l.single(Equals)
		}
	case '!':
		return l.twoCharOr(Bang, '=', BangEquals)
	case '<':
		return l.twoCharOr(Smaller, '=', SmallerEquals)
	case '>':
		return l.twoCharOr(Greater, '=', GreaterEquals)
	case '&':
		return l.twoCharOr(Ampersand, '&', AmpersandAmpersand)
	case '|':
		return l.twoCharOr(Pipe, '|', PipePipe)
	case '+':
		return l.twoCharOr(Plus, '+', PlusPlus)
	case '-':
		return l.twoCharOr(Minus, '-', MinusMinus)
	case '.':
		return l.readDots(start)
	case '*':
		return l.single(Star)
	case '/':
		return l.single(Slash)
	case '%':
		return l.single(Percent)
	case '^':
		return l.single(Caret)
	case '?':
		return l.single(Question)
	case ':':
		return l.single(Colon)
	case ';':
		return l.single(Semicolon)
	case ',':
		return l.single(Comma)
	case '(':
		return l.single(LeftParen)
	case ')':
		return l.single(RightParen)
	case '{':
		return l.single(LeftBrace)
	case '}':
		return l.single(RightBrace)
	case '[':
		return l.single(LeftBracket)
	case ']':
		return l.single(RightBracket)
	case '@':
		return l.single(At)
	default:
		end := l.lastByte()
		l.advance()
		return errItem(perror.NewLexingError("unexpected character"), span.New(start, end))
	}
}

// readDots disambiguates Dot, Varargs ("..."), and any other dot run
// (which is always a lexing error per the language's token grammar).
func (l *Lexer) readDots(start int) Item {
	count := 1
	end := l.lastByte()
	l.advance()
	for l.current == '.' {
		count++
		end = l.lastByte()
		l.advance()
	}

	sp := span.New(start, end)
	switch count {
	case 1:
		return tokItem(New(Dot, "."), sp)
	case 3:
		return tokItem(New(Varargs, "..."), sp)
	default:
		return errItem(perror.NewLexingError("too many dots"), sp)
	}
}

// All drains the lexer into a slice of Items, useful for tests and the
// `tokens` CLI subcommand. It never stops early on an error item.
func (l *Lexer) All() []Item {
	items := make([]Item, 0)
	for {
		item, ok := l.Next()
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items
}
