// Package span defines the byte-offset source locations attached to every
// token and AST node produced by the lexer and parser.
package span

import "fmt"

// Span is an inclusive byte-offset interval into a Source's code buffer.
// Both Start and End must land on a UTF-8 code-point boundary, so that
// slicing a Span out of the source always yields valid UTF-8.
type Span struct {
	Start int
	End   int
}

// New builds a Span covering [start, end].
func New(start, end int) Span {
	return Span{Start: start, End: end}
}

// String renders the span as "start..end", used in test failure output.
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Widen extends the span by n bytes on each side. Used by the parser when a
// parenthesized expression's span needs to grow to cover its delimiters.
func (s Span) Widen(n int) Span {
	return Span{Start: s.Start - n, End: s.End + n}
}

// To returns a new Span starting at s.Start and ending at other.End, used to
// combine the spans of a left and right sub-expression into their parent's.
func (s Span) To(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// Spanned pairs a node value with the Span it occupies in the source.
// Equality is structural: same Node and same Span. Spanned carries no
// hash method of its own in Go — callers that need a map key should key on
// Node alone, mirroring the source language's "hash uses only the inner
// node" rule.
type Spanned[T any] struct {
	Span Span
	Node T
}

// NewSpanned builds a Spanned value from explicit start/end offsets.
func NewSpanned[T any](start, end int, node T) Spanned[T] {
	return Spanned[T]{Span: Span{Start: start, End: end}, Node: node}
}

// NewSpannedFrom builds a Spanned value from an existing Span.
func NewSpannedFrom[T any](sp Span, node T) Spanned[T] {
	return Spanned[T]{Span: sp, Node: node}
}
