// Package source holds the immutable named source buffer that the lexer
// and parser borrow all of their text from.
package source

import "github.com/newton-lang/newton/span"

// Source is an immutable named UTF-8 buffer. Equal compares two Sources
// purely by Name, even when their Code differs. Source defines no hash of
// its own; as a Go map key, a Source value compares both Name and Code.
type Source struct {
	Name string
	Code string
}

// New builds a Source from a logical name (usually a file path) and its
// raw UTF-8 contents.
func New(name, code string) *Source {
	return &Source{Name: name, Code: code}
}

// Slice returns the substring of Code covered by sp, inclusive of both
// ends. Slicing a Span that runs past the end of Code clamps to the
// buffer's length rather than panicking.
func (s *Source) Slice(sp span.Span) string {
	end := sp.End + 1
	if end > len(s.Code) {
		end = len(s.Code)
	}
	start := sp.Start
	if start > end {
		start = end
	}
	return s.Code[start:end]
}

// Equal compares two sources by Name only.
func (s *Source) Equal(other *Source) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Name == other.Name
}
