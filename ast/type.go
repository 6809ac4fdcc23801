package ast

import (
	"fmt"

	"github.com/newton-lang/newton/types"
)

// TypeKind selects which alternative of the Type sum a value holds.
type TypeKind int

const (
	KindSimple TypeKind = iota
	KindPointer
	KindRef
	KindArray
	KindNullable
)

// Type is Newton's full type grammar: every types.Simple value, plus the
// composite forms built on top of a Simple base. It lives in package ast
// rather than package types because Array's size is an Expression, and
// Expression belongs to this package.
type Type struct {
	kind      TypeKind
	base      types.Simple
	depth     uint8
	arraySize *Expression // nil means a dynamically sized array, "[?]"
}

// NewSimple wraps a non-composite type.
func NewSimple(base types.Simple) Type {
	return Type{kind: KindSimple, base: base}
}

// NewPointer builds a Pointer{base, depth}. depth must be 1 or 2; any other
// value is a hard error at construction time, matching the source
// language's fixed indirection limit.
func NewPointer(base types.Simple, depth uint8) (Type, error) {
	if depth < 1 || depth > 2 {
		return Type{}, fmt.Errorf("pointer depth must be 1 or 2, got %d", depth)
	}
	return Type{kind: KindPointer, base: base, depth: depth}, nil
}

// NewRef builds a Ref{base, depth}, with the same depth restriction as
// NewPointer.
func NewRef(base types.Simple, depth uint8) (Type, error) {
	if depth < 1 || depth > 2 {
		return Type{}, fmt.Errorf("reference depth must be 1 or 2, got %d", depth)
	}
	return Type{kind: KindRef, base: base, depth: depth}, nil
}

// NewArray builds an Array{base, size}. A nil size denotes "[?]", a
// dynamically sized array; a non-nil size is a constant-foldable size
// expression evaluated during semantic analysis.
func NewArray(base types.Simple, size *Expression) Type {
	return Type{kind: KindArray, base: base, arraySize: size}
}

// NewNullable builds a Nullable{base}, surface syntax "?T".
func NewNullable(base types.Simple) Type {
	return Type{kind: KindNullable, base: base}
}

func (t Type) Kind() TypeKind { return t.kind }

// Base returns the Simple type every composite form wraps. For KindSimple
// it returns the type itself.
func (t Type) Base() types.Simple { return t.base }

// Depth returns the indirection depth for Pointer/Ref types; 0 otherwise.
func (t Type) Depth() uint8 { return t.depth }

// ArraySize returns the fixed-size expression for an Array type, or nil for
// a dynamically sized array or any non-Array type.
func (t Type) ArraySize() *Expression { return t.arraySize }

// Simple reports whether t is a non-composite type and returns it.
func (t Type) Simple() (types.Simple, bool) {
	if t.kind != KindSimple {
		return types.Simple{}, false
	}
	return t.base, true
}

func (t Type) IsPointer() bool { return t.kind == KindPointer }
func (t Type) IsRef() bool     { return t.kind == KindRef }
func (t Type) IsArray() bool   { return t.kind == KindArray }
func (t Type) IsNullable() bool { return t.kind == KindNullable }

func (t Type) IsInteger() bool {
	return t.kind == KindSimple && t.base.Kind() == types.KindInteger
}

func (t Type) IsFloat() bool {
	return t.kind == KindSimple && t.base.Kind() == types.KindFloat
}

func (t Type) IsCharacter() bool {
	return t.kind == KindSimple && t.base.Kind() == types.KindCharacter
}

func (t Type) IsNumerical() bool {
	return t.IsInteger() || t.IsFloat()
}

func (t Type) IsArithmetic() bool {
	return t.kind == KindSimple && t.base.Arithmetic()
}

// String renders the type using the source language's surface syntax,
// except that a fixed-size array renders its size as "..." ("[...]i32").
func (t Type) String() string {
	switch t.kind {
	case KindSimple:
		return t.base.String()
	case KindPointer:
		prefix := ""
		for range make([]struct{}, t.depth) {
			prefix += "*"
		}
		return prefix + t.base.String()
	case KindRef:
		prefix := ""
		for range make([]struct{}, t.depth) {
			prefix += "&"
		}
		return prefix + t.base.String()
	case KindArray:
		if t.arraySize == nil {
			return fmt.Sprintf("[?]%s", t.base.String())
		}
		return fmt.Sprintf("[...]%s", t.base.String())
	case KindNullable:
		return "?" + t.base.String()
	default:
		return "<invalid type>"
	}
}
