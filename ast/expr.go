package ast

import (
	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/span"
	"github.com/newton-lang/newton/types"
)

// ExpressionKind is the closed sum of expression shapes the parser can
// produce. Its single unexported method keeps the set closed to this
// package, the same way the source grammar closes its AST node enums.
type ExpressionKind interface {
	exprKind()
}

// Expression is one node of the expression tree: a span, and which
// ExpressionKind it holds. The parser never fills in a type for a node;
// that is the job of a later pass, recorded externally in a TypeTable
// rather than on the node itself.
type Expression struct {
	Span span.Span
	Kind ExpressionKind
}

// New wraps kind with the span it occupied in the source.
func New(sp span.Span, kind ExpressionKind) *Expression {
	return &Expression{Span: sp, Kind: kind}
}

// IsError reports whether this node is an error sentinel produced during
// recovery.
func (e *Expression) IsError() bool {
	_, ok := e.Kind.(ErrorExpr)
	return ok
}

// IsLValue reports whether this expression can appear on the left of an
// assignment: only bare identifiers and field/member accesses can.
func (e *Expression) IsLValue() bool {
	switch e.Kind.(type) {
	case Identifier, Access:
		return true
	default:
		return false
	}
}

// IsRValue is the complement of IsLValue.
func (e *Expression) IsRValue() bool {
	return !e.IsLValue()
}

// SubExpressions returns this node's direct children, in source order. Used
// by callers that need to walk the tree without a type switch of their own.
func (e *Expression) SubExpressions() []*Expression {
	switch k := e.Kind.(type) {
	case Reference:
		return []*Expression{k.Inner}
	case Dereference:
		return []*Expression{k.Inner}
	case Negate:
		return []*Expression{k.Inner}
	case BoolNegate:
		return []*Expression{k.Inner}
	case Binary:
		return []*Expression{k.Left, k.Right}
	case BoolBinary:
		return []*Expression{k.Left, k.Right}
	case Cast:
		return []*Expression{k.Expr}
	case NewExpr:
		return []*Expression{k.Inner}
	case Assignment:
		return []*Expression{k.Left, k.Value}
	case Call:
		children := make([]*Expression, 0, len(k.Arguments)+1)
		children = append(children, k.Callee)
		children = append(children, k.Arguments...)
		return children
	case Access:
		return []*Expression{k.Left}
	case StructInitialization:
		children := make([]*Expression, 0, len(k.Fields))
		for _, f := range k.Fields {
			children = append(children, f.Value)
		}
		return children
	default:
		return nil
	}
}

// ErrorExpr is the sentinel left behind when an expression fails to parse.
type ErrorExpr struct{ Err perror.ParseError }

// NullLiteral is the `null` literal.
type NullLiteral struct{}

// DecLiteral is an integer literal, e.g. "123". Text borrows from Source.
type DecLiteral struct{ Text string }

// FloatLiteral is a floating-point literal, e.g. "3.14".
type FloatLiteral struct{ Text string }

// StringLiteral is the raw contents between the quotes of a "..." literal;
// escape sequences are not decoded.
type StringLiteral struct{ Text string }

// CharLiteral is the decoded contents of a '...' literal.
type CharLiteral struct{ Text string }

// Identifier is a bare name reference.
type Identifier struct{ Name string }

// Reference is `&inner`.
type Reference struct {
	Op    lexer.Token
	Inner *Expression
}

// Dereference is `*inner`.
type Dereference struct {
	Op    lexer.Token
	Inner *Expression
}

// Negate is unary `-inner`.
type Negate struct {
	Op    lexer.Token
	Inner *Expression
}

// BoolNegate is `!inner`.
type BoolNegate struct {
	Op    lexer.Token
	Inner *Expression
}

// Binary is an arithmetic operator application: +, -, *, /, %.
type Binary struct {
	Left  *Expression
	Op    lexer.Token
	Right *Expression
}

// BoolBinary is a comparison or logical operator application: ==, !=, <,
// <=, >, >=, &&, ||.
type BoolBinary struct {
	Left  *Expression
	Op    lexer.Token
	Right *Expression
}

// Cast is `expr as Type`.
type Cast struct {
	Expr *Expression
	As   lexer.Token
	Type Type
}

// NewExpr is `new expr`.
type NewExpr struct{ Inner *Expression }

// SizeOf is `sizeof Type`.
type SizeOf struct{ Type Type }

// Assignment is `left = value`. Assignment right-associates by reparsing
// value as a full expression rather than folding through the Pratt loop.
type Assignment struct {
	Left  *Expression
	Eq    lexer.Token
	Value *Expression
}

// Call is a function call, optionally module-qualified.
type Call struct {
	Module    string
	Callee    *Expression
	Arguments ArgumentList
}

// Access is `left.identifier`, a field or module member reference.
type Access struct {
	Left       *Expression
	Identifier string
}

// StructInitialization is `Identifier { field: value, ... }`.
type StructInitialization struct {
	Identifier types.UserIdentifier
	Fields     InitializerList
}

func (ErrorExpr) exprKind()            {}
func (NullLiteral) exprKind()          {}
func (DecLiteral) exprKind()           {}
func (FloatLiteral) exprKind()         {}
func (StringLiteral) exprKind()        {}
func (CharLiteral) exprKind()          {}
func (Identifier) exprKind()           {}
func (Reference) exprKind()            {}
func (Dereference) exprKind()          {}
func (Negate) exprKind()               {}
func (BoolNegate) exprKind()           {}
func (Binary) exprKind()               {}
func (BoolBinary) exprKind()           {}
func (Cast) exprKind()                 {}
func (NewExpr) exprKind()              {}
func (SizeOf) exprKind()               {}
func (Assignment) exprKind()           {}
func (Call) exprKind()                 {}
func (Access) exprKind()               {}
func (StructInitialization) exprKind() {}

// ArgumentList is the ordered list of a call's argument expressions.
type ArgumentList []*Expression

// InitializerField is one `name: value` pair inside a struct initialiser.
type InitializerField struct {
	Name  string
	Value *Expression
}

// InitializerList is the ordered field list of a struct initialiser.
type InitializerList []InitializerField
