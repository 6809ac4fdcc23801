package ast

import "github.com/newton-lang/newton/span"

// StatementKind is the closed sum of statement shapes a block can contain.
type StatementKind interface {
	stmtKind()
}

// Statement pairs a StatementKind with the span it occupies.
type Statement struct {
	Span span.Span
	Kind StatementKind
}

func NewStatement(sp span.Span, kind StatementKind) Statement {
	return Statement{Span: sp, Kind: kind}
}

// BlockStatement is a braced sequence of statements. It is itself a
// StatementKind so it can be nested as the Else arm of an IfStatement.
type BlockStatement struct {
	Statements []Statement
}

// VariableDeclaration is `let NAME [: Type] = value;`. Type is nil when the
// declaration omits an explicit annotation and relies on inference from
// Value during semantic analysis.
type VariableDeclaration struct {
	Name  string
	Type  *Type
	Value *Expression
}

// IfStatement is `if cond Then [else Else]`. Else is nil when absent, a
// *Statement holding a BlockStatement for a bare `else { ... }`, or a
// *Statement holding another IfStatement for `else if ...`.
type IfStatement struct {
	Condition *Expression
	Then      BlockStatement
	Else      *Statement
}

// WhileStatement is `while cond Body`.
type WhileStatement struct {
	Condition *Expression
	Body      BlockStatement
}

// ReturnStatement is `return [value];`. Value is nil for a bare return.
type ReturnStatement struct {
	Value *Expression
}

// DeleteStatement is `delete value;`.
type DeleteStatement struct {
	Value *Expression
}

// ExpressionStatement is `value;`, including the `Error(...)` sentinel
// inserted by statement-level recovery.
type ExpressionStatement struct {
	Value *Expression
}

func (BlockStatement) stmtKind()      {}
func (VariableDeclaration) stmtKind() {}
func (IfStatement) stmtKind()         {}
func (WhileStatement) stmtKind()      {}
func (ReturnStatement) stmtKind()     {}
func (DeleteStatement) stmtKind()     {}
func (ExpressionStatement) stmtKind() {}
