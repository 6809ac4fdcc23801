package ast

import (
	"github.com/newton-lang/newton/perror"
	"github.com/newton-lang/newton/span"
)

// TopLevelKind is the closed sum of items that can appear directly in a
// Program.
type TopLevelKind interface {
	topLevelKind()
}

// TopLevel pairs a TopLevelKind with the span it occupies.
type TopLevel struct {
	Span span.Span
	Kind TopLevelKind
}

func NewTopLevel(sp span.Span, kind TopLevelKind) TopLevel {
	return TopLevel{Span: sp, Kind: kind}
}

// Parameter is one `name: Type` entry in a function's parameter list. The
// trailing varargs marker is represented as a Parameter named "..." with
// Type VarArgs, matching the source grammar's own pseudo-parameter.
type Parameter struct {
	Name string
	Type Type
}

// ParameterList is a function's ordered parameters, plus whether the list
// ends in `...`.
type ParameterList struct {
	Parameters []Parameter
	Varargs    bool
}

// FunctionDeclaration is `[extern] fn NAME (...) => Type Body`. An extern
// declaration's Body is always an empty block; its surface syntax is a
// bare `;` rather than braces.
type FunctionDeclaration struct {
	Name       string
	Parameters ParameterList
	Body       BlockStatement
	ReturnType Type
	IsExternal bool
}

// Import is `import "name";`.
type Import struct {
	Name string
}

// TypeDeclarationItem wraps one of the TypeDeclaration alternatives as a
// top-level item.
type TypeDeclarationItem struct {
	Declaration TypeDeclaration
}

// ErrorItem is the sentinel inserted for a top-level construct the parser
// could not recognize.
type ErrorItem struct {
	Err perror.ParseError
}

func (FunctionDeclaration) topLevelKind() {}
func (Import) topLevelKind()              {}
func (TypeDeclarationItem) topLevelKind() {}
func (ErrorItem) topLevelKind()           {}

// TypeDeclaration is the closed sum of `type NAME ...` forms.
type TypeDeclaration interface {
	typeDeclarationKind()
}

// StructField is one `@name: Type` member of a struct definition.
type StructField struct {
	Name string
	Type Type
}

// StructDefinition is `type NAME struct [<Params>] { fields; methods }`.
type StructDefinition struct {
	Name          string
	GenericParams []string
	Fields        []StructField
	Methods       []FunctionDeclaration
}

// EnumDefinition is `type NAME enum [: Type] { Variant (Variant)* }`.
type EnumDefinition struct {
	Name        string
	Variants    []string
	BackingType Type
}

// TypeAlias is `type NAME <Params> = Type;`.
type TypeAlias struct {
	Name          string
	GenericParams []string
	Type          Type
}

func (StructDefinition) typeDeclarationKind() {}
func (EnumDefinition) typeDeclarationKind()   {}
func (TypeAlias) typeDeclarationKind()        {}

// Program is the ordered sequence of top-level items the parser produced.
// Some elements may be ErrorItem sentinels.
type Program struct {
	Items []TopLevel
}
