package ast

import (
	"bytes"
	"fmt"
)

const printIndentSize = 2

// Printer renders a Program as an indented debug tree, useful for golden
// tests and the parse CLI subcommand. It has no relation to the source
// language's own surface syntax; it exists purely for inspection.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

func (p *Printer) pad() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
}

func (p *Printer) line(format string, args ...any) {
	p.pad()
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

// PrintProgram renders every top-level item in prog and returns the result.
func PrintProgram(prog Program) string {
	p := &Printer{}
	for _, item := range prog.Items {
		p.printTopLevel(item)
	}
	return p.buf.String()
}

func (p *Printer) printTopLevel(item TopLevel) {
	switch k := item.Kind.(type) {
	case FunctionDeclaration:
		p.printFunctionDecl(k)
	case Import:
		p.line("Import %q", k.Name)
	case TypeDeclarationItem:
		p.printTypeDeclaration(k.Declaration)
	case ErrorItem:
		p.line("Error %s", k.Err.Error())
	default:
		p.line("<unknown top-level item>")
	}
}

func (p *Printer) printFunctionDecl(k FunctionDeclaration) {
	p.line("FunctionDeclaration %s (extern=%t) -> %s", k.Name, k.IsExternal, k.ReturnType.String())
	p.indent += printIndentSize
	for _, param := range k.Parameters.Parameters {
		p.line("param %s: %s", param.Name, param.Type.String())
	}
	p.printBlock(k.Body)
	p.indent -= printIndentSize
}

func (p *Printer) printTypeDeclaration(decl TypeDeclaration) {
	switch k := decl.(type) {
	case StructDefinition:
		p.line("StructDefinition %s%v", k.Name, k.GenericParams)
		p.indent += printIndentSize
		for _, f := range k.Fields {
			p.line("field @%s: %s", f.Name, f.Type.String())
		}
		for _, m := range k.Methods {
			p.printFunctionDecl(m)
		}
		p.indent -= printIndentSize
	case EnumDefinition:
		p.line("EnumDefinition %s: %s %v", k.Name, k.BackingType.String(), k.Variants)
	case TypeAlias:
		p.line("TypeAlias %s%v = %s", k.Name, k.GenericParams, k.Type.String())
	}
}

func (p *Printer) printBlock(block BlockStatement) {
	for _, stmt := range block.Statements {
		p.printStatement(stmt)
	}
}

func (p *Printer) printStatement(stmt Statement) {
	switch k := stmt.Kind.(type) {
	case BlockStatement:
		p.printBlock(k)
	case VariableDeclaration:
		p.line("VariableDeclaration %s = %s", k.Name, printExpr(k.Value))
	case IfStatement:
		p.line("If %s", printExpr(k.Condition))
		p.indent += printIndentSize
		p.printBlock(k.Then)
		p.indent -= printIndentSize
		if k.Else != nil {
			p.line("Else")
			p.indent += printIndentSize
			p.printStatement(*k.Else)
			p.indent -= printIndentSize
		}
	case WhileStatement:
		p.line("While %s", printExpr(k.Condition))
		p.indent += printIndentSize
		p.printBlock(k.Body)
		p.indent -= printIndentSize
	case ReturnStatement:
		if k.Value != nil {
			p.line("Return %s", printExpr(k.Value))
		} else {
			p.line("Return")
		}
	case DeleteStatement:
		p.line("Delete %s", printExpr(k.Value))
	case ExpressionStatement:
		p.line("%s", printExpr(k.Value))
	}
}

// printExpr renders an expression as a compact one-liner, recursing into
// every sub-expression except a struct initialiser's fields, which render
// as "{...}".
func printExpr(e *Expression) string {
	if e == nil {
		return "<nil>"
	}
	switch k := e.Kind.(type) {
	case ErrorExpr:
		return fmt.Sprintf("Error(%s)", k.Err.Error())
	case NullLiteral:
		return "null"
	case DecLiteral:
		return k.Text
	case FloatLiteral:
		return k.Text
	case StringLiteral:
		return fmt.Sprintf("%q", k.Text)
	case CharLiteral:
		return fmt.Sprintf("'%s'", k.Text)
	case Identifier:
		return k.Name
	case Reference:
		return "&" + printExpr(k.Inner)
	case Dereference:
		return "*" + printExpr(k.Inner)
	case Negate:
		return "-" + printExpr(k.Inner)
	case BoolNegate:
		return "!" + printExpr(k.Inner)
	case Binary:
		return fmt.Sprintf("(%s %s %s)", printExpr(k.Left), k.Op.Kind, printExpr(k.Right))
	case BoolBinary:
		return fmt.Sprintf("(%s %s %s)", printExpr(k.Left), k.Op.Kind, printExpr(k.Right))
	case Cast:
		return fmt.Sprintf("(%s as %s)", printExpr(k.Expr), k.Type.String())
	case NewExpr:
		return fmt.Sprintf("new %s", printExpr(k.Inner))
	case SizeOf:
		return fmt.Sprintf("sizeof(%s)", k.Type.String())
	case Assignment:
		return fmt.Sprintf("%s = %s", printExpr(k.Left), printExpr(k.Value))
	case Call:
		args := make([]string, len(k.Arguments))
		for i, a := range k.Arguments {
			args[i] = printExpr(a)
		}
		return fmt.Sprintf("%s.%s(%v)", k.Module, printExpr(k.Callee), args)
	case Access:
		return fmt.Sprintf("%s.%s", printExpr(k.Left), k.Identifier)
	case StructInitialization:
		return fmt.Sprintf("%s{...}", k.Identifier.String())
	default:
		return "<unknown expr>"
	}
}
