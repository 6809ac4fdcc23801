package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newton-lang/newton/lexer"
	"github.com/newton-lang/newton/span"
	"github.com/newton-lang/newton/types"
)

func ident(name string) *Expression {
	return New(span.New(0, len(name)-1), Identifier{Name: name})
}

func TestExpression_IsLValue(t *testing.T) {
	assert.True(t, ident("a").IsLValue())

	access := New(span.New(0, 2), Access{Left: ident("a"), Identifier: "b"})
	assert.True(t, access.IsLValue())

	lit := New(span.New(0, 0), DecLiteral{Text: "1"})
	assert.False(t, lit.IsLValue())
	assert.True(t, lit.IsRValue())
}

func TestExpression_SubExpressions(t *testing.T) {
	left := ident("a")
	right := ident("b")
	bin := New(span.New(0, 0), Binary{Left: left, Op: lexer.New(lexer.Plus, "+"), Right: right})

	assert.Equal(t, []*Expression{left, right}, bin.SubExpressions())
}

func TestExpression_IsError(t *testing.T) {
	errExpr := New(span.New(0, 0), ErrorExpr{})
	assert.True(t, errExpr.IsError())
	assert.False(t, ident("x").IsError())
}

func TestWalk_VisitsAllSubExpressions(t *testing.T) {
	a, b, c := ident("a"), ident("b"), ident("c")
	inner := New(span.New(0, 0), Binary{Left: a, Op: lexer.New(lexer.Plus, "+"), Right: b})
	outer := New(span.New(0, 0), Binary{Left: inner, Op: lexer.New(lexer.Star, "*"), Right: c})

	var visited []*Expression
	Walk(outer, func(e *Expression) bool {
		visited = append(visited, e)
		return true
	})

	assert.Equal(t, []*Expression{outer, inner, a, b, c}, visited)
}

func TestTypeTable_SetAndGet(t *testing.T) {
	table := NewTypeTable()
	a := ident("a")

	_, ok := table.Get(a)
	assert.False(t, ok)

	table.Set(a, NewSimple(types.String()))
	got, ok := a.Ty(table)
	assert.True(t, ok)
	assert.Equal(t, NewSimple(types.String()), got)
}

func TestPrintProgram_SmokeTest(t *testing.T) {
	prog := Program{Items: []TopLevel{
		NewTopLevel(span.New(0, 0), Import{Name: "std"}),
	}}
	out := PrintProgram(prog)
	assert.Contains(t, out, "Import \"std\"")
}
