package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/newton-lang/newton/span"
	"github.com/newton-lang/newton/types"
)

func TestType_SimplePredicates(t *testing.T) {
	i32 := NewSimple(types.NewInteger(32, true))
	assert.True(t, i32.IsInteger())
	assert.True(t, i32.IsNumerical())
	assert.True(t, i32.IsArithmetic())
	assert.False(t, i32.IsFloat())
	assert.False(t, i32.IsPointer())

	f64 := NewSimple(types.NewFloat(64))
	assert.True(t, f64.IsFloat())
	assert.True(t, f64.IsNumerical())

	str := NewSimple(types.String())
	assert.False(t, str.IsArithmetic())
}

func TestType_PointerDepthLimit(t *testing.T) {
	_, err := NewPointer(types.NewInteger(32, true), 1)
	assert.NoError(t, err)

	_, err = NewPointer(types.NewInteger(32, true), 2)
	assert.NoError(t, err)

	_, err = NewPointer(types.NewInteger(32, true), 3)
	assert.Error(t, err)

	_, err = NewPointer(types.NewInteger(32, true), 0)
	assert.Error(t, err)
}

func TestType_RefDepthLimit(t *testing.T) {
	_, err := NewRef(types.Bool(), 2)
	assert.NoError(t, err)

	_, err = NewRef(types.Bool(), 3)
	assert.Error(t, err)
}

func TestType_ArrayDynamicVsFixed(t *testing.T) {
	dynamic := NewArray(types.NewInteger(32, true), nil)
	assert.True(t, dynamic.IsArray())
	assert.Nil(t, dynamic.ArraySize())

	size := New(span.New(0, 0), DecLiteral{Text: "4"})
	fixed := NewArray(types.NewInteger(32, true), size)
	assert.Equal(t, size, fixed.ArraySize())
}

func TestType_Nullable(t *testing.T) {
	n := NewNullable(types.String())
	assert.True(t, n.IsNullable())
	assert.Equal(t, "?string", n.String())
}
