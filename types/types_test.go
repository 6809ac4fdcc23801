package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimple_String(t *testing.T) {
	assert.Equal(t, "string", String().String())
	assert.Equal(t, "bool", Bool().String())
	assert.Equal(t, "void", Void().String())
	assert.Equal(t, "char", Character().String())
	assert.Equal(t, "i32", NewInteger(32, true).String())
	assert.Equal(t, "u8", NewInteger(8, false).String())
	assert.Equal(t, "f64", NewFloat(64).String())
	assert.Equal(t, "mymod.Point", NewUserDefined(UserIdentifier{Module: "mymod", Name: "Point"}).String())
}

func TestSimple_Arithmetic(t *testing.T) {
	assert.True(t, NewInteger(32, true).Arithmetic())
	assert.True(t, NewFloat(64).Arithmetic())
	assert.True(t, Character().Arithmetic())
	assert.False(t, String().Arithmetic())
	assert.False(t, Bool().Arithmetic())
	assert.False(t, Void().Arithmetic())
}

func TestSimple_Equal(t *testing.T) {
	assert.True(t, NewInteger(32, true).Equal(NewInteger(32, true)))
	assert.False(t, NewInteger(32, true).Equal(NewInteger(32, false)))
	assert.False(t, NewInteger(32, true).Equal(NewInteger(64, true)))
	assert.True(t, NewFloat(32).Equal(NewFloat(32)))
	assert.False(t, NewFloat(32).Equal(NewFloat(64)))

	a := NewUserDefined(UserIdentifier{Module: "m", Name: "T"})
	b := NewUserDefined(UserIdentifier{Module: "m", Name: "T"})
	c := NewUserDefined(UserIdentifier{Module: "m", Name: "U"})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	assert.True(t, Bool().Equal(Bool()))
	assert.False(t, Bool().Equal(Void()))
}
