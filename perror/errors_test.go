package perror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_LexingError(t *testing.T) {
	err := NewLexingError("unterminated string literal")
	assert.Equal(t, KindLexing, err.Kind())
	assert.Equal(t, "failed to lex token; because unterminated string literal", err.Error())
}

func TestParseError_PrefixError(t *testing.T) {
	err := NewPrefixError(";")
	assert.Equal(t, KindPrefix, err.Kind())
	assert.Contains(t, err.Error(), "cannot begin an expression")
}

func TestParseError_InfixError(t *testing.T) {
	err := NewInfixError("let")
	assert.Equal(t, KindInfix, err.Kind())
	assert.Contains(t, err.Error(), "cannot continue an expression")
}

func TestParseError_ConsumeError(t *testing.T) {
	err := NewConsumeError(";", ")")
	assert.Equal(t, KindConsume, err.Kind())
	assert.Equal(t, ";", err.Actual())
	assert.Equal(t, ")", err.Expected())
	assert.Equal(t, "expected ')', but got ';' instead", err.Error())
}

func TestParseError_InternalError(t *testing.T) {
	err := NewInternalError("precedence table missing entry")
	assert.Equal(t, KindInternal, err.Kind())
	assert.Contains(t, err.Error(), "internal error")
}

func TestParseError_ImplementsError(t *testing.T) {
	var err error = NewInternalError("x")
	assert.Error(t, err)
}
