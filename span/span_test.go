package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan_Widen(t *testing.T) {
	s := New(5, 10)
	widened := s.Widen(1)
	assert.Equal(t, New(4, 11), widened)
}

func TestSpan_To(t *testing.T) {
	left := New(0, 3)
	right := New(10, 15)
	assert.Equal(t, New(0, 15), left.To(right))
}

func TestSpanned_EqualityIsStructural(t *testing.T) {
	a := NewSpanned(0, 3, "abc")
	b := NewSpanned(0, 3, "abc")
	c := NewSpanned(0, 4, "abc")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSpan_String(t *testing.T) {
	assert.Equal(t, "3..7", New(3, 7).String())
}
