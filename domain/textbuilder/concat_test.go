package textbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func (l label) String() string { return string(l) }

func TestConcat(t *testing.T) {
	a := New().Append("a")
	b := New("b")

	c := a.Concat(b)
	assert.Equal(t, []string{"a", "b\n"}, c.Parts())
	assert.Equal(t, []bool{false, true}, c.Flags())
	assert.Equal(t, []string{"a"}, a.Parts())
	assert.Equal(t, []string{"b\n"}, b.Parts())
}

func TestConcatText(t *testing.T) {
	a := New("x")

	assert.Equal(t, []string{"x\n", "y"}, a.ConcatText("y").Parts())
	assert.Equal(t, []string{"p", "x\n"}, a.PrependText("p").Parts())
	assert.Equal(t, []string{"x\n"}, a.Parts())
}

func TestExtend(t *testing.T) {
	a := New("x")
	a.Extend(New().Append("y"))
	a.ExtendText("z")

	assert.Equal(t, []string{"x\n", "y", "z"}, a.Parts())
	assert.Equal(t, []bool{true, false, false}, a.Flags())

	a.Extend(a)
	assert.Len(t, a.Parts(), 6)

	a.Extend(nil)
	assert.Len(t, a.Parts(), 6)
}

func TestCombine(t *testing.T) {
	b := New("b")

	tests := []struct {
		name        string
		left, right any
		parts       []string
	}{
		{"builders", New().Append("a"), b, []string{"a", "b\n"}},
		{"builder and string", b, "s", []string{"b\n", "s"}},
		{"string and builder", "s", b, []string{"s", "b\n"}},
		{"builder and stringer", b, label("l"), []string{"b\n", "l"}},
		{"stringer and builder", label("l"), b, []string{"l", "b\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Combine(tt.left, tt.right)
			require.NoError(t, err)
			assert.Equal(t, tt.parts, got.Parts())
		})
	}
	assert.Equal(t, []string{"b\n"}, b.Parts())
}

func TestCombine_Unsupported(t *testing.T) {
	tests := []struct {
		name        string
		left, right any
	}{
		{"int right", New("a"), 2},
		{"int left", 1, New("a")},
		{"no builder", "a", "b"},
		{"nil builder", (*Builder)(nil), "b"},
		{"nils", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Combine(tt.left, tt.right)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
