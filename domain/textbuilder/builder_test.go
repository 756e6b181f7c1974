package textbuilder

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New("!string!", "?builder?")

	assert.Equal(t, []string{"!string!\n", "?builder?\n"}, b.Parts())
	assert.Equal(t, []bool{true, true}, b.Flags())
	assert.Equal(t, []string{"!string!", "?builder?"}, b.Lines())

	var zero Builder
	assert.Equal(t, "", zero.Raw())
	assert.Equal(t, 0, zero.Len())
}

func TestAppend(t *testing.T) {
	assert.Equal(t, "ab", New().Append("a", "b").Raw())
	assert.Equal(t, "a\n", New().AppendLine("a").Raw())
	assert.Equal(t, "12.5true", New().Append(1, 2.5, true).Raw())

	b := New().Append("a").AppendLine("b")
	assert.Equal(t, []bool{false, true}, b.Flags())
	assert.Equal(t, []string{"a", "b"}, b.Lines())
}

func TestInsert(t *testing.T) {
	b := New("a")
	b.InsertLine(0, "x")
	assert.Equal(t, []string{"x\n", "a\n"}, b.Parts())

	b = New().Append("a", "b", "c")
	b.Insert(-1, "X")
	assert.Equal(t, []string{"a", "b", "X", "c"}, b.Parts())

	b.Insert(100, "Z")
	assert.Equal(t, "Z", b.Parts()[4])

	b.Insert(-100, "Y")
	assert.Equal(t, "Y", b.Parts()[0])
	assert.Len(t, b.Flags(), 6)
}

func TestInsert_Sequence(t *testing.T) {
	b := New("!string!", "?builder?")
	b.AppendLine("Hello")
	b.Append("World")
	b.Insert(-1, "INSERT")
	b.InsertLine(3, "INSERT_LINE")

	assert.Equal(t, []string{"!string!\n", "?builder?\n", "Hello\n", "INSERT_LINE\n", "INSERT", "World"}, b.Parts())
	assert.Equal(t, []string{"!string!", "?builder?", "Hello", "INSERT_LINE", "INSERT", "World"}, b.Lines())
	assert.Equal(t, []bool{true, true, true, true, false, false}, b.Flags())
}

func TestRemove(t *testing.T) {
	b := New().Append("hello world")
	b.Remove(5, 6)
	assert.Equal(t, []string{"hello"}, b.Parts())
	assert.Equal(t, []bool{false}, b.Flags())

	// Removal re-splits the raw text; original boundaries are gone.
	b = New("ab", "cd")
	b.Remove(1, 3)
	assert.Equal(t, []string{"ad\n"}, b.Parts())
	assert.Equal(t, []bool{true}, b.Flags())
}

func TestReplace(t *testing.T) {
	b := New("ab", "cb")
	b.Replace("b", "X")
	assert.Equal(t, []string{"aX\n", "cX\n"}, b.Parts())
	assert.Equal(t, []bool{true, true}, b.Flags())

	b.Replace("\n", "")
	assert.Equal(t, []string{"aXcX"}, b.Parts())
	assert.Equal(t, []bool{false}, b.Flags())

	b = New().Append("e-e")
	b.Replace("e", "è")
	assert.Equal(t, "è-è", b.Raw())
}

func TestResplitTerminators(t *testing.T) {
	b := New().Append("a\r\nb\rc\u2028d\ve\x1cf")
	b.Remove(0, 0)

	assert.Equal(t, []string{"a\r\n", "b\r", "c\u2028", "d\v", "e\x1c", "f"}, b.Parts())
	assert.Equal(t, []bool{true, false, false, false, false, false}, b.Flags())
	assert.Equal(t, []string{"a\r", "b\r", "c\u2028", "d\v", "e\x1c", "f"}, b.Lines())
}

func TestClearAndCopy(t *testing.T) {
	b := New("a", "b")
	c := b.Copy()
	c.Append("x")

	assert.Equal(t, []string{"a\n", "b\n"}, b.Parts())
	assert.Equal(t, []string{"a\n", "b\n", "x"}, c.Parts())

	b.Clear()
	assert.Empty(t, b.Parts())
	assert.Empty(t, b.Lines())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "a\nb\nx", c.Raw())
}

func TestFlattenedCopy(t *testing.T) {
	b := New().Append("a").AppendLine("b")
	f := b.FlattenedCopy()

	assert.Equal(t, []string{"a\n", "b\n"}, f.Parts())
	assert.Equal(t, []bool{true, true}, f.Flags())
	assert.Equal(t, "ab\n", b.Raw())
}

func TestString_JoinsLines(t *testing.T) {
	b := New().Append("hello")
	b.Append(", ", "world").AppendLine("!")
	b.Insert(0, ">>> ")

	assert.Equal(t, ">>> hello, world!\n", b.Raw())
	assert.Equal(t, ">>> \nhello\n, \nworld\n!", b.String())
}

func TestString_IsLossy(t *testing.T) {
	plain := New().Append("a")
	line := New().AppendLine("a")

	// Plain and line fragments render the same String but different Raw.
	assert.Equal(t, plain.String(), line.String())
	assert.NotEqual(t, plain.Raw(), line.Raw())
	assert.True(t, plain.Equal(line))
	assert.Equal(t, plain.Hash(), line.Hash())
}

func TestEqual(t *testing.T) {
	assert.True(t, New("a", "b").Equal(New("a", "b")))
	assert.False(t, New("a").Equal(New("b")))
	assert.False(t, New("a").Equal(nil))
	assert.NotEqual(t, New("a").Hash(), New("b").Hash())
}

func TestLenAndAll(t *testing.T) {
	b := New("héllo").Append("!")

	assert.Equal(t, 7, b.Len())
	assert.Equal(t, []string{"héllo", "!"}, slices.Collect(b.All()))

	var first []string
	for l := range b.All() {
		first = append(first, l)
		break
	}
	assert.Equal(t, []string{"héllo"}, first)
}

func TestAt(t *testing.T) {
	b := New().Append("héllo")

	tests := []struct {
		index int
		want  string
	}{
		{0, "h"},
		{1, "é"},
		{-1, "o"},
		{-5, "h"},
	}
	for _, tt := range tests {
		got, err := b.At(tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := b.At(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = b.At(-6)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSlice(t *testing.T) {
	b := New().Append("héllo")

	assert.Equal(t, "él", b.Slice(1, 3))
	assert.Equal(t, "llo", b.Slice(-3, 100))
	assert.Equal(t, "héllo", b.Slice(-100, 100))
	assert.Equal(t, "", b.Slice(3, 1))
}

func TestSet(t *testing.T) {
	b := New().Append("héllo")
	require.NoError(t, b.Set(0, "J"))
	assert.Equal(t, "Jéllo", b.Raw())

	require.NoError(t, b.Set(-1, "ö"))
	assert.Equal(t, "Jéllö", b.Raw())

	assert.ErrorIs(t, b.Set(0, "ab"), ErrInvalidArgument)
	assert.ErrorIs(t, b.Set(0, ""), ErrInvalidArgument)
	assert.ErrorIs(t, b.Set(9, "x"), ErrIndexOutOfRange)
	assert.Equal(t, "Jéllö", b.Raw())
}

func TestSet_NewlineSplitsFragment(t *testing.T) {
	b := New().Append("a b")
	require.NoError(t, b.Set(1, "\n"))

	assert.Equal(t, []string{"a\n", "b"}, b.Parts())
	assert.Equal(t, []bool{true, false}, b.Flags())
}

func TestDelete(t *testing.T) {
	b := New().Append("hello")
	require.NoError(t, b.Delete(-1))
	assert.Equal(t, "hell", b.Raw())

	require.NoError(t, b.Delete(0))
	assert.Equal(t, "ell", b.Raw())

	assert.ErrorIs(t, b.Delete(3), ErrIndexOutOfRange)
}

func TestDeleteRange(t *testing.T) {
	b := New().Append("hello")
	b.DeleteRange(1, 3)
	assert.Equal(t, "hlo", b.Raw())

	b.DeleteRange(3, 1)
	assert.Equal(t, "hlo", b.Raw())

	b.DeleteRange(-2, 100)
	assert.Equal(t, "h", b.Raw())
}

func TestDeleteStep(t *testing.T) {
	tests := []struct {
		name              string
		start, stop, step int
		want              string
	}{
		{"every other", 0, 5, 2, "el"},
		{"backwards", 4, 0, -2, "hel"},
		{"negative positions match nothing", -3, 5, 2, "hlo"},
		{"unit step", 1, 3, 1, "hlo"},
		{"empty range", 3, 1, 2, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New().Append("hello")
			require.NoError(t, b.DeleteStep(tt.start, tt.stop, tt.step))
			assert.Equal(t, tt.want, b.Raw())
		})
	}

	assert.ErrorIs(t, New().Append("hello").DeleteStep(0, 5, 0), ErrInvalidArgument)
}
