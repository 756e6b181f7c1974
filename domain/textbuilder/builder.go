// Package textbuilder assembles text from fragments while remembering which
// fragments are whole lines.
//
// Every fragment is either plain or line terminated. The builder keeps three
// views in step with the fragment list: the raw concatenation, the fragments
// themselves, and the lines (each fragment without its trailing newline).
// Character operations such as Remove, Replace or Set work on the raw text and
// re-split it at line terminators afterwards, so fragment boundaries are not
// preserved across them.
//
// A Builder is not safe for concurrent use.
package textbuilder

import (
	"fmt"
	"hash/fnv"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// Builder is a mutable list of text fragments. The zero value is empty and
// ready to use.
type Builder struct {
	parts []string
	flags []bool
	lines []string
}

// New creates a Builder holding each value as a line.
func New(values ...any) *Builder {
	b := &Builder{}
	if len(values) > 0 {
		b.AppendLine(values...)
	}
	return b
}

// Append adds each value as a plain fragment.
func (b *Builder) Append(values ...any) *Builder {
	for _, v := range values {
		b.parts = append(b.parts, fmt.Sprint(v))
		b.flags = append(b.flags, false)
	}
	b.rebuildLines()
	return b
}

// AppendLine adds each value as a newline terminated fragment.
func (b *Builder) AppendLine(values ...any) *Builder {
	for _, v := range values {
		b.parts = append(b.parts, fmt.Sprint(v)+"\n")
		b.flags = append(b.flags, true)
	}
	b.rebuildLines()
	return b
}

// Insert splices plain fragments in before fragment index. Negative indices
// count from the end and out of range indices clamp to the ends.
func (b *Builder) Insert(index int, values ...any) *Builder {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return b.splice(index, parts, false)
}

// InsertLine is Insert for newline terminated fragments.
func (b *Builder) InsertLine(index int, values ...any) *Builder {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v) + "\n"
	}
	return b.splice(index, parts, true)
}

func (b *Builder) splice(index int, parts []string, line bool) *Builder {
	at := clamp(index, len(b.parts))
	flags := make([]bool, len(parts))
	for i := range flags {
		flags[i] = line
	}
	b.parts = slices.Insert(b.parts, at, parts...)
	b.flags = slices.Insert(b.flags, at, flags...)
	b.rebuildLines()
	return b
}

// Remove deletes length characters of the raw text starting at start.
func (b *Builder) Remove(start, length int) *Builder {
	raw := []rune(b.Raw())
	head := raw[:clamp(start, len(raw))]
	tail := raw[clamp(start+length, len(raw)):]
	b.resplit(string(head) + string(tail))
	return b
}

// Replace substitutes every occurrence of old in the raw text with repl.
func (b *Builder) Replace(old, repl any) *Builder {
	b.resplit(strings.ReplaceAll(b.Raw(), fmt.Sprint(old), fmt.Sprint(repl)))
	return b
}

// Clear removes all fragments.
func (b *Builder) Clear() *Builder {
	b.parts = b.parts[:0]
	b.flags = b.flags[:0]
	b.lines = b.lines[:0]
	return b
}

// Copy returns an independent Builder with the same fragments.
func (b *Builder) Copy() *Builder {
	c := &Builder{
		parts: slices.Clone(b.parts),
		flags: slices.Clone(b.flags),
	}
	c.rebuildLines()
	return c
}

// FlattenedCopy renders b with String and builds a new Builder from that
// text as a single line, re-split at its line terminators.
func (b *Builder) FlattenedCopy() *Builder {
	c := &Builder{}
	c.resplit(b.String() + "\n")
	return c
}

// Raw returns the concatenation of all fragments.
func (b *Builder) Raw() string {
	return strings.Join(b.parts, "")
}

// Parts returns a copy of the fragments as stored.
func (b *Builder) Parts() []string { return slices.Clone(b.parts) }

// Lines returns a copy of the fragments with one trailing newline removed.
func (b *Builder) Lines() []string { return slices.Clone(b.lines) }

// Flags reports, per fragment, whether it was stored as a line.
func (b *Builder) Flags() []bool { return slices.Clone(b.flags) }

// Len returns the number of characters in the raw text.
func (b *Builder) Len() int { return utf8.RuneCountInString(b.Raw()) }

// All iterates over the lines.
func (b *Builder) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range b.lines {
			if !yield(l) {
				return
			}
		}
	}
}

// String joins the lines with a single newline. Plain and line fragments
// render alike here, so the result does not always match Raw.
func (b *Builder) String() string {
	return strings.Join(b.lines, "\n")
}

// Equal reports whether both builders render the same String.
func (b *Builder) Equal(other *Builder) bool {
	if other == nil {
		return false
	}
	return b.String() == other.String()
}

// Hash returns a 64-bit FNV-1a hash of String.
func (b *Builder) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(b.String()))
	return h.Sum64()
}

func (b *Builder) rebuildLines() {
	b.lines = make([]string, len(b.parts))
	for i, p := range b.parts {
		b.lines[i] = strings.TrimSuffix(p, "\n")
	}
}

func (b *Builder) resplit(raw string) {
	b.parts = splitLines(raw)
	b.flags = make([]bool, len(b.parts))
	for i, p := range b.parts {
		b.flags[i] = strings.HasSuffix(p, "\n")
	}
	b.rebuildLines()
}
