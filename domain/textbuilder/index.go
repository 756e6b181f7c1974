package textbuilder

import (
	"fmt"
	"unicode/utf8"
)

// index resolves an end-relative character index against n characters.
func index(i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, n)
	}
	return i, nil
}

// At returns the character at index i of the raw text. Negative indices
// count from the end.
func (b *Builder) At(i int) (string, error) {
	raw := []rune(b.Raw())
	k, err := index(i, len(raw))
	if err != nil {
		return "", err
	}
	return string(raw[k]), nil
}

// Slice returns raw characters [start, end). Negative bounds count from the
// end and out of range bounds clamp, so Slice never fails.
func (b *Builder) Slice(start, end int) string {
	raw := []rune(b.Raw())
	s, e := clamp(start, len(raw)), clamp(end, len(raw))
	if s >= e {
		return ""
	}
	return string(raw[s:e])
}

// Set replaces the character at index i with v, which must be exactly one
// character.
func (b *Builder) Set(i int, v string) error {
	if utf8.RuneCountInString(v) != 1 {
		return fmt.Errorf("%w: want one character, got %q", ErrInvalidArgument, v)
	}
	raw := []rune(b.Raw())
	k, err := index(i, len(raw))
	if err != nil {
		return err
	}
	b.resplit(string(raw[:k]) + v + string(raw[k+1:]))
	return nil
}

// Delete removes the character at index i.
func (b *Builder) Delete(i int) error {
	raw := []rune(b.Raw())
	k, err := index(i, len(raw))
	if err != nil {
		return err
	}
	b.resplit(string(raw[:k]) + string(raw[k+1:]))
	return nil
}

// DeleteRange removes raw characters [start, stop) with the same bounds
// handling as Slice.
func (b *Builder) DeleteRange(start, stop int) *Builder {
	raw := []rune(b.Raw())
	s, e := clamp(start, len(raw)), clamp(stop, len(raw))
	if s >= e {
		return b
	}
	b.resplit(string(raw[:s]) + string(raw[e:]))
	return b
}

// DeleteStep removes the characters at positions start, start+step, ...
// up to but excluding stop. Positions are taken literally: a negative
// position names no character. A step of 1 is DeleteRange.
func (b *Builder) DeleteStep(start, stop, step int) error {
	switch {
	case step == 0:
		return fmt.Errorf("%w: step must not be zero", ErrInvalidArgument)
	case step == 1:
		b.DeleteRange(start, stop)
		return nil
	}

	drop := make(map[int]struct{})
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		drop[i] = struct{}{}
	}

	kept := make([]rune, 0, len(b.Raw()))
	for i, r := range []rune(b.Raw()) {
		if _, ok := drop[i]; !ok {
			kept = append(kept, r)
		}
	}
	b.resplit(string(kept))
	return nil
}
