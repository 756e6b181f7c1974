package textbuilder

import (
	"fmt"
	"slices"
)

// Concat returns a new Builder holding b's fragments followed by other's.
// Each fragment keeps its plain or line tagging.
func (b *Builder) Concat(other *Builder) *Builder {
	c := b.Copy()
	return c.Extend(other)
}

// ConcatText returns a new Builder holding b's fragments followed by text as
// a plain fragment.
func (b *Builder) ConcatText(text string) *Builder {
	return b.Copy().Append(text)
}

// PrependText returns a new Builder holding text as a plain fragment
// followed by b's fragments.
func (b *Builder) PrependText(text string) *Builder {
	return (&Builder{}).Append(text).Extend(b)
}

// Extend appends other's fragments to b in place.
func (b *Builder) Extend(other *Builder) *Builder {
	if other == nil {
		return b
	}
	// Clone first so b.Extend(b) reads a stable snapshot.
	parts, flags := slices.Clone(other.parts), slices.Clone(other.flags)
	b.parts = append(b.parts, parts...)
	b.flags = append(b.flags, flags...)
	b.rebuildLines()
	return b
}

// ExtendText appends text to b in place as a plain fragment.
func (b *Builder) ExtendText(text string) *Builder {
	return b.Append(text)
}

// Combine concatenates two operands into a new Builder when at least one of
// them is a *Builder. The other may be a *Builder, a string or a
// fmt.Stringer. Any other combination fails with ErrInvalidArgument.
func Combine(left, right any) (*Builder, error) {
	if lb, ok := left.(*Builder); ok {
		if lb == nil {
			return nil, fmt.Errorf("%w: nil builder", ErrInvalidArgument)
		}
		switch r := right.(type) {
		case *Builder:
			return lb.Concat(r), nil
		case string:
			return lb.ConcatText(r), nil
		case fmt.Stringer:
			return lb.ConcatText(r.String()), nil
		}
		return nil, fmt.Errorf("%w: cannot combine builder with %T", ErrInvalidArgument, right)
	}

	rb, ok := right.(*Builder)
	if !ok || rb == nil {
		return nil, fmt.Errorf("%w: cannot combine %T with %T", ErrInvalidArgument, left, right)
	}
	switch l := left.(type) {
	case string:
		return rb.PrependText(l), nil
	case fmt.Stringer:
		return rb.PrependText(l.String()), nil
	}
	return nil, fmt.Errorf("%w: cannot combine %T with builder", ErrInvalidArgument, left)
}
