// Package sequence adds filter, map, search and sort helpers to an ordered
// slice.
//
// A Query owns a private copy of its items. Operations that produce a new
// sequence return a new Query and never modify the receiver.
package sequence

import (
	"cmp"
	"iter"
	"slices"
)

// Query is an immutable ordered sequence of T.
type Query[T any] struct {
	items []T
}

// From creates a Query over a copy of items.
func From[T any](items ...T) Query[T] {
	return Query[T]{items: slices.Clone(items)}
}

// FromSeq collects seq into a Query.
func FromSeq[T any](seq iter.Seq[T]) Query[T] {
	return Query[T]{items: slices.Collect(seq)}
}

// Range returns the integers start, start+1, ... up to but excluding stop.
// It is empty when stop <= start.
func Range(start, stop int) Query[int] {
	if stop <= start {
		return Query[int]{}
	}
	items := make([]int, 0, stop-start)
	for i := start; i < stop; i++ {
		items = append(items, i)
	}
	return Query[int]{items: items}
}

// Repeat returns a Query holding v n times. It is empty when n <= 0.
func Repeat[T any](v T, n int) Query[T] {
	if n <= 0 {
		return Query[T]{}
	}
	items := make([]T, n)
	for i := range items {
		items[i] = v
	}
	return Query[T]{items: items}
}

// Len returns the number of items.
func (q Query[T]) Len() int { return len(q.items) }

// At returns the item at index i. It panics when i is out of range, like a
// slice index.
func (q Query[T]) At(i int) T { return q.items[i] }

// Items returns a copy of the items.
func (q Query[T]) Items() []T { return slices.Clone(q.items) }

// All iterates over index, item pairs in order.
func (q Query[T]) All() iter.Seq2[int, T] { return slices.All(q.items) }

// Values iterates over the items in order.
func (q Query[T]) Values() iter.Seq[T] { return slices.Values(q.items) }

// Any reports whether an item satisfies pred. A nil pred asks whether the
// sequence is non-empty.
func (q Query[T]) Any(pred func(T) bool) bool {
	if pred == nil {
		return len(q.items) > 0
	}
	return slices.ContainsFunc(q.items, pred)
}

// Count returns the number of items satisfying pred, or Len for a nil pred.
func (q Query[T]) Count(pred func(T) bool) int {
	if pred == nil {
		return len(q.items)
	}
	n := 0
	for _, v := range q.items {
		if pred(v) {
			n++
		}
	}
	return n
}

// Where returns the items satisfying pred, in order.
func (q Query[T]) Where(pred func(T) bool) Query[T] {
	var out []T
	for _, v := range q.items {
		if pred(v) {
			out = append(out, v)
		}
	}
	return Query[T]{items: out}
}

// Find returns the first item satisfying pred.
func (q Query[T]) Find(pred func(T) bool) (T, bool) {
	if i := q.FindIndex(pred); i >= 0 {
		return q.items[i], true
	}
	var zero T
	return zero, false
}

// FindLast returns the last item satisfying pred.
func (q Query[T]) FindLast(pred func(T) bool) (T, bool) {
	if i := q.FindLastIndex(pred); i >= 0 {
		return q.items[i], true
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first item satisfying pred, or -1.
func (q Query[T]) FindIndex(pred func(T) bool) int {
	return slices.IndexFunc(q.items, pred)
}

// FindLastIndex returns the index of the last item satisfying pred, or -1.
// The index counts from the start of the sequence.
func (q Query[T]) FindLastIndex(pred func(T) bool) int {
	for i := len(q.items) - 1; i >= 0; i-- {
		if pred(q.items[i]) {
			return i
		}
	}
	return -1
}

// First returns the first item, or the first satisfying pred when pred is
// not nil. ok is false when there is none.
func (q Query[T]) First(pred func(T) bool) (v T, ok bool) {
	if pred == nil {
		if len(q.items) == 0 {
			return v, false
		}
		return q.items[0], true
	}
	return q.Find(pred)
}

// FirstOrDefault is First returning def when there is no match.
func (q Query[T]) FirstOrDefault(def T, pred func(T) bool) T {
	if v, ok := q.First(pred); ok {
		return v
	}
	return def
}

// Last returns the last item, or the last satisfying pred when pred is not
// nil. ok is false when there is none.
func (q Query[T]) Last(pred func(T) bool) (v T, ok bool) {
	if pred == nil {
		if len(q.items) == 0 {
			return v, false
		}
		return q.items[len(q.items)-1], true
	}
	return q.FindLast(pred)
}

// LastOrDefault is Last returning def when there is no match.
func (q Query[T]) LastOrDefault(def T, pred func(T) bool) T {
	if v, ok := q.Last(pred); ok {
		return v
	}
	return def
}

// Select maps every item of q through fn.
func Select[T, R any](q Query[T], fn func(T) R) Query[R] {
	out := make([]R, len(q.items))
	for i, v := range q.items {
		out[i] = fn(v)
	}
	return Query[R]{items: out}
}

// OrderBy sorts q ascending by key. Items with equal keys keep their order.
func OrderBy[T any, K cmp.Ordered](q Query[T], key func(T) K) Query[T] {
	out := slices.Clone(q.items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return Query[T]{items: out}
}

// OrderByDescending sorts q descending by key. Items with equal keys keep
// their order.
func OrderByDescending[T any, K cmp.Ordered](q Query[T], key func(T) K) Query[T] {
	out := slices.Clone(q.items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
	return Query[T]{items: out}
}

// OrderByFunc sorts q stably with an explicit comparison, for keys that are
// not cmp.Ordered.
func OrderByFunc[T any](q Query[T], compare func(a, b T) int) Query[T] {
	out := slices.Clone(q.items)
	slices.SortStableFunc(out, compare)
	return Query[T]{items: out}
}
