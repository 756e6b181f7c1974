package lap

import (
	"context"

	"github.com/helixml/xact/domain/repository"
	"github.com/helixml/xact/domain/timespan"
)

// Store defines persistence for laps.
type Store interface {
	repository.Store[Lap]
	SaveAll(ctx context.Context, laps []Lap) ([]Lap, error)
}

// WithLabel filters by the "label" column.
func WithLabel(label string) repository.Option {
	return repository.WithCondition("label", label)
}

// WithLabelLike filters labels matching a SQL LIKE pattern.
func WithLabelLike(pattern string) repository.Option {
	return repository.WithComparison("label", repository.OpLike, pattern)
}

// WithMinSpan keeps laps at least as long as span.
func WithMinSpan(span timespan.Timespan) repository.Option {
	return repository.WithComparison("span_ticks", repository.OpGreaterThanOrEqual, span.Ticks())
}

// WithMaxSpan keeps laps no longer than span.
func WithMaxSpan(span timespan.Timespan) repository.Option {
	return repository.WithComparison("span_ticks", repository.OpLessThanOrEqual, span.Ticks())
}

// WithNewestFirst orders laps by creation time, newest first.
func WithNewestFirst() repository.Option {
	return repository.WithOrderDesc("created_at")
}

// WithOldestFirst orders laps by creation time, oldest first.
func WithOldestFirst() repository.Option {
	return repository.WithOrderAsc("created_at")
}
