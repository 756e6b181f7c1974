// Package lap provides the Lap domain type: a labelled, recorded interval.
package lap

import (
	"time"

	"github.com/helixml/xact/domain/timespan"
)

// Lap is a labelled timespan recorded at a point in time.
// Immutable value object.
type Lap struct {
	id        int64
	label     string
	span      timespan.Timespan
	createdAt time.Time
}

// New creates a Lap that has not been persisted yet.
func New(label string, span timespan.Timespan) Lap {
	return Lap{
		label:     label,
		span:      span,
		createdAt: time.Now().UTC(),
	}
}

// Reconstruct recreates a Lap from persistence.
func Reconstruct(id int64, label string, span timespan.Timespan, createdAt time.Time) Lap {
	return Lap{
		id:        id,
		label:     label,
		span:      span,
		createdAt: createdAt,
	}
}

// ID returns the database identifier, 0 before the Lap is saved.
func (l Lap) ID() int64 { return l.id }

// Label returns the lap's label.
func (l Lap) Label() string { return l.label }

// Span returns the recorded interval.
func (l Lap) Span() timespan.Timespan { return l.span }

// CreatedAt returns when the lap was recorded.
func (l Lap) CreatedAt() time.Time { return l.createdAt }

// WithID returns a copy of l with the given ID.
func (l Lap) WithID(id int64) Lap {
	l.id = id
	return l
}
