package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/helixml/xact/domain/lap"
	"github.com/helixml/xact/domain/repository"
	"github.com/helixml/xact/domain/sequence"
	"github.com/helixml/xact/domain/textbuilder"
	"github.com/helixml/xact/domain/timespan"
)

// Laps records, queries and reports labelled timespans.
type Laps struct {
	store  lap.Store
	layout string
	logger *slog.Logger
}

// NewLaps creates a new Laps service. layout is used by Report when the
// caller does not pass one.
func NewLaps(store lap.Store, layout string, logger *slog.Logger) *Laps {
	if layout == "" {
		layout = timespan.LayoutConstant
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Laps{store: store, layout: layout, logger: logger}
}

// Layout returns the default report layout.
func (s *Laps) Layout() string { return s.layout }

// Record parses text and stores it under label.
func (s *Laps) Record(ctx context.Context, label, text string) (lap.Lap, error) {
	span, err := timespan.Parse(text)
	if err != nil {
		return lap.Lap{}, fmt.Errorf("%w: span: %w", ErrValidation, err)
	}
	return s.RecordSpan(ctx, label, span)
}

// RecordSpan stores span under label.
func (s *Laps) RecordSpan(ctx context.Context, label string, span timespan.Timespan) (lap.Lap, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return lap.Lap{}, fmt.Errorf("%w: label is required", ErrValidation)
	}

	saved, err := s.store.Save(ctx, lap.New(label, span))
	if err != nil {
		return lap.Lap{}, fmt.Errorf("record lap: %w", err)
	}

	s.logger.Info("lap recorded", slog.Int64("id", saved.ID()), slog.String("label", label), slog.String("span", span.String()))
	return saved, nil
}

// Get returns the lap with id.
func (s *Laps) Get(ctx context.Context, id int64) (lap.Lap, error) {
	l, err := s.store.FindOne(ctx, repository.WithID(id))
	if err != nil {
		return lap.Lap{}, fmt.Errorf("get lap %d: %w", id, err)
	}
	return l, nil
}

// List returns laps matching options, oldest first unless an order is given.
func (s *Laps) List(ctx context.Context, options ...repository.Option) ([]lap.Lap, error) {
	if len(repository.Build(options...).Orders()) == 0 {
		options = append(options, lap.WithOldestFirst(), repository.WithOrderAsc("id"))
	}
	laps, err := s.store.Find(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("list laps: %w", err)
	}
	return laps, nil
}

// Count returns the number of laps matching options. Limit and offset are
// ignored.
func (s *Laps) Count(ctx context.Context, options ...repository.Option) (int64, error) {
	n, err := s.store.Count(ctx, options...)
	if err != nil {
		return 0, fmt.Errorf("count laps: %w", err)
	}
	return n, nil
}

// Delete removes the lap with id.
func (s *Laps) Delete(ctx context.Context, id int64) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, l); err != nil {
		return fmt.Errorf("delete lap %d: %w", id, err)
	}
	s.logger.Info("lap deleted", slog.Int64("id", id))
	return nil
}

// Total sums the spans of the matching laps. The sum fails with
// timespan.ErrOverflow rather than wrapping.
func (s *Laps) Total(ctx context.Context, options ...repository.Option) (timespan.Timespan, error) {
	laps, err := s.List(ctx, options...)
	if err != nil {
		return timespan.Zero, err
	}
	return total(laps)
}

func total(laps []lap.Lap) (timespan.Timespan, error) {
	sum := timespan.Zero
	for _, l := range laps {
		next, err := sum.Add(l.Span())
		if err != nil {
			return timespan.Zero, fmt.Errorf("total laps: %w", err)
		}
		sum = next
	}
	return sum, nil
}

// Longest returns the matching lap with the greatest span. Ties go to the
// lap listed first. ok is false when nothing matches.
func (s *Laps) Longest(ctx context.Context, options ...repository.Option) (l lap.Lap, ok bool, err error) {
	laps, err := s.List(ctx, options...)
	if err != nil {
		return lap.Lap{}, false, err
	}
	l, ok = sequence.OrderByDescending(sequence.From(laps...), spanTicks).First(nil)
	return l, ok, nil
}

func spanTicks(l lap.Lap) int64 { return l.Span().Ticks() }

// Report renders the matching laps as a text table, one lap per line,
// followed by the total. An empty layout uses the service default.
func (s *Laps) Report(ctx context.Context, layout string, options ...repository.Option) (string, error) {
	if layout == "" {
		layout = s.layout
	}
	laps, err := s.List(ctx, options...)
	if err != nil {
		return "", err
	}

	sum, err := total(laps)
	if err != nil {
		return "", err
	}

	rows := sequence.From(laps...)
	width := len("total")
	for l := range rows.Values() {
		width = max(width, len(l.Label()))
	}

	b := textbuilder.New(fmt.Sprintf("%d laps", rows.Len()))
	for l := range rows.Values() {
		b.AppendLine(fmt.Sprintf("%4d  %-*s  %s", l.ID(), width, l.Label(), l.Span().Format(layout)))
	}
	if rows.Len() > 0 {
		b.AppendLine(fmt.Sprintf("%4s  %-*s  %s", "", width, "total", sum.Format(layout)))
	}
	return b.String(), nil
}

// IsValidation reports whether err was caused by invalid input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
