package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/helixml/xact/domain/lap"
	"github.com/helixml/xact/domain/repository"
	"github.com/helixml/xact/domain/timespan"
	"github.com/helixml/xact/infrastructure/codec"
)

// Archive is the exported form of a set of laps.
type Archive struct {
	Version int         `json:"version"`
	Laps    []LapRecord `json:"laps"`
}

// LapRecord is one exported lap. Ticks is authoritative; Span is the
// readable form and is only parsed when Ticks is zero.
type LapRecord struct {
	ID        int64     `json:"id"`
	Label     string    `json:"label"`
	Span      string    `json:"span"`
	Ticks     int64     `json:"ticks"`
	CreatedAt time.Time `json:"created_at"`
}

const archiveVersion = 1

// Export encodes the matching laps in the named format.
func (s *Laps) Export(ctx context.Context, format string, options ...repository.Option) ([]byte, error) {
	laps, err := s.List(ctx, options...)
	if err != nil {
		return nil, err
	}

	archive := Archive{Version: archiveVersion, Laps: make([]LapRecord, 0, len(laps))}
	for _, l := range laps {
		archive.Laps = append(archive.Laps, LapRecord{
			ID:        l.ID(),
			Label:     l.Label(),
			Span:      l.Span().String(),
			Ticks:     l.Span().Ticks(),
			CreatedAt: l.CreatedAt(),
		})
	}

	data, err := codec.Marshal(format, archive)
	if err != nil {
		return nil, fmt.Errorf("export laps: %w", err)
	}
	return data, nil
}

// Import decodes an archive in the named format and stores its laps as new
// laps. Either every lap is stored or none is.
func (s *Laps) Import(ctx context.Context, format string, data []byte) ([]lap.Lap, error) {
	var archive Archive
	if err := codec.Unmarshal(format, data, &archive); err != nil {
		return nil, fmt.Errorf("%w: import laps: %w", ErrValidation, err)
	}
	if archive.Version > archiveVersion {
		return nil, fmt.Errorf("%w: archive version %d is newer than %d", ErrValidation, archive.Version, archiveVersion)
	}

	laps := make([]lap.Lap, 0, len(archive.Laps))
	for i, r := range archive.Laps {
		if r.Label == "" {
			return nil, fmt.Errorf("%w: lap %d has no label", ErrValidation, i)
		}
		span := timespan.FromTicks(r.Ticks)
		if r.Ticks == 0 && r.Span != "" {
			parsed, err := timespan.Parse(r.Span)
			if err != nil {
				return nil, fmt.Errorf("%w: lap %d: %w", ErrValidation, i, err)
			}
			span = parsed
		}
		createdAt := r.CreatedAt.UTC()
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		laps = append(laps, lap.Reconstruct(0, r.Label, span, createdAt))
	}

	saved, err := s.store.SaveAll(ctx, laps)
	if err != nil {
		return nil, fmt.Errorf("import laps: %w", err)
	}
	s.logger.Info("laps imported", slog.String("format", format), slog.Int("count", len(saved)))
	return saved, nil
}
