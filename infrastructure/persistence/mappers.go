package persistence

import (
	"github.com/helixml/xact/domain/lap"
)

// LapMapper maps between domain Lap and persistence LapModel.
type LapMapper struct{}

// ToDomain converts a LapModel to a domain Lap.
func (LapMapper) ToDomain(e LapModel) lap.Lap {
	return lap.Reconstruct(e.ID, e.Label, e.Span, e.CreatedAt.UTC())
}

// ToModel converts a domain Lap to a LapModel.
func (LapMapper) ToModel(l lap.Lap) LapModel {
	return LapModel{
		ID:        l.ID(),
		Label:     l.Label(),
		Span:      l.Span(),
		CreatedAt: l.CreatedAt(),
	}
}
