package persistence

import (
	"context"
	"fmt"

	"github.com/helixml/xact/domain/lap"
	"github.com/helixml/xact/internal/database"
	"gorm.io/gorm"
)

// LapStore implements lap.Store using GORM.
type LapStore struct {
	database.Repository[lap.Lap, LapModel]
}

var _ lap.Store = LapStore{}

// NewLapStore creates a new LapStore.
func NewLapStore(db database.Database) LapStore {
	return LapStore{
		Repository: database.NewRepository[lap.Lap, LapModel](db, LapMapper{}, "lap"),
	}
}

// Save creates or updates a lap.
func (s LapStore) Save(ctx context.Context, l lap.Lap) (lap.Lap, error) {
	model := s.Mapper().ToModel(l)

	var result *gorm.DB
	if model.ID == 0 {
		result = s.DB(ctx).Create(&model)
	} else {
		result = s.DB(ctx).Save(&model)
	}

	if result.Error != nil {
		return lap.Lap{}, fmt.Errorf("save lap: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// SaveAll saves laps in a single transaction. Either all of them are
// stored or none are.
func (s LapStore) SaveAll(ctx context.Context, laps []lap.Lap) ([]lap.Lap, error) {
	return database.WithTransactionResult(ctx, s.Database(), func(tx database.Database) ([]lap.Lap, error) {
		store := NewLapStore(tx)
		saved := make([]lap.Lap, 0, len(laps))
		for _, l := range laps {
			out, err := store.Save(ctx, l)
			if err != nil {
				return nil, err
			}
			saved = append(saved, out)
		}
		return saved, nil
	})
}

// Delete removes a lap.
func (s LapStore) Delete(ctx context.Context, l lap.Lap) error {
	model := s.Mapper().ToModel(l)
	if err := s.DB(ctx).Delete(&model).Error; err != nil {
		return fmt.Errorf("delete lap: %w", err)
	}
	return nil
}
