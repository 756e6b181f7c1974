package persistence

import (
	"time"

	"github.com/helixml/xact/domain/timespan"
)

// LapModel is the GORM model for recorded laps. The span is stored as its
// raw tick count so no precision is lost.
type LapModel struct {
	ID        int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Label     string            `gorm:"column:label;index;not null"`
	Span      timespan.Timespan `gorm:"column:span_ticks;not null"`
	CreatedAt time.Time         `gorm:"column:created_at;index"`
}

// TableName returns the table name.
func (LapModel) TableName() string { return "laps" }
