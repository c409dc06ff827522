package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Creator is a seller on a business's roster, addressed by handle.
type Creator struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	BusinessID  string `gorm:"type:uuid;index;not null"`
	UserID      string `gorm:"type:uuid;index"`
	Handle      string `gorm:"uniqueIndex;not null"`
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Creator) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CreatorSummary holds analytics recomputed by an external source of truth.
// It is fully overwritten on each summary update.
type CreatorSummary struct {
	CreatorID          string `gorm:"type:uuid;primaryKey"`
	TotalCalls         int64
	TotalMinutes       int64
	AvgDurationSeconds float64
	UniqueCallers      int64
	UpdatedAt          time.Time
}
