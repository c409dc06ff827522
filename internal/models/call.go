package models

import (
	"time"

	"creditcall/internal/money"
)

// Call is an immutable record of a completed call. TwilioCallSID is unique so
// a replayed call-ended notification cannot be applied twice.
type Call struct {
	ID              uint        `gorm:"primarykey"`
	CreatorID       string      `gorm:"type:uuid;index;not null"`
	DurationSeconds int64       `gorm:"not null"`
	RevenueCents    money.Cents `gorm:"not null"`
	CallerHash      string
	TwilioCallSID   string `gorm:"uniqueIndex;not null"`
	CreatedAt       time.Time
}
