package models

import (
	"time"

	"creditcall/internal/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business is a seller-side organization. DebtCents is money the platform
// advanced to the business; it is mutated only by debt reconciliation during
// settlement and never goes negative.
type Business struct {
	ID              string      `gorm:"type:uuid;primaryKey"`
	Name            string      `gorm:"not null"`
	OwnerID         string      `gorm:"type:uuid;index"`
	StripeAccountID string      `gorm:"default:''"` // empty until payout onboarding completes
	DebtCents       money.Cents `gorm:"not null;default:0;check:debt_cents >= 0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Onboarded reports whether the business can receive payouts.
func (b *Business) Onboarded() bool {
	return b.StripeAccountID != ""
}
