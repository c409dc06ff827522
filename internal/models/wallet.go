package models

import (
	"time"

	"creditcall/internal/money"
)

// Wallet is a creator's balance of usable call seconds plus cumulative
// revenue. All mutations are relative increments applied atomically at the
// storage layer; the summary recompute path is the only absolute overwrite.
type Wallet struct {
	ID                   uint          `gorm:"primarykey"`
	CreatorID            string        `gorm:"type:uuid;uniqueIndex;not null"`
	BalanceSeconds       money.Seconds `gorm:"not null;default:0"`
	LifetimeRevenueCents money.Cents   `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
