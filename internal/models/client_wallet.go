package models

import (
	"time"

	"creditcall/internal/money"
)

// ClientWallet is a buyer-side prepaid credit row. Each successful top-up
// inserts a new row; a buyer's usable credit is the sum across rows for the
// same phone hash and business.
type ClientWallet struct {
	ID                 uint        `gorm:"primarykey"`
	PhoneHash          string      `gorm:"index:idx_client_wallet_buyer;not null"`
	BusinessID         string      `gorm:"type:uuid;index:idx_client_wallet_buyer;not null"`
	CreditBalanceCents money.Cents `gorm:"not null"`
	CreatedAt          time.Time
}
