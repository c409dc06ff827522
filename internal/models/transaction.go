package models

import "time"

// Transaction types
const (
	TransactionTypePurchase  = "purchase"
	TransactionTypeCallDebit = "call_debit"
)

// Transaction statuses
const (
	TransactionStatusCompleted = "completed"
)

// Transaction is an immutable audit record. Amount is signed: positive cents
// for purchases, negative seconds for call debits. Rows are append-only and
// never updated once inserted.
type Transaction struct {
	ID              uint   `gorm:"primarykey"`
	CreatorID       string `gorm:"type:uuid;index;not null"`
	Amount          int64  `gorm:"not null"`
	Type            string `gorm:"not null"`
	PhoneHash       string
	StripeSessionID string
	Status          string `gorm:"not null;default:'completed'"`
	CreatedAt       time.Time
}
