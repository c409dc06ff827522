package models

import "time"

// WebhookEvent is the idempotency marker for an external payment event.
// A row exists only after every other mutation for the event succeeded; the
// unique index on EventID is what serializes concurrent redeliveries.
type WebhookEvent struct {
	ID                uint   `gorm:"primarykey"`
	EventID           string `gorm:"uniqueIndex;not null"`
	Source            string `gorm:"not null"`
	PayloadSnippet    string
	ProcessedAt       time.Time
	SignatureVerified bool
}
