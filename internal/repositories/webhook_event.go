package repositories

import (
	"context"
	"fmt"

	"creditcall/internal/models"

	"gorm.io/gorm"
)

// WebhookEventRepository is the idempotency ledger. The unique index on
// event_id is the only concurrency-control primitive for redelivered events:
// a duplicate Create comes back as ErrEventAlreadyRecorded and callers treat
// it as already processed, not as a failure.
type WebhookEventRepository interface {
	HasBeenProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, event *models.WebhookEvent) error
}

type webhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepository{db: db}
}

func (r *webhookEventRepository) HasBeenProcessed(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WebhookEvent{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check webhook event: %w", err)
	}
	return count > 0, nil
}

func (r *webhookEventRepository) MarkProcessed(ctx context.Context, event *models.WebhookEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrEventAlreadyRecorded
		}
		return fmt.Errorf("failed to record webhook event: %w", err)
	}
	return nil
}
