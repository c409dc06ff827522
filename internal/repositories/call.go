package repositories

import (
	"context"
	"fmt"

	"creditcall/internal/models"

	"gorm.io/gorm"
)

// CallRepository appends immutable call records. Create surfaces
// ErrDuplicateRecord when the twilio call sid was already recorded, which the
// caller treats as a replayed notification.
type CallRepository interface {
	Create(ctx context.Context, call *models.Call) error
	ExistsBySID(ctx context.Context, twilioCallSID string) (bool, error)
}

type callRepository struct {
	db *gorm.DB
}

func NewCallRepository(db *gorm.DB) CallRepository {
	return &callRepository{db: db}
}

func (r *callRepository) Create(ctx context.Context, call *models.Call) error {
	if err := r.db.WithContext(ctx).Create(call).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to create call record: %w", err)
	}
	return nil
}

func (r *callRepository) ExistsBySID(ctx context.Context, twilioCallSID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Call{}).
		Where("twilio_call_sid = ?", twilioCallSID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check call sid: %w", err)
	}
	return count > 0, nil
}
