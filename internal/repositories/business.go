package repositories

import (
	"context"
	"fmt"

	"creditcall/internal/models"
	"creditcall/internal/money"

	"gorm.io/gorm"
)

// BusinessRepository handles seller-side organizations and their debt.
type BusinessRepository interface {
	Create(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, id string) (*models.Business, error)
	SetStripeAccount(ctx context.Context, id, stripeAccountID string) error
	// AbsorbDebt decrements debt_cents by amount as a single conditional
	// update. It fails with ErrInsufficientDebt if the current debt no longer
	// covers the decrement, which happens when a concurrent settlement
	// absorbed it first.
	AbsorbDebt(ctx context.Context, id string, amount money.Cents) error
}

type businessRepository struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &businessRepository{db: db}
}

func (r *businessRepository) Create(ctx context.Context, business *models.Business) error {
	if err := r.db.WithContext(ctx).Create(business).Error; err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*models.Business, error) {
	var business models.Business
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&business).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	return &business, nil
}

func (r *businessRepository) SetStripeAccount(ctx context.Context, id, stripeAccountID string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ?", id).
		Update("stripe_account_id", stripeAccountID)
	if result.Error != nil {
		return fmt.Errorf("failed to set stripe account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

func (r *businessRepository) AbsorbDebt(ctx context.Context, id string, amount money.Cents) error {
	if amount <= 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ? AND debt_cents >= ?", id, amount).
		Update("debt_cents", gorm.Expr("debt_cents - ?", amount))
	if result.Error != nil {
		return fmt.Errorf("failed to absorb debt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientDebt
	}
	return nil
}
