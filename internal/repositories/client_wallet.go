package repositories

import (
	"context"
	"fmt"

	"creditcall/internal/models"
	"creditcall/internal/money"

	"gorm.io/gorm"
)

// ClientWalletRepository records buyer-side prepaid credit. Every top-up
// inserts a new row; usable credit is the sum across rows.
type ClientWalletRepository interface {
	Insert(ctx context.Context, row *models.ClientWallet) error
	TotalCredit(ctx context.Context, phoneHash, businessID string) (money.Cents, error)
}

type clientWalletRepository struct {
	db *gorm.DB
}

func NewClientWalletRepository(db *gorm.DB) ClientWalletRepository {
	return &clientWalletRepository{db: db}
}

func (r *clientWalletRepository) Insert(ctx context.Context, row *models.ClientWallet) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert client wallet row: %w", err)
	}
	return nil
}

func (r *clientWalletRepository) TotalCredit(ctx context.Context, phoneHash, businessID string) (money.Cents, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.ClientWallet{}).
		Where("phone_hash = ? AND business_id = ?", phoneHash, businessID).
		Select("COALESCE(SUM(credit_balance_cents), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum client credit: %w", err)
	}
	return money.Cents(total), nil
}
