package repositories

import (
	"context"
	"fmt"

	"creditcall/internal/models"
	"creditcall/internal/money"

	"gorm.io/gorm"
)

// WalletRepository owns creator wallets and their audit records.
//
// Increment and Overwrite are the only two mutation shapes: increments are
// issued as single atomic SQL updates so concurrent settlements and call
// debits for the same creator never lose an update; Overwrite is reserved
// for the summary-recompute path.
type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByCreatorID(ctx context.Context, creatorID string) (*models.Wallet, error)
	Increment(ctx context.Context, creatorID string, deltaSeconds money.Seconds, deltaRevenue money.Cents) error
	Overwrite(ctx context.Context, creatorID string, balance money.Seconds, lifetimeRevenue money.Cents) error
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetRecentTransactions(ctx context.Context, creatorID string, limit int) ([]models.Transaction, error)
	ExecuteInTransaction(fn func(WalletRepository) error) error
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	if err := r.db.WithContext(ctx).Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetByCreatorID(ctx context.Context, creatorID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).First(&wallet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) Increment(ctx context.Context, creatorID string, deltaSeconds money.Seconds, deltaRevenue money.Cents) error {
	result := r.db.WithContext(ctx).
		Model(&models.Wallet{}).
		Where("creator_id = ?", creatorID).
		Updates(map[string]interface{}{
			"balance_seconds":        gorm.Expr("balance_seconds + ?", int64(deltaSeconds)),
			"lifetime_revenue_cents": gorm.Expr("lifetime_revenue_cents + ?", int64(deltaRevenue)),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increment wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) Overwrite(ctx context.Context, creatorID string, balance money.Seconds, lifetimeRevenue money.Cents) error {
	result := r.db.WithContext(ctx).
		Model(&models.Wallet{}).
		Where("creator_id = ?", creatorID).
		Updates(map[string]interface{}{
			"balance_seconds":        int64(balance),
			"lifetime_revenue_cents": int64(lifetimeRevenue),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to overwrite wallet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}
	return nil
}

func (r *walletRepository) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *walletRepository) GetRecentTransactions(ctx context.Context, creatorID string, limit int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txs, nil
}

func (r *walletRepository) ExecuteInTransaction(fn func(WalletRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx})
	})
}
