package ledger

import (
	"context"

	"creditcall/internal/models"
	"creditcall/internal/money"
)

// Service is the balance ledger. It owns the creator wallets and the
// buyer-side prepaid credit rows; every mutation is a relative increment
// applied atomically at the storage layer except OverwriteSummary, the single
// absolute-overwrite path used to resynchronize against external analytics.
type Service interface {
	// Wallet operations
	CreditWallet(ctx context.Context, creatorID string, deltaSeconds money.Seconds, deltaRevenue money.Cents) error
	DebitWallet(ctx context.Context, creatorID string, seconds money.Seconds) error
	GetWallet(ctx context.Context, creatorID string) (*models.Wallet, error)
	OverwriteSummary(ctx context.Context, creatorID string, balance money.Seconds, lifetimeRevenue money.Cents) error

	// Audit records
	RecordTransaction(ctx context.Context, tx *models.Transaction) error

	// Buyer-side prepaid credit
	UpsertClientWallet(ctx context.Context, phoneHash, businessID string, credit money.Cents) error
	ClientCredit(ctx context.Context, phoneHash, businessID string) (money.Cents, error)
}
