package ledger

import (
	"context"
	"fmt"
	"time"

	apperr "creditcall/internal/errors"
	"creditcall/internal/models"
	"creditcall/internal/money"
	"creditcall/internal/repositories"
	"creditcall/internal/repositories/cache"
)

type service struct {
	wallets       repositories.WalletRepository
	clientWallets repositories.ClientWalletRepository
	cache         *cache.Service
	metrics       MetricsCollector
}

// NewService creates a new balance ledger service.
func NewService(
	wallets repositories.WalletRepository,
	clientWallets repositories.ClientWalletRepository,
	cacheSvc *cache.Service,
	metrics MetricsCollector,
) Service {
	if wallets == nil {
		panic("wallet repository is required")
	}
	if clientWallets == nil {
		panic("client wallet repository is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		wallets:       wallets,
		clientWallets: clientWallets,
		cache:         cacheSvc,
		metrics:       metrics,
	}
}

func (s *service) CreditWallet(ctx context.Context, creatorID string, deltaSeconds money.Seconds, deltaRevenue money.Cents) error {
	if deltaSeconds < 0 || deltaRevenue < 0 {
		return apperr.ErrInvalidAmount
	}

	if err := s.wallets.Increment(ctx, creatorID, deltaSeconds, deltaRevenue); err != nil {
		if err == repositories.ErrWalletNotFound {
			return apperr.ErrWalletNotFound
		}
		s.metrics.RecordError("credit", "persistence")
		return apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	s.invalidateWallet(ctx, creatorID)
	s.metrics.RecordMutation("credit", int64(deltaSeconds))
	return nil
}

// DebitWallet applies a negative delta. There is no floor check at this
// layer: a debit may drive the balance negative, and the caller decides
// whether that is acceptable.
func (s *service) DebitWallet(ctx context.Context, creatorID string, seconds money.Seconds) error {
	if seconds <= 0 {
		return apperr.ErrInvalidAmount
	}

	if err := s.wallets.Increment(ctx, creatorID, -seconds, 0); err != nil {
		if err == repositories.ErrWalletNotFound {
			return apperr.ErrWalletNotFound
		}
		s.metrics.RecordError("debit", "persistence")
		return apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	s.invalidateWallet(ctx, creatorID)
	s.metrics.RecordMutation("debit", int64(seconds))
	return nil
}

func (s *service) GetWallet(ctx context.Context, creatorID string) (*models.Wallet, error) {
	if s.cache != nil {
		if wallet, ok := s.cache.GetWallet(ctx, creatorID); ok {
			return wallet, nil
		}
	}

	wallet, err := s.wallets.GetByCreatorID(ctx, creatorID)
	if err != nil {
		if err == repositories.ErrWalletNotFound {
			return nil, apperr.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.CacheWallet(ctx, wallet)
	}
	return wallet, nil
}

// OverwriteSummary fully replaces the wallet balance and lifetime revenue.
// Used only by the summary-recompute path.
func (s *service) OverwriteSummary(ctx context.Context, creatorID string, balance money.Seconds, lifetimeRevenue money.Cents) error {
	if err := s.wallets.Overwrite(ctx, creatorID, balance, lifetimeRevenue); err != nil {
		if err == repositories.ErrWalletNotFound {
			return apperr.ErrWalletNotFound
		}
		s.metrics.RecordError("overwrite", "persistence")
		return apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	s.invalidateWallet(ctx, creatorID)
	s.metrics.RecordMutation("overwrite", int64(balance))
	return nil
}

func (s *service) RecordTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.Status == "" {
		tx.Status = models.TransactionStatusCompleted
	}
	if err := s.wallets.CreateTransaction(ctx, tx); err != nil {
		s.metrics.RecordError("record_transaction", "persistence")
		return apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}
	return nil
}

// UpsertClientWallet inserts a new prepaid-credit row per top-up. Repeat
// purchases by the same buyer are separate rows; ClientCredit sums them.
func (s *service) UpsertClientWallet(ctx context.Context, phoneHash, businessID string, credit money.Cents) error {
	if credit <= 0 {
		return apperr.ErrInvalidAmount
	}
	row := &models.ClientWallet{
		PhoneHash:          phoneHash,
		BusinessID:         businessID,
		CreditBalanceCents: credit,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.clientWallets.Insert(ctx, row); err != nil {
		s.metrics.RecordError("client_wallet", "persistence")
		return apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}
	s.metrics.RecordMutation("client_wallet", int64(credit))
	return nil
}

func (s *service) ClientCredit(ctx context.Context, phoneHash, businessID string) (money.Cents, error) {
	total, err := s.clientWallets.TotalCredit(ctx, phoneHash, businessID)
	if err != nil {
		return 0, fmt.Errorf("failed to get client credit: %w", err)
	}
	return total, nil
}

func (s *service) invalidateWallet(ctx context.Context, creatorID string) {
	if s.cache != nil {
		s.cache.InvalidateWallet(ctx, creatorID)
	}
}
