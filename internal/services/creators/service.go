package creators

import (
	"context"
	"log"
	"time"

	apperr "creditcall/internal/errors"
	"creditcall/internal/models"
	"creditcall/internal/money"
	"creditcall/internal/repositories"
	"creditcall/internal/repositories/cache"
	"creditcall/internal/services/ledger"
)

// Resolver maps a public handle to a creator. Shared by every webhook path
// so handle resolution and its caching exist exactly once.
type Resolver interface {
	ResolveHandle(ctx context.Context, handle string) (*models.Creator, error)
}

// Service covers the creator-facing ledger flows: purchase credits, summary
// recompute and read projections.
type Service interface {
	Resolver
	PurchaseCredit(ctx context.Context, purchase Purchase) (*PurchaseResult, error)
	UpdateSummary(ctx context.Context, update SummaryUpdate) error
	GetCreatorData(ctx context.Context, handle string) (*CreatorData, error)
}

type service struct {
	creators repositories.CreatorRepository
	wallets  repositories.WalletRepository
	ledger   ledger.Service
	cache    *cache.Service
}

func NewService(
	creators repositories.CreatorRepository,
	wallets repositories.WalletRepository,
	ledgerSvc ledger.Service,
	cacheSvc *cache.Service,
) Service {
	if creators == nil {
		panic("creator repository is required")
	}
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	return &service{
		creators: creators,
		wallets:  wallets,
		ledger:   ledgerSvc,
		cache:    cacheSvc,
	}
}

func (s *service) ResolveHandle(ctx context.Context, handle string) (*models.Creator, error) {
	if s.cache != nil {
		if creator, ok := s.cache.GetCreatorByHandle(ctx, handle); ok {
			return creator, nil
		}
	}

	creator, err := s.creators.GetByHandle(ctx, handle)
	if err != nil {
		if err == repositories.ErrCreatorNotFound {
			return nil, apperr.ErrCreatorNotFound
		}
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	if s.cache != nil {
		_ = s.cache.CacheCreator(ctx, creator)
	}
	return creator, nil
}

// PurchaseCredit applies a completed top-up to the creator's wallet: one
// purchase transaction plus an additive credit of the bought seconds and the
// collected revenue.
func (s *service) PurchaseCredit(ctx context.Context, purchase Purchase) (*PurchaseResult, error) {
	if purchase.Minutes <= 0 || purchase.AmountCents <= 0 {
		return nil, apperr.ErrInvalidAmount
	}

	creator, err := s.ResolveHandle(ctx, purchase.Handle)
	if err != nil {
		return nil, err
	}

	seconds := money.MinutesToSeconds(purchase.Minutes)

	err = s.ledger.RecordTransaction(ctx, &models.Transaction{
		CreatorID:       creator.ID,
		Amount:          int64(purchase.AmountCents),
		Type:            models.TransactionTypePurchase,
		PhoneHash:       purchase.PhoneHash,
		StripeSessionID: purchase.StripeSessionID,
		Status:          models.TransactionStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	if err := s.ledger.CreditWallet(ctx, creator.ID, seconds, purchase.AmountCents); err != nil {
		return nil, err
	}

	log.Printf("creators: added %d seconds to wallet for creator %s", seconds, purchase.Handle)
	return &PurchaseResult{CreatorID: creator.ID, SecondsAdded: seconds}, nil
}

// UpdateSummary resynchronizes the wallet and summary row against the
// external analytics source. This is the one path that overwrites instead of
// incrementing.
func (s *service) UpdateSummary(ctx context.Context, update SummaryUpdate) error {
	creator, err := s.ResolveHandle(ctx, update.Handle)
	if err != nil {
		return err
	}

	revenue := money.EuroFloatToCents(update.RevenueEuros)
	balance := money.Seconds(update.BalanceMinutes * 60)

	if err := s.ledger.OverwriteSummary(ctx, creator.ID, balance, revenue); err != nil {
		return err
	}

	err = s.creators.UpsertSummary(ctx, &models.CreatorSummary{
		CreatorID:          creator.ID,
		TotalCalls:         update.TotalCalls,
		TotalMinutes:       update.TotalMinutes,
		AvgDurationSeconds: update.AvgDurationSeconds,
		UniqueCallers:      update.UniqueCallers,
		UpdatedAt:          time.Now().UTC(),
	})
	if err != nil {
		return apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	log.Printf("creators: updated summary for %s: %.2f EUR, %d calls, %d min",
		update.Handle, update.RevenueEuros, update.TotalCalls, update.TotalMinutes)
	return nil
}

func (s *service) GetCreatorData(ctx context.Context, handle string) (*CreatorData, error) {
	creator, err := s.ResolveHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	wallet, err := s.ledger.GetWallet(ctx, creator.ID)
	if err != nil {
		return nil, err
	}

	data := &CreatorData{Creator: creator, Wallet: wallet}

	// Summary may legitimately not exist yet.
	if summary, err := s.creators.GetSummary(ctx, creator.ID); err == nil {
		data.Summary = summary
	}

	if s.wallets != nil {
		txs, err := s.wallets.GetRecentTransactions(ctx, creator.ID, 20)
		if err == nil {
			data.Transactions = txs
		}
	}
	return data, nil
}
