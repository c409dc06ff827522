package creators

import (
	"context"
	"testing"

	apperr "creditcall/internal/errors"
	"creditcall/internal/models"
	"creditcall/internal/money"
	"creditcall/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCreatorRepo struct{ mock.Mock }

func (m *mockCreatorRepo) Create(ctx context.Context, creator *models.Creator) error {
	return m.Called(ctx, creator).Error(0)
}

func (m *mockCreatorRepo) GetByID(ctx context.Context, id string) (*models.Creator, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCreatorRepo) GetByHandle(ctx context.Context, handle string) (*models.Creator, error) {
	args := m.Called(ctx, handle)
	if c := args.Get(0); c != nil {
		return c.(*models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCreatorRepo) UpsertSummary(ctx context.Context, summary *models.CreatorSummary) error {
	return m.Called(ctx, summary).Error(0)
}

func (m *mockCreatorRepo) GetSummary(ctx context.Context, creatorID string) (*models.CreatorSummary, error) {
	args := m.Called(ctx, creatorID)
	if s := args.Get(0); s != nil {
		return s.(*models.CreatorSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockLedger struct{ mock.Mock }

func (m *mockLedger) CreditWallet(ctx context.Context, creatorID string, deltaSeconds money.Seconds, deltaRevenue money.Cents) error {
	return m.Called(ctx, creatorID, deltaSeconds, deltaRevenue).Error(0)
}

func (m *mockLedger) DebitWallet(ctx context.Context, creatorID string, seconds money.Seconds) error {
	return m.Called(ctx, creatorID, seconds).Error(0)
}

func (m *mockLedger) GetWallet(ctx context.Context, creatorID string) (*models.Wallet, error) {
	args := m.Called(ctx, creatorID)
	if w := args.Get(0); w != nil {
		return w.(*models.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedger) OverwriteSummary(ctx context.Context, creatorID string, balance money.Seconds, lifetimeRevenue money.Cents) error {
	return m.Called(ctx, creatorID, balance, lifetimeRevenue).Error(0)
}

func (m *mockLedger) RecordTransaction(ctx context.Context, tx *models.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *mockLedger) UpsertClientWallet(ctx context.Context, phoneHash, businessID string, credit money.Cents) error {
	return m.Called(ctx, phoneHash, businessID, credit).Error(0)
}

func (m *mockLedger) ClientCredit(ctx context.Context, phoneHash, businessID string) (money.Cents, error) {
	args := m.Called(ctx, phoneHash, businessID)
	return args.Get(0).(money.Cents), args.Error(1)
}

func testCreator() *models.Creator {
	return &models.Creator{ID: "creator-1", Handle: "alice", BusinessID: "biz-1"}
}

func TestPurchaseCredit_CreditsMinutesAsSeconds(t *testing.T) {
	creatorRepo := new(mockCreatorRepo)
	ledgerSvc := new(mockLedger)
	svc := NewService(creatorRepo, nil, ledgerSvc, nil)
	ctx := context.Background()

	creatorRepo.On("GetByHandle", ctx, "alice").Return(testCreator(), nil)
	ledgerSvc.On("RecordTransaction", ctx, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Type == models.TransactionTypePurchase && tx.Amount == 2500
	})).Return(nil)
	ledgerSvc.On("CreditWallet", ctx, "creator-1", money.Seconds(600), money.Cents(2500)).Return(nil)

	result, err := svc.PurchaseCredit(ctx, Purchase{
		Handle:      "alice",
		Minutes:     10,
		AmountCents: 2500,
	})

	require.NoError(t, err)
	assert.Equal(t, money.Seconds(600), result.SecondsAdded)
	ledgerSvc.AssertExpectations(t)
}

func TestPurchaseCredit_RejectsNonPositiveInput(t *testing.T) {
	svc := NewService(new(mockCreatorRepo), nil, new(mockLedger), nil)

	_, err := svc.PurchaseCredit(context.Background(), Purchase{Handle: "alice", Minutes: 0, AmountCents: 100})
	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)

	_, err = svc.PurchaseCredit(context.Background(), Purchase{Handle: "alice", Minutes: 10, AmountCents: 0})
	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
}

func TestUpdateSummary_OverwritesWalletAndSummary(t *testing.T) {
	creatorRepo := new(mockCreatorRepo)
	ledgerSvc := new(mockLedger)
	svc := NewService(creatorRepo, nil, ledgerSvc, nil)
	ctx := context.Background()

	creatorRepo.On("GetByHandle", ctx, "alice").Return(testCreator(), nil)
	// 123.45 EUR and 90 minutes of remaining balance.
	ledgerSvc.On("OverwriteSummary", ctx, "creator-1", money.Seconds(5400), money.Cents(12345)).Return(nil)
	creatorRepo.On("UpsertSummary", ctx, mock.MatchedBy(func(s *models.CreatorSummary) bool {
		return s.CreatorID == "creator-1" && s.TotalCalls == 42
	})).Return(nil)

	err := svc.UpdateSummary(ctx, SummaryUpdate{
		Handle:         "alice",
		RevenueEuros:   123.45,
		TotalCalls:     42,
		TotalMinutes:   300,
		UniqueCallers:  7,
		BalanceMinutes: 90,
	})

	require.NoError(t, err)
	ledgerSvc.AssertExpectations(t)
	creatorRepo.AssertExpectations(t)
}

func TestResolveHandle_UnknownHandle(t *testing.T) {
	creatorRepo := new(mockCreatorRepo)
	svc := NewService(creatorRepo, nil, new(mockLedger), nil)
	ctx := context.Background()

	creatorRepo.On("GetByHandle", ctx, "nobody").Return(nil, repositories.ErrCreatorNotFound)

	_, err := svc.ResolveHandle(ctx, "nobody")

	assert.ErrorIs(t, err, apperr.ErrCreatorNotFound)
}
