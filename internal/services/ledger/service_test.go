package ledger

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

type mockWalletRepo struct{ mock.Mock }

func (m *mockWalletRepo) Create(ctx context.Context, wallet *models.Wallet) error {
	return m.Called(ctx, wallet).Error(0)
}

func (m *mockWalletRepo) GetByCreatorID(ctx context.Context, creatorID string) (*models.Wallet, error) {
	args := m.Called(ctx, creatorID)
	if w := args.Get(0); w != nil {
		return w.(*models.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWalletRepo) Increment(ctx context.Context, creatorID string, deltaSeconds money.Seconds, deltaRevenue money.Cents) error {
	return m.Called(ctx, creatorID, deltaSeconds, deltaRevenue).Error(0)
}

func (m *mockWalletRepo) Overwrite(ctx context.Context, creatorID string, balance money.Seconds, lifetimeRevenue money.Cents) error {
	return m.Called(ctx, creatorID, balance, lifetimeRevenue).Error(0)
}

func (m *mockWalletRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *mockWalletRepo) GetRecentTransactions(ctx context.Context, creatorID string, limit int) ([]models.Transaction, error) {
	args := m.Called(ctx, creatorID, limit)
	if txs := args.Get(0); txs != nil {
		return txs.([]models.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWalletRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	return fn(m)
}

type mockClientWalletRepo struct{ mock.Mock }

func (m *mockClientWalletRepo) Insert(ctx context.Context, row *models.ClientWallet) error {
	return m.Called(ctx, row).Error(0)
}

func (m *mockClientWalletRepo) TotalCredit(ctx context.Context, phoneHash, businessID string) (money.Cents, error) {
	args := m.Called(ctx, phoneHash, businessID)
	return args.Get(0).(money.Cents), args.Error(1)
}

func newTestService(t *testing.T) (Service, *mockWalletRepo, *mockClientWalletRepo) {
	t.Helper()
	wallets := new(mockWalletRepo)
	clientWallets := new(mockClientWalletRepo)
	return NewService(wallets, clientWallets, nil, nil), wallets, clientWallets
}

func TestCreditWallet(t *testing.T) {
	svc, wallets, _ := newTestService(t)
	ctx := context.Background()

	wallets.On("Increment", ctx, "creator-1", money.Seconds(600), money.Cents(2500)).Return(nil)

	require.NoError(t, svc.CreditWallet(ctx, "creator-1", 600, 2500))
	wallets.AssertExpectations(t)
}

func TestCreditWallet_RejectsNegativeDeltas(t *testing.T) {
	svc, wallets, _ := newTestService(t)

	err := svc.CreditWallet(context.Background(), "creator-1", -1, 0)

	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
	wallets.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDebitWallet_AppliesNegativeIncrement(t *testing.T) {
	svc, wallets, _ := newTestService(t)
	ctx := context.Background()

	// No floor check: 125 seconds leave a 100-second balance at -25.
	wallets.On("Increment", ctx, "creator-1", money.Seconds(-125), money.Cents(0)).Return(nil)

	require.NoError(t, svc.DebitWallet(ctx, "creator-1", 125))
	wallets.AssertExpectations(t)
}

func TestDebitWallet_UnknownWallet(t *testing.T) {
	svc, wallets, _ := newTestService(t)
	ctx := context.Background()

	wallets.On("Increment", ctx, "creator-1", money.Seconds(-10), money.Cents(0)).
		Return(repositories.ErrWalletNotFound)

	err := svc.DebitWallet(ctx, "creator-1", 10)

	assert.ErrorIs(t, err, apperr.ErrWalletNotFound)
}

func TestOverwriteSummary(t *testing.T) {
	svc, wallets, _ := newTestService(t)
	ctx := context.Background()

	wallets.On("Overwrite", ctx, "creator-1", money.Seconds(3600), money.Cents(12345)).Return(nil)

	require.NoError(t, svc.OverwriteSummary(ctx, "creator-1", 3600, 12345))
	wallets.AssertExpectations(t)
}

func TestUpsertClientWallet_InsertsRowPerTopUp(t *testing.T) {
	svc, _, clientWallets := newTestService(t)
	ctx := context.Background()

	clientWallets.On("Insert", ctx, mock.MatchedBy(func(row *models.ClientWallet) bool {
		return row.PhoneHash == "sha256:abc" &&
			row.BusinessID == "biz-1" &&
			row.CreditBalanceCents == money.Cents(1000)
	})).Return(nil)

	require.NoError(t, svc.UpsertClientWallet(ctx, "sha256:abc", "biz-1", 1000))
	clientWallets.AssertExpectations(t)
}

func TestUpsertClientWallet_RejectsNonPositiveCredit(t *testing.T) {
	svc, _, clientWallets := newTestService(t)

	err := svc.UpsertClientWallet(context.Background(), "sha256:abc", "biz-1", 0)

	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
	clientWallets.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestClientCredit_SumsRows(t *testing.T) {
	svc, _, clientWallets := newTestService(t)
	ctx := context.Background()

	clientWallets.On("TotalCredit", ctx, "sha256:abc", "biz-1").Return(money.Cents(3000), nil)

	total, err := svc.ClientCredit(ctx, "sha256:abc", "biz-1")

	require.NoError(t, err)
	assert.Equal(t, money.Cents(3000), total)
}

func TestRecordTransaction_DefaultsStatus(t *testing.T) {
	svc, wallets, _ := newTestService(t)
	ctx := context.Background()

	wallets.On("CreateTransaction", ctx, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Status == models.TransactionStatusCompleted
	})).Return(nil)

	require.NoError(t, svc.RecordTransaction(ctx, &models.Transaction{
		CreatorID: "creator-1",
		Amount:    100,
		Type:      models.TransactionTypePurchase,
	}))
	wallets.AssertExpectations(t)
}
