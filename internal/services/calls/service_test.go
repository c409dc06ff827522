package calls

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

type mockResolver struct{ mock.Mock }

func (m *mockResolver) ResolveHandle(ctx context.Context, handle string) (*models.Creator, error) {
	args := m.Called(ctx, handle)
	if c := args.Get(0); c != nil {
		return c.(*models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCallRepo struct{ mock.Mock }

func (m *mockCallRepo) Create(ctx context.Context, call *models.Call) error {
	return m.Called(ctx, call).Error(0)
}

func (m *mockCallRepo) ExistsBySID(ctx context.Context, sid string) (bool, error) {
	args := m.Called(ctx, sid)
	return args.Bool(0), args.Error(1)
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

func testCallEnded() CallEnded {
	return CallEnded{
		Handle:          "alice",
		DurationSeconds: 125,
		RevenueCents:    208,
		CallerHash:      "sha256:caller",
		TwilioCallSID:   "CA123",
	}
}

func TestOnCallEnded_DebitsFullDuration(t *testing.T) {
	resolver := new(mockResolver)
	callRepo := new(mockCallRepo)
	ledgerSvc := new(mockLedger)
	svc := NewService(resolver, callRepo, ledgerSvc)
	ctx := context.Background()

	resolver.On("ResolveHandle", ctx, "alice").Return(testCreator(), nil)
	callRepo.On("ExistsBySID", ctx, "CA123").Return(false, nil)
	callRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Call) bool {
		return c.TwilioCallSID == "CA123" && c.DurationSeconds == 125
	})).Return(nil)
	ledgerSvc.On("RecordTransaction", ctx, mock.MatchedBy(func(tx *models.Transaction) bool {
		return tx.Amount == -125 && tx.Type == models.TransactionTypeCallDebit
	})).Return(nil)
	ledgerSvc.On("DebitWallet", ctx, "creator-1", money.Seconds(125)).Return(nil)

	result, err := svc.OnCallEnded(ctx, testCallEnded())

	require.NoError(t, err)
	assert.Equal(t, StatusDebited, result.Status)
	assert.Equal(t, int64(125), result.SecondsDebited)
	ledgerSvc.AssertExpectations(t)
}

func TestOnCallEnded_ReplayedSIDIsNoOp(t *testing.T) {
	resolver := new(mockResolver)
	callRepo := new(mockCallRepo)
	ledgerSvc := new(mockLedger)
	svc := NewService(resolver, callRepo, ledgerSvc)
	ctx := context.Background()

	resolver.On("ResolveHandle", ctx, "alice").Return(testCreator(), nil)
	callRepo.On("ExistsBySID", ctx, "CA123").Return(true, nil)

	result, err := svc.OnCallEnded(ctx, testCallEnded())

	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyRecorded, result.Status)
	callRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ledgerSvc.AssertNotCalled(t, "DebitWallet", mock.Anything, mock.Anything, mock.Anything)
	ledgerSvc.AssertNotCalled(t, "RecordTransaction", mock.Anything, mock.Anything)
}

func TestOnCallEnded_ReplayRacingPastPreCheckIsNoOp(t *testing.T) {
	resolver := new(mockResolver)
	callRepo := new(mockCallRepo)
	ledgerSvc := new(mockLedger)
	svc := NewService(resolver, callRepo, ledgerSvc)
	ctx := context.Background()

	// The duplicate arrives between the pre-check and the insert; the unique
	// index catches it.
	resolver.On("ResolveHandle", ctx, "alice").Return(testCreator(), nil)
	callRepo.On("ExistsBySID", ctx, "CA123").Return(false, nil)
	callRepo.On("Create", ctx, mock.Anything).Return(repositories.ErrDuplicateRecord)

	result, err := svc.OnCallEnded(ctx, testCallEnded())

	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyRecorded, result.Status)
	ledgerSvc.AssertNotCalled(t, "DebitWallet", mock.Anything, mock.Anything, mock.Anything)
	ledgerSvc.AssertNotCalled(t, "RecordTransaction", mock.Anything, mock.Anything)
}

func TestOnCallEnded_RejectsNonPositiveDuration(t *testing.T) {
	svc := NewService(new(mockResolver), new(mockCallRepo), new(mockLedger))

	event := testCallEnded()
	event.DurationSeconds = 0

	_, err := svc.OnCallEnded(context.Background(), event)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidAmount)
}

func TestOnCallEnded_UnknownHandle(t *testing.T) {
	resolver := new(mockResolver)
	callRepo := new(mockCallRepo)
	svc := NewService(resolver, callRepo, new(mockLedger))
	ctx := context.Background()

	resolver.On("ResolveHandle", ctx, "alice").Return(nil, apperr.ErrCreatorNotFound)

	_, err := svc.OnCallEnded(ctx, testCallEnded())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrCreatorNotFound)
	callRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
