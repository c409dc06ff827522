package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"creditcall/internal/models"
	"creditcall/internal/money"
	"creditcall/internal/services/calls"
	"creditcall/internal/services/creators"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCallsService struct{ mock.Mock }

func (m *mockCallsService) OnCallEnded(ctx context.Context, event calls.CallEnded) (*calls.Result, error) {
	args := m.Called(ctx, event)
	if r := args.Get(0); r != nil {
		return r.(*calls.Result), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCreatorsService struct{ mock.Mock }

func (m *mockCreatorsService) ResolveHandle(ctx context.Context, handle string) (*models.Creator, error) {
	args := m.Called(ctx, handle)
	if c := args.Get(0); c != nil {
		return c.(*models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCreatorsService) PurchaseCredit(ctx context.Context, purchase creators.Purchase) (*creators.PurchaseResult, error) {
	args := m.Called(ctx, purchase)
	if r := args.Get(0); r != nil {
		return r.(*creators.PurchaseResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCreatorsService) UpdateSummary(ctx context.Context, update creators.SummaryUpdate) error {
	return m.Called(ctx, update).Error(0)
}

func (m *mockCreatorsService) GetCreatorData(ctx context.Context, handle string) (*creators.CreatorData, error) {
	args := m.Called(ctx, handle)
	if d := args.Get(0); d != nil {
		return d.(*creators.CreatorData), args.Error(1)
	}
	return nil, args.Error(1)
}

func newCallsApp(callsSvc calls.Service, creatorsSvc creators.Service) *fiber.App {
	app := fiber.New()
	h := NewCallsHandler(callsSvc, creatorsSvc)
	app.Post("/call-ended", h.HandleCallEnded)
	app.Post("/payment-completed", h.HandlePaymentCompleted)
	app.Post("/summary-update", h.HandleSummaryUpdate)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestHandleCallEnded_DecodesNotificationFields(t *testing.T) {
	callsSvc := new(mockCallsService)
	creatorsSvc := new(mockCreatorsService)
	app := newCallsApp(callsSvc, creatorsSvc)

	callsSvc.On("OnCallEnded", mock.Anything, calls.CallEnded{
		Handle:          "alice",
		DurationSeconds: 125,
		RevenueCents:    208,
		CallerHash:      "sha256:deadbeef",
		TwilioCallSID:   "CA123",
	}).Return(&calls.Result{Status: calls.StatusDebited, CreatorID: "creator-1", SecondsDebited: 125}, nil)

	status := postJSON(t, app, "/call-ended", `{
		"handle": "alice",
		"duration_seconds": 125,
		"revenue_cents": 208,
		"caller_hash": "sha256:deadbeef",
		"twilio_call_sid": "CA123"
	}`)

	require.Equal(t, fiber.StatusOK, status)
	callsSvc.AssertExpectations(t)
}

func TestHandleCallEnded_MissingIdentifiers(t *testing.T) {
	callsSvc := new(mockCallsService)
	app := newCallsApp(callsSvc, new(mockCreatorsService))

	status := postJSON(t, app, "/call-ended", `{"duration_seconds": 60}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	callsSvc.AssertNotCalled(t, "OnCallEnded", mock.Anything, mock.Anything)
}

func TestHandlePaymentCompleted_DecodesCentsAndPhoneHash(t *testing.T) {
	creatorsSvc := new(mockCreatorsService)
	app := newCallsApp(new(mockCallsService), creatorsSvc)

	creatorsSvc.On("PurchaseCredit", mock.Anything, creators.Purchase{
		Handle:          "alice",
		Minutes:         10,
		AmountCents:     2500,
		StripeSessionID: "cs_test_1",
		PhoneHash:       "sha256:deadbeef",
	}).Return(&creators.PurchaseResult{CreatorID: "creator-1", SecondsAdded: money.Seconds(600)}, nil)

	status := postJSON(t, app, "/payment-completed", `{
		"handle": "alice",
		"minutes": 10,
		"amount_cents": 2500,
		"stripe_session_id": "cs_test_1",
		"phone_hash": "sha256:deadbeef"
	}`)

	require.Equal(t, fiber.StatusOK, status)
	creatorsSvc.AssertExpectations(t)
}

func TestHandleSummaryUpdate_DecodesRevenueEuros(t *testing.T) {
	creatorsSvc := new(mockCreatorsService)
	app := newCallsApp(new(mockCallsService), creatorsSvc)

	creatorsSvc.On("UpdateSummary", mock.Anything, creators.SummaryUpdate{
		Handle:         "alice",
		RevenueEuros:   123.45,
		TotalCalls:     42,
		TotalMinutes:   300,
		UniqueCallers:  7,
		BalanceMinutes: 90,
	}).Return(nil)

	status := postJSON(t, app, "/summary-update", `{
		"handle": "alice",
		"revenue_euros": 123.45,
		"total_calls": 42,
		"total_minutes": 300,
		"unique_callers": 7,
		"balance_minutes": 90
	}`)

	require.Equal(t, fiber.StatusOK, status)
	creatorsSvc.AssertExpectations(t)
}
