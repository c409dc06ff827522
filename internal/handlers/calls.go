package handlers

import (
	"creditcall/internal/money"
	"creditcall/internal/services/calls"
	"creditcall/internal/services/creators"
	"creditcall/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// CallsHandler receives the downstream call-platform notifications: call
// completion, purchase completion and summary recomputes.
type CallsHandler struct {
	calls    calls.Service
	creators creators.Service
}

func NewCallsHandler(callsSvc calls.Service, creatorsSvc creators.Service) *CallsHandler {
	return &CallsHandler{calls: callsSvc, creators: creatorsSvc}
}

type callEndedRequest struct {
	Handle          string `json:"handle"`
	DurationSeconds int64  `json:"duration_seconds"`
	RevenueCents    int64  `json:"revenue_cents"`
	CallerHash      string `json:"caller_hash"`
	TwilioCallSID   string `json:"twilio_call_sid"`
}

func (h *CallsHandler) HandleCallEnded(c *fiber.Ctx) error {
	var req callEndedRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Handle == "" || req.TwilioCallSID == "" {
		return response.BadRequest(c, "handle and twilio_call_sid are required")
	}

	result, err := h.calls.OnCallEnded(c.UserContext(), calls.CallEnded{
		Handle:          req.Handle,
		DurationSeconds: req.DurationSeconds,
		RevenueCents:    money.Cents(req.RevenueCents),
		CallerHash:      req.CallerHash,
		TwilioCallSID:   req.TwilioCallSID,
	})
	if err != nil {
		return response.Domain(c, err)
	}
	return c.JSON(result)
}

type paymentCompletedRequest struct {
	Handle          string `json:"handle"`
	Minutes         int64  `json:"minutes"`
	AmountCents     int64  `json:"amount_cents"`
	StripeSessionID string `json:"stripe_session_id"`
	PhoneHash       string `json:"phone_hash"`
}

func (h *CallsHandler) HandlePaymentCompleted(c *fiber.Ctx) error {
	var req paymentCompletedRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Handle == "" {
		return response.BadRequest(c, "handle is required")
	}

	result, err := h.creators.PurchaseCredit(c.UserContext(), creators.Purchase{
		Handle:          req.Handle,
		Minutes:         req.Minutes,
		AmountCents:     money.Cents(req.AmountCents),
		StripeSessionID: req.StripeSessionID,
		PhoneHash:       req.PhoneHash,
	})
	if err != nil {
		return response.Domain(c, err)
	}
	return c.JSON(result)
}

type summaryUpdateRequest struct {
	Handle             string  `json:"handle"`
	RevenueEuros       float64 `json:"revenue_euros"`
	TotalCalls         int64   `json:"total_calls"`
	TotalMinutes       int64   `json:"total_minutes"`
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
	UniqueCallers      int64   `json:"unique_callers"`
	BalanceMinutes     int64   `json:"balance_minutes"`
}

func (h *CallsHandler) HandleSummaryUpdate(c *fiber.Ctx) error {
	var req summaryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Handle == "" {
		return response.BadRequest(c, "handle is required")
	}

	err := h.creators.UpdateSummary(c.UserContext(), creators.SummaryUpdate{
		Handle:             req.Handle,
		RevenueEuros:       req.RevenueEuros,
		TotalCalls:         req.TotalCalls,
		TotalMinutes:       req.TotalMinutes,
		AvgDurationSeconds: req.AvgDurationSeconds,
		UniqueCallers:      req.UniqueCallers,
		BalanceMinutes:     req.BalanceMinutes,
	})
	if err != nil {
		return response.Domain(c, err)
	}
	return response.Success(c, "summary updated", nil)
}
