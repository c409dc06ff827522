// Package handlers contains the HTTP handlers. They stay thin: decode a
// typed payload, call one service method, map the result.
package handlers

import (
	"creditcall/internal/services/settlement"
	"creditcall/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// WebhookHandler receives payment-processor events.
type WebhookHandler struct {
	settlement settlement.Service
}

func NewWebhookHandler(settlementSvc settlement.Service) *WebhookHandler {
	return &WebhookHandler{settlement: settlementSvc}
}

// HandleStripeWebhook runs the settlement pipeline on a raw event. The body
// is passed through unparsed; signature verification needs the exact bytes.
func (h *WebhookHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	outcome, err := h.settlement.HandleWebhook(c.UserContext(), c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		return response.Domain(c, err)
	}
	return c.JSON(outcome)
}
