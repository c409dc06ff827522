package handlers

import (
	"creditcall/internal/repositories"
	"creditcall/internal/services/ledger"
	"creditcall/internal/services/provisioning"
	"creditcall/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the god-admin provisioning and operations surface.
type AdminHandler struct {
	provisioning provisioning.Service
	businesses   repositories.BusinessRepository
	ledgerStats  *ledger.StatsCollector
}

func NewAdminHandler(provisioningSvc provisioning.Service, businesses repositories.BusinessRepository, ledgerStats *ledger.StatsCollector) *AdminHandler {
	return &AdminHandler{provisioning: provisioningSvc, businesses: businesses, ledgerStats: ledgerStats}
}

// LedgerStats reports the in-process ledger mutation counters.
func (h *AdminHandler) LedgerStats(c *fiber.Ctx) error {
	if h.ledgerStats == nil {
		return response.ServerError(c, "ledger stats unavailable")
	}
	return c.JSON(h.ledgerStats.Snapshot())
}

func (h *AdminHandler) OnboardBusiness(c *fiber.Ctx) error {
	var input provisioning.OnboardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	result, err := h.provisioning.OnboardBusiness(c.UserContext(), input)
	if err != nil {
		return response.Domain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *AdminHandler) InviteUser(c *fiber.Ctx) error {
	var input provisioning.InviteInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	result, err := h.provisioning.InviteUser(c.UserContext(), input)
	if err != nil {
		return response.Domain(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

type setStripeAccountRequest struct {
	StripeAccountID string `json:"stripe_account_id"`
}

// SetStripeAccount records the payout account once connect onboarding
// completes; until then settlements for the business are rejected.
func (h *AdminHandler) SetStripeAccount(c *fiber.Ctx) error {
	var req setStripeAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.StripeAccountID == "" {
		return response.BadRequest(c, "stripe_account_id is required")
	}

	err := h.businesses.SetStripeAccount(c.UserContext(), c.Params("id"), req.StripeAccountID)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return response.Error(c, fiber.StatusNotFound, "business not found")
		}
		return response.ServerError(c, "failed to set stripe account")
	}
	return response.Success(c, "stripe account connected", nil)
}
