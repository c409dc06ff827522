package handlers

import (
	"creditcall/internal/services/checkout"
	"creditcall/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	checkout checkout.Service
}

func NewCheckoutHandler(checkoutSvc checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutSvc}
}

type createSessionRequest struct {
	CompanyID   string `json:"company_id"`
	Phone       string `json:"phone"`
	AmountEuros int64  `json:"amount"`
}

func (h *CheckoutHandler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	session, err := h.checkout.CreateSession(c.UserContext(), checkout.CreateSessionInput{
		BusinessID:  req.CompanyID,
		Phone:       req.Phone,
		AmountEuros: req.AmountEuros,
	})
	if err != nil {
		return response.Domain(c, err)
	}
	return c.JSON(session)
}
