package handlers

import (
	"creditcall/internal/services/auth"
	"creditcall/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth auth.Service
}

func NewAuthHandler(authSvc auth.Service) *AuthHandler {
	return &AuthHandler{auth: authSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "email and password are required")
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return response.Domain(c, err)
	}
	return c.JSON(result)
}
