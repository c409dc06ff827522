// Package middleware provides the HTTP middleware for the admin surfaces:
// JWT validation and role gating for the fiber router.
package middleware

import (
	"log"
	"strings"

	"creditcall/internal/models"
	"creditcall/internal/services/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates bearer tokens and stores the claims in the
// request context under "claims".
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	if authService == nil {
		panic("auth service is required")
	}
	return &AuthMiddleware{authService: authService}
}

func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	claims, err := m.authService.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		log.Printf("token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	// The account behind the token must still exist.
	if _, err := m.authService.GetUserByID(c.UserContext(), claims.UserID); err != nil {
		log.Printf("user %s from token not found", claims.UserID)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	return c.Next()
}

// RequireGodAdmin gates platform-admin-only routes.
func RequireGodAdmin(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}
	if !claims.IsGodAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
	}
	return c.Next()
}

// RequireWebhookSecret gates machine-to-machine webhook routes on a shared
// secret header. Payment-processor webhooks are not behind this; they carry
// their own signature.
func RequireWebhookSecret(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" || c.Get("X-Webhook-Secret") != secret {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid webhook secret"})
		}
		return c.Next()
	}
}
