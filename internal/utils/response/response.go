package response

import (
	apperr "creditcall/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

// Domain maps a service error to its HTTP status by kind. External and
// persistence failures return 5xx so webhook senders redeliver; client and
// not-found failures return 4xx so they do not.
func Domain(c *fiber.Ctx, err error) error {
	if de, ok := err.(*apperr.DomainError); ok {
		status := fiber.StatusInternalServerError
		switch de.Kind {
		case apperr.KindClient:
			status = fiber.StatusBadRequest
			if de.Code == apperr.ErrAuthVerificationFailed.Code {
				status = fiber.StatusUnauthorized
			}
		case apperr.KindNotFound:
			status = fiber.StatusNotFound
		case apperr.KindExternal:
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"error": de.Message,
			"code":  de.Code,
		})
	}
	return ServerError(c, "internal error")
}
