package handlers

import (
	"creditcall/internal/services/creators"
	"creditcall/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CreatorsHandler struct {
	creators creators.Service
}

func NewCreatorsHandler(creatorsSvc creators.Service) *CreatorsHandler {
	return &CreatorsHandler{creators: creatorsSvc}
}

// GetCreatorData returns a creator's wallet, summary and recent activity.
func (h *CreatorsHandler) GetCreatorData(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if handle == "" {
		return response.BadRequest(c, "handle is required")
	}

	data, err := h.creators.GetCreatorData(c.UserContext(), handle)
	if err != nil {
		return response.Domain(c, err)
	}
	return c.JSON(data)
}
