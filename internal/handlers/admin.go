package handlers

import (
	"versahook/internal/services/ledger"
	"versahook/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the privileged hook operations.
type AdminHandler struct {
	service ledger.Service
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(s ledger.Service) *AdminHandler {
	return &AdminHandler{service: s}
}

// BlacklistUser handles POST /api/admin/blacklist/:id requests.
// Blacklisting is idempotent and permanent.
func (h *AdminHandler) BlacklistUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if userID == "" {
		return response.BadRequest(c, "user id is required")
	}

	if err := h.service.BlacklistUser(c.Context(), userID); err != nil {
		return response.ServerError(c, err.Error())
	}

	record, err := h.service.GetUserState(c.Context(), userID)
	if err != nil {
		return response.ServerError(c, err.Error())
	}
	return response.Success(c, "user blacklisted", record)
}

// SetPause handles POST /api/admin/pause requests.
func (h *AdminHandler) SetPause(c *fiber.Ctx) error {
	var req struct {
		Paused bool `json:"paused"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	h.service.SetPaused(c.Context(), req.Paused)
	return response.Success(c, "pause status updated", fiber.Map{"is_paused": req.Paused})
}
