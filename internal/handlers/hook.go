package handlers

import (
	"errors"

	"versahook/internal/repositories"
	"versahook/internal/services/ledger"
	"versahook/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// HookHandler exposes the transfer-simulation endpoints.
type HookHandler struct {
	service ledger.Service
	journal repositories.JournalRepository
}

// NewHookHandler creates a new HookHandler. The journal may be nil when
// history endpoints are not wired (e.g. in-memory deployments).
func NewHookHandler(s ledger.Service, journal repositories.JournalRepository) *HookHandler {
	return &HookHandler{service: s, journal: journal}
}

// SimulateTransfer handles POST /api/hook/simulate requests.
func (h *HookHandler) SimulateTransfer(c *fiber.Ctx) error {
	var req struct {
		UserID string `json:"user_id"`
		Amount uint64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}
	if req.UserID == "" {
		return response.BadRequest(c, "user_id is required")
	}

	outcome, err := h.service.SimulateTransfer(c.Context(), req.UserID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrUserBlacklisted):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "blacklisted",
			})
		case errors.Is(err, ledger.ErrHookPaused):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"error":   "paused",
			})
		default:
			return response.ServerError(c, err.Error())
		}
	}

	return c.JSON(outcome)
}

// GetUserState handles GET /api/hook/users/:id requests.
func (h *HookHandler) GetUserState(c *fiber.Ctx) error {
	userID := c.Params("id")

	record, err := h.service.GetUserState(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			return response.NotFound(c, "user not found")
		}
		return response.ServerError(c, err.Error())
	}

	return response.Success(c, "user state", record)
}

// GetUserTransfers handles GET /api/hook/users/:id/transfers requests.
func (h *HookHandler) GetUserTransfers(c *fiber.Ctx) error {
	if h.journal == nil {
		return response.NotFound(c, "transfer history not available")
	}

	userID := c.Params("id")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	entries, err := h.journal.ListByUser(c.Context(), userID, limit, offset)
	if err != nil {
		return response.ServerError(c, "failed to load transfer history")
	}

	return response.Success(c, "transfer history", entries)
}

// GetTransfer handles GET /api/hook/transfers/:reference requests.
func (h *HookHandler) GetTransfer(c *fiber.Ctx) error {
	if h.journal == nil {
		return response.NotFound(c, "transfer history not available")
	}

	entry, err := h.journal.GetByReference(c.Context(), c.Params("reference"))
	if err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return response.NotFound(c, "transfer not found")
		}
		return response.ServerError(c, "failed to load transfer")
	}

	return response.Success(c, "transfer", entry)
}

// GetStats handles GET /api/hook/stats requests.
func (h *HookHandler) GetStats(c *fiber.Ctx) error {
	return response.Success(c, "hook stats", h.service.Stats(c.Context()))
}
