package handlers

import (
	"strconv"

	"event-ticketing-demo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Analytics recomputes the dashboard projection from the raw collections.
// The days query parameter overrides the configured trailing window.
func (h *Handler) Analytics(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "0"))

	data, err := h.analyticsSvc.Compute(days)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, data, "Analytics computed")
}

// Reset wipes the store and generates a fresh dataset.
func (h *Handler) Reset(c *fiber.Ctx) error {
	if err := h.reseed(); err != nil {
		return utils.Error(c, "Failed to reset demo data", fiber.StatusInternalServerError)
	}
	return utils.Success(c, nil, "Demo data regenerated")
}
