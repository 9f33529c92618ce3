package handlers

import (
	"event-ticketing-demo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// ListEvents returns the whole catalog.
func (h *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := h.eventSvc.Events()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, events, "Events retrieved")
}

// GetEvent returns one event by ID.
func (h *Handler) GetEvent(c *fiber.Ctx) error {
	event, err := h.eventSvc.GetEvent(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if event == nil {
		return utils.Error(c, "Event not found", fiber.StatusNotFound)
	}
	return utils.Success(c, event, "Event retrieved")
}

// ListEventTickets returns every ticket issued against an event (admin).
func (h *Handler) ListEventTickets(c *fiber.Ctx) error {
	event, err := h.eventSvc.GetEvent(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if event == nil {
		return utils.Error(c, "Event not found", fiber.StatusNotFound)
	}

	tickets, err := h.eventSvc.TicketsForEvent(event.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, tickets, "Tickets retrieved")
}
