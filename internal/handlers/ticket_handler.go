package handlers

import (
	"event-ticketing-demo/internal/middleware"
	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PurchaseRequest struct {
	EventID      string `json:"event_id" validate:"required"`
	TicketTypeID string `json:"ticket_type_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
}

type TransferRequest struct {
	RecipientEmail string `json:"recipient_email" validate:"required,email"`
}

type ValidateRequest struct {
	TicketID string `json:"ticket_id"`
	Code     string `json:"code"`
	// QRData is the raw scanned payload; when present it supersedes the
	// manual fields.
	QRData string `json:"qr_data"`
}

// MyTickets returns the tickets owned by the current user.
func (h *Handler) MyTickets(c *fiber.Ctx) error {
	user := currentUser(c)

	tickets, err := h.ticketSvc.TicketsForUser(user.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, tickets, "Tickets retrieved")
}

// GetTicket returns one ticket. Non-admins can only see their own.
func (h *Handler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.ticketSvc.GetTicket(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if ticket == nil {
		return utils.Error(c, "Ticket not found", fiber.StatusNotFound)
	}

	user := currentUser(c)
	if user.Role != models.RoleAdmin && ticket.UserID != user.ID {
		return utils.Error(c, "Ticket not found", fiber.StatusNotFound)
	}

	return utils.Success(c, ticket, "Ticket retrieved")
}

// TicketQR renders the ticket's validation payload as a PNG QR code.
func (h *Handler) TicketQR(c *fiber.Ctx) error {
	ticket, err := h.ticketSvc.GetTicket(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if ticket == nil {
		return utils.Error(c, "Ticket not found", fiber.StatusNotFound)
	}

	user := currentUser(c)
	if user.Role != models.RoleAdmin && ticket.UserID != user.ID {
		return utils.Error(c, "Ticket not found", fiber.StatusNotFound)
	}

	png, err := utils.EncodeTicketQR(ticket)
	if err != nil {
		return utils.Error(c, "Failed to render QR code", fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// Purchase creates new tickets for the current user.
func (h *Handler) Purchase(c *fiber.Ctx) error {
	var req PurchaseRequest
	if err := middleware.ValidateBody(c, &req); err != nil {
		return err
	}

	user := currentUser(c)
	tickets, err := h.ticketSvc.Purchase(req.EventID, req.TicketTypeID, user.ID, req.Quantity)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, tickets, "Tickets purchased", fiber.StatusCreated)
}

// Transfer moves one of the current user's tickets to the account matching
// the recipient email. Self-transfer is rejected here, before the lifecycle
// operation runs.
func (h *Handler) Transfer(c *fiber.Ctx) error {
	var req TransferRequest
	if err := middleware.ValidateBody(c, &req); err != nil {
		return err
	}

	user := currentUser(c)
	recipient, err := h.userSvc.GetUserByEmail(req.RecipientEmail)
	if err != nil {
		return serviceError(c, err)
	}
	if recipient == nil {
		return utils.Error(c, "No user found with that email address", fiber.StatusNotFound)
	}
	if recipient.ID == user.ID {
		return utils.Error(c, "You cannot transfer a ticket to yourself", fiber.StatusBadRequest)
	}

	ticket, err := h.ticketSvc.Transfer(c.Params("id"), user.ID, recipient.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, ticket, "Ticket transferred")
}

// Validate checks a ticket at the door, either from a scanned QR payload or
// from manually entered ticket ID and code.
func (h *Handler) Validate(c *fiber.Ctx) error {
	var req ValidateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, "Invalid request body", fiber.StatusBadRequest)
	}

	ticketID, code := req.TicketID, req.Code
	if req.QRData != "" {
		payload, err := utils.DecodeTicketQR(req.QRData)
		if err != nil {
			return utils.Error(c, "Invalid QR code", fiber.StatusBadRequest)
		}
		ticketID, code = payload.TicketID, payload.Code
	}
	if ticketID == "" || code == "" {
		return utils.Error(c, "ticket_id and code are required", fiber.StatusBadRequest)
	}

	ticket, err := h.ticketSvc.Validate(ticketID, code)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, ticket, "Ticket validated")
}
