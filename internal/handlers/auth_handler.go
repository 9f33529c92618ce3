package handlers

import (
	"event-ticketing-demo/internal/middleware"
	"event-ticketing-demo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login switches the current user to the account matching the email. This
// is a demo role switch; no password is involved.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := middleware.ValidateBody(c, &req); err != nil {
		return err
	}

	user, err := h.userSvc.Login(req.Email)
	if err != nil {
		return serviceError(c, err)
	}

	return utils.Success(c, user, "Signed in")
}

// Me returns the current user, or null when nobody is signed in.
func (h *Handler) Me(c *fiber.Ctx) error {
	user, err := h.userSvc.CurrentUser()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, user, "Current user")
}

// ListUsers returns every account, used by the transfer form to resolve
// recipients.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userSvc.Users()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, users, "Users retrieved")
}
