package handlers

import (
	"event-ticketing-demo/internal/config"
	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/services"
	"event-ticketing-demo/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	userSvc      *services.UserService
	eventSvc     *services.EventService
	ticketSvc    *services.TicketService
	analyticsSvc *services.AnalyticsService
	reseed       func() error
	cfg          *config.Config
}

// NewHandler wires the HTTP surface. reseed regenerates the dataset for the
// admin reset endpoint.
func NewHandler(
	userSvc *services.UserService,
	eventSvc *services.EventService,
	ticketSvc *services.TicketService,
	analyticsSvc *services.AnalyticsService,
	reseed func() error,
	cfg *config.Config,
) *Handler {
	return &Handler{
		userSvc:      userSvc,
		eventSvc:     eventSvc,
		ticketSvc:    ticketSvc,
		analyticsSvc: analyticsSvc,
		reseed:       reseed,
		cfg:          cfg,
	}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	// Public routes
	auth := router.Group("/auth")
	{
		auth.Post("/login", h.Login)
		auth.Get("/me", h.Me)
	}

	events := router.Group("/events")
	{
		events.Get("/", h.ListEvents)
		events.Get("/:id", h.GetEvent)
	}

	// Routes requiring a signed-in user
	signedIn := router.Group("", h.CurrentUserMiddleware())
	{
		signedIn.Get("/users", h.ListUsers)

		tickets := signedIn.Group("/tickets")
		{
			tickets.Get("/", h.MyTickets)
			tickets.Post("/purchase", h.Purchase)
			tickets.Get("/:id", h.GetTicket)
			tickets.Get("/:id/qr", h.TicketQR)
			tickets.Post("/:id/transfer", h.Transfer)
		}

		// Admin only
		admin := signedIn.Group("", h.AdminOnlyMiddleware())
		{
			admin.Post("/validate", h.Validate)
			admin.Get("/events/:id/tickets", h.ListEventTickets)
			admin.Get("/admin/analytics", h.Analytics)
			admin.Post("/admin/reset", h.Reset)
		}
	}
}

// ErrorHandler handles global errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		logrus.WithError(err).Error("unhandled request error")
	}

	return utils.Error(c, message, code)
}

// CurrentUserMiddleware resolves the stored current user and stashes it in
// the request context. There are no credentials; "signed in" just means a
// current user has been selected.
func (h *Handler) CurrentUserMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := h.userSvc.CurrentUser()
		if err != nil {
			return utils.Error(c, "Failed to load current user", fiber.StatusInternalServerError)
		}
		if user == nil {
			return utils.Error(c, "Please sign in first", fiber.StatusUnauthorized)
		}
		c.Locals("current_user", user)
		return c.Next()
	}
}

func (h *Handler) AdminOnlyMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := currentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			return utils.Error(c, "Admin access required", fiber.StatusForbidden)
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("current_user").(*models.User)
	return user
}

// serviceError maps a failed operation to an HTTP response, preserving the
// service's human-readable reason.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch services.CodeOf(err) {
	case services.ErrUserNotFound, services.ErrEventNotFound,
		services.ErrTicketNotFound, services.ErrTicketTypeNotFound:
		status = fiber.StatusNotFound
	case services.ErrNotTicketOwner:
		status = fiber.StatusForbidden
	case services.ErrStoreError, "":
		status = fiber.StatusInternalServerError
	}

	if serr, ok := err.(*services.ServiceError); ok {
		return utils.Error(c, serr.Message, status)
	}
	return utils.Error(c, "Something went wrong", status)
}
