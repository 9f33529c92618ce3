package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-ticketing-demo/internal/config"
	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/seed"
	"event-ticketing-demo/internal/services"
	"event-ticketing-demo/internal/store"
	"event-ticketing-demo/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, store.RecordStore) {
	t.Helper()

	s := store.NewMemoryStore()
	require.NoError(t, seed.Populate(s, seed.NewGenerator(42, 10, 3)))

	cfg := &config.Config{AnalyticsWindowDays: 30, TopEventsLimit: 5}
	reseed := func() error {
		if err := s.Reset(); err != nil {
			return err
		}
		return seed.Populate(s, seed.NewGenerator(43, 10, 3))
	}

	handler := NewHandler(
		services.NewUserService(s),
		services.NewEventService(s),
		services.NewTicketService(s),
		services.NewAnalyticsService(s, cfg.AnalyticsWindowDays, cfg.TopEventsLimit),
		reseed,
		cfg,
	)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	handler.RegisterRoutes(app.Group("/api/v1"))
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, utils.Response) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestListEvents(t *testing.T) {
	app, _ := newTestApp(t)

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/v1/events", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)

	events, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, events, 3)
}

func TestLoginSwitchesCurrentUser(t *testing.T) {
	app, s := newTestApp(t)

	users, err := s.Users()
	require.NoError(t, err)
	regular := users[1]
	require.Equal(t, models.RoleUser, regular.Role)

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		fiber.Map{"email": regular.Email})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)

	current, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, regular.ID, current.ID)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login",
		fiber.Map{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	app, s := newTestApp(t)

	users, _ := s.Users()
	doJSON(t, app, http.MethodPost, "/api/v1/auth/login", fiber.Map{"email": users[1].Email})

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/admin/analytics", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPurchaseEndpoint(t *testing.T) {
	app, s := newTestApp(t)

	events, err := s.Events()
	require.NoError(t, err)
	event := events[0]
	tier := event.TicketTypes[0]

	before, _ := s.Tickets()
	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/tickets/purchase", fiber.Map{
		"event_id":       event.ID,
		"ticket_type_id": tier.ID,
		"quantity":       1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "%+v", envelope)

	after, _ := s.Tickets()
	assert.Len(t, after, len(before)+1)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/tickets/purchase", fiber.Map{
		"event_id":       event.ID,
		"ticket_type_id": tier.ID,
		"quantity":       0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransferEndpointRejectsSelfTransfer(t *testing.T) {
	app, s := newTestApp(t)

	current, err := s.CurrentUser()
	require.NoError(t, err)

	tickets, _ := s.Tickets()
	require.NotEmpty(t, tickets)

	resp, envelope := doJSON(t, app,
		http.MethodPost, fmt.Sprintf("/api/v1/tickets/%s/transfer", tickets[0].ID),
		fiber.Map{"recipient_email": current.Email})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Error, "yourself")
}

func TestValidateEndpoint(t *testing.T) {
	app, s := newTestApp(t)

	// Find a seeded ticket that is still active.
	tickets, err := s.Tickets()
	require.NoError(t, err)
	var target *models.Ticket
	for i := range tickets {
		if tickets[i].Status == models.StatusActive {
			target = &tickets[i]
			break
		}
	}
	require.NotNil(t, target, "seed data should contain active tickets")

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/validate", fiber.Map{
		"ticket_id": target.ID,
		"code":      target.ValidationCode,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "%+v", envelope)
	assert.True(t, envelope.Success)

	// Second scan of the same ticket fails: no longer active.
	resp, envelope = doJSON(t, app, http.MethodPost, "/api/v1/validate", fiber.Map{
		"ticket_id": target.ID,
		"code":      target.ValidationCode,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, envelope.Error, "not active")
}

func TestValidateEndpointAcceptsQRPayload(t *testing.T) {
	app, s := newTestApp(t)

	tickets, _ := s.Tickets()
	var target *models.Ticket
	for i := range tickets {
		if tickets[i].Status == models.StatusActive {
			target = &tickets[i]
			break
		}
	}
	require.NotNil(t, target)

	qrData, err := json.Marshal(utils.TicketQRPayload{TicketID: target.ID, Code: target.ValidationCode})
	require.NoError(t, err)

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/validate",
		fiber.Map{"qr_data": string(qrData)})
	require.Equal(t, http.StatusOK, resp.StatusCode, "%+v", envelope)
}

func TestResetRegeneratesData(t *testing.T) {
	app, s := newTestApp(t)

	before, _ := s.Events()
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/admin/reset", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	after, _ := s.Events()
	require.Len(t, after, 3)
	assert.NotEqual(t, before[0].ID, after[0].ID, "reset produces a fresh catalog")
}
