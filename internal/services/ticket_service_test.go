package services

import (
	"testing"
	"time"

	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureStore(t *testing.T) store.RecordStore {
	t.Helper()

	s := store.NewMemoryStore()
	require.NoError(t, s.SaveUsers([]models.User{
		{ID: "admin-1", Name: "Admin User", Email: "admin@ticketdesk.local", Role: models.RoleAdmin},
		{ID: "user-a", Name: "Alice Walker", Email: "alice@example.com", Role: models.RoleUser},
		{ID: "user-b", Name: "Bob Harris", Email: "bob@example.com", Role: models.RoleUser},
	}))
	require.NoError(t, s.SaveEvents([]models.Event{
		{
			ID:          "event-1",
			Title:       "Electric Summit",
			OrganizerID: "admin-1",
			TicketTypes: []models.TicketType{
				{ID: "type-general", Name: "General Admission", Price: decimal.New(2500, -2), Available: 3},
				{ID: "type-vip", Name: "VIP", Price: decimal.New(9900, -2), Available: 1},
			},
			TotalTickets: 4,
			SoldTickets:  1,
		},
	}))
	require.NoError(t, s.SaveTickets([]models.Ticket{
		{
			ID:              "ticket-1",
			EventID:         "event-1",
			TicketTypeID:    "type-general",
			UserID:          "user-a",
			PurchaseDate:    time.Now().Add(-24 * time.Hour),
			Status:          models.StatusActive,
			ValidationCode:  "AB12CD",
			TransferHistory: []models.Transfer{},
		},
	}))
	return s
}

func TestPurchase_CreatesTicketsAndBumpsSoldCounter(t *testing.T) {
	s := fixtureStore(t)
	svc := NewTicketService(s)

	created, err := svc.Purchase("event-1", "type-general", "user-b", 2)
	require.NoError(t, err)
	require.Len(t, created, 2)

	for _, ticket := range created {
		assert.Equal(t, models.StatusActive, ticket.Status)
		assert.Equal(t, "user-b", ticket.UserID)
		assert.Len(t, ticket.ValidationCode, 6)
		assert.Empty(t, ticket.TransferHistory)
	}
	assert.NotEqual(t, created[0].ValidationCode, created[1].ValidationCode)

	tickets, err := s.Tickets()
	require.NoError(t, err)
	assert.Len(t, tickets, 3)

	events, err := s.Events()
	require.NoError(t, err)
	assert.Equal(t, 3, events[0].SoldTickets, "counter incremented by quantity")
}

func TestPurchase_RejectsWhenCapacityExhausted(t *testing.T) {
	s := fixtureStore(t)
	svc := NewTicketService(s)

	// One general ticket already issued against a capacity of 3.
	_, err := svc.Purchase("event-1", "type-general", "user-b", 3)
	require.Error(t, err)
	assert.Equal(t, ErrInsufficientCapacity, CodeOf(err))

	tickets, _ := s.Tickets()
	assert.Len(t, tickets, 1, "failed purchase must not create tickets")

	// Exactly the remaining headroom is fine.
	_, err = svc.Purchase("event-1", "type-general", "user-b", 2)
	require.NoError(t, err)
}

func TestPurchase_UnknownReferences(t *testing.T) {
	svc := NewTicketService(fixtureStore(t))

	_, err := svc.Purchase("missing", "type-general", "user-b", 1)
	assert.Equal(t, ErrEventNotFound, CodeOf(err))

	_, err = svc.Purchase("event-1", "missing", "user-b", 1)
	assert.Equal(t, ErrTicketTypeNotFound, CodeOf(err))

	_, err = svc.Purchase("event-1", "type-general", "user-b", 0)
	assert.Equal(t, ErrInvalidInput, CodeOf(err))
}

func TestTransfer_WrongOwnerLeavesTicketUntouched(t *testing.T) {
	s := fixtureStore(t)
	svc := NewTicketService(s)

	_, err := svc.Transfer("ticket-1", "user-b", "user-a")
	require.Error(t, err)
	assert.Equal(t, ErrNotTicketOwner, CodeOf(err))

	tickets, _ := s.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "user-a", tickets[0].UserID)
	assert.Empty(t, tickets[0].TransferHistory)
}

func TestTransfer_MovesOwnershipAndAppendsHistory(t *testing.T) {
	s := fixtureStore(t)
	svc := NewTicketService(s)

	ticket, err := svc.Transfer("ticket-1", "user-a", "user-b")
	require.NoError(t, err)

	assert.Equal(t, "user-b", ticket.UserID)
	require.Len(t, ticket.TransferHistory, 1)
	assert.Equal(t, "user-a", ticket.TransferHistory[0].FromUserID)
	assert.Equal(t, "user-b", ticket.TransferHistory[0].ToUserID)
	assert.Equal(t, models.StatusActive, ticket.Status, "transfer never touches status")

	// A second hop appends rather than rewrites.
	ticket, err = svc.Transfer("ticket-1", "user-b", "user-a")
	require.NoError(t, err)
	assert.Len(t, ticket.TransferHistory, 2)
}

func TestTransfer_UnknownTicket(t *testing.T) {
	svc := NewTicketService(fixtureStore(t))

	_, err := svc.Transfer("missing", "user-a", "user-b")
	assert.Equal(t, ErrTicketNotFound, CodeOf(err))
}

func TestValidate_SucceedsOnceThenFails(t *testing.T) {
	s := fixtureStore(t)
	svc := NewTicketService(s)

	ticket, err := svc.Validate("ticket-1", "AB12CD")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUsed, ticket.Status)

	_, err = svc.Validate("ticket-1", "AB12CD")
	require.Error(t, err)
	assert.Equal(t, ErrTicketNotActive, CodeOf(err))
}

func TestValidate_CodeIsCaseSensitive(t *testing.T) {
	s := fixtureStore(t)
	svc := NewTicketService(s)

	_, err := svc.Validate("ticket-1", "ab12cd")
	require.Error(t, err)
	assert.Equal(t, ErrCodeMismatch, CodeOf(err))

	tickets, _ := s.Tickets()
	assert.Equal(t, models.StatusActive, tickets[0].Status, "failed validation must not flip status")

	_, err = svc.Validate("ticket-1", "AB12CD")
	assert.NoError(t, err)
}

func TestValidate_TransferredTicketIsNotValidatable(t *testing.T) {
	s := fixtureStore(t)
	require.NoError(t, s.MutateTickets(func(tickets []models.Ticket) ([]models.Ticket, error) {
		tickets[0].Status = models.StatusTransferred
		return tickets, nil
	}))

	_, err := NewTicketService(s).Validate("ticket-1", "AB12CD")
	require.Error(t, err)
	assert.Equal(t, ErrTicketNotActive, CodeOf(err))
}
