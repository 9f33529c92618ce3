package services

import (
	"fmt"
	"time"

	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/monitoring"
	"event-ticketing-demo/internal/store"
	"event-ticketing-demo/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TicketService struct {
	store store.RecordStore
}

func NewTicketService(s store.RecordStore) *TicketService {
	return &TicketService{store: s}
}

// TicketsForUser returns the tickets currently owned by the user.
func (s *TicketService) TicketsForUser(userID string) ([]models.Ticket, error) {
	tickets, err := s.store.Tickets()
	if err != nil {
		return nil, NewServiceError("failed to load tickets", ErrStoreError, err)
	}

	owned := []models.Ticket{}
	for _, t := range tickets {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

// GetTicket returns the ticket with the given ID, or nil if absent.
func (s *TicketService) GetTicket(id string) (*models.Ticket, error) {
	tickets, err := s.store.Tickets()
	if err != nil {
		return nil, NewServiceError("failed to load tickets", ErrStoreError, err)
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return &tickets[i], nil
		}
	}
	return nil, nil
}

// Purchase issues quantity new tickets for the given event tier, owned by the
// given user. Capacity is authoritative: the remaining headroom is the tier
// capacity minus tickets already issued against it, regardless of the event's
// denormalized sold counter. That counter is still incremented on success so
// the catalog view stays consistent with the original layout.
func (s *TicketService) Purchase(eventID, ticketTypeID, userID string, quantity int) ([]models.Ticket, error) {
	if quantity < 1 {
		return nil, NewServiceError("quantity must be at least 1", ErrInvalidInput, nil)
	}

	events, err := s.store.Events()
	if err != nil {
		return nil, NewServiceError("failed to load events", ErrStoreError, err)
	}

	var event *models.Event
	for i := range events {
		if events[i].ID == eventID {
			event = &events[i]
			break
		}
	}
	if event == nil {
		return nil, NewServiceError("event not found", ErrEventNotFound, nil)
	}

	ticketType := event.TicketTypeByID(ticketTypeID)
	if ticketType == nil {
		return nil, NewServiceError("ticket type not found", ErrTicketTypeNotFound, nil)
	}

	created := make([]models.Ticket, 0, quantity)
	now := time.Now()

	err = s.store.MutateTickets(func(tickets []models.Ticket) ([]models.Ticket, error) {
		issued := 0
		for _, t := range tickets {
			if t.TicketTypeID == ticketTypeID {
				issued++
			}
		}
		if issued+quantity > ticketType.Available {
			return nil, NewServiceError(
				fmt.Sprintf("only %d %s tickets left", ticketType.Available-issued, ticketType.Name),
				ErrInsufficientCapacity,
				nil,
			)
		}

		for i := 0; i < quantity; i++ {
			code, err := utils.GenerateValidationCode()
			if err != nil {
				return nil, NewServiceError("failed to generate validation code", ErrStoreError, err)
			}
			ticket := models.Ticket{
				ID:              uuid.New().String(),
				EventID:         eventID,
				TicketTypeID:    ticketTypeID,
				UserID:          userID,
				PurchaseDate:    now,
				Status:          models.StatusActive,
				ValidationCode:  code,
				TransferHistory: []models.Transfer{},
			}
			created = append(created, ticket)
			tickets = append(tickets, ticket)
		}
		return tickets, nil
	})
	if err != nil {
		monitoring.TrackOperation("purchase", false)
		return nil, err
	}

	if err := s.store.MutateEvents(func(events []models.Event) ([]models.Event, error) {
		for i := range events {
			if events[i].ID == eventID {
				events[i].SoldTickets += quantity
				break
			}
		}
		return events, nil
	}); err != nil {
		return nil, NewServiceError("failed to update event counters", ErrStoreError, err)
	}

	monitoring.TrackOperation("purchase", true)
	monitoring.TrackPurchase(eventID, quantity)
	logrus.WithFields(logrus.Fields{
		"event_id":       eventID,
		"ticket_type_id": ticketTypeID,
		"user_id":        userID,
		"quantity":       quantity,
	}).Info("tickets purchased")

	return created, nil
}

// Transfer moves a ticket to a new owner and appends one history entry. It
// fails without touching the record when the caller is not the current
// owner. Status is deliberately left unchanged: the validation lifecycle is
// independent of ownership changes, and the "transferred" status value is a
// display marker only the seed data produces. Self-transfer is a caller
// concern, not checked here.
func (s *TicketService) Transfer(ticketID, fromUserID, toUserID string) (*models.Ticket, error) {
	var transferred *models.Ticket

	err := s.store.MutateTickets(func(tickets []models.Ticket) ([]models.Ticket, error) {
		idx := -1
		for i := range tickets {
			if tickets[i].ID == ticketID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, NewServiceError("ticket not found", ErrTicketNotFound, nil)
		}
		if tickets[idx].UserID != fromUserID {
			return nil, NewServiceError("ticket is not owned by the sender", ErrNotTicketOwner, nil)
		}

		tickets[idx].TransferHistory = append(tickets[idx].TransferHistory, models.Transfer{
			ID:           uuid.New().String(),
			TicketID:     ticketID,
			FromUserID:   fromUserID,
			ToUserID:     toUserID,
			TransferDate: time.Now(),
		})
		tickets[idx].UserID = toUserID

		result := tickets[idx]
		transferred = &result
		return tickets, nil
	})
	if err != nil {
		monitoring.TrackOperation("transfer", false)
		return nil, err
	}

	monitoring.TrackOperation("transfer", true)
	logrus.WithFields(logrus.Fields{
		"ticket_id": ticketID,
		"from":      fromUserID,
		"to":        toUserID,
	}).Info("ticket transferred")

	return transferred, nil
}

// Validate checks a ticket's code at the door and marks it used. The match
// is exact and case-sensitive, and only active tickets pass; a second call
// with the same code fails because the ticket is no longer active.
func (s *TicketService) Validate(ticketID, code string) (*models.Ticket, error) {
	var validated *models.Ticket

	err := s.store.MutateTickets(func(tickets []models.Ticket) ([]models.Ticket, error) {
		idx := -1
		for i := range tickets {
			if tickets[i].ID == ticketID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, NewServiceError("ticket not found", ErrTicketNotFound, nil)
		}
		if tickets[idx].ValidationCode != code {
			return nil, NewServiceError("validation code does not match", ErrCodeMismatch, nil)
		}
		if tickets[idx].Status != models.StatusActive {
			return nil, NewServiceError(
				fmt.Sprintf("ticket is not active (status: %s)", tickets[idx].Status),
				ErrTicketNotActive,
				nil,
			)
		}

		tickets[idx].Status = models.StatusUsed

		result := tickets[idx]
		validated = &result
		return tickets, nil
	})
	if err != nil {
		monitoring.TrackOperation("validate", false)
		return nil, err
	}

	monitoring.TrackOperation("validate", true)
	logrus.WithField("ticket_id", ticketID).Info("ticket validated")

	return validated, nil
}
