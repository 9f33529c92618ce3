package services

import (
	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/store"
)

type EventService struct {
	store store.RecordStore
}

func NewEventService(s store.RecordStore) *EventService {
	return &EventService{store: s}
}

func (s *EventService) Events() ([]models.Event, error) {
	events, err := s.store.Events()
	if err != nil {
		return nil, NewServiceError("failed to load events", ErrStoreError, err)
	}
	return events, nil
}

// GetEvent returns the event with the given ID, or nil if absent.
func (s *EventService) GetEvent(id string) (*models.Event, error) {
	events, err := s.Events()
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, nil
}

// TicketsForEvent returns every ticket issued against the event.
func (s *EventService) TicketsForEvent(eventID string) ([]models.Ticket, error) {
	tickets, err := s.store.Tickets()
	if err != nil {
		return nil, NewServiceError("failed to load tickets", ErrStoreError, err)
	}

	matched := []models.Ticket{}
	for _, t := range tickets {
		if t.EventID == eventID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}
