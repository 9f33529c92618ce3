package store

import (
	"sync"

	"event-ticketing-demo/internal/models"
)

// MemoryStore is an in-memory RecordStore with the same whole-collection
// semantics as the durable store. Used by tests and anywhere a throwaway
// store is enough.
type MemoryStore struct {
	mu          sync.Mutex
	initialized bool
	users       []models.User
	events      []models.Event
	tickets     []models.Ticket
	analytics   *models.AnalyticsData
	currentUser *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) IsInitialized() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.initialized, nil
}

func (s *MemoryStore) MarkInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	return nil
}

func (s *MemoryStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = false
	s.users = nil
	s.events = nil
	s.tickets = nil
	s.analytics = nil
	s.currentUser = nil
	return nil
}

func (s *MemoryStore) Users() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.User{}, s.users...), nil
}

func (s *MemoryStore) SaveUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append([]models.User{}, users...)
	return nil
}

func (s *MemoryStore) Events() ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Event{}, s.events...), nil
}

func (s *MemoryStore) SaveEvents(events []models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append([]models.Event{}, events...)
	return nil
}

func (s *MemoryStore) MutateEvents(fn func([]models.Event) ([]models.Event, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(append([]models.Event{}, s.events...))
	if err != nil {
		return err
	}
	s.events = updated
	return nil
}

func (s *MemoryStore) Tickets() ([]models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Ticket{}, s.tickets...), nil
}

func (s *MemoryStore) SaveTickets(tickets []models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = append([]models.Ticket{}, tickets...)
	return nil
}

func (s *MemoryStore) MutateTickets(fn func([]models.Ticket) ([]models.Ticket, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(append([]models.Ticket{}, s.tickets...))
	if err != nil {
		return err
	}
	s.tickets = updated
	return nil
}

func (s *MemoryStore) Analytics() (*models.AnalyticsData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.analytics == nil {
		return nil, nil
	}
	data := *s.analytics
	return &data, nil
}

func (s *MemoryStore) SaveAnalytics(data models.AnalyticsData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analytics = &data
	return nil
}

func (s *MemoryStore) CurrentUser() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return nil, nil
	}
	user := *s.currentUser
	return &user, nil
}

func (s *MemoryStore) SetCurrentUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = &user
	return nil
}
