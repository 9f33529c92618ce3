package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"event-ticketing-demo/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// record is one persisted collection: the key is the collection name, the
// data is its JSON encoding.
type record struct {
	Key  string `gorm:"primaryKey"`
	Data []byte
}

// GormStore keeps every collection as a JSON blob in a single-file SQLite
// database. The whole-collection read/write surface mirrors the flat
// key-value layout the application was designed around; SQLite only provides
// local durability for it.
type GormStore struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewGormStore(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) read(key string) ([]byte, bool, error) {
	var rec record
	if err := s.db.Where("key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return rec.Data, true, nil
}

func (s *GormStore) write(key string, data []byte) error {
	rec := record{Key: key, Data: data}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *GormStore) readJSON(key string, dest interface{}) (bool, error) {
	data, ok, err := s.read(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("corrupt %s collection: %w", key, err)
	}
	return true, nil
}

func (s *GormStore) writeJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.write(key, data)
}

func (s *GormStore) IsInitialized() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.read(KeyInitialized)
	return ok, err
}

func (s *GormStore) MarkInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(KeyInitialized, []byte("true"))
}

// Reset drops every collection, including the initialization marker.
func (s *GormStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Where("1 = 1").Delete(&record{}).Error; err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	return nil
}

func (s *GormStore) Users() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []models.User{}
	if _, err := s.readJSON(KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) SaveUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeJSON(KeyUsers, users)
}

func (s *GormStore) Events() ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := []models.Event{}
	if _, err := s.readJSON(KeyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormStore) SaveEvents(events []models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeJSON(KeyEvents, events)
}

func (s *GormStore) MutateEvents(fn func([]models.Event) ([]models.Event, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := []models.Event{}
	if _, err := s.readJSON(KeyEvents, &events); err != nil {
		return err
	}
	updated, err := fn(events)
	if err != nil {
		return err
	}
	return s.writeJSON(KeyEvents, updated)
}

func (s *GormStore) Tickets() ([]models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := []models.Ticket{}
	if _, err := s.readJSON(KeyTickets, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *GormStore) SaveTickets(tickets []models.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeJSON(KeyTickets, tickets)
}

func (s *GormStore) MutateTickets(fn func([]models.Ticket) ([]models.Ticket, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := []models.Ticket{}
	if _, err := s.readJSON(KeyTickets, &tickets); err != nil {
		return err
	}
	updated, err := fn(tickets)
	if err != nil {
		return err
	}
	return s.writeJSON(KeyTickets, updated)
}

func (s *GormStore) Analytics() (*models.AnalyticsData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data models.AnalyticsData
	ok, err := s.readJSON(KeyAnalytics, &data)
	if err != nil || !ok {
		return nil, err
	}
	return &data, nil
}

func (s *GormStore) SaveAnalytics(data models.AnalyticsData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeJSON(KeyAnalytics, data)
}

func (s *GormStore) CurrentUser() (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user models.User
	ok, err := s.readJSON(KeyCurrentUser, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) SetCurrentUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeJSON(KeyCurrentUser, user)
}
