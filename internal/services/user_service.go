package services

import (
	"strings"

	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/store"

	"github.com/sirupsen/logrus"
)

type UserService struct {
	store store.RecordStore
}

func NewUserService(s store.RecordStore) *UserService {
	return &UserService{store: s}
}

func (s *UserService) Users() ([]models.User, error) {
	users, err := s.store.Users()
	if err != nil {
		return nil, NewServiceError("failed to load users", ErrStoreError, err)
	}
	return users, nil
}

// GetUser returns the user with the given ID, or nil if absent.
func (s *UserService) GetUser(id string) (*models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetUserByEmail matches case-insensitively, the way the transfer form
// resolves recipients.
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	users, err := s.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// CurrentUser returns the active user, or nil when nobody is signed in.
func (s *UserService) CurrentUser() (*models.User, error) {
	user, err := s.store.CurrentUser()
	if err != nil {
		return nil, NewServiceError("failed to load current user", ErrStoreError, err)
	}
	return user, nil
}

// Login switches the active user to the account with the given email. There
// is no credential check; this is a role switch, nothing more.
func (s *UserService) Login(email string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewServiceError("no account with that email", ErrUserNotFound, nil)
	}

	if err := s.store.SetCurrentUser(*user); err != nil {
		return nil, NewServiceError("failed to switch user", ErrStoreError, err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("current user switched")

	return user, nil
}
