package store

import (
	"event-ticketing-demo/internal/models"
)

// Collection keys. The persisted layout is a flat set of JSON collections
// plus the current-user scalar and an initialization marker.
const (
	KeyUsers       = "users"
	KeyEvents      = "events"
	KeyTickets     = "tickets"
	KeyAnalytics   = "analytics"
	KeyCurrentUser = "currentUser"
	KeyInitialized = "initialized"
)

// RecordStore is the persistence capability the core depends on. Reads of an
// absent collection return an empty slice, never an error; the absent current
// user is a nil pointer. Seeding is explicit: callers check IsInitialized and
// call MarkInitialized themselves, there is no lazy seeding on first read.
//
// Saves replace the whole collection. The Mutate variants run the callback
// under the store's internal lock so a read-modify-write cannot interleave
// with another writer.
type RecordStore interface {
	IsInitialized() (bool, error)
	MarkInitialized() error
	Reset() error

	Users() ([]models.User, error)
	SaveUsers(users []models.User) error

	Events() ([]models.Event, error)
	SaveEvents(events []models.Event) error
	MutateEvents(fn func(events []models.Event) ([]models.Event, error)) error

	Tickets() ([]models.Ticket, error)
	SaveTickets(tickets []models.Ticket) error
	MutateTickets(fn func(tickets []models.Ticket) ([]models.Ticket, error)) error

	Analytics() (*models.AnalyticsData, error)
	SaveAnalytics(data models.AnalyticsData) error

	CurrentUser() (*models.User, error)
	SetCurrentUser(user models.User) error
}
