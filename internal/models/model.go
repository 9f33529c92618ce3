package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User roles. Generated data always contains exactly one admin, but nothing
// in the model enforces that.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Ticket statuses. "cancelled" is declared for data compatibility; no
// operation currently produces it.
const (
	StatusActive      = "active"
	StatusUsed        = "used"
	StatusTransferred = "transferred"
	StatusCancelled   = "cancelled"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"` // admin|user
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Time        string       `json:"time"`
	Location    string       `json:"location"`
	Image       string       `json:"image"`
	OrganizerID string       `json:"organizer_id"`
	TicketTypes []TicketType `json:"ticket_types"`
	// TotalTickets is the sum of tier capacities at generation time.
	// SoldTickets is a denormalized counter; the purchase capacity check
	// never trusts it and re-derives from issued tickets instead.
	TotalTickets int `json:"total_tickets"`
	SoldTickets  int `json:"sold_tickets"`
}

type TicketType struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Available   int             `json:"available"` // tier capacity, fixed at generation
	Description string          `json:"description,omitempty"`
}

type Ticket struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	TicketTypeID string    `json:"ticket_type_id"`
	UserID       string    `json:"user_id"` // current owner
	PurchaseDate time.Time `json:"purchase_date"`
	Status       string    `json:"status"`
	// ValidationCode is a 6-character uppercase alphanumeric token, set at
	// creation and never changed. Matching is case-sensitive.
	ValidationCode  string     `json:"validation_code"`
	TransferHistory []Transfer `json:"transfer_history"`
}

// Transfer is an immutable record of one ownership change. The history is
// append-only and never reordered.
type Transfer struct {
	ID           string    `json:"id"`
	TicketID     string    `json:"ticket_id"`
	FromUserID   string    `json:"from_user_id"`
	ToUserID     string    `json:"to_user_id"`
	TransferDate time.Time `json:"transfer_date"`
}

// AnalyticsData is a derived snapshot, never authoritative. Consumers
// recompute it from the raw collections; the persisted copy is advisory.
type AnalyticsData struct {
	TotalEvents              int             `json:"total_events"`
	TotalTickets             int             `json:"total_tickets"`
	TotalUsers               int             `json:"total_users"`
	TotalRevenue             decimal.Decimal `json:"total_revenue"`
	TicketsSoldPerDay        []DailyCount    `json:"tickets_sold_per_day"`
	TopEvents                []EventSales    `json:"top_events"`
	TicketTypeDistribution   []NameCount     `json:"ticket_type_distribution"`
	TicketStatusDistribution []NameCount     `json:"ticket_status_distribution"`
}

type DailyCount struct {
	Date  string `json:"date"` // calendar day, YYYY-MM-DD
	Count int    `json:"count"`
}

type EventSales struct {
	EventID     string `json:"event_id"`
	Title       string `json:"title"`
	SoldTickets int    `json:"sold_tickets"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TicketTypeByID returns the tier with the given ID, or nil.
func (e *Event) TicketTypeByID(id string) *TicketType {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].ID == id {
			return &e.TicketTypes[i]
		}
	}
	return nil
}
