// Package seed synthesizes the demo dataset: one admin plus randomized
// regular users, an event catalog with priced tiers, and a ticket population
// with realistic ownership, transfer, and usage distributions.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/services"
	"event-ticketing-demo/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Probabilities observed in the shipped demo data.
	usedProbability        = 0.10 // ticket already scanned at the door
	transferProbability    = 0.20 // ticket changed hands at least once
	transferredProbability = 0.30 // transferred ticket displayed as such

	purchaseWindowDays = 30
	maxSoldShare       = 0.8
)

// Generator produces the whole dataset from a single seeded source, so the
// same seed always yields the same population.
type Generator struct {
	rng *rand.Rand
	now time.Time

	UserCount  int
	EventCount int

	// Snapshot parameters for the advisory analytics record.
	WindowDays int
	TopEvents  int
}

func NewGenerator(seed int64, userCount, eventCount int) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		now:        time.Now(),
		UserCount:  userCount,
		EventCount: eventCount,
		WindowDays: 30,
		TopEvents:  5,
	}
}

// Dataset is everything one generation run produces. Analytics is advisory;
// consumers recompute from the raw collections.
type Dataset struct {
	Users     []models.User
	Events    []models.Event
	Tickets   []models.Ticket
	Analytics models.AnalyticsData
}

func (g *Generator) Generate() *Dataset {
	users := g.generateUsers()
	events := g.generateEvents(users)
	tickets := g.generateTickets(events, users)
	analytics := services.BuildAnalytics(users, events, tickets, g.WindowDays, g.TopEvents, g.now)

	return &Dataset{
		Users:     users,
		Events:    events,
		Tickets:   tickets,
		Analytics: *analytics,
	}
}

// generateUsers returns one fixed administrator followed by randomized
// regular users. The admin is always first so it can become the default
// current user.
func (g *Generator) generateUsers() []models.User {
	users := make([]models.User, 0, g.UserCount)
	users = append(users, models.User{
		ID:        "admin-1",
		Name:      "Admin User",
		Email:     "admin@ticketdesk.local",
		Role:      models.RoleAdmin,
		Avatar:    g.avatar(),
		CreatedAt: g.now,
	})

	for i := 1; i < g.UserCount; i++ {
		name := g.fullName()
		users = append(users, models.User{
			ID:        g.id(),
			Name:      name,
			Email:     g.email(name, i),
			Role:      models.RoleUser,
			Avatar:    g.avatar(),
			CreatedAt: g.now,
		})
	}

	return users
}

// generateEvents builds the catalog. Every event gets a General Admission
// and a VIP tier; half of them also get an Early Bird tier. The sold count
// is drawn up to 80% of total capacity.
func (g *Generator) generateEvents(users []models.User) []models.Event {
	admins := []models.User{}
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			admins = append(admins, u)
		}
	}

	events := make([]models.Event, 0, g.EventCount)
	for i := 0; i < g.EventCount; i++ {
		ticketTypes := []models.TicketType{
			{
				ID:          g.id(),
				Name:        "General Admission",
				Price:       g.price(10, 50),
				Available:   g.between(50, 200),
				Description: "Standard entry ticket",
			},
			{
				ID:          g.id(),
				Name:        "VIP",
				Price:       g.price(80, 150),
				Available:   g.between(10, 50),
				Description: "Premium experience with special perks",
			},
		}
		if g.rng.Float64() < 0.5 {
			ticketTypes = append(ticketTypes, models.TicketType{
				ID:          g.id(),
				Name:        "Early Bird",
				Price:       g.price(5, 25),
				Available:   g.between(20, 100),
				Description: "Limited early discounted tickets",
			})
		}

		totalTickets := 0
		for _, tt := range ticketTypes {
			totalTickets += tt.Available
		}
		soldTickets := g.rng.Intn(int(float64(totalTickets)*maxSoldShare) + 1)

		events = append(events, models.Event{
			ID:           g.id(),
			Title:        g.eventTitle(),
			Description:  g.eventDescription(),
			Date:         g.now.AddDate(0, 0, g.between(7, 365)),
			Time:         fmt.Sprintf("%d:00", g.between(12, 20)),
			Location:     g.location(),
			Image:        fmt.Sprintf("https://picsum.photos/seed/%d/800/500", i+1),
			OrganizerID:  admins[g.rng.Intn(len(admins))].ID,
			TicketTypes:  ticketTypes,
			TotalTickets: totalTickets,
			SoldTickets:  soldTickets,
		})
	}

	return events
}

// generateTickets materializes each event's sold count as ticket records,
// spread across tiers proportionally to capacity.
func (g *Generator) generateTickets(events []models.Event, users []models.User) []models.Ticket {
	regulars := []models.User{}
	for _, u := range users {
		if u.Role == models.RoleUser {
			regulars = append(regulars, u)
		}
	}

	tickets := []models.Ticket{}
	for _, event := range events {
		distribution := DistributeTickets(event.TicketTypes, event.SoldTickets)

		for typeIndex, ticketType := range event.TicketTypes {
			for i := 0; i < distribution[typeIndex]; i++ {
				tickets = append(tickets, g.generateTicket(event, ticketType, regulars))
			}
		}
	}

	return tickets
}

func (g *Generator) generateTicket(event models.Event, ticketType models.TicketType, regulars []models.User) models.Ticket {
	owner := regulars[g.rng.Intn(len(regulars))]
	purchased := g.now.Add(-time.Duration(g.rng.Int63n(int64(purchaseWindowDays * 24 * time.Hour))))

	status := models.StatusActive
	if g.rng.Float64() < usedProbability {
		status = models.StatusUsed
	}

	ticket := models.Ticket{
		ID:              g.id(),
		EventID:         event.ID,
		TicketTypeID:    ticketType.ID,
		UserID:          owner.ID,
		PurchaseDate:    purchased,
		Status:          status,
		ValidationCode:  g.validationCode(),
		TransferHistory: []models.Transfer{},
	}

	if g.rng.Float64() < transferProbability {
		g.attachTransferChain(&ticket, regulars)
	}

	return ticket
}

// attachTransferChain appends 1-2 sequential transfers. Each hop goes to a
// user distinct from the current holder and lands 1-5 days after the
// previous hop, so timestamps are strictly increasing. The final recipient
// becomes the owner, and some transferred tickets get the display status to
// match (overriding an earlier "used" draw; the display status wins).
func (g *Generator) attachTransferChain(ticket *models.Ticket, regulars []models.User) {
	hops := g.rng.Intn(2) + 1
	holder := ticket.UserID
	when := ticket.PurchaseDate

	for i := 0; i < hops; i++ {
		recipient := holder
		for recipient == holder {
			recipient = regulars[g.rng.Intn(len(regulars))].ID
		}

		when = when.AddDate(0, 0, g.between(1, 5))
		ticket.TransferHistory = append(ticket.TransferHistory, models.Transfer{
			ID:           g.id(),
			TicketID:     ticket.ID,
			FromUserID:   holder,
			ToUserID:     recipient,
			TransferDate: when,
		})
		holder = recipient
	}

	ticket.UserID = holder
	if g.rng.Float64() < transferredProbability {
		ticket.Status = models.StatusTransferred
	}
}

// DistributeTickets splits totalSold across the tiers proportionally to
// each tier's capacity share. All tiers but the last get
// floor(totalSold * capacity/totalCapacity) capped at their capacity; the
// last tier absorbs the remainder, also capped. The sum never exceeds
// totalSold but can fall short when caps bind; no rebalancing is attempted.
func DistributeTickets(ticketTypes []models.TicketType, totalSold int) []int {
	distribution := make([]int, 0, len(ticketTypes))
	totalAvailable := 0
	for _, tt := range ticketTypes {
		totalAvailable += tt.Available
	}

	remaining := totalSold
	for i := 0; i < len(ticketTypes)-1; i++ {
		allocated := totalSold * ticketTypes[i].Available / totalAvailable
		if allocated > ticketTypes[i].Available {
			allocated = ticketTypes[i].Available
		}
		distribution = append(distribution, allocated)
		remaining -= allocated
	}

	last := remaining
	if last > ticketTypes[len(ticketTypes)-1].Available {
		last = ticketTypes[len(ticketTypes)-1].Available
	}
	distribution = append(distribution, last)

	return distribution
}

// id draws a UUID from the generator's own source, keeping generation
// reproducible for a fixed seed.
func (g *Generator) id() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (g *Generator) validationCode() string {
	code := make([]byte, utils.CodeLength)
	for i := range code {
		code[i] = utils.CodeCharset[g.rng.Intn(len(utils.CodeCharset))]
	}
	return string(code)
}

// between returns a uniform int in [min, max].
func (g *Generator) between(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// price returns a uniform amount in [min, max] dollars with random cents.
func (g *Generator) price(min, max int) decimal.Decimal {
	cents := int64(g.between(min, max))*100 + int64(g.rng.Intn(100))
	return decimal.New(cents, -2)
}
