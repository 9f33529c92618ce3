package services

import (
	"sort"
	"time"

	"event-ticketing-demo/internal/models"
	"event-ticketing-demo/internal/store"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type AnalyticsService struct {
	store      store.RecordStore
	windowDays int
	topEvents  int
}

func NewAnalyticsService(s store.RecordStore, windowDays, topEvents int) *AnalyticsService {
	return &AnalyticsService{
		store:      s,
		windowDays: windowDays,
		topEvents:  topEvents,
	}
}

// Compute recomputes analytics from the raw collections. The persisted
// snapshot written at seed time is never consulted. windowDays overrides the
// configured trailing window when positive.
func (s *AnalyticsService) Compute(windowDays int) (*models.AnalyticsData, error) {
	if windowDays <= 0 {
		windowDays = s.windowDays
	}

	users, err := s.store.Users()
	if err != nil {
		return nil, NewServiceError("failed to load users", ErrStoreError, err)
	}
	events, err := s.store.Events()
	if err != nil {
		return nil, NewServiceError("failed to load events", ErrStoreError, err)
	}
	tickets, err := s.store.Tickets()
	if err != nil {
		return nil, NewServiceError("failed to load tickets", ErrStoreError, err)
	}

	return BuildAnalytics(users, events, tickets, windowDays, s.topEvents, time.Now()), nil
}

// BuildAnalytics is a pure projection of the collections. Tickets whose
// event or tier no longer resolves contribute zero revenue and are skipped
// in the type histogram rather than failing the whole computation.
func BuildAnalytics(users []models.User, events []models.Event, tickets []models.Ticket, windowDays, topEvents int, now time.Time) *models.AnalyticsData {
	eventsByID := make(map[string]*models.Event, len(events))
	for i := range events {
		eventsByID[events[i].ID] = &events[i]
	}

	revenue := decimal.Zero
	typeOrder := []string{}
	typeCounts := map[string]int{}
	statusCounts := map[string]int{}
	soldPerEvent := map[string]int{}

	for _, ticket := range tickets {
		statusCounts[ticket.Status]++
		soldPerEvent[ticket.EventID]++

		event, ok := eventsByID[ticket.EventID]
		if !ok {
			continue
		}
		ticketType := event.TicketTypeByID(ticket.TicketTypeID)
		if ticketType == nil {
			continue
		}

		revenue = revenue.Add(ticketType.Price)
		if _, seen := typeCounts[ticketType.Name]; !seen {
			typeOrder = append(typeOrder, ticketType.Name)
		}
		typeCounts[ticketType.Name]++
	}

	// Trailing window, zero-filled, oldest day first, ending today.
	perDay := make([]models.DailyCount, 0, windowDays)
	dayCounts := map[string]int{}
	for _, ticket := range tickets {
		dayCounts[ticket.PurchaseDate.Format(dateLayout)]++
	}
	for i := windowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		perDay = append(perDay, models.DailyCount{Date: day, Count: dayCounts[day]})
	}

	// Top events by ticket count, ties kept in catalog order.
	top := make([]models.EventSales, 0, len(events))
	for _, event := range events {
		top = append(top, models.EventSales{
			EventID:     event.ID,
			Title:       event.Title,
			SoldTickets: soldPerEvent[event.ID],
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].SoldTickets > top[j].SoldTickets
	})
	if len(top) > topEvents {
		top = top[:topEvents]
	}

	typeDistribution := make([]models.NameCount, 0, len(typeOrder))
	for _, name := range typeOrder {
		typeDistribution = append(typeDistribution, models.NameCount{Name: name, Count: typeCounts[name]})
	}

	statusDistribution := []models.NameCount{}
	for _, status := range []string{models.StatusActive, models.StatusUsed, models.StatusTransferred, models.StatusCancelled} {
		statusDistribution = append(statusDistribution, models.NameCount{Name: status, Count: statusCounts[status]})
	}

	return &models.AnalyticsData{
		TotalEvents:              len(events),
		TotalTickets:             len(tickets),
		TotalUsers:               len(users),
		TotalRevenue:             revenue,
		TicketsSoldPerDay:        perDay,
		TopEvents:                top,
		TicketTypeDistribution:   typeDistribution,
		TicketStatusDistribution: statusDistribution,
	}
}
