package seed

import (
	"fmt"

	"event-ticketing-demo/internal/monitoring"
	"event-ticketing-demo/internal/store"

	"github.com/sirupsen/logrus"
)

// Populate runs the generator and writes the dataset into the store, then
// marks it initialized. The admin (always first) becomes the current user.
// Callers decide when to seed; Populate never checks the marker itself.
func Populate(s store.RecordStore, g *Generator) error {
	data := g.Generate()

	if err := s.SaveUsers(data.Users); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.SaveEvents(data.Events); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}
	if err := s.SaveTickets(data.Tickets); err != nil {
		return fmt.Errorf("failed to seed tickets: %w", err)
	}
	if err := s.SaveAnalytics(data.Analytics); err != nil {
		return fmt.Errorf("failed to seed analytics snapshot: %w", err)
	}
	if err := s.SetCurrentUser(data.Users[0]); err != nil {
		return fmt.Errorf("failed to set current user: %w", err)
	}
	if err := s.MarkInitialized(); err != nil {
		return fmt.Errorf("failed to mark store initialized: %w", err)
	}

	monitoring.TrackSeed(store.KeyUsers, len(data.Users))
	monitoring.TrackSeed(store.KeyEvents, len(data.Events))
	monitoring.TrackSeed(store.KeyTickets, len(data.Tickets))

	logrus.WithFields(logrus.Fields{
		"users":   len(data.Users),
		"events":  len(data.Events),
		"tickets": len(data.Tickets),
	}).Info("store seeded")

	return nil
}
