package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_purchased_total",
			Help: "Tickets created by purchase operations",
		},
		[]string{"event_id"},
	)

	ticketOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_operations_total",
			Help: "Ticket lifecycle operations by outcome",
		},
		[]string{"operation", "status"},
	)

	seededRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "seeded_records_total",
			Help: "Records produced by the last data generation run",
		},
		[]string{"collection"},
	)
)

func TrackPurchase(eventID string, quantity int) {
	ticketsPurchased.WithLabelValues(eventID).Add(float64(quantity))
}

func TrackOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ticketOperations.WithLabelValues(operation, status).Inc()
}

func TrackSeed(collection string, count int) {
	seededRecords.WithLabelValues(collection).Set(float64(count))
}
