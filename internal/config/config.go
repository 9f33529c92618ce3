package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	// DataPath is the SQLite file backing the record store.
	DataPath string

	// Seed drives the mock-data generator. 0 means derive from the clock.
	Seed       int64
	UserCount  int
	EventCount int

	AnalyticsWindowDays int
	TopEventsLimit      int
}

func NewConfigFromEnv() (*Config, error) {
	seed, _ := strconv.ParseInt(getenv("GENERATOR_SEED", "0"), 10, 64)
	userCount, _ := strconv.Atoi(getenv("GENERATOR_USERS", "50"))
	eventCount, _ := strconv.Atoi(getenv("GENERATOR_EVENTS", "10"))
	windowDays, _ := strconv.Atoi(getenv("ANALYTICS_WINDOW_DAYS", "30"))
	topEvents, _ := strconv.Atoi(getenv("ANALYTICS_TOP_EVENTS", "5"))

	cfg := &Config{
		Port:                getenv("PORT", "3000"),
		Env:                 getenv("ENV", "development"),
		LogLevel:            getenv("LOG_LEVEL", "info"),
		DataPath:            getenv("DATA_PATH", "./data/tickets.db"),
		Seed:                seed,
		UserCount:           userCount,
		EventCount:          eventCount,
		AnalyticsWindowDays: windowDays,
		TopEventsLimit:      topEvents,
	}

	if cfg.UserCount < 2 {
		cfg.UserCount = 2 // one admin plus at least one regular user
	}
	if cfg.EventCount < 1 {
		cfg.EventCount = 1
	}
	if cfg.AnalyticsWindowDays < 1 {
		cfg.AnalyticsWindowDays = 30
	}
	if cfg.TopEventsLimit < 1 {
		cfg.TopEventsLimit = 5
	}

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
