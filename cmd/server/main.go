package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"event-ticketing-demo/internal/config"
	"event-ticketing-demo/internal/handlers"
	"event-ticketing-demo/internal/seed"
	"event-ticketing-demo/internal/services"
	"event-ticketing-demo/internal/store"
	"event-ticketing-demo/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.LogLevel, cfg.Env)

	// Open the record store
	if err := os.MkdirAll(filepath.Dir(cfg.DataPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	recordStore, err := store.NewGormStore(cfg.DataPath)
	if err != nil {
		log.Fatalf("Store error: %v", err)
	}

	// Seed on first run
	newGenerator := func() *seed.Generator {
		g := seed.NewGenerator(cfg.Seed, cfg.UserCount, cfg.EventCount)
		g.WindowDays = cfg.AnalyticsWindowDays
		g.TopEvents = cfg.TopEventsLimit
		return g
	}

	initialized, err := recordStore.IsInitialized()
	if err != nil {
		log.Fatalf("Store error: %v", err)
	}
	if !initialized {
		if err := seed.Populate(recordStore, newGenerator()); err != nil {
			log.Fatalf("Seed error: %v", err)
		}
	}

	reseed := func() error {
		if err := recordStore.Reset(); err != nil {
			return err
		}
		return seed.Populate(recordStore, newGenerator())
	}

	// Initialize services
	userSvc := services.NewUserService(recordStore)
	eventSvc := services.NewEventService(recordStore)
	ticketSvc := services.NewTicketService(recordStore)
	analyticsSvc := services.NewAnalyticsService(recordStore, cfg.AnalyticsWindowDays, cfg.TopEventsLimit)

	// Initialize handlers
	handler := handlers.NewHandler(userSvc, eventSvc, ticketSvc, analyticsSvc, reseed, cfg)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Event Ticketing Demo API",
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register routes
	api := app.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logrus.WithField("addr", addr).Info("server starting")
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	logrus.Info("server stopped gracefully")
}
