package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"weddingregistry/config"
	"weddingregistry/internal/adapters/codegen"
	delivery "weddingregistry/internal/delivery/http"
	"weddingregistry/internal/delivery/http/controllers"
	"weddingregistry/internal/delivery/http/middleware"
	"weddingregistry/internal/domain"
	"weddingregistry/internal/repository/postgres"
	"weddingregistry/internal/services"
)

// @title Wedding Registry API
// @version 1.0
// @description Guest-list confirmations and gift-registry reservations for a wedding event.
// @BasePath /api/v1
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	eventTypes := domain.NewEventTypeSet(cfg.EventTypes)

	giftRepo := postgres.NewGiftRepository(db)
	guestRepo := postgres.NewGuestRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)

	giftService := services.NewGiftService(giftRepo, codegen.NewGenerator())
	guestDirectory := services.NewGuestDirectory(guestRepo)
	rsvpService := services.NewRSVPService(rsvpRepo, guestDirectory)

	giftController := controllers.NewGiftController(logger, giftService, eventTypes)
	rsvpController := controllers.NewRSVPController(logger, rsvpService, eventTypes)
	healthController := controllers.NewHealthController()

	mux := delivery.NewRouter(giftController, rsvpController, healthController)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment, "event_types", eventTypes.List())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
