package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddingregistry/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	giftController *controllers.GiftController,
	rsvpController *controllers.RSVPController,
	healthController *controllers.HealthController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Gifts
	mux.HandleFunc("GET /api/v1/gifts/{eventType}", giftController.ListGifts)
	mux.HandleFunc("POST /api/v1/gifts/reserve", giftController.ReserveGift)
	mux.HandleFunc("POST /api/v1/gifts/mark-purchased", giftController.MarkPurchased)
	mux.HandleFunc("POST /api/v1/gifts/cancel-reservation", giftController.CancelReservation)

	// RSVP
	mux.HandleFunc("POST /api/v1/rsvp/{eventType}", rsvpController.Confirm)
	mux.HandleFunc("GET /api/v1/rsvp/{eventType}/list", rsvpController.ListByEvent)

	// Health
	mux.HandleFunc("GET /api/v1/health", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
