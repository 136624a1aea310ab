package controllers

import (
	"net/http"
	"time"

	"weddingregistry/internal/delivery/http/helpers"
)

const serviceName = "wedding-registry"

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// HealthResponse is the response body for GET /health.
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// Health godoc
// @Summary Health check
// @Description Reports whether the API is up.
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "UP",
		Timestamp: time.Now(),
		Service:   serviceName,
	})
}
