package helpers

import (
	"encoding/json"
	"net/http"
)

// ActionResponse is the envelope for all mutating operations.
// On success: Success is true, Message describes the outcome, and Data carries
// any operation payload (e.g. the reservation code). On failure: Success is
// false and Message carries the human-readable reason.
// swagger:model ActionResponse
type ActionResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes an ActionResponse with Success set to true.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data map[string]string) {
	WriteJSON(w, statusCode, ActionResponse{Success: true, Message: message, Data: data})
}

// WriteError writes an ActionResponse with Success set to false.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ActionResponse{Success: false, Message: message})
}
