package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"weddingregistry/internal/delivery/http/helpers"
	"weddingregistry/internal/domain"
)

type RSVPController struct {
	Logger     *slog.Logger
	Service    domain.RSVPService
	EventTypes *domain.EventTypeSet
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService, eventTypes *domain.EventTypeSet) *RSVPController {
	return &RSVPController{
		Logger:     logger,
		Service:    svc,
		EventTypes: eventTypes,
	}
}

// ConfirmRSVPRequest is the request body for POST /rsvp/{eventType}.
type ConfirmRSVPRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// Validate implements helpers.Validator.
func (r *ConfirmRSVPRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	return errs
}

// RSVPConfirmationResponse is the response body for a successful confirmation.
// swagger:model RSVPConfirmationResponse
type RSVPConfirmationResponse struct {
	ID          string    `json:"id"`
	GuestName   string    `json:"guest_name"`
	Message     string    `json:"message"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// Confirm godoc
// @Summary Confirm attendance for an event
// @Description Records the guest's attendance confirmation. A guest (identified by phone) can confirm at most once per event.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param eventType path string true "Event type (e.g. wedding-ceremony)"
// @Param body body controllers.ConfirmRSVPRequest true "Guest details"
// @Success 201 {object} controllers.RSVPConfirmationResponse
// @Failure 400 {object} helpers.ActionResponse
// @Failure 409 {object} helpers.ActionResponse "already confirmed for this event"
// @Failure 500 {object} helpers.ActionResponse
// @Router /rsvp/{eventType} [post]
func (c *RSVPController) Confirm(w http.ResponseWriter, r *http.Request) {
	eventType := r.PathValue("eventType")
	if !c.EventTypes.Contains(eventType) {
		helpers.WriteError(w, http.StatusBadRequest, "unknown event type")
		return
	}
	var req ConfirmRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	conf, err := c.Service.Confirm(r.Context(), req.FullName, req.Phone, req.Message, eventType)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			helpers.WriteError(w, http.StatusConflict, "you have already confirmed for this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, RSVPConfirmationResponse{
		ID:          conf.ID,
		GuestName:   conf.GuestName,
		Message:     conf.Message,
		ConfirmedAt: conf.ConfirmedAt,
	})
}

// RSVPListItem is an item in the response for GET /rsvp/{eventType}/list.
// swagger:model RSVPListItem
type RSVPListItem struct {
	ID          string    `json:"id"`
	GuestName   string    `json:"guest_name"`
	Message     string    `json:"message"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// ListByEvent godoc
// @Summary List confirmations for an event
// @Description Returns all RSVPs recorded for the given event type, each with the guest's display name.
// @Tags rsvp
// @Produce json
// @Param eventType path string true "Event type (e.g. wedding-ceremony)"
// @Success 200 {array} controllers.RSVPListItem
// @Failure 400 {object} helpers.ActionResponse "unknown event type"
// @Failure 500 {object} helpers.ActionResponse
// @Router /rsvp/{eventType}/list [get]
func (c *RSVPController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventType := r.PathValue("eventType")
	if !c.EventTypes.Contains(eventType) {
		helpers.WriteError(w, http.StatusBadRequest, "unknown event type")
		return
	}

	items, err := c.Service.ListByEventType(r.Context(), eventType)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]RSVPListItem, 0, len(items))
	for _, it := range items {
		out = append(out, RSVPListItem{
			ID:          it.RSVP.ID,
			GuestName:   it.GuestName,
			Message:     it.RSVP.Message,
			ConfirmedAt: it.RSVP.ConfirmedAt,
		})
	}
	helpers.WriteJSON(w, http.StatusOK, out)
}
