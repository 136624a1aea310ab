package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"weddingregistry/internal/delivery/http/helpers"
	"weddingregistry/internal/domain"
)

type GiftController struct {
	Logger     *slog.Logger
	Service    domain.GiftService
	EventTypes *domain.EventTypeSet
}

func NewGiftController(logger *slog.Logger, svc domain.GiftService, eventTypes *domain.EventTypeSet) *GiftController {
	return &GiftController{
		Logger:     logger,
		Service:    svc,
		EventTypes: eventTypes,
	}
}

// GiftItem is a gift as returned by GET /gifts/{eventType}. Reservation
// metadata (reserver contact, code, timestamps) is never exposed here.
// swagger:model GiftItem
type GiftItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url"`
	PriceCents  int64             `json:"price_cents"`
	EventType   string            `json:"event_type"`
	Status      domain.GiftStatus `json:"status"`
}

// ListGifts godoc
// @Summary List gifts for an event
// @Description Returns all gifts registered for the given event type, any status. Reservation details are omitted.
// @Tags gifts
// @Produce json
// @Param eventType path string true "Event type (e.g. wedding-ceremony)"
// @Success 200 {array} controllers.GiftItem
// @Failure 400 {object} helpers.ActionResponse "unknown event type"
// @Failure 500 {object} helpers.ActionResponse
// @Router /gifts/{eventType} [get]
func (c *GiftController) ListGifts(w http.ResponseWriter, r *http.Request) {
	eventType := r.PathValue("eventType")
	if !c.EventTypes.Contains(eventType) {
		helpers.WriteError(w, http.StatusBadRequest, "unknown event type")
		return
	}

	gifts, err := c.Service.ListByEventType(r.Context(), eventType)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	items := make([]GiftItem, 0, len(gifts))
	for _, g := range gifts {
		items = append(items, GiftItem{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			ImageURL:    g.ImageURL,
			PriceCents:  g.PriceCents,
			EventType:   g.EventType,
			Status:      g.Status,
		})
	}
	helpers.WriteJSON(w, http.StatusOK, items)
}

// ReserveGiftRequest is the request body for POST /gifts/reserve.
type ReserveGiftRequest struct {
	GiftID    string `json:"giftId"`
	EventType string `json:"eventType"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}

// Validate implements helpers.Validator.
func (r *ReserveGiftRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.GiftID) == "" {
		errs = append(errs, "giftId is required")
	}
	if strings.TrimSpace(r.EventType) == "" {
		errs = append(errs, "eventType is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	return errs
}

// ReserveGift godoc
// @Summary Reserve an available gift
// @Description Reserves the gift and returns a 6-character reservation code under data.reservationCode. The code is the only credential for marking the gift purchased or cancelling the reservation.
// @Tags gifts
// @Accept json
// @Produce json
// @Param body body controllers.ReserveGiftRequest true "Reservation details"
// @Success 200 {object} helpers.ActionResponse "data.reservationCode holds the code"
// @Failure 400 {object} helpers.ActionResponse
// @Failure 404 {object} helpers.ActionResponse "gift not found"
// @Failure 409 {object} helpers.ActionResponse "gift not available for reservation"
// @Failure 500 {object} helpers.ActionResponse
// @Router /gifts/reserve [post]
func (c *GiftController) ReserveGift(w http.ResponseWriter, r *http.Request) {
	var req ReserveGiftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.EventTypes.Contains(req.EventType) {
		helpers.WriteError(w, http.StatusBadRequest, "unknown event type")
		return
	}

	code, err := c.Service.Reserve(r.Context(), req.GiftID, req.EventType, req.Name, req.Phone)
	if err != nil {
		c.writeGiftError(w, r, err, "this gift is not available for reservation")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Gift reserved successfully!", map[string]string{
		"reservationCode": code,
	})
}

// GiftActionRequest is the request body for POST /gifts/mark-purchased and
// POST /gifts/cancel-reservation.
type GiftActionRequest struct {
	GiftID    string `json:"giftId"`
	EventType string `json:"eventType"`
	Code      string `json:"code"`
}

// Validate implements helpers.Validator.
func (r *GiftActionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.GiftID) == "" {
		errs = append(errs, "giftId is required")
	}
	if strings.TrimSpace(r.EventType) == "" {
		errs = append(errs, "eventType is required")
	}
	if strings.TrimSpace(r.Code) == "" {
		errs = append(errs, "code is required")
	}
	return errs
}

// MarkPurchased godoc
// @Summary Mark a reserved gift as purchased
// @Description Marks the gift purchased. Requires the reservation code returned on reserve.
// @Tags gifts
// @Accept json
// @Produce json
// @Param body body controllers.GiftActionRequest true "Gift and reservation code"
// @Success 200 {object} helpers.ActionResponse
// @Failure 400 {object} helpers.ActionResponse
// @Failure 404 {object} helpers.ActionResponse "gift not found"
// @Failure 409 {object} helpers.ActionResponse "gift is not reserved"
// @Failure 422 {object} helpers.ActionResponse "invalid reservation code"
// @Failure 500 {object} helpers.ActionResponse
// @Router /gifts/mark-purchased [post]
func (c *GiftController) MarkPurchased(w http.ResponseWriter, r *http.Request) {
	var req GiftActionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.EventTypes.Contains(req.EventType) {
		helpers.WriteError(w, http.StatusBadRequest, "unknown event type")
		return
	}

	if err := c.Service.MarkPurchased(r.Context(), req.GiftID, req.EventType, req.Code); err != nil {
		c.writeGiftError(w, r, err, "this gift is not reserved")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Gift marked as purchased!", nil)
}

// CancelReservation godoc
// @Summary Cancel a gift reservation
// @Description Returns the gift to available and clears the reservation. Requires the reservation code returned on reserve.
// @Tags gifts
// @Accept json
// @Produce json
// @Param body body controllers.GiftActionRequest true "Gift and reservation code"
// @Success 200 {object} helpers.ActionResponse
// @Failure 400 {object} helpers.ActionResponse
// @Failure 404 {object} helpers.ActionResponse "gift not found"
// @Failure 409 {object} helpers.ActionResponse "gift is not reserved"
// @Failure 422 {object} helpers.ActionResponse "invalid reservation code"
// @Failure 500 {object} helpers.ActionResponse
// @Router /gifts/cancel-reservation [post]
func (c *GiftController) CancelReservation(w http.ResponseWriter, r *http.Request) {
	var req GiftActionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if !c.EventTypes.Contains(req.EventType) {
		helpers.WriteError(w, http.StatusBadRequest, "unknown event type")
		return
	}

	if err := c.Service.CancelReservation(r.Context(), req.GiftID, req.EventType, req.Code); err != nil {
		c.writeGiftError(w, r, err, "this gift is not reserved")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Reservation cancelled successfully!", nil)
}

// writeGiftError maps service errors to HTTP responses. conflictMsg is the
// operation-specific message for ErrConflict.
func (c *GiftController) writeGiftError(w http.ResponseWriter, r *http.Request, err error, conflictMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteError(w, http.StatusNotFound, "gift not found")
	case errors.Is(err, domain.ErrInvalidCode):
		helpers.WriteError(w, http.StatusUnprocessableEntity, "invalid reservation code")
	case errors.Is(err, domain.ErrConflict):
		helpers.WriteError(w, http.StatusConflict, conflictMsg)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
