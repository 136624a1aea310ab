package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weddingregistry/internal/domain"
)

type mockRSVPService struct {
	conf  *domain.RSVPConfirmation
	items []*domain.RSVPWithGuest
	err   error
}

func (m *mockRSVPService) Confirm(ctx context.Context, fullName, phone, message, eventType string) (*domain.RSVPConfirmation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.conf, nil
}

func (m *mockRSVPService) ListByEventType(ctx context.Context, eventType string) ([]*domain.RSVPWithGuest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func newRSVPRequest(target, body, eventType string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(http.MethodGet, target, nil)
	} else {
		r = httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	}
	r.SetPathValue("eventType", eventType)
	return r
}

func TestRSVPController_Confirm(t *testing.T) {
	body := `{"fullName":"Bob Smith","phone":"555-0200","message":"see you there"}`

	t.Run("success", func(t *testing.T) {
		svc := &mockRSVPService{conf: &domain.RSVPConfirmation{
			ID:          "rsvp-1",
			GuestName:   "Bob Smith",
			Message:     "see you there",
			ConfirmedAt: time.Now(),
		}}
		ctrl := NewRSVPController(testLogger(), svc, testEventTypes())

		w := httptest.NewRecorder()
		ctrl.Confirm(w, newRSVPRequest("/api/v1/rsvp/wedding-ceremony", body, "wedding-ceremony"))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
		}
		var resp RSVPConfirmationResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if resp.GuestName != "Bob Smith" {
			t.Fatalf("expected guest name Bob Smith, got %q", resp.GuestName)
		}
	})

	t.Run("unknown event type", func(t *testing.T) {
		ctrl := NewRSVPController(testLogger(), &mockRSVPService{}, testEventTypes())
		w := httptest.NewRecorder()
		ctrl.Confirm(w, newRSVPRequest("/api/v1/rsvp/graduation", body, "graduation"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := NewRSVPController(testLogger(), &mockRSVPService{}, testEventTypes())
		w := httptest.NewRecorder()
		ctrl.Confirm(w, newRSVPRequest("/api/v1/rsvp/wedding-ceremony", `{"message":"hi"}`, "wedding-ceremony"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("duplicate confirmation conflicts", func(t *testing.T) {
		svc := &mockRSVPService{err: domain.ErrConflict}
		ctrl := NewRSVPController(testLogger(), svc, testEventTypes())
		w := httptest.NewRecorder()
		ctrl.Confirm(w, newRSVPRequest("/api/v1/rsvp/wedding-ceremony", body, "wedding-ceremony"))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		svc := &mockRSVPService{err: errors.New("db down")}
		ctrl := NewRSVPController(testLogger(), svc, testEventTypes())
		w := httptest.NewRecorder()
		ctrl.Confirm(w, newRSVPRequest("/api/v1/rsvp/wedding-ceremony", body, "wedding-ceremony"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}

func TestRSVPController_ListByEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mockRSVPService{items: []*domain.RSVPWithGuest{
			{
				RSVP:      &domain.RSVP{ID: "rsvp-1", EventType: "wedding-ceremony", Message: "hi", ConfirmedAt: time.Now()},
				GuestName: "Ann Lee",
			},
		}}
		ctrl := NewRSVPController(testLogger(), svc, testEventTypes())

		w := httptest.NewRecorder()
		ctrl.ListByEvent(w, newRSVPRequest("/api/v1/rsvp/wedding-ceremony/list", "", "wedding-ceremony"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		var items []RSVPListItem
		if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if len(items) != 1 || items[0].GuestName != "Ann Lee" {
			t.Fatalf("unexpected items: %+v", items)
		}
	})

	t.Run("empty list renders as empty array", func(t *testing.T) {
		ctrl := NewRSVPController(testLogger(), &mockRSVPService{}, testEventTypes())
		w := httptest.NewRecorder()
		ctrl.ListByEvent(w, newRSVPRequest("/api/v1/rsvp/bridal-shower/list", "", "bridal-shower"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != "[]" {
			t.Fatalf("expected empty array, got %s", got)
		}
	})

	t.Run("unknown event type", func(t *testing.T) {
		ctrl := NewRSVPController(testLogger(), &mockRSVPService{}, testEventTypes())
		w := httptest.NewRecorder()
		ctrl.ListByEvent(w, newRSVPRequest("/api/v1/rsvp/graduation/list", "", "graduation"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})
}
