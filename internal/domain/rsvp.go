package domain

import (
	"context"
	"time"
)

// RSVP is a guest's recorded confirmation of attendance for a specific event.
// Records are immutable once created.
// swagger:model RSVP
type RSVP struct {
	ID          string    `json:"id"`
	GuestID     string    `json:"guest_id"`
	EventType   string    `json:"event_type"`
	Attending   bool      `json:"attending"`
	GuestsCount int       `json:"guests_count"`
	Message     string    `json:"message"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// NewRSVP returns a new RSVP with attending=true and a single guest, matching
// the confirmation form. ID is set by the repository on create.
func NewRSVP(guestID, eventType, message string, confirmedAt time.Time) *RSVP {
	return &RSVP{
		GuestID:     guestID,
		EventType:   eventType,
		Attending:   true,
		GuestsCount: 1,
		Message:     message,
		ConfirmedAt: confirmedAt,
	}
}

// RSVPWithGuest bundles an RSVP with the confirming guest's name for display.
type RSVPWithGuest struct {
	RSVP      *RSVP  `json:"rsvp"`
	GuestName string `json:"guest_name"`
}

// RSVPRepository defines storage operations for RSVPs. Create must rely on a
// storage-level uniqueness constraint on (guest_id, event_type) and return
// ErrConflict when it is violated, so the exists-check-then-insert sequence
// stays atomic under concurrent submissions.
type RSVPRepository interface {
	Create(ctx context.Context, rsvp *RSVP) error
	ExistsByGuestAndEventType(ctx context.Context, guestID, eventType string) (bool, error)
	ListByEventType(ctx context.Context, eventType string) ([]*RSVPWithGuest, error)
}

// RSVPConfirmation is the result of a successful confirmation, shaped for the
// caller: the guest's display name replaces the internal guest ID.
type RSVPConfirmation struct {
	ID          string    `json:"id"`
	GuestName   string    `json:"guest_name"`
	Message     string    `json:"message"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// RSVPService defines the RSVP ledger operations exposed to transport.
type RSVPService interface {
	// Confirm records attendance for the guest identified by phone, creating
	// the guest if needed. Returns ErrConflict when the guest already
	// confirmed for the event.
	Confirm(ctx context.Context, fullName, phone, message, eventType string) (*RSVPConfirmation, error)
	ListByEventType(ctx context.Context, eventType string) ([]*RSVPWithGuest, error)
}
