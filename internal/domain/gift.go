package domain

import (
	"context"
	"time"
)

// GiftStatus is the reservation state of a gift.
// Transitions: Available -> Reserved -> Purchased, with Reserved -> Available
// on cancellation. Purchased is terminal.
type GiftStatus string

const (
	GiftAvailable GiftStatus = "AVAILABLE"
	GiftReserved  GiftStatus = "RESERVED"
	GiftPurchased GiftStatus = "PURCHASED"
)

// Gift represents a registry item guests may reserve and later mark purchased.
// Reservation metadata (ReservedBy, ReservedByPhone, ReservationCode,
// ReservedAt) is present iff Status is RESERVED, except that a purchased gift
// retains the metadata of the reservation it was purchased under.
// swagger:model Gift
type Gift struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	ImageURL        string     `json:"image_url"`
	PriceCents      int64      `json:"price_cents"`
	EventType       string     `json:"event_type"`
	Status          GiftStatus `json:"status"`
	ReservedBy      *string    `json:"reserved_by,omitempty"`
	ReservedByPhone *string    `json:"reserved_by_phone,omitempty"`
	ReservationCode *string    `json:"reservation_code,omitempty"`
	ReservedAt      *time.Time `json:"reserved_at,omitempty"`
	PurchasedAt     *time.Time `json:"purchased_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// GiftReservation carries the reservation metadata written on the
// Available -> Reserved transition.
type GiftReservation struct {
	ReservedBy      string
	ReservedByPhone string
	Code            string
	ReservedAt      time.Time
}

// GiftRepository defines storage operations for gifts. Each transition method
// is an atomic conditional update: it succeeds only if the gift's current
// status matches the transition's source state, and reports ErrConflict when
// the gift exists in any other status. Two concurrent callers can never both
// succeed on the same transition.
type GiftRepository interface {
	GetByIDAndEventType(ctx context.Context, id, eventType string) (*Gift, error)
	ListByEventType(ctx context.Context, eventType string) ([]*Gift, error)
	// Reserve transitions AVAILABLE -> RESERVED and stores the reservation
	// metadata. Returns ErrNotFound or ErrConflict.
	Reserve(ctx context.Context, id, eventType string, res *GiftReservation) (*Gift, error)
	// MarkPurchased transitions RESERVED -> PURCHASED and sets the purchased
	// timestamp. Reservation metadata is retained. Returns ErrNotFound or ErrConflict.
	MarkPurchased(ctx context.Context, id, eventType string, purchasedAt time.Time) (*Gift, error)
	// CancelReservation transitions RESERVED -> AVAILABLE and clears all four
	// reservation fields. Returns ErrNotFound or ErrConflict.
	CancelReservation(ctx context.Context, id, eventType string) (*Gift, error)
}

// ReservationCodeGenerator produces short bearer credentials that authorize
// purchase/cancel actions on a reserved gift.
type ReservationCodeGenerator interface {
	Generate() (string, error)
}

// GiftService defines the gift registry operations exposed to transport.
type GiftService interface {
	ListByEventType(ctx context.Context, eventType string) ([]*Gift, error)
	// Reserve reserves an available gift and returns the reservation code,
	// the only credential for subsequent purchase/cancel actions.
	Reserve(ctx context.Context, giftID, eventType, name, phone string) (code string, err error)
	MarkPurchased(ctx context.Context, giftID, eventType, code string) error
	CancelReservation(ctx context.Context, giftID, eventType, code string) error
}
