package domain

import (
	"context"
	"time"
)

// Guest represents a person identified by phone number. Phone is the natural
// dedup key: one guest record exists per phone regardless of how many events
// they confirm for.
// swagger:model Guest
type Guest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGuest returns a new Guest. ID is set by the repository on create.
func NewGuest(name, phone string, createdAt time.Time) *Guest {
	return &Guest{
		Name:      name,
		Phone:     phone,
		CreatedAt: createdAt,
	}
}

// GuestRepository defines storage operations for guests. Create must rely on
// a storage-level uniqueness constraint on phone and return ErrDuplicatePhone
// when it is violated, so concurrent creates for the same phone cannot both
// insert.
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByPhone(ctx context.Context, phone string) (*Guest, error)
}

// GuestDirectory resolves a phone number to a stable guest identity,
// creating one if absent.
type GuestDirectory interface {
	// ResolveOrCreate returns the guest for the given phone, creating it with
	// the supplied name when no guest exists yet. Concurrent calls with the
	// same unseen phone resolve to a single record.
	ResolveOrCreate(ctx context.Context, name, phone string) (*Guest, error)
}
