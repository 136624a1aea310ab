package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weddingregistry/internal/domain"
)

type rsvpService struct {
	rsvpRepo domain.RSVPRepository
	guests   domain.GuestDirectory
}

// NewRSVPService creates an RSVPService with the given repository and guest
// directory.
func NewRSVPService(rsvpRepo domain.RSVPRepository, guests domain.GuestDirectory) domain.RSVPService {
	return &rsvpService{
		rsvpRepo: rsvpRepo,
		guests:   guests,
	}
}

func (s *rsvpService) Confirm(ctx context.Context, fullName, phone, message, eventType string) (*domain.RSVPConfirmation, error) {
	guest, err := s.guests.ResolveOrCreate(ctx, fullName, phone)
	if err != nil {
		return nil, fmt.Errorf("resolve guest: %w", err)
	}

	exists, err := s.rsvpRepo.ExistsByGuestAndEventType(ctx, guest.ID, eventType)
	if err != nil {
		return nil, fmt.Errorf("check existing rsvp: %w", err)
	}
	if exists {
		return nil, domain.ErrConflict
	}

	rsvp := domain.NewRSVP(guest.ID, eventType, message, time.Now())
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		// The (guest, event) uniqueness constraint closes the window between
		// the exists check and the insert: a concurrent duplicate submission
		// surfaces here as a conflict, never as a second record.
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("create rsvp: %w", err)
	}

	return &domain.RSVPConfirmation{
		ID:          rsvp.ID,
		GuestName:   guest.Name,
		Message:     rsvp.Message,
		ConfirmedAt: rsvp.ConfirmedAt,
	}, nil
}

func (s *rsvpService) ListByEventType(ctx context.Context, eventType string) ([]*domain.RSVPWithGuest, error) {
	items, err := s.rsvpRepo.ListByEventType(ctx, eventType)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	if items == nil {
		items = []*domain.RSVPWithGuest{}
	}
	return items, nil
}
