package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddingregistry/internal/domain"
)

type guestDirectory struct {
	guestRepo domain.GuestRepository
}

// NewGuestDirectory creates a GuestDirectory backed by the given repository.
func NewGuestDirectory(guestRepo domain.GuestRepository) domain.GuestDirectory {
	return &guestDirectory{guestRepo: guestRepo}
}

func (s *guestDirectory) ResolveOrCreate(ctx context.Context, name, phone string) (*domain.Guest, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	guest, err := s.guestRepo.GetByPhone(ctx, phone)
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get guest by phone: %w", err)
	}

	guest = domain.NewGuest(name, phone, time.Now())
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		// A concurrent request created the guest first; the phone uniqueness
		// constraint makes it the single winner. Re-read the winning record.
		if errors.Is(err, domain.ErrDuplicatePhone) {
			guest, err = s.guestRepo.GetByPhone(ctx, phone)
			if err != nil {
				return nil, fmt.Errorf("get guest after duplicate phone: %w", err)
			}
			return guest, nil
		}
		return nil, fmt.Errorf("create guest: %w", err)
	}
	return guest, nil
}
