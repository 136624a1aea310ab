package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddingregistry/internal/domain"
)

type giftService struct {
	giftRepo domain.GiftRepository
	codes    domain.ReservationCodeGenerator
}

// NewGiftService creates a GiftService with the given repository and
// reservation code generator.
func NewGiftService(giftRepo domain.GiftRepository, codes domain.ReservationCodeGenerator) domain.GiftService {
	return &giftService{
		giftRepo: giftRepo,
		codes:    codes,
	}
}

func (s *giftService) ListByEventType(ctx context.Context, eventType string) ([]*domain.Gift, error) {
	gifts, err := s.giftRepo.ListByEventType(ctx, eventType)
	if err != nil {
		return nil, fmt.Errorf("list gifts: %w", err)
	}
	if gifts == nil {
		gifts = []*domain.Gift{}
	}
	return gifts, nil
}

func (s *giftService) Reserve(ctx context.Context, giftID, eventType, name, phone string) (string, error) {
	code, err := s.codes.Generate()
	if err != nil {
		return "", fmt.Errorf("generate reservation code: %w", err)
	}

	res := &domain.GiftReservation{
		ReservedBy:      strings.TrimSpace(name),
		ReservedByPhone: strings.TrimSpace(phone),
		Code:            code,
		ReservedAt:      time.Now(),
	}
	// The conditional update only succeeds from AVAILABLE, so two concurrent
	// reservations on the same gift cannot both win.
	if _, err := s.giftRepo.Reserve(ctx, giftID, eventType, res); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
			return "", err
		}
		return "", fmt.Errorf("reserve gift: %w", err)
	}
	return code, nil
}

func (s *giftService) MarkPurchased(ctx context.Context, giftID, eventType, code string) error {
	if err := s.authorize(ctx, giftID, eventType, code); err != nil {
		return err
	}
	if _, err := s.giftRepo.MarkPurchased(ctx, giftID, eventType, time.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("mark gift purchased: %w", err)
	}
	return nil
}

func (s *giftService) CancelReservation(ctx context.Context, giftID, eventType, code string) error {
	if err := s.authorize(ctx, giftID, eventType, code); err != nil {
		return err
	}
	if _, err := s.giftRepo.CancelReservation(ctx, giftID, eventType); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("cancel reservation: %w", err)
	}
	return nil
}

// authorize checks the presented code against the stored one. The credential
// check runs before any status check: a wrong code on an already-purchased
// gift is an invalid credential, not a conflict.
func (s *giftService) authorize(ctx context.Context, giftID, eventType, code string) error {
	gift, err := s.giftRepo.GetByIDAndEventType(ctx, giftID, eventType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get gift: %w", err)
	}
	if gift.ReservationCode == nil || *gift.ReservationCode != code {
		return domain.ErrInvalidCode
	}
	return nil
}
