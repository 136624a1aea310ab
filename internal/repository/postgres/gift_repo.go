package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"weddingregistry/internal/domain"
)

const giftColumns = `
	id, name, description, image_url, price_cents, event_type, status,
	reserved_by, reserved_by_phone, reservation_code, reserved_at,
	purchased_at, created_at
`

type giftRepository struct {
	DB *sql.DB
}

// NewGiftRepository returns a domain.GiftRepository implemented with Postgres.
// Transitions are single conditional UPDATEs guarded by the current status, so
// atomicity comes from the row-level write lock rather than an explicit
// transaction.
func NewGiftRepository(db *sql.DB) domain.GiftRepository {
	return &giftRepository{DB: db}
}

func (r *giftRepository) GetByIDAndEventType(ctx context.Context, id, eventType string) (*domain.Gift, error) {
	query := `
		SELECT ` + giftColumns + `
		FROM gifts
		WHERE id = $1 AND event_type = $2
	`
	g, err := scanGift(r.DB.QueryRowContext(ctx, query, id, eventType))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *giftRepository) ListByEventType(ctx context.Context, eventType string) ([]*domain.Gift, error) {
	query := `
		SELECT ` + giftColumns + `
		FROM gifts
		WHERE event_type = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gifts []*domain.Gift
	for rows.Next() {
		g, err := scanGift(rows)
		if err != nil {
			return nil, err
		}
		gifts = append(gifts, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if gifts == nil {
		gifts = []*domain.Gift{}
	}
	return gifts, nil
}

func (r *giftRepository) Reserve(ctx context.Context, id, eventType string, res *domain.GiftReservation) (*domain.Gift, error) {
	query := `
		UPDATE gifts
		SET status = $1, reserved_by = $2, reserved_by_phone = $3,
		    reservation_code = $4, reserved_at = $5
		WHERE id = $6 AND event_type = $7 AND status = $8
		RETURNING ` + giftColumns + `
	`
	g, err := scanGift(r.DB.QueryRowContext(ctx, query,
		domain.GiftReserved, res.ReservedBy, res.ReservedByPhone,
		res.Code, res.ReservedAt,
		id, eventType, domain.GiftAvailable,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missOrConflict(ctx, id, eventType)
		}
		return nil, err
	}
	return g, nil
}

func (r *giftRepository) MarkPurchased(ctx context.Context, id, eventType string, purchasedAt time.Time) (*domain.Gift, error) {
	query := `
		UPDATE gifts
		SET status = $1, purchased_at = $2
		WHERE id = $3 AND event_type = $4 AND status = $5
		RETURNING ` + giftColumns + `
	`
	g, err := scanGift(r.DB.QueryRowContext(ctx, query,
		domain.GiftPurchased, purchasedAt,
		id, eventType, domain.GiftReserved,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missOrConflict(ctx, id, eventType)
		}
		return nil, err
	}
	return g, nil
}

func (r *giftRepository) CancelReservation(ctx context.Context, id, eventType string) (*domain.Gift, error) {
	query := `
		UPDATE gifts
		SET status = $1, reserved_by = NULL, reserved_by_phone = NULL,
		    reservation_code = NULL, reserved_at = NULL
		WHERE id = $2 AND event_type = $3 AND status = $4
		RETURNING ` + giftColumns + `
	`
	g, err := scanGift(r.DB.QueryRowContext(ctx, query,
		domain.GiftAvailable,
		id, eventType, domain.GiftReserved,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.missOrConflict(ctx, id, eventType)
		}
		return nil, err
	}
	return g, nil
}

// missOrConflict distinguishes a conditional update that matched no rows:
// the gift either does not exist (ErrNotFound) or exists in a status other
// than the transition's source state (ErrConflict).
func (r *giftRepository) missOrConflict(ctx context.Context, id, eventType string) error {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM gifts WHERE id = $1 AND event_type = $2)`
	if err := r.DB.QueryRowContext(ctx, query, id, eventType).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGift(s scanner) (*domain.Gift, error) {
	g := &domain.Gift{}
	var descNull, imageNull sql.NullString
	var reservedByNull, reservedPhoneNull, codeNull sql.NullString
	var reservedAtNull, purchasedAtNull sql.NullTime
	err := s.Scan(
		&g.ID, &g.Name, &descNull, &imageNull, &g.PriceCents, &g.EventType, &g.Status,
		&reservedByNull, &reservedPhoneNull, &codeNull, &reservedAtNull,
		&purchasedAtNull, &g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	g.Description = descNull.String
	g.ImageURL = imageNull.String
	if reservedByNull.Valid {
		g.ReservedBy = &reservedByNull.String
	}
	if reservedPhoneNull.Valid {
		g.ReservedByPhone = &reservedPhoneNull.String
	}
	if codeNull.Valid {
		g.ReservationCode = &codeNull.String
	}
	if reservedAtNull.Valid {
		g.ReservedAt = &reservedAtNull.Time
	}
	if purchasedAtNull.Valid {
		g.PurchasedAt = &purchasedAtNull.Time
	}
	return g, nil
}
