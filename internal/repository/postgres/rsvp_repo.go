package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"weddingregistry/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

// NewRSVPRepository returns a domain.RSVPRepository implemented with Postgres.
func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO rsvps (guest_id, event_type, attending, guests_count, message, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		rsvp.GuestID, rsvp.EventType, rsvp.Attending, rsvp.GuestsCount,
		rsvp.Message, rsvp.ConfirmedAt,
	).Scan(&rsvp.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *rsvpRepository) ExistsByGuestAndEventType(ctx context.Context, guestID, eventType string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM rsvps WHERE guest_id = $1 AND event_type = $2)`
	if err := r.DB.QueryRowContext(ctx, query, guestID, eventType).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *rsvpRepository) ListByEventType(ctx context.Context, eventType string) ([]*domain.RSVPWithGuest, error) {
	query := `
		SELECT r.id, r.guest_id, r.event_type, r.attending, r.guests_count,
		       r.message, r.confirmed_at, g.name
		FROM rsvps r
		JOIN guests g ON g.id = r.guest_id
		WHERE r.event_type = $1
		ORDER BY r.confirmed_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.RSVPWithGuest
	for rows.Next() {
		rsvp := &domain.RSVP{}
		var msgNull sql.NullString
		var guestName string
		if err := rows.Scan(
			&rsvp.ID, &rsvp.GuestID, &rsvp.EventType, &rsvp.Attending,
			&rsvp.GuestsCount, &msgNull, &rsvp.ConfirmedAt, &guestName,
		); err != nil {
			return nil, err
		}
		rsvp.Message = msgNull.String
		items = append(items, &domain.RSVPWithGuest{RSVP: rsvp, GuestName: guestName})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.RSVPWithGuest{}
	}
	return items, nil
}
