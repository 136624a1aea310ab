package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"weddingregistry/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type guestRepository struct {
	DB *sql.DB
}

// NewGuestRepository returns a domain.GuestRepository implemented with Postgres.
func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guests (name, phone, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, g.Name, g.Phone, g.CreatedAt).Scan(&g.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicatePhone
		}
		return err
	}
	return nil
}

func (r *guestRepository) GetByPhone(ctx context.Context, phone string) (*domain.Guest, error) {
	query := `
		SELECT id, name, phone, created_at
		FROM guests
		WHERE phone = $1
	`
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, phone).Scan(&g.ID, &g.Name, &g.Phone, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}
