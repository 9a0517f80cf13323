package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/volunteer-hub/internal/domain"
)

// ErrNoDatabase is returned when the volunteers write path is used without a
// configured Postgres pool.
var ErrNoDatabase = errors.New("volunteers database not configured")

// VolunteerRepository persists volunteer sign-up forms into the relational
// volunteers table, independent of the session stores.
type VolunteerRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, volunteer *domain.Volunteer) error
}

type volunteerRepository struct {
	pool *pgxpool.Pool
}

// NewVolunteerRepository returns a Postgres-backed implementation. A nil pool
// is allowed; operations then fail with ErrNoDatabase.
func NewVolunteerRepository(pool *pgxpool.Pool) VolunteerRepository {
	return &volunteerRepository{pool: pool}
}

func (r *volunteerRepository) EnsureSchema(ctx context.Context) error {
	if r.pool == nil {
		return ErrNoDatabase
	}
	const query = `
        CREATE TABLE IF NOT EXISTS volunteers (
            id BIGSERIAL PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            email TEXT NOT NULL,
            city TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`
	_, err := r.pool.Exec(ctx, query)
	return err
}

func (r *volunteerRepository) Create(ctx context.Context, volunteer *domain.Volunteer) error {
	if r.pool == nil {
		return ErrNoDatabase
	}
	const query = `
        INSERT INTO volunteers (first_name, last_name, email, city)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		volunteer.FirstName,
		volunteer.LastName,
		volunteer.Email,
		volunteer.City,
	).Scan(&volunteer.ID, &volunteer.CreatedAt)
}
