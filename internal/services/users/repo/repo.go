// Package repo provides the users repository implementation
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"clockjar/internal/modkit/repokit"
	perrs "clockjar/internal/platform/errors"
	"clockjar/internal/services/users/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the users repository
type Storage interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	Insert(ctx context.Context, login string, hourlyRateCents int64) (domain.User, error)
	UpdateHourlyRate(ctx context.Context, id string, cents int64) error
}

// GetByID implements Storage
func (s *pg) GetByID(ctx context.Context, id string) (domain.User, error) {
	const q = `
		SELECT id::text, login, hourly_rate_cents, created_at
		FROM users
		WHERE id = $1::uuid`

	var u domain.User
	err := s.q.QueryRow(ctx, q, id).Scan(&u.ID, &u.Login, &u.HourlyRateCents, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.User{}, perrs.NotFoundf("user %s not found", id)
		}
		return domain.User{}, perrs.FromPostgres(err, "get user")
	}
	return u, nil
}

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, login string, hourlyRateCents int64) (domain.User, error) {
	const q = `
		INSERT INTO users (login, hourly_rate_cents)
		VALUES ($1, $2)
		RETURNING id::text, login, hourly_rate_cents, created_at`

	var u domain.User
	err := s.q.QueryRow(ctx, q, login, hourlyRateCents).Scan(&u.ID, &u.Login, &u.HourlyRateCents, &u.CreatedAt)
	if err != nil {
		return domain.User{}, perrs.FromPostgres(err, "insert user")
	}
	return u, nil
}

// UpdateHourlyRate implements Storage
func (s *pg) UpdateHourlyRate(ctx context.Context, id string, cents int64) error {
	const q = `UPDATE users SET hourly_rate_cents = $2 WHERE id = $1::uuid`

	tag, err := s.q.Exec(ctx, q, id, cents)
	if err != nil {
		return perrs.FromPostgres(err, "update hourly rate")
	}
	if tag.RowsAffected() == 0 {
		return perrs.NotFoundf("user %s not found", id)
	}
	return nil
}
