// Package service contains user account workflows
package service

import (
	"context"

	"clockjar/internal/modkit/repokit"
	perrs "clockjar/internal/platform/errors"
	"clockjar/internal/services/users/domain"
	"clockjar/internal/services/users/repo"
)

// Service defines the users service contract
type Service interface {
	domain.ServicePort
	domain.RatePort
}

// Svc implements the users service
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
}

// New constructs a users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Storage binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Get returns a user by id
func (s *Svc) Get(ctx context.Context, id string) (domain.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create inserts a new user with the given login and rate
func (s *Svc) Create(ctx context.Context, login string, hourlyRateCents int64) (domain.User, error) {
	if login == "" {
		return domain.User{}, perrs.InvalidArgf("login must not be empty")
	}
	if hourlyRateCents < 0 {
		return domain.User{}, perrs.InvalidArgf("hourly rate must not be negative")
	}
	return s.Repo.Insert(ctx, login, hourlyRateCents)
}

// SetHourlyRate updates the configured rate for a user
func (s *Svc) SetHourlyRate(ctx context.Context, id string, cents int64) error {
	if cents < 0 {
		return perrs.InvalidArgf("hourly rate must not be negative")
	}
	return s.Repo.UpdateHourlyRate(ctx, id, cents)
}

// HourlyRateCents implements domain.RatePort
func (s *Svc) HourlyRateCents(ctx context.Context, userID string) (int64, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return u.HourlyRateCents, nil
}
