package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Get(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, login string, hourlyRateCents int64) (User, error)
	SetHourlyRate(ctx context.Context, id string, cents int64) error
}

// RatePort is the narrow lookup other modules depend on. HourlyRateCents
// returns a not-found error when the user does not exist, which doubles as
// the existence check.
type RatePort interface {
	HourlyRateCents(ctx context.Context, userID string) (int64, error)
}
