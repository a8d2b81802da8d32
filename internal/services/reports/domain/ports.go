package domain

import (
	"context"
	"time"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	CurrentWeek(ctx context.Context, userID string, now time.Time) (WeekDTO, error)
	Month(ctx context.Context, userID string, in MonthInput) (MonthDTO, error)
	Weeks(ctx context.Context, userID string, in WeeksInput) ([]WeekDTO, error)
}
