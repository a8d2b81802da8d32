package domain

import (
	"context"
	"time"

	"clockjar/internal/core/calendar"
)

// ServicePort is consumed by handlers and other modules.
// Now is always passed in by the caller; nothing below this port reads the
// wall clock.
type ServicePort interface {
	Start(ctx context.Context, userID string, mode Mode, now time.Time) (Session, error)
	Stop(ctx context.Context, userID string, mode Mode, amountCents *int64, now time.Time) (Session, error)
	AddEntry(ctx context.Context, userID string, on calendar.Date, mode Mode, durationSeconds int64, amountCents *int64) (Session, error)
	EditSession(ctx context.Context, userID, sessionID string, startedAt, endedAt time.Time) (Session, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error
	OpenSessions(ctx context.Context, userID string) ([]Session, error)
}
