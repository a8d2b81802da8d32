package module

import (
	"context"
	"time"

	"clockjar/internal/core/calendar"
	"clockjar/internal/services/tracker/domain"
	trackersvc "clockjar/internal/services/tracker/service"
)

type adaptTrackerPort struct{ svc trackersvc.Service }

// Start opens a session for (user, mode) at now
func (a adaptTrackerPort) Start(
	ctx context.Context, userID string, mode domain.Mode, now time.Time,
) (domain.Session, error) {
	return a.svc.Start(ctx, userID, mode, now)
}

// Stop closes the open session for (user, mode) at now
func (a adaptTrackerPort) Stop(
	ctx context.Context, userID string, mode domain.Mode, amountCents *int64, now time.Time,
) (domain.Session, error) {
	return a.svc.Stop(ctx, userID, mode, amountCents, now)
}

// AddEntry records a finished span against an explicit business day
func (a adaptTrackerPort) AddEntry(
	ctx context.Context, userID string, on calendar.Date, mode domain.Mode,
	durationSeconds int64, amountCents *int64,
) (domain.Session, error) {
	return a.svc.AddEntry(ctx, userID, on, mode, durationSeconds, amountCents)
}

// EditSession rewrites a session's span
func (a adaptTrackerPort) EditSession(
	ctx context.Context, userID, sessionID string, startedAt, endedAt time.Time,
) (domain.Session, error) {
	return a.svc.EditSession(ctx, userID, sessionID, startedAt, endedAt)
}

// DeleteSession removes a session
func (a adaptTrackerPort) DeleteSession(ctx context.Context, userID, sessionID string) error {
	return a.svc.DeleteSession(ctx, userID, sessionID)
}

// OpenSessions lists the running sessions of a user
func (a adaptTrackerPort) OpenSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	return a.svc.OpenSessions(ctx, userID)
}
