package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	perrs "clockjar/internal/platform/errors"
	"clockjar/internal/services/tracker/domain"
)

// FindMonthSummary implements Storage
func (s *pg) FindMonthSummary(ctx context.Context, userID string, year, month int) (*domain.MonthSummary, error) {
	const q = `
		SELECT user_id::text, year, month, total_seconds, total_earnings_cents
		FROM month_summaries
		WHERE user_id = $1::uuid AND year = $2 AND month = $3`

	var ms domain.MonthSummary
	err := s.q.QueryRow(ctx, q, userID, year, month).
		Scan(&ms.UserID, &ms.Year, &ms.Month, &ms.TotalSeconds, &ms.TotalEarningsCents)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, perrs.FromPostgres(err, "find month summary")
	}
	return &ms, nil
}

// UpsertMonthSummary implements Storage
func (s *pg) UpsertMonthSummary(ctx context.Context, ms domain.MonthSummary) error {
	const q = `
		INSERT INTO month_summaries (user_id, year, month, total_seconds, total_earnings_cents)
		VALUES ($1::uuid, $2, $3, $4, $5)
		ON CONFLICT (user_id, year, month)
		DO UPDATE SET total_seconds = EXCLUDED.total_seconds,
			total_earnings_cents = EXCLUDED.total_earnings_cents`

	_, err := s.q.Exec(ctx, q, ms.UserID, ms.Year, ms.Month, ms.TotalSeconds, ms.TotalEarningsCents)
	if err != nil {
		return perrs.FromPostgres(err, "upsert month summary")
	}
	return nil
}

// DeleteMonthSummary implements Storage
func (s *pg) DeleteMonthSummary(ctx context.Context, userID string, year, month int) error {
	_, err := s.q.Exec(ctx,
		`DELETE FROM month_summaries WHERE user_id = $1::uuid AND year = $2 AND month = $3`,
		userID, year, month)
	if err != nil {
		return perrs.FromPostgres(err, "delete month summary")
	}
	return nil
}
