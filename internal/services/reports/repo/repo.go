// Package repo provides read-only queries over the tracker's tables
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"clockjar/internal/core/calendar"
	"clockjar/internal/core/isoweek"
	"clockjar/internal/modkit/repokit"
	perrs "clockjar/internal/platform/errors"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// WeekRow is a week bucket's stored totals
type WeekRow struct {
	Week               isoweek.Week
	StartOn            calendar.Date
	EndOn              calendar.Date
	TotalSeconds       int64
	TotalEarningsCents int64
}

// MonthRow is a month summary's stored totals
type MonthRow struct {
	Year               int
	Month              int
	TotalSeconds       int64
	TotalEarningsCents int64
}

// Storage defines the reports repository
type Storage interface {
	FindWeek(ctx context.Context, userID string, w isoweek.Week) (*WeekRow, error)
	FindMonth(ctx context.Context, userID string, year, month int) (*MonthRow, error)
	ListWeeksInRange(ctx context.Context, userID string, from, to calendar.Date) ([]WeekRow, error)
}

const weekCols = `week_number, week_year, start_on, end_on, total_seconds, total_earnings_cents`

func scanWeek(row interface{ Scan(...any) error }) (WeekRow, error) {
	var (
		w              WeekRow
		startOn, endOn time.Time
	)
	err := row.Scan(&w.Week.Number, &w.Week.Year, &startOn, &endOn, &w.TotalSeconds, &w.TotalEarningsCents)
	if err != nil {
		return WeekRow{}, err
	}
	w.StartOn = calendar.DateFromUTC(startOn)
	w.EndOn = calendar.DateFromUTC(endOn)
	return w, nil
}

// FindWeek implements Storage
func (s *pg) FindWeek(ctx context.Context, userID string, w isoweek.Week) (*WeekRow, error) {
	const q = `
		SELECT ` + weekCols + `
		FROM week_buckets
		WHERE user_id = $1::uuid AND week_number = $2 AND week_year = $3`

	out, err := scanWeek(s.q.QueryRow(ctx, q, userID, w.Number, w.Year))
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, perrs.FromPostgres(err, "find week")
	}
	return &out, nil
}

// FindMonth implements Storage
func (s *pg) FindMonth(ctx context.Context, userID string, year, month int) (*MonthRow, error) {
	const q = `
		SELECT year, month, total_seconds, total_earnings_cents
		FROM month_summaries
		WHERE user_id = $1::uuid AND year = $2 AND month = $3`

	var m MonthRow
	err := s.q.QueryRow(ctx, q, userID, year, month).
		Scan(&m.Year, &m.Month, &m.TotalSeconds, &m.TotalEarningsCents)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, perrs.FromPostgres(err, "find month summary")
	}
	return &m, nil
}

// ListWeeksInRange implements Storage; overlap test on the week span
func (s *pg) ListWeeksInRange(ctx context.Context, userID string, from, to calendar.Date) ([]WeekRow, error) {
	const q = `
		SELECT ` + weekCols + `
		FROM week_buckets
		WHERE user_id = $1::uuid AND end_on >= $2 AND start_on <= $3
		ORDER BY start_on`

	rows, err := s.q.Query(ctx, q, userID, from.UTC(), to.UTC())
	if err != nil {
		return nil, perrs.FromPostgres(err, "list weeks")
	}
	defer rows.Close()

	var out []WeekRow
	for rows.Next() {
		w, err := scanWeek(rows)
		if err != nil {
			return nil, perrs.FromPostgres(err, "scan week")
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
