// Package service contains the read-only reporting workflows
package service

import (
	"context"
	"time"

	"clockjar/internal/core/calendar"
	"clockjar/internal/core/isoweek"
	"clockjar/internal/modkit/repokit"
	perrs "clockjar/internal/platform/errors"
	"clockjar/internal/services/reports/domain"
	"clockjar/internal/services/reports/repo"
)

// Service defines the reports service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the reports service
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
}

// New constructs a reports service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("reports.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reports.Service requires a non nil Storage binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

func weekDTO(w repo.WeekRow) domain.WeekDTO {
	return domain.WeekDTO{
		WeekNumber:         w.Week.Number,
		WeekYear:           w.Week.Year,
		StartOn:            w.StartOn.String(),
		EndOn:              w.EndOn.String(),
		TotalSeconds:       w.TotalSeconds,
		TotalHours:         float64(w.TotalSeconds) / 3600,
		TotalEarningsCents: w.TotalEarningsCents,
	}
}

// CurrentWeek returns the caller's bucket for the week containing now.
// When no work was recorded yet the week's identity and range are still
// returned, with zero totals.
func (s *Svc) CurrentWeek(ctx context.Context, userID string, now time.Time) (domain.WeekDTO, error) {
	week := isoweek.Of(calendar.DateOf(now))

	row, err := s.Repo.FindWeek(ctx, userID, week)
	if err != nil {
		return domain.WeekDTO{}, err
	}
	if row == nil {
		start, end := isoweek.Range(week)
		return domain.WeekDTO{
			WeekNumber: week.Number,
			WeekYear:   week.Year,
			StartOn:    start.String(),
			EndOn:      end.String(),
		}, nil
	}
	return weekDTO(*row), nil
}

// Month returns one month's totals, zeros when nothing was recorded
func (s *Svc) Month(ctx context.Context, userID string, in domain.MonthInput) (domain.MonthDTO, error) {
	row, err := s.Repo.FindMonth(ctx, userID, in.Year, in.Month)
	if err != nil {
		return domain.MonthDTO{}, err
	}
	if row == nil {
		return domain.MonthDTO{Year: in.Year, Month: in.Month}, nil
	}
	return domain.MonthDTO{
		Year:               row.Year,
		Month:              row.Month,
		TotalSeconds:       row.TotalSeconds,
		TotalHours:         float64(row.TotalSeconds) / 3600,
		TotalEarningsCents: row.TotalEarningsCents,
	}, nil
}

// Weeks lists the buckets overlapping a date range, both earnings styles
// included so callers can compare payment amounts against calculated pay
func (s *Svc) Weeks(ctx context.Context, userID string, in domain.WeeksInput) ([]domain.WeekDTO, error) {
	from, err := calendar.Parse(in.Start)
	if err != nil {
		return nil, perrs.InvalidArgf("start must be YYYY-MM-DD")
	}
	to, err := calendar.Parse(in.End)
	if err != nil {
		return nil, perrs.InvalidArgf("end must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return nil, perrs.InvalidArgf("end must not be before start")
	}

	rows, err := s.Repo.ListWeeksInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]domain.WeekDTO, 0, len(rows))
	for _, w := range rows {
		out = append(out, weekDTO(w))
	}
	return out, nil
}
