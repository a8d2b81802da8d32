package service

import (
	"context"
	"testing"
	"time"

	"clockjar/internal/core/calendar"
	"clockjar/internal/core/isoweek"
	"clockjar/internal/modkit/repokit"
	perrs "clockjar/internal/platform/errors"
	"clockjar/internal/platform/store"
	"clockjar/internal/services/reports/domain"
	"clockjar/internal/services/reports/repo"
)

type memReports struct {
	weeks  []repo.WeekRow
	months []repo.MonthRow
}

func (m *memReports) FindWeek(_ context.Context, _ string, w isoweek.Week) (*repo.WeekRow, error) {
	for _, x := range m.weeks {
		if x.Week == w {
			out := x
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memReports) FindMonth(_ context.Context, _ string, year, month int) (*repo.MonthRow, error) {
	for _, x := range m.months {
		if x.Year == year && x.Month == month {
			out := x
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memReports) ListWeeksInRange(_ context.Context, _ string, from, to calendar.Date) ([]repo.WeekRow, error) {
	var out []repo.WeekRow
	for _, x := range m.weeks {
		if !x.EndOn.Before(from) && !x.StartOn.After(to) {
			out = append(out, x)
		}
	}
	return out, nil
}

var _ repo.Storage = (*memReports)(nil)

// fakeTx satisfies repokit.TxRunner; the fake storage ignores the Queryer
type fakeTx struct{}

func (fakeTx) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	var z store.CommandTag
	return z, nil
}
func (fakeTx) Query(context.Context, string, ...any) (store.Rows, error) {
	var z store.Rows
	return z, nil
}
func (fakeTx) QueryRow(context.Context, string, ...any) store.Row {
	var z store.Row
	return z
}
func (fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error { return fn(fakeTx{}) }

func newSvc(mem *memReports) *Svc {
	return New(fakeTx{}, repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return mem }))
}

func weekRow(w isoweek.Week, seconds, cents int64) repo.WeekRow {
	start, end := isoweek.Range(w)
	return repo.WeekRow{Week: w, StartOn: start, EndOn: end, TotalSeconds: seconds, TotalEarningsCents: cents}
}

func TestCurrentWeek_ExistingAndEmpty(t *testing.T) {
	t.Parallel()

	w9 := isoweek.Week{Number: 9, Year: 2026}
	svc := newSvc(&memReports{weeks: []repo.WeekRow{weekRow(w9, 3661, 2542)}})

	// 15:00Z Mon Feb 23 2026 sits in week 9
	now := time.Date(2026, 2, 23, 15, 0, 0, 0, time.UTC)
	got, err := svc.CurrentWeek(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("CurrentWeek: %v", err)
	}
	if got.WeekNumber != 9 || got.WeekYear != 2026 {
		t.Fatalf("week identity %+v", got)
	}
	if got.TotalSeconds != 3661 || got.TotalEarningsCents != 2542 {
		t.Fatalf("totals %+v", got)
	}
	if got.TotalHours < 1.016 || got.TotalHours > 1.018 {
		t.Fatalf("hours %v", got.TotalHours)
	}

	// a week with no recorded work still reports its identity and range
	empty, err := svc.CurrentWeek(context.Background(), "u1", now.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("CurrentWeek empty: %v", err)
	}
	if empty.WeekNumber != 10 || empty.TotalSeconds != 0 {
		t.Fatalf("empty week %+v", empty)
	}
	if empty.StartOn != "2026-03-02" || empty.EndOn != "2026-03-08" {
		t.Fatalf("empty week range %s..%s", empty.StartOn, empty.EndOn)
	}
}

func TestMonth_ExistingAndEmpty(t *testing.T) {
	t.Parallel()

	svc := newSvc(&memReports{months: []repo.MonthRow{
		{Year: 2026, Month: 2, TotalSeconds: 7200, TotalEarningsCents: 10000},
	}})

	got, err := svc.Month(context.Background(), "u1", domain.MonthInput{Year: 2026, Month: 2})
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if got.TotalSeconds != 7200 || got.TotalHours != 2 || got.TotalEarningsCents != 10000 {
		t.Fatalf("month %+v", got)
	}

	empty, err := svc.Month(context.Background(), "u1", domain.MonthInput{Year: 2026, Month: 3})
	if err != nil {
		t.Fatalf("Month empty: %v", err)
	}
	if empty.Year != 2026 || empty.Month != 3 || empty.TotalSeconds != 0 {
		t.Fatalf("empty month %+v", empty)
	}
}

func TestWeeks_RangeAndValidation(t *testing.T) {
	t.Parallel()

	svc := newSvc(&memReports{weeks: []repo.WeekRow{
		weekRow(isoweek.Week{Number: 8, Year: 2026}, 3600, 2500),
		weekRow(isoweek.Week{Number: 9, Year: 2026}, 7200, 10000),
		weekRow(isoweek.Week{Number: 20, Year: 2026}, 60, 40),
	}})

	got, err := svc.Weeks(context.Background(), "u1",
		domain.WeeksInput{Start: "2026-02-01", End: "2026-03-01"})
	if err != nil {
		t.Fatalf("Weeks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 weeks, got %d: %+v", len(got), got)
	}

	if _, err := svc.Weeks(context.Background(), "u1",
		domain.WeeksInput{Start: "2026-03-01", End: "2026-02-01"}); !perrs.IsCode(err, perrs.ErrorCodeInvalidArgument) {
		t.Fatalf("inverted range expected invalid argument, got %v", err)
	}
	if _, err := svc.Weeks(context.Background(), "u1",
		domain.WeeksInput{Start: "bad", End: "2026-02-01"}); !perrs.IsCode(err, perrs.ErrorCodeInvalidArgument) {
		t.Fatalf("bad date expected invalid argument, got %v", err)
	}
}
