package repo

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"clockjar/internal/core/calendar"
	"clockjar/internal/core/isoweek"
	perrs "clockjar/internal/platform/errors"
	"clockjar/internal/services/tracker/domain"
)

const bucketCols = `
	id::text, user_id::text, week_number, week_year, month, year,
	start_on, end_on, total_seconds, total_earnings_cents`

func scanBucket(row interface{ Scan(...any) error }) (domain.Bucket, error) {
	var (
		b              domain.Bucket
		startOn, endOn time.Time
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.Week.Number, &b.Week.Year, &b.Month, &b.Year,
		&startOn, &endOn, &b.TotalSeconds, &b.TotalEarningsCents,
	)
	if err != nil {
		return domain.Bucket{}, err
	}
	b.StartOn = calendar.DateFromUTC(startOn)
	b.EndOn = calendar.DateFromUTC(endOn)
	return b, nil
}

// EnsureBucket implements Storage with atomic fetch-or-create: the insert
// swallows the unique race and the follow-up select reads whichever row won.
func (s *pg) EnsureBucket(ctx context.Context, b domain.Bucket) (domain.Bucket, error) {
	const ins = `
		INSERT INTO week_buckets
			(id, user_id, week_number, week_year, month, year, start_on, end_on)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, week_number, week_year) DO NOTHING`

	_, err := s.q.Exec(ctx, ins,
		b.ID, b.UserID, b.Week.Number, b.Week.Year, b.Month, b.Year,
		b.StartOn.UTC(), b.EndOn.UTC())
	if err != nil {
		return domain.Bucket{}, perrs.FromPostgres(err, "ensure week bucket")
	}

	got, err := s.FindBucket(ctx, b.UserID, b.Week)
	if err != nil {
		return domain.Bucket{}, err
	}
	if got == nil {
		return domain.Bucket{}, perrs.DBf("week bucket vanished after ensure")
	}
	return *got, nil
}

// FindBucket implements Storage
func (s *pg) FindBucket(ctx context.Context, userID string, w isoweek.Week) (*domain.Bucket, error) {
	const q = `
		SELECT ` + bucketCols + `
		FROM week_buckets
		WHERE user_id = $1::uuid AND week_number = $2 AND week_year = $3`

	b, err := scanBucket(s.q.QueryRow(ctx, q, userID, w.Number, w.Year))
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, perrs.FromPostgres(err, "find week bucket")
	}
	return &b, nil
}

// GetBucket implements Storage
func (s *pg) GetBucket(ctx context.Context, id string) (*domain.Bucket, error) {
	const q = `
		SELECT ` + bucketCols + `
		FROM week_buckets
		WHERE id = $1::uuid`

	b, err := scanBucket(s.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, perrs.FromPostgres(err, "get week bucket")
	}
	return &b, nil
}

// SetBucketTotals implements Storage
func (s *pg) SetBucketTotals(ctx context.Context, id string, totalSeconds, totalEarningsCents int64) error {
	const q = `
		UPDATE week_buckets
		SET total_seconds = $2, total_earnings_cents = $3
		WHERE id = $1::uuid`

	tag, err := s.q.Exec(ctx, q, id, totalSeconds, totalEarningsCents)
	if err != nil {
		return perrs.FromPostgres(err, "set bucket totals")
	}
	if tag.RowsAffected() == 0 {
		return perrs.NotFoundf("week bucket %s not found", id)
	}
	return nil
}

// DeleteBucket implements Storage
func (s *pg) DeleteBucket(ctx context.Context, id string) error {
	_, err := s.q.Exec(ctx, `DELETE FROM week_buckets WHERE id = $1::uuid`, id)
	if err != nil {
		return perrs.FromPostgres(err, "delete week bucket")
	}
	return nil
}

// ListBucketsForMonth implements Storage; month attribution is the bucket's
// own stored month/year, fixed at creation from the week's Monday
func (s *pg) ListBucketsForMonth(ctx context.Context, userID string, year, month int) ([]domain.Bucket, error) {
	const q = `
		SELECT ` + bucketCols + `
		FROM week_buckets
		WHERE user_id = $1::uuid AND year = $2 AND month = $3
		ORDER BY week_year, week_number`

	return s.listBuckets(ctx, q, userID, year, month)
}

// ListBucketsInRange implements Storage; overlap test on the week span
func (s *pg) ListBucketsInRange(ctx context.Context, userID string, from, to calendar.Date) ([]domain.Bucket, error) {
	const q = `
		SELECT ` + bucketCols + `
		FROM week_buckets
		WHERE user_id = $1::uuid AND end_on >= $2 AND start_on <= $3
		ORDER BY start_on`

	return s.listBuckets(ctx, q, userID, from.UTC(), to.UTC())
}

func (s *pg) listBuckets(ctx context.Context, q string, args ...any) ([]domain.Bucket, error) {
	rows, err := s.q.Query(ctx, q, args...)
	if err != nil {
		return nil, perrs.FromPostgres(err, "list week buckets")
	}
	defer rows.Close()

	var out []domain.Bucket
	for rows.Next() {
		b, err := scanBucket(rows)
		if err != nil {
			return nil, perrs.FromPostgres(err, "scan week bucket")
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
