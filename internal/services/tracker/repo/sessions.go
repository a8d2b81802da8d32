package repo

import (
	"context"
	stdsql "database/sql"
	"errors"
	"time"

	"clockjar/internal/core/calendar"
	perrs "clockjar/internal/platform/errors"
	"clockjar/internal/services/tracker/domain"
)

const sessionCols = `
	id::text, user_id::text, mode, started_at, ended_at,
	COALESCE(duration_seconds, 0), attributed_on, bucket_id::text, amount_cents`

func scanSession(row interface{ Scan(...any) error }) (domain.Session, error) {
	var (
		s       domain.Session
		mode    string
		endedAt *time.Time
		attrOn  time.Time
	)
	err := row.Scan(
		&s.ID, &s.UserID, &mode, &s.StartedAt, &endedAt,
		&s.DurationSeconds, &attrOn, &s.BucketID, &s.AmountCents,
	)
	if err != nil {
		return domain.Session{}, err
	}
	s.Mode = domain.Mode(mode)
	s.EndedAt = endedAt
	// date columns come back as UTC midnight; read components as-is
	s.AttributedOn = calendar.DateFromUTC(attrOn)
	return s, nil
}

// InsertOpen implements Storage. The partial unique index on open sessions
// makes a second open session per (user, mode) a duplicate-key failure.
func (s *pg) InsertOpen(ctx context.Context, in domain.Session) (domain.Session, error) {
	const q = `
		INSERT INTO work_sessions (id, user_id, mode, started_at, attributed_on, bucket_id)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6::uuid)
		RETURNING ` + sessionCols

	row := s.q.QueryRow(ctx, q,
		in.ID, in.UserID, string(in.Mode), in.StartedAt.UTC(), in.AttributedOn.UTC(), in.BucketID)
	out, err := scanSession(row)
	if err != nil {
		return domain.Session{}, perrs.FromPostgres(err, "insert open session")
	}
	return out, nil
}

// InsertClosed implements Storage (manual entries arrive already completed)
func (s *pg) InsertClosed(ctx context.Context, in domain.Session) (domain.Session, error) {
	const q = `
		INSERT INTO work_sessions
			(id, user_id, mode, started_at, ended_at, duration_seconds, attributed_on, bucket_id, amount_cents)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8::uuid, $9)
		RETURNING ` + sessionCols

	var endedAt any
	if in.EndedAt != nil {
		endedAt = in.EndedAt.UTC()
	}
	row := s.q.QueryRow(ctx, q,
		in.ID, in.UserID, string(in.Mode), in.StartedAt.UTC(), endedAt,
		in.DurationSeconds, in.AttributedOn.UTC(), in.BucketID, in.AmountCents)
	out, err := scanSession(row)
	if err != nil {
		return domain.Session{}, perrs.FromPostgres(err, "insert closed session")
	}
	return out, nil
}

// GetOpen implements Storage
func (s *pg) GetOpen(ctx context.Context, userID string, mode domain.Mode) (*domain.Session, error) {
	const q = `
		SELECT ` + sessionCols + `
		FROM work_sessions
		WHERE user_id = $1::uuid AND mode = $2 AND ended_at IS NULL`

	out, err := scanSession(s.q.QueryRow(ctx, q, userID, string(mode)))
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, perrs.FromPostgres(err, "get open session")
	}
	return &out, nil
}

// GetByID implements Storage, scoped to the owning user
func (s *pg) GetByID(ctx context.Context, userID, id string) (*domain.Session, error) {
	const q = `
		SELECT ` + sessionCols + `
		FROM work_sessions
		WHERE id = $1::uuid AND user_id = $2::uuid`

	out, err := scanSession(s.q.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return nil, nil
		}
		return nil, perrs.FromPostgres(err, "get session")
	}
	return &out, nil
}

// Close implements Storage
func (s *pg) Close(
	ctx context.Context,
	id string,
	endedAt time.Time,
	durationSeconds int64,
	amountCents *int64,
) (domain.Session, error) {
	const q = `
		UPDATE work_sessions
		SET ended_at = $2, duration_seconds = $3, amount_cents = $4, updated_at = now()
		WHERE id = $1::uuid
		RETURNING ` + sessionCols

	row := s.q.QueryRow(ctx, q, id, endedAt.UTC(), durationSeconds, amountCents)
	out, err := scanSession(row)
	if err != nil {
		return domain.Session{}, perrs.FromPostgres(err, "close session")
	}
	return out, nil
}

// UpdateSpan implements Storage
func (s *pg) UpdateSpan(
	ctx context.Context,
	id string,
	startedAt, endedAt time.Time,
	durationSeconds int64,
	attributedOn calendar.Date,
	bucketID string,
) error {
	const q = `
		UPDATE work_sessions
		SET started_at = $2, ended_at = $3, duration_seconds = $4,
			attributed_on = $5, bucket_id = $6::uuid, updated_at = now()
		WHERE id = $1::uuid`

	tag, err := s.q.Exec(ctx, q,
		id, startedAt.UTC(), endedAt.UTC(), durationSeconds, attributedOn.UTC(), bucketID)
	if err != nil {
		return perrs.FromPostgres(err, "update session span")
	}
	if tag.RowsAffected() == 0 {
		return perrs.NotFoundf("session %s not found", id)
	}
	return nil
}

// Delete implements Storage
func (s *pg) Delete(ctx context.Context, id string) error {
	tag, err := s.q.Exec(ctx, `DELETE FROM work_sessions WHERE id = $1::uuid`, id)
	if err != nil {
		return perrs.FromPostgres(err, "delete session")
	}
	if tag.RowsAffected() == 0 {
		return perrs.NotFoundf("session %s not found", id)
	}
	return nil
}

// ListCompletedInBucket implements Storage
func (s *pg) ListCompletedInBucket(ctx context.Context, bucketID string) ([]domain.Session, error) {
	const q = `
		SELECT ` + sessionCols + `
		FROM work_sessions
		WHERE bucket_id = $1::uuid AND ended_at IS NOT NULL
		ORDER BY started_at, id`

	rows, err := s.q.Query(ctx, q, bucketID)
	if err != nil {
		return nil, perrs.FromPostgres(err, "list bucket sessions")
	}
	defer rows.Close()

	var out []domain.Session
	for rows.Next() {
		x, err := scanSession(rows)
		if err != nil {
			return nil, perrs.FromPostgres(err, "scan bucket session")
		}
		out = append(out, x)
	}
	return out, rows.Err()
}

// CountInBucket implements Storage, counting open sessions too so a bucket
// with only a running timer is not garbage collected
func (s *pg) CountInBucket(ctx context.Context, bucketID string) (int64, error) {
	var n int64
	err := s.q.QueryRow(ctx,
		`SELECT count(*) FROM work_sessions WHERE bucket_id = $1::uuid`, bucketID).Scan(&n)
	if err != nil {
		return 0, perrs.FromPostgres(err, "count bucket sessions")
	}
	return n, nil
}

// ListOpen implements Storage
func (s *pg) ListOpen(ctx context.Context, userID string) ([]domain.Session, error) {
	const q = `
		SELECT ` + sessionCols + `
		FROM work_sessions
		WHERE user_id = $1::uuid AND ended_at IS NULL
		ORDER BY mode`

	rows, err := s.q.Query(ctx, q, userID)
	if err != nil {
		return nil, perrs.FromPostgres(err, "list open sessions")
	}
	defer rows.Close()

	var out []domain.Session
	for rows.Next() {
		x, err := scanSession(rows)
		if err != nil {
			return nil, perrs.FromPostgres(err, "scan open session")
		}
		out = append(out, x)
	}
	return out, rows.Err()
}
