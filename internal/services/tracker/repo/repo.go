// Package repo provides the tracker repository implementation
package repo

import (
	"context"
	"time"

	"clockjar/internal/core/calendar"
	"clockjar/internal/core/isoweek"
	"clockjar/internal/modkit/repokit"
	"clockjar/internal/services/tracker/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage is the persistence surface the tracker core needs. Pointer returns
// mean "may be absent"; a nil pointer with a nil error is a clean miss.
type Storage interface {
	// sessions
	InsertOpen(ctx context.Context, s domain.Session) (domain.Session, error)
	InsertClosed(ctx context.Context, s domain.Session) (domain.Session, error)
	GetOpen(ctx context.Context, userID string, mode domain.Mode) (*domain.Session, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Session, error)
	Close(ctx context.Context, id string, endedAt time.Time, durationSeconds int64, amountCents *int64) (domain.Session, error)
	UpdateSpan(
		ctx context.Context,
		id string,
		startedAt, endedAt time.Time,
		durationSeconds int64,
		attributedOn calendar.Date,
		bucketID string,
	) error
	Delete(ctx context.Context, id string) error
	ListCompletedInBucket(ctx context.Context, bucketID string) ([]domain.Session, error)
	CountInBucket(ctx context.Context, bucketID string) (int64, error)
	ListOpen(ctx context.Context, userID string) ([]domain.Session, error)

	// week buckets
	EnsureBucket(ctx context.Context, b domain.Bucket) (domain.Bucket, error)
	FindBucket(ctx context.Context, userID string, w isoweek.Week) (*domain.Bucket, error)
	GetBucket(ctx context.Context, id string) (*domain.Bucket, error)
	SetBucketTotals(ctx context.Context, id string, totalSeconds, totalEarningsCents int64) error
	DeleteBucket(ctx context.Context, id string) error
	ListBucketsForMonth(ctx context.Context, userID string, year, month int) ([]domain.Bucket, error)
	ListBucketsInRange(ctx context.Context, userID string, from, to calendar.Date) ([]domain.Bucket, error)

	// month summaries
	FindMonthSummary(ctx context.Context, userID string, year, month int) (*domain.MonthSummary, error)
	UpsertMonthSummary(ctx context.Context, ms domain.MonthSummary) error
	DeleteMonthSummary(ctx context.Context, userID string, year, month int) error
}
