package service

import (
	"context"

	"clockjar/internal/services/tracker/domain"
	"clockjar/internal/services/tracker/repo"
)

// Aggregation never applies deltas. Every recompute re-reads the full set of
// persisted sessions (or buckets) and overwrites the stored totals, so the
// invariant "totals match the sum of contents" is re-established on every
// call and running a recompute twice is a no-op.

// recomputeWeek re-derives one bucket's totals from its completed sessions.
// A bucket holding no sessions at all (open ones count) is deleted rather
// than kept as an empty shell.
func (s *Svc) recomputeWeek(ctx context.Context, st repo.Storage, bucketID string, rateCents int64) error {
	n, err := st.CountInBucket(ctx, bucketID)
	if err != nil {
		return err
	}
	if n == 0 {
		return st.DeleteBucket(ctx, bucketID)
	}

	sessions, err := st.ListCompletedInBucket(ctx, bucketID)
	if err != nil {
		return err
	}

	var totalSeconds, hourlySeconds, earningsCents int64
	for _, x := range sessions {
		totalSeconds += x.DurationSeconds
		switch x.Mode {
		case domain.ModeHourly:
			hourlySeconds += x.DurationSeconds
		case domain.ModePayment:
			// the recorded amount is authoritative, never rate times hours
			if x.AmountCents != nil {
				earningsCents += *x.AmountCents
			}
		}
	}
	earningsCents += hourlySeconds * rateCents / 3600

	return st.SetBucketTotals(ctx, bucketID, totalSeconds, earningsCents)
}

// recomputeMonth re-derives a month summary from the buckets attributed to
// it. When no weeks remain the summary row is deleted.
func (s *Svc) recomputeMonth(ctx context.Context, st repo.Storage, userID string, year, month int) error {
	buckets, err := st.ListBucketsForMonth(ctx, userID, year, month)
	if err != nil {
		return err
	}
	if len(buckets) == 0 {
		return st.DeleteMonthSummary(ctx, userID, year, month)
	}

	ms := domain.MonthSummary{UserID: userID, Year: year, Month: month}
	for _, b := range buckets {
		ms.TotalSeconds += b.TotalSeconds
		ms.TotalEarningsCents += b.TotalEarningsCents
	}
	return st.UpsertMonthSummary(ctx, ms)
}

// recomputeAfter runs the week recompute then the month recompute for the
// bucket a mutation touched. The bucket row may already be gone by the time
// the month pass runs, which is why month/year are taken from the snapshot.
func (s *Svc) recomputeAfter(ctx context.Context, st repo.Storage, b domain.Bucket, rateCents int64) error {
	if err := s.recomputeWeek(ctx, st, b.ID, rateCents); err != nil {
		return err
	}
	return s.recomputeMonth(ctx, st, b.UserID, b.Year, b.Month)
}
