// Package service contains the session lifecycle workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clockjar/internal/core/calendar"
	"clockjar/internal/modkit/repokit"
	perrs "clockjar/internal/platform/errors"
	ptime "clockjar/internal/platform/time"
	"clockjar/internal/services/tracker/domain"
	"clockjar/internal/services/tracker/repo"
	usersdomain "clockjar/internal/services/users/domain"
)

// Service defines the tracker service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the tracker service. Each mutation runs inside one
// transaction: state check, session write, bucket fetch-or-create, and the
// recomputes all commit or roll back together.
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
	rates  usersdomain.RatePort
}

// New constructs a tracker service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], rates usersdomain.RatePort) *Svc {
	if db == nil {
		panic("tracker.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("tracker.Service requires a non nil Storage binder")
	}
	if rates == nil {
		panic("tracker.Service requires a non nil RatePort")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, rates: rates}
}

// Start opens a session for (user, mode) at now.
// Fails with a conflict when one is already running.
func (s *Svc) Start(ctx context.Context, userID string, mode domain.Mode, now time.Time) (domain.Session, error) {
	if !mode.Valid() {
		return domain.Session{}, domain.ErrUnknownMode(mode)
	}
	// existence check before any bucket is created
	if _, err := s.rates.HourlyRateCents(ctx, userID); err != nil {
		return domain.Session{}, err
	}

	var out domain.Session
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)

		open, err := st.GetOpen(ctx, userID, mode)
		if err != nil {
			return err
		}
		if open != nil {
			return domain.ErrAlreadyRunning(mode)
		}

		on, week := resolveInstant(now)
		bucket, err := st.EnsureBucket(ctx, bucketShell(userID, week))
		if err != nil {
			return err
		}

		out, err = st.InsertOpen(ctx, domain.Session{
			ID:           uuid.NewString(),
			UserID:       userID,
			Mode:         mode,
			StartedAt:    now.UTC(),
			AttributedOn: on,
			BucketID:     bucket.ID,
		})
		if perrs.IsCode(err, perrs.ErrorCodeDuplicateKey) {
			// lost a concurrent start race on the open-session index
			return domain.ErrAlreadyRunning(mode)
		}
		return err
	})
	return out, err
}

// Stop closes the open session for (user, mode) at now and refreshes the
// totals it contributes to. Payment mode requires a positive amount.
func (s *Svc) Stop(
	ctx context.Context,
	userID string,
	mode domain.Mode,
	amountCents *int64,
	now time.Time,
) (domain.Session, error) {
	if !mode.Valid() {
		return domain.Session{}, domain.ErrUnknownMode(mode)
	}
	rate, err := s.rates.HourlyRateCents(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}

	var out domain.Session
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)

		open, err := st.GetOpen(ctx, userID, mode)
		if err != nil {
			return err
		}
		if open == nil {
			return domain.ErrNotRunning(mode)
		}

		seconds := int64(now.Sub(open.StartedAt) / time.Second)
		if seconds <= 0 {
			return domain.ErrNonPositiveDuration()
		}

		var amount *int64
		if mode == domain.ModePayment {
			if amountCents == nil || *amountCents <= 0 {
				return domain.ErrInvalidAmount()
			}
			amount = amountCents
		}

		out, err = st.Close(ctx, open.ID, now, seconds, amount)
		if err != nil {
			return err
		}

		bucket, err := st.GetBucket(ctx, open.BucketID)
		if err != nil {
			return err
		}
		if bucket == nil {
			return perrs.DBf("bucket %s missing for open session %s", open.BucketID, open.ID)
		}
		return s.recomputeAfter(ctx, st, *bucket, rate)
	})
	return out, err
}

// AddEntry records an already-finished span against an explicit business day.
// The bucket is resolved from the supplied date, not from the constructed
// clock times.
func (s *Svc) AddEntry(
	ctx context.Context,
	userID string,
	on calendar.Date,
	mode domain.Mode,
	durationSeconds int64,
	amountCents *int64,
) (domain.Session, error) {
	if !mode.Valid() {
		return domain.Session{}, domain.ErrUnknownMode(mode)
	}
	if durationSeconds <= 0 {
		return domain.Session{}, domain.ErrNonPositiveDuration()
	}
	var amount *int64
	if mode == domain.ModePayment {
		if amountCents == nil || *amountCents <= 0 {
			return domain.Session{}, domain.ErrInvalidAmount()
		}
		amount = amountCents
	}
	rate, err := s.rates.HourlyRateCents(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}

	var out domain.Session
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)

		week := resolveDate(on)
		bucket, err := st.EnsureBucket(ctx, bucketShell(userID, week))
		if err != nil {
			return err
		}

		start, end := entrySpan(on, durationSeconds)
		out, err = st.InsertClosed(ctx, domain.Session{
			ID:              uuid.NewString(),
			UserID:          userID,
			Mode:            mode,
			StartedAt:       start,
			EndedAt:         ptime.Ptr(end),
			DurationSeconds: durationSeconds,
			AttributedOn:    on,
			BucketID:        bucket.ID,
			AmountCents:     amount,
		})
		if err != nil {
			return err
		}
		return s.recomputeAfter(ctx, st, bucket, rate)
	})
	return out, err
}

// EditSession rewrites a session's span, re-attributes it, and moves it
// between buckets when the week changed. Both affected buckets and months
// are recomputed.
func (s *Svc) EditSession(
	ctx context.Context,
	userID, sessionID string,
	startedAt, endedAt time.Time,
) (domain.Session, error) {
	if !endedAt.After(startedAt) {
		return domain.Session{}, domain.ErrInvalidRange()
	}
	rate, err := s.rates.HourlyRateCents(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}

	var out domain.Session
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)

		sess, err := st.GetByID(ctx, userID, sessionID)
		if err != nil {
			return err
		}
		if sess == nil {
			return perrs.NotFoundf("session %s not found", sessionID)
		}
		oldBucket, err := st.GetBucket(ctx, sess.BucketID)
		if err != nil {
			return err
		}
		if oldBucket == nil {
			return perrs.DBf("bucket %s missing for session %s", sess.BucketID, sess.ID)
		}

		on, week := resolveInstant(startedAt)
		seconds := int64(endedAt.Sub(startedAt) / time.Second)
		if seconds <= 0 {
			return domain.ErrNonPositiveDuration()
		}

		newBucket := *oldBucket
		if week != oldBucket.Week {
			newBucket, err = st.EnsureBucket(ctx, bucketShell(userID, week))
			if err != nil {
				return err
			}
		}

		if err := st.UpdateSpan(ctx, sess.ID, startedAt, endedAt, seconds, on, newBucket.ID); err != nil {
			return err
		}

		if err := s.recomputeAfter(ctx, st, *oldBucket, rate); err != nil {
			return err
		}
		if newBucket.ID != oldBucket.ID {
			if err := s.recomputeAfter(ctx, st, newBucket, rate); err != nil {
				return err
			}
		}

		got, err := st.GetByID(ctx, userID, sess.ID)
		if err != nil {
			return err
		}
		out = *got
		return nil
	})
	return out, err
}

// DeleteSession removes a session and refreshes its former bucket and month
func (s *Svc) DeleteSession(ctx context.Context, userID, sessionID string) error {
	rate, err := s.rates.HourlyRateCents(ctx, userID)
	if err != nil {
		return err
	}

	return s.db.Tx(ctx, func(q repokit.Queryer) error {
		st := s.binder.Bind(q)

		sess, err := st.GetByID(ctx, userID, sessionID)
		if err != nil {
			return err
		}
		if sess == nil {
			return perrs.NotFoundf("session %s not found", sessionID)
		}
		bucket, err := st.GetBucket(ctx, sess.BucketID)
		if err != nil {
			return err
		}

		if err := st.Delete(ctx, sess.ID); err != nil {
			return err
		}
		if bucket == nil {
			return nil
		}
		return s.recomputeAfter(ctx, st, *bucket, rate)
	})
}

// OpenSessions lists the running sessions of a user, at most one per mode
func (s *Svc) OpenSessions(ctx context.Context, userID string) ([]domain.Session, error) {
	return s.Repo.ListOpen(ctx, userID)
}
