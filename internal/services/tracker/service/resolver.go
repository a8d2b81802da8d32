package service

import (
	"time"

	"github.com/google/uuid"

	"clockjar/internal/core/calendar"
	"clockjar/internal/core/isoweek"
	"clockjar/internal/services/tracker/domain"
)

// Two deliberate attribution paths. Instants go through the business timezone
// once to become a calendar day; explicit dates are taken as-is and must NOT
// be pushed back through the converter, or a date constructed near a zone
// boundary shifts a day backwards.

// resolveInstant attributes a session instant to its business day and week
func resolveInstant(t time.Time) (calendar.Date, isoweek.Week) {
	d := calendar.DateOf(t)
	return d, isoweek.Of(d)
}

// resolveDate attributes an explicit calendar day (manual entries)
func resolveDate(d calendar.Date) isoweek.Week {
	return isoweek.Of(d)
}

// bucketShell builds the row for a week bucket that may need creating.
// Month and year come from the Monday of the week, so a week straddling a
// month boundary belongs entirely to its Monday's month.
func bucketShell(userID string, w isoweek.Week) domain.Bucket {
	start, end := isoweek.Range(w)
	return domain.Bucket{
		ID:      uuid.NewString(),
		UserID:  userID,
		Week:    w,
		Month:   int(start.Month),
		Year:    start.Year,
		StartOn: start,
		EndOn:   end,
	}
}

// entryAnchor is the conventional business-day hour a manual entry ends at,
// measured from the stored business midnight of its date
const entryAnchor = 17 * time.Hour

// entrySpan constructs clock times for a date-plus-duration entry: the end is
// anchored at a fixed hour of the business day, the start counts backwards
func entrySpan(on calendar.Date, durationSeconds int64) (start, end time.Time) {
	end = calendar.MidnightUTC(on).Add(entryAnchor)
	start = end.Add(-time.Duration(durationSeconds) * time.Second)
	return start, end
}
