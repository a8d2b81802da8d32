// Package domain defines the types and ports for the tracker service
package domain

import (
	"time"

	"clockjar/internal/core/calendar"
	"clockjar/internal/core/isoweek"
)

// Mode is the recording mode of a work session
type Mode string

// The two supported recording modes
const (
	ModeHourly  Mode = "hourly"  // earnings derived from the user's configured rate
	ModePayment Mode = "payment" // earnings are the recorded amount, rate is derived
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool { return m == ModeHourly || m == ModePayment }

// Session is a single tracked unit of work. EndedAt nil means the session is
// open (running); DurationSeconds is meaningful only once closed.
type Session struct {
	ID              string
	UserID          string
	Mode            Mode
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds int64
	AttributedOn    calendar.Date
	BucketID        string
	AmountCents     *int64 // payment mode only
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Open reports whether the session is still running
func (s Session) Open() bool { return s.EndedAt == nil }

// EffectiveHourlyCents is the derived rate of a payment session,
// defined as 0 when the duration is 0
func (s Session) EffectiveHourlyCents() int64 {
	if s.Mode != ModePayment || s.AmountCents == nil || s.DurationSeconds == 0 {
		return 0
	}
	return *s.AmountCents * 3600 / s.DurationSeconds
}

// Bucket aggregates the sessions of one user and one ISO week.
// Totals are denormalized and re-established by full recompute, so they always
// match the sum over the bucket's completed sessions.
type Bucket struct {
	ID                 string
	UserID             string
	Week               isoweek.Week
	Month              int // month of the week's Monday, see StartOn
	Year               int
	StartOn            calendar.Date
	EndOn              calendar.Date
	TotalSeconds       int64
	TotalEarningsCents int64
}

// MonthSummary aggregates the buckets attributed to one calendar month
type MonthSummary struct {
	UserID             string
	Year               int
	Month              int
	TotalSeconds       int64
	TotalEarningsCents int64
}
