// Package calendar models civil dates in the business timezone.
//
// All work is attributed to the wall-clock day in America/New_York no matter
// where the server runs. Dates cross process and storage boundaries as plain
// year/month/day components; the only two conversions that touch a timezone
// are DateOf (instant -> business day) and MidnightUTC (business midnight ->
// instant), so DST shifts are handled by the zone database and nowhere else.
package calendar

import (
	"fmt"
	"time"
)

// BusinessZoneName is the fixed business timezone
const BusinessZoneName = "America/New_York"

var businessZone = mustLoadZone(BusinessZoneName)

func mustLoadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("calendar: load %s: %v", name, err))
	}
	return loc
}

// Date is a civil calendar date with no time-of-day and no timezone
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the business-local calendar day that contains the instant
func DateOf(t time.Time) Date {
	y, m, d := t.In(businessZone).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ClockOf returns the business-local wall clock components of the instant
func ClockOf(t time.Time) (hour, minute, second int) {
	return t.In(businessZone).Clock()
}

// MidnightUTC returns the UTC instant of business-local midnight on d.
// Round trip holds: DateOf(MidnightUTC(d)) == d for every valid date,
// including DST transition days (midnight itself never falls in the gap).
func MidnightUTC(d Date) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, businessZone).UTC()
}

// DateFromUTC reads calendar components straight from the UTC clock of t.
// Use it when scanning SQL date columns: drivers hand those back as UTC
// midnight instants, and routing them through DateOf would shift the day
// backwards for any zone west of Greenwich.
func DateFromUTC(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse parses a date in ISO "2006-01-02" form
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateFromUTC(t), nil
}

// String renders the date in ISO "2006-01-02" form
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero value
func (d Date) IsZero() bool { return d == Date{} }

// UTC returns the date as a UTC midnight instant, the storage form for
// SQL date parameters (read back through DateFromUTC)
func (d Date) UTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative)
func (d Date) AddDays(n int) Date {
	return DateFromUTC(d.UTC().AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to other
func (d Date) DaysUntil(other Date) int {
	return int(other.UTC().Sub(d.UTC()) / (24 * time.Hour))
}

// ISOWeekday returns the ISO-8601 weekday number, Monday=1 through Sunday=7
func (d Date) ISOWeekday() int {
	wd := int(d.UTC().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool { return other.Before(d) }
