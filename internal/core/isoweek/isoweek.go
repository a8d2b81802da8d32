// Package isoweek implements ISO-8601 week numbering over calendar dates.
//
// A week runs Monday through Sunday and belongs to the year that owns its
// Thursday, so the first days of January can land in week 52/53 of the prior
// year and Dec 29-31 can land in week 1 of the next. Week holds both the
// number and the week-year for exactly that reason; bucketing on the number
// alone corrupts year boundaries.
package isoweek

import "clockjar/internal/core/calendar"

// Week identifies an ISO-8601 week
type Week struct {
	Number int // 1..53
	Year   int // week-based year, not the calendar year
}

// Of returns the ISO week containing d.
// Shift d to the Thursday of its week; that Thursday's calendar year is the
// week-year, and the week number counts from the year's first Thursday.
func Of(d calendar.Date) Week {
	thursday := d.AddDays(4 - d.ISOWeekday())

	jan4 := calendar.Date{Year: thursday.Year, Month: 1, Day: 4}
	firstThursday := jan4.AddDays(4 - jan4.ISOWeekday())

	return Week{
		Number: 1 + firstThursday.DaysUntil(thursday)/7,
		Year:   thursday.Year,
	}
}

// Range returns the Monday and Sunday bounding w, inclusive
func Range(w Week) (start, end calendar.Date) {
	// Jan 4 is always inside week 1 of its week-year
	jan4 := calendar.Date{Year: w.Year, Month: 1, Day: 4}
	firstMonday := jan4.AddDays(1 - jan4.ISOWeekday())

	start = firstMonday.AddDays(7 * (w.Number - 1))
	end = start.AddDays(6)
	return start, end
}
