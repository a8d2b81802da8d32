// Package domain holds DTOs for reports http and service contracts
package domain

// Read-only summary shapes. Hours are derived from stored seconds at read
// time; money stays integer cents on the wire.

// WeekDTO is one week bucket's totals
type WeekDTO struct {
	WeekNumber         int     `json:"week_number" example:"9"`
	WeekYear           int     `json:"week_year" example:"2026"`
	StartOn            string  `json:"start_on" example:"2026-02-23"`
	EndOn              string  `json:"end_on" example:"2026-03-01"`
	TotalSeconds       int64   `json:"total_seconds" example:"3661"`
	TotalHours         float64 `json:"total_hours" example:"1.0169"`
	TotalEarningsCents int64   `json:"total_earnings_cents" example:"2542"`
}

// MonthInput selects one month summary
type MonthInput struct {
	Year  int `json:"year" validate:"required,min=2000,max=2100" example:"2026"`
	Month int `json:"month" validate:"required,min=1,max=12" example:"2"`
}

// MonthDTO is one month's totals
type MonthDTO struct {
	Year               int     `json:"year" example:"2026"`
	Month              int     `json:"month" example:"2"`
	TotalSeconds       int64   `json:"total_seconds" example:"7200"`
	TotalHours         float64 `json:"total_hours" example:"2"`
	TotalEarningsCents int64   `json:"total_earnings_cents" example:"10000"`
}

// WeeksInput selects the weeks overlapping a date range
type WeeksInput struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-02-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-03-01"`
}
