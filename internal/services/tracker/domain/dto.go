package domain

import "time"

// Wire DTOs for tracker http. Times are RFC3339 UTC, dates are ISO
// "2006-01-02", money is integer cents.

// StartInput starts a timer for one mode
type StartInput struct {
	Mode string `json:"mode" validate:"required,oneof=hourly payment" example:"hourly"`
}

// StopInput stops the running timer for one mode
type StopInput struct {
	Mode        string `json:"mode" validate:"required,oneof=hourly payment" example:"payment"`
	AmountCents *int64 `json:"amount_cents,omitempty" validate:"omitempty,min=1" example:"10000"`
}

// EntryInput records a finished span against an explicit business day
type EntryInput struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02" example:"2026-02-23"`
	Mode            string `json:"mode" validate:"required,oneof=hourly payment" example:"hourly"`
	DurationSeconds int64  `json:"duration_seconds" validate:"required,min=1" example:"3600"`
	AmountCents     *int64 `json:"amount_cents,omitempty" validate:"omitempty,min=1" example:"10000"`
}

// EditInput rewrites the span of an existing session
type EditInput struct {
	StartedAt string `json:"started_at" validate:"required" example:"2026-02-23T14:00:00Z"`
	EndedAt   string `json:"ended_at" validate:"required" example:"2026-02-23T15:01:01Z"`
}

// SessionDTO is the wire form of a Session
type SessionDTO struct {
	ID                   string `json:"id" example:"0d4d5a6e-3c2b-4a52-9f0e-2b9a1c62e7aa"`
	Mode                 string `json:"mode" example:"hourly"`
	StartedAt            string `json:"started_at" example:"2026-02-23T14:00:00Z"`
	EndedAt              string `json:"ended_at,omitempty" example:"2026-02-23T15:01:01Z"`
	DurationSeconds      int64  `json:"duration_seconds" example:"3661"`
	AttributedOn         string `json:"attributed_on" example:"2026-02-23"`
	WeekNumber           int    `json:"week_number" example:"9"`
	WeekYear             int    `json:"week_year" example:"2026"`
	AmountCents          *int64 `json:"amount_cents,omitempty" example:"10000"`
	EffectiveHourlyCents int64  `json:"effective_hourly_cents,omitempty" example:"5000"`
}

// SessionDTOFrom maps a Session to its wire form
func SessionDTOFrom(s Session, weekNumber, weekYear int) SessionDTO {
	out := SessionDTO{
		ID:                   s.ID,
		Mode:                 string(s.Mode),
		StartedAt:            s.StartedAt.UTC().Format(time.RFC3339),
		DurationSeconds:      s.DurationSeconds,
		AttributedOn:         s.AttributedOn.String(),
		WeekNumber:           weekNumber,
		WeekYear:             weekYear,
		AmountCents:          s.AmountCents,
		EffectiveHourlyCents: s.EffectiveHourlyCents(),
	}
	if s.EndedAt != nil {
		out.EndedAt = s.EndedAt.UTC().Format(time.RFC3339)
	}
	return out
}

// StatusDTO reports the open sessions of a user, at most one per mode
type StatusDTO struct {
	Open []SessionDTO `json:"open"`
}
