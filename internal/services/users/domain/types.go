// Package domain defines the types and ports for the users service
package domain

import "time"

// User is an account known to the tracker
type User struct {
	ID              string
	Login           string
	HourlyRateCents int64
	CreatedAt       time.Time
}
