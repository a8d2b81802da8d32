package domain

import perrs "clockjar/internal/platform/errors"

// Business-rule failures of the session state machine. They are regular
// platform errors with the conflict / invalid-argument codes so the HTTP
// layer maps them without special cases.

// ErrAlreadyRunning rejects a start while a session is open for the mode
func ErrAlreadyRunning(mode Mode) error {
	return perrs.Conflictf("a %s session is already running", mode)
}

// ErrNotRunning rejects a stop with no open session for the mode
func ErrNotRunning(mode Mode) error {
	return perrs.Conflictf("no %s session is running", mode)
}

// ErrNonPositiveDuration rejects a zero or negative span
func ErrNonPositiveDuration() error {
	return perrs.InvalidArgf("duration must be positive")
}

// ErrInvalidRange rejects an edit where end is not after start
func ErrInvalidRange() error {
	return perrs.InvalidArgf("ended_at must be after started_at")
}

// ErrInvalidAmount rejects a payment without a positive amount
func ErrInvalidAmount() error {
	return perrs.InvalidArgf("payment amount must be positive")
}

// ErrUnknownMode rejects a mode outside hourly/payment
func ErrUnknownMode(mode Mode) error {
	return perrs.InvalidArgf("unknown mode %q", string(mode))
}
