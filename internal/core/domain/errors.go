package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("resource not found")
	ErrInternalServer = errors.New("internal server error")
)

// Auth errors
var (
	ErrMissingFields      = errors.New("email, username and password are required")
	ErrUserAlreadyExists  = errors.New("email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Availability errors
var (
	ErrMissingSearchParams = errors.New("missing floor, time, or date")
)

// Booking errors
var (
	ErrDailyQuotaExceeded = errors.New("daily booking limit reached")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrMissingUserName    = errors.New("missing userName")
)
