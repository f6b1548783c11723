package services

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound is returned when no booking has the requested id
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition is returned when a booking status change is not allowed
	ErrInvalidTransition = errors.New("booking status cannot change")

	// ErrInvalidCheckInDate is returned when the date is not a bookable departure
	ErrInvalidCheckInDate = errors.New("check-in date is not an available departure")

	// ErrBookingFailed hides persistence details from guests
	ErrBookingFailed = errors.New("booking could not be saved, please try again")

	// ErrInvalidCredentials is returned for a wrong email or password
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthorized is returned when an authenticated principal holds no admin role
	ErrNotAuthorized = errors.New("you do not have admin access")

	// ErrAccountDisabled is returned for deactivated principals
	ErrAccountDisabled = errors.New("account is inactive")

	// ErrEmailTaken is returned when signing up with a registered email
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidRefreshToken is returned for unknown, revoked or expired sessions
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

	// ErrUserNotFound is returned when a role is granted to an unknown principal
	ErrUserNotFound = errors.New("admin user not found")
)

// ValidationError reports the first invalid field of a request
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
