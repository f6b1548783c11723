package validator

import (
	"errors"
	"strings"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
)

var (
	// ErrNameTooShort indicates the guest name has fewer than 2 characters
	ErrNameTooShort = errors.New("name must be at least 2 characters")

	// ErrNameTooLong indicates the guest name exceeds 100 characters
	ErrNameTooLong = errors.New("name must be at most 100 characters")

	// ErrEmailInvalid indicates the email address is not well-formed
	ErrEmailInvalid = errors.New("invalid email address")

	// ErrEmailTooLong indicates the email address exceeds 255 characters
	ErrEmailTooLong = errors.New("email must be at most 255 characters")

	// ErrPhoneTooShort indicates the phone number has fewer than 8 characters
	ErrPhoneTooShort = errors.New("phone number must be at least 8 characters")

	// ErrPhoneTooLong indicates the phone number exceeds 20 characters
	ErrPhoneTooLong = errors.New("phone number must be at most 20 characters")

	// ErrRequestsTooLong indicates special requests exceed 1000 characters
	ErrRequestsTooLong = errors.New("special requests must be at most 1000 characters")
)

// Field limits, counted in characters
const (
	MinNameLength     = 2
	MaxNameLength     = 100
	MaxEmailLength    = 255
	MinPhoneLength    = 8
	MaxPhoneLength    = 20
	MaxRequestsLength = 1000
)

// GuestDetails holds the contact fields of a booking form
type GuestDetails struct {
	Name            string
	Email           string
	Phone           string
	Country         string
	SpecialRequests string
}

// GuestValidator checks guest contact fields
type GuestValidator struct {
	validate *playground.Validate
}

// NewGuestValidator creates a new guest validator instance
func NewGuestValidator() *GuestValidator {
	return &GuestValidator{validate: playground.New()}
}

// Validate trims every field and checks name, email, phone and special
// requests in that order. The first violation is returned; country is optional.
// Returns the trimmed details on success.
func (v *GuestValidator) Validate(in GuestDetails) (GuestDetails, error) {
	out := GuestDetails{
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Country:         strings.TrimSpace(in.Country),
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
	}

	nameLen := utf8.RuneCountInString(out.Name)
	if nameLen < MinNameLength {
		return GuestDetails{}, ErrNameTooShort
	}
	if nameLen > MaxNameLength {
		return GuestDetails{}, ErrNameTooLong
	}

	if !v.IsEmail(out.Email) {
		return GuestDetails{}, ErrEmailInvalid
	}
	if utf8.RuneCountInString(out.Email) > MaxEmailLength {
		return GuestDetails{}, ErrEmailTooLong
	}

	phoneLen := utf8.RuneCountInString(out.Phone)
	if phoneLen < MinPhoneLength {
		return GuestDetails{}, ErrPhoneTooShort
	}
	if phoneLen > MaxPhoneLength {
		return GuestDetails{}, ErrPhoneTooLong
	}

	if utf8.RuneCountInString(out.SpecialRequests) > MaxRequestsLength {
		return GuestDetails{}, ErrRequestsTooLong
	}

	return out, nil
}

// IsEmail reports whether s is a well-formed email address
func (v *GuestValidator) IsEmail(s string) bool {
	if s == "" {
		return false
	}
	return v.validate.Var(s, "email") == nil
}

// IsValidationError reports whether err is one of the guest field violations
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrNameTooShort, ErrNameTooLong,
		ErrEmailInvalid, ErrEmailTooLong,
		ErrPhoneTooShort, ErrPhoneTooLong,
		ErrRequestsTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
