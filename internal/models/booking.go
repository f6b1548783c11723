package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is a known status
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an admin may move a booking from s to next.
// Only pending bookings move, and only into a terminal state.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return s == BookingStatusPending &&
		(next == BookingStatusConfirmed || next == BookingStatusCancelled)
}

// Booking represents a guest cruise reservation request
type Booking struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	CruiseType      string        `json:"cruise_type" db:"cruise_type"`
	CabinType       string        `json:"cabin_type" db:"cabin_type"`
	CheckInDate     Date          `json:"check_in_date" db:"check_in_date"`
	Adults          int           `json:"adults" db:"adults"`
	Children        int           `json:"children" db:"children"`
	GuestName       string        `json:"guest_name" db:"guest_name"`
	GuestEmail      string        `json:"guest_email" db:"guest_email"`
	GuestPhone      string        `json:"guest_phone" db:"guest_phone"`
	GuestCountry    *string       `json:"guest_country,omitempty" db:"guest_country"`
	SpecialRequests *string       `json:"special_requests,omitempty" db:"special_requests"`
	TotalPrice      int64         `json:"total_price" db:"total_price"`
	Status          BookingStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest represents the guest booking form payload.
// Guest contact fields are validated by pkg/validator so that the first
// violation is reported in a fixed order.
type CreateBookingRequest struct {
	CruiseType      string `json:"cruise_type" binding:"required"`
	CabinType       string `json:"cabin_type" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
	GuestCountry    string `json:"guest_country"`
	SpecialRequests string `json:"special_requests"`
}

// BookingSubmission is returned to the guest after a booking is stored
type BookingSubmission struct {
	Booking     *Booking `json:"booking"`
	WhatsAppURL string   `json:"whatsapp_url"`
	Message     string   `json:"message"`
}

// UpdateBookingStatusRequest represents an admin status transition
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required,oneof=confirmed cancelled"`
}
