package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/princeomar/cruise-backend/internal/models"
)

const bookingColumns = `id, cruise_type, cabin_type, check_in_date, adults, children,
	guest_name, guest_email, guest_phone, guest_country, special_requests,
	total_price, status, created_at, updated_at`

// ErrBookingNotPending is returned when a status update targets a booking
// that has already left the pending state
var ErrBookingNotPending = errors.New("booking is not pending")

// BookingRepository handles booking database operations
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking with status pending. ID and timestamps are
// assigned here and written back to b.
func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.Status = models.BookingStatusPending

	query := `
		INSERT INTO bookings (
			id, cruise_type, cabin_type, check_in_date, adults, children,
			guest_name, guest_email, guest_phone, guest_country, special_requests,
			total_price, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		b.ID, b.CruiseType, b.CabinType, b.CheckInDate, b.Adults, b.Children,
		b.GuestName, b.GuestEmail, b.GuestPhone, b.GuestCountry, b.SpecialRequests,
		b.TotalPrice, b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// List returns bookings newest first, optionally restricted to one status
func (r *BookingRepository) List(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	bookings := []models.Booking{}

	var err error
	if status != nil {
		err = r.db.SelectContext(ctx, &bookings,
			`SELECT `+bookingColumns+` FROM bookings WHERE status = $1 ORDER BY created_at DESC`, *status)
	} else {
		err = r.db.SelectContext(ctx, &bookings,
			`SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

// UpdateStatus moves a pending booking to next in a single conditional
// statement. A booking that exists but is no longer pending yields
// ErrBookingNotPending; a missing one yields ErrNotFound.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, next models.BookingStatus) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + bookingColumns

	var b models.Booking
	err := r.db.GetContext(ctx, &b, query, id, next)
	if err == nil {
		return &b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrBookingNotPending
}
