package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/princeomar/cruise-backend/internal/catalog"
	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/pkg/notify"
	"github.com/princeomar/cruise-backend/pkg/validator"
)

const notifyTimeout = 15 * time.Second

// BookingStore persists new bookings
type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
}

// SubmissionMeta carries request details that are not part of the form
type SubmissionMeta struct {
	IP        string // best-effort address from forwarding headers, logged only
	UserAgent string

	// ClientIP keys the rate limiter. It only reflects forwarding headers
	// set by a trusted proxy, so clients cannot rotate it.
	ClientIP string
}

// BookingService handles guest booking submissions
type BookingService struct {
	store          BookingStore
	guests         *validator.GuestValidator
	notifier       notify.Notifier
	limiter        *RateLimitService
	whatsAppNumber string
	loc            *time.Location
	now            func() time.Time
	runAsync       func(func())
	logger         logrus.FieldLogger
}

// NewBookingService creates a new booking service. notifier and limiter may be nil.
func NewBookingService(
	store BookingStore,
	notifier notify.Notifier,
	limiter *RateLimitService,
	whatsAppNumber string,
	loc *time.Location,
	logger logrus.FieldLogger,
) *BookingService {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingService{
		store:          store,
		guests:         validator.NewGuestValidator(),
		notifier:       notifier,
		limiter:        limiter,
		whatsAppNumber: whatsAppNumber,
		loc:            loc,
		now:            time.Now,
		runAsync:       func(f func()) { go f() },
		logger:         logger,
	}
}

// Submit validates a booking form, stores it as pending and returns the
// stored booking with a WhatsApp link summarizing it for the operator.
// Nothing is written when validation fails, and only valid submissions
// count against the sender's rate limit.
func (s *BookingService) Submit(ctx context.Context, req models.CreateBookingRequest, meta SubmissionMeta) (*models.BookingSubmission, error) {
	routeID := catalog.RouteID(req.CruiseType)
	route, ok := catalog.Lookup(routeID)
	if !ok {
		return nil, invalid("cruise_type", catalog.ErrUnknownRoute)
	}
	cabin, ok := catalog.ParseCabin(req.CabinType)
	if !ok {
		return nil, invalid("cabin_type", catalog.ErrUnknownCabin)
	}
	if err := catalog.ValidateGuestCounts(req.Adults, req.Children); err != nil {
		field := "adults"
		if errors.Is(err, catalog.ErrInvalidChildCount) {
			field = "children"
		}
		return nil, invalid(field, err)
	}
	checkIn, err := models.ParseDate(req.CheckInDate)
	if err != nil || !catalog.IsDepartureDate(routeID, checkIn, s.now().In(s.loc)) {
		return nil, invalid("check_in_date", ErrInvalidCheckInDate)
	}

	guest, err := s.guests.Validate(validator.GuestDetails{
		Name:            req.GuestName,
		Email:           req.GuestEmail,
		Phone:           req.GuestPhone,
		Country:         req.GuestCountry,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return nil, invalid(guestField(err), err)
	}

	total, err := catalog.Quote(routeID, cabin, req.Adults, req.Children)
	if err != nil {
		return nil, invalid("cabin_type", err)
	}

	booking := &models.Booking{
		CruiseType:      string(routeID),
		CabinType:       string(cabin),
		CheckInDate:     checkIn,
		Adults:          req.Adults,
		Children:        req.Children,
		GuestName:       guest.Name,
		GuestEmail:      guest.Email,
		GuestPhone:      guest.Phone,
		GuestCountry:    optional(guest.Country),
		SpecialRequests: optional(guest.SpecialRequests),
		TotalPrice:      total,
		Status:          models.BookingStatusPending,
	}
	if err := s.limiter.Allow(ctx, meta.ClientIP); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, booking); err != nil {
		s.logger.WithFields(logrus.Fields{
			"cruise_type": booking.CruiseType,
			"ip":          meta.IP,
			"error":       err.Error(),
		}).Error("Failed to store booking")
		return nil, ErrBookingFailed
	}

	summary := SummarizeBooking(route, booking)
	link := notify.WhatsAppLink(s.whatsAppNumber, notify.BookingMessage(summary))

	s.logger.WithFields(logrus.Fields{
		"booking_id":  booking.ID,
		"cruise_type": booking.CruiseType,
		"cabin_type":  booking.CabinType,
		"total_price": booking.TotalPrice,
	}).Info("Booking submitted")

	s.dispatch(notify.BookingEvent{
		Type:       notify.EventBookingCreated,
		BookingID:  booking.ID.String(),
		Status:     string(booking.Status),
		Summary:    summary,
		OccurredAt: booking.CreatedAt,
	})

	return &models.BookingSubmission{Booking: booking, WhatsAppURL: link}, nil
}

// dispatch hands an event to the notifier outside the request lifetime.
// Delivery failures are logged only.
func (s *BookingService) dispatch(event notify.BookingEvent) {
	dispatchEvent(s.notifier, s.runAsync, s.logger, event)
}

func dispatchEvent(notifier notify.Notifier, runAsync func(func()), logger logrus.FieldLogger, event notify.BookingEvent) {
	if notifier == nil {
		return
	}
	runAsync(func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := notifier.Notify(ctx, event); err != nil {
			logger.WithFields(logrus.Fields{
				"booking_id": event.BookingID,
				"event":      event.Type,
				"notifier":   notifier.Name(),
				"error":      err.Error(),
			}).Warn("Booking notification failed")
		}
	})
}

// SummarizeBooking builds the operator summary of a stored booking
func SummarizeBooking(route catalog.Route, b *models.Booking) notify.BookingSummary {
	summary := notify.BookingSummary{
		RouteTitle: route.Title.EN,
		Cabin:      b.CabinType,
		Date:       b.CheckInDate.String(),
		Adults:     b.Adults,
		Children:   b.Children,
		Total:      b.TotalPrice,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
	}
	if b.GuestCountry != nil {
		summary.GuestCountry = *b.GuestCountry
	}
	if b.SpecialRequests != nil {
		summary.SpecialRequests = *b.SpecialRequests
	}
	return summary
}

func guestField(err error) string {
	switch {
	case errors.Is(err, validator.ErrNameTooShort), errors.Is(err, validator.ErrNameTooLong):
		return "guest_name"
	case errors.Is(err, validator.ErrEmailInvalid), errors.Is(err, validator.ErrEmailTooLong):
		return "guest_email"
	case errors.Is(err, validator.ErrPhoneTooShort), errors.Is(err, validator.ErrPhoneTooLong):
		return "guest_phone"
	default:
		return "special_requests"
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
