package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/princeomar/cruise-backend/internal/catalog"
	"github.com/princeomar/cruise-backend/internal/database"
	"github.com/princeomar/cruise-backend/internal/models"
	"github.com/princeomar/cruise-backend/pkg/notify"
)

// BookingLedger reads and moves bookings for the admin dashboard
type BookingLedger interface {
	List(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next models.BookingStatus) (*models.Booking, error)
}

// VisitLister reads every recorded visit
type VisitLister interface {
	List(ctx context.Context) ([]models.Visit, error)
}

// Actor identifies the admin performing a change
type Actor struct {
	UserID    uuid.UUID
	IP        string
	UserAgent string
}

// StatusChange is the outcome of an admin status update
type StatusChange struct {
	Booking  *models.Booking
	Previous models.BookingStatus
	// Stats is the last dashboard snapshot patched with this change,
	// nil when no dashboard has been computed yet.
	Stats *models.DashboardStats
}

// AnalyticsService serves the admin dashboard
type AnalyticsService struct {
	bookings BookingLedger
	visits   VisitLister
	auditor  Auditor
	notifier notify.Notifier
	loc      *time.Location
	now      func() time.Time
	runAsync func(func())
	logger   logrus.FieldLogger

	mu       sync.Mutex
	snapshot *dashboardSnapshot
}

// dashboardSnapshot is the last computed dashboard together with the
// status each booking had when it was counted
type dashboardSnapshot struct {
	stats   models.DashboardStats
	counted map[uuid.UUID]models.BookingStatus
}

// NewAnalyticsService creates a new analytics service. auditor and notifier may be nil.
func NewAnalyticsService(
	bookings BookingLedger,
	visits VisitLister,
	auditor Auditor,
	notifier notify.Notifier,
	loc *time.Location,
	logger logrus.FieldLogger,
) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{
		bookings: bookings,
		visits:   visits,
		auditor:  auditor,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
		runAsync: func(f func()) { go f() },
		logger:   logger,
	}
}

// Dashboard reads all visits and bookings concurrently and aggregates them
func (s *AnalyticsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var (
		visits   []models.Visit
		bookings []models.Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visits, err = s.visits.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.bookings.List(gctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	stats := Aggregate(visits, bookings, s.now(), s.loc)

	counted := make(map[uuid.UUID]models.BookingStatus, len(bookings))
	for _, b := range bookings {
		counted[b.ID] = b.Status
	}
	s.mu.Lock()
	s.snapshot = &dashboardSnapshot{stats: stats, counted: counted}
	s.mu.Unlock()

	return &stats, nil
}

// ListBookings returns bookings newest first, optionally filtered by status
func (s *AnalyticsService) ListBookings(ctx context.Context, status *models.BookingStatus) ([]models.Booking, error) {
	bookings, err := s.bookings.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus moves a pending booking to confirmed or cancelled.
// Terminal bookings cannot change.
func (s *AnalyticsService) UpdateBookingStatus(ctx context.Context, actor Actor, id uuid.UUID, next models.BookingStatus) (*StatusChange, error) {
	previous := models.BookingStatusPending
	if !previous.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	booking, err := s.bookings.UpdateStatus(ctx, id, next)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, database.ErrBookingNotPending):
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"admin_id":   actor.UserID,
		"from":       previous,
		"to":         next,
	}).Info("Booking status updated")

	s.audit(ctx, actor, booking, previous)

	route, ok := catalog.Lookup(catalog.RouteID(booking.CruiseType))
	if !ok {
		route = catalog.Route{Title: catalog.Text{EN: booking.CruiseType}}
	}
	dispatchEvent(s.notifier, s.runAsync, s.logger, notify.BookingEvent{
		Type:           notify.EventBookingStatusChanged,
		BookingID:      booking.ID.String(),
		Status:         string(booking.Status),
		PreviousStatus: string(previous),
		Summary:        SummarizeBooking(route, booking),
		OccurredAt:     booking.UpdatedAt,
	})

	return &StatusChange{
		Booking:  booking,
		Previous: previous,
		Stats:    s.patchSnapshot(booking, previous),
	}, nil
}

// patchSnapshot applies a status change to the last dashboard. A booking
// created after that dashboard was computed is first counted as previous.
func (s *AnalyticsService) patchSnapshot(booking *models.Booking, previous models.BookingStatus) *models.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil
	}
	stats := &s.snapshot.stats
	counted, ok := s.snapshot.counted[booking.ID]
	if !ok {
		stats.AddBooking(previous, booking.TotalPrice)
		counted = previous
	}
	stats.ApplyStatusChange(counted, booking.Status, booking.TotalPrice)
	s.snapshot.counted[booking.ID] = booking.Status

	patched := *stats
	return &patched
}

func (s *AnalyticsService) audit(ctx context.Context, actor Actor, booking *models.Booking, previous models.BookingStatus) {
	if s.auditor == nil {
		return
	}
	userID := actor.UserID
	bookingID := booking.ID
	err := s.auditor.Log(ctx, AuditEvent{
		UserID:     &userID,
		Action:     AuditBookingStatus,
		EntityType: "booking",
		EntityID:   &bookingID,
		IPAddress:  actor.IP,
		UserAgent:  actor.UserAgent,
		Details: map[string]interface{}{
			"from":        previous,
			"to":          booking.Status,
			"total_price": booking.TotalPrice,
		},
	})
	if err != nil {
		s.logger.WithError(err).Warn("Failed to audit booking status change")
	}
}
