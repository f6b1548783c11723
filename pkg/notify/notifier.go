package notify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// EventType names a booking lifecycle event
type EventType string

const (
	EventBookingCreated       EventType = "booking.created"
	EventBookingStatusChanged EventType = "booking.status_changed"
)

// BookingEvent is handed to notifiers after a booking is stored or changes status
type BookingEvent struct {
	Type           EventType      `json:"type"`
	BookingID      string         `json:"booking_id"`
	Status         string         `json:"status"`
	PreviousStatus string         `json:"previous_status,omitempty"`
	Summary        BookingSummary `json:"summary"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

// Notifier delivers booking events to the operator
type Notifier interface {
	Name() string
	Notify(ctx context.Context, event BookingEvent) error
}

// Multi fans an event out to every notifier
type Multi []Notifier

// Name implements Notifier
func (m Multi) Name() string {
	return "multi"
}

// Notify calls every notifier and joins their errors
func (m Multi) Notify(ctx context.Context, event BookingEvent) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", n.Name(), err))
		}
	}
	return errors.Join(errs...)
}
