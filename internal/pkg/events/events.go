// Package events carries domain events between the API and the notifier
// over a RabbitMQ topic exchange.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	KeyBookingCreated       = "booking.created"
	KeyBookingStatusChanged = "booking.status_changed"
	KeyPaymentCreated       = "payment.created"
	KeyPaymentStatusChanged = "payment.status_changed"
)

// BookingEvent is published on booking creation and status changes.
type BookingEvent struct {
	BookingID    uuid.UUID `json:"booking_id"`
	ClientID     uuid.UUID `json:"client_id"`
	TechnicianID uuid.UUID `json:"technician_id"`
	ServiceName  string    `json:"service_name"`
	Status       string    `json:"status"`
	Slot         string    `json:"slot"`
	LocationName string    `json:"location_name"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// PaymentEvent is published on payment creation and status changes.
type PaymentEvent struct {
	PaymentID    uuid.UUID `json:"payment_id"`
	BookingID    uuid.UUID `json:"booking_id"`
	ClientID     uuid.UUID `json:"client_id"`
	TechnicianID uuid.UUID `json:"technician_id"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, key string, v any) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
