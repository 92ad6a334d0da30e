package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/caffeine-junky/jobconnect/internal/pkg/events"
)

// HandleEvent turns a booking or payment event into a notification for the
// party that has to act on it. Undecodable bodies and unknown keys wrap
// events.ErrMalformed.
func (s *Service) HandleEvent(ctx context.Context, key string, body []byte) error {
	req, err := notificationFor(key, body)
	if err != nil {
		return err
	}
	_, err = s.Create(ctx, req)
	return err
}

func notificationFor(key string, body []byte) (CreateNotificationRequest, error) {
	switch key {
	case events.KeyBookingCreated:
		var ev events.BookingEvent
		if err := decode(body, &ev); err != nil {
			return CreateNotificationRequest{}, err
		}
		return CreateNotificationRequest{
			TechnicianID: &ev.TechnicianID,
			Title:        "Booking Request",
			Message:      fmt.Sprintf("You have a new booking request about %s in %s for %s", ev.ServiceName, ev.LocationName, ev.Slot),
		}, nil

	case events.KeyBookingStatusChanged:
		var ev events.BookingEvent
		if err := decode(body, &ev); err != nil {
			return CreateNotificationRequest{}, err
		}
		return CreateNotificationRequest{
			ClientID: &ev.ClientID,
			Title:    "Booking " + titleCase(ev.Status),
			Message:  fmt.Sprintf("Your %s booking for %s is now %s", ev.ServiceName, ev.Slot, strings.ToLower(ev.Status)),
		}, nil

	case events.KeyPaymentCreated, events.KeyPaymentStatusChanged:
		var ev events.PaymentEvent
		if err := decode(body, &ev); err != nil {
			return CreateNotificationRequest{}, err
		}
		return CreateNotificationRequest{
			ClientID: &ev.ClientID,
			Title:    "Payment " + titleCase(ev.Status),
			Message:  fmt.Sprintf("Your payment of %.2f for booking %s is %s", ev.Amount, ev.BookingID, strings.ToLower(ev.Status)),
		}, nil
	}
	return CreateNotificationRequest{}, fmt.Errorf("%w: unknown key %q", events.ErrMalformed, key)
}

func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", events.ErrMalformed, err)
	}
	return nil
}

// titleCase turns "IN_PROGRESS" into "In Progress".
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(strings.ToLower(s), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// LocalPublisher delivers events straight to the notification service. The
// API uses it when no broker is configured.
type LocalPublisher struct {
	service *Service
}

func NewLocalPublisher(service *Service) *LocalPublisher {
	return &LocalPublisher{service: service}
}

func (p *LocalPublisher) Publish(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return p.service.HandleEvent(ctx, key, body)
}

func (p *LocalPublisher) Close() error { return nil }
