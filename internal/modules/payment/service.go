// Package payment records what a client pays for a booking.
package payment

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/events"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	payments  PaymentRepository
	bookings  BookingReader
	publisher events.Publisher
	now       func() time.Time
}

func NewService(payments PaymentRepository, bookings BookingReader, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{payments: payments, bookings: bookings, publisher: publisher, now: time.Now}
}

// Create records one payment per booking. Status defaults to pending.
func (s *Service) Create(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	status := req.Status
	if status == "" {
		status = domain.PaymentPending
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.ClientID != req.ClientID || b.TechnicianID != req.TechnicianID {
		return nil, ErrBookingMismatch
	}

	exists, err := s.payments.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	p := &domain.Payment{
		BookingID:    b.ID,
		ClientID:     b.ClientID,
		TechnicianID: b.TechnicianID,
		Amount:       req.Amount,
		Status:       status,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	s.publish(ctx, events.KeyPaymentCreated, p)
	return p, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// ReadAll lists payments ordered by amount.
func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.Payment, error) {
	if q.Status != nil && !q.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if q.MinAmount != nil && q.MaxAmount != nil && *q.MinAmount > *q.MaxAmount {
		return nil, ErrInvalidAmountRng
	}
	f := repository.PaymentFilter{
		ClientID:     q.ClientID,
		TechnicianID: q.TechnicianID,
		Status:       q.Status,
		MinAmount:    q.MinAmount,
		MaxAmount:    q.MaxAmount,
	}
	return s.payments.List(ctx, f, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdatePaymentRequest) (*domain.Payment, error) {
	p, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}
	prev := p.Status

	amount, ok, err := optional.NonNull(req.Amount, "amount")
	if err != nil {
		return nil, err
	}
	if ok {
		if amount <= 0 {
			return nil, ErrInvalidAmount
		}
		p.Amount = amount
	}

	status, ok, err := optional.NonNull(req.Status, "status")
	if err != nil {
		return nil, err
	}
	if ok {
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		p.Status = status
	}

	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	if p.Status != prev {
		s.publish(ctx, events.KeyPaymentStatusChanged, p)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.payments.Delete(ctx, id)
}

func (s *Service) publish(ctx context.Context, key string, p *domain.Payment) {
	ev := events.PaymentEvent{
		PaymentID:    p.ID,
		BookingID:    p.BookingID,
		ClientID:     p.ClientID,
		TechnicianID: p.TechnicianID,
		Amount:       p.Amount,
		Status:       string(p.Status),
		OccurredAt:   s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, key, ev); err != nil {
		log.Printf("event_publish_failed key=%s payment_id=%s error=%q", key, p.ID, err.Error())
	}
}
