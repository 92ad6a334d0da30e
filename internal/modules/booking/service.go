package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/events"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	bookings    BookingRepository
	clients     ClientReader
	technicians TechnicianReader
	publisher   events.Publisher
	now         func() time.Time
}

func NewService(
	bookings BookingRepository,
	clients ClientReader,
	technicians TechnicianReader,
	publisher events.Publisher,
) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		bookings:    bookings,
		clients:     clients,
		technicians: technicians,
		publisher:   publisher,
		now:         time.Now,
	}
}

// CreateBooking books a technician for a slot. The location defaults to the
// client's. Overlapping active bookings of the technician are rejected.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.TimeSlot.Valid() {
		return nil, ErrInvalidTimeSlot
	}

	client, err := s.clients.GetByID(ctx, req.ClientID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	tech, err := s.technicians.GetByID(ctx, req.TechnicianID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTechnicianNotFound
		}
		return nil, err
	}
	if !tech.IsActive {
		return nil, ErrTechnicianInactive
	}

	serviceName := strings.TrimSpace(req.ServiceName)
	offered, err := s.technicians.OffersService(ctx, tech.ID, serviceName)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, errServiceNotOffered(serviceName)
	}

	location := client.Location
	if req.Location != nil {
		if !req.Location.Valid() {
			return nil, ErrInvalidLocation
		}
		location = *req.Location
	}

	b := &domain.Booking{
		ClientID:     client.ID,
		TechnicianID: tech.ID,
		ServiceName:  serviceName,
		Description:  strings.TrimSpace(req.Description),
		TimeSlot:     req.TimeSlot,
		Location:     location,
		Status:       domain.BookingRequested,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, errSlotTaken(req.TimeSlot)
		}
		return nil, err
	}

	s.publish(ctx, events.KeyBookingCreated, b)
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, q ListQuery) ([]domain.Booking, error) {
	if q.Status != nil && !q.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	f := repository.BookingFilter{
		ClientID:     q.ClientID,
		TechnicianID: q.TechnicianID,
		Status:       q.Status,
		Date:         q.Date,
	}
	return s.bookings.List(ctx, f, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

// UpdateBooking applies a status transition and/or a new description.
func (s *Service) UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := b.Status

	if status, ok, err := optional.NonNull(req.Status, "status"); err != nil {
		return nil, err
	} else if ok {
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		if !b.Status.CanTransitionTo(status) {
			return nil, errTransition(b.Status, status)
		}
		b.Status = status
	}
	if desc, ok, err := optional.NonNull(req.Description, "description"); err != nil {
		return nil, err
	} else if ok {
		b.Description = strings.TrimSpace(desc)
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	if b.Status != previous {
		s.publish(ctx, events.KeyBookingStatusChanged, b)
	}
	return b, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.bookings.Delete(ctx, id)
}

// publish logs publisher errors instead of returning them.
func (s *Service) publish(ctx context.Context, key string, b *domain.Booking) {
	ev := events.BookingEvent{
		BookingID:    b.ID,
		ClientID:     b.ClientID,
		TechnicianID: b.TechnicianID,
		ServiceName:  b.ServiceName,
		Status:       string(b.Status),
		Slot:         b.TimeSlot.String(),
		LocationName: b.Location.Name,
		OccurredAt:   s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, key, ev); err != nil {
		log.Printf("event_publish_failed key=%s booking_id=%s error=%q", key, b.ID, err.Error())
	}
}
