// Package availability manages the weekly slots in which a technician works.
package availability

import (
	"context"
	"errors"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	slots       AvailabilityRepository
	technicians TechnicianReader
}

func NewService(slots AvailabilityRepository, technicians TechnicianReader) *Service {
	return &Service{slots: slots, technicians: technicians}
}

// Create rejects a slot identical to one the technician already has.
// Overlapping but different slots are allowed.
func (s *Service) Create(ctx context.Context, req CreateAvailabilityRequest) (*domain.TechnicianAvailability, error) {
	if !req.TimeSlot.Valid() {
		return nil, ErrInvalidTimeSlot
	}
	if _, err := s.technicians.GetByID(ctx, req.TechnicianID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTechnicianNotFound
		}
		return nil, err
	}

	a := &domain.TechnicianAvailability{TechnicianID: req.TechnicianID, TimeSlot: req.TimeSlot, Active: true}
	if req.Active != nil {
		a.Active = *req.Active
	}
	if err := s.slots.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, errSlotTaken(req.TimeSlot)
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.TechnicianAvailability, error) {
	a, err := s.slots.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.TechnicianAvailability, error) {
	f := repository.AvailabilityFilter{
		TechnicianID: q.TechnicianID,
		Day:          q.Day,
		StartTime:    q.StartTime,
		EndTime:      q.EndTime,
		Active:       q.Active,
	}
	return s.slots.List(ctx, f, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

// Update re-checks the duplicate rule against the technician's other slots.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateAvailabilityRequest) (*domain.TechnicianAvailability, error) {
	a, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if slot, ok, err := optional.NonNull(req.TimeSlot, "timeslot"); err != nil {
		return nil, err
	} else if ok {
		if !slot.Valid() {
			return nil, ErrInvalidTimeSlot
		}
		a.TimeSlot = slot
	}
	if active, ok, err := optional.NonNull(req.Active, "active"); err != nil {
		return nil, err
	} else if ok {
		a.Active = active
	}

	if err := s.slots.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, errSlotTaken(a.TimeSlot)
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.slots.Delete(ctx, id)
}
