// Package techservice links technicians to the catalog services they offer.
package techservice

import (
	"context"
	"errors"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	offers      TechnicianServiceRepository
	technicians TechnicianReader
	services    ServiceReader
}

func NewService(offers TechnicianServiceRepository, technicians TechnicianReader, services ServiceReader) *Service {
	return &Service{offers: offers, technicians: technicians, services: services}
}

func (s *Service) Create(ctx context.Context, req CreateTechnicianServiceRequest) (*domain.TechnicianService, error) {
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.ExperienceYears < 0 {
		return nil, ErrInvalidExperience
	}
	if _, err := s.technicians.GetByID(ctx, req.TechnicianID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTechnicianNotFound
		}
		return nil, err
	}
	if _, err := s.services.GetByID(ctx, req.ServiceID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	exists, err := s.offers.Exists(ctx, req.TechnicianID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	ts := &domain.TechnicianService{
		TechnicianID:    req.TechnicianID,
		ServiceID:       req.ServiceID,
		ExperienceYears: req.ExperienceYears,
		Price:           req.Price,
	}
	if err := s.offers.Create(ctx, ts); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return ts, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.TechnicianService, error) {
	ts, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ts, nil
}

// ReadAll is ordered by price ascending.
func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.TechnicianService, error) {
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return nil, ErrInvalidPriceRange
	}
	f := repository.TechnicianServiceFilter{
		TechnicianID: q.TechnicianID,
		ServiceID:    q.ServiceID,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
	}
	return s.offers.List(ctx, f, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateTechnicianServiceRequest) (*domain.TechnicianService, error) {
	ts, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if years, ok, err := optional.NonNull(req.ExperienceYears, "experience_years"); err != nil {
		return nil, err
	} else if ok {
		if years < 0 {
			return nil, ErrInvalidExperience
		}
		ts.ExperienceYears = years
	}
	if price, ok, err := optional.NonNull(req.Price, "price"); err != nil {
		return nil, err
	} else if ok {
		if price <= 0 {
			return nil, ErrInvalidPrice
		}
		ts.Price = price
	}

	if err := s.offers.Update(ctx, ts); err != nil {
		return nil, err
	}
	return ts, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.offers.Delete(ctx, id)
}

// OwnerOf returns the technician id of an offering, used for ownership checks.
func (s *Service) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	ts, err := s.ReadOne(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}
	return ts.TechnicianID, nil
}
