// Package catalog manages the services technicians can offer.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) Create(ctx context.Context, req CreateServiceRequest) (*domain.Service, error) {
	name := strings.TrimSpace(req.Name)
	exists, err := s.services.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errAlreadyExists(name)
	}

	svc := &domain.Service{Name: name, Description: strings.TrimSpace(req.Description)}
	if err := s.services.Create(ctx, svc); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errAlreadyExists(name)
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

// ReadOneByName matches the name case-insensitively.
func (s *Service) ReadOneByName(ctx context.Context, name string) (*domain.Service, error) {
	svc, err := s.services.GetByName(ctx, name)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.Service, error) {
	return s.services.List(ctx, repository.ServiceFilter{Name: q.Name}, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if desc, ok, err := optional.NonNull(req.Description, "description"); err != nil {
		return nil, err
	} else if ok {
		desc = strings.TrimSpace(desc)
		if desc == "" {
			return nil, apperr.BadRequest("description cannot be empty")
		}
		svc.Description = desc
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.services.Delete(ctx, id)
}
