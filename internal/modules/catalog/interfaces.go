package catalog

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	NameExists(ctx context.Context, name string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	GetByName(ctx context.Context, name string) (*domain.Service, error)
	List(ctx context.Context, f repository.ServiceFilter, p repository.Page) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
