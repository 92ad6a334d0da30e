package techservice

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type TechnicianServiceRepository interface {
	Create(ctx context.Context, ts *domain.TechnicianService) error
	Exists(ctx context.Context, technicianID, serviceID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TechnicianService, error)
	List(ctx context.Context, f repository.TechnicianServiceFilter, p repository.Page) ([]domain.TechnicianService, error)
	Update(ctx context.Context, ts *domain.TechnicianService) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type TechnicianReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
}

type ServiceReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}
