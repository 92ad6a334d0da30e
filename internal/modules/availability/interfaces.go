package availability

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, a *domain.TechnicianAvailability) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TechnicianAvailability, error)
	List(ctx context.Context, f repository.AvailabilityFilter, p repository.Page) ([]domain.TechnicianAvailability, error)
	Update(ctx context.Context, a *domain.TechnicianAvailability) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type TechnicianReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
}
