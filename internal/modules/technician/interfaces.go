package technician

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type TechnicianRepository interface {
	Create(ctx context.Context, t *domain.Technician) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
	GetByEmail(ctx context.Context, email string) (*domain.Technician, error)
	List(ctx context.Context, f repository.TechnicianFilter, p repository.Page) ([]domain.Technician, error)
	Update(ctx context.Context, t *domain.Technician) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Conflict(ctx context.Context, email, phone string, exclude uuid.UUID) (string, error)
}
