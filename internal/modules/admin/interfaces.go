package admin

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type AdminRepository interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	List(ctx context.Context, f repository.AdminFilter, p repository.Page) ([]domain.Admin, error)
	Update(ctx context.Context, a *domain.Admin) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)
	Conflict(ctx context.Context, email, phone string, exclude uuid.UUID) (string, error)
}

type VerifiedRepository interface {
	Verify(ctx context.Context, technicianID, adminID uuid.UUID) (bool, error)
	Unverify(ctx context.Context, technicianID uuid.UUID) (bool, error)
}

// Activator toggles is_active on a client or technician account.
type Activator interface {
	SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error)
}

type TechnicianRepository interface {
	Activator
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
}
