package client

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	List(ctx context.Context, f repository.ClientFilter, p repository.Page) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Conflict(ctx context.Context, email, phone string, exclude uuid.UUID) (string, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error)
	Remove(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error)
	TechnicianIDs(ctx context.Context, clientID uuid.UUID, p repository.Page) ([]uuid.UUID, error)
}

type TechnicianReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Technician, error)
}
