package search

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type SearchRepository interface {
	Nearby(ctx context.Context, origin domain.Location, radiusM float64, services []string, p repository.Page) ([]domain.NearbyTechnician, error)
	ByDescription(ctx context.Context, origin domain.Location, query string, radiusM float64, p repository.Page) ([]domain.NearbyTechnician, error)
}

type ClientReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}
