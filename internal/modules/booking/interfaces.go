package booking

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilter, p repository.Page) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ClientReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}

type TechnicianReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
	OffersService(ctx context.Context, technicianID uuid.UUID, serviceName string) (bool, error)
}
