package report

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type ReportRepository interface {
	BookingCounts(ctx context.Context, technicianID uuid.UUID) (repository.BookingCounts, error)
	CompletedPayments(ctx context.Context, technicianID uuid.UUID) (int64, float64, error)
	Distances(ctx context.Context, technicianID uuid.UUID) (repository.DistanceStats, error)
	Reviews(ctx context.Context, technicianID uuid.UUID) (float64, int64, error)
	RepeatingClients(ctx context.Context, technicianID uuid.UUID) (int64, error)
	ServicesOffered(ctx context.Context, technicianID uuid.UUID) (int64, error)
	BookedServiceExtremes(ctx context.Context, technicianID uuid.UUID) (string, string, error)

	MostBookedTechnician(ctx context.Context) (*uuid.UUID, error)
	MostEarningTechnician(ctx context.Context) (*uuid.UUID, error)
	MostFavoriteTechnician(ctx context.Context) (*uuid.UUID, error)
	MostBookedService(ctx context.Context) (string, error)
	UsersByRole(ctx context.Context) (map[domain.UserRole]int64, error)
	BookingsByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error)
}

type TechnicianReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error)
}
