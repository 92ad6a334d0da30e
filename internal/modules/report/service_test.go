package report

import (
	"context"
	"errors"
	"testing"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) BookingCounts(ctx context.Context, id uuid.UUID) (repository.BookingCounts, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.BookingCounts), args.Error(1)
}

func (m *MockReportRepository) CompletedPayments(ctx context.Context, id uuid.UUID) (int64, float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

func (m *MockReportRepository) Distances(ctx context.Context, id uuid.UUID) (repository.DistanceStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.DistanceStats), args.Error(1)
}

func (m *MockReportRepository) Reviews(ctx context.Context, id uuid.UUID) (float64, int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) RepeatingClients(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) ServicesOffered(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) BookedServiceExtremes(ctx context.Context, id uuid.UUID) (string, string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockReportRepository) MostBookedTechnician(ctx context.Context) (*uuid.UUID, error) {
	args := m.Called(ctx)
	return optionalID(args.Get(0)), args.Error(1)
}

func (m *MockReportRepository) MostEarningTechnician(ctx context.Context) (*uuid.UUID, error) {
	args := m.Called(ctx)
	return optionalID(args.Get(0)), args.Error(1)
}

func (m *MockReportRepository) MostFavoriteTechnician(ctx context.Context) (*uuid.UUID, error) {
	args := m.Called(ctx)
	return optionalID(args.Get(0)), args.Error(1)
}

func (m *MockReportRepository) MostBookedService(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockReportRepository) UsersByRole(ctx context.Context) (map[domain.UserRole]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.UserRole]int64), args.Error(1)
}

func (m *MockReportRepository) BookingsByStatus(ctx context.Context) (map[domain.BookingStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.BookingStatus]int64), args.Error(1)
}

func optionalID(v any) *uuid.UUID {
	if v == nil {
		return nil
	}
	return v.(*uuid.UUID)
}

type MockTechnicianReader struct {
	mock.Mock
}

func (m *MockTechnicianReader) GetByID(ctx context.Context, id uuid.UUID) (*domain.Technician, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Technician), args.Error(1)
}

func expectTechnicianAggregates(repo *MockReportRepository, id uuid.UUID) {
	repo.On("BookingCounts", mock.Anything, id).Return(repository.BookingCounts{Active: 2, Total: 7, Rejected: 1, Accepted: 1}, nil)
	repo.On("CompletedPayments", mock.Anything, id).Return(int64(3), 1250.5, nil)
	repo.On("Distances", mock.Anything, id).Return(repository.DistanceStats{ShortestKm: 1.5, LongestKm: 12, TotalKm: 20}, nil)
	repo.On("Reviews", mock.Anything, id).Return(4.5, int64(2), nil)
	repo.On("RepeatingClients", mock.Anything, id).Return(int64(1), nil)
	repo.On("ServicesOffered", mock.Anything, id).Return(int64(2), nil)
	repo.On("BookedServiceExtremes", mock.Anything, id).Return("plumbing", "painting", nil)
}

func TestTechnicianReport(t *testing.T) {
	repo, techs := new(MockReportRepository), new(MockTechnicianReader)
	svc := NewService(repo, techs, nil)
	ctx := context.Background()
	id := uuid.New()

	techs.On("GetByID", ctx, id).Return(&domain.Technician{Account: domain.Account{ID: id}}, nil)
	expectTechnicianAggregates(repo, id)

	rep, err := svc.TechnicianReport(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, domain.TechnicianReport{
		TechnicianID:           id,
		ActiveBookings:         2,
		TotalBookings:          7,
		RejectedBookings:       1,
		AcceptedBookings:       1,
		TotalPayments:          3,
		TotalRevenue:           1250.5,
		ShortestDistanceKm:     1.5,
		LongestDistanceKm:      12,
		TotalDistanceKm:        20,
		Rating:                 4.5,
		NumReviews:             2,
		NumRepeatingClients:    1,
		NumServicesOffered:     2,
		MostBookedServiceName:  "plumbing",
		LeastBookedServiceName: "painting",
	}, *rep)
}

func TestTechnicianReport_UnknownTechnician(t *testing.T) {
	repo, techs := new(MockReportRepository), new(MockTechnicianReader)
	svc := NewService(repo, techs, nil)
	ctx := context.Background()
	id := uuid.New()

	techs.On("GetByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.TechnicianReport(ctx, id)

	assert.ErrorIs(t, err, ErrTechnicianNotFound)
	repo.AssertNotCalled(t, "BookingCounts", mock.Anything, mock.Anything)
}

func TestTechnicianReport_AggregateFailure(t *testing.T) {
	repo, techs := new(MockReportRepository), new(MockTechnicianReader)
	svc := NewService(repo, techs, nil)
	ctx := context.Background()
	id := uuid.New()

	techs.On("GetByID", ctx, id).Return(&domain.Technician{}, nil)
	repo.On("BookingCounts", mock.Anything, id).Return(repository.BookingCounts{}, nil)
	repo.On("CompletedPayments", mock.Anything, id).Return(int64(0), 0.0, errors.New("db down"))
	repo.On("Distances", mock.Anything, id).Return(repository.DistanceStats{}, nil).Maybe()
	repo.On("Reviews", mock.Anything, id).Return(0.0, int64(0), nil).Maybe()
	repo.On("RepeatingClients", mock.Anything, id).Return(int64(0), nil).Maybe()
	repo.On("ServicesOffered", mock.Anything, id).Return(int64(0), nil).Maybe()
	repo.On("BookedServiceExtremes", mock.Anything, id).Return("", "", nil).Maybe()

	_, err := svc.TechnicianReport(ctx, id)

	assert.EqualError(t, err, "db down")
}

func TestPlatformSummary(t *testing.T) {
	repo := new(MockReportRepository)
	svc := NewService(repo, new(MockTechnicianReader), nil)
	top := uuid.New()

	repo.On("MostBookedTechnician", mock.Anything).Return(&top, nil)
	repo.On("MostEarningTechnician", mock.Anything).Return(&top, nil)
	repo.On("MostFavoriteTechnician", mock.Anything).Return(nil, nil)
	repo.On("MostBookedService", mock.Anything).Return("plumbing", nil)
	repo.On("UsersByRole", mock.Anything).Return(map[domain.UserRole]int64{domain.RoleClient: 4, domain.RoleTechnician: 2}, nil)
	repo.On("BookingsByStatus", mock.Anything).Return(map[domain.BookingStatus]int64{domain.BookingCompleted: 3}, nil)

	sum, err := svc.PlatformSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &top, sum.MostBookedTechnicianID)
	assert.Nil(t, sum.MostFavoriteTechnicianID)
	assert.Equal(t, "plumbing", sum.MostBookedServiceName)
	assert.Equal(t, int64(4), sum.UsersByRole[domain.RoleClient])
	assert.Equal(t, int64(3), sum.BookingsByStatus[domain.BookingCompleted])
}
