package search

import (
	"context"
	"testing"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) Nearby(ctx context.Context, origin domain.Location, radiusM float64, services []string, p repository.Page) ([]domain.NearbyTechnician, error) {
	args := m.Called(ctx, origin, radiusM, services, p)
	return args.Get(0).([]domain.NearbyTechnician), args.Error(1)
}

func (m *MockSearchRepository) ByDescription(ctx context.Context, origin domain.Location, query string, radiusM float64, p repository.Page) ([]domain.NearbyTechnician, error) {
	args := m.Called(ctx, origin, query, radiusM, p)
	return args.Get(0).([]domain.NearbyTechnician), args.Error(1)
}

type MockClientReader struct {
	mock.Mock
}

func (m *MockClientReader) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

var soshanguve = domain.Location{Name: "Soshanguve", Latitude: -25.5236, Longitude: 28.1006}

func newClient() *domain.Client {
	return &domain.Client{Account: domain.Account{ID: uuid.New(), IsActive: true}, Location: soshanguve}
}

func TestSearchNearby_UsesAbsoluteRadiusInMeters(t *testing.T) {
	repo, clients := new(MockSearchRepository), new(MockClientReader)
	svc := NewService(repo, clients, nil)
	ctx := context.Background()
	client := newClient()

	clients.On("GetByID", ctx, client.ID).Return(client, nil)
	repo.On("Nearby", ctx, soshanguve, 5000.0, []string{"electrical", "plumbing"}, repository.Page{Skip: 0, Limit: 10}).
		Return([]domain.NearbyTechnician{{DistanceKm: 1.2}}, nil)

	items, err := svc.SearchNearby(ctx, client.ID, -5, []string{"Plumbing", " electrical", "plumbing", ""}, 0, 10)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	repo.AssertExpectations(t)
}

func TestSearchNearby_UnknownClient(t *testing.T) {
	repo, clients := new(MockSearchRepository), new(MockClientReader)
	svc := NewService(repo, clients, nil)
	ctx := context.Background()
	id := uuid.New()

	clients.On("GetByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.SearchNearby(ctx, id, 10, nil, 0, 100)

	assert.ErrorIs(t, err, ErrClientNotFound)
	repo.AssertNotCalled(t, "Nearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchByDescription(t *testing.T) {
	repo, clients := new(MockSearchRepository), new(MockClientReader)
	svc := NewService(repo, clients, nil)
	ctx := context.Background()
	client := newClient()

	clients.On("GetByID", ctx, client.ID).Return(client, nil)
	repo.On("ByDescription", ctx, soshanguve, "leaking pipe", 10000.0, repository.Page{Limit: 100}).
		Return([]domain.NearbyTechnician{{Score: 0.8}, {Score: 0.2}}, nil)

	items, err := svc.SearchByDescription(ctx, client.ID, "  leaking pipe ", 10, 0, 100)

	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSearchByDescription_Empty(t *testing.T) {
	svc := NewService(new(MockSearchRepository), new(MockClientReader), nil)

	_, err := svc.SearchByDescription(context.Background(), uuid.New(), "   ", 10, 0, 100)

	assert.ErrorIs(t, err, ErrEmptyDescription)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestSearchExternal_NotImplemented(t *testing.T) {
	svc := NewService(new(MockSearchRepository), new(MockClientReader), nil)

	_, err := svc.SearchExternal(context.Background(), soshanguve, 10)
	assert.ErrorIs(t, err, apperr.ErrNotImplemented)

	_, err = svc.SearchExternal(context.Background(), domain.Location{Latitude: 120}, 10)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestNormalizeNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, normalizeNames([]string{"B", "a", " A ", ""}))
	assert.Empty(t, normalizeNames(nil))
}
