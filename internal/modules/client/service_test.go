package client

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/modules/account"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/pkg/password"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Mock repositories
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context, f repository.ClientFilter, p repository.Page) ([]domain.Client, error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) Conflict(ctx context.Context, email, phone string, exclude uuid.UUID) (string, error) {
	args := m.Called(ctx, email, phone, exclude)
	return args.String(0), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Add(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clientID, technicianID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error) {
	args := m.Called(ctx, clientID, technicianID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) TechnicianIDs(ctx context.Context, clientID uuid.UUID, p repository.Page) ([]uuid.UUID, error) {
	args := m.Called(ctx, clientID, p)
	return args.Get(0).([]uuid.UUID), args.Error(1)
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

func (m *MockTechnicianReader) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Technician, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Technician), args.Error(1)
}

var (
	hasher   = password.NewHasher(4)
	pretoria = domain.Location{Name: "Pretoria", Latitude: -25.7479, Longitude: 28.2293}
)

func newTestService() (*Service, *MockClientRepository, *MockFavoriteRepository, *MockTechnicianReader) {
	clients := new(MockClientRepository)
	favorites := new(MockFavoriteRepository)
	techs := new(MockTechnicianReader)
	return NewService(clients, favorites, techs, hasher), clients, favorites, techs
}

func existingClient(t *testing.T) *domain.Client {
	t.Helper()
	acc, err := account.New("Thandi", "thandi@example.com", "0820000001", "s3cretpass", hasher)
	require.NoError(t, err)
	acc.ID = uuid.New()
	return &domain.Client{Account: acc, Location: pretoria}
}

func TestService_Create_Success(t *testing.T) {
	svc, clients, _, _ := newTestService()
	ctx := context.Background()

	clients.On("Conflict", ctx, "thandi@example.com", "0820000001", uuid.Nil).Return("", nil)
	clients.On("Create", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)

	c, err := svc.Create(ctx, CreateClientRequest{
		Fullname: "Thandi",
		Email:    "Thandi@Example.com",
		Phone:    "0820000001",
		Location: pretoria,
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.True(t, c.IsActive)
	assert.True(t, hasher.Verify(c.HashedPassword, "s3cretpass"))
	clients.AssertExpectations(t)
}

func TestService_Create_Conflicts(t *testing.T) {
	ctx := context.Background()
	req := CreateClientRequest{Fullname: "Thandi", Email: "thandi@example.com", Phone: "0820000001", Location: pretoria, Password: "s3cretpass"}

	t.Run("email taken", func(t *testing.T) {
		svc, clients, _, _ := newTestService()
		clients.On("Conflict", ctx, "thandi@example.com", "0820000001", uuid.Nil).Return("email", nil)

		_, err := svc.Create(ctx, req)
		assert.EqualError(t, err, "Client with email already exists")
		assert.ErrorIs(t, err, apperr.ErrConflict)
		clients.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("phone taken", func(t *testing.T) {
		svc, clients, _, _ := newTestService()
		clients.On("Conflict", ctx, "thandi@example.com", "0820000001", uuid.Nil).Return("phone", nil)

		_, err := svc.Create(ctx, req)
		assert.EqualError(t, err, "Client with phone already exists")
	})

	t.Run("lost race to the unique index", func(t *testing.T) {
		svc, clients, _, _ := newTestService()
		clients.On("Conflict", ctx, mock.Anything, mock.Anything, uuid.Nil).Return("", nil)
		clients.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})
}

func TestService_ReadOne_NotFound(t *testing.T) {
	svc, clients, _, _ := newTestService()
	ctx := context.Background()
	id := uuid.New()
	clients.On("GetByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ReadOne(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Client not found")
}

func TestService_Update_PartialFields(t *testing.T) {
	svc, clients, _, _ := newTestService()
	ctx := context.Background()
	existing := existingClient(t)
	oldHash := existing.HashedPassword

	clients.On("GetByID", ctx, existing.ID).Return(existing, nil)
	clients.On("Update", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)

	var req UpdateClientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"fullname":"Thandi Nkosi","location":{"location_name":"Centurion","latitude":-25.86,"longitude":28.19}}`), &req))

	updated, err := svc.Update(ctx, existing.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Thandi Nkosi", updated.Fullname)
	assert.Equal(t, "Centurion", updated.Location.Name)
	assert.Equal(t, "thandi@example.com", updated.Email)
	assert.Equal(t, oldHash, updated.HashedPassword)
	clients.AssertNotCalled(t, "Conflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_EmailConflict(t *testing.T) {
	svc, clients, _, _ := newTestService()
	ctx := context.Background()
	existing := existingClient(t)

	clients.On("GetByID", ctx, existing.ID).Return(existing, nil)
	clients.On("Conflict", ctx, "taken@example.com", "0820000001", existing.ID).Return("email", nil)

	var req UpdateClientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"email":"taken@example.com"}`), &req))

	_, err := svc.Update(ctx, existing.ID, req)
	assert.EqualError(t, err, "Client with email already exists")
	clients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_NullLocationRejected(t *testing.T) {
	svc, clients, _, _ := newTestService()
	ctx := context.Background()
	existing := existingClient(t)
	clients.On("GetByID", ctx, existing.ID).Return(existing, nil)

	var req UpdateClientRequest
	require.NoError(t, json.Unmarshal([]byte(`{"location":null}`), &req))

	_, err := svc.Update(ctx, existing.ID, req)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	existing := existingClient(t)

	t.Run("valid", func(t *testing.T) {
		svc, clients, _, _ := newTestService()
		clients.On("GetByEmail", ctx, "thandi@example.com").Return(existing, nil)

		c, err := svc.Authenticate(ctx, " THANDI@example.com", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, c.ID)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		svc, clients, _, _ := newTestService()
		clients.On("GetByEmail", ctx, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
		clients.On("GetByEmail", ctx, "thandi@example.com").Return(existing, nil)

		_, errUnknown := svc.Authenticate(ctx, "nobody@example.com", "s3cretpass")
		_, errWrong := svc.Authenticate(ctx, "thandi@example.com", "wrong-password")
		assert.ErrorIs(t, errUnknown, account.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, account.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

func TestService_Favorites(t *testing.T) {
	ctx := context.Background()
	existing := existingClient(t)
	techID := uuid.New()

	t.Run("add", func(t *testing.T) {
		svc, clients, favorites, techs := newTestService()
		clients.On("GetByID", ctx, existing.ID).Return(existing, nil)
		techs.On("GetByID", ctx, techID).Return(&domain.Technician{}, nil)
		favorites.On("Add", ctx, existing.ID, techID).Return(true, nil)

		added, err := svc.AddFavoriteTechnician(ctx, existing.ID, techID)
		require.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("unknown technician", func(t *testing.T) {
		svc, clients, favorites, techs := newTestService()
		clients.On("GetByID", ctx, existing.ID).Return(existing, nil)
		techs.On("GetByID", ctx, techID).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.AddFavoriteTechnician(ctx, existing.ID, techID)
		assert.ErrorIs(t, err, ErrTechnicianNotFound)
		favorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("list keeps favorite order", func(t *testing.T) {
		svc, clients, favorites, techs := newTestService()
		ids := []uuid.UUID{techID, uuid.New()}
		clients.On("GetByID", ctx, existing.ID).Return(existing, nil)
		favorites.On("TechnicianIDs", ctx, existing.ID, repository.Page{Skip: 0, Limit: 10}).Return(ids, nil)
		techs.On("ListByIDs", ctx, ids).Return([]domain.Technician{{}, {}}, nil)

		items, err := svc.ListFavoriteTechnicians(ctx, existing.ID, 0, 10)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}
