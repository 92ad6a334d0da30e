package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAccount struct {
	mock.Mock
}

func (m *MockAccount) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

func (m *MockAccount) ReadOneByID(ctx context.Context, id uuid.UUID) (*Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Identity), args.Error(1)
}

type fixture struct {
	svc         *Service
	admins      *MockAccount
	clients     *MockAccount
	technicians *MockAccount
	tokens      *jwt.Service
}

func newFixture() fixture {
	f := fixture{
		admins:      new(MockAccount),
		clients:     new(MockAccount),
		technicians: new(MockAccount),
		tokens:      jwt.New("test-secret", time.Hour),
	}
	f.svc = NewService(f.admins, f.clients, f.technicians, f.tokens)
	return f
}

func identity(active bool) *Identity {
	acc := domain.Account{ID: uuid.New(), Email: "thabo@example.com", IsActive: active}
	return &Identity{Account: acc, Profile: &domain.Technician{Account: acc}}
}

func TestLogin_DispatchesByRole(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := identity(true)

	f.technicians.On("Authenticate", ctx, "thabo@example.com", "pw").Return(id, nil)

	tok, err := f.svc.Login(ctx, "thabo@example.com", "pw", "technician")

	require.NoError(t, err)
	assert.Equal(t, "bearer", tok.TokenType)
	claims, err := f.tokens.ValidateToken(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id.Account.ID, claims.UserID)
	assert.Equal(t, "technician", claims.Role)
	f.clients.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	f.admins.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_RejectionsShareOneMessage(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		role  string
		setup func(f fixture)
	}{
		{"unknown role", "superuser", func(fixture) {}},
		{"empty role", "", func(fixture) {}},
		{"wrong password", "client", func(f fixture) {
			f.clients.On("Authenticate", ctx, "a@b.co", "pw").Return(nil, ErrInvalidCredentials)
		}},
		{"unknown email", "admin", func(f fixture) {
			f.admins.On("Authenticate", ctx, "a@b.co", "pw").Return(nil, apperr.NotFound("Admin not found"))
		}},
		{"inactive", "client", func(f fixture) {
			f.clients.On("Authenticate", ctx, "a@b.co", "pw").Return(identity(false), nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			_, err := f.svc.Login(ctx, "a@b.co", "pw", tt.role)

			assert.ErrorIs(t, err, apperr.ErrUnauthorized)
			assert.EqualError(t, err, "Invalid credentials")
		})
	}
}

func TestLogin_StoreFailurePropagates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.clients.On("Authenticate", ctx, "a@b.co", "pw").Return(nil, errors.New("db down"))

	_, err := f.svc.Login(ctx, "a@b.co", "pw", "client")

	assert.EqualError(t, err, "db down")
}

func TestCurrentUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id := identity(true)
	token, err := f.tokens.GenerateToken(id.Account.ID, id.Account.Email, "technician")
	require.NoError(t, err)

	f.technicians.On("ReadOneByID", ctx, id.Account.ID).Return(id, nil)

	me, err := f.svc.CurrentUser(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, RoleTechnician, me.Role)
	assert.Same(t, id.Profile, me.User)
}

func TestCurrentUser_Rejections(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name  string
		token func(f fixture) string
		setup func(f fixture)
	}{
		{"malformed", func(fixture) string { return "not-a-token" }, func(fixture) {}},
		{"expired", func(fixture) string {
			tok, _ := jwt.New("test-secret", -time.Minute).GenerateToken(userID, "x@y.co", "client")
			return tok
		}, func(fixture) {}},
		{"unknown role", func(f fixture) string {
			tok, _ := f.tokens.GenerateToken(userID, "x@y.co", "owner")
			return tok
		}, func(fixture) {}},
		{"deleted account", func(f fixture) string {
			tok, _ := f.tokens.GenerateToken(userID, "x@y.co", "client")
			return tok
		}, func(f fixture) {
			f.clients.On("ReadOneByID", ctx, userID).Return(nil, apperr.NotFound("Client not found"))
		}},
		{"deactivated account", func(f fixture) string {
			tok, _ := f.tokens.GenerateToken(userID, "x@y.co", "admin")
			return tok
		}, func(f fixture) {
			f.admins.On("ReadOneByID", ctx, userID).Return(identity(false), nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			_, err := f.svc.CurrentUser(ctx, tt.token(f))

			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("admin")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)

	_, ok = ParseRole("ADMIN")
	assert.False(t, ok)
}
