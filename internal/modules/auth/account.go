package auth

import (
	"context"

	"github.com/caffeine-junky/jobconnect/internal/domain"

	"github.com/google/uuid"
)

// Identity is an authenticated user: the shared account fields plus the
// role-specific profile that is returned to the caller.
type Identity struct {
	Account domain.Account
	Profile any
}

// Account is one role's credential store.
type Account interface {
	Authenticate(ctx context.Context, email, password string) (*Identity, error)
	ReadOneByID(ctx context.Context, id uuid.UUID) (*Identity, error)
}

// profileStore matches the admin, client and technician services.
type profileStore[T any] interface {
	Authenticate(ctx context.Context, email, password string) (T, error)
	ReadOne(ctx context.Context, id uuid.UUID) (T, error)
}

type accounts[T any] struct {
	store profileStore[T]
	base  func(T) domain.Account
}

func (a accounts[T]) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	p, err := a.store.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &Identity{Account: a.base(p), Profile: p}, nil
}

func (a accounts[T]) ReadOneByID(ctx context.Context, id uuid.UUID) (*Identity, error) {
	p, err := a.store.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Identity{Account: a.base(p), Profile: p}, nil
}

func AdminAccounts(store profileStore[*domain.Admin]) Account {
	return accounts[*domain.Admin]{store: store, base: func(a *domain.Admin) domain.Account { return a.Account }}
}

func ClientAccounts(store profileStore[*domain.Client]) Account {
	return accounts[*domain.Client]{store: store, base: func(c *domain.Client) domain.Account { return c.Account }}
}

func TechnicianAccounts(store profileStore[*domain.Technician]) Account {
	return accounts[*domain.Technician]{store: store, base: func(t *domain.Technician) domain.Account { return t.Account }}
}
