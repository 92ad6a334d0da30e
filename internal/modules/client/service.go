package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/modules/account"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/pkg/password"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	clients     ClientRepository
	favorites   FavoriteRepository
	technicians TechnicianReader
	hasher      password.Hasher
}

func NewService(clients ClientRepository, favorites FavoriteRepository, technicians TechnicianReader, hasher password.Hasher) *Service {
	return &Service{clients: clients, favorites: favorites, technicians: technicians, hasher: hasher}
}

func (s *Service) Create(ctx context.Context, req CreateClientRequest) (*domain.Client, error) {
	if !req.Location.Valid() {
		return nil, ErrInvalidLocation
	}
	acc, err := account.New(req.Fullname, req.Email, req.Phone, req.Password, s.hasher)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	field, err := s.clients.Conflict(ctx, acc.Email, acc.Phone, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if field != "" {
		return nil, account.ConflictError("Client", field)
	}

	c := &domain.Client{Account: acc, Location: req.Location}
	if err := s.clients.Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, account.ConflictError("Client", "email or phone")
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ReadOneByEmail(ctx context.Context, email string) (*domain.Client, error) {
	c, err := s.clients.GetByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.Client, error) {
	return s.clients.List(ctx, repository.ClientFilter{Active: q.Active}, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*domain.Client, error) {
	c, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ChangesIdentity(c.Account) {
		probe := c.Account
		if err := req.Patch.Apply(&probe, s.hasher); err != nil {
			return nil, err
		}
		field, err := s.clients.Conflict(ctx, probe.Email, probe.Phone, c.ID)
		if err != nil {
			return nil, err
		}
		if field != "" {
			return nil, account.ConflictError("Client", field)
		}
		c.Account = probe
	} else if err := req.Patch.Apply(&c.Account, s.hasher); err != nil {
		return nil, err
	}

	if loc, ok, err := optional.NonNull(req.Location, "location"); err != nil {
		return nil, err
	} else if ok {
		if !loc.Valid() {
			return nil, ErrInvalidLocation
		}
		c.Location = loc
	}

	if err := s.clients.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, account.ConflictError("Client", "email or phone")
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.clients.Delete(ctx, id)
}

// Authenticate resolves a client by credentials for login.
func (s *Service) Authenticate(ctx context.Context, email, plain string) (*domain.Client, error) {
	c, err := s.clients.GetByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, account.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := account.Verify(c.Account, plain, s.hasher); err != nil {
		return nil, err
	}
	return c, nil
}

// AddFavoriteTechnician returns false when the technician was already a favorite.
func (s *Service) AddFavoriteTechnician(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error) {
	if err := s.ensureBoth(ctx, clientID, technicianID); err != nil {
		return false, err
	}
	return s.favorites.Add(ctx, clientID, technicianID)
}

func (s *Service) RemoveFavoriteTechnician(ctx context.Context, clientID, technicianID uuid.UUID) (bool, error) {
	return s.favorites.Remove(ctx, clientID, technicianID)
}

func (s *Service) ListFavoriteTechnicians(ctx context.Context, clientID uuid.UUID, skip, limit int) ([]domain.Technician, error) {
	if _, err := s.ReadOne(ctx, clientID); err != nil {
		return nil, err
	}
	ids, err := s.favorites.TechnicianIDs(ctx, clientID, repository.Page{Skip: skip, Limit: limit})
	if err != nil {
		return nil, err
	}
	return s.technicians.ListByIDs(ctx, ids)
}

func (s *Service) ensureBoth(ctx context.Context, clientID, technicianID uuid.UUID) error {
	if _, err := s.ReadOne(ctx, clientID); err != nil {
		return err
	}
	if _, err := s.technicians.GetByID(ctx, technicianID); err != nil {
		if repository.IsNotFound(err) {
			return ErrTechnicianNotFound
		}
		return err
	}
	return nil
}
