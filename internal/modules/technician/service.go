package technician

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
	technicians TechnicianRepository
	hasher      password.Hasher
}

func NewService(technicians TechnicianRepository, hasher password.Hasher) *Service {
	return &Service{technicians: technicians, hasher: hasher}
}

// Create registers an available technician.
func (s *Service) Create(ctx context.Context, req CreateTechnicianRequest) (*domain.Technician, error) {
	if !req.Location.Valid() {
		return nil, ErrInvalidLocation
	}
	acc, err := account.New(req.Fullname, req.Email, req.Phone, req.Password, s.hasher)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	field, err := s.technicians.Conflict(ctx, acc.Email, acc.Phone, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if field != "" {
		return nil, account.ConflictError("Technician", field)
	}

	t := &domain.Technician{Account: acc, Location: req.Location, IsAvailable: true, Services: []string{}}
	if err := s.technicians.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, account.ConflictError("Technician", "email or phone")
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.Technician, error) {
	t, err := s.technicians.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) ReadOneByEmail(ctx context.Context, email string) (*domain.Technician, error) {
	t, err := s.technicians.GetByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.Technician, error) {
	f := repository.TechnicianFilter{Active: q.Active, IsAvailable: q.IsAvailable}
	return s.technicians.List(ctx, f, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateTechnicianRequest) (*domain.Technician, error) {
	t, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ChangesIdentity(t.Account) {
		probe := t.Account
		if err := req.Patch.Apply(&probe, s.hasher); err != nil {
			return nil, err
		}
		field, err := s.technicians.Conflict(ctx, probe.Email, probe.Phone, t.ID)
		if err != nil {
			return nil, err
		}
		if field != "" {
			return nil, account.ConflictError("Technician", field)
		}
		t.Account = probe
	} else if err := req.Patch.Apply(&t.Account, s.hasher); err != nil {
		return nil, err
	}

	if loc, ok, err := optional.NonNull(req.Location, "location"); err != nil {
		return nil, err
	} else if ok {
		if !loc.Valid() {
			return nil, ErrInvalidLocation
		}
		t.Location = loc
	}
	if avail, ok, err := optional.NonNull(req.IsAvailable, "is_available"); err != nil {
		return nil, err
	} else if ok {
		t.IsAvailable = avail
	}

	if err := s.technicians.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, account.ConflictError("Technician", "email or phone")
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.technicians.Delete(ctx, id)
}

// Authenticate resolves a technician by credentials for login.
func (s *Service) Authenticate(ctx context.Context, email, plain string) (*domain.Technician, error) {
	t, err := s.technicians.GetByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, account.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := account.Verify(t.Account, plain, s.hasher); err != nil {
		return nil, err
	}
	return t, nil
}
