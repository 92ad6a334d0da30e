package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/modules/account"
	"github.com/caffeine-junky/jobconnect/internal/pkg/password"
	"github.com/caffeine-junky/jobconnect/internal/repository"

	"github.com/google/uuid"
)

type Service struct {
	admins      AdminRepository
	verified    VerifiedRepository
	clients     Activator
	technicians TechnicianRepository
	hasher      password.Hasher
}

func NewService(
	admins AdminRepository,
	verified VerifiedRepository,
	clients Activator,
	technicians TechnicianRepository,
	hasher password.Hasher,
) *Service {
	return &Service{
		admins:      admins,
		verified:    verified,
		clients:     clients,
		technicians: technicians,
		hasher:      hasher,
	}
}

// -------------------- Admins --------------------

// Create registers an admin, SUPPORT_ADMIN unless a role is given.
func (s *Service) Create(ctx context.Context, req CreateAdminRequest) (*domain.Admin, error) {
	role := req.Role
	if role == "" {
		role = domain.AdminSupport
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	acc, err := account.New(req.Fullname, req.Email, req.Phone, req.Password, s.hasher)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	field, err := s.admins.Conflict(ctx, acc.Email, acc.Phone, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if field != "" {
		return nil, account.ConflictError("Admin", field)
	}

	a := &domain.Admin{Account: acc, Role: role}
	if err := s.admins.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, account.ConflictError("Admin", "email or phone")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ReadOne(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	a, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ReadOneByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	a, err := s.admins.GetByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ReadAll(ctx context.Context, q ListQuery) ([]domain.Admin, error) {
	if q.Role != nil && !q.Role.Valid() {
		return nil, ErrInvalidRole
	}
	f := repository.AdminFilter{Active: q.Active, Role: q.Role}
	return s.admins.List(ctx, f, repository.Page{Skip: q.Skip, Limit: q.Limit})
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateAdminRequest) (*domain.Admin, error) {
	a, err := s.ReadOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ChangesIdentity(a.Account) {
		probe := a.Account
		if err := req.Patch.Apply(&probe, s.hasher); err != nil {
			return nil, err
		}
		field, err := s.admins.Conflict(ctx, probe.Email, probe.Phone, a.ID)
		if err != nil {
			return nil, err
		}
		if field != "" {
			return nil, account.ConflictError("Admin", field)
		}
		a.Account = probe
	} else if err := req.Patch.Apply(&a.Account, s.hasher); err != nil {
		return nil, err
	}

	if err := s.admins.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, account.ConflictError("Admin", "email or phone")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.admins.Delete(ctx, id)
}

// Authenticate resolves an admin by credentials for login.
func (s *Service) Authenticate(ctx context.Context, email, plain string) (*domain.Admin, error) {
	a, err := s.admins.GetByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, account.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := account.Verify(a.Account, plain, s.hasher); err != nil {
		return nil, err
	}
	return a, nil
}

// -------------------- Moderation --------------------

// moderator loads the acting admin and checks it may moderate.
func (s *Service) moderator(ctx context.Context, adminID uuid.UUID) (*domain.Admin, error) {
	a, err := s.ReadOne(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !a.IsActive || !a.CanModerate() {
		return nil, ErrNotPermitted
	}
	return a, nil
}

// VerifyTechnician returns false when the technician was already verified.
func (s *Service) VerifyTechnician(ctx context.Context, adminID, technicianID uuid.UUID) (bool, error) {
	if _, err := s.moderator(ctx, adminID); err != nil {
		return false, err
	}
	if _, err := s.technicians.GetByID(ctx, technicianID); err != nil {
		if repository.IsNotFound(err) {
			return false, ErrTechnicianNotFound
		}
		return false, err
	}
	return s.verified.Verify(ctx, technicianID, adminID)
}

// UnverifyTechnician returns false when the technician was not verified.
func (s *Service) UnverifyTechnician(ctx context.Context, adminID, technicianID uuid.UUID) (bool, error) {
	if _, err := s.moderator(ctx, adminID); err != nil {
		return false, err
	}
	return s.verified.Unverify(ctx, technicianID)
}

// SetUserActiveStatus activates or deactivates any account. Only a
// SUPER_ADMIN may change another admin.
func (s *Service) SetUserActiveStatus(ctx context.Context, adminID, userID uuid.UUID, role domain.UserRole, active bool) (bool, error) {
	actor, err := s.moderator(ctx, adminID)
	if err != nil {
		return false, err
	}

	var changed bool
	switch role {
	case domain.RoleAdmin:
		if userID != actor.ID && actor.Role != domain.AdminSuper {
			return false, ErrNotPermitted
		}
		changed, err = s.admins.SetActive(ctx, userID, active)
	case domain.RoleClient:
		changed, err = s.clients.SetActive(ctx, userID, active)
	case domain.RoleTechnician:
		changed, err = s.technicians.SetActive(ctx, userID, active)
	default:
		return false, ErrInvalidRole
	}
	if err != nil {
		return false, err
	}
	if !changed {
		return false, ErrUserNotFound
	}
	return true, nil
}
