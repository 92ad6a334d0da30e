// Package account holds the credential and profile rules shared by admins,
// clients and technicians.
package account

import (
	"strings"

	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/apperr"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
	"github.com/caffeine-junky/jobconnect/internal/pkg/password"
	"github.com/caffeine-junky/jobconnect/internal/pkg/validator"
)

// ErrInvalidCredentials covers unknown email, wrong password and inactive
// accounts alike.
var ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")

const (
	fullnameTag = "min=2,max=100"
	emailTag    = "email"
	phoneTag    = "min=7,max=20"
	passwordTag = "min=8,max=72"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// New builds an active account with a hashed password.
func New(fullname, email, phone, plain string, hasher password.Hasher) (domain.Account, error) {
	hashed, err := hasher.Hash(plain)
	if err != nil {
		return domain.Account{}, err
	}
	return domain.Account{
		Fullname:       strings.TrimSpace(fullname),
		Email:          NormalizeEmail(email),
		Phone:          strings.TrimSpace(phone),
		HashedPassword: hashed,
		IsActive:       true,
	}, nil
}

// Verify checks the password of an account found by email.
func Verify(acc domain.Account, plain string, hasher password.Hasher) error {
	if !acc.IsActive || !hasher.Verify(acc.HashedPassword, plain) {
		return ErrInvalidCredentials
	}
	return nil
}

// ConflictError is "<Entity> with <field> already exists".
func ConflictError(entity, field string) error {
	return apperr.Conflictf("%s with %s already exists", entity, field)
}

// Patch is the partial update of the shared account fields.
type Patch struct {
	Fullname optional.Value[string] `json:"fullname"`
	Email    optional.Value[string] `json:"email"`
	Phone    optional.Value[string] `json:"phone"`
	Password optional.Value[string] `json:"password"`
}

// ChangesIdentity reports whether email or phone is being replaced, which
// needs a fresh uniqueness check.
func (p Patch) ChangesIdentity(acc domain.Account) bool {
	if email, ok := p.Email.Get(); ok && NormalizeEmail(email) != acc.Email {
		return true
	}
	if phone, ok := p.Phone.Get(); ok && strings.TrimSpace(phone) != acc.Phone {
		return true
	}
	return false
}

// Apply writes the supplied fields into acc, re-hashing a new password.
func (p Patch) Apply(acc *domain.Account, hasher password.Hasher) error {
	if v, ok, err := optional.NonNull(p.Fullname, "fullname"); err != nil {
		return err
	} else if ok {
		if tag := validator.Var(strings.TrimSpace(v), fullnameTag); tag != "" {
			return apperr.BadRequestf("fullname is invalid (%s)", tag)
		}
		acc.Fullname = strings.TrimSpace(v)
	}

	if v, ok, err := optional.NonNull(p.Email, "email"); err != nil {
		return err
	} else if ok {
		v = NormalizeEmail(v)
		if tag := validator.Var(v, emailTag); tag != "" {
			return apperr.BadRequest("email is invalid")
		}
		acc.Email = v
	}

	if v, ok, err := optional.NonNull(p.Phone, "phone"); err != nil {
		return err
	} else if ok {
		if tag := validator.Var(strings.TrimSpace(v), phoneTag); tag != "" {
			return apperr.BadRequestf("phone is invalid (%s)", tag)
		}
		acc.Phone = strings.TrimSpace(v)
	}

	if v, ok, err := optional.NonNull(p.Password, "password"); err != nil {
		return err
	} else if ok {
		if tag := validator.Var(v, passwordTag); tag != "" {
			return apperr.BadRequestf("password is invalid (%s)", tag)
		}
		hashed, err := hasher.Hash(v)
		if err != nil {
			return err
		}
		acc.HashedPassword = hashed
	}

	return nil
}
