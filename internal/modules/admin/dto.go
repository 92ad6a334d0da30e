package admin

import (
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/modules/account"
)

type CreateAdminRequest struct {
	Fullname string           `json:"fullname" validate:"required,min=2,max=100"`
	Email    string           `json:"email" validate:"required,email"`
	Phone    string           `json:"phone" validate:"required,min=7,max=20"`
	Password string           `json:"password" validate:"required,min=8,max=72"`
	Role     domain.AdminRole `json:"role" validate:"omitempty,oneof=SUPER_ADMIN SUPPORT_ADMIN CONTENT_ADMIN"`
}

type UpdateAdminRequest struct {
	account.Patch
}

type ListQuery struct {
	Active *bool
	Role   *domain.AdminRole
	Skip   int
	Limit  int
}

// SetActiveRequest toggles is_active on any account type.
type SetActiveRequest struct {
	Role     domain.UserRole `json:"role" validate:"required,oneof=admin client technician"`
	IsActive *bool           `json:"is_active" validate:"required"`
}
