package technician

import (
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/modules/account"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"
)

type CreateTechnicianRequest struct {
	Fullname string          `json:"fullname" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Phone    string          `json:"phone" validate:"required,min=7,max=20"`
	Location domain.Location `json:"location" validate:"required"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
}

type UpdateTechnicianRequest struct {
	account.Patch
	Location    optional.Value[domain.Location] `json:"location"`
	IsAvailable optional.Value[bool]            `json:"is_available"`
}

type ListQuery struct {
	Active      *bool
	IsAvailable *bool
	Skip        int
	Limit       int
}
