package techservice

import (
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"

	"github.com/google/uuid"
)

type CreateTechnicianServiceRequest struct {
	TechnicianID    uuid.UUID `json:"technician_id" validate:"required"`
	ServiceID       uuid.UUID `json:"service_id" validate:"required"`
	ExperienceYears int       `json:"experience_years" validate:"gte=0,lte=80"`
	Price           float64   `json:"price" validate:"gt=0"`
}

type UpdateTechnicianServiceRequest struct {
	ExperienceYears optional.Value[int]     `json:"experience_years"`
	Price           optional.Value[float64] `json:"price"`
}

type ListQuery struct {
	TechnicianID *uuid.UUID
	ServiceID    *uuid.UUID
	MinPrice     *float64
	MaxPrice     *float64
	Skip         int
	Limit        int
}
