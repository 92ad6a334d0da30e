package techservice

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var (
	ErrNotFound           = apperr.NotFound("Technician service not found")
	ErrTechnicianNotFound = apperr.NotFound("Technician not found")
	ErrServiceNotFound    = apperr.NotFound("Service not found")
	ErrAlreadyExists      = apperr.Conflict("Technician already has this service")
	ErrInvalidPrice       = apperr.BadRequest("price must be greater than 0")
	ErrInvalidExperience  = apperr.BadRequest("experience_years cannot be negative")
	ErrInvalidPriceRange  = apperr.BadRequest("min_price cannot exceed max_price")
)
