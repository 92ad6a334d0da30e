package technician

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var (
	ErrNotFound        = apperr.NotFound("Technician not found")
	ErrInvalidLocation = apperr.BadRequest("location is invalid")
)
