package client

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var (
	ErrNotFound           = apperr.NotFound("Client not found")
	ErrTechnicianNotFound = apperr.NotFound("Technician not found")
	ErrInvalidLocation    = apperr.BadRequest("location is invalid")
)
