package admin

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var (
	ErrNotFound           = apperr.NotFound("Admin not found")
	ErrTechnicianNotFound = apperr.NotFound("Technician not found")
	ErrUserNotFound       = apperr.NotFound("User not found")
	ErrNotPermitted       = apperr.Unauthorized("Admin is not permitted to perform this action")
	ErrInvalidRole        = apperr.BadRequest("role is invalid")
)
