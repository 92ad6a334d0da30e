package report

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var ErrTechnicianNotFound = apperr.NotFound("Technician not found")
