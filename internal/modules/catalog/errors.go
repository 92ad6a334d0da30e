package catalog

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var ErrNotFound = apperr.NotFound("Service not found")

func errAlreadyExists(name string) error {
	return apperr.Conflictf("%s service already exists", name)
}
