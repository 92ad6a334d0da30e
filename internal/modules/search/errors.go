package search

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var (
	ErrClientNotFound    = apperr.NotFound("Client not found")
	ErrEmptyDescription  = apperr.BadRequest("problem_description cannot be empty")
	ErrExternalSearch    = apperr.NotImplemented("External search not implemented yet")
	ErrInvalidSearchArea = apperr.BadRequest("Invalid location")
)
