package notification

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var (
	ErrNotFound     = apperr.NotFound("Notification not found")
	ErrNoAddressee  = apperr.BadRequest("Notification needs a client_id or technician_id")
	ErrInvalidOwner = apperr.BadRequest("role must be client or technician")
)
