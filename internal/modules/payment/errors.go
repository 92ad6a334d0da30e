package payment

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var (
	ErrNotFound         = apperr.NotFound("Payment not found")
	ErrAlreadyExists    = apperr.Conflict("Payment already exists")
	ErrBookingNotFound  = apperr.NotFound("Booking not found")
	ErrBookingMismatch  = apperr.BadRequest("Booking does not belong to this client and technician")
	ErrInvalidAmount    = apperr.BadRequest("amount must be greater than 0")
	ErrInvalidStatus    = apperr.BadRequest("status must be one of pending, escrow, completed")
	ErrInvalidAmountRng = apperr.BadRequest("min_amount must not exceed max_amount")
)
