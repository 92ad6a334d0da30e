package review

import "github.com/caffeine-junky/jobconnect/internal/pkg/apperr"

var (
	ErrNotFound          = apperr.NotFound("Review not found")
	ErrBookingNotFound   = apperr.NotFound("Booking not found")
	ErrAlreadyReviewed   = apperr.Conflict("You have already reviewed this booking")
	ErrBookingMismatch   = apperr.BadRequest("Booking does not belong to this client and technician")
	ErrBookingNotDone    = apperr.BadRequest("Only completed bookings can be reviewed")
	ErrInvalidRating     = apperr.BadRequest("rating must be between 1 and 5")
	ErrInvalidRatingFilt = apperr.BadRequest("min_rating must be between 1 and 5")
)
