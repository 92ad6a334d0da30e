package review

import (
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID    uuid.UUID `json:"booking_id" validate:"required"`
	ClientID     uuid.UUID `json:"client_id" validate:"required"`
	TechnicianID uuid.UUID `json:"technician_id" validate:"required"`
	Rating       int       `json:"rating" validate:"required,min=1,max=5"`
	Comment      *string   `json:"comment" validate:"omitempty,max=2000"`
}

// UpdateReviewRequest accepts null for comment to clear it.
type UpdateReviewRequest struct {
	Rating  optional.Value[int]    `json:"rating"`
	Comment optional.Value[string] `json:"comment"`
}

type ListQuery struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	MinRating    *int
	Skip         int
	Limit        int
}
