package booking

import (
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateBookingRequest struct {
	ClientID     uuid.UUID        `json:"client_id" validate:"required"`
	TechnicianID uuid.UUID        `json:"technician_id" validate:"required"`
	ServiceName  string           `json:"service_name" validate:"required,max=100"`
	Description  string           `json:"description" validate:"max=2000"`
	TimeSlot     domain.TimeSlot  `json:"timeslot"`
	Location     *domain.Location `json:"location"`
}

type UpdateBookingRequest struct {
	Status      optional.Value[domain.BookingStatus] `json:"status"`
	Description optional.Value[string]               `json:"description"`
}

type ListQuery struct {
	ClientID     *uuid.UUID
	TechnicianID *uuid.UUID
	Status       *domain.BookingStatus
	Date         *datatypes.Date
	Skip         int
	Limit        int
}
