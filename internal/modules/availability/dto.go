package availability

import (
	"github.com/caffeine-junky/jobconnect/internal/domain"
	"github.com/caffeine-junky/jobconnect/internal/pkg/optional"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateAvailabilityRequest struct {
	TechnicianID uuid.UUID          `json:"technician_id" validate:"required"`
	TimeSlot     domain.TimeSlotDay `json:"timeslot"`
	Active       *bool              `json:"active"`
}

type UpdateAvailabilityRequest struct {
	TimeSlot optional.Value[domain.TimeSlotDay] `json:"timeslot"`
	Active   optional.Value[bool]               `json:"active"`
}

type ListQuery struct {
	TechnicianID *uuid.UUID
	Day          *int
	StartTime    *datatypes.Time
	EndTime      *datatypes.Time
	Active       *bool
	Skip         int
	Limit        int
}
