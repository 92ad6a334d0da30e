package domain

import (
	"time"

	"github.com/google/uuid"
)

type TechnicianAvailability struct {
	ID           uuid.UUID   `json:"id"`
	TechnicianID uuid.UUID   `json:"technician_id"`
	TimeSlot     TimeSlotDay `json:"timeslot"`
	Active       bool        `json:"active"`
	CreatedAt    time.Time   `json:"created_at"`
}
