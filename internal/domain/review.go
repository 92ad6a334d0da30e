package domain

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID           uuid.UUID `json:"id"`
	BookingID    uuid.UUID `json:"booking_id"`
	ClientID     uuid.UUID `json:"client_id"`
	TechnicianID uuid.UUID `json:"technician_id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	ClientName   string    `json:"client_name"`
	ServiceName  string    `json:"service_name"`
	CreatedAt    time.Time `json:"created_at"`
}
