package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteTechnician links a client with a technician they saved.
type FavoriteTechnician struct {
	ClientID     uuid.UUID `json:"client_id"`
	TechnicianID uuid.UUID `json:"technician_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// VerifiedTechnician records which admin verified a technician.
type VerifiedTechnician struct {
	TechnicianID uuid.UUID `json:"technician_id"`
	AdminID      uuid.UUID `json:"admin_id"`
	CreatedAt    time.Time `json:"created_at"`
}
